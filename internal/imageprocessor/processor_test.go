package imageprocessor

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeTestImage(t *testing.T, width, height int, format string) *bytes.Buffer {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}

	var buf bytes.Buffer
	switch format {
	case "png":
		require.NoError(t, png.Encode(&buf, img))
	default:
		require.NoError(t, jpeg.Encode(&buf, img, nil))
	}
	return &buf
}

func TestProcessDownscalesLargeImage(t *testing.T) {
	p := NewProcessor(85)

	src := encodeTestImage(t, 3000, 1500, "jpeg")
	out, ext, err := p.Process(src, SizeDisplay)
	require.NoError(t, err)
	assert.Equal(t, "jpg", ext)

	decoded, format, err := image.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)

	bounds := decoded.Bounds()
	assert.LessOrEqual(t, bounds.Dx(), SizeDisplay.Width)
	assert.LessOrEqual(t, bounds.Dy(), SizeDisplay.Height)
	// Пропорции 2:1 сохранены
	assert.Equal(t, bounds.Dx(), bounds.Dy()*2)
}

func TestProcessKeepsSmallImage(t *testing.T) {
	p := NewProcessor(85)

	src := encodeTestImage(t, 300, 200, "png")
	out, ext, err := p.Process(src, SizeDisplay)
	require.NoError(t, err)
	assert.Equal(t, "png", ext)

	decoded, _, err := image.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, 300, decoded.Bounds().Dx())
	assert.Equal(t, 200, decoded.Bounds().Dy())
}

func TestProcessRejectsGarbage(t *testing.T) {
	p := NewProcessor(85)

	_, _, err := p.Process(strings.NewReader("not an image at all"), SizeThumbnail)
	assert.Error(t, err)
}

func TestIsValidImage(t *testing.T) {
	assert.True(t, IsValidImage(encodeTestImage(t, 10, 10, "png")))
	assert.False(t, IsValidImage(strings.NewReader("junk")))
}
