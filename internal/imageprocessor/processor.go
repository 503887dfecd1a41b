package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// ImageSize - именованный размер для ресайза
type ImageSize struct {
	Name   string
	Width  int
	Height int
}

var (
	SizeThumbnail = ImageSize{Name: "thumbnail", Width: 200, Height: 200}
	SizeDisplay   = ImageSize{Name: "display", Width: 1200, Height: 1200}
)

// Processor handles image decoding, resizing and re-encoding
type Processor struct {
	quality int // JPEG quality (1-100)
}

func NewProcessor(quality int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	return &Processor{quality: quality}
}

// Process decodes an image, fits it into the given size and re-encodes it.
// Returns the processed bytes and the output extension (jpg or png).
func (p *Processor) Process(reader io.Reader, size ImageSize) (io.Reader, string, error) {
	img, format, err := image.Decode(reader)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}

	resized := p.fit(img, size.Width, size.Height)

	var buf bytes.Buffer
	switch format {
	case "png":
		if err := png.Encode(&buf, resized); err != nil {
			return nil, "", fmt.Errorf("failed to encode PNG: %w", err)
		}
		return &buf, "png", nil
	case "jpeg":
		if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: p.quality}); err != nil {
			return nil, "", fmt.Errorf("failed to encode JPEG: %w", err)
		}
		return &buf, "jpg", nil
	default:
		return nil, "", fmt.Errorf("unsupported image format: %s", format)
	}
}

// fit вписывает изображение в рамку, сохраняя пропорции.
// Изображения меньше рамки не увеличиваются.
func (p *Processor) fit(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width <= maxWidth && height <= maxHeight {
		return img
	}

	ratio := float64(width) / float64(height)
	newWidth := maxWidth
	newHeight := maxHeight
	if float64(maxWidth)/float64(maxHeight) > ratio {
		newWidth = int(float64(maxHeight) * ratio)
	} else {
		newHeight = int(float64(maxWidth) / ratio)
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

// IsValidImage checks if the reader contains a decodable image
func IsValidImage(reader io.Reader) bool {
	_, _, err := image.Decode(reader)
	return err == nil
}
