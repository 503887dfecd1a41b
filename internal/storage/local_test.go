package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	store, err := NewLocalStorage(Config{BasePath: t.TempDir(), BaseURL: "https://cdn.example.com"})
	require.NoError(t, err)

	ctx := context.Background()
	path := "providers/p1/portfolio/test.jpg"

	require.NoError(t, store.Save(ctx, path, strings.NewReader("image-bytes"), "image/jpeg"))

	exists, err := store.Exists(ctx, path)
	require.NoError(t, err)
	assert.True(t, exists)

	reader, err := store.Get(ctx, path)
	require.NoError(t, err)
	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.NoError(t, reader.Close())
	assert.Equal(t, "image-bytes", string(data))

	url, err := store.GetURL(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/"+path, url)

	require.NoError(t, store.Delete(ctx, path))
	exists, err = store.Exists(ctx, path)
	require.NoError(t, err)
	assert.False(t, exists)

	// Удаление несуществующего файла не ошибка
	assert.NoError(t, store.Delete(ctx, path))
}

func TestLocalStorageDefaultURL(t *testing.T) {
	store, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	require.NoError(t, err)

	url, err := store.GetURL(context.Background(), "a/b.png")
	require.NoError(t, err)
	assert.Equal(t, "/files/a/b.png", url)
}

func TestNewStorageUnknownType(t *testing.T) {
	_, err := NewStorage(Config{Type: "ftp"})
	assert.Error(t, err)
}
