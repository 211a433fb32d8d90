package storage

import (
	"context"
	"image"
	_ "image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveThumbnail(t *testing.T) {
	store, root := newTestStore(t)
	ctx := context.Background()
	data := pngBytes(t, 200, 100)

	path, err := store.SaveThumbnail(ctx, data, "/x/20240309_140507_snap.png", "gala", 50)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "events", "gala", "processed", "thumb_20240309_140507_snap.jpg"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.LessOrEqual(t, cfg.Width, 50)
	assert.LessOrEqual(t, cfg.Height, 50)
}

func TestSaveThumbnailUndecodable(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.SaveThumbnail(context.Background(), []byte("not an image"), "a.jpg", "gala", 50)
	assert.Error(t, err)
}
