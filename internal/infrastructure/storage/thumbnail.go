package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
)

const thumbnailQuality = 85

// SaveThumbnail renders a JPEG thumbnail of data bounded by size x size and
// stores it as processed/thumb_<stored name>.jpg next to the upload. Only
// JPEG and PNG sources can be decoded.
func (s *MediaStore) SaveThumbnail(ctx context.Context, data []byte, storedPath, eventSlug string, size uint) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	thumb := resize.Thumbnail(size, size, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: thumbnailQuality}); err != nil {
		return "", fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	dir, err := s.eventDir(ctx, eventSlug, processedDir)
	if err != nil {
		return "", err
	}

	base := filepath.Base(storedPath)
	name := "thumb_" + strings.TrimSuffix(base, filepath.Ext(base)) + ".jpg"
	path := filepath.Join(dir, name)
	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return "", err
	}

	return path, nil
}
