package usecases

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	sessiondto "github.com/orris-inc/photobooth/internal/application/session/dto"
	"github.com/orris-inc/photobooth/internal/domain/session"
	"github.com/orris-inc/photobooth/internal/shared/errors"
)

type mockSessionPhotos struct {
	FindFunc     func(ctx context.Context, sessionID string) (*session.Session, error)
	AddPhotoFunc func(ctx context.Context, sessionID string, photo session.Photo) (*sessiondto.SessionResponse, error)
}

func (m *mockSessionPhotos) Find(ctx context.Context, sessionID string) (*session.Session, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, sessionID)
	}
	return nil, errors.NewNotFoundError("session not found or expired")
}

func (m *mockSessionPhotos) AddPhoto(ctx context.Context, sessionID string, photo session.Photo) (*sessiondto.SessionResponse, error) {
	if m.AddPhotoFunc != nil {
		return m.AddPhotoFunc(ctx, sessionID, photo)
	}
	return &sessiondto.SessionResponse{ID: sessionID, PhotoURLs: []string{photo.URL}}, nil
}

type staticRoot string

func (r staticRoot) MediaRoot(ctx context.Context) string { return string(r) }

func (r staticRoot) DefaultEventSlug(ctx context.Context) string { return "onlocation" }

var testNow = time.Date(2024, 6, 1, 12, 30, 45, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func sessionAt(t *testing.T, id, slug string) *session.Session {
	t.Helper()
	s, err := session.NewSession(id, "tok", slug, testNow, time.Hour)
	require.NoError(t, err)
	return s
}
