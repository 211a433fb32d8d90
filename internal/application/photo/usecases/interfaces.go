package usecases

import (
	"context"

	sessiondto "github.com/orris-inc/photobooth/internal/application/session/dto"
	"github.com/orris-inc/photobooth/internal/domain/session"
)

// MediaWriter stores uploads and maps stored paths to public URLs.
type MediaWriter interface {
	SaveUpload(ctx context.Context, data []byte, filename, eventSlug string) (string, error)
	SaveThumbnail(ctx context.Context, data []byte, storedPath, eventSlug string, size uint) (string, error)
	PathToURL(ctx context.Context, path string) string
}

// SessionPhotos finds sessions and appends photos to them.
type SessionPhotos interface {
	Find(ctx context.Context, sessionID string) (*session.Session, error)
	AddPhoto(ctx context.Context, sessionID string, photo session.Photo) (*sessiondto.SessionResponse, error)
}

// DefaultSlugProvider yields the event for uploads without a session.
type DefaultSlugProvider interface {
	DefaultEventSlug(ctx context.Context) string
}
