package handlers

import (
	"context"
	"time"

	eventdto "github.com/orris-inc/photobooth/internal/application/event/dto"
	photodto "github.com/orris-inc/photobooth/internal/application/photo/dto"
	photoUsecases "github.com/orris-inc/photobooth/internal/application/photo/usecases"
	sessiondto "github.com/orris-inc/photobooth/internal/application/session/dto"
	settingdto "github.com/orris-inc/photobooth/internal/application/setting/dto"
)

// SessionService is the subset of the session service used by handlers.
type SessionService interface {
	CreateSession(ctx context.Context, eventSlug string) (*sessiondto.SessionResponse, error)
	GetSession(ctx context.Context, sessionID, token string) (*sessiondto.SessionResponse, error)
	RegenerateToken(ctx context.Context, sessionID string) (*sessiondto.SessionResponse, error)
	ListForEvent(ctx context.Context, eventSlug string) (*sessiondto.SessionListResponse, error)
}

type PhotoUploader interface {
	Execute(ctx context.Context, cmd photoUsecases.UploadPhotoCommand) (*photodto.UploadPhotoResponse, error)
}

type GalleryRenderer interface {
	Execute(ctx context.Context, sessionID, token string) ([]byte, error)
}

type MediaResolver interface {
	Execute(ctx context.Context, rel string) (string, error)
}

type EventPhotoLister interface {
	Execute(ctx context.Context, eventSlug string) ([]string, error)
}

type EventService interface {
	ListEvents(ctx context.Context) ([]*eventdto.EventResponse, error)
	CreateEvent(ctx context.Context, name string) (*eventdto.EventResponse, error)
	GetEvent(ctx context.Context, slug string) (*eventdto.EventResponse, error)
}

type SettingService interface {
	GetSettings(ctx context.Context) *settingdto.SettingsResponse
	UpdateSettings(ctx context.Context, req settingdto.UpdateSettingsRequest) (*settingdto.SettingsResponse, error)
	VerifyPassword(ctx context.Context, candidate string) bool
	ChangePassword(ctx context.Context, current, newPassword string) (bool, error)
}

// AdminTokenIssuer signs admin tokens after a successful password check.
type AdminTokenIssuer interface {
	Generate() (string, time.Time, error)
}
