package usecases

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/orris-inc/photobooth/internal/application/photo/dto"
	"github.com/orris-inc/photobooth/internal/domain/event"
	"github.com/orris-inc/photobooth/internal/domain/session"
	"github.com/orris-inc/photobooth/internal/infrastructure/metrics"
	"github.com/orris-inc/photobooth/internal/infrastructure/storage"
	"github.com/orris-inc/photobooth/internal/shared/biztime"
	"github.com/orris-inc/photobooth/internal/shared/errors"
	"github.com/orris-inc/photobooth/internal/shared/logger"
)

type UploadPhotoCommand struct {
	Data        []byte
	Filename    string
	ContentType string
	SessionID   string
	EventSlug   string
}

// UploadOptions are the configured upload limits.
type UploadOptions struct {
	MaxBytes          int64
	ThumbnailsEnabled bool
	ThumbnailSize     uint
}

type UploadPhotoUseCase struct {
	media        MediaWriter
	sessions     SessionPhotos
	defaultSlugs DefaultSlugProvider
	opts         UploadOptions
	clock        biztime.Clock
	logger       logger.Interface
}

func NewUploadPhotoUseCase(
	media MediaWriter,
	sessions SessionPhotos,
	defaultSlugs DefaultSlugProvider,
	opts UploadOptions,
	clock biztime.Clock,
	logger logger.Interface,
) *UploadPhotoUseCase {
	return &UploadPhotoUseCase{
		media:        media,
		sessions:     sessions,
		defaultSlugs: defaultSlugs,
		opts:         opts,
		clock:        clock,
		logger:       logger,
	}
}

// Execute validates and stores an upload. With a session id the file goes
// to that session's event and is appended to its photo list; the session
// is looked up before anything is written.
func (uc *UploadPhotoUseCase) Execute(ctx context.Context, cmd UploadPhotoCommand) (*dto.UploadPhotoResponse, error) {
	contentType, err := storage.ValidateUpload(cmd.ContentType, cmd.Data, uc.opts.MaxBytes)
	if err != nil {
		return nil, errors.NewValidationError("invalid upload", err.Error())
	}

	sessionID := strings.TrimSpace(cmd.SessionID)
	eventSlug := strings.TrimSpace(cmd.EventSlug)
	if sessionID != "" {
		s, err := uc.sessions.Find(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		eventSlug = s.EventSlug()
	}
	if eventSlug == "" {
		eventSlug = uc.defaultSlugs.DefaultEventSlug(ctx)
	}
	if !event.IsValidSlug(eventSlug) {
		return nil, errors.NewValidationError("invalid event slug", eventSlug)
	}

	filename := storage.NormalizeFilename(cmd.Filename)
	path, err := uc.media.SaveUpload(ctx, cmd.Data, filename, eventSlug)
	if err != nil {
		if stderrors.Is(err, storage.ErrInvalidEventSlug) {
			return nil, errors.NewValidationError("invalid event slug", eventSlug)
		}
		uc.logger.Errorw("failed to store upload", "event_slug", eventSlug, "error", err)
		return nil, errors.NewStorageError("failed to store upload", err)
	}

	metrics.PhotoUploaded(contentType, len(cmd.Data))

	resp := &dto.UploadPhotoResponse{
		URL:         uc.media.PathToURL(ctx, path),
		Path:        path,
		ContentType: contentType,
		Size:        len(cmd.Data),
	}

	if uc.opts.ThumbnailsEnabled && uc.opts.ThumbnailSize > 0 {
		thumbPath, err := uc.media.SaveThumbnail(ctx, cmd.Data, path, eventSlug, uc.opts.ThumbnailSize)
		if err != nil {
			uc.logger.Warnw("thumbnail generation failed", "path", path, "error", err)
		} else {
			resp.ThumbnailURL = uc.media.PathToURL(ctx, thumbPath)
		}
	}

	if sessionID != "" {
		sess, err := uc.sessions.AddPhoto(ctx, sessionID, session.Photo{
			URL:         resp.URL,
			ContentType: contentType,
			Size:        int64(len(cmd.Data)),
			CreatedAt:   uc.clock(),
		})
		if err != nil {
			return nil, err
		}
		resp.Session = sess
	}

	return resp, nil
}
