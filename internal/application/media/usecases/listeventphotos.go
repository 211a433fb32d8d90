package usecases

import (
	"context"
	stderrors "errors"

	"github.com/orris-inc/photobooth/internal/infrastructure/storage"
	"github.com/orris-inc/photobooth/internal/shared/errors"
	"github.com/orris-inc/photobooth/internal/shared/logger"
)

type ListEventPhotosUseCase struct {
	media  MediaReader
	logger logger.Interface
}

func NewListEventPhotosUseCase(media MediaReader, logger logger.Interface) *ListEventPhotosUseCase {
	return &ListEventPhotosUseCase{
		media:  media,
		logger: logger,
	}
}

// Execute returns the /media/ URLs of the event's uploads, newest first.
func (uc *ListEventPhotosUseCase) Execute(ctx context.Context, eventSlug string) ([]string, error) {
	photos, err := uc.media.ListEventPhotos(ctx, eventSlug)
	if err != nil {
		if stderrors.Is(err, storage.ErrInvalidEventSlug) {
			return nil, errors.NewValidationError("invalid event slug", eventSlug)
		}
		uc.logger.Errorw("failed to list event photos", "event_slug", eventSlug, "error", err)
		return nil, errors.NewStorageError("failed to list photos", err)
	}
	return photos, nil
}
