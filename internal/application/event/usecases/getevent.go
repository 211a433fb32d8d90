package usecases

import (
	"context"
	stderrors "errors"

	"github.com/orris-inc/photobooth/internal/domain/event"
	"github.com/orris-inc/photobooth/internal/shared/errors"
	"github.com/orris-inc/photobooth/internal/shared/logger"
)

// GetEventUseCase looks an event up by slug, through the cache when set.
type GetEventUseCase struct {
	eventRepo event.Repository
	cache     EventCache
	logger    logger.Interface
}

func NewGetEventUseCase(eventRepo event.Repository, cache EventCache, logger logger.Interface) *GetEventUseCase {
	return &GetEventUseCase{
		eventRepo: eventRepo,
		cache:     cache,
		logger:    logger,
	}
}

func (uc *GetEventUseCase) Execute(ctx context.Context, slug string) (*event.Event, error) {
	if uc.cache != nil {
		if e, ok := uc.cache.Get(slug); ok {
			return e, nil
		}
	}

	e, err := uc.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		if stderrors.Is(err, event.ErrEventNotFound) {
			return nil, errors.NewNotFoundError("event not found", slug)
		}
		uc.logger.Errorw("failed to get event", "slug", slug, "error", err)
		return nil, errors.NewStorageError("failed to get event", err)
	}

	if uc.cache != nil {
		uc.cache.Set(e)
	}
	return e, nil
}
