package usecases

import (
	"context"

	"github.com/orris-inc/photobooth/internal/domain/event"
	"github.com/orris-inc/photobooth/internal/shared/errors"
	"github.com/orris-inc/photobooth/internal/shared/logger"
)

type ListEventsUseCase struct {
	eventRepo event.Repository
	logger    logger.Interface
}

func NewListEventsUseCase(eventRepo event.Repository, logger logger.Interface) *ListEventsUseCase {
	return &ListEventsUseCase{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// Execute returns every event ordered by name.
func (uc *ListEventsUseCase) Execute(ctx context.Context) ([]*event.Event, error) {
	events, err := uc.eventRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list events", "error", err)
		return nil, errors.NewStorageError("failed to list events", err)
	}
	return events, nil
}
