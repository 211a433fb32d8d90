package usecases

import (
	"context"

	"github.com/orris-inc/photobooth/internal/domain/event"
	"github.com/orris-inc/photobooth/internal/shared/biztime"
	"github.com/orris-inc/photobooth/internal/shared/logger"
)

// EnsureDefaultEventUseCase seeds the "onlocation" event. Running it again
// is a no-op.
type EnsureDefaultEventUseCase struct {
	eventRepo event.Repository
	clock     biztime.Clock
	logger    logger.Interface
}

func NewEnsureDefaultEventUseCase(eventRepo event.Repository, clock biztime.Clock, logger logger.Interface) *EnsureDefaultEventUseCase {
	return &EnsureDefaultEventUseCase{
		eventRepo: eventRepo,
		clock:     clock,
		logger:    logger,
	}
}

func (uc *EnsureDefaultEventUseCase) Execute(ctx context.Context) error {
	e, err := event.NewEvent(event.DefaultName, event.DefaultSlug, uc.clock())
	if err != nil {
		return err
	}
	if err := uc.eventRepo.CreateIfAbsent(ctx, e); err != nil {
		uc.logger.Errorw("failed to seed default event", "error", err)
		return err
	}
	return nil
}
