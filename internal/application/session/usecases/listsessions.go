package usecases

import (
	"context"

	"github.com/orris-inc/photobooth/internal/domain/session"
	"github.com/orris-inc/photobooth/internal/shared/errors"
	"github.com/orris-inc/photobooth/internal/shared/logger"
)

type ListEventSessionsUseCase struct {
	sessionRepo session.Repository
	logger      logger.Interface
}

func NewListEventSessionsUseCase(sessionRepo session.Repository, logger logger.Interface) *ListEventSessionsUseCase {
	return &ListEventSessionsUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// Execute returns every session of the event, expired ones included,
// newest first.
func (uc *ListEventSessionsUseCase) Execute(ctx context.Context, eventSlug string) ([]*session.Session, error) {
	sessions, err := uc.sessionRepo.ListByEventSlug(ctx, eventSlug)
	if err != nil {
		uc.logger.Errorw("failed to list sessions", "event_slug", eventSlug, "error", err)
		return nil, errors.NewStorageError("failed to list sessions", err)
	}
	return sessions, nil
}
