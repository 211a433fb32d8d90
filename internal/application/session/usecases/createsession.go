package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/orris-inc/photobooth/internal/domain/event"
	"github.com/orris-inc/photobooth/internal/domain/session"
	"github.com/orris-inc/photobooth/internal/infrastructure/metrics"
	"github.com/orris-inc/photobooth/internal/shared/biztime"
	"github.com/orris-inc/photobooth/internal/shared/errors"
	"github.com/orris-inc/photobooth/internal/shared/logger"
)

type CreateSessionUseCase struct {
	sessionRepo  session.Repository
	defaultSlugs DefaultSlugProvider
	tokens       TokenGenerator
	window       time.Duration
	clock        biztime.Clock
	logger       logger.Interface
}

func NewCreateSessionUseCase(
	sessionRepo session.Repository,
	defaultSlugs DefaultSlugProvider,
	tokens TokenGenerator,
	window time.Duration,
	clock biztime.Clock,
	logger logger.Interface,
) *CreateSessionUseCase {
	return &CreateSessionUseCase{
		sessionRepo:  sessionRepo,
		defaultSlugs: defaultSlugs,
		tokens:       tokens,
		window:       window,
		clock:        clock,
		logger:       logger,
	}
}

// Execute opens a session for eventSlug, or for the default event when
// eventSlug is blank. The event itself is not required to exist.
func (uc *CreateSessionUseCase) Execute(ctx context.Context, eventSlug string) (*session.Session, error) {
	eventSlug = strings.TrimSpace(eventSlug)
	if eventSlug == "" {
		eventSlug = uc.defaultSlugs.DefaultEventSlug(ctx)
	}
	if !event.IsValidSlug(eventSlug) {
		return nil, errors.NewValidationError("invalid event slug", eventSlug)
	}

	sessionID, err := uc.tokens.NewSessionID()
	if err != nil {
		return nil, errors.NewInternalError("failed to generate session id")
	}
	token, err := uc.tokens.NewSessionToken()
	if err != nil {
		return nil, errors.NewInternalError("failed to generate session token")
	}

	s, err := session.NewSession(sessionID, token, eventSlug, uc.clock(), uc.window)
	if err != nil {
		uc.logger.Errorw("invalid session", "error", err)
		return nil, errors.NewInternalError("failed to create session")
	}

	if err := uc.sessionRepo.Create(ctx, s); err != nil {
		uc.logger.Errorw("failed to save session", "event_slug", eventSlug, "error", err)
		return nil, errors.NewStorageError("failed to create session", err)
	}

	metrics.SessionCreated()
	uc.logger.Infow("session created",
		"session_id", s.ID(),
		"event_slug", s.EventSlug(),
		"expires_at", s.ExpiresAt(),
	)
	return s, nil
}
