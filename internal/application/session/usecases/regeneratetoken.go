package usecases

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/orris-inc/photobooth/internal/domain/session"
	"github.com/orris-inc/photobooth/internal/shared/biztime"
	"github.com/orris-inc/photobooth/internal/shared/errors"
	"github.com/orris-inc/photobooth/internal/shared/logger"
)

// maxTokenDraws bounds retries in the astronomically unlikely case that a
// fresh token equals the current one.
const maxTokenDraws = 3

// RegenerateTokenUseCase issues a new gallery token and restarts the expiry
// window. The previous gallery link stops working.
type RegenerateTokenUseCase struct {
	sessionRepo session.Repository
	tokens      TokenGenerator
	window      time.Duration
	clock       biztime.Clock
	logger      logger.Interface
}

func NewRegenerateTokenUseCase(
	sessionRepo session.Repository,
	tokens TokenGenerator,
	window time.Duration,
	clock biztime.Clock,
	logger logger.Interface,
) *RegenerateTokenUseCase {
	return &RegenerateTokenUseCase{
		sessionRepo: sessionRepo,
		tokens:      tokens,
		window:      window,
		clock:       clock,
		logger:      logger,
	}
}

func (uc *RegenerateTokenUseCase) Execute(ctx context.Context, sessionID string) (*session.Session, error) {
	s, err := loadSession(ctx, uc.sessionRepo, sessionID, uc.logger)
	if err != nil {
		return nil, err
	}

	regenerated := false
	for i := 0; i < maxTokenDraws && !regenerated; i++ {
		token, err := uc.tokens.NewSessionToken()
		if err != nil {
			return nil, errors.NewInternalError("failed to generate session token")
		}
		if token == s.Token() {
			continue
		}
		if err := s.RegenerateToken(token, uc.clock(), uc.window); err != nil {
			return nil, errors.NewInternalError("failed to regenerate session token")
		}
		regenerated = true
	}
	if !regenerated {
		return nil, errors.NewInternalError("failed to generate a distinct session token")
	}

	if err := uc.sessionRepo.UpdateToken(ctx, s); err != nil {
		if stderrors.Is(err, session.ErrSessionNotFound) {
			return nil, notFound()
		}
		uc.logger.Errorw("failed to update session token", "session_id", sessionID, "error", err)
		return nil, errors.NewStorageError("failed to regenerate session token", err)
	}

	uc.logger.Infow("session token regenerated", "session_id", sessionID, "expires_at", s.ExpiresAt())
	return s, nil
}
