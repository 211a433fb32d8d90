package usecases

import (
	"context"
	stderrors "errors"

	"github.com/orris-inc/photobooth/internal/domain/session"
	"github.com/orris-inc/photobooth/internal/shared/biztime"
	"github.com/orris-inc/photobooth/internal/shared/errors"
	"github.com/orris-inc/photobooth/internal/shared/logger"
)

// notFound is the single error returned for every failed lookup so that
// callers cannot probe which check failed.
func notFound() error {
	return errors.NewNotFoundError("session not found or expired")
}

func loadSession(ctx context.Context, repo session.Repository, sessionID string, log logger.Interface) (*session.Session, error) {
	if sessionID == "" {
		return nil, notFound()
	}
	s, err := repo.GetByID(ctx, sessionID)
	if err != nil {
		if stderrors.Is(err, session.ErrSessionNotFound) {
			return nil, notFound()
		}
		log.Errorw("failed to load session", "session_id", sessionID, "error", err)
		return nil, errors.NewStorageError("failed to load session", err)
	}
	return s, nil
}

// FindSessionUseCase loads a session for trusted callers. Neither the token
// nor the expiry is checked.
type FindSessionUseCase struct {
	sessionRepo session.Repository
	logger      logger.Interface
}

func NewFindSessionUseCase(sessionRepo session.Repository, logger logger.Interface) *FindSessionUseCase {
	return &FindSessionUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (uc *FindSessionUseCase) Execute(ctx context.Context, sessionID string) (*session.Session, error) {
	return loadSession(ctx, uc.sessionRepo, sessionID, uc.logger)
}

// AuthenticateSessionUseCase loads a session on behalf of a public caller.
// Unknown id, empty or wrong token and expiry all yield the same not found
// error.
type AuthenticateSessionUseCase struct {
	sessionRepo session.Repository
	clock       biztime.Clock
	logger      logger.Interface
}

func NewAuthenticateSessionUseCase(
	sessionRepo session.Repository,
	clock biztime.Clock,
	logger logger.Interface,
) *AuthenticateSessionUseCase {
	return &AuthenticateSessionUseCase{
		sessionRepo: sessionRepo,
		clock:       clock,
		logger:      logger,
	}
}

func (uc *AuthenticateSessionUseCase) Execute(ctx context.Context, sessionID, token string) (*session.Session, error) {
	if token == "" {
		return nil, notFound()
	}

	s, err := loadSession(ctx, uc.sessionRepo, sessionID, uc.logger)
	if err != nil {
		return nil, err
	}

	if !s.TokenMatches(token) {
		uc.logger.Debugw("session token mismatch", "session_id", sessionID)
		return nil, notFound()
	}
	if s.IsExpired(uc.clock()) {
		uc.logger.Debugw("session expired", "session_id", sessionID, "expires_at", s.ExpiresAt())
		return nil, notFound()
	}
	return s, nil
}
