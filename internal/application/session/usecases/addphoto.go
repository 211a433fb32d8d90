package usecases

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/orris-inc/photobooth/internal/domain/session"
	"github.com/orris-inc/photobooth/internal/shared/biztime"
	"github.com/orris-inc/photobooth/internal/shared/errors"
	"github.com/orris-inc/photobooth/internal/shared/logger"
)

// AddPhotoUseCase appends a photo URL to a session. Expired sessions still
// accept photos.
type AddPhotoUseCase struct {
	sessionRepo session.Repository
	clock       biztime.Clock
	logger      logger.Interface
}

func NewAddPhotoUseCase(sessionRepo session.Repository, clock biztime.Clock, logger logger.Interface) *AddPhotoUseCase {
	return &AddPhotoUseCase{
		sessionRepo: sessionRepo,
		clock:       clock,
		logger:      logger,
	}
}

// Execute appends photo and returns the updated session.
func (uc *AddPhotoUseCase) Execute(ctx context.Context, sessionID string, photo session.Photo) (*session.Session, error) {
	if strings.TrimSpace(photo.URL) == "" {
		return nil, errors.NewValidationError("photo url is required")
	}
	if sessionID == "" {
		return nil, notFound()
	}
	if photo.CreatedAt.IsZero() {
		photo.CreatedAt = uc.clock()
	}

	if err := uc.sessionRepo.AppendPhoto(ctx, sessionID, photo); err != nil {
		if stderrors.Is(err, session.ErrSessionNotFound) {
			return nil, notFound()
		}
		uc.logger.Errorw("failed to append photo", "session_id", sessionID, "error", err)
		return nil, errors.NewStorageError("failed to add photo to session", err)
	}

	uc.logger.Infow("photo added to session", "session_id", sessionID, "url", photo.URL)
	return loadSession(ctx, uc.sessionRepo, sessionID, uc.logger)
}
