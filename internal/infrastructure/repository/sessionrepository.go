package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/photobooth/internal/domain/session"
	"github.com/orris-inc/photobooth/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/photobooth/internal/infrastructure/persistence/models"
	"github.com/orris-inc/photobooth/internal/shared/logger"
	"github.com/orris-inc/photobooth/internal/shared/utils/logutil"
)

// SessionRepository implements session.Repository on the sessions and
// session_photos tables.
type SessionRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.SessionMapper
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *gorm.DB, logger logger.Interface) *SessionRepository {
	return &SessionRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewSessionMapper(),
	}
}

func orderPhotos(db *gorm.DB) *gorm.DB {
	return db.Order("session_photos.id ASC")
}

func (r *SessionRepository) Create(ctx context.Context, s *session.Session) error {
	model := r.mapper.ToModel(s)

	if err := r.db.WithContext(ctx).Omit("Photos").Create(model).Error; err != nil {
		r.logger.Errorw("failed to create session", "event_slug", s.EventSlug(), "error", err)
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (*session.Session, error) {
	var model models.SessionModel

	err := r.db.WithContext(ctx).
		Preload("Photos", orderPhotos).
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, session.ErrSessionNotFound
		}
		r.logger.Errorw("failed to get session", "session_id", logutil.TruncateForLog(id, 8), "error", err)
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// AppendPhoto inserts one session_photos row after checking, in the same
// transaction, that the session exists. Concurrent appends each insert their
// own row, so none is lost.
func (r *SessionRepository) AppendPhoto(ctx context.Context, sessionID string, photo session.Photo) error {
	photoModel := r.mapper.ToPhotoModel(sessionID, photo)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.SessionModel{}).Where("id = ?", sessionID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check session: %w", err)
		}
		if count == 0 {
			return session.ErrSessionNotFound
		}

		if err := tx.Create(photoModel).Error; err != nil {
			r.logger.Errorw("failed to append photo", "session_id", logutil.TruncateForLog(sessionID, 8), "error", err)
			return fmt.Errorf("failed to append photo: %w", err)
		}
		return nil
	})
}

func (r *SessionRepository) UpdateToken(ctx context.Context, s *session.Session) error {
	result := r.db.WithContext(ctx).
		Model(&models.SessionModel{}).
		Where("id = ?", s.ID()).
		Updates(map[string]interface{}{
			"token":      s.Token(),
			"expires_at": s.ExpiresAt(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update session token", "session_id", logutil.TruncateForLog(s.ID(), 8), "error", result.Error)
		return fmt.Errorf("failed to update session token: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return session.ErrSessionNotFound
	}
	return nil
}

func (r *SessionRepository) ListByEventSlug(ctx context.Context, eventSlug string) ([]*session.Session, error) {
	var modelList []models.SessionModel

	err := r.db.WithContext(ctx).
		Preload("Photos", orderPhotos).
		Where("event_slug = ?", eventSlug).
		Order("created_at DESC").
		Order("id ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list sessions", "event_slug", eventSlug, "error", err)
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	sessions := make([]*session.Session, 0, len(modelList))
	for i := range modelList {
		s, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}
