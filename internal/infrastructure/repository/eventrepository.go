package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/orris-inc/photobooth/internal/domain/event"
	"github.com/orris-inc/photobooth/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/photobooth/internal/infrastructure/persistence/models"
	apperrors "github.com/orris-inc/photobooth/internal/shared/errors"
	"github.com/orris-inc/photobooth/internal/shared/logger"
)

// EventRepository implements event.Repository
type EventRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.EventMapper
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *gorm.DB, logger logger.Interface) *EventRepository {
	return &EventRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewEventMapper(),
	}
}

// List returns all events ordered by name
func (r *EventRepository) List(ctx context.Context) ([]*event.Event, error) {
	var modelList []models.EventModel

	if err := r.db.WithContext(ctx).Order("name ASC").Order("id ASC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list events", "error", err)
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return r.mapper.ToDomainList(modelList)
}

// GetBySlug retrieves an event by slug
func (r *EventRepository) GetBySlug(ctx context.Context, slug string) (*event.Event, error) {
	var model models.EventModel

	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, event.ErrEventNotFound
		}
		r.logger.Errorw("failed to get event by slug", "slug", slug, "error", err)
		return nil, fmt.Errorf("failed to get event by slug: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// SlugExists reports whether a slug is taken
func (r *EventRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64

	if err := r.db.WithContext(ctx).Model(&models.EventModel{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check event slug: %w", err)
	}

	return count > 0, nil
}

// Create inserts a new event
func (r *EventRepository) Create(ctx context.Context, e *event.Event) error {
	model := r.mapper.ToModel(e)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return event.ErrSlugTaken
		}
		r.logger.Errorw("failed to create event", "slug", e.Slug(), "error", err)
		return fmt.Errorf("failed to create event: %w", err)
	}

	return e.SetID(model.ID)
}

// CreateIfAbsent inserts the event unless its slug already exists
func (r *EventRepository) CreateIfAbsent(ctx context.Context, e *event.Event) error {
	model := r.mapper.ToModel(e)

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoNothing: true,
		}).
		Create(model)
	if result.Error != nil {
		r.logger.Errorw("failed to seed event", "slug", e.Slug(), "error", result.Error)
		return fmt.Errorf("failed to seed event: %w", result.Error)
	}

	if result.RowsAffected > 0 && model.ID != 0 {
		return e.SetID(model.ID)
	}
	return nil
}
