package mappers

import (
	"fmt"

	"github.com/orris-inc/photobooth/internal/domain/event"
	"github.com/orris-inc/photobooth/internal/infrastructure/persistence/models"
)

// EventMapper converts between event entities and persistence models.
type EventMapper interface {
	ToDomain(model *models.EventModel) (*event.Event, error)
	ToModel(entity *event.Event) *models.EventModel
	ToDomainList(modelList []models.EventModel) ([]*event.Event, error)
}

type EventMapperImpl struct{}

func NewEventMapper() EventMapper {
	return &EventMapperImpl{}
}

func (m *EventMapperImpl) ToDomain(model *models.EventModel) (*event.Event, error) {
	if model == nil {
		return nil, nil
	}
	e, err := event.ReconstructEvent(model.ID, model.Name, model.Slug, model.CreatedAt.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct event %d: %w", model.ID, err)
	}
	return e, nil
}

func (m *EventMapperImpl) ToModel(entity *event.Event) *models.EventModel {
	if entity == nil {
		return nil
	}
	return &models.EventModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		Slug:      entity.Slug(),
		CreatedAt: entity.CreatedAt(),
	}
}

func (m *EventMapperImpl) ToDomainList(modelList []models.EventModel) ([]*event.Event, error) {
	events := make([]*event.Event, 0, len(modelList))
	for i := range modelList {
		e, err := m.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}
