package event

import (
	"context"

	"github.com/orris-inc/photobooth/internal/application/event/dto"
	"github.com/orris-inc/photobooth/internal/application/event/usecases"
	"github.com/orris-inc/photobooth/internal/domain/event"
	"github.com/orris-inc/photobooth/internal/shared/biztime"
	"github.com/orris-inc/photobooth/internal/shared/logger"
)

// ServiceDDD aggregates all event use cases
type ServiceDDD struct {
	listEventsUC    *usecases.ListEventsUseCase
	createEventUC   *usecases.CreateEventUseCase
	getEventUC      *usecases.GetEventUseCase
	ensureDefaultUC *usecases.EnsureDefaultEventUseCase
}

func NewServiceDDD(
	eventRepo event.Repository,
	cache usecases.EventCache,
	sanitizer usecases.NameSanitizer,
	clock biztime.Clock,
	logger logger.Interface,
) *ServiceDDD {
	return &ServiceDDD{
		listEventsUC:    usecases.NewListEventsUseCase(eventRepo, logger),
		createEventUC:   usecases.NewCreateEventUseCase(eventRepo, sanitizer, cache, clock, logger),
		getEventUC:      usecases.NewGetEventUseCase(eventRepo, cache, logger),
		ensureDefaultUC: usecases.NewEnsureDefaultEventUseCase(eventRepo, clock, logger),
	}
}

func (s *ServiceDDD) ListEvents(ctx context.Context) ([]*dto.EventResponse, error) {
	events, err := s.listEventsUC.Execute(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToEventResponseList(events), nil
}

func (s *ServiceDDD) CreateEvent(ctx context.Context, name string) (*dto.EventResponse, error) {
	e, err := s.createEventUC.Execute(ctx, name)
	if err != nil {
		return nil, err
	}
	return dto.ToEventResponse(e), nil
}

func (s *ServiceDDD) GetEvent(ctx context.Context, slug string) (*dto.EventResponse, error) {
	e, err := s.getEventUC.Execute(ctx, slug)
	if err != nil {
		return nil, err
	}
	return dto.ToEventResponse(e), nil
}

// EnsureDefault seeds the default event; call once at startup.
func (s *ServiceDDD) EnsureDefault(ctx context.Context) error {
	return s.ensureDefaultUC.Execute(ctx)
}
