package dto

import (
	"time"

	"github.com/orris-inc/photobooth/internal/domain/event"
)

type EventResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateEventRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

func ToEventResponse(e *event.Event) *EventResponse {
	if e == nil {
		return nil
	}
	return &EventResponse{
		ID:        e.ID(),
		Name:      e.Name(),
		Slug:      e.Slug(),
		CreatedAt: e.CreatedAt(),
	}
}

func ToEventResponseList(events []*event.Event) []*EventResponse {
	out := make([]*EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, ToEventResponse(e))
	}
	return out
}
