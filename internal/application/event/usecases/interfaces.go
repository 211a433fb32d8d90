package usecases

import "github.com/orris-inc/photobooth/internal/domain/event"

// EventCache holds events by slug. Events never change after creation.
type EventCache interface {
	Get(slug string) (*event.Event, bool)
	Set(e *event.Event)
}

// NameSanitizer removes markup from user supplied display names.
type NameSanitizer interface {
	StripTags(s string) string
}
