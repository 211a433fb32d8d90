package event

import "context"

// Repository defines persistence for events
type Repository interface {
	// List returns every event ordered by name
	List(ctx context.Context) ([]*Event, error)

	// GetBySlug returns ErrEventNotFound when the slug is unknown
	GetBySlug(ctx context.Context, slug string) (*Event, error)

	// SlugExists reports whether an event already uses slug
	SlugExists(ctx context.Context, slug string) (bool, error)

	// Create inserts the event and assigns its ID. It returns ErrSlugTaken
	// when the unique constraint on slug is violated.
	Create(ctx context.Context, e *Event) error

	// CreateIfAbsent inserts the event unless its slug exists, in which case
	// it is a no-op.
	CreateIfAbsent(ctx context.Context, e *Event) error
}
