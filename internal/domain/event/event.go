package event

import (
	"fmt"
	"strings"
	"time"
)

// Event groups sessions and upload directories. Events are never updated
// or deleted once created.
type Event struct {
	id        uint
	name      string
	slug      string
	createdAt time.Time
}

// NewEvent validates a new event before insertion. The name is trimmed; the
// slug must already be in slug format.
func NewEvent(name, slug string, createdAt time.Time) (*Event, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !IsValidSlug(slug) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}

	return &Event{
		name:      name,
		slug:      slug,
		createdAt: createdAt.UTC(),
	}, nil
}

// ReconstructEvent rebuilds an event from persistence
func ReconstructEvent(id uint, name, slug string, createdAt time.Time) (*Event, error) {
	if id == 0 {
		return nil, fmt.Errorf("event ID cannot be zero")
	}
	if slug == "" {
		return nil, fmt.Errorf("event slug is required")
	}

	return &Event{
		id:        id,
		name:      name,
		slug:      slug,
		createdAt: createdAt,
	}, nil
}

func (e *Event) ID() uint {
	return e.id
}

func (e *Event) Name() string {
	return e.name
}

func (e *Event) Slug() string {
	return e.slug
}

func (e *Event) CreatedAt() time.Time {
	return e.createdAt
}

// SetID assigns the database identifier after insertion.
func (e *Event) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("event ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("event ID cannot be zero")
	}
	e.id = id
	return nil
}
