package event

import "errors"

var (
	// ErrEventNotFound is returned when no event has the requested slug
	ErrEventNotFound = errors.New("event not found")

	// ErrEmptyName is returned when the name is blank after trimming
	ErrEmptyName = errors.New("event name cannot be empty")

	// ErrInvalidSlug is returned when a slug contains characters other than
	// word characters and '-'
	ErrInvalidSlug = errors.New("invalid event slug")

	// ErrSlugTaken is returned by repositories when the slug already exists
	ErrSlugTaken = errors.New("event slug already exists")
)
