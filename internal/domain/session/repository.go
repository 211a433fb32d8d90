package session

import "context"

// Repository defines persistence for sessions and their photos
type Repository interface {
	// Create inserts a new session
	Create(ctx context.Context, s *Session) error

	// GetByID loads a session with its photos, or ErrSessionNotFound
	GetByID(ctx context.Context, id string) (*Session, error)

	// AppendPhoto atomically adds a photo to the end of the session's list.
	// Returns ErrSessionNotFound when the session does not exist.
	AppendPhoto(ctx context.Context, sessionID string, photo Photo) error

	// UpdateToken persists the token and expiry of s
	UpdateToken(ctx context.Context, s *Session) error

	// ListByEventSlug returns all sessions of an event, newest first
	ListByEventSlug(ctx context.Context, eventSlug string) ([]*Session, error)
}
