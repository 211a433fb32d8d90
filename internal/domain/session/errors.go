package session

import "errors"

var (
	// ErrSessionNotFound covers unknown ids, wrong or empty tokens and
	// expired sessions alike. Callers cannot tell these apart.
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidWindow is returned when the expiry window is not positive
	ErrInvalidWindow = errors.New("session expiry window must be positive")
)
