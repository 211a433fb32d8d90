package usecases

import (
	"context"

	"github.com/orris-inc/photobooth/internal/shared/id"
)

// DefaultSlugProvider yields the event used when a session is created
// without one.
type DefaultSlugProvider interface {
	DefaultEventSlug(ctx context.Context) string
}

// TokenGenerator produces session identifiers and gallery tokens.
type TokenGenerator interface {
	NewSessionID() (string, error)
	NewSessionToken() (string, error)
}

// RandomTokens draws identifiers and tokens from crypto/rand.
type RandomTokens struct{}

func (RandomTokens) NewSessionID() (string, error) {
	return id.NewSessionID()
}

func (RandomTokens) NewSessionToken() (string, error) {
	return id.NewSessionToken()
}
