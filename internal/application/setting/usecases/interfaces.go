package usecases

import (
	"context"

	"github.com/orris-inc/photobooth/internal/domain/setting"
	"github.com/orris-inc/photobooth/internal/shared/logger"
)

// PasswordHasher hashes new admin passwords and verifies candidates against
// stored hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// loadDocument never fails: an unreadable document is treated as empty.
func loadDocument(ctx context.Context, repo setting.Repository, log logger.Interface) setting.Document {
	doc, err := repo.Load(ctx)
	if err != nil {
		log.Warnw("settings unreadable, falling back to defaults", "error", err)
		return setting.Document{}
	}
	if doc == nil {
		return setting.Document{}
	}
	return doc
}
