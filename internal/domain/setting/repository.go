package setting

import "context"

// Repository persists the settings document as a whole.
type Repository interface {
	// Load returns the stored document. A missing document yields an empty
	// one; an unreadable one yields ErrCorruptDocument.
	Load(ctx context.Context) (Document, error)

	// Save replaces the stored document atomically
	Save(ctx context.Context, doc Document) error
}
