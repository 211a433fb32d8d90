package usecases

import "context"

// MediaReader resolves media paths and lists stored uploads.
type MediaReader interface {
	Resolve(ctx context.Context, rel string) (string, error)
	ListEventPhotos(ctx context.Context, eventSlug string) ([]string, error)
}

// MediaSweeper deletes media older than the retention window.
type MediaSweeper interface {
	CleanupOldFiles(ctx context.Context) (int, error)
}
