package usecases

import (
	"context"
	stderrors "errors"

	"github.com/orris-inc/photobooth/internal/infrastructure/storage"
	"github.com/orris-inc/photobooth/internal/shared/errors"
	"github.com/orris-inc/photobooth/internal/shared/logger"
)

// ResolveMediaUseCase maps a /media/ request path onto a file inside the
// media root.
type ResolveMediaUseCase struct {
	media  MediaReader
	logger logger.Interface
}

func NewResolveMediaUseCase(media MediaReader, logger logger.Interface) *ResolveMediaUseCase {
	return &ResolveMediaUseCase{
		media:  media,
		logger: logger,
	}
}

func (uc *ResolveMediaUseCase) Execute(ctx context.Context, rel string) (string, error) {
	path, err := uc.media.Resolve(ctx, rel)
	switch {
	case err == nil:
		return path, nil
	case stderrors.Is(err, storage.ErrPathOutsideRoot):
		uc.logger.Warnw("media path escapes root", "path", rel)
		return "", errors.NewForbiddenError("access denied")
	case stderrors.Is(err, storage.ErrFileNotFound):
		return "", errors.NewNotFoundError("file not found")
	default:
		uc.logger.Errorw("failed to resolve media path", "path", rel, "error", err)
		return "", errors.NewStorageError("failed to resolve media", err)
	}
}
