package usecases

import (
	"context"

	"github.com/orris-inc/photobooth/internal/infrastructure/metrics"
	"github.com/orris-inc/photobooth/internal/shared/logger"
)

// CleanupMediaUseCase runs one retention sweep. It satisfies the
// scheduler's BatchJob.
type CleanupMediaUseCase struct {
	sweeper MediaSweeper
	logger  logger.Interface
}

func NewCleanupMediaUseCase(sweeper MediaSweeper, logger logger.Interface) *CleanupMediaUseCase {
	return &CleanupMediaUseCase{
		sweeper: sweeper,
		logger:  logger,
	}
}

func (uc *CleanupMediaUseCase) Execute(ctx context.Context) (int, error) {
	deleted, err := uc.sweeper.CleanupOldFiles(ctx)
	metrics.RetentionDeleted(deleted)
	if err != nil {
		uc.logger.Errorw("retention sweep failed", "deleted", deleted, "error", err)
		return deleted, err
	}
	uc.logger.Infow("retention sweep finished", "deleted", deleted)
	return deleted, nil
}
