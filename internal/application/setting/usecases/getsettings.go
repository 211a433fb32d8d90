package usecases

import (
	"context"

	"github.com/orris-inc/photobooth/internal/domain/setting"
	"github.com/orris-inc/photobooth/internal/shared/logger"
)

// GetSettingsUseCase returns the stored settings merged with defaults.
type GetSettingsUseCase struct {
	settingRepo setting.Repository
	defaults    setting.Defaults
	logger      logger.Interface
}

func NewGetSettingsUseCase(
	settingRepo setting.Repository,
	defaults setting.Defaults,
	logger logger.Interface,
) *GetSettingsUseCase {
	return &GetSettingsUseCase{
		settingRepo: settingRepo,
		defaults:    defaults,
		logger:      logger,
	}
}

func (uc *GetSettingsUseCase) Execute(ctx context.Context) *setting.Settings {
	return setting.FromDocument(loadDocument(ctx, uc.settingRepo, uc.logger), uc.defaults)
}
