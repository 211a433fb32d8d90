package setting

import (
	"context"

	"github.com/orris-inc/photobooth/internal/application/setting/dto"
	"github.com/orris-inc/photobooth/internal/application/setting/usecases"
	"github.com/orris-inc/photobooth/internal/domain/setting"
	"github.com/orris-inc/photobooth/internal/shared/logger"
)

// ServiceDDD aggregates all setting-related use cases
type ServiceDDD struct {
	getSettingsUC    *usecases.GetSettingsUseCase
	updateSettingsUC *usecases.UpdateSettingsUseCase
	verifyPasswordUC *usecases.VerifyPasswordUseCase
	changePasswordUC *usecases.ChangePasswordUseCase
	resetPasswordUC  *usecases.ResetPasswordUseCase
	logger           logger.Interface
}

func NewServiceDDD(
	settingRepo setting.Repository,
	defaults setting.Defaults,
	defaultPassword string,
	hasher usecases.PasswordHasher,
	logger logger.Interface,
) *ServiceDDD {
	verifyUC := usecases.NewVerifyPasswordUseCase(settingRepo, hasher, defaultPassword, logger)

	return &ServiceDDD{
		getSettingsUC:    usecases.NewGetSettingsUseCase(settingRepo, defaults, logger),
		updateSettingsUC: usecases.NewUpdateSettingsUseCase(settingRepo, defaults, logger),
		verifyPasswordUC: verifyUC,
		changePasswordUC: usecases.NewChangePasswordUseCase(settingRepo, verifyUC, hasher, logger),
		resetPasswordUC:  usecases.NewResetPasswordUseCase(settingRepo, hasher, logger),
		logger:           logger,
	}
}

// Get returns the current settings; it never fails.
func (s *ServiceDDD) Get(ctx context.Context) *setting.Settings {
	return s.getSettingsUC.Execute(ctx)
}

func (s *ServiceDDD) GetSettings(ctx context.Context) *dto.SettingsResponse {
	return dto.ToSettingsResponse(s.Get(ctx))
}

func (s *ServiceDDD) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	updated, err := s.updateSettingsUC.Execute(ctx, usecases.UpdateSettingsCommand{
		MediaRoot:        req.MediaRoot,
		DefaultEventSlug: req.DefaultEventSlug,
	})
	if err != nil {
		return nil, err
	}
	return dto.ToSettingsResponse(updated), nil
}

func (s *ServiceDDD) VerifyPassword(ctx context.Context, candidate string) bool {
	return s.verifyPasswordUC.Execute(ctx, candidate)
}

func (s *ServiceDDD) ChangePassword(ctx context.Context, current, newPassword string) (bool, error) {
	return s.changePasswordUC.Execute(ctx, current, newPassword)
}

func (s *ServiceDDD) ResetPassword(ctx context.Context, newPassword string) error {
	return s.resetPasswordUC.Execute(ctx, newPassword)
}

// MediaRoot reports the configured media root. It makes the service usable
// as the storage root provider.
func (s *ServiceDDD) MediaRoot(ctx context.Context) string {
	return s.Get(ctx).MediaRoot()
}

func (s *ServiceDDD) DefaultEventSlug(ctx context.Context) string {
	return s.Get(ctx).DefaultEventSlug()
}
