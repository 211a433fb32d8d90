package usecases

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/orris-inc/photobooth/internal/domain/setting"
	"github.com/orris-inc/photobooth/internal/shared/errors"
	"github.com/orris-inc/photobooth/internal/shared/logger"
)

// VerifyPasswordUseCase checks a candidate admin password. Without a
// stored hash only the configured default password is accepted.
type VerifyPasswordUseCase struct {
	settingRepo     setting.Repository
	hasher          PasswordHasher
	defaultPassword string
	logger          logger.Interface
}

func NewVerifyPasswordUseCase(
	settingRepo setting.Repository,
	hasher PasswordHasher,
	defaultPassword string,
	logger logger.Interface,
) *VerifyPasswordUseCase {
	return &VerifyPasswordUseCase{
		settingRepo:     settingRepo,
		hasher:          hasher,
		defaultPassword: defaultPassword,
		logger:          logger,
	}
}

func (uc *VerifyPasswordUseCase) Execute(ctx context.Context, candidate string) bool {
	doc := loadDocument(ctx, uc.settingRepo, uc.logger)
	hash := strings.TrimSpace(doc.String(setting.KeyAdminPasswordHash))
	if hash == "" {
		return subtle.ConstantTimeCompare([]byte(candidate), []byte(uc.defaultPassword)) == 1
	}
	return uc.hasher.Verify(candidate, hash)
}

// ChangePasswordUseCase replaces the admin password after verifying the
// current one.
type ChangePasswordUseCase struct {
	settingRepo setting.Repository
	verifier    *VerifyPasswordUseCase
	hasher      PasswordHasher
	logger      logger.Interface
}

func NewChangePasswordUseCase(
	settingRepo setting.Repository,
	verifier *VerifyPasswordUseCase,
	hasher PasswordHasher,
	logger logger.Interface,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		settingRepo: settingRepo,
		verifier:    verifier,
		hasher:      hasher,
		logger:      logger,
	}
}

// Execute returns false when current does not verify or newPassword is
// blank after trimming. Errors are reserved for storage failures.
func (uc *ChangePasswordUseCase) Execute(ctx context.Context, current, newPassword string) (bool, error) {
	if !uc.verifier.Execute(ctx, current) {
		uc.logger.Warnw("admin password change rejected: current password mismatch")
		return false, nil
	}

	newPassword = strings.TrimSpace(newPassword)
	if newPassword == "" {
		return false, nil
	}

	if err := storePasswordHash(ctx, uc.settingRepo, uc.hasher, newPassword, uc.logger); err != nil {
		return false, err
	}

	uc.logger.Infow("admin password changed")
	return true, nil
}

// ResetPasswordUseCase sets the admin password without the current one.
// Only the command line exposes it.
type ResetPasswordUseCase struct {
	settingRepo setting.Repository
	hasher      PasswordHasher
	logger      logger.Interface
}

func NewResetPasswordUseCase(
	settingRepo setting.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		settingRepo: settingRepo,
		hasher:      hasher,
		logger:      logger,
	}
}

func (uc *ResetPasswordUseCase) Execute(ctx context.Context, newPassword string) error {
	newPassword = strings.TrimSpace(newPassword)
	if newPassword == "" {
		return errors.NewValidationError("new password is required")
	}

	if err := storePasswordHash(ctx, uc.settingRepo, uc.hasher, newPassword, uc.logger); err != nil {
		return err
	}

	uc.logger.Infow("admin password reset")
	return nil
}

func storePasswordHash(
	ctx context.Context,
	repo setting.Repository,
	hasher PasswordHasher,
	password string,
	log logger.Interface,
) error {
	hash, err := hasher.Hash(password)
	if err != nil {
		log.Errorw("failed to hash admin password", "error", err)
		return errors.NewInternalError("failed to hash password")
	}

	doc := loadDocument(ctx, repo, log).Clone()
	doc.SetString(setting.KeyAdminPasswordHash, hash)

	if err := repo.Save(ctx, doc); err != nil {
		log.Errorw("failed to save admin password hash", "error", err)
		return errors.NewStorageError("failed to save settings", err)
	}
	return nil
}
