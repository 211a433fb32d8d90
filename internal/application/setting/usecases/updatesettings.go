package usecases

import (
	"context"
	"strings"

	"github.com/orris-inc/photobooth/internal/domain/event"
	"github.com/orris-inc/photobooth/internal/domain/setting"
	"github.com/orris-inc/photobooth/internal/shared/errors"
	"github.com/orris-inc/photobooth/internal/shared/logger"
)

// UpdateSettingsCommand carries the fields to change. Nil fields are left
// as stored.
type UpdateSettingsCommand struct {
	MediaRoot        *string
	DefaultEventSlug *string
}

type UpdateSettingsUseCase struct {
	settingRepo setting.Repository
	defaults    setting.Defaults
	logger      logger.Interface
}

func NewUpdateSettingsUseCase(
	settingRepo setting.Repository,
	defaults setting.Defaults,
	logger logger.Interface,
) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		settingRepo: settingRepo,
		defaults:    defaults,
		logger:      logger,
	}
}

// Execute trims each provided field, substitutes the default for blank
// values and rewrites the document. Every other stored key, including the
// password hash, is kept.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, cmd UpdateSettingsCommand) (*setting.Settings, error) {
	doc := loadDocument(ctx, uc.settingRepo, uc.logger).Clone()

	if cmd.MediaRoot != nil {
		root := strings.TrimSpace(*cmd.MediaRoot)
		if root == "" {
			root = uc.defaults.MediaRoot
		}
		doc.SetString(setting.KeyMediaRoot, root)
	}

	if cmd.DefaultEventSlug != nil {
		slug := strings.TrimSpace(*cmd.DefaultEventSlug)
		if slug == "" {
			slug = uc.defaults.DefaultEventSlug
		}
		if !event.IsValidSlug(slug) {
			return nil, errors.NewValidationError("invalid default event slug", slug)
		}
		doc.SetString(setting.KeyDefaultEventSlug, slug)
	}

	if err := uc.settingRepo.Save(ctx, doc); err != nil {
		uc.logger.Errorw("failed to save settings", "error", err)
		return nil, errors.NewStorageError("failed to save settings", err)
	}

	updated := setting.FromDocument(doc, uc.defaults)
	uc.logger.Infow("settings updated",
		"media_root", updated.MediaRoot(),
		"default_event_slug", updated.DefaultEventSlug(),
	)
	return updated, nil
}
