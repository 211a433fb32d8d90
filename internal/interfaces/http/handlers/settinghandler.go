package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/photobooth/internal/application/setting/dto"
	"github.com/orris-inc/photobooth/internal/shared/errors"
	"github.com/orris-inc/photobooth/internal/shared/logger"
	"github.com/orris-inc/photobooth/internal/shared/utils"
)

type SettingHandler struct {
	settings SettingService
	tokens   AdminTokenIssuer
	logger   logger.Interface
}

func NewSettingHandler(settings SettingService, tokens AdminTokenIssuer, logger logger.Interface) *SettingHandler {
	return &SettingHandler{
		settings: settings,
		tokens:   tokens,
		logger:   logger,
	}
}

// GetSettings handles GET /api/v1/settings
func (h *SettingHandler) GetSettings(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", h.settings.GetSettings(c.Request.Context()))
}

// UpdateSettings handles PUT /api/v1/settings. Absent fields are left
// unchanged.
func (h *SettingHandler) UpdateSettings(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update settings", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.settings.UpdateSettings(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("settings updated", "media_root", result.MediaRoot, "default_event_slug", result.DefaultEventSlug)
	utils.SuccessResponse(c, http.StatusOK, "Settings updated successfully", result)
}

// VerifyPassword handles POST /api/v1/settings/verify-password. A valid
// password also yields an admin token.
func (h *SettingHandler) VerifyPassword(c *gin.Context) {
	var req dto.VerifyPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	ctx := c.Request.Context()
	if !h.settings.VerifyPassword(ctx, strings.TrimSpace(req.Password)) {
		h.logger.Warnw("admin password rejected", "client_ip", c.ClientIP())
		utils.SuccessResponse(c, http.StatusOK, "", &dto.VerifyPasswordResponse{Valid: false})
		return
	}

	resp := &dto.VerifyPasswordResponse{Valid: true}
	if h.tokens != nil {
		token, expiresAt, err := h.tokens.Generate()
		if err != nil {
			h.logger.Errorw("failed to issue admin token", "error", err)
			utils.ErrorResponseWithError(c, errors.NewInternalError("failed to issue admin token"))
			return
		}
		resp.Token = token
		resp.ExpiresAt = expiresAt.Unix()
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// ChangePassword handles POST /api/v1/settings/change-password
func (h *SettingHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	newPassword := strings.TrimSpace(req.NewPassword)
	if newPassword == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("New password is required"))
		return
	}

	changed, err := h.settings.ChangePassword(c.Request.Context(), strings.TrimSpace(req.CurrentPassword), newPassword)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if !changed {
		h.logger.Warnw("password change rejected", "client_ip", c.ClientIP())
		utils.ErrorResponseWithError(c, errors.NewValidationError("Incorrect current password"))
		return
	}

	h.logger.Infow("admin password changed")
	utils.SuccessResponse(c, http.StatusOK, "Password changed successfully", nil)
}
