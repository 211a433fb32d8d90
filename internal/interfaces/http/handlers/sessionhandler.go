package handlers

import (
	stderrors "errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	sessiondto "github.com/orris-inc/photobooth/internal/application/session/dto"
	"github.com/orris-inc/photobooth/internal/shared/errors"
	"github.com/orris-inc/photobooth/internal/shared/logger"
	"github.com/orris-inc/photobooth/internal/shared/utils"
)

type SessionHandler struct {
	sessions SessionService
	logger   logger.Interface
}

func NewSessionHandler(sessions SessionService, logger logger.Interface) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		logger:   logger,
	}
}

// CreateSession handles POST /api/v1/sessions. The body is optional; an
// empty body selects the default event.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req sessiondto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !stderrors.Is(err, io.EOF) {
		h.logger.Warnw("invalid request body for create session", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.sessions.CreateSession(c.Request.Context(), strings.TrimSpace(req.EventSlug))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Session created successfully")
}

// GetSession handles GET /api/v1/sessions/:id?token=
func (h *SessionHandler) GetSession(c *gin.Context) {
	result, err := h.sessions.GetSession(c.Request.Context(), c.Param("id"), c.Query("token"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// RegenerateToken handles POST /api/v1/settings/sessions/:id/regenerate
func (h *SessionHandler) RegenerateToken(c *gin.Context) {
	sessionID := strings.TrimSpace(c.Param("id"))
	if sessionID == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("session id is required"))
		return
	}

	result, err := h.sessions.RegenerateToken(c.Request.Context(), sessionID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("session token regenerated", "session_id", sessionID)
	utils.SuccessResponse(c, http.StatusOK, "Session token regenerated", result)
}

// ListEventSessions handles GET /api/v1/settings/events/:slug/sessions
func (h *SessionHandler) ListEventSessions(c *gin.Context) {
	result, err := h.sessions.ListForEvent(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
