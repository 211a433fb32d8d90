package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/photobooth/internal/application/event/dto"
	"github.com/orris-inc/photobooth/internal/shared/logger"
	"github.com/orris-inc/photobooth/internal/shared/utils"
)

type EventHandler struct {
	events EventService
	photos EventPhotoLister
	logger logger.Interface
}

func NewEventHandler(events EventService, photos EventPhotoLister, logger logger.Interface) *EventHandler {
	return &EventHandler{
		events: events,
		photos: photos,
		logger: logger,
	}
}

// ListEvents handles GET /api/v1/settings/events
func (h *EventHandler) ListEvents(c *gin.Context) {
	result, err := h.events.ListEvents(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateEvent handles POST /api/v1/settings/events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create event", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.events.CreateEvent(c.Request.Context(), req.Name)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Event created successfully")
}

// GetEvent handles GET /api/v1/settings/events/:slug
func (h *EventHandler) GetEvent(c *gin.Context) {
	result, err := h.events.GetEvent(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListEventPhotos handles GET /api/v1/settings/events/:slug/photos. Photos
// are listed newest first.
func (h *EventHandler) ListEventPhotos(c *gin.Context) {
	photos, err := h.photos.Execute(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"photos": photos})
}
