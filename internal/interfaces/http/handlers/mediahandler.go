package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/photobooth/internal/shared/logger"
	"github.com/orris-inc/photobooth/internal/shared/utils"
)

type MediaHandler struct {
	resolver MediaResolver
	logger   logger.Interface
}

func NewMediaHandler(resolver MediaResolver, logger logger.Interface) *MediaHandler {
	return &MediaHandler{
		resolver: resolver,
		logger:   logger,
	}
}

// Serve handles GET /media/*path
func (h *MediaHandler) Serve(c *gin.Context) {
	rel := strings.TrimPrefix(c.Param("path"), "/")

	absPath, err := h.resolver.Execute(c.Request.Context(), rel)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.File(absPath)
}
