package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/photobooth/internal/shared/errors"
	"github.com/orris-inc/photobooth/internal/shared/logger"
	"github.com/orris-inc/photobooth/internal/shared/utils"
)

const htmlContentType = "text/html; charset=utf-8"

const galleryNotFoundPage = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Gallery not found</title></head>
<body><h1>Gallery not found or expired</h1></body>
</html>`

type GalleryHandler struct {
	renderer GalleryRenderer
	logger   logger.Interface
}

func NewGalleryHandler(renderer GalleryRenderer, logger logger.Interface) *GalleryHandler {
	return &GalleryHandler{
		renderer: renderer,
		logger:   logger,
	}
}

// Show handles GET /gallery/:id?token=
func (h *GalleryHandler) Show(c *gin.Context) {
	page, err := h.renderer.Execute(c.Request.Context(), c.Param("id"), c.Query("token"))
	if err != nil {
		if errors.IsNotFoundError(err) {
			c.Data(http.StatusNotFound, htmlContentType, []byte(galleryNotFoundPage))
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, htmlContentType, page)
}
