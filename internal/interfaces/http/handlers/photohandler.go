package handlers

import (
	stderrors "errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/photobooth/internal/application/photo/usecases"
	"github.com/orris-inc/photobooth/internal/shared/errors"
	"github.com/orris-inc/photobooth/internal/shared/logger"
	"github.com/orris-inc/photobooth/internal/shared/utils"
)

// multipartOverhead is allowed on top of the file limit for form fields
// and part headers.
const multipartOverhead = 1 << 20

type PhotoHandler struct {
	uploader PhotoUploader
	maxBytes int64
	logger   logger.Interface
}

// NewPhotoHandler creates a PhotoHandler. maxBytes bounds the uploaded file;
// zero disables the limit.
func NewPhotoHandler(uploader PhotoUploader, maxBytes int64, logger logger.Interface) *PhotoHandler {
	return &PhotoHandler{
		uploader: uploader,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// Upload handles POST /api/v1/photos/upload with a multipart "file" field
// and optional "session_id" and "event_slug" fields.
func (h *PhotoHandler) Upload(c *gin.Context) {
	if h.maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartOverhead)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			utils.ErrorResponseWithError(c, errors.NewValidationError("upload too large"))
			return
		}
		h.logger.Warnw("upload without file part", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Errorw("failed to open uploaded file", "filename", fileHeader.Filename, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("could not read uploaded file"))
		return
	}
	defer file.Close()

	var reader io.Reader = file
	if h.maxBytes > 0 {
		// one extra byte lets validation see the overflow
		reader = io.LimitReader(file, h.maxBytes+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		h.logger.Errorw("failed to read uploaded file", "filename", fileHeader.Filename, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("could not read uploaded file"))
		return
	}

	result, err := h.uploader.Execute(c.Request.Context(), usecases.UploadPhotoCommand{
		Data:        data,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		SessionID:   c.PostForm("session_id"),
		EventSlug:   c.PostForm("event_slug"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Photo uploaded successfully")
}
