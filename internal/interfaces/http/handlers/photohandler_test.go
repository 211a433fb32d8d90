package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	photodto "github.com/orris-inc/photobooth/internal/application/photo/dto"
	"github.com/orris-inc/photobooth/internal/interfaces/http/handlers/testutil"
	"github.com/orris-inc/photobooth/internal/shared/errors"
)

func runUpload(h *PhotoHandler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	h.Upload(c)
	return w
}

func TestPhotoHandler_Upload(t *testing.T) {
	uploader := &mockUploader{
		result: &photodto.UploadPhotoResponse{
			URL:         "/media/events/onlocation/uploads/20240601_120000_photo.png",
			ContentType: "image/png",
			Size:        4,
		},
	}
	h := NewPhotoHandler(uploader, 1<<20, testLogger)

	req := testutil.NewMultipartRequest(t, "/api/v1/photos/upload",
		&testutil.MultipartFile{Field: "file", Filename: "photo.png", ContentType: "image/png", Data: []byte("data")},
		map[string]string{"session_id": "sess-1"})
	w := runUpload(h, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var got photodto.UploadPhotoResponse
	testutil.DecodeData(t, w, &got)
	assert.Equal(t, uploader.result.URL, got.URL)

	assert.Equal(t, []byte("data"), uploader.lastCmd.Data)
	assert.Equal(t, "photo.png", uploader.lastCmd.Filename)
	assert.Equal(t, "image/png", uploader.lastCmd.ContentType)
	assert.Equal(t, "sess-1", uploader.lastCmd.SessionID)
	assert.Empty(t, uploader.lastCmd.EventSlug)
}

func TestPhotoHandler_UploadWithoutFile(t *testing.T) {
	uploader := &mockUploader{}
	h := NewPhotoHandler(uploader, 1<<20, testLogger)

	req := testutil.NewMultipartRequest(t, "/api/v1/photos/upload", nil, map[string]string{"session_id": "sess-1"})
	w := runUpload(h, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, uploader.lastCmd.SessionID)
}

func TestPhotoHandler_UploadTooLarge(t *testing.T) {
	uploader := &mockUploader{}
	h := NewPhotoHandler(uploader, 16, testLogger)

	big := bytes.Repeat([]byte{0xff}, 2*multipartOverhead)
	req := testutil.NewMultipartRequest(t, "/api/v1/photos/upload",
		&testutil.MultipartFile{Field: "file", Filename: "big.jpg", ContentType: "image/jpeg", Data: big}, nil)
	w := runUpload(h, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, uploader.lastCmd.Data)
}

func TestPhotoHandler_UploadErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "validation", err: errors.NewValidationError("invalid upload"), wantStatus: http.StatusBadRequest},
		{name: "unknown session", err: errors.NewNotFoundError("session not found or expired"), wantStatus: http.StatusNotFound},
		{name: "storage", err: errors.NewStorageError("failed to store upload", assert.AnError), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewPhotoHandler(&mockUploader{err: tt.err}, 0, testLogger)
			req := testutil.NewMultipartRequest(t, "/api/v1/photos/upload",
				&testutil.MultipartFile{Field: "file", Filename: "photo.jpg", ContentType: "image/jpeg", Data: []byte("x")}, nil)
			w := runUpload(h, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp testutil.APIResponse
			require.NoError(t, testutil.ParseResponse(w, &resp))
			assert.False(t, resp.Success)
			assert.NotContains(t, w.Body.String(), assert.AnError.Error())
		})
	}
}
