package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orris-inc/photobooth/internal/interfaces/http/handlers/testutil"
	"github.com/orris-inc/photobooth/internal/shared/errors"
)

func TestGalleryHandler_Show(t *testing.T) {
	t.Run("renders page", func(t *testing.T) {
		h := NewGalleryHandler(&mockGalleryRenderer{page: []byte("<html>gallery</html>")}, testLogger)
		c, w := testutil.NewTestContext(http.MethodGet, "/gallery/sess-1?token=tok", nil)
		testutil.SetURLParam(c, "id", "sess-1")

		h.Show(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, htmlContentType, w.Header().Get("Content-Type"))
		assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
		assert.Equal(t, "<html>gallery</html>", w.Body.String())
	})

	t.Run("invalid token renders not found page", func(t *testing.T) {
		h := NewGalleryHandler(&mockGalleryRenderer{err: errors.NewNotFoundError("session not found or expired")}, testLogger)
		c, w := testutil.NewTestContext(http.MethodGet, "/gallery/sess-1?token=bad", nil)
		testutil.SetURLParam(c, "id", "sess-1")

		h.Show(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Gallery not found or expired")
	})

	t.Run("storage failure", func(t *testing.T) {
		h := NewGalleryHandler(&mockGalleryRenderer{err: errors.NewStorageError("db down", assert.AnError)}, testLogger)
		c, w := testutil.NewTestContext(http.MethodGet, "/gallery/sess-1?token=tok", nil)
		testutil.SetURLParam(c, "id", "sess-1")

		h.Show(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
