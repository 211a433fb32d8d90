package handlers

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mediaUsecases "github.com/orris-inc/photobooth/internal/application/media/usecases"
	"github.com/orris-inc/photobooth/internal/infrastructure/storage"
	"github.com/orris-inc/photobooth/internal/interfaces/http/handlers/testutil"
)

type staticRoot string

func (r staticRoot) MediaRoot(ctx context.Context) string { return string(r) }

func TestMediaHandler_Serve(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "events", "onlocation", "uploads")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "photo.jpg"), []byte("jpeg-bytes"), 0o644))

	store := storage.NewMediaStore(staticRoot(root), 24*time.Hour, testLogger)
	h := NewMediaHandler(mediaUsecases.NewResolveMediaUseCase(store, testLogger), testLogger)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "existing file", path: "/events/onlocation/uploads/photo.jpg", wantStatus: http.StatusOK, wantBody: "jpeg-bytes"},
		{name: "missing file", path: "/events/onlocation/uploads/nope.jpg", wantStatus: http.StatusNotFound},
		{name: "directory", path: "/events/onlocation/uploads", wantStatus: http.StatusNotFound},
		{name: "traversal", path: "/../../etc/passwd", wantStatus: http.StatusForbidden},
		{name: "media root", path: "/", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testutil.NewTestContext(http.MethodGet, "/media/x", nil)
			testutil.SetURLParam(c, "path", tt.path)

			h.Serve(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}
