package http

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eventdto "github.com/orris-inc/photobooth/internal/application/event/dto"
	photodto "github.com/orris-inc/photobooth/internal/application/photo/dto"
	sessiondto "github.com/orris-inc/photobooth/internal/application/session/dto"
	settingdto "github.com/orris-inc/photobooth/internal/application/setting/dto"
	"github.com/orris-inc/photobooth/internal/infrastructure/config"
	"github.com/orris-inc/photobooth/internal/infrastructure/database"
	"github.com/orris-inc/photobooth/internal/infrastructure/migration"
	"github.com/orris-inc/photobooth/internal/interfaces/http/handlers/testutil"
	"github.com/orris-inc/photobooth/internal/shared/logger"
)

type testServer struct {
	engine *gin.Engine
	cfg    *config.Config
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	dir := t.TempDir()
	cfg, err := config.Load("")
	require.NoError(t, err)

	cfg.Database.Driver = database.DriverSQLitePure
	cfg.Database.Path = filepath.Join(dir, "photobooth.db")
	cfg.Settings.File = filepath.Join(dir, "settings.json")
	cfg.Settings.DefaultPassword = "1234"
	cfg.Media.DefaultRoot = filepath.Join(dir, "media")
	cfg.Media.MaxUploadMB = 5
	cfg.Media.ThumbnailsEnabled = true
	cfg.Media.ThumbnailSize = 32
	cfg.Session.Expiry = time.Hour
	cfg.Server.BaseURL = "http://photobooth.test"
	cfg.Auth.RequireAdminToken = true
	cfg.Auth.BcryptCost = 4
	cfg.Auth.JWT.Secret = "test-secret"
	cfg.Auth.JWT.Expiry = time.Hour
	cfg.Gallery.Title = ""
	cfg.Gallery.FooterMarkdown = ""

	db, err := database.Open(&cfg.Database)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	log := logger.NewNopLogger()
	m, err := migration.NewMigrator(cfg.Database.Driver, log)
	require.NoError(t, err)
	require.NoError(t, m.Up(db))

	container := NewContainer(cfg, db, nil, log)
	require.NoError(t, container.EnsureDefaultEvent(context.Background()))

	router, err := NewRouter(container)
	require.NoError(t, err)
	router.SetupRoutes()

	return &testServer{engine: router.GetEngine(), cfg: cfg}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func pngImage(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	for x := 0; x < 64; x++ {
		for y := 0; y < 48; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 5), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestRouter_Health(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = s.do(t, http.MethodGet, "/", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/metrics", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "photobooth_http_requests_total")
}

func TestRouter_SessionUploadGalleryFlow(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/sessions", nil, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var sess sessiondto.SessionResponse
	testutil.DecodeData(t, w, &sess)
	assert.Equal(t, "onlocation", sess.EventSlug)
	assert.Empty(t, sess.PhotoURLs)
	assert.Equal(t, time.Hour, sess.ExpiresAt.Sub(sess.CreatedAt))
	assert.True(t, strings.HasPrefix(sess.GalleryURL, "http://photobooth.test/gallery/"+sess.ID+"?token="))

	data := pngImage(t)
	req := testutil.NewMultipartRequest(t, "/api/v1/photos/upload",
		&testutil.MultipartFile{Field: "file", Filename: "capture.png", ContentType: "image/png", Data: data},
		map[string]string{"session_id": sess.ID})
	w = httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var upload photodto.UploadPhotoResponse
	testutil.DecodeData(t, w, &upload)
	assert.True(t, strings.HasPrefix(upload.URL, "/media/events/onlocation/uploads/"), upload.URL)
	require.NotNil(t, upload.Session)
	assert.Equal(t, []string{upload.URL}, upload.Session.PhotoURLs)

	// the returned URL serves the exact bytes written
	w = s.do(t, http.MethodGet, upload.URL, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, data, w.Body.Bytes())

	w = s.do(t, http.MethodGet, "/api/v1/sessions/"+sess.ID+"?token="+sess.Token, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched sessiondto.SessionResponse
	testutil.DecodeData(t, w, &fetched)
	assert.Equal(t, []string{upload.URL}, fetched.PhotoURLs)

	w = s.do(t, http.MethodGet, "/gallery/"+sess.ID+"?token="+sess.Token, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, strings.Count(w.Body.String(), "<img "))
	assert.Contains(t, w.Body.String(), upload.URL)

	w = s.do(t, http.MethodGet, "/gallery/"+sess.ID+"?token=wrong", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/sessions/"+sess.ID+"?token=wrong", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_UploadedURLServesBytesForReservedNames(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/sessions", nil, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var sess sessiondto.SessionResponse
	testutil.DecodeData(t, w, &sess)

	data := pngImage(t)
	var urls []string
	for _, name := range []string{"party#1.png", "what?.png", "50%.png", "a b.png"} {
		req := testutil.NewMultipartRequest(t, "/api/v1/photos/upload",
			&testutil.MultipartFile{Field: "file", Filename: name, ContentType: "image/png", Data: data},
			map[string]string{"session_id": sess.ID})
		w := httptest.NewRecorder()
		s.engine.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code, name)

		var upload photodto.UploadPhotoResponse
		testutil.DecodeData(t, w, &upload)
		urls = append(urls, upload.URL)

		w = s.do(t, http.MethodGet, upload.URL, nil, nil)
		require.Equal(t, http.StatusOK, w.Code, "%s -> %s", name, upload.URL)
		assert.Equal(t, data, w.Body.Bytes(), name)
	}

	w = s.do(t, http.MethodGet, "/gallery/"+sess.ID+"?token="+sess.Token, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, len(urls), strings.Count(w.Body.String(), "<img "))

	w = s.do(t, http.MethodGet, "/media/", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_UploadToUnknownSession(t *testing.T) {
	s := newTestServer(t)

	req := testutil.NewMultipartRequest(t, "/api/v1/photos/upload",
		&testutil.MultipartFile{Field: "file", Filename: "capture.png", ContentType: "image/png", Data: pngImage(t)},
		map[string]string{"session_id": "does-not-exist"})
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_MediaTraversalRejected(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/media/../../etc/passwd", nil, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(t, http.MethodGet, "/media/events/onlocation/uploads/missing.jpg", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_AdminRoutes(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/v1/settings", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/settings", nil, map[string]string{"Authorization": "Bearer forged"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodPost, "/api/v1/settings/verify-password", map[string]string{"password": "1234"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var verified settingdto.VerifyPasswordResponse
	testutil.DecodeData(t, w, &verified)
	require.True(t, verified.Valid)
	require.NotEmpty(t, verified.Token)
	auth := map[string]string{"Authorization": "Bearer " + verified.Token}

	w = s.do(t, http.MethodGet, "/api/v1/settings", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)
	var settings settingdto.SettingsResponse
	testutil.DecodeData(t, w, &settings)
	assert.Equal(t, "onlocation", settings.DefaultEventSlug)
	assert.False(t, settings.HasPassword)

	w = s.do(t, http.MethodPost, "/api/v1/settings/events", map[string]string{"name": "Summer Party 2024"}, auth)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var first eventdto.EventResponse
	testutil.DecodeData(t, w, &first)
	assert.Equal(t, "summer-party-2024", first.Slug)

	w = s.do(t, http.MethodPost, "/api/v1/settings/events", map[string]string{"name": "Summer Party 2024"}, auth)
	require.Equal(t, http.StatusCreated, w.Code)
	var second eventdto.EventResponse
	testutil.DecodeData(t, w, &second)
	assert.Equal(t, "summer-party-2024-1", second.Slug)

	w = s.do(t, http.MethodGet, "/api/v1/settings/events", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)
	var events []eventdto.EventResponse
	testutil.DecodeData(t, w, &events)
	assert.Len(t, events, 3)

	w = s.do(t, http.MethodPost, "/api/v1/sessions", map[string]string{"event_slug": "summer-party-2024"}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var sess sessiondto.SessionResponse
	testutil.DecodeData(t, w, &sess)

	w = s.do(t, http.MethodGet, "/api/v1/settings/events/summer-party-2024/sessions", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)
	var list sessiondto.SessionListResponse
	testutil.DecodeData(t, w, &list)
	require.Len(t, list.Sessions, 1)
	assert.Equal(t, sess.ID, list.Sessions[0].ID)

	w = s.do(t, http.MethodPost, "/api/v1/settings/sessions/"+sess.ID+"/regenerate", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)
	var regenerated sessiondto.SessionResponse
	testutil.DecodeData(t, w, &regenerated)
	assert.NotEqual(t, sess.Token, regenerated.Token)

	w = s.do(t, http.MethodGet, "/api/v1/settings/events/summer-party-2024/photos", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"photos":[]`)
}

func TestRouter_ChangePassword(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/settings/change-password",
		map[string]string{"current_password": "wrong", "new_password": "newpass"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/api/v1/settings/verify-password", map[string]string{"password": "newpass"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var verified settingdto.VerifyPasswordResponse
	testutil.DecodeData(t, w, &verified)
	assert.False(t, verified.Valid)

	w = s.do(t, http.MethodPost, "/api/v1/settings/change-password",
		map[string]string{"current_password": "1234", "new_password": "newpass"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodPost, "/api/v1/settings/verify-password", map[string]string{"password": "newpass"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	testutil.DecodeData(t, w, &verified)
	assert.True(t, verified.Valid)
}
