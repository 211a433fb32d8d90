package handlers

import (
	"context"
	"time"

	eventdto "github.com/orris-inc/photobooth/internal/application/event/dto"
	photodto "github.com/orris-inc/photobooth/internal/application/photo/dto"
	photoUsecases "github.com/orris-inc/photobooth/internal/application/photo/usecases"
	sessiondto "github.com/orris-inc/photobooth/internal/application/session/dto"
	settingdto "github.com/orris-inc/photobooth/internal/application/setting/dto"
	"github.com/orris-inc/photobooth/internal/shared/logger"
)

var testLogger = logger.NewNopLogger()

type mockSessionService struct {
	createFunc     func(ctx context.Context, eventSlug string) (*sessiondto.SessionResponse, error)
	getFunc        func(ctx context.Context, sessionID, token string) (*sessiondto.SessionResponse, error)
	regenerateFunc func(ctx context.Context, sessionID string) (*sessiondto.SessionResponse, error)
	listFunc       func(ctx context.Context, eventSlug string) (*sessiondto.SessionListResponse, error)
}

func (m *mockSessionService) CreateSession(ctx context.Context, eventSlug string) (*sessiondto.SessionResponse, error) {
	return m.createFunc(ctx, eventSlug)
}

func (m *mockSessionService) GetSession(ctx context.Context, sessionID, token string) (*sessiondto.SessionResponse, error) {
	return m.getFunc(ctx, sessionID, token)
}

func (m *mockSessionService) RegenerateToken(ctx context.Context, sessionID string) (*sessiondto.SessionResponse, error) {
	return m.regenerateFunc(ctx, sessionID)
}

func (m *mockSessionService) ListForEvent(ctx context.Context, eventSlug string) (*sessiondto.SessionListResponse, error) {
	return m.listFunc(ctx, eventSlug)
}

type mockUploader struct {
	lastCmd photoUsecases.UploadPhotoCommand
	result  *photodto.UploadPhotoResponse
	err     error
}

func (m *mockUploader) Execute(ctx context.Context, cmd photoUsecases.UploadPhotoCommand) (*photodto.UploadPhotoResponse, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockGalleryRenderer struct {
	page []byte
	err  error
}

func (m *mockGalleryRenderer) Execute(ctx context.Context, sessionID, token string) ([]byte, error) {
	return m.page, m.err
}

type mockEventService struct {
	listFunc   func(ctx context.Context) ([]*eventdto.EventResponse, error)
	createFunc func(ctx context.Context, name string) (*eventdto.EventResponse, error)
	getFunc    func(ctx context.Context, slug string) (*eventdto.EventResponse, error)
}

func (m *mockEventService) ListEvents(ctx context.Context) ([]*eventdto.EventResponse, error) {
	return m.listFunc(ctx)
}

func (m *mockEventService) CreateEvent(ctx context.Context, name string) (*eventdto.EventResponse, error) {
	return m.createFunc(ctx, name)
}

func (m *mockEventService) GetEvent(ctx context.Context, slug string) (*eventdto.EventResponse, error) {
	return m.getFunc(ctx, slug)
}

type mockPhotoLister struct {
	photos []string
	err    error
}

func (m *mockPhotoLister) Execute(ctx context.Context, eventSlug string) ([]string, error) {
	return m.photos, m.err
}

type mockSettingService struct {
	password  string
	changed   bool
	changeErr error
	updateErr error
	current   settingdto.SettingsResponse
}

func (m *mockSettingService) GetSettings(ctx context.Context) *settingdto.SettingsResponse {
	cur := m.current
	return &cur
}

func (m *mockSettingService) UpdateSettings(ctx context.Context, req settingdto.UpdateSettingsRequest) (*settingdto.SettingsResponse, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	if req.MediaRoot != nil {
		m.current.MediaRoot = *req.MediaRoot
	}
	if req.DefaultEventSlug != nil {
		m.current.DefaultEventSlug = *req.DefaultEventSlug
	}
	return m.GetSettings(ctx), nil
}

func (m *mockSettingService) VerifyPassword(ctx context.Context, candidate string) bool {
	return candidate == m.password
}

func (m *mockSettingService) ChangePassword(ctx context.Context, current, newPassword string) (bool, error) {
	if m.changeErr != nil {
		return false, m.changeErr
	}
	if current != m.password {
		return false, nil
	}
	m.password = newPassword
	m.changed = true
	return true, nil
}

type stubTokenIssuer struct {
	token string
	err   error
}

func (s *stubTokenIssuer) Generate() (string, time.Time, error) {
	if s.err != nil {
		return "", time.Time{}, s.err
	}
	return s.token, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), nil
}
