package session

import (
	"context"
	"time"

	"github.com/orris-inc/photobooth/internal/application/session/dto"
	"github.com/orris-inc/photobooth/internal/application/session/usecases"
	"github.com/orris-inc/photobooth/internal/domain/session"
	"github.com/orris-inc/photobooth/internal/shared/biztime"
	"github.com/orris-inc/photobooth/internal/shared/logger"
)

// Config holds the session parameters taken from configuration.
type Config struct {
	Window  time.Duration
	BaseURL string
}

// ServiceDDD aggregates all session use cases
type ServiceDDD struct {
	createUC       *usecases.CreateSessionUseCase
	findUC         *usecases.FindSessionUseCase
	authenticateUC *usecases.AuthenticateSessionUseCase
	addPhotoUC     *usecases.AddPhotoUseCase
	regenerateUC   *usecases.RegenerateTokenUseCase
	listUC         *usecases.ListEventSessionsUseCase
	cfg            Config
	clock          biztime.Clock
}

func NewServiceDDD(
	sessionRepo session.Repository,
	defaultSlugs usecases.DefaultSlugProvider,
	tokens usecases.TokenGenerator,
	cfg Config,
	clock biztime.Clock,
	logger logger.Interface,
) *ServiceDDD {
	return &ServiceDDD{
		createUC:       usecases.NewCreateSessionUseCase(sessionRepo, defaultSlugs, tokens, cfg.Window, clock, logger),
		findUC:         usecases.NewFindSessionUseCase(sessionRepo, logger),
		authenticateUC: usecases.NewAuthenticateSessionUseCase(sessionRepo, clock, logger),
		addPhotoUC:     usecases.NewAddPhotoUseCase(sessionRepo, clock, logger),
		regenerateUC:   usecases.NewRegenerateTokenUseCase(sessionRepo, tokens, cfg.Window, clock, logger),
		listUC:         usecases.NewListEventSessionsUseCase(sessionRepo, logger),
		cfg:            cfg,
		clock:          clock,
	}
}

// Window is the lifetime of a session or regenerated token.
func (s *ServiceDDD) Window() time.Duration {
	return s.cfg.Window
}

func (s *ServiceDDD) toResponse(sess *session.Session) *dto.SessionResponse {
	return dto.ToSessionResponse(sess, s.cfg.BaseURL, s.clock())
}

func (s *ServiceDDD) CreateSession(ctx context.Context, eventSlug string) (*dto.SessionResponse, error) {
	sess, err := s.createUC.Execute(ctx, eventSlug)
	if err != nil {
		return nil, err
	}
	return s.toResponse(sess), nil
}

// Find is the trusted lookup: no token or expiry check.
func (s *ServiceDDD) Find(ctx context.Context, sessionID string) (*session.Session, error) {
	return s.findUC.Execute(ctx, sessionID)
}

// Authenticate is the public lookup used by the session and gallery
// endpoints.
func (s *ServiceDDD) Authenticate(ctx context.Context, sessionID, token string) (*session.Session, error) {
	return s.authenticateUC.Execute(ctx, sessionID, token)
}

func (s *ServiceDDD) GetSession(ctx context.Context, sessionID, token string) (*dto.SessionResponse, error) {
	sess, err := s.Authenticate(ctx, sessionID, token)
	if err != nil {
		return nil, err
	}
	return s.toResponse(sess), nil
}

func (s *ServiceDDD) AddPhoto(ctx context.Context, sessionID string, photo session.Photo) (*dto.SessionResponse, error) {
	sess, err := s.addPhotoUC.Execute(ctx, sessionID, photo)
	if err != nil {
		return nil, err
	}
	return s.toResponse(sess), nil
}

func (s *ServiceDDD) RegenerateToken(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	sess, err := s.regenerateUC.Execute(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(sess), nil
}

func (s *ServiceDDD) ListForEvent(ctx context.Context, eventSlug string) (*dto.SessionListResponse, error) {
	sessions, err := s.listUC.Execute(ctx, eventSlug)
	if err != nil {
		return nil, err
	}
	return dto.ToSessionListResponse(sessions, s.cfg.BaseURL, s.clock()), nil
}
