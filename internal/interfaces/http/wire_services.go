package http

import (
	eventApp "github.com/orris-inc/photobooth/internal/application/event"
	sessionApp "github.com/orris-inc/photobooth/internal/application/session"
	sessionUsecases "github.com/orris-inc/photobooth/internal/application/session/usecases"
	settingApp "github.com/orris-inc/photobooth/internal/application/setting"
	"github.com/orris-inc/photobooth/internal/domain/event"
	"github.com/orris-inc/photobooth/internal/domain/setting"
	"github.com/orris-inc/photobooth/internal/infrastructure/auth"
	"github.com/orris-inc/photobooth/internal/infrastructure/cache"
	"github.com/orris-inc/photobooth/internal/infrastructure/storage"
	"github.com/orris-inc/photobooth/internal/shared/biztime"
	"github.com/orris-inc/photobooth/internal/shared/services/markdown"
)

type services struct {
	hasher   *auth.BcryptPasswordHasher
	jwt      *auth.JWTService
	markdown markdown.MarkdownService
	media    *storage.MediaStore

	settings *settingApp.ServiceDDD
	events   *eventApp.ServiceDDD
	sessions *sessionApp.ServiceDDD
}

func (c *Container) wireServices() *services {
	s := &services{
		hasher:   auth.NewBcryptPasswordHasher(c.cfg.Auth.BcryptCost),
		jwt:      auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.Expiry),
		markdown: markdown.NewMarkdownService(),
	}

	s.settings = settingApp.NewServiceDDD(
		c.repos.settings,
		setting.Defaults{
			MediaRoot:        c.cfg.Media.DefaultRoot,
			DefaultEventSlug: event.DefaultSlug,
		},
		c.cfg.Settings.DefaultPassword,
		s.hasher,
		c.log.Named("settings"),
	)

	// the media root is re-read from settings on every call
	s.media = storage.NewMediaStore(s.settings, c.cfg.Retention.Window, c.log.Named("media"))

	s.events = eventApp.NewServiceDDD(
		c.repos.events,
		cache.NewEventCache(c.cfg.Cache.EventsSize, c.cfg.Cache.EventsTTL),
		s.markdown,
		biztime.NowUTC,
		c.log.Named("events"),
	)

	s.sessions = sessionApp.NewServiceDDD(
		c.repos.sessions,
		s.settings,
		sessionUsecases.RandomTokens{},
		sessionApp.Config{
			Window:  c.cfg.Session.Expiry,
			BaseURL: c.cfg.Server.BaseURL,
		},
		biztime.NowUTC,
		c.log.Named("sessions"),
	)

	return s
}
