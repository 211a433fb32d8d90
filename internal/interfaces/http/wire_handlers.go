package http

import (
	"time"

	"github.com/orris-inc/photobooth/internal/infrastructure/ratelimit"
	"github.com/orris-inc/photobooth/internal/interfaces/http/handlers"
	"github.com/orris-inc/photobooth/internal/interfaces/http/middleware"
)

type allHandlers struct {
	health   *handlers.HealthHandler
	sessions *handlers.SessionHandler
	photos   *handlers.PhotoHandler
	gallery  *handlers.GalleryHandler
	media    *handlers.MediaHandler
	settings *handlers.SettingHandler
	events   *handlers.EventHandler
}

func (c *Container) wireHandlers() *allHandlers {
	log := c.log.Named("http")

	return &allHandlers{
		health:   handlers.NewHealthHandler(),
		sessions: handlers.NewSessionHandler(c.svcs.sessions, log),
		photos:   handlers.NewPhotoHandler(c.ucs.uploadPhoto, c.cfg.Media.MaxUploadBytes(), log),
		gallery:  handlers.NewGalleryHandler(c.ucs.renderGallery, log),
		media:    handlers.NewMediaHandler(c.ucs.resolveMedia, log),
		settings: handlers.NewSettingHandler(c.svcs.settings, c.svcs.jwt, log),
		events:   handlers.NewEventHandler(c.svcs.events, c.ucs.listEventPhotos, log),
	}
}

func (c *Container) wireMiddleware() {
	log := c.log.Named("http")

	c.adminAuth = middleware.NewAdminAuthMiddleware(c.svcs.jwt, c.cfg.Auth.RequireAdminToken, log)

	var limiter ratelimit.RateLimiter
	if c.redis != nil {
		window := c.cfg.RateLimit.Window
		if window <= 0 {
			window = time.Minute
		}
		limiter = ratelimit.NewRedisRateLimiter(c.redis, c.cfg.RateLimit.Requests, window)
	}
	c.publicLimiter = middleware.NewRateLimiter(limiter, "public", log)
}
