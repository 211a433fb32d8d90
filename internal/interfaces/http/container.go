package http

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	eventApp "github.com/orris-inc/photobooth/internal/application/event"
	mediaUsecases "github.com/orris-inc/photobooth/internal/application/media/usecases"
	settingApp "github.com/orris-inc/photobooth/internal/application/setting"
	"github.com/orris-inc/photobooth/internal/infrastructure/config"
	"github.com/orris-inc/photobooth/internal/interfaces/http/middleware"
	"github.com/orris-inc/photobooth/internal/shared/logger"
)

// Container holds the repositories, services, use cases, handlers and
// middleware of the application. The CLI builds one per command so the
// server, cleanup and admin commands share the same wiring.
type Container struct {
	db    *gorm.DB
	cfg   *config.Config
	log   logger.Interface
	redis redis.UniversalClient

	repos *repositories
	svcs  *services
	ucs   *allUseCases
	hdlrs *allHandlers

	adminAuth     *middleware.AdminAuthMiddleware
	publicLimiter *middleware.RateLimiter
}

// NewContainer wires every component. redisClient may be nil, in which case
// public endpoints are not rate limited.
func NewContainer(cfg *config.Config, db *gorm.DB, redisClient redis.UniversalClient, log logger.Interface) *Container {
	c := &Container{
		db:    db,
		cfg:   cfg,
		log:   log,
		redis: redisClient,
	}

	c.repos = c.wireRepositories()
	c.svcs = c.wireServices()
	c.ucs = c.wireUseCases()
	c.hdlrs = c.wireHandlers()
	c.wireMiddleware()

	return c
}

// EnsureDefaultEvent seeds the default event row.
func (c *Container) EnsureDefaultEvent(ctx context.Context) error {
	return c.svcs.events.EnsureDefault(ctx)
}

// SettingService exposes the settings service to the admin CLI.
func (c *Container) SettingService() *settingApp.ServiceDDD {
	return c.svcs.settings
}

// EventService exposes the event service to the CLI.
func (c *Container) EventService() *eventApp.ServiceDDD {
	return c.svcs.events
}

// CleanupMediaUseCase returns the retention sweep used by the cleanup
// command and the scheduler.
func (c *Container) CleanupMediaUseCase() *mediaUsecases.CleanupMediaUseCase {
	return c.ucs.cleanupMedia
}
