package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/orris-inc/photobooth/internal/interfaces/http/handlers"
	"github.com/orris-inc/photobooth/internal/interfaces/http/middleware"
	"github.com/orris-inc/photobooth/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine    *gin.Engine
	container *Container
	logger    logger.Interface
}

// NewRouter creates a router over an already wired container.
func NewRouter(container *Container) (*Router, error) {
	if err := handlers.RegisterValidators(); err != nil {
		return nil, err
	}

	engine := gin.New()
	engine.MaxMultipartMemory = 8 << 20

	return &Router{
		engine:    engine,
		container: container,
		logger:    container.log.Named("http"),
	}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	cfg := r.container.cfg
	h := r.container.hdlrs

	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.Metrics())
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/", h.health.Root)
	r.engine.GET("/health", h.health.HealthCheck)
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.engine.GET("/gallery/:id", r.container.publicLimiter.Limit(), h.gallery.Show)
	r.engine.GET("/media/*path", h.media.Serve)

	r.setupAPIRoutes()
	r.setupSettingRoutes()
}

// setupAPIRoutes configures the public photobooth API
func (r *Router) setupAPIRoutes() {
	h := r.container.hdlrs

	api := r.engine.Group("/api/v1")
	{
		api.POST("/sessions", h.sessions.CreateSession)
		api.GET("/sessions/:id", r.container.publicLimiter.Limit(), h.sessions.GetSession)
		api.POST("/photos/upload", h.photos.Upload)
	}
}

// setupSettingRoutes configures the admin settings API. Password endpoints
// stay public; everything else sits behind the admin token.
func (r *Router) setupSettingRoutes() {
	h := r.container.hdlrs

	settings := r.engine.Group("/api/v1/settings")
	{
		settings.POST("/verify-password", r.container.publicLimiter.Limit(), h.settings.VerifyPassword)
		settings.POST("/change-password", r.container.publicLimiter.Limit(), h.settings.ChangePassword)
	}

	admin := settings.Group("")
	admin.Use(r.container.adminAuth.RequireAdmin())
	{
		admin.GET("", h.settings.GetSettings)
		admin.PUT("", h.settings.UpdateSettings)

		admin.GET("/events", h.events.ListEvents)
		admin.POST("/events", h.events.CreateEvent)
		admin.GET("/events/:slug", h.events.GetEvent)
		admin.GET("/events/:slug/sessions", h.sessions.ListEventSessions)
		admin.GET("/events/:slug/photos", h.events.ListEventPhotos)

		admin.POST("/sessions/:id/regenerate", h.sessions.RegenerateToken)
	}
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
