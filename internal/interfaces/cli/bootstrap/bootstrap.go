// Package bootstrap loads configuration and opens the shared resources
// every CLI command needs.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/orris-inc/photobooth/internal/infrastructure/config"
	"github.com/orris-inc/photobooth/internal/infrastructure/database"
	"github.com/orris-inc/photobooth/internal/infrastructure/migration"
	httpRouter "github.com/orris-inc/photobooth/internal/interfaces/http"
	"github.com/orris-inc/photobooth/internal/shared/logger"
)

// ConfigFlag is the persistent flag registered on the root command.
const ConfigFlag = "config"

// App bundles the resources opened for one command run.
type App struct {
	Config    *config.Config
	DB        *gorm.DB
	Redis     redis.UniversalClient
	Container *httpRouter.Container
	Log       logger.Interface
}

// LoadConfig reads the --config flag, loads the configuration and
// initializes the process logger.
func LoadConfig(cmd *cobra.Command) (*config.Config, logger.Interface, error) {
	configFile, _ := cmd.Flags().GetString(ConfigFlag)

	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode == gin.DebugMode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

// OpenDatabase loads the configuration and opens the database only.
func OpenDatabase(cmd *cobra.Command) (*config.Config, *gorm.DB, logger.Interface, error) {
	cfg, log, err := LoadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := database.Open(&cfg.Database)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	return cfg, db, log, nil
}

// Open loads everything a command touching the application needs and
// wires the container. Close must be called when done.
func Open(cmd *cobra.Command) (*App, error) {
	cfg, db, log, err := OpenDatabase(cmd)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Log:    log,
	}

	if cfg.Redis.Enabled {
		app.Redis = openRedis(cfg, log)
	}

	app.Container = httpRouter.NewContainer(cfg, db, app.Redis, log)

	return app, nil
}

// Migrate applies pending schema migrations.
func (a *App) Migrate() error {
	m, err := migration.NewMigrator(a.Config.Database.Driver, a.Log)
	if err != nil {
		return err
	}
	return m.Up(a.DB)
}

// Close releases the database and redis connections.
func (a *App) Close() {
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			a.Log.Warnw("failed to close redis client", "error", err)
		}
	}

	if sqlDB, err := a.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			a.Log.Warnw("failed to close database", "error", err)
		}
	}
}

// openRedis connects to redis for rate limiting. An unreachable server is
// logged and kept; the limiter lets requests through while it is down.
func openRedis(cfg *config.Config, log logger.Interface) redis.UniversalClient {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warnw("redis is unreachable, rate limiting fails open", "addr", cfg.Redis.GetAddr(), "error", err)
	} else {
		log.Infow("connected to redis", "addr", cfg.Redis.GetAddr())
	}

	return client
}
