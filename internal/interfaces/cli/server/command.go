package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/orris-inc/photobooth/internal/infrastructure/scheduler"
	"github.com/orris-inc/photobooth/internal/interfaces/cli/bootstrap"
	httpRouter "github.com/orris-inc/photobooth/internal/interfaces/http"
	"github.com/orris-inc/photobooth/internal/shared/goroutine"
	"github.com/orris-inc/photobooth/internal/shared/version"
)

var skipMigrate bool

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the photobooth HTTP server. Pending migrations are applied and the default event is seeded before listening.`,
		RunE:  run,
	}

	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "Do not apply database migrations on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	app, err := bootstrap.Open(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	cfg := app.Config
	log := app.Log

	log.Infow("starting server",
		"version", version.String(),
		"mode", cfg.Server.Mode,
		"database", cfg.Database.Driver)

	if err := cfg.ValidateServe(); err != nil {
		log.Errorw("refusing to start with an insecure configuration", "error", err)
		return err
	}
	if cfg.UsesDefaultJWTSecret() {
		log.Warnw("admin tokens are signed with the default secret; set auth.jwt.secret before exposing the server")
	}

	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	if skipMigrate {
		log.Infow("skipping database migrations")
	} else if err := app.Migrate(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	ctx := context.Background()
	if err := app.Container.EnsureDefaultEvent(ctx); err != nil {
		return fmt.Errorf("failed to seed default event: %w", err)
	}

	if cfg.Retention.ScheduleEnabled {
		sched, err := scheduler.NewSchedulerManager(log.Named("scheduler"))
		if err != nil {
			return fmt.Errorf("failed to create scheduler: %w", err)
		}
		if err := sched.RegisterRetentionJob(app.Container.CleanupMediaUseCase(), cfg.Retention.Interval); err != nil {
			return fmt.Errorf("failed to register retention job: %w", err)
		}
		sched.Start()
		defer func() {
			if err := sched.Stop(); err != nil {
				log.Errorw("failed to stop scheduler", "error", err)
			}
		}()
	}

	router, err := httpRouter.NewRouter(app.Container)
	if err != nil {
		return fmt.Errorf("failed to create router: %w", err)
	}
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  durationOr(cfg.Server.ReadTimeout, 30*time.Second),
		WriteTimeout: durationOr(cfg.Server.WriteTimeout, 60*time.Second),
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	goroutine.SafeGo(log, "http-server", func() {
		log.Infow("server listening", "address", srv.Addr, "base_url", cfg.Server.BaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	log.Infow("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func durationOr(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}
