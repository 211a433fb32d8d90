package migration

import (
	"embed"
	"fmt"
	"path"
	"sync"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/orris-inc/photobooth/internal/shared/logger"
)

//go:embed scripts
var scripts embed.FS

// goose keeps its dialect, filesystem and logger in package state.
var gooseMu sync.Mutex

// Migrator applies the embedded goose scripts for one SQL dialect.
type Migrator struct {
	dialect string
	dir     string
	logger  logger.Interface
}

// NewMigrator returns a migrator for the given database driver name
// ("sqlite", "sqlite-pure" or "mysql").
func NewMigrator(driver string, log logger.Interface) (*Migrator, error) {
	var dialect string
	switch driver {
	case "", "sqlite", "sqlite-pure":
		dialect = "sqlite3"
	case "mysql":
		dialect = "mysql"
	default:
		return nil, fmt.Errorf("no migrations for database driver %q", driver)
	}

	return &Migrator{
		dialect: dialect,
		dir:     path.Join("scripts", dialect),
		logger:  log.With("component", "migration.goose"),
	}, nil
}

func (m *Migrator) with(fn func() error) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(scripts)
	goose.SetLogger(&gooseLogger{log: m.logger})
	if err := goose.SetDialect(m.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return fn()
}

// Up applies all pending migrations
func (m *Migrator) Up(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	return m.with(func() error {
		from, err := goose.GetDBVersion(sqlDB)
		if err != nil {
			return fmt.Errorf("failed to get current version: %w", err)
		}

		if err := goose.Up(sqlDB, m.dir); err != nil {
			m.logger.Errorw("migration failed", "error", err)
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		to, err := goose.GetDBVersion(sqlDB)
		if err != nil {
			return fmt.Errorf("failed to get final version: %w", err)
		}

		m.logger.Infow("migration completed",
			"dialect", m.dialect,
			"from_version", from,
			"to_version", to)
		return nil
	})
}

// Down rolls back the given number of migrations
func (m *Migrator) Down(db *gorm.DB, steps int) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	return m.with(func() error {
		for i := 0; i < steps; i++ {
			if err := goose.Down(sqlDB, m.dir); err != nil {
				m.logger.Errorw("down migration failed", "error", err)
				return fmt.Errorf("failed to run down migration: %w", err)
			}
		}
		return nil
	})
}

// Version returns the applied schema version
func (m *Migrator) Version(db *gorm.DB) (int64, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	var version int64
	err = m.with(func() error {
		v, err := goose.GetDBVersion(sqlDB)
		if err != nil {
			return fmt.Errorf("failed to get version: %w", err)
		}
		version = v
		return nil
	})
	return version, err
}

// Status prints the state of every migration through the logger
func (m *Migrator) Status(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	return m.with(func() error {
		if err := goose.Status(sqlDB, m.dir); err != nil {
			return fmt.Errorf("failed to get status: %w", err)
		}
		return nil
	})
}

type gooseLogger struct {
	log logger.Interface
}

func (l *gooseLogger) Printf(format string, v ...interface{}) {
	l.log.Info(fmt.Sprintf(format, v...))
}

func (l *gooseLogger) Fatalf(format string, v ...interface{}) {
	l.log.Error(fmt.Sprintf(format, v...))
}
