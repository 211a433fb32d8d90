package migrate

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/orris-inc/photobooth/internal/infrastructure/migration"
	"github.com/orris-inc/photobooth/internal/interfaces/cli/bootstrap"
	"github.com/orris-inc/photobooth/internal/shared/logger"
)

var steps int

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply, roll back and inspect the embedded database migrations.`,
	}

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func initEnv(cmd *cobra.Command) (*migration.Migrator, *gorm.DB, logger.Interface, error) {
	cfg, db, log, err := bootstrap.OpenDatabase(cmd)
	if err != nil {
		return nil, nil, nil, err
	}

	m, err := migration.NewMigrator(cfg.Database.Driver, log)
	if err != nil {
		closeDB(db)
		return nil, nil, nil, err
	}

	return m, db, log, nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}

func runUp(cmd *cobra.Command, args []string) error {
	m, db, log, err := initEnv(cmd)
	if err != nil {
		return err
	}
	defer closeDB(db)

	if err := m.Up(db); err != nil {
		log.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	m, db, log, err := initEnv(cmd)
	if err != nil {
		return err
	}
	defer closeDB(db)

	log.Infow("running down migrations", "steps", steps)

	if err := m.Down(db, steps); err != nil {
		log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	m, db, log, err := initEnv(cmd)
	if err != nil {
		return err
	}
	defer closeDB(db)

	version, err := m.Version(db)
	if err != nil {
		log.Errorw("failed to get migration version", "error", err)
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	fmt.Printf("\nMigration Status:\n")
	fmt.Printf("  Current Version: %d\n", version)

	return m.Status(db)
}
