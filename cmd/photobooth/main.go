package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/orris-inc/photobooth/internal/interfaces/cli/admin"
	"github.com/orris-inc/photobooth/internal/interfaces/cli/bootstrap"
	"github.com/orris-inc/photobooth/internal/interfaces/cli/cleanup"
	"github.com/orris-inc/photobooth/internal/interfaces/cli/migrate"
	"github.com/orris-inc/photobooth/internal/interfaces/cli/server"
	"github.com/orris-inc/photobooth/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "photobooth",
		Short:         "Photobooth - capture sessions, uploads and galleries",
		Long:          `Photobooth serves the capture API, per-session galleries and the admin settings API of an event photobooth.`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringP(bootstrap.ConfigFlag, "c", "", "Path to config file (default: ./configs/config.yaml)")

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		cleanup.NewCommand(),
		admin.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
