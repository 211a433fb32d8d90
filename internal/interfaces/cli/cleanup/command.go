package cleanup

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orris-inc/photobooth/internal/interfaces/cli/bootstrap"
)

func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup",
		Short: "Delete media older than the retention window",
		Long:  `Run one retention sweep over the media root and print the number of deleted files.`,
		RunE:  run,
	}
}

func run(cmd *cobra.Command, args []string) error {
	app, err := bootstrap.Open(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	deleted, err := app.Container.CleanupMediaUseCase().Execute(cmd.Context())
	fmt.Fprintf(cmd.OutOrStdout(), "deleted %d files\n", deleted)
	if err != nil {
		return fmt.Errorf("retention sweep failed: %w", err)
	}
	return nil
}
