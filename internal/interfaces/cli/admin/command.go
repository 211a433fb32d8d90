package admin

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/orris-inc/photobooth/internal/interfaces/cli/bootstrap"
)

var password string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative tools",
	}

	events := &cobra.Command{
		Use:   "events",
		Short: "Manage events",
	}
	events.AddCommand(newListEventsCommand(), newCreateEventCommand())

	cmd.AddCommand(newResetPasswordCommand(), events)

	return cmd
}

func newResetPasswordCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Set the admin password without knowing the current one",
		RunE:  runResetPassword,
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "New password (prompted when omitted)")

	return cmd
}

func newListEventsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List events",
		RunE:  runListEvents,
	}
}

func newCreateEventCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create NAME",
		Short: "Create an event; the slug is derived from the name",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCreateEvent,
	}
}

func runResetPassword(cmd *cobra.Command, args []string) error {
	newPassword := password
	if newPassword == "" {
		var err error
		newPassword, err = promptNewPassword(os.Stdin, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
	}

	app, err := bootstrap.Open(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Container.SettingService().ResetPassword(cmd.Context(), newPassword); err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "admin password updated")
	return nil
}

func runListEvents(cmd *cobra.Command, args []string) error {
	app, err := bootstrap.Open(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	events, err := app.Container.EventService().ListEvents(cmd.Context())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SLUG\tNAME\tCREATED")
	for _, e := range events {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Slug, e.Name, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func runCreateEvent(cmd *cobra.Command, args []string) error {
	app, err := bootstrap.Open(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	event, err := app.Container.EventService().CreateEvent(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created event %q with slug %s\n", event.Name, event.Slug)
	return nil
}

// promptNewPassword asks for the password twice. Input is not echoed when
// in is a terminal; otherwise two lines are read from it.
func promptNewPassword(in *os.File, out io.Writer) (string, error) {
	read := lineReader(in, out)

	first, err := read("New password: ")
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(first) == "" {
		return "", errors.New("password must not be empty")
	}

	second, err := read("Repeat password: ")
	if err != nil {
		return "", err
	}
	if first != second {
		return "", errors.New("passwords do not match")
	}

	return first, nil
}

func lineReader(in *os.File, out io.Writer) func(prompt string) (string, error) {
	fd := int(in.Fd())
	if term.IsTerminal(fd) {
		return func(prompt string) (string, error) {
			fmt.Fprint(out, prompt)
			b, err := term.ReadPassword(fd)
			fmt.Fprintln(out)
			if err != nil {
				return "", fmt.Errorf("failed to read password: %w", err)
			}
			return string(b), nil
		}
	}

	scanner := bufio.NewScanner(in)
	return func(prompt string) (string, error) {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", fmt.Errorf("failed to read password: %w", err)
			}
			return "", io.ErrUnexpectedEOF
		}
		return strings.TrimRight(scanner.Text(), "\r"), nil
	}
}
