package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tarekmagdym/MasterStack/internal/app/consoleapp"
	"github.com/tarekmagdym/MasterStack/internal/guard"
)

func execute(ctx context.Context, app *consoleapp.App) error {
	rootCmd := &cobra.Command{
		Use:           "consolectl",
		Short:         "MasterStack admin console",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newPasswdCmd(app),
		newProjectsCmd(app),
		newServicesCmd(app),
		newTechnologiesCmd(app),
		newTeamCmd(app),
		newTestimonialsCmd(app),
		newMessagesCmd(app),
		newUsersCmd(app),
		newStatsCmd(app),
		newLogsCmd(app),
	)

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	return err
}

// visit runs one guarded navigation before a view's API call; the denial is
// reported instead of the view being shown.
func visit(app *consoleapp.App, path string) error {
	if dec := app.Nav.Go(path); dec != guard.Allow {
		return fmt.Errorf("access denied, redirected to %s", app.Nav.Current())
	}
	return nil
}
