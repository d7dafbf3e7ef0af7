package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tarekmagdym/MasterStack/internal/app/consoleapp"
	"github.com/tarekmagdym/MasterStack/internal/services/api"
)

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func loadPayload(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read payload file: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}

func listFlags(cmd *cobra.Command, params *api.ListParams) {
	cmd.Flags().IntVar(&params.Page, "page", 1, "page number")
	cmd.Flags().IntVar(&params.Limit, "limit", 20, "items per page")
	cmd.Flags().StringVar(&params.Search, "search", "", "search filter")
}

func newProjectsCmd(app *consoleapp.App) *cobra.Command {
	cmd := &cobra.Command{Use: "projects", Short: "Manage portfolio projects"}

	var params api.ListParams
	list := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(c *cobra.Command, args []string) error {
			if err := visit(app, "/admin/projects-management"); err != nil {
				return err
			}
			items, page, err := app.API.Projects().List(c.Context(), params)
			if err != nil {
				return err
			}
			if page != nil {
				fmt.Fprintf(os.Stderr, "page %d/%d (%d total)\n", page.Page, page.Pages, page.Total)
			}
			return printJSON(items)
		},
	}
	listFlags(list, &params)

	var payloadPath string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a project from a JSON payload",
		RunE: func(c *cobra.Command, args []string) error {
			if err := visit(app, "/admin/projects-management"); err != nil {
				return err
			}
			var payload api.Project
			if err := loadPayload(payloadPath, &payload); err != nil {
				return err
			}
			created, err := app.API.Projects().Create(c.Context(), payload)
			if err != nil {
				return err
			}
			return printJSON(created)
		},
	}
	create.Flags().StringVarP(&payloadPath, "file", "f", "", "payload JSON file")
	_ = create.MarkFlagRequired("file")

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if err := visit(app, "/admin/projects-management"); err != nil {
				return err
			}
			return app.API.Projects().Delete(c.Context(), args[0])
		},
	}

	cmd.AddCommand(list, create, rm)
	return cmd
}

func newServicesCmd(app *consoleapp.App) *cobra.Command {
	cmd := &cobra.Command{Use: "services", Short: "Manage offered services"}

	var params api.ListParams
	list := &cobra.Command{
		Use:   "list",
		Short: "List services",
		RunE: func(c *cobra.Command, args []string) error {
			if err := visit(app, "/admin/services-management"); err != nil {
				return err
			}
			items, _, err := app.API.Services().List(c.Context(), params)
			if err != nil {
				return err
			}
			return printJSON(items)
		},
	}
	listFlags(list, &params)

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a service",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if err := visit(app, "/admin/services-management"); err != nil {
				return err
			}
			return app.API.Services().Delete(c.Context(), args[0])
		},
	}

	cmd.AddCommand(list, rm)
	return cmd
}

func newTechnologiesCmd(app *consoleapp.App) *cobra.Command {
	var params api.ListParams
	cmd := &cobra.Command{
		Use:   "technologies",
		Short: "List the technology stack entries",
		RunE: func(c *cobra.Command, args []string) error {
			if err := visit(app, "/admin/technologies"); err != nil {
				return err
			}
			items, _, err := app.API.Technologies().List(c.Context(), params)
			if err != nil {
				return err
			}
			return printJSON(items)
		},
	}
	listFlags(cmd, &params)
	return cmd
}

func newTeamCmd(app *consoleapp.App) *cobra.Command {
	var params api.ListParams
	cmd := &cobra.Command{
		Use:   "team",
		Short: "List team members",
		RunE: func(c *cobra.Command, args []string) error {
			if err := visit(app, "/admin/team-management"); err != nil {
				return err
			}
			items, _, err := app.API.Team().List(c.Context(), params)
			if err != nil {
				return err
			}
			return printJSON(items)
		},
	}
	listFlags(cmd, &params)
	return cmd
}

func newTestimonialsCmd(app *consoleapp.App) *cobra.Command {
	var params api.ListParams
	cmd := &cobra.Command{
		Use:   "testimonials",
		Short: "List testimonials, including unpublished ones",
		RunE: func(c *cobra.Command, args []string) error {
			if err := visit(app, "/admin/testimonials"); err != nil {
				return err
			}
			items, _, err := app.API.Testimonials().List(c.Context(), params)
			if err != nil {
				return err
			}
			return printJSON(items)
		},
	}
	listFlags(cmd, &params)
	return cmd
}

func newMessagesCmd(app *consoleapp.App) *cobra.Command {
	cmd := &cobra.Command{Use: "messages", Short: "Manage contact messages"}

	var params api.ListParams
	list := &cobra.Command{
		Use:   "list",
		Short: "List contact messages",
		RunE: func(c *cobra.Command, args []string) error {
			if err := visit(app, "/admin/messages"); err != nil {
				return err
			}
			items, page, err := app.API.Messages().List(c.Context(), params)
			if err != nil {
				return err
			}
			if page != nil {
				fmt.Fprintf(os.Stderr, "page %d/%d (%d total)\n", page.Page, page.Pages, page.Total)
			}
			return printJSON(items)
		},
	}
	listFlags(list, &params)

	read := &cobra.Command{
		Use:   "read <id>",
		Short: "Toggle a message's read flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if err := visit(app, "/admin/messages"); err != nil {
				return err
			}
			return app.API.Messages().ToggleRead(c.Context(), args[0])
		},
	}

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a message",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if err := visit(app, "/admin/messages"); err != nil {
				return err
			}
			return app.API.Messages().Delete(c.Context(), args[0])
		},
	}

	cmd.AddCommand(list, read, rm)
	return cmd
}

func newUsersCmd(app *consoleapp.App) *cobra.Command {
	cmd := &cobra.Command{Use: "users", Short: "Manage console users (super_admin only)"}

	var params api.ListParams
	list := &cobra.Command{
		Use:   "list",
		Short: "List console users",
		RunE: func(c *cobra.Command, args []string) error {
			if err := visit(app, "/admin/admins-management"); err != nil {
				return err
			}
			items, _, err := app.API.Users().List(c.Context(), params)
			if err != nil {
				return err
			}
			return printJSON(items)
		},
	}
	listFlags(list, &params)

	var payloadPath string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a console user from a JSON payload",
		RunE: func(c *cobra.Command, args []string) error {
			if err := visit(app, "/admin/admins-management"); err != nil {
				return err
			}
			var payload api.AdminUser
			if err := loadPayload(payloadPath, &payload); err != nil {
				return err
			}
			created, err := app.API.Users().Create(c.Context(), payload)
			if err != nil {
				return err
			}
			return printJSON(created)
		},
	}
	create.Flags().StringVarP(&payloadPath, "file", "f", "", "payload JSON file")
	_ = create.MarkFlagRequired("file")

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a console user",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if err := visit(app, "/admin/admins-management"); err != nil {
				return err
			}
			return app.API.Users().Delete(c.Context(), args[0])
		},
	}

	cmd.AddCommand(list, create, rm)
	return cmd
}

func newStatsCmd(app *consoleapp.App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard counters",
		RunE: func(c *cobra.Command, args []string) error {
			if err := visit(app, "/admin/dashboard"); err != nil {
				return err
			}
			stats, err := app.API.Dashboard().Stats(c.Context())
			if err != nil {
				return err
			}
			return printJSON(stats)
		},
	}
}

func newLogsCmd(app *consoleapp.App) *cobra.Command {
	var params api.ListParams
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show recent activity logs",
		RunE: func(c *cobra.Command, args []string) error {
			if err := visit(app, "/admin/activity-logs"); err != nil {
				return err
			}
			items, _, err := app.API.Dashboard().ActivityLogs(c.Context(), params)
			if err != nil {
				return err
			}
			return printJSON(items)
		},
	}
	listFlags(cmd, &params)
	return cmd
}
