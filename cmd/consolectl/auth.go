package main

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tarekmagdym/MasterStack/internal/app/consoleapp"
	"github.com/tarekmagdym/MasterStack/internal/domain/rules"
	"github.com/tarekmagdym/MasterStack/internal/services/authgw"
)

func newLoginCmd(app *consoleapp.App) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the admin console",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(email) == "" {
				return fmt.Errorf("--email is required")
			}

			password, err := promptPassword("Password: ")
			if err != nil {
				return err
			}

			user, err := app.Auth.Login(cmd.Context(), authgw.Credentials{
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}

			app.Nav.NavigateToDashboard()
			fmt.Printf("signed in as %s (%s)\n", user.Name, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	return cmd
}

func newLogoutCmd(app *consoleapp.App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Destroy the local session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Auth.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("signed out")
			return nil
		},
	}
}

func newWhoamiCmd(app *consoleapp.App) *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user and their capabilities",
		RunE: func(cmd *cobra.Command, args []string) error {
			if refresh {
				if _, err := app.Auth.RefreshProfile(cmd.Context()); err != nil {
					return err
				}
			}

			user := app.Store.CurrentUser()
			if user == nil {
				fmt.Println("not signed in")
				return nil
			}

			caps := rules.CapabilitiesFor(user.Role)
			fmt.Printf("%s <%s>\nrole: %s\nwrite: %v  delete: %v  manage users: %v\n",
				user.Name, user.Email, user.Role,
				caps.CanWrite, caps.CanDelete, caps.CanManageUsers,
			)
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "re-fetch the profile from the server first")
	return cmd
}

func newPasswdCmd(app *consoleapp.App) *cobra.Command {
	return &cobra.Command{
		Use:   "passwd",
		Short: "Change the account password",
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := promptPassword("Current password: ")
			if err != nil {
				return err
			}
			next, err := promptPassword("New password: ")
			if err != nil {
				return err
			}

			msg, err := app.Auth.ChangePassword(cmd.Context(), authgw.ChangePasswordPayload{
				CurrentPassword: current,
				NewPassword:     next,
			})
			if err != nil {
				return err
			}
			if msg == "" {
				msg = "password changed"
			}
			fmt.Println(msg)
			return nil
		},
	}
}

func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(raw), nil
}
