package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ChocoChu32/watchlist/internal/service"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// NewAdminCmd creates the admin subcommand, which provisions the owner
// account or replaces its credentials.
func NewAdminCmd() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Create or re-provision the owner account",
		Long: `Create the owner account, or replace the existing account's username
and password. The password is prompted without echo.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer db.Close()

			ctx := cmd.Context()
			if err := db.Migrate(ctx); err != nil {
				return fmt.Errorf("run migrations: %w", err)
			}

			password, err := promptPassword(cmd)
			if err != nil {
				return err
			}

			auth := service.NewAuthService(db.Users(), cfg.SessionSecret, cfg.BcryptCost)
			created, err := auth.Provision(ctx, username, password)
			if err != nil {
				return err
			}

			if created {
				cmd.Println("Creating user...")
			} else {
				cmd.Println("Updating user...")
			}
			cmd.Println("Done.")
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "the username used to login")
	cmd.MarkFlagRequired("username")

	return cmd
}

// promptPassword reads the password twice without echo and requires both
// entries to match.
func promptPassword(cmd *cobra.Command) (string, error) {
	cmd.Print("Password: ")
	first, err := readPassword(int(os.Stdin.Fd()))
	cmd.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	cmd.Print("Repeat for confirmation: ")
	second, err := readPassword(int(os.Stdin.Fd()))
	cmd.Println()
	if err != nil {
		return "", fmt.Errorf("read password confirmation: %w", err)
	}

	if string(first) != string(second) {
		return "", fmt.Errorf("passwords do not match")
	}
	return string(first), nil
}
