package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewInitDBCmd creates the init-db subcommand.
func NewInitDBCmd() *cobra.Command {
	var drop bool

	cmd := &cobra.Command{
		Use:   "init-db",
		Short: "Initialize the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer db.Close()

			ctx := cmd.Context()
			if drop {
				if err := db.Reset(ctx); err != nil {
					return fmt.Errorf("drop tables: %w", err)
				}
			}
			if err := db.Migrate(ctx); err != nil {
				return fmt.Errorf("run migrations: %w", err)
			}

			cmd.Println("Initialized database.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&drop, "drop", false, "drop existing tables before creating")

	return cmd
}
