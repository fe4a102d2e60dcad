package main

import (
	"github.com/spf13/cobra"

	"github.com/ChocoChu32/watchlist/internal/config"
	"github.com/ChocoChu32/watchlist/internal/repository/sqlite"
)

// NewRootCmd creates the root command for the watchlist CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watchlist",
		Short: "Watchlist - a personal movie watchlist",
		Long: `Watchlist is a personal movie watchlist web application.
A single owner manages the list; visitors can read it.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewInitDBCmd())
	cmd.AddCommand(NewForgeCmd())
	cmd.AddCommand(NewAdminCmd())

	return cmd
}

// openDatabase loads configuration and opens the SQLite database for a
// subcommand.
func openDatabase() (config.Config, *sqlite.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	db, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, db, nil
}
