package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ChocoChu32/watchlist/internal/service"
)

// The demo data: the owner account and ten movies.
const (
	forgeOwnerName = "Choco Chu"
	forgeUsername  = "admin"
	forgePassword  = "123456"
)

var forgeMovies = []struct {
	title string
	year  string
}{
	{"肖申克的救赎", "1994"},
	{"霸王别姬", "1993"},
	{"泰坦尼克号", "1997"},
	{"阿甘正传", "1994"},
	{"千与千寻", "2001"},
	{"美丽人生", "1997"},
	{"星际穿越", "2014"},
	{"这个杀手不太冷", "1994"},
	{"盗梦空间", "2010"},
	{"楚门的世界", "1998"},
}

// NewForgeCmd creates the forge subcommand, which resets the database and
// fills it with demo data.
func NewForgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forge",
		Short: "Reset the database and generate demo data",
		RunE:  runForge,
	}
}

func runForge(cmd *cobra.Command, _ []string) error {
	cfg, db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := cmd.Context()
	if err := db.Reset(ctx); err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	auth := service.NewAuthService(db.Users(), cfg.SessionSecret, cfg.BcryptCost)
	if err := seedDemoData(ctx, auth, service.NewCatalogService(db.Movies())); err != nil {
		return err
	}

	cmd.Println("Done.")
	return nil
}

func seedDemoData(ctx context.Context, auth *service.AuthService, catalog *service.CatalogService) error {
	if _, err := auth.Provision(ctx, forgeUsername, forgePassword); err != nil {
		return fmt.Errorf("create owner: %w", err)
	}
	owner, err := auth.GetOwner(ctx)
	if err != nil {
		return fmt.Errorf("get owner: %w", err)
	}
	if err := auth.Rename(ctx, owner.ID, forgeOwnerName); err != nil {
		return fmt.Errorf("set owner name: %w", err)
	}

	for _, m := range forgeMovies {
		if _, err := catalog.Create(ctx, m.title, m.year); err != nil {
			return fmt.Errorf("create movie %s: %w", m.title, err)
		}
	}
	return nil
}
