package config_test

import (
	"testing"

	"github.com/ChocoChu32/watchlist/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATABASE_PATH", "COOKIE_SECURE", "BCRYPT_COST"} {
		t.Setenv(key, "")
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.DatabasePath != "watchlist.db" {
		t.Fatalf("expected default database path watchlist.db, got %s", cfg.DatabasePath)
	}
	if cfg.BcryptCost != 12 {
		t.Fatalf("expected default bcrypt cost 12, got %d", cfg.BcryptCost)
	}
	if !cfg.CookieSecure {
		t.Fatal("expected secure cookies by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DATABASE_PATH", "/tmp/test.db")
	t.Setenv("COOKIE_SECURE", "false")
	t.Setenv("BCRYPT_COST", "4")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9999" {
		t.Fatalf("expected port 9999, got %s", cfg.Port)
	}
	if cfg.DatabasePath != "/tmp/test.db" {
		t.Fatalf("expected database path /tmp/test.db, got %s", cfg.DatabasePath)
	}
	if cfg.CookieSecure {
		t.Fatal("expected insecure cookies")
	}
	if cfg.BcryptCost != 4 {
		t.Fatalf("expected bcrypt cost 4, got %d", cfg.BcryptCost)
	}
}

func TestLoadRejectsBadBcryptCost(t *testing.T) {
	for _, v := range []string{"abc", "3", "15"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("BCRYPT_COST", v)
			if _, err := config.Load(); err == nil {
				t.Fatalf("expected error for BCRYPT_COST=%s", v)
			}
		})
	}
}

func TestValidateSessionSecret(t *testing.T) {
	cfg := config.Config{}
	if err := cfg.ValidateSessionSecret(); err == nil {
		t.Fatal("expected error for missing secret")
	}

	cfg.SessionSecret = "short"
	if err := cfg.ValidateSessionSecret(); err == nil {
		t.Fatal("expected error for short secret")
	}

	cfg.SessionSecret = "0123456789abcdef0123456789abcdef"
	if err := cfg.ValidateSessionSecret(); err != nil {
		t.Fatalf("ValidateSessionSecret: %v", err)
	}
}
