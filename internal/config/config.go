// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values. Each field corresponds to an
// environment variable.
type Config struct {
	Port          string // HTTP port to listen on (PORT)
	DatabasePath  string // SQLite database file (DATABASE_PATH)
	SessionSecret string // secret used to sign session tokens (SESSION_SECRET)
	CookieSecure  bool   // Secure flag on cookies (COOKIE_SECURE, default on)
	BcryptCost    int    // bcrypt cost for password hashing (BCRYPT_COST)
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first if present. SESSION_SECRET is only required by
// the serve command, so Load leaves it unchecked; ValidateSessionSecret
// enforces it where a server is actually started.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:          envOrDefault("PORT", "8080"),
		DatabasePath:  envOrDefault("DATABASE_PATH", "watchlist.db"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		// Default to secure cookies; disable only for local development.
		CookieSecure: os.Getenv("COOKIE_SECURE") != "false",
		BcryptCost:   12,
	}

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid BCRYPT_COST: %w", err)
		}
		if parsed < 4 || parsed > 14 {
			return Config{}, fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", parsed)
		}
		cfg.BcryptCost = parsed
	}

	return cfg, nil
}

// ValidateSessionSecret checks that a usable signing secret is configured.
func (c Config) ValidateSessionSecret() error {
	if c.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET environment variable is required")
	}
	if len(c.SessionSecret) < 32 {
		return fmt.Errorf("SESSION_SECRET must be at least 32 characters for HMAC-SHA256 security")
	}
	return nil
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
