package domain

import (
	"context"
	"time"
)

// User is the account that owns the watchlist. The deployment runs with a
// single row, but nothing here assumes it.
type User struct {
	ID           int64
	Name         string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	// First returns the lowest-id user. The admin command uses it to locate
	// the owner account without knowing its username.
	First(ctx context.Context) (*User, error)
	UpdateName(ctx context.Context, id int64, name string) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	// UpdateCredentials replaces username and password hash together
	// (administrative re-provisioning).
	UpdateCredentials(ctx context.Context, id int64, username, passwordHash string) error
}
