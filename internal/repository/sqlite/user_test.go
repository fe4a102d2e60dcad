package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ChocoChu32/watchlist/internal/domain"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := &domain.User{Name: "Test", Username: "test", PasswordHash: "hash"}
	if err := db.Users().Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected user ID to be set")
	}

	got, err := db.Users().GetByUsername(ctx, "test")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if got.ID != user.ID || got.Name != "Test" || got.PasswordHash != "hash" {
		t.Fatalf("unexpected user: %+v", got)
	}

	byID, err := db.Users().GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if byID.Username != "test" {
		t.Fatalf("expected username test, got %s", byID.Username)
	}
}

func TestUserRepository_GetMissing(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if _, err := db.Users().GetByUsername(ctx, "nobody"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := db.Users().First(ctx); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound from First on empty table, got %v", err)
	}
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := db.Users().Create(ctx, &domain.User{Name: "A", Username: "dup"}); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	err := db.Users().Create(ctx, &domain.User{Name: "B", Username: "dup"})
	if !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestUserRepository_First(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	first := &domain.User{Name: "First", Username: "first"}
	if err := db.Users().Create(ctx, first); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := db.Users().Create(ctx, &domain.User{Name: "Second", Username: "second"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := db.Users().First(ctx)
	if err != nil {
		t.Fatalf("First: %v", err)
	}
	if got.ID != first.ID {
		t.Fatalf("expected lowest-id user %d, got %d", first.ID, got.ID)
	}
}

func TestUserRepository_Updates(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := &domain.User{Name: "Admin", Username: "admin", PasswordHash: "old"}
	if err := db.Users().Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := db.Users().UpdateName(ctx, user.ID, "Choco Chu"); err != nil {
		t.Fatalf("UpdateName: %v", err)
	}
	if err := db.Users().UpdatePassword(ctx, user.ID, "new-hash"); err != nil {
		t.Fatalf("UpdatePassword: %v", err)
	}
	if err := db.Users().UpdateCredentials(ctx, user.ID, "owner", "other-hash"); err != nil {
		t.Fatalf("UpdateCredentials: %v", err)
	}

	got, err := db.Users().GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Choco Chu" || got.Username != "owner" || got.PasswordHash != "other-hash" {
		t.Fatalf("unexpected user after updates: %+v", got)
	}
}

func TestUserRepository_UpdateMissing(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := db.Users().UpdateName(ctx, 42, "Nobody"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
