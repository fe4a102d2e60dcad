package domain

import (
	"context"
	"time"
)

// Movie is one entry on the watchlist. Year is stored as text: it is a
// four-character label, not a number to do arithmetic on.
type Movie struct {
	ID        int64
	Title     string
	Year      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MovieRepository defines persistence operations for movies.
type MovieRepository interface {
	Create(ctx context.Context, movie *Movie) error
	GetByID(ctx context.Context, id int64) (*Movie, error)
	// List returns every movie in insertion (id) order.
	List(ctx context.Context) ([]Movie, error)
	Update(ctx context.Context, movie *Movie) error
	Delete(ctx context.Context, id int64) error
}
