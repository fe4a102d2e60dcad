package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ChocoChu32/watchlist/internal/domain"
)

// MovieRepository implements domain.MovieRepository using SQLite.
type MovieRepository struct {
	db *sql.DB
}

func (r *MovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO movies (title, year, created_at, updated_at)
		 VALUES (?, ?, ?, ?)`,
		movie.Title, movie.Year, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert movie: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	movie.ID = id
	movie.CreatedAt = now
	movie.UpdatedAt = now
	return nil
}

func (r *MovieRepository) GetByID(ctx context.Context, id int64) (*domain.Movie, error) {
	movie := &domain.Movie{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, year, created_at, updated_at
		 FROM movies WHERE id = ?`, id,
	).Scan(&movie.ID, &movie.Title, &movie.Year, &movie.CreatedAt, &movie.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query movie by id: %w", err)
	}
	return movie, nil
}

// List returns every movie in insertion order (the id column).
func (r *MovieRepository) List(ctx context.Context) ([]domain.Movie, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, year, created_at, updated_at
		 FROM movies ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer rows.Close()

	var movies []domain.Movie
	for rows.Next() {
		var m domain.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Year, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}

// Update replaces title and year in a single statement so both fields land
// together or not at all.
func (r *MovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE movies SET title = ?, year = ?, updated_at = ? WHERE id = ?`,
		movie.Title, movie.Year, now, movie.ID,
	)
	if err != nil {
		return fmt.Errorf("update movie: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}

	movie.UpdatedAt = now
	return nil
}

func (r *MovieRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM movies WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
