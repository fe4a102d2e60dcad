package service

import (
	"context"
	"fmt"

	"github.com/ChocoChu32/watchlist/internal/domain"
)

// CatalogService handles movie CRUD with validation. Every mutation validates
// before touching the repository, so a failed call leaves the catalog
// untouched.
type CatalogService struct {
	movies domain.MovieRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(movies domain.MovieRepository) *CatalogService {
	return &CatalogService{movies: movies}
}

// List returns every movie in insertion order.
func (s *CatalogService) List(ctx context.Context) ([]domain.Movie, error) {
	return s.movies.List(ctx)
}

// GetByID returns a movie by ID.
func (s *CatalogService) GetByID(ctx context.Context, id int64) (*domain.Movie, error) {
	return s.movies.GetByID(ctx, id)
}

// Create validates the fields and appends a new movie to the catalog.
func (s *CatalogService) Create(ctx context.Context, title, year string) (*domain.Movie, error) {
	title, year, err := domain.ValidateMovieFields(title, year)
	if err != nil {
		return nil, err
	}

	movie := &domain.Movie{Title: title, Year: year}
	if err := s.movies.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}
	return movie, nil
}

// Update replaces both fields of an existing movie. A missing id yields
// ErrNotFound before validation runs, so callers can tell the two failures
// apart.
func (s *CatalogService) Update(ctx context.Context, id int64, title, year string) (*domain.Movie, error) {
	movie, err := s.movies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	title, year, err = domain.ValidateMovieFields(title, year)
	if err != nil {
		return nil, err
	}

	movie.Title = title
	movie.Year = year
	if err := s.movies.Update(ctx, movie); err != nil {
		return nil, fmt.Errorf("update movie: %w", err)
	}
	return movie, nil
}

// Delete removes a movie from the catalog.
func (s *CatalogService) Delete(ctx context.Context, id int64) error {
	return s.movies.Delete(ctx, id)
}
