package ports

import (
	"context"
	"time"

	"github.com/reelratings/movie-review-api/internal/core/domain"
)

// CreateMovieInput carries all data needed to create a catalog entry.
type CreateMovieInput struct {
	Title       string
	Description string
	Director    string
	ReleaseDate time.Time
	Genre       string
}

// UpdateMovieInput is a partial patch; nil fields are left untouched.
type UpdateMovieInput struct {
	Title       *string
	Description *string
	Director    *string
	ReleaseDate *time.Time
	Genre       *string
}

// MovieService defines catalog use-cases. Writes are admin-only; the role
// check happens at the route level, not here.
type MovieService interface {
	Create(ctx context.Context, input CreateMovieInput) (*domain.Movie, error)
	Get(ctx context.Context, id string) (*domain.Movie, error)
	List(ctx context.Context) ([]*domain.Movie, error)
	Update(ctx context.Context, id string, input UpdateMovieInput) (*domain.Movie, error)
	// Delete removes the movie and cascades to its reviews.
	Delete(ctx context.Context, id string) error
}
