package ports

import (
	"context"

	"github.com/reelratings/movie-review-api/internal/core/domain"
)

// MovieRepository defines persistence operations for catalog entries.
type MovieRepository interface {
	Create(ctx context.Context, movie *domain.Movie) error
	FindByID(ctx context.Context, id string) (*domain.Movie, error)
	FindByTitle(ctx context.Context, title string) (*domain.Movie, error)
	FindAll(ctx context.Context) ([]*domain.Movie, error)
	Save(ctx context.Context, movie *domain.Movie) error
	Delete(ctx context.Context, id string) error
}
