package ports

import (
	"context"

	"github.com/reelratings/movie-review-api/internal/core/domain"
)

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	// Create inserts the review. A unique-index collision on
	// (author_id, movie_id) surfaces as domain.ErrDuplicateReview.
	Create(ctx context.Context, review *domain.Review) error
	FindByID(ctx context.Context, id string) (*domain.Review, error)
	FindByAuthorAndMovie(ctx context.Context, authorID, movieID string) (*domain.Review, error)
	FindByAuthor(ctx context.Context, authorID string) ([]*domain.Review, error)
	FindByMovie(ctx context.Context, movieID string) ([]*domain.Review, error)
	FindAll(ctx context.Context) ([]*domain.Review, error)
	Save(ctx context.Context, review *domain.Review) error
	Delete(ctx context.Context, id string) error
	// DeleteByMovie and DeleteByAuthor implement the cascade rules.
	DeleteByMovie(ctx context.Context, movieID string) error
	DeleteByAuthor(ctx context.Context, authorID string) error
}
