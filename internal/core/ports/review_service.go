package ports

import (
	"context"

	"github.com/reelratings/movie-review-api/internal/core/domain"
)

// CreateReviewInput carries all data needed to post a review. AuthorID is
// the authenticated principal, never a client-supplied field.
type CreateReviewInput struct {
	Title    string
	Rating   int
	Comment  string
	MovieID  string
	AuthorID string
}

// UpdateReviewInput is a partial patch; nil fields are left untouched.
type UpdateReviewInput struct {
	Title   *string
	Rating  *int
	Comment *string
}

// ReviewService defines review use-cases. Update and Delete enforce the
// ownership rule: only the review's author may mutate it.
type ReviewService interface {
	Create(ctx context.Context, input CreateReviewInput) (*domain.Review, error)
	Get(ctx context.Context, id string) (*domain.Review, error)
	List(ctx context.Context) ([]*domain.Review, error)
	ListByMovie(ctx context.Context, movieID string) ([]*domain.Review, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*domain.Review, error)
	Update(ctx context.Context, id string, input UpdateReviewInput, callerID string) (*domain.Review, error)
	Delete(ctx context.Context, id string, callerID string) error
}
