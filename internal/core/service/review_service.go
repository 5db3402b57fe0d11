package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/reelratings/movie-review-api/internal/api/metrics"
	"github.com/reelratings/movie-review-api/internal/core/domain"
	"github.com/reelratings/movie-review-api/internal/core/ports"
)

// ReviewService implements review CRUD with the one-review-per-user-per-movie
// invariant and the ownership rule on update/delete.
type ReviewService struct {
	reviews ports.ReviewRepository
	movies  ports.MovieRepository
	users   ports.UserRepository
	logger  zerolog.Logger
}

func NewReviewService(reviews ports.ReviewRepository, movies ports.MovieRepository, users ports.UserRepository, logger zerolog.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, movies: movies, users: users, logger: logger}
}

// Create posts a review. The movie must exist and the author must not have
// reviewed it already. The existence check runs first so a duplicate against
// a missing movie still reads as not-found. The unique (author_id, movie_id)
// index in the store backstops the check against concurrent submissions.
func (s *ReviewService) Create(ctx context.Context, input ports.CreateReviewInput) (*domain.Review, error) {
	if !domain.ValidRating(input.Rating) {
		return nil, domain.ErrInvalidRating
	}
	if err := validateID(input.MovieID); err != nil {
		return nil, err
	}

	movie, err := s.movies.FindByID(ctx, input.MovieID)
	if err != nil {
		return nil, err
	}

	existing, err := s.reviews.FindByAuthorAndMovie(ctx, input.AuthorID, input.MovieID)
	if err != nil && !errors.Is(err, domain.ErrReviewNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateReview
	}

	now := time.Now().UTC()
	review := &domain.Review{
		ID:        uuid.NewString(),
		Title:     input.Title,
		Rating:    input.Rating,
		Comment:   input.Comment,
		AuthorID:  input.AuthorID,
		MovieID:   input.MovieID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		s.logger.Error().Err(err).Str("movie_id", input.MovieID).Str("author_id", input.AuthorID).Msg("failed to create review")
		return nil, err
	}

	metrics.ReviewsCreatedTotal.Inc()
	s.logger.Info().Str("review_id", review.ID).Str("movie_id", movie.ID).Msg("review created")

	review.Movie = movie
	if author, err := s.users.FindByID(ctx, input.AuthorID); err == nil {
		review.Author = author
	}
	return review.Sanitized(), nil
}

func (s *ReviewService) Get(ctx context.Context, id string) (*domain.Review, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, review), nil
}

func (s *ReviewService) List(ctx context.Context) ([]*domain.Review, error) {
	reviews, err := s.reviews.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.hydrateAll(ctx, reviews), nil
}

func (s *ReviewService) ListByMovie(ctx context.Context, movieID string) ([]*domain.Review, error) {
	if err := validateID(movieID); err != nil {
		return nil, err
	}
	if _, err := s.movies.FindByID(ctx, movieID); err != nil {
		return nil, err
	}

	reviews, err := s.reviews.FindByMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}
	return s.hydrateAll(ctx, reviews), nil
}

func (s *ReviewService) ListByAuthor(ctx context.Context, authorID string) ([]*domain.Review, error) {
	if err := validateID(authorID); err != nil {
		return nil, err
	}

	reviews, err := s.reviews.FindByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	return s.hydrateAll(ctx, reviews), nil
}

// Update merges the patch into the caller's own review. Existence is checked
// before ownership, so mutating a missing review reads as not-found even for
// a non-owner.
func (s *ReviewService) Update(ctx context.Context, id string, input ports.UpdateReviewInput, callerID string) (*domain.Review, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanMutate(review.AuthorID, callerID) {
		return nil, domain.ErrNotReviewOwner
	}

	if input.Title != nil {
		review.Title = *input.Title
	}
	if input.Rating != nil {
		if !domain.ValidRating(*input.Rating) {
			return nil, domain.ErrInvalidRating
		}
		review.Rating = *input.Rating
	}
	if input.Comment != nil {
		review.Comment = *input.Comment
	}
	review.UpdatedAt = time.Now().UTC()

	if err := s.reviews.Save(ctx, review); err != nil {
		s.logger.Error().Err(err).Str("review_id", id).Msg("failed to update review")
		return nil, err
	}
	return s.hydrate(ctx, review), nil
}

func (s *ReviewService) Delete(ctx context.Context, id string, callerID string) error {
	if err := validateID(id); err != nil {
		return err
	}

	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanMutate(review.AuthorID, callerID) {
		return domain.ErrNotReviewOwner
	}

	if err := s.reviews.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("review_id", id).Str("author_id", callerID).Msg("review deleted")
	return nil
}

// hydrate embeds the author and movie on a review and sanitizes the result.
// Hydration failures are tolerated: the review is still returned.
func (s *ReviewService) hydrate(ctx context.Context, review *domain.Review) *domain.Review {
	if author, err := s.users.FindByID(ctx, review.AuthorID); err == nil {
		review.Author = author
	}
	if movie, err := s.movies.FindByID(ctx, review.MovieID); err == nil {
		review.Movie = movie
	}
	return review.Sanitized()
}

func (s *ReviewService) hydrateAll(ctx context.Context, reviews []*domain.Review) []*domain.Review {
	out := make([]*domain.Review, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, s.hydrate(ctx, r))
	}
	return out
}
