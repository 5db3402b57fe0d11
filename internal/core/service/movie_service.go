package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/reelratings/movie-review-api/internal/api/metrics"
	"github.com/reelratings/movie-review-api/internal/core/domain"
	"github.com/reelratings/movie-review-api/internal/core/ports"
)

// MovieCache is the read-through cache consulted on single-movie lookups.
// A nil cache disables caching entirely.
type MovieCache interface {
	Get(ctx context.Context, id string) (*domain.Movie, bool)
	Set(ctx context.Context, movie *domain.Movie)
	Invalidate(ctx context.Context, id string)
}

// MovieService implements catalog CRUD. Role enforcement for writes lives at
// the route level; this service only owns catalog semantics and the
// review-cascade on delete.
type MovieService struct {
	movies  ports.MovieRepository
	reviews ports.ReviewRepository
	cache   MovieCache
	logger  zerolog.Logger
}

func NewMovieService(movies ports.MovieRepository, reviews ports.ReviewRepository, cache MovieCache, logger zerolog.Logger) *MovieService {
	return &MovieService{movies: movies, reviews: reviews, cache: cache, logger: logger}
}

func (s *MovieService) Create(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error) {
	genre := domain.Genre(input.Genre)
	if !genre.IsValid() {
		return nil, domain.ErrInvalidGenre
	}

	now := time.Now().UTC()
	movie := &domain.Movie{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Director:    input.Director,
		ReleaseDate: input.ReleaseDate,
		Genre:       genre,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.movies.Create(ctx, movie); err != nil {
		s.logger.Error().Err(err).Str("title", input.Title).Msg("failed to create movie")
		return nil, err
	}

	metrics.MoviesCreatedTotal.WithLabelValues(string(genre)).Inc()
	s.logger.Info().Str("movie_id", movie.ID).Str("title", movie.Title).Msg("movie created")

	return movie, nil
}

// Get returns a single movie with its reviews embedded, review authors
// sanitized. Cache hits skip the movie lookup but not the review hydration.
func (s *MovieService) Get(ctx context.Context, id string) (*domain.Movie, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	movie, hit := s.cachedMovie(ctx, id)
	if !hit {
		var err error
		movie, err = s.movies.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if s.cache != nil {
			s.cache.Set(ctx, movie)
		}
	}

	reviews, err := s.reviews.FindByMovie(ctx, id)
	if err != nil {
		return nil, err
	}
	movie.Reviews = make([]domain.Review, 0, len(reviews))
	for _, r := range reviews {
		movie.Reviews = append(movie.Reviews, *r.Sanitized())
	}

	return movie, nil
}

func (s *MovieService) List(ctx context.Context) ([]*domain.Movie, error) {
	return s.movies.FindAll(ctx)
}

func (s *MovieService) Update(ctx context.Context, id string, input ports.UpdateMovieInput) (*domain.Movie, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	movie, err := s.movies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		movie.Title = *input.Title
	}
	if input.Description != nil {
		movie.Description = *input.Description
	}
	if input.Director != nil {
		movie.Director = *input.Director
	}
	if input.ReleaseDate != nil {
		movie.ReleaseDate = *input.ReleaseDate
	}
	if input.Genre != nil {
		genre := domain.Genre(*input.Genre)
		if !genre.IsValid() {
			return nil, domain.ErrInvalidGenre
		}
		movie.Genre = genre
	}
	movie.UpdatedAt = time.Now().UTC()

	if err := s.movies.Save(ctx, movie); err != nil {
		s.logger.Error().Err(err).Str("movie_id", id).Msg("failed to update movie")
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}

	return movie, nil
}

// Delete removes the movie and all of its reviews.
func (s *MovieService) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	if _, err := s.movies.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.reviews.DeleteByMovie(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("movie_id", id).Msg("failed to cascade-delete reviews")
		return err
	}
	if err := s.movies.Delete(ctx, id); err != nil {
		return err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
	s.logger.Info().Str("movie_id", id).Msg("movie deleted")

	return nil
}

func (s *MovieService) cachedMovie(ctx context.Context, id string) (*domain.Movie, bool) {
	if s.cache == nil {
		return nil, false
	}
	return s.cache.Get(ctx, id)
}

// validateID rejects identifiers that are not well-formed UUIDs before any
// repository roundtrip.
func validateID(id string) error {
	if uuid.Validate(id) != nil {
		return domain.ErrInvalidID
	}
	return nil
}
