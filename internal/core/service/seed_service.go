package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/reelratings/movie-review-api/internal/core/domain"
	"github.com/reelratings/movie-review-api/internal/core/ports"
)

// SeedService loads demo users, movies, and reviews. Safe to run repeatedly:
// each record is inserted only if a matching one does not already exist.
type SeedService struct {
	users   ports.UserRepository
	movies  ports.MovieRepository
	reviews ports.ReviewRepository
	logger  zerolog.Logger
}

func NewSeedService(users ports.UserRepository, movies ports.MovieRepository, reviews ports.ReviewRepository, logger zerolog.Logger) *SeedService {
	return &SeedService{users: users, movies: movies, reviews: reviews, logger: logger}
}

func (s *SeedService) Run(ctx context.Context) (*ports.SeedResult, error) {
	result := &ports.SeedResult{}
	now := time.Now().UTC()

	for _, su := range seedUsers {
		existing, err := s.users.FindByEmail(ctx, su.Email)
		if err == nil {
			result.Users = append(result.Users, ports.SeedRecord{ID: existing.ID, Label: su.Email, Status: "already-exists"})
			continue
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		created, err := s.users.Create(ctx, &domain.User{
			Name:         su.Name,
			Email:        su.Email,
			PasswordHash: string(hash),
			Roles:        su.Roles,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return nil, err
		}
		result.Users = append(result.Users, ports.SeedRecord{ID: created.ID, Label: su.Email, Status: "created"})
	}

	for _, sm := range seedMovies {
		existing, err := s.movies.FindByTitle(ctx, sm.Title)
		if err == nil {
			result.Movies = append(result.Movies, ports.SeedRecord{ID: existing.ID, Label: sm.Title, Status: "already-exists"})
			continue
		}
		if !errors.Is(err, domain.ErrMovieNotFound) {
			return nil, err
		}

		movie := &domain.Movie{
			ID:          uuid.NewString(),
			Title:       sm.Title,
			Description: sm.Description,
			Director:    sm.Director,
			ReleaseDate: sm.ReleaseDate,
			Genre:       sm.Genre,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.movies.Create(ctx, movie); err != nil {
			return nil, err
		}
		result.Movies = append(result.Movies, ports.SeedRecord{ID: movie.ID, Label: sm.Title, Status: "created"})
	}

	for _, sr := range seedReviews {
		movie, err := s.movies.FindByTitle(ctx, sr.MovieTitle)
		if err != nil {
			s.logger.Warn().Str("movie_title", sr.MovieTitle).Msg("seed review skipped, movie missing")
			continue
		}
		user, err := s.users.FindByEmail(ctx, sr.UserEmail)
		if err != nil {
			s.logger.Warn().Str("user_email", sr.UserEmail).Msg("seed review skipped, user missing")
			continue
		}

		existing, err := s.reviews.FindByAuthorAndMovie(ctx, user.ID, movie.ID)
		if err == nil {
			result.Reviews = append(result.Reviews, ports.SeedRecord{ID: existing.ID, Label: sr.Title, Status: "already-exists"})
			continue
		}
		if !errors.Is(err, domain.ErrReviewNotFound) {
			return nil, err
		}

		review := &domain.Review{
			ID:        uuid.NewString(),
			Title:     sr.Title,
			Rating:    sr.Rating,
			Comment:   sr.Comment,
			AuthorID:  user.ID,
			MovieID:   movie.ID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.reviews.Create(ctx, review); err != nil {
			return nil, err
		}
		result.Reviews = append(result.Reviews, ports.SeedRecord{ID: review.ID, Label: sr.Title, Status: "created"})
	}

	s.logger.Info().
		Int("users", len(result.Users)).
		Int("movies", len(result.Movies)).
		Int("reviews", len(result.Reviews)).
		Msg("seed completed")

	return result, nil
}
