package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/reelratings/movie-review-api/internal/core/domain"
	"github.com/reelratings/movie-review-api/internal/core/ports"
)

// UserService implements the administrative account operations. All of them
// sit behind the admin role at the route level.
type UserService struct {
	users   ports.UserRepository
	reviews ports.ReviewRepository
	logger  zerolog.Logger
}

func NewUserService(users ports.UserRepository, reviews ports.ReviewRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, reviews: reviews, logger: logger}
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

// UpdateRoles replaces the user's role set. The repository runs the
// read-modify-save as one transactional unit.
func (s *UserService) UpdateRoles(ctx context.Context, id string, roles []string) (*domain.User, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if len(roles) == 0 {
		return nil, domain.ErrInvalidCredentials
	}
	for _, r := range roles {
		if !domain.ValidRole(r) {
			return nil, domain.ErrInvalidCredentials
		}
	}

	user, err := s.users.UpdateRoles(ctx, id, roles)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", id).Msg("failed to update roles")
		return nil, err
	}

	s.logger.Info().Str("user_id", id).Strs("roles", roles).Msg("roles updated")
	return user.Sanitized(), nil
}

func (s *UserService) SetActive(ctx context.Context, id string, active bool) (*domain.User, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.IsActive = active
	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", id).Bool("active", active).Msg("user active flag changed")
	return user.Sanitized(), nil
}

// Delete removes the account and its authored reviews.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.reviews.DeleteByAuthor(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("user_id", id).Msg("failed to cascade-delete reviews")
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
