package ports

import (
	"context"

	"github.com/reelratings/movie-review-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts the user and returns the stored record. A unique-index
	// collision on email surfaces as domain.ErrEmailTaken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByEmail is an exact match; emails are normalized at write time.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
	// UpdateRoles replaces the user's role set inside a single transactional
	// unit; any failure rolls the record back untouched.
	UpdateRoles(ctx context.Context, id string, roles []string) (*domain.User, error)
}
