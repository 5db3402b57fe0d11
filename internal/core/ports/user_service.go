package ports

import (
	"context"

	"github.com/reelratings/movie-review-api/internal/core/domain"
)

// UserService defines the administrative account operations.
type UserService interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	// UpdateRoles replaces the role set; admin-only at the route level.
	UpdateRoles(ctx context.Context, id string, roles []string) (*domain.User, error)
	// SetActive toggles the isActive flag, revoking or restoring access
	// without deleting the account.
	SetActive(ctx context.Context, id string, active bool) (*domain.User, error)
	// Delete removes the account and cascades to its authored reviews.
	Delete(ctx context.Context, id string) error
}
