package ports

import (
	"context"

	"github.com/reelratings/movie-review-api/internal/core/domain"
)

// AuthResult is returned by register and login: the sanitized account plus a
// freshly issued bearer token.
type AuthResult struct {
	User  *domain.User
	Token string
}

// AuthService defines registration and login use-cases.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}
