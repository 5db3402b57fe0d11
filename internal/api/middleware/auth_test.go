package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/reelratings/movie-review-api/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.users[u.ID] = u
	return u, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Save(_ context.Context, u *domain.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) UpdateRoles(_ context.Context, id string, roles []string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Roles = roles
	return u, nil
}

func signToken(t *testing.T, secret, sub string, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   sub,
		"email": "alice@example.com",
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func requestWithToken(token string) (echo.Context, *httptest.ResponseRecorder, *echo.Echo) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec, e
}

func TestAuth_ValidToken(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{
		"u1": {ID: "u1", Email: "alice@example.com", PasswordHash: "hash", Roles: []string{domain.RoleUser}, IsActive: true},
	}}
	c, rec, _ := requestWithToken("Bearer " + signToken(t, "secret", "u1", time.Hour))

	called := false
	handler := Auth("secret", repo)(func(c echo.Context) error {
		called = true
		principal, _ := c.Get(PrincipalKey).(*domain.User)
		if principal == nil || principal.ID != "u1" {
			t.Fatalf("principal not resolved: %+v", principal)
		}
		if principal.PasswordHash != "" {
			t.Fatalf("principal must be sanitized")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func expectUnauthorized(t *testing.T, repo *stubUserRepo, header string) {
	t.Helper()
	c, rec, e := requestWithToken(header)

	handler := Auth("secret", repo)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	expectUnauthorized(t, &stubUserRepo{users: map[string]*domain.User{}}, "")
}

func TestAuth_InvalidHeaderFormat(t *testing.T) {
	expectUnauthorized(t, &stubUserRepo{users: map[string]*domain.User{}}, "Token abc")
}

func TestAuth_MalformedToken(t *testing.T) {
	expectUnauthorized(t, &stubUserRepo{users: map[string]*domain.User{}}, "Bearer not-a-token")
}

func TestAuth_WrongSecret(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{
		"u1": {ID: "u1", IsActive: true},
	}}
	expectUnauthorized(t, repo, "Bearer "+signToken(t, "other-secret", "u1", time.Hour))
}

func TestAuth_ExpiredToken(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{
		"u1": {ID: "u1", IsActive: true},
	}}
	expectUnauthorized(t, repo, "Bearer "+signToken(t, "secret", "u1", -time.Minute))
}

func TestAuth_UnknownUser(t *testing.T) {
	expectUnauthorized(t, &stubUserRepo{users: map[string]*domain.User{}}, "Bearer "+signToken(t, "secret", "ghost", time.Hour))
}

func TestAuth_InactiveUser(t *testing.T) {
	// A structurally valid token for a deactivated account must not pass.
	repo := &stubUserRepo{users: map[string]*domain.User{
		"u1": {ID: "u1", IsActive: false},
	}}
	expectUnauthorized(t, repo, "Bearer "+signToken(t, "secret", "u1", time.Hour))
}
