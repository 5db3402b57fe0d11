package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/reelratings/movie-review-api/internal/core/domain"
	"github.com/reelratings/movie-review-api/internal/core/ports"
)

type stubAuthService struct {
	registerErr error
	loginErr    error
}

func (s *stubAuthService) Register(_ context.Context, name, email, _ string) (*ports.AuthResult, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return &ports.AuthResult{
		User:  &domain.User{ID: "u1", Name: name, Email: email, Roles: []string{domain.RoleUser}, IsActive: true},
		Token: "signed-token",
	}, nil
}

func (s *stubAuthService) Login(_ context.Context, email, _ string) (*ports.AuthResult, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &ports.AuthResult{
		User:  &domain.User{ID: "u1", Email: email, Roles: []string{domain.RoleUser}, IsActive: true},
		Token: "signed-token",
	}, nil
}

func postJSON(t *testing.T, h echo.HandlerFunc, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, h(e.NewContext(req, rec))
}

func TestAuthHandler_Register_Success(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	rec, err := postJSON(t, h.Register, `{"name":"A","email":"a@a.com","password":"secret1"}`)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, ok := resp["token"]; !ok {
		t.Fatalf("response missing token: %s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("response leaks password material: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	cases := []string{
		`{"name":"A","email":"not-an-email","password":"secret1"}`,
		`{"name":"A","email":"a@a.com","password":"abc"}`,
		`{"email":"a@a.com","password":"secret1"}`,
	}
	for _, body := range cases {
		_, err := postJSON(t, h.Register, body)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400 error, got %v", body, err)
		}
	}
}

func TestAuthHandler_Register_ConflictPropagates(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{registerErr: domain.ErrEmailTaken})

	_, err := postJSON(t, h.Register, `{"name":"A","email":"a@a.com","password":"secret1"}`)
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken to propagate, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	rec, err := postJSON(t, h.Login, `{"email":"a@a.com","password":"secret1"}`)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_NotFoundPropagates(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrUserNotFound})

	_, err := postJSON(t, h.Login, `{"email":"a@a.com","password":"wrong"}`)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound to propagate, got %v", err)
	}
}
