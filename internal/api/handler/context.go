package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reelratings/movie-review-api/internal/api/middleware"
	"github.com/reelratings/movie-review-api/internal/core/domain"
)

// principal extracts the account resolved by the Auth middleware. A missing
// principal on a protected route means the middleware chain is miswired, so
// the request fails fast before any service call.
func principal(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.PrincipalKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "missing authentication principal")
	}
	return user, nil
}
