package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reelratings/movie-review-api/internal/api/metrics"
	"github.com/reelratings/movie-review-api/internal/core/domain"
)

// RBAC enforces role-based access control against the principal resolved by
// Auth. The decision table:
//
//	no required roles          → allow (authentication alone suffices)
//	roles required, no principal → 400 (Auth must run first on the route)
//	roles required, no overlap   → 403
//	roles required, overlap      → allow
//
// Matching is literal set intersection; there is no role hierarchy.
func RBAC(requiredRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if len(requiredRoles) == 0 {
				return next(c)
			}

			principal, _ := c.Get(PrincipalKey).(*domain.User)
			if principal == nil {
				return echo.NewHTTPError(http.StatusBadRequest, "missing authentication principal")
			}

			if !principal.HasAnyRole(requiredRoles...) {
				metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}

			return next(c)
		}
	}
}
