package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/reelratings/movie-review-api/internal/api/metrics"
	"github.com/reelratings/movie-review-api/internal/core/ports"
)

// PrincipalKey is the echo context key under which Auth stores the resolved
// account.
const PrincipalKey = "principal"

// Auth validates the bearer token and resolves it to a live account.
//
// A request passes only when the token is well-formed, HS256-signed with the
// server secret, unexpired, and its subject resolves to an existing account
// whose IsActive flag is set. The resolved account (password hash stripped)
// is stored in the context as the request principal.
func Auth(jwtSecret string, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return unauthenticated("missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return unauthenticated("invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return unauthenticated("invalid token")
			}

			sub, err := claims.GetSubject()
			if err != nil || sub == "" {
				return unauthenticated("invalid token")
			}

			// The token alone is not enough: the referenced account must
			// still exist and still be active.
			user, err := users.FindByID(c.Request().Context(), sub)
			if err != nil {
				return unauthenticated("invalid token")
			}
			if !user.IsActive {
				return unauthenticated("invalid token")
			}

			c.Set(PrincipalKey, user.Sanitized())

			return next(c)
		}
	}
}

func unauthenticated(msg string) error {
	metrics.AuthRejectionsTotal.WithLabelValues("unauthenticated").Inc()
	return echo.NewHTTPError(http.StatusUnauthorized, msg)
}
