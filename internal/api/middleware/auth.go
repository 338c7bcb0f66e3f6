package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fpdual/dual-admin/internal/core/domain"
)

// TokenVerifier decodes and validates a bearer token. Implemented by
// service.TokenCodec.
type TokenVerifier interface {
	Verify(token string) (domain.Claims, error)
}

// Auth validates the bearer token and injects the resolved identity into
// the context. A missing or unparseable header is 401; a token that is
// present but fails verification is 403. Clients rely on the distinction
// to decide between "log in" and "session no longer valid".
func Auth(codec TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := codec.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "invalid token")
			}

			c.Set("user_id", claims.UserID)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}
