package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/railgoteam/railroad-api/internal/models"
	"github.com/railgoteam/railroad-api/internal/service"
)

// UserContextKey is where RequireAuth stores the decoded token claims.
const UserContextKey = "auth_claims"

// RequireAuth validates the Bearer token and attaches its claims to the context.
func RequireAuth(tokens *service.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(strings.TrimSpace(parts[1]))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(UserContextKey, claims)
			return next(c)
		}
	}
}

// RequireAdmin gates a route to admin users. Must run after RequireAuth.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := ClaimsFromContext(c)
		if !ok || claims.Role != string(models.RoleAdmin) {
			return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
		}
		return next(c)
	}
}

// ClaimsFromContext retrieves the decoded claims set by RequireAuth.
func ClaimsFromContext(c echo.Context) (*service.TokenClaims, bool) {
	claims, ok := c.Get(UserContextKey).(*service.TokenClaims)
	return claims, ok
}
