package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tripnest/travel-client/internal/core/domain"
)

// RBAC admits requests whose role is one of allowedRoles. The role comes from
// the identity restored by Session when present, else from the token claim,
// so a token minted before a username change cannot outlive the stored
// identity's admin flag.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := allowed[roleOf(c)]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			return next(c)
		}
	}
}

func roleOf(c echo.Context) string {
	if id, ok := c.Get(KeyIdentity).(domain.Identity); ok {
		return id.Role()
	}
	role, _ := c.Get(KeyRole).(string)
	return role
}
