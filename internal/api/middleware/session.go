package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tripnest/travel-client/internal/core/domain"
	"github.com/tripnest/travel-client/internal/core/ports"
)

// KeyIdentity holds the domain.Identity restored by Session.
const KeyIdentity = "identity"

// Session restores the identity behind the token's sid. A token whose session
// was logged out or expired is rejected even though its signature is valid.
// Must run after Auth.
func Session(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid, _ := c.Get(KeySID).(string)
			if sid == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			identity, err := sessions.Current(c.Request().Context(), sid)
			if errors.Is(err, domain.ErrNotAuthenticated) {
				return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
			}
			if err != nil {
				return err
			}
			if userID, _ := c.Get(KeyUserID).(string); userID != identity.ID.String() {
				return echo.NewHTTPError(http.StatusUnauthorized, "session does not match token")
			}

			c.Set(KeyIdentity, *identity)
			return next(c)
		}
	}
}
