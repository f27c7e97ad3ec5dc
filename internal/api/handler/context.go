package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tripnest/travel-client/internal/api/middleware"
	"github.com/tripnest/travel-client/internal/core/domain"
)

// ctxIdentity returns the identity restored by the Session middleware and
// fails fast when it is absent, before any service call.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	id, ok := c.Get(middleware.KeyIdentity).(domain.Identity)
	if !ok || id.ID == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}

// ctxSID returns the session id claim set by the Auth middleware.
func ctxSID(c echo.Context) (string, error) {
	sid, _ := c.Get(middleware.KeySID).(string)
	if sid == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return sid, nil
}

func pathID(c echo.Context, name string) domain.ID {
	return domain.ID(c.Param(name))
}

func bindJSON(c echo.Context, v any) error {
	if err := c.Bind(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return nil
}
