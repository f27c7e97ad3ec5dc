package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tripnest/travel-client/internal/api/metrics"
	"github.com/tripnest/travel-client/internal/core/domain"
	"github.com/tripnest/travel-client/internal/core/ports"
)

// AdminHandler serves the admin console. Routes are mounted behind RBAC; the
// service re-checks the admin flag on the restored identity.
type AdminHandler struct {
	admin ports.AdminService
}

func NewAdminHandler(admin ports.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// Overview handles GET /v1/admin/overview.
//
// @Summary      Admin overview
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  aggregate.AdminOverview
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/overview [get]
func (h *AdminHandler) Overview(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	timer := prometheus.NewTimer(metrics.ViewBuildDuration.WithLabelValues("admin_overview"))
	defer timer.ObserveDuration()

	view, err := h.admin.Overview(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// CreatePackage handles POST /v1/admin/packages.
//
// @Summary      Add a package
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ports.PackageInput  true  "Package form"
// @Success      201   {object}  domain.Package
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/packages [post]
func (h *AdminHandler) CreatePackage(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req ports.PackageInput
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	pkg, err := h.admin.CreatePackage(c.Request().Context(), identity, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, pkg)
}

// UpdatePackage handles PUT /v1/admin/packages/:id.
//
// @Summary      Replace a package
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Package ID"
// @Param        body  body      ports.PackageInput  true  "Package form"
// @Success      200   {object}  domain.Package
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/packages/{id} [put]
func (h *AdminHandler) UpdatePackage(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req ports.PackageInput
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	pkg, err := h.admin.UpdatePackage(c.Request().Context(), identity, pathID(c, "id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pkg)
}

// DeletePackage handles DELETE /v1/admin/packages/:id.
//
// @Summary      Delete a package
// @Tags         admin
// @Security     BearerAuth
// @Param        id   path  string  true  "Package ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/packages/{id} [delete]
func (h *AdminHandler) DeletePackage(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.admin.DeletePackage(c.Request().Context(), identity, pathID(c, "id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateUser handles PUT /v1/admin/users/:id.
//
// @Summary      Edit a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "User ID"
// @Param        body  body      ports.UserInput  true  "User form; empty password keeps the current one"
// @Success      200   {object}  domain.User
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req ports.UserInput
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	user, err := h.admin.UpdateUser(c.Request().Context(), identity, pathID(c, "id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /v1/admin/users/:id.
//
// @Summary      Delete a user
// @Tags         admin
// @Security     BearerAuth
// @Param        id   path  string  true  "User ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.admin.DeleteUser(c.Request().Context(), identity, pathID(c, "id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateTrip handles PUT /v1/admin/trips/:id.
//
// @Summary      Replace any trip
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Trip ID"
// @Param        body  body      domain.Trip  true  "Full trip record"
// @Success      200   {object}  domain.Trip
// @Failure      403   {object}  errorResponse
// @Router       /v1/admin/trips/{id} [put]
func (h *AdminHandler) UpdateTrip(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req domain.Trip
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	req.ID = pathID(c, "id")

	trip, err := h.admin.UpdateTrip(c.Request().Context(), identity, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, trip)
}

// SetBookingStatus handles PATCH /v1/admin/bookings/:id/status.
//
// @Summary      Change a booking status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Booking ID"
// @Param        body  body      statusRequest  true  "New status"
// @Success      200   {object}  domain.Booking
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/bookings/{id}/status [patch]
func (h *AdminHandler) SetBookingStatus(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req statusRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	booking, err := h.admin.SetBookingStatus(c.Request().Context(), identity, pathID(c, "id"), req.Status)
	if err != nil {
		return err
	}

	metrics.BookingTransitionsTotal.WithLabelValues(string(booking.Status)).Inc()
	return c.JSON(http.StatusOK, booking)
}
