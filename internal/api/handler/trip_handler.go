package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tripnest/travel-client/internal/api/metrics"
	"github.com/tripnest/travel-client/internal/core/domain"
	"github.com/tripnest/travel-client/internal/core/ports"
)

type TripHandler struct {
	trips ports.TripService
	views ports.ViewsService
}

func NewTripHandler(trips ports.TripService, views ports.ViewsService) *TripHandler {
	return &TripHandler{trips: trips, views: views}
}

// Create handles POST /v1/trips.
//
// @Summary      Create a custom trip
// @Tags         trips
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ports.CreateTripInput  true  "Trip form"
// @Success      201   {object}  domain.Trip
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/trips [post]
func (h *TripHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req ports.CreateTripInput
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	req.UserID = identity.ID

	trip, err := h.trips.CreateCustom(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, trip)
}

// FromPackage handles POST /v1/packages/:id/trips.
//
// @Summary      Add a package to my trips
// @Tags         trips
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Package ID"
// @Success      201  {object}  domain.Trip
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/packages/{id}/trips [post]
func (h *TripHandler) FromPackage(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	pkg, err := h.views.Package(c.Request().Context(), pathID(c, "id"))
	if err != nil {
		return err
	}

	trip, err := h.trips.PromoteFromPackage(c.Request().Context(), identity.ID, *pkg)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, trip)
}

// Update handles PUT /v1/trips/:id.
//
// @Summary      Replace a trip
// @Tags         trips
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Trip ID"
// @Param        body  body      domain.Trip  true  "Full trip record"
// @Success      200   {object}  domain.Trip
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/trips/{id} [put]
func (h *TripHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req domain.Trip
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	req.ID = pathID(c, "id")

	trip, err := h.trips.Update(c.Request().Context(), identity, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, trip)
}

// Search handles POST /v1/trips/search.
//
// @Summary      Search transport options
// @Tags         trips
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ports.SearchInput  true  "Route"
// @Success      200   {array}   domain.TransportOption
// @Failure      422   {object}  errorResponse
// @Router       /v1/trips/search [post]
func (h *TripHandler) Search(c echo.Context) error {
	var req ports.SearchInput
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	options, err := h.trips.Search(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, options)
}

// BookOption handles POST /v1/trips/options/bookings.
//
// @Summary      Book a transport option
// @Tags         trips
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ports.BookOptionInput  true  "Selected option"
// @Success      201   {object}  domain.Booking
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/trips/options/bookings [post]
func (h *TripHandler) BookOption(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req ports.BookOptionInput
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	req.UserID = identity.ID

	booking, err := h.trips.BookOption(c.Request().Context(), req)
	if err != nil {
		return err
	}

	metrics.BookingsCreatedTotal.WithLabelValues("transport_option").Inc()
	return c.JSON(http.StatusCreated, booking)
}

// TrackOption handles POST /v1/trips/options/expenses.
//
// @Summary      Track a transport option as an expense
// @Tags         trips
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ports.TrackOptionInput  true  "Selected option"
// @Success      201   {object}  domain.Expense
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/trips/options/expenses [post]
func (h *TripHandler) TrackOption(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req ports.TrackOptionInput
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	req.UserID = identity.ID

	expense, err := h.trips.TrackOption(c.Request().Context(), req)
	if err != nil {
		return err
	}

	metrics.ExpensesRecordedTotal.WithLabelValues(expense.Category).Inc()
	return c.JSON(http.StatusCreated, expense)
}
