package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tripnest/travel-client/internal/api/metrics"
	"github.com/tripnest/travel-client/internal/core/domain"
	"github.com/tripnest/travel-client/internal/core/ports"
)

type BookingHandler struct {
	bookings ports.BookingService
}

func NewBookingHandler(bookings ports.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// BookPackage handles POST /v1/packages/:id/bookings.
//
// @Summary      Book a package
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Package ID"
// @Param        body  body      bookPackageRequest  true  "Booking form"
// @Success      201   {object}  domain.Booking
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /v1/packages/{id}/bookings [post]
func (h *BookingHandler) BookPackage(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req bookPackageRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	booking, err := h.bookings.BookPackage(c.Request().Context(), ports.BookPackageInput{
		UserID:          identity.ID,
		PackageID:       pathID(c, "id"),
		Date:            req.Date,
		Travelers:       req.Travelers,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		return err
	}

	metrics.BookingsCreatedTotal.WithLabelValues("package").Inc()
	return c.JSON(http.StatusCreated, booking)
}

// Cancel handles POST /v1/bookings/:id/cancel.
//
// @Summary      Cancel a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true   "Booking ID"
// @Param        body  body      cancelRequest  false  "Cancellation reason"
// @Success      200   {object}  domain.Booking
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req cancelRequest
	if c.Request().ContentLength != 0 {
		if err := bindJSON(c, &req); err != nil {
			return err
		}
	}

	booking, err := h.bookings.CancelByID(c.Request().Context(), identity, ports.CancelInput{
		BookingID: pathID(c, "id"),
		Reason:    req.Reason,
	})
	if err != nil {
		return err
	}

	metrics.BookingTransitionsTotal.WithLabelValues(string(domain.BookingCancelled)).Inc()
	return c.JSON(http.StatusOK, booking)
}
