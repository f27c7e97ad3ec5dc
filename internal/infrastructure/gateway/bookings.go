package gateway

import (
	"context"
	"net/http"

	"github.com/tripnest/travel-client/internal/core/domain"
	"github.com/tripnest/travel-client/internal/core/ports"
)

const resourceBookings = "bookings"

func (c *Client) ListBookings(ctx context.Context, f ports.BookingFilter) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := c.do(ctx, call{
		resource: resourceBookings,
		op:       "list bookings",
		fallback: "Failed to fetch bookings",
		method:   http.MethodGet,
		path:     "/bookings",
		query:    queryOf("userId", f.UserID.String()),
	}, &bookings)
	return bookings, err
}

func (c *Client) ListAllBookings(ctx context.Context) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := c.do(ctx, call{
		resource: resourceBookings,
		op:       "list all bookings",
		fallback: "Failed to fetch all bookings",
		method:   http.MethodGet,
		path:     "/admin/bookings",
	}, &bookings)
	return bookings, err
}

func (c *Client) GetBooking(ctx context.Context, id domain.ID) (*domain.Booking, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	var b domain.Booking
	err := c.do(ctx, call{
		resource: resourceBookings,
		op:       "get booking",
		fallback: "Failed to fetch booking",
		method:   http.MethodGet,
		path:     itemPath("bookings", id),
	}, &b)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) CreateBooking(ctx context.Context, b domain.Booking) (*domain.Booking, error) {
	created := b
	err := c.do(ctx, call{
		resource: resourceBookings,
		op:       "create booking",
		fallback: "Failed to create booking",
		method:   http.MethodPost,
		path:     "/bookings",
		body:     b,
	}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateBooking replaces the whole booking record.
func (c *Client) UpdateBooking(ctx context.Context, b domain.Booking) (*domain.Booking, error) {
	if err := requireID(b.ID); err != nil {
		return nil, err
	}
	updated := b
	err := c.do(ctx, call{
		resource: resourceBookings,
		op:       "update booking",
		fallback: "Failed to update booking",
		method:   http.MethodPut,
		path:     itemPath("bookings", b.ID),
		body:     b,
	}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// UpdateBookingStatus sends only the status field.
func (c *Client) UpdateBookingStatus(ctx context.Context, id domain.ID, status domain.BookingStatus) (*domain.Booking, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	updated := domain.Booking{ID: id, Status: status}
	err := c.do(ctx, call{
		resource: resourceBookings,
		op:       "update booking status",
		fallback: "Failed to update booking status",
		method:   http.MethodPatch,
		path:     itemPath("bookings", id),
		body:     map[string]domain.BookingStatus{"status": status},
	}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
