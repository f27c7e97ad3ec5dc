package gateway

import (
	"context"
	"net/http"

	"github.com/tripnest/travel-client/internal/core/domain"
	"github.com/tripnest/travel-client/internal/core/ports"
)

const resourceTrips = "trips"

func (c *Client) ListTrips(ctx context.Context, f ports.TripFilter) ([]domain.Trip, error) {
	var trips []domain.Trip
	err := c.do(ctx, call{
		resource: resourceTrips,
		op:       "list trips",
		fallback: "Failed to fetch trips",
		method:   http.MethodGet,
		path:     "/trips",
		query:    queryOf("userId", f.UserID.String()),
	}, &trips)
	return trips, err
}

func (c *Client) ListAllTrips(ctx context.Context) ([]domain.Trip, error) {
	var trips []domain.Trip
	err := c.do(ctx, call{
		resource: resourceTrips,
		op:       "list all trips",
		fallback: "Failed to fetch all trips",
		method:   http.MethodGet,
		path:     "/admin/trips",
	}, &trips)
	return trips, err
}

func (c *Client) GetTrip(ctx context.Context, id domain.ID) (*domain.Trip, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	var t domain.Trip
	err := c.do(ctx, call{
		resource: resourceTrips,
		op:       "get trip",
		fallback: "Failed to fetch trip",
		method:   http.MethodGet,
		path:     itemPath("trips", id),
	}, &t)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) CreateTrip(ctx context.Context, t domain.Trip) (*domain.Trip, error) {
	created := t
	err := c.do(ctx, call{
		resource: resourceTrips,
		op:       "create trip",
		fallback: "Failed to create trip",
		method:   http.MethodPost,
		path:     "/trips",
		body:     t,
	}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateTrip(ctx context.Context, t domain.Trip) (*domain.Trip, error) {
	if err := requireID(t.ID); err != nil {
		return nil, err
	}
	updated := t
	err := c.do(ctx, call{
		resource: resourceTrips,
		op:       "update trip",
		fallback: "Failed to update trip",
		method:   http.MethodPut,
		path:     itemPath("trips", t.ID),
		body:     t,
	}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteTrip(ctx context.Context, id domain.ID) error {
	if err := requireID(id); err != nil {
		return err
	}
	return c.do(ctx, call{
		resource: resourceTrips,
		op:       "delete trip",
		fallback: "Failed to delete trip",
		method:   http.MethodDelete,
		path:     itemPath("trips", id),
	}, nil)
}
