package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tripnest/travel-client/internal/core/domain"
)

// CreateTripInput is the custom trip form.
type CreateTripInput struct {
	UserID            domain.ID           `json:"userId" validate:"required"`
	Name              string              `json:"name" validate:"required"`
	Departure         string              `json:"departure"`
	Destination       string              `json:"destination"`
	IntermediateStops []string            `json:"intermediateStops"`
	Transport         domain.Transport    `json:"transport" validate:"omitempty,oneof=bus train plane"`
	Date              domain.Date         `json:"date"`
	Budget            decimal.NullDecimal `json:"budget" validate:"omitempty,gte=0"`
	Notes             string              `json:"notes"`
}

// SearchInput is the transport search form.
type SearchInput struct {
	Departure   string      `json:"departure" validate:"required"`
	Destination string      `json:"destination" validate:"required"`
	Date        domain.Date `json:"date"`
	Passengers  int         `json:"passengers" validate:"gte=0"`
}

// BookOptionInput books a seat on a transport search result.
type BookOptionInput struct {
	UserID          domain.ID              `json:"userId" validate:"required"`
	TripID          *domain.ID             `json:"tripId"`
	Option          domain.TransportOption `json:"option"`
	Date            domain.Date            `json:"date"`
	Travelers       int                    `json:"travelers" validate:"gte=1"`
	SpecialRequests string                 `json:"specialRequests"`
}

// TrackOptionInput records a transport search result as an expense.
type TrackOptionInput struct {
	UserID domain.ID              `json:"userId" validate:"required"`
	TripID *domain.ID             `json:"tripId"`
	Option domain.TransportOption `json:"option"`
	Date   domain.Date            `json:"date"`
}

// TripService defines the trip planning use cases.
type TripService interface {
	CreateCustom(ctx context.Context, in CreateTripInput) (*domain.Trip, error)
	PromoteFromPackage(ctx context.Context, userID domain.ID, pkg domain.Package) (*domain.Trip, error)
	Search(ctx context.Context, in SearchInput) ([]domain.TransportOption, error)
	BookOption(ctx context.Context, in BookOptionInput) (*domain.Booking, error)
	TrackOption(ctx context.Context, in TrackOptionInput) (*domain.Expense, error)
	Update(ctx context.Context, actor domain.Identity, trip domain.Trip) (*domain.Trip, error)
}
