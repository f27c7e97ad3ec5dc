package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tripnest/travel-client/internal/core/domain"
)

// BookPackageInput is the package booking form. A zero Date defaults to the
// package start date, or today when the package has none.
type BookPackageInput struct {
	UserID          domain.ID   `json:"userId" validate:"required"`
	PackageID       domain.ID   `json:"packageId" validate:"required"`
	Date            domain.Date `json:"date"`
	Travelers       int         `json:"travelers" validate:"gte=1"`
	SpecialRequests string      `json:"specialRequests"`
}

// CreateBookingInput creates a booking from a known unit price.
type CreateBookingInput struct {
	UserID          domain.ID        `json:"userId" validate:"required"`
	PackageID       *domain.ID       `json:"packageId"`
	TripID          *domain.ID       `json:"tripId"`
	PackageTitle    string           `json:"packageTitle"`
	Date            domain.Date      `json:"date" validate:"required"`
	Travelers       int              `json:"travelers" validate:"gte=1"`
	UnitPrice       decimal.Decimal  `json:"unitPrice" validate:"gte=0"`
	TransportType   domain.Transport `json:"transportType" validate:"omitempty,oneof=bus train plane"`
	Route           string           `json:"route"`
	SpecialRequests string           `json:"specialRequests"`
}

// CancelInput carries the cancellation form.
type CancelInput struct {
	BookingID domain.ID `json:"bookingId" validate:"required"`
	Reason    string    `json:"reason"`
}

// BookingService defines the booking lifecycle use cases.
type BookingService interface {
	BookPackage(ctx context.Context, in BookPackageInput) (*domain.Booking, error)
	Create(ctx context.Context, in CreateBookingInput) (*domain.Booking, error)
	Cancel(ctx context.Context, b domain.Booking, reason string) (*domain.Booking, error)
	// CancelByID loads the booking and cancels it if actor owns it or is an admin.
	CancelByID(ctx context.Context, actor domain.Identity, in CancelInput) (*domain.Booking, error)
	SetStatus(ctx context.Context, b domain.Booking, next domain.BookingStatus) (*domain.Booking, error)
}
