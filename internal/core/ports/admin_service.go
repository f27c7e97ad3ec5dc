package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tripnest/travel-client/internal/core/aggregate"
	"github.com/tripnest/travel-client/internal/core/domain"
)

// PackageInput is the admin package form.
type PackageInput struct {
	Title               string              `json:"title" validate:"required"`
	Description         string              `json:"description" validate:"required"`
	Price               decimal.Decimal     `json:"price" validate:"gt=0"`
	OriginalPrice       decimal.NullDecimal `json:"originalPrice" validate:"omitempty,gt=0"`
	Duration            string              `json:"duration" validate:"required"`
	Category            string              `json:"category" validate:"required"`
	StartDate           domain.Date         `json:"startDate"`
	EndDate             domain.Date         `json:"endDate"`
	DepartureLocation   string              `json:"departureLocation"`
	DestinationLocation string              `json:"destinationLocation"`
	Image               string              `json:"image" validate:"omitempty,url"`
	Itinerary           []string            `json:"itinerary"`
}

// UserInput is the admin user edit form. An empty Password keeps the stored one.
// UserInput is an admin edit of an account. Username is immutable; when set it
// must match the stored one.
type UserInput struct {
	Username string `json:"username"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

// AdminService defines the admin console use cases. Every method returns
// domain.ErrForbidden unless actor is an admin.
type AdminService interface {
	Overview(ctx context.Context, actor domain.Identity) (*aggregate.AdminOverview, error)
	CreatePackage(ctx context.Context, actor domain.Identity, in PackageInput) (*domain.Package, error)
	UpdatePackage(ctx context.Context, actor domain.Identity, id domain.ID, in PackageInput) (*domain.Package, error)
	DeletePackage(ctx context.Context, actor domain.Identity, id domain.ID) error
	UpdateUser(ctx context.Context, actor domain.Identity, id domain.ID, in UserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, actor domain.Identity, id domain.ID) error
	UpdateTrip(ctx context.Context, actor domain.Identity, trip domain.Trip) (*domain.Trip, error)
	SetBookingStatus(ctx context.Context, actor domain.Identity, id domain.ID, next domain.BookingStatus) (*domain.Booking, error)
}
