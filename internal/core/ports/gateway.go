package ports

import (
	"context"

	"github.com/tripnest/travel-client/internal/core/domain"
)

// UserFilter carries query-string filters for user lookups. Empty fields are omitted.
type UserFilter struct {
	Username string
	Password string
	Email    string
}

// BookingFilter scopes booking reads; an empty UserID returns every booking the
// endpoint exposes.
type BookingFilter struct {
	UserID domain.ID
}

// TripFilter scopes trip reads.
type TripFilter struct {
	UserID domain.ID
}

// ExpenseFilter scopes expense reads. TripID narrows to a single trip.
type ExpenseFilter struct {
	UserID domain.ID
	TripID domain.ID
}

// UserGateway is the REST surface for users and registration.
type UserGateway interface {
	FindUsers(ctx context.Context, filter UserFilter) ([]domain.User, error)
	GetUser(ctx context.Context, id domain.ID) (*domain.User, error)
	Register(ctx context.Context, user domain.User) (*domain.User, error)
	CreateUser(ctx context.Context, user domain.User) (*domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) (*domain.User, error)
	DeleteUser(ctx context.Context, id domain.ID) error
	ListAllUsers(ctx context.Context) ([]domain.User, error)
}

// PackageGateway is the REST surface for travel packages.
type PackageGateway interface {
	ListPackages(ctx context.Context) ([]domain.Package, error)
	GetPackage(ctx context.Context, id domain.ID) (*domain.Package, error)
	CreatePackage(ctx context.Context, pkg domain.Package) (*domain.Package, error)
	UpdatePackage(ctx context.Context, pkg domain.Package) (*domain.Package, error)
	DeletePackage(ctx context.Context, id domain.ID) error
}

// BookingGateway is the REST surface for bookings.
// UpdateBooking replaces the whole record; UpdateBookingStatus is a partial update.
type BookingGateway interface {
	ListBookings(ctx context.Context, filter BookingFilter) ([]domain.Booking, error)
	ListAllBookings(ctx context.Context) ([]domain.Booking, error)
	GetBooking(ctx context.Context, id domain.ID) (*domain.Booking, error)
	CreateBooking(ctx context.Context, b domain.Booking) (*domain.Booking, error)
	UpdateBooking(ctx context.Context, b domain.Booking) (*domain.Booking, error)
	UpdateBookingStatus(ctx context.Context, id domain.ID, status domain.BookingStatus) (*domain.Booking, error)
}

// TripGateway is the REST surface for trips.
type TripGateway interface {
	ListTrips(ctx context.Context, filter TripFilter) ([]domain.Trip, error)
	ListAllTrips(ctx context.Context) ([]domain.Trip, error)
	GetTrip(ctx context.Context, id domain.ID) (*domain.Trip, error)
	CreateTrip(ctx context.Context, t domain.Trip) (*domain.Trip, error)
	UpdateTrip(ctx context.Context, t domain.Trip) (*domain.Trip, error)
	DeleteTrip(ctx context.Context, id domain.ID) error
}

// ExpenseGateway is the REST surface for expenses.
type ExpenseGateway interface {
	ListExpenses(ctx context.Context, filter ExpenseFilter) ([]domain.Expense, error)
	ListAllExpenses(ctx context.Context) ([]domain.Expense, error)
	GetExpense(ctx context.Context, id domain.ID) (*domain.Expense, error)
	CreateExpense(ctx context.Context, e domain.Expense) (*domain.Expense, error)
	UpdateExpense(ctx context.Context, e domain.Expense) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, id domain.ID) error
}

// Gateway bundles every resource client.
type Gateway interface {
	UserGateway
	PackageGateway
	BookingGateway
	TripGateway
	ExpenseGateway
}
