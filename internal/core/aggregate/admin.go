package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/tripnest/travel-client/internal/core/domain"
)

type AdminInput struct {
	Users    []domain.User
	Bookings []domain.Booking
	Packages []domain.Package
	Trips    []domain.Trip
	Expenses []domain.Expense
}

// AdminOverview is the admin console's view of every collection.
type AdminOverview struct {
	Users        []domain.User    `json:"users"`
	Bookings     []domain.Booking `json:"bookings"`
	Packages     []domain.Package `json:"packages"`
	Trips        []domain.Trip    `json:"trips"`
	Expenses     []domain.Expense `json:"expenses"`
	Counts       Counts           `json:"counts"`
	Revenue      decimal.Decimal  `json:"revenue"`
	ExpenseTotal decimal.Decimal  `json:"expenseTotal"`
}

// BuildAdminOverview copies the collections, strips stored passwords and
// computes the headline figures. Revenue excludes cancelled bookings.
func BuildAdminOverview(in AdminInput) AdminOverview {
	users := make([]domain.User, len(in.Users))
	for i, u := range in.Users {
		u.Password = ""
		users[i] = u
	}

	active := make([]domain.Booking, 0, len(in.Bookings))
	for _, b := range in.Bookings {
		if b.Status != domain.BookingCancelled {
			active = append(active, b)
		}
	}

	return AdminOverview{
		Users:        users,
		Bookings:     SortByDateDesc(in.Bookings),
		Packages:     append([]domain.Package(nil), in.Packages...),
		Trips:        SortTripsByDateDesc(in.Trips),
		Expenses:     append([]domain.Expense(nil), in.Expenses...),
		Counts:       StatusCounts(in.Bookings),
		Revenue:      BookingTotal(active),
		ExpenseTotal: ExpenseTotal(in.Expenses),
	}
}
