package aggregate

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tripnest/travel-client/internal/core/domain"
)

const recentTripsLimit = 3

type DashboardInput struct {
	UserID    domain.ID
	Bookings  []domain.Booking
	Trips     []domain.Trip
	Expenses  []domain.Expense
	Packages  []domain.Package
	Now       time.Time
	Reference domain.Date
}

// Dashboard is the signed-in user's overview.
type Dashboard struct {
	Counts               Counts                       `json:"counts"`
	TotalBookingSpend    decimal.Decimal              `json:"totalBookingSpend"`
	CurrentMonthExpenses decimal.Decimal              `json:"currentMonthExpenses"`
	TotalExpenses        decimal.Decimal              `json:"totalExpenses"`
	Upcoming             []HistoryEntry               `json:"upcoming"`
	RecentTrips          []domain.Trip                `json:"recentTrips"`
	BookingSpend         Series                       `json:"bookingSpend"`
	Expenses             Series                       `json:"expenses"`
	Packages             map[domain.ID]PackageSummary `json:"packages"`
}

// BuildDashboard derives every dashboard figure from the raw collections.
// Package-linked trips are counted as bookings only.
func BuildDashboard(in DashboardInput) Dashboard {
	reference := in.Reference
	if reference.IsZero() {
		reference = domain.NewDate(in.Now)
	}

	index := BuildPackageIndex(in.Packages)
	bookings, trips := DedupTripsAndBookings(in.Bookings, in.Trips)

	upcoming := UpcomingFrom(bookings, reference)
	entries := make([]HistoryEntry, 0, len(upcoming))
	for _, b := range upcoming {
		entries = append(entries, newHistoryEntry(b, index))
	}

	return Dashboard{
		Counts:               StatusCounts(bookings),
		TotalBookingSpend:    BookingTotal(bookings),
		CurrentMonthExpenses: MonthTotal(in.Expenses, in.Now),
		TotalExpenses:        ExpenseTotal(in.Expenses),
		Upcoming:             entries,
		RecentTrips:          RecentTrips(trips, in.UserID, recentTripsLimit),
		BookingSpend:         BookingSpendSeries(bookings, in.Now),
		Expenses:             ExpenseSeries(in.Expenses, in.Now),
		Packages:             index,
	}
}
