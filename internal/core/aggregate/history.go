package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/tripnest/travel-client/internal/core/domain"
)

const customBookingTitle = "Custom Booking"

// HistoryEntry is one row of the booking history.
type HistoryEntry struct {
	Booking     domain.Booking      `json:"booking"`
	Title       string              `json:"title"`
	Amount      decimal.NullDecimal `json:"amount"`
	Cancellable bool                `json:"cancellable"`
}

// History is the booking history view: effective bookings newest first and the
// remaining custom trips.
type History struct {
	Bookings []HistoryEntry `json:"bookings"`
	Trips    []domain.Trip  `json:"trips"`
}

type HistoryInput struct {
	Bookings []domain.Booking
	Trips    []domain.Trip
	Packages []domain.Package
}

// BuildHistory dedups trips and bookings and decorates each booking row.
func BuildHistory(in HistoryInput) History {
	index := BuildPackageIndex(in.Packages)
	bookings, trips := DedupTripsAndBookings(in.Bookings, in.Trips)

	sorted := SortByDateDesc(bookings)
	entries := make([]HistoryEntry, 0, len(sorted))
	for _, b := range sorted {
		entries = append(entries, newHistoryEntry(b, index))
	}
	return History{
		Bookings: entries,
		Trips:    SortTripsByDateDesc(trips),
	}
}

// ReplaceBooking returns a copy of h with the row for updated.ID swapped in.
// The row keeps its position and title.
func (h History) ReplaceBooking(updated domain.Booking) History {
	entries := make([]HistoryEntry, len(h.Bookings))
	copy(entries, h.Bookings)
	for i, e := range entries {
		if e.Booking.ID != updated.ID || e.Booking.DerivedFromTrip {
			continue
		}
		entries[i].Booking = updated
		if updated.Amount.Valid {
			entries[i].Amount = updated.Amount
		}
		entries[i].Cancellable = cancellable(updated)
	}
	return History{Bookings: entries, Trips: h.Trips}
}

func newHistoryEntry(b domain.Booking, index map[domain.ID]PackageSummary) HistoryEntry {
	return HistoryEntry{
		Booking:     b,
		Title:       DisplayTitle(b, index),
		Amount:      DisplayAmount(b, index),
		Cancellable: cancellable(b),
	}
}

func cancellable(b domain.Booking) bool {
	return !b.DerivedFromTrip && b.Status.CanTransitionTo(domain.BookingCancelled)
}

// DisplayTitle picks the route for transport bookings, then the package title,
// then a generic label.
func DisplayTitle(b domain.Booking, index map[domain.ID]PackageSummary) string {
	if b.Route != "" && b.TransportType != "" {
		return b.Route
	}
	if b.PackageTitle != "" {
		return b.PackageTitle
	}
	if b.PackageID != nil {
		if p, ok := index[*b.PackageID]; ok && p.Title != "" {
			return p.Title
		}
	}
	return customBookingTitle
}

// DisplayAmount is the booking amount, falling back to the package price.
func DisplayAmount(b domain.Booking, index map[domain.ID]PackageSummary) decimal.NullDecimal {
	if b.Amount.Valid {
		return b.Amount
	}
	if b.PackageID != nil {
		if p, ok := index[*b.PackageID]; ok {
			return domain.Money(p.Price)
		}
	}
	return decimal.NullDecimal{}
}
