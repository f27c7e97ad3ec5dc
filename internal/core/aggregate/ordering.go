package aggregate

import (
	"cmp"
	"slices"

	"github.com/tripnest/travel-client/internal/core/domain"
)

// UpcomingFrom returns the non-cancelled bookings dated on or after reference,
// ascending by date. Bookings on the same date keep their input order.
func UpcomingFrom(bookings []domain.Booking, reference domain.Date) []domain.Booking {
	out := make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Status == domain.BookingCancelled || b.Date.Before(reference) {
			continue
		}
		out = append(out, b)
	}
	slices.SortStableFunc(out, func(a, b domain.Booking) int {
		return a.Date.Compare(b.Date.Time)
	})
	return out
}

// SortByDateDesc returns a copy of bookings, newest date first.
func SortByDateDesc(bookings []domain.Booking) []domain.Booking {
	out := slices.Clone(bookings)
	slices.SortStableFunc(out, func(a, b domain.Booking) int {
		return b.Date.Compare(a.Date.Time)
	})
	return out
}

// SortTripsByDateDesc returns a copy of trips, newest date first.
func SortTripsByDateDesc(trips []domain.Trip) []domain.Trip {
	out := slices.Clone(trips)
	slices.SortStableFunc(out, func(a, b domain.Trip) int {
		return b.Date.Compare(a.Date.Time)
	})
	return out
}

// RecentTrips returns up to n of the owner's trips, most recently created first.
// Trips without a creation time sort last.
func RecentTrips(trips []domain.Trip, userID domain.ID, n int) []domain.Trip {
	owned := make([]domain.Trip, 0, len(trips))
	for _, t := range trips {
		if t.UserID == userID {
			owned = append(owned, t)
		}
	}
	slices.SortStableFunc(owned, func(a, b domain.Trip) int {
		switch {
		case a.CreatedAt == nil && b.CreatedAt == nil:
			return 0
		case a.CreatedAt == nil:
			return 1
		case b.CreatedAt == nil:
			return -1
		}
		return cmp.Compare(b.CreatedAt.UnixNano(), a.CreatedAt.UnixNano())
	})
	if n >= 0 && len(owned) > n {
		owned = owned[:n]
	}
	return owned
}
