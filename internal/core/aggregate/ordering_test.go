package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripnest/travel-client/internal/core/domain"
)

func TestUpcomingFrom(t *testing.T) {
	reference := domain.NewDate(now)
	bookings := []domain.Booking{
		{ID: "past", Date: domain.MustDate("2024-03-14"), Status: domain.BookingPending},
		{ID: "late", Date: domain.MustDate("2024-06-01"), Status: domain.BookingConfirmed},
		{ID: "today", Date: domain.MustDate("2024-03-15"), Status: domain.BookingPending},
		{ID: "cancelled", Date: domain.MustDate("2024-04-01"), Status: domain.BookingCancelled},
		{ID: "tie-a", Date: domain.MustDate("2024-04-10"), Status: domain.BookingPending},
		{ID: "tie-b", Date: domain.MustDate("2024-04-10"), Status: domain.BookingPending},
	}

	got := UpcomingFrom(bookings, reference)

	ids := make([]domain.ID, 0, len(got))
	for i, b := range got {
		assert.False(t, b.Date.Before(reference), "booking %s is before the reference date", b.ID)
		assert.NotEqual(t, domain.BookingCancelled, b.Status)
		if i > 0 {
			assert.False(t, b.Date.Before(got[i-1].Date), "result not ascending at %d", i)
		}
		ids = append(ids, b.ID)
	}
	assert.Equal(t, []domain.ID{"today", "tie-a", "tie-b", "late"}, ids)
	assert.Equal(t, domain.ID("past"), bookings[0].ID, "input order must be preserved")
}

func TestSortByDateDesc(t *testing.T) {
	bookings := []domain.Booking{
		{ID: "a", Date: domain.MustDate("2024-01-01")},
		{ID: "b", Date: domain.MustDate("2024-05-01")},
		{ID: "c", Date: domain.MustDate("2024-03-01")},
	}

	got := SortByDateDesc(bookings)

	assert.Equal(t, domain.ID("b"), got[0].ID)
	assert.Equal(t, domain.ID("c"), got[1].ID)
	assert.Equal(t, domain.ID("a"), got[2].ID)
	assert.Equal(t, domain.ID("a"), bookings[0].ID)
}

func TestRecentTrips(t *testing.T) {
	at := func(day int) *time.Time {
		ts := time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC)
		return &ts
	}
	trips := []domain.Trip{
		{ID: "1", UserID: "u1", CreatedAt: at(1)},
		{ID: "2", UserID: "u1"},
		{ID: "3", UserID: "u2", CreatedAt: at(20)},
		{ID: "4", UserID: "u1", CreatedAt: at(10)},
		{ID: "5", UserID: "u1", CreatedAt: at(5)},
	}

	got := RecentTrips(trips, "u1", 3)

	require.Len(t, got, 3)
	assert.Equal(t, domain.ID("4"), got[0].ID)
	assert.Equal(t, domain.ID("5"), got[1].ID)
	assert.Equal(t, domain.ID("1"), got[2].ID)
}
