package aggregate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripnest/travel-client/internal/core/domain"
)

func TestDisplayTitleAndAmount(t *testing.T) {
	pkg := domain.ID("p1")
	index := BuildPackageIndex([]domain.Package{{ID: pkg, Title: "Goa Escape", Price: decimal.NewFromInt(4500)}})

	tests := []struct {
		name       string
		booking    domain.Booking
		wantTitle  string
		wantAmount string
	}{
		{
			name:       "transport booking uses route",
			booking:    domain.Booking{Route: "Mumbai to Delhi", TransportType: domain.TransportPlane, Amount: amount(17000)},
			wantTitle:  "Mumbai to Delhi",
			wantAmount: "17000",
		},
		{
			name:       "route without transport falls back",
			booking:    domain.Booking{Route: "Mumbai to Delhi", PackageID: &pkg},
			wantTitle:  "Goa Escape",
			wantAmount: "4500",
		},
		{
			name:       "stored package title wins over index",
			booking:    domain.Booking{PackageID: &pkg, PackageTitle: "Goa (old name)", Amount: amount(9000)},
			wantTitle:  "Goa (old name)",
			wantAmount: "9000",
		},
		{
			name:      "nothing known",
			booking:   domain.Booking{},
			wantTitle: "Custom Booking",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantTitle, DisplayTitle(tt.booking, index))
			got := DisplayAmount(tt.booking, index)
			if tt.wantAmount == "" {
				assert.False(t, got.Valid)
				return
			}
			require.True(t, got.Valid)
			assert.Equal(t, tt.wantAmount, got.Decimal.String())
		})
	}
}

func TestBuildHistory_AndReplaceBooking(t *testing.T) {
	pkg := domain.ID("p1")
	in := HistoryInput{
		Bookings: []domain.Booking{
			{ID: "b1", Date: domain.MustDate("2024-01-05"), Status: domain.BookingPending, Amount: amount(100)},
			{ID: "b2", Date: domain.MustDate("2024-04-05"), Status: domain.BookingCancelled, Amount: amount(200)},
		},
		Trips: []domain.Trip{
			{ID: "t1", Name: "Trip to Goa", PackageID: &pkg, Date: domain.MustDate("2024-02-05"), Status: domain.TripPlanning},
			{ID: "t2", Name: "Road trip", Date: domain.MustDate("2024-03-05")},
		},
		Packages: []domain.Package{{ID: pkg, Title: "Goa Escape", Price: decimal.NewFromInt(4500)}},
	}

	h := BuildHistory(in)

	require.Len(t, h.Bookings, 3)
	assert.Equal(t, domain.ID("b2"), h.Bookings[0].Booking.ID)
	assert.Equal(t, domain.ID("t1"), h.Bookings[1].Booking.ID)
	assert.Equal(t, "Goa Escape", h.Bookings[1].Title)
	assert.False(t, h.Bookings[1].Cancellable, "package trips are not cancellable as bookings")
	assert.False(t, h.Bookings[0].Cancellable)
	assert.True(t, h.Bookings[2].Cancellable)
	require.Len(t, h.Trips, 1)
	assert.Equal(t, domain.ID("t2"), h.Trips[0].ID)

	cancelledAt := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	updated := h.Bookings[2].Booking
	updated.Status = domain.BookingCancelled
	updated.CancellationReason = "plans changed"
	updated.CancellationDate = &cancelledAt

	next := h.ReplaceBooking(updated)

	assert.Equal(t, domain.BookingCancelled, next.Bookings[2].Booking.Status)
	assert.False(t, next.Bookings[2].Cancellable)
	assert.Equal(t, domain.BookingPending, h.Bookings[2].Booking.Status, "original history must not change")
}
