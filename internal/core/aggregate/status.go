package aggregate

import "github.com/tripnest/travel-client/internal/core/domain"

// Counts partitions bookings by status. Unknown statuses only add to Total.
type Counts struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Cancelled int `json:"cancelled"`
}

// StatusCounts counts bookings per status.
func StatusCounts(bookings []domain.Booking) Counts {
	c := Counts{Total: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case domain.BookingPending:
			c.Pending++
		case domain.BookingConfirmed:
			c.Confirmed++
		case domain.BookingCancelled:
			c.Cancelled++
		}
	}
	return c
}
