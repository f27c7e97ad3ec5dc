package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// validTransitions defines the allowed booking state machine transitions.
// Cancelled and completed are terminal.
var validTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCancelled, BookingCompleted},
}

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s BookingStatus) IsTerminal() bool {
	return len(validTransitions[s]) == 0
}

// Transport is the mode of travel for a booking or trip leg.
type Transport string

const (
	TransportBus   Transport = "bus"
	TransportTrain Transport = "train"
	TransportPlane Transport = "plane"
)

// Booking is a reservation with an amount fixed at creation time.
// Amount is never recomputed when Travelers changes afterwards.
type Booking struct {
	ID                 ID                  `json:"id,omitempty"`
	UserID             ID                  `json:"userId"`
	PackageID          *ID                 `json:"packageId,omitempty"`
	TripID             *ID                 `json:"tripId,omitempty"`
	PackageTitle       string              `json:"packageTitle,omitempty"`
	Date               Date                `json:"date"`
	Travelers          int                 `json:"travelers"`
	Amount             decimal.NullDecimal `json:"amount"`
	Status             BookingStatus       `json:"status"`
	TransportType      Transport           `json:"transportType,omitempty"`
	Route              string              `json:"route,omitempty"`
	SpecialRequests    string              `json:"specialRequests,omitempty"`
	CancellationReason string              `json:"cancellationReason,omitempty"`
	CancellationDate   *time.Time          `json:"cancellationDate,omitempty"`

	// DerivedFromTrip marks a package-linked trip shown as a booking.
	DerivedFromTrip bool `json:"-"`
}

// BookingAmount is the frozen-amount rule: unit price times travelers.
func BookingAmount(unitPrice decimal.Decimal, travelers int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(travelers)))
}
