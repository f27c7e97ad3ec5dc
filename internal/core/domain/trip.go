package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TripStatus is free text on the wire but treated as a closed set.
type TripStatus string

const (
	TripPlanning  TripStatus = "planning"
	TripPending   TripStatus = "pending"
	TripConfirmed TripStatus = "confirmed"
	TripCancelled TripStatus = "cancelled"
	TripCompleted TripStatus = "completed"
)

// Trip is a user-authored or package-derived travel plan.
// A nil PackageID marks a custom trip.
type Trip struct {
	ID                ID                  `json:"id,omitempty"`
	UserID            ID                  `json:"userId"`
	Name              string              `json:"name"`
	Status            TripStatus          `json:"status"`
	PackageID         *ID                 `json:"packageId"`
	Departure         string              `json:"departure"`
	Destination       string              `json:"destination"`
	IntermediateStops []string            `json:"intermediateStops,omitempty"`
	Transport         Transport           `json:"transport,omitempty"`
	Date              Date                `json:"date"`
	Price             decimal.NullDecimal `json:"price"`
	Budget            decimal.NullDecimal `json:"budget"`
	Notes             string              `json:"notes,omitempty"`
	CreatedAt         *time.Time          `json:"createdAt,omitempty"`
}

// FromPackage reports whether the trip was promoted from a package.
func (t Trip) FromPackage() bool {
	return t.PackageID != nil
}
