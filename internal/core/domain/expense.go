package domain

import "github.com/shopspring/decimal"

// Expense is an incidental cost. A nil TripID marks a general expense.
type Expense struct {
	ID          ID                  `json:"id,omitempty"`
	UserID      ID                  `json:"userId"`
	TripID      *ID                 `json:"tripId"`
	Date        Date                `json:"date"`
	Category    string              `json:"category"`
	Amount      decimal.NullDecimal `json:"amount"`
	Description string              `json:"description"`
	ReceiptURL  string              `json:"receiptUrl,omitempty"`
}

// TransportOption is one result of a transport search for a route.
type TransportOption struct {
	ID          ID              `json:"id"`
	Departure   string          `json:"departure"`
	Destination string          `json:"destination"`
	Transport   Transport       `json:"transport"`
	Price       decimal.Decimal `json:"price"`
	Duration    string          `json:"duration"`
	Company     string          `json:"company"`
	Rating      float64         `json:"rating"`
}

// Route formats the "A to B" label stored on bookings.
func (o TransportOption) Route() string {
	return o.Departure + " to " + o.Destination
}
