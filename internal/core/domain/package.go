package domain

import "github.com/shopspring/decimal"

// Package is an admin-curated travel offer.
type Package struct {
	ID                  ID                  `json:"id,omitempty"`
	Title               string              `json:"title"`
	Description         string              `json:"description"`
	Price               decimal.Decimal     `json:"price"`
	OriginalPrice       decimal.NullDecimal `json:"originalPrice"`
	Duration            string              `json:"duration"`
	Category            string              `json:"category"`
	StartDate           Date                `json:"startDate"`
	EndDate             Date                `json:"endDate"`
	DepartureLocation   string              `json:"departureLocation"`
	DestinationLocation string              `json:"destinationLocation"`
	Image               string              `json:"image"`
	Itinerary           []string            `json:"itinerary,omitempty"`
}

// Discount returns OriginalPrice - Price when an original price above the
// current price is known.
func (p Package) Discount() (decimal.Decimal, bool) {
	if !p.OriginalPrice.Valid || !p.OriginalPrice.Decimal.GreaterThan(p.Price) {
		return decimal.Zero, false
	}
	return p.OriginalPrice.Decimal.Sub(p.Price), true
}
