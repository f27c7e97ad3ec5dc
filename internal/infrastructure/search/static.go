// Package search resolves transport options for a route.
package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tripnest/travel-client/internal/core/domain"
	"github.com/tripnest/travel-client/internal/core/ports"
)

// Fare is one row of the fare table.
type Fare struct {
	Transport domain.Transport
	Price     decimal.Decimal
	Duration  string
	Company   string
	Rating    float64
}

// DefaultFares is the built-in fare table offered for every route.
var DefaultFares = []Fare{
	{Transport: domain.TransportPlane, Price: decimal.NewFromInt(8500), Duration: "2h 30m", Company: "Air India", Rating: 4.2},
	{Transport: domain.TransportTrain, Price: decimal.NewFromInt(2500), Duration: "16h 45m", Company: "Rajdhani Express", Rating: 4.0},
	{Transport: domain.TransportBus, Price: decimal.NewFromInt(1200), Duration: "18h 30m", Company: "RedBus Premium", Rating: 3.8},
}

// Static answers every search from a fixed fare table.
type Static struct {
	fares []Fare
}

var _ ports.TransportSearcher = (*Static)(nil)

// NewStatic returns a searcher over fares, or DefaultFares when none are given.
func NewStatic(fares ...Fare) *Static {
	if len(fares) == 0 {
		fares = DefaultFares
	}
	return &Static{fares: fares}
}

// Search returns one option per fare, in table order. The date does not
// affect the result.
func (s *Static) Search(ctx context.Context, departure, destination string, _ domain.Date) ([]domain.TransportOption, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	departure, destination = strings.TrimSpace(departure), strings.TrimSpace(destination)

	out := make([]domain.TransportOption, 0, len(s.fares))
	for i, f := range s.fares {
		out = append(out, domain.TransportOption{
			ID:          domain.ID(fmt.Sprintf("%d", i+1)),
			Departure:   departure,
			Destination: destination,
			Transport:   f.Transport,
			Price:       f.Price,
			Duration:    f.Duration,
			Company:     f.Company,
			Rating:      f.Rating,
		})
	}
	return out, nil
}
