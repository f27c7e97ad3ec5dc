package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/tripnest/travel-client/internal/core/aggregate"
	"github.com/tripnest/travel-client/internal/core/domain"
)

func newViewsSvc(gw *stubGateway) *viewsService {
	svc := NewViewsService(gw, zerolog.Nop()).(*viewsService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestViewsService_Dashboard(t *testing.T) {
	gw := newStubGateway()
	pkg := domain.ID("p1")
	gw.packages["p1"] = domain.Package{ID: "p1", Title: "Goa", Price: decimal.NewFromInt(4500)}
	gw.bookings["b1"] = domain.Booking{ID: "b1", UserID: "u1", Date: domain.MustDate("2024-04-01"), Status: domain.BookingPending, Amount: domain.Money(decimal.NewFromInt(100))}
	gw.bookings["b2"] = domain.Booking{ID: "b2", UserID: "u2", Date: domain.MustDate("2024-04-01"), Status: domain.BookingPending}
	gw.trips["t1"] = domain.Trip{ID: "t1", UserID: "u1", PackageID: &pkg, Date: domain.MustDate("2024-04-02"), Status: domain.TripPlanning}
	svc := newViewsSvc(gw)

	d, err := svc.Dashboard(context.Background(), domain.Identity{ID: "u1"}, domain.Date{})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if d.Counts.Total != 2 {
		t.Errorf("expected 2 effective bookings, got %d", d.Counts.Total)
	}
	if len(d.Upcoming) != 2 || d.Upcoming[0].Booking.ID != "b1" {
		t.Errorf("unexpected upcoming: %+v", d.Upcoming)
	}
	if len(d.RecentTrips) != 0 {
		t.Errorf("expected package trips to leave the trip view, got %+v", d.RecentTrips)
	}
}

func TestViewsService_Dashboard_FailureFailsView(t *testing.T) {
	gw := newStubGateway()
	gw.err = domain.ErrRequestFailed
	svc := newViewsSvc(gw)

	if _, err := svc.Dashboard(context.Background(), domain.Identity{ID: "u1"}, domain.Date{}); !errors.Is(err, domain.ErrRequestFailed) {
		t.Fatalf("expected ErrRequestFailed, got: %v", err)
	}
}

func TestViewsService_RequiresIdentity(t *testing.T) {
	svc := newViewsSvc(newStubGateway())

	if _, err := svc.History(context.Background(), domain.Identity{}); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got: %v", err)
	}
}

func TestViewsService_Catalog(t *testing.T) {
	gw := newStubGateway()
	gw.packages["1"] = domain.Package{ID: "1", Title: "Goa", Category: "Beach", Price: decimal.NewFromInt(4500)}
	gw.packages["2"] = domain.Package{ID: "2", Title: "Ladakh", Category: "Adventure", Price: decimal.NewFromInt(7000)}
	svc := newViewsSvc(gw)

	page, err := svc.Catalog(context.Background(), aggregate.CatalogQuery{Category: "Beach"})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].Title != "Goa" {
		t.Errorf("unexpected items: %+v", page.Items)
	}

	if _, err := svc.Catalog(context.Background(), aggregate.CatalogQuery{Sort: "random"}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation for unknown sort, got: %v", err)
	}
}
