package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/tripnest/travel-client/internal/core/domain"
	"github.com/tripnest/travel-client/internal/core/ports"
)

var fixedNow = time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)

func newBookingSvc(gw *stubGateway, guard *stubGuard, rec *stubRecorder) *BookingService {
	svc := NewBookingService(gw, guard, rec, zerolog.Nop())
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestBookingService_BookPackage_FreezesAmount(t *testing.T) {
	gw := newStubGateway()
	gw.packages["p1"] = domain.Package{ID: "p1", Title: "Delhi Heritage", Price: decimal.NewFromInt(8500), StartDate: domain.MustDate("2024-05-01")}
	rec := &stubRecorder{}
	svc := newBookingSvc(gw, newStubGuard(), rec)

	b, err := svc.BookPackage(context.Background(), ports.BookPackageInput{UserID: "u1", PackageID: "p1", Travelers: 2})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if b.Amount.Decimal.String() != "17000" {
		t.Errorf("expected amount 17000, got %s", b.Amount.Decimal)
	}
	if b.Status != domain.BookingPending {
		t.Errorf("expected pending, got %s", b.Status)
	}
	if b.Date.String() != "2024-05-01" {
		t.Errorf("expected package start date, got %s", b.Date)
	}
	if b.PackageTitle != "Delhi Heritage" || !domain.SameID(b.PackageID, "p1") {
		t.Errorf("expected package reference on booking, got %+v", b)
	}
	if gw.count("CreateBooking") != 1 {
		t.Errorf("expected a single create call, got %d", gw.count("CreateBooking"))
	}
	if len(rec.recorded) != 1 || rec.recorded[0].Kind != domain.ActivityBookingCreated {
		t.Errorf("expected booking_created activity, got %+v", rec.recorded)
	}

	// Rewriting an edited copy keeps the amount frozen at creation.
	edited := *b
	edited.Travelers = 5
	cancelled, err := svc.Cancel(context.Background(), edited, "change of plans")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if gw.count("UpdateBooking") != 1 {
		t.Fatalf("expected a single update call, got %d", gw.count("UpdateBooking"))
	}
	sent := gw.bookings[b.ID]
	if sent.Travelers != 5 {
		t.Errorf("expected edited travelers in the update, got %d", sent.Travelers)
	}
	if got := sent.Amount.Decimal.String(); got != "17000" {
		t.Errorf("expected amount sent to stay 17000, got %s", got)
	}
	if got := cancelled.Amount.Decimal.String(); got != "17000" {
		t.Errorf("expected returned amount to stay 17000, got %s", got)
	}
}

func TestBookingService_BookPackage_DefaultsDateToToday(t *testing.T) {
	gw := newStubGateway()
	gw.packages["p1"] = domain.Package{ID: "p1", Price: decimal.NewFromInt(100)}
	svc := newBookingSvc(gw, newStubGuard(), &stubRecorder{})

	b, err := svc.BookPackage(context.Background(), ports.BookPackageInput{UserID: "u1", PackageID: "p1", Travelers: 1})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if b.Date.String() != "2024-03-15" {
		t.Errorf("expected today, got %s", b.Date)
	}
}

func TestBookingService_BookPackage_RejectsZeroTravelers(t *testing.T) {
	gw := newStubGateway()
	svc := newBookingSvc(gw, newStubGuard(), &stubRecorder{})

	_, err := svc.BookPackage(context.Background(), ports.BookPackageInput{UserID: "u1", PackageID: "p1", Travelers: 0})

	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got: %v", err)
	}
	if gw.total() != 0 {
		t.Errorf("expected no gateway calls, got %d", gw.total())
	}
}

func TestBookingService_Cancel_PendingBooking(t *testing.T) {
	gw := newStubGateway()
	pending := domain.Booking{ID: "b1", UserID: "u1", Status: domain.BookingPending, Travelers: 2, Amount: domain.Money(decimal.NewFromInt(17000))}
	gw.bookings["b1"] = pending
	svc := newBookingSvc(gw, newStubGuard(), &stubRecorder{})

	got, err := svc.Cancel(context.Background(), pending, "plans changed")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if got.Status != domain.BookingCancelled {
		t.Errorf("expected cancelled, got %s", got.Status)
	}
	if got.CancellationReason != "plans changed" {
		t.Errorf("expected reason, got %q", got.CancellationReason)
	}
	if got.CancellationDate == nil || !got.CancellationDate.Equal(fixedNow) {
		t.Errorf("expected cancellation date %v, got %v", fixedNow, got.CancellationDate)
	}
	if got.Amount.Decimal.String() != "17000" || got.Travelers != 2 {
		t.Errorf("expected the full record to be sent back, got %+v", got)
	}

	// Second attempt on the cancelled booking is blocked without a request.
	before := gw.count("UpdateBooking")
	_, err = svc.Cancel(context.Background(), *got, "again")
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got: %v", err)
	}
	if gw.count("UpdateBooking") != before {
		t.Error("expected no update request for a terminal booking")
	}
}

func TestBookingService_Cancel_GatewayFailureKeepsBooking(t *testing.T) {
	gw := newStubGateway()
	pending := domain.Booking{ID: "b1", UserID: "u1", Status: domain.BookingPending}
	gw.bookings["b1"] = pending
	gw.err = domain.ErrRequestFailed
	rec := &stubRecorder{}
	svc := newBookingSvc(gw, newStubGuard(), rec)

	_, err := svc.Cancel(context.Background(), pending, "x")

	if !errors.Is(err, domain.ErrRequestFailed) {
		t.Fatalf("expected ErrRequestFailed, got: %v", err)
	}
	if gw.bookings["b1"].Status != domain.BookingPending {
		t.Error("expected booking to stay pending")
	}
	if len(rec.recorded) != 0 {
		t.Error("expected no activity for a failed write")
	}
}

func TestBookingService_Cancel_PendingActionBlocks(t *testing.T) {
	gw := newStubGateway()
	pending := domain.Booking{ID: "b1", UserID: "u1", Status: domain.BookingPending}
	gw.bookings["b1"] = pending
	guard := newStubGuard()
	svc := newBookingSvc(gw, guard, &stubRecorder{})

	release, _ := guard.Acquire(context.Background(), "booking:cancel:b1")
	defer release()

	_, err := svc.Cancel(context.Background(), pending, "x")

	if !errors.Is(err, domain.ErrActionPending) {
		t.Fatalf("expected ErrActionPending, got: %v", err)
	}
	if gw.count("UpdateBooking") != 0 {
		t.Error("expected no request while the action is pending")
	}
}

func TestBookingService_Cancel_DerivedFromTrip(t *testing.T) {
	gw := newStubGateway()
	svc := newBookingSvc(gw, newStubGuard(), &stubRecorder{})

	_, err := svc.Cancel(context.Background(), domain.Booking{ID: "t1", Status: domain.BookingPending, DerivedFromTrip: true}, "x")

	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got: %v", err)
	}
}

func TestBookingService_CancelByID_Ownership(t *testing.T) {
	gw := newStubGateway()
	gw.bookings["b1"] = domain.Booking{ID: "b1", UserID: "u1", Status: domain.BookingConfirmed}
	svc := newBookingSvc(gw, newStubGuard(), &stubRecorder{})
	in := ports.CancelInput{BookingID: "b1", Reason: "x"}

	if _, err := svc.CancelByID(context.Background(), domain.Identity{ID: "u2"}, in); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden for another user, got: %v", err)
	}
	if _, err := svc.CancelByID(context.Background(), domain.Identity{ID: "9", Username: "admin", IsAdmin: true}, in); err != nil {
		t.Errorf("expected admin to cancel, got: %v", err)
	}
}

func TestBookingService_SetStatus(t *testing.T) {
	gw := newStubGateway()
	gw.bookings["b1"] = domain.Booking{ID: "b1", Status: domain.BookingPending}
	svc := newBookingSvc(gw, newStubGuard(), &stubRecorder{})

	got, err := svc.SetStatus(context.Background(), gw.bookings["b1"], domain.BookingConfirmed)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if got.Status != domain.BookingConfirmed {
		t.Errorf("expected confirmed, got %s", got.Status)
	}
	if gw.count("UpdateBookingStatus") != 1 || gw.count("UpdateBooking") != 0 {
		t.Error("expected a partial status update")
	}

	_, err = svc.SetStatus(context.Background(), *got, domain.BookingPending)
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got: %v", err)
	}
}
