package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/tripnest/travel-client/internal/core/domain"
	"github.com/tripnest/travel-client/internal/core/ports"
)

var adminActor = domain.Identity{ID: "1", Username: "admin", IsAdmin: true}

func newAdminSvc(gw *stubGateway) ports.AdminService {
	guard := newStubGuard()
	rec := &stubRecorder{}
	return NewAdminService(gw, newBookingSvc(gw, guard, rec), guard, rec, zerolog.Nop())
}

func TestAdminService_RequiresAdmin(t *testing.T) {
	gw := newStubGateway()
	svc := newAdminSvc(gw)
	client := domain.Identity{ID: "2", Username: "asha"}

	if _, err := svc.Overview(context.Background(), client); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got: %v", err)
	}
	if err := svc.DeleteUser(context.Background(), client, "1"); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got: %v", err)
	}
	if gw.total() != 0 {
		t.Errorf("expected no gateway calls, got %d", gw.total())
	}
}

func TestAdminService_Overview(t *testing.T) {
	gw := newStubGateway()
	gw.users["1"] = domain.User{ID: "1", Username: "admin", Password: "admin123"}
	gw.bookings["b1"] = domain.Booking{ID: "b1", Status: domain.BookingConfirmed, Amount: domain.Money(decimal.NewFromInt(300))}
	gw.packages["p1"] = domain.Package{ID: "p1", Title: "Goa"}
	svc := newAdminSvc(gw)

	o, err := svc.Overview(context.Background(), adminActor)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(o.Users) != 1 || o.Users[0].Password != "" {
		t.Errorf("expected users without passwords, got %+v", o.Users)
	}
	if o.Revenue.String() != "300" || len(o.Packages) != 1 {
		t.Errorf("unexpected overview: %+v", o)
	}
}

func TestAdminService_Overview_AnyFailureFailsView(t *testing.T) {
	gw := newStubGateway()
	gw.err = domain.ErrNetwork
	svc := newAdminSvc(gw)

	if _, err := svc.Overview(context.Background(), adminActor); !errors.Is(err, domain.ErrNetwork) {
		t.Fatalf("expected ErrNetwork, got: %v", err)
	}
}

func TestAdminService_CreatePackage_RequiredFields(t *testing.T) {
	gw := newStubGateway()
	svc := newAdminSvc(gw)

	_, err := svc.CreatePackage(context.Background(), adminActor, ports.PackageInput{Title: "Goa"})

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got: %v", err)
	}
	for _, field := range []string{"description", "price", "duration", "category"} {
		if _, ok := ve.Fields[field]; !ok {
			t.Errorf("expected error on %s, got %v", field, ve.Fields)
		}
	}

	p, err := svc.CreatePackage(context.Background(), adminActor, ports.PackageInput{
		Title: "Goa", Description: "Beaches", Price: decimal.NewFromInt(4500), Duration: "4 days", Category: "Beach",
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if p.ID == "" {
		t.Error("expected created package id")
	}
}

func TestAdminService_UpdateUser_KeepsPassword(t *testing.T) {
	gw := newStubGateway()
	gw.users["2"] = domain.User{ID: "2", Username: "asha", Email: "asha@example.com", Password: "secret1"}
	svc := newAdminSvc(gw)

	u, err := svc.UpdateUser(context.Background(), adminActor, "2", ports.UserInput{Username: "asha", Email: "asha@new.example.com"})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if u.Password != "" {
		t.Error("expected password stripped from result")
	}
	if gw.users["2"].Password != "secret1" {
		t.Error("expected stored password to be kept")
	}
}

func TestAdminService_UpdateUser_UsernameImmutable(t *testing.T) {
	gw := newStubGateway()
	gw.users["7"] = domain.User{ID: "7", Username: "alice", Email: "alice@example.com", Password: "secret1"}
	svc := newAdminSvc(gw)

	_, err := svc.UpdateUser(context.Background(), adminActor, "7", ports.UserInput{Username: "admin", Email: "alice@example.com"})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || verr.Fields["username"] == "" {
		t.Fatalf("expected username ValidationError, got: %v", err)
	}
	if gw.count("UpdateUser") != 0 {
		t.Errorf("expected no update call, got %d", gw.count("UpdateUser"))
	}
	if gw.users["7"].Username != "alice" {
		t.Errorf("expected stored username alice, got %q", gw.users["7"].Username)
	}

	u, err := svc.UpdateUser(context.Background(), adminActor, "7", ports.UserInput{Email: "alice@new.example.com"})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if u.Username != "alice" || gw.users["7"].Username != "alice" {
		t.Errorf("expected username kept as alice, got %q / %q", u.Username, gw.users["7"].Username)
	}
	if gw.users["7"].Email != "alice@new.example.com" {
		t.Errorf("expected email updated, got %q", gw.users["7"].Email)
	}
}

func TestAdminService_SetBookingStatus(t *testing.T) {
	gw := newStubGateway()
	gw.bookings["b1"] = domain.Booking{ID: "b1", Status: domain.BookingConfirmed}
	svc := newAdminSvc(gw)

	b, err := svc.SetBookingStatus(context.Background(), adminActor, "b1", domain.BookingCompleted)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if b.Status != domain.BookingCompleted {
		t.Errorf("expected completed, got %s", b.Status)
	}

	if _, err := svc.SetBookingStatus(context.Background(), adminActor, "b1", domain.BookingCancelled); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition from completed, got: %v", err)
	}
}
