package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tripnest/travel-client/internal/core/domain"
	"github.com/tripnest/travel-client/internal/core/ports"
	"github.com/tripnest/travel-client/internal/core/validation"
)

// BookingGateway is the slice of the backend the booking lifecycle needs.
type BookingGateway interface {
	ports.PackageGateway
	ports.BookingGateway
}

type BookingService struct {
	gw BookingGateway
	lifecycle
}

func NewBookingService(gw BookingGateway, guard ports.ActionGuard, activity ports.ActivityRecorder, log zerolog.Logger) *BookingService {
	return &BookingService{gw: gw, lifecycle: newLifecycle(guard, activity, log)}
}

// BookPackage books a package for the given travelers. The amount is frozen at
// package price times travelers.
func (s *BookingService) BookPackage(ctx context.Context, in ports.BookPackageInput) (*domain.Booking, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	pkg, err := s.gw.GetPackage(ctx, in.PackageID)
	if err != nil {
		return nil, fmt.Errorf("book package: %w", err)
	}

	date := in.Date
	if date.IsZero() {
		date = pkg.StartDate
	}
	if date.IsZero() {
		date = s.today()
	}

	return s.create(ctx, domain.Booking{
		UserID:          in.UserID,
		PackageID:       pkg.ID.Ref(),
		PackageTitle:    pkg.Title,
		Date:            date,
		Travelers:       in.Travelers,
		Amount:          domain.Money(domain.BookingAmount(pkg.Price, in.Travelers)),
		Status:          domain.BookingPending,
		SpecialRequests: in.SpecialRequests,
	})
}

// Create books against a known unit price, e.g. a transport search result.
func (s *BookingService) Create(ctx context.Context, in ports.CreateBookingInput) (*domain.Booking, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	return s.create(ctx, domain.Booking{
		UserID:          in.UserID,
		PackageID:       in.PackageID,
		TripID:          in.TripID,
		PackageTitle:    in.PackageTitle,
		Date:            in.Date,
		Travelers:       in.Travelers,
		Amount:          domain.Money(domain.BookingAmount(in.UnitPrice, in.Travelers)),
		Status:          domain.BookingPending,
		TransportType:   in.TransportType,
		Route:           in.Route,
		SpecialRequests: in.SpecialRequests,
	})
}

func (s *BookingService) create(ctx context.Context, b domain.Booking) (*domain.Booking, error) {
	var created *domain.Booking
	err := s.guarded(ctx, "booking:create:"+b.UserID.String(), func() error {
		var err error
		created, err = s.gw.CreateBooking(ctx, b)
		return err
	})
	if err != nil {
		s.log.Error().Err(err).Str("user_id", b.UserID.String()).Msg("failed to create booking")
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.record(ctx, domain.Activity{
		Kind:      domain.ActivityBookingCreated,
		UserID:    created.UserID,
		SubjectID: created.ID,
		Status:    string(created.Status),
	})
	s.log.Info().Str("booking_id", created.ID.String()).Str("amount", created.Amount.Decimal.String()).Msg("booking created")
	return created, nil
}

// Cancel moves b to cancelled with a reason and timestamp. Bookings that can no
// longer be cancelled fail with domain.ErrInvalidTransition before any request.
func (s *BookingService) Cancel(ctx context.Context, b domain.Booking, reason string) (*domain.Booking, error) {
	if b.ID == "" {
		return nil, domain.NewValidationError("id", "id is required")
	}
	if b.DerivedFromTrip || !b.Status.CanTransitionTo(domain.BookingCancelled) {
		return nil, fmt.Errorf("cancel booking %s: %w (from %s to %s)", b.ID, domain.ErrInvalidTransition, b.Status, domain.BookingCancelled)
	}

	now := s.now().UTC()
	next := b
	next.Status = domain.BookingCancelled
	next.CancellationReason = reason
	next.CancellationDate = &now

	var updated *domain.Booking
	err := s.guarded(ctx, "booking:cancel:"+b.ID.String(), func() error {
		var err error
		updated, err = s.gw.UpdateBooking(ctx, next)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("cancel booking %s: %w", b.ID, err)
	}

	s.record(ctx, domain.Activity{
		Kind:      domain.ActivityBookingCancelled,
		UserID:    updated.UserID,
		SubjectID: updated.ID,
		Status:    string(updated.Status),
		Notes:     reason,
	})
	s.log.Info().Str("booking_id", b.ID.String()).Msg("booking cancelled")
	return updated, nil
}

func (s *BookingService) CancelByID(ctx context.Context, actor domain.Identity, in ports.CancelInput) (*domain.Booking, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	b, err := s.gw.GetBooking(ctx, in.BookingID)
	if err != nil {
		return nil, fmt.Errorf("cancel booking %s: %w", in.BookingID, err)
	}
	if !canModify(actor, b.UserID) {
		return nil, domain.ErrForbidden
	}
	return s.Cancel(ctx, *b, in.Reason)
}

// SetStatus applies an administrative status change as a partial update.
func (s *BookingService) SetStatus(ctx context.Context, b domain.Booking, next domain.BookingStatus) (*domain.Booking, error) {
	if b.ID == "" {
		return nil, domain.NewValidationError("id", "id is required")
	}
	if !b.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("set booking status: %w (from %s to %s)", domain.ErrInvalidTransition, b.Status, next)
	}

	var updated *domain.Booking
	err := s.guarded(ctx, "booking:status:"+b.ID.String(), func() error {
		var err error
		updated, err = s.gw.UpdateBookingStatus(ctx, b.ID, next)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("set booking status: %w", err)
	}

	s.record(ctx, domain.Activity{
		Kind:      domain.ActivityBookingStatus,
		UserID:    updated.UserID,
		SubjectID: updated.ID,
		Status:    string(next),
	})
	s.log.Info().Str("booking_id", b.ID.String()).Str("from", string(b.Status)).Str("to", string(next)).Msg("booking status changed")
	return updated, nil
}
