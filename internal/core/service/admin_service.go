package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tripnest/travel-client/internal/core/aggregate"
	"github.com/tripnest/travel-client/internal/core/domain"
	"github.com/tripnest/travel-client/internal/core/ports"
	"github.com/tripnest/travel-client/internal/core/validation"
)

type adminService struct {
	gw       ports.Gateway
	bookings ports.BookingService
	lifecycle
}

func NewAdminService(gw ports.Gateway, bookings ports.BookingService, guard ports.ActionGuard, activity ports.ActivityRecorder, log zerolog.Logger) ports.AdminService {
	return &adminService{gw: gw, bookings: bookings, lifecycle: newLifecycle(guard, activity, log)}
}

// Overview loads every collection concurrently. One failed read fails the view.
func (s *adminService) Overview(ctx context.Context, actor domain.Identity) (*aggregate.AdminOverview, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	var in aggregate.AdminInput
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		in.Users, err = s.gw.ListAllUsers(gctx)
		return err
	})
	g.Go(func() (err error) {
		in.Bookings, err = s.gw.ListAllBookings(gctx)
		return err
	})
	g.Go(func() (err error) {
		in.Packages, err = s.gw.ListPackages(gctx)
		return err
	})
	g.Go(func() (err error) {
		in.Trips, err = s.gw.ListAllTrips(gctx)
		return err
	})
	g.Go(func() (err error) {
		in.Expenses, err = s.gw.ListAllExpenses(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("admin overview: %w", err)
	}

	overview := aggregate.BuildAdminOverview(in)
	return &overview, nil
}

func (s *adminService) CreatePackage(ctx context.Context, actor domain.Identity, in ports.PackageInput) (*domain.Package, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	var created *domain.Package
	err := s.guarded(ctx, "package:create", func() error {
		var err error
		created, err = s.gw.CreatePackage(ctx, packageFromInput(in))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create package: %w", err)
	}

	s.record(ctx, domain.Activity{Kind: domain.ActivityPackageChanged, UserID: actor.ID, SubjectID: created.ID, Notes: "created"})
	s.log.Info().Str("package_id", created.ID.String()).Msg("package created")
	return created, nil
}

func (s *adminService) UpdatePackage(ctx context.Context, actor domain.Identity, id domain.ID, in ports.PackageInput) (*domain.Package, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, domain.NewValidationError("id", "id is required")
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	pkg := packageFromInput(in)
	pkg.ID = id

	var updated *domain.Package
	err := s.guarded(ctx, "package:update:"+id.String(), func() error {
		var err error
		updated, err = s.gw.UpdatePackage(ctx, pkg)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update package %s: %w", id, err)
	}

	s.record(ctx, domain.Activity{Kind: domain.ActivityPackageChanged, UserID: actor.ID, SubjectID: id, Notes: "updated"})
	return updated, nil
}

func (s *adminService) DeletePackage(ctx context.Context, actor domain.Identity, id domain.ID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	err := s.guarded(ctx, "package:delete:"+id.String(), func() error {
		return s.gw.DeletePackage(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("delete package %s: %w", id, err)
	}
	s.record(ctx, domain.Activity{Kind: domain.ActivityPackageChanged, UserID: actor.ID, SubjectID: id, Notes: "deleted"})
	return nil
}

// UpdateUser replaces a user record. An empty password keeps the stored one.
func (s *adminService) UpdateUser(ctx context.Context, actor domain.Identity, id domain.ID, in ports.UserInput) (*domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	existing, err := s.gw.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update user %s: %w", id, err)
	}
	if in.Username != "" && in.Username != existing.Username {
		return nil, domain.NewValidationError("username", "username cannot be changed")
	}
	u := domain.User{
		ID:       existing.ID,
		Username: existing.Username,
		Email:    in.Email,
		Phone:    in.Phone,
		Password: existing.Password,
	}
	if in.Password != "" {
		u.Password = in.Password
	}

	var updated *domain.User
	err = s.guarded(ctx, "user:update:"+id.String(), func() error {
		var err error
		updated, err = s.gw.UpdateUser(ctx, u)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update user %s: %w", id, err)
	}
	updated.Password = ""

	s.record(ctx, domain.Activity{Kind: domain.ActivityUserChanged, UserID: actor.ID, SubjectID: id, Notes: "updated"})
	return updated, nil
}

func (s *adminService) DeleteUser(ctx context.Context, actor domain.Identity, id domain.ID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	err := s.guarded(ctx, "user:delete:"+id.String(), func() error {
		return s.gw.DeleteUser(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	s.record(ctx, domain.Activity{Kind: domain.ActivityUserChanged, UserID: actor.ID, SubjectID: id, Notes: "deleted"})
	return nil
}

func (s *adminService) UpdateTrip(ctx context.Context, actor domain.Identity, t domain.Trip) (*domain.Trip, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if t.ID == "" {
		return nil, domain.NewValidationError("id", "id is required")
	}

	var updated *domain.Trip
	err := s.guarded(ctx, "trip:update:"+t.ID.String(), func() error {
		var err error
		updated, err = s.gw.UpdateTrip(ctx, t)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update trip %s: %w", t.ID, err)
	}
	s.record(ctx, domain.Activity{Kind: domain.ActivityTripUpdated, UserID: actor.ID, SubjectID: t.ID, Status: string(updated.Status)})
	return updated, nil
}

func (s *adminService) SetBookingStatus(ctx context.Context, actor domain.Identity, id domain.ID, next domain.BookingStatus) (*domain.Booking, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	b, err := s.gw.GetBooking(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("set booking status: %w", err)
	}
	return s.bookings.SetStatus(ctx, *b, next)
}

func packageFromInput(in ports.PackageInput) domain.Package {
	return domain.Package{
		Title:               in.Title,
		Description:         in.Description,
		Price:               in.Price,
		OriginalPrice:       in.OriginalPrice,
		Duration:            in.Duration,
		Category:            in.Category,
		StartDate:           in.StartDate,
		EndDate:             in.EndDate,
		DepartureLocation:   in.DepartureLocation,
		DestinationLocation: in.DestinationLocation,
		Image:               in.Image,
		Itinerary:           in.Itinerary,
	}
}
