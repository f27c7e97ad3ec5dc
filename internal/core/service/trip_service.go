package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tripnest/travel-client/internal/core/domain"
	"github.com/tripnest/travel-client/internal/core/ports"
	"github.com/tripnest/travel-client/internal/core/validation"
)

const transportExpenseCategory = "transport"

type tripService struct {
	trips    ports.TripGateway
	bookings ports.BookingService
	expenses ports.ExpenseService
	searcher ports.TransportSearcher
	lifecycle
}

// NewTripService returns a TripService. Bookings and expenses created from
// search results go through the given services.
func NewTripService(
	trips ports.TripGateway,
	bookings ports.BookingService,
	expenses ports.ExpenseService,
	searcher ports.TransportSearcher,
	guard ports.ActionGuard,
	activity ports.ActivityRecorder,
	log zerolog.Logger,
) ports.TripService {
	return &tripService{
		trips:     trips,
		bookings:  bookings,
		expenses:  expenses,
		searcher:  searcher,
		lifecycle: newLifecycle(guard, activity, log),
	}
}

func (s *tripService) CreateCustom(ctx context.Context, in ports.CreateTripInput) (*domain.Trip, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	return s.create(ctx, "trip:create:"+in.UserID.String(), domain.Trip{
		UserID:            in.UserID,
		Name:              in.Name,
		Status:            domain.TripPlanning,
		Departure:         in.Departure,
		Destination:       in.Destination,
		IntermediateStops: in.IntermediateStops,
		Transport:         in.Transport,
		Date:              in.Date,
		Budget:            in.Budget,
		Notes:             in.Notes,
		CreatedAt:         &now,
	})
}

// PromoteFromPackage adds a package to the user's trips as a package-linked trip.
func (s *tripService) PromoteFromPackage(ctx context.Context, userID domain.ID, pkg domain.Package) (*domain.Trip, error) {
	if userID == "" {
		return nil, domain.NewValidationError("userId", "userId is required")
	}
	if pkg.ID == "" {
		return nil, domain.NewValidationError("packageId", "packageId is required")
	}

	date := pkg.StartDate
	if date.IsZero() {
		date = s.today()
	}
	now := s.now().UTC()

	return s.create(ctx, "trip:promote:"+userID.String()+":"+pkg.ID.String(), domain.Trip{
		UserID:      userID,
		Name:        "Trip to " + pkg.Title,
		Status:      domain.TripPlanning,
		PackageID:   pkg.ID.Ref(),
		Departure:   pkg.DepartureLocation,
		Destination: pkg.DestinationLocation,
		Date:        date,
		Price:       domain.Money(pkg.Price),
		CreatedAt:   &now,
	})
}

func (s *tripService) create(ctx context.Context, key string, t domain.Trip) (*domain.Trip, error) {
	var created *domain.Trip
	err := s.guarded(ctx, key, func() error {
		var err error
		created, err = s.trips.CreateTrip(ctx, t)
		return err
	})
	if err != nil {
		s.log.Error().Err(err).Str("user_id", t.UserID.String()).Msg("failed to create trip")
		return nil, fmt.Errorf("create trip: %w", err)
	}

	s.record(ctx, domain.Activity{
		Kind:      domain.ActivityTripCreated,
		UserID:    created.UserID,
		SubjectID: created.ID,
		Status:    string(created.Status),
	})
	s.log.Info().Str("trip_id", created.ID.String()).Bool("from_package", created.FromPackage()).Msg("trip created")
	return created, nil
}

func (s *tripService) Search(ctx context.Context, in ports.SearchInput) ([]domain.TransportOption, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	options, err := s.searcher.Search(ctx, in.Departure, in.Destination, in.Date)
	if err != nil {
		return nil, fmt.Errorf("search transport: %w", err)
	}
	s.log.Debug().Str("departure", in.Departure).Str("destination", in.Destination).Int("results", len(options)).Msg("transport search")
	return options, nil
}

// BookOption books travelers on a search result. The route is stored as "A to B".
func (s *tripService) BookOption(ctx context.Context, in ports.BookOptionInput) (*domain.Booking, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if err := validateOption(in.Option); err != nil {
		return nil, err
	}

	date := in.Date
	if date.IsZero() {
		date = s.today()
	}
	return s.bookings.Create(ctx, ports.CreateBookingInput{
		UserID:          in.UserID,
		TripID:          in.TripID,
		Date:            date,
		Travelers:       in.Travelers,
		UnitPrice:       in.Option.Price,
		TransportType:   in.Option.Transport,
		Route:           in.Option.Route(),
		SpecialRequests: in.SpecialRequests,
	})
}

// TrackOption records a search result as a transport expense.
func (s *tripService) TrackOption(ctx context.Context, in ports.TrackOptionInput) (*domain.Expense, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if err := validateOption(in.Option); err != nil {
		return nil, err
	}

	return s.expenses.Create(ctx, ports.ExpenseInput{
		UserID:      in.UserID,
		TripID:      in.TripID,
		Date:        in.Date,
		Category:    transportExpenseCategory,
		Amount:      domain.Money(in.Option.Price),
		Description: strings.ToUpper(string(in.Option.Transport)) + " - " + in.Option.Route(),
	})
}

// Update replaces a trip. Only its owner or an admin may do so.
func (s *tripService) Update(ctx context.Context, actor domain.Identity, t domain.Trip) (*domain.Trip, error) {
	if t.ID == "" {
		return nil, domain.NewValidationError("id", "id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return nil, domain.NewValidationError("name", "name is required")
	}

	existing, err := s.trips.GetTrip(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("update trip %s: %w", t.ID, err)
	}
	if !canModify(actor, existing.UserID) {
		return nil, domain.ErrForbidden
	}
	t.UserID = existing.UserID
	if t.CreatedAt == nil {
		t.CreatedAt = existing.CreatedAt
	}

	var updated *domain.Trip
	err = s.guarded(ctx, "trip:update:"+t.ID.String(), func() error {
		var err error
		updated, err = s.trips.UpdateTrip(ctx, t)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update trip %s: %w", t.ID, err)
	}

	s.record(ctx, domain.Activity{
		Kind:      domain.ActivityTripUpdated,
		UserID:    actor.ID,
		SubjectID: updated.ID,
		Status:    string(updated.Status),
	})
	return updated, nil
}

func validateOption(o domain.TransportOption) error {
	if o.Departure == "" || o.Destination == "" {
		return domain.NewValidationError("option", "option must name a departure and a destination")
	}
	if o.Price.IsNegative() {
		return domain.NewValidationError("option", "option price must not be negative")
	}
	return nil
}
