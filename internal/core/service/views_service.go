package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tripnest/travel-client/internal/core/aggregate"
	"github.com/tripnest/travel-client/internal/core/domain"
	"github.com/tripnest/travel-client/internal/core/ports"
	"github.com/tripnest/travel-client/internal/core/validation"
)

type viewsService struct {
	gw  ports.Gateway
	now func() time.Time
	log zerolog.Logger
}

func NewViewsService(gw ports.Gateway, log zerolog.Logger) ports.ViewsService {
	return &viewsService{gw: gw, now: time.Now, log: log}
}

func (s *viewsService) Dashboard(ctx context.Context, actor domain.Identity, reference domain.Date) (*aggregate.Dashboard, error) {
	if actor.ID == "" {
		return nil, domain.ErrNotAuthenticated
	}

	in := aggregate.DashboardInput{UserID: actor.ID, Now: s.now(), Reference: reference}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		in.Bookings, err = s.gw.ListBookings(gctx, ports.BookingFilter{UserID: actor.ID})
		return err
	})
	g.Go(func() (err error) {
		in.Trips, err = s.gw.ListTrips(gctx, ports.TripFilter{UserID: actor.ID})
		return err
	})
	g.Go(func() (err error) {
		in.Expenses, err = s.gw.ListExpenses(gctx, ports.ExpenseFilter{UserID: actor.ID})
		return err
	})
	g.Go(func() (err error) {
		in.Packages, err = s.gw.ListPackages(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error().Err(err).Str("user_id", actor.ID.String()).Msg("failed to load dashboard")
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	d := aggregate.BuildDashboard(in)
	return &d, nil
}

func (s *viewsService) History(ctx context.Context, actor domain.Identity) (*aggregate.History, error) {
	if actor.ID == "" {
		return nil, domain.ErrNotAuthenticated
	}

	var in aggregate.HistoryInput
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		in.Bookings, err = s.gw.ListBookings(gctx, ports.BookingFilter{UserID: actor.ID})
		return err
	})
	g.Go(func() (err error) {
		in.Trips, err = s.gw.ListTrips(gctx, ports.TripFilter{UserID: actor.ID})
		return err
	})
	g.Go(func() (err error) {
		in.Packages, err = s.gw.ListPackages(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}

	h := aggregate.BuildHistory(in)
	return &h, nil
}

func (s *viewsService) Catalog(ctx context.Context, q aggregate.CatalogQuery) (*aggregate.CatalogPage, error) {
	if err := validation.Struct(q); err != nil {
		return nil, err
	}
	pkgs, err := s.gw.ListPackages(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	page := aggregate.QueryCatalog(pkgs, q)
	return &page, nil
}

func (s *viewsService) Package(ctx context.Context, id domain.ID) (*domain.Package, error) {
	pkg, err := s.gw.GetPackage(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("package %s: %w", id, err)
	}
	return pkg, nil
}
