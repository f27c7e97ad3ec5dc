package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tripnest/travel-client/internal/cli"
	"github.com/tripnest/travel-client/internal/core/service"
	"github.com/tripnest/travel-client/internal/infrastructure/config"
	"github.com/tripnest/travel-client/internal/infrastructure/gateway"
	"github.com/tripnest/travel-client/internal/infrastructure/guard"
	"github.com/tripnest/travel-client/internal/infrastructure/search"
	"github.com/tripnest/travel-client/internal/infrastructure/session"
	"github.com/tripnest/travel-client/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:])
	stop()
	if err != nil {
		if !errors.Is(err, cli.ErrUsage) || len(os.Args) > 1 {
			fmt.Fprintln(os.Stderr, "travelctl:", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  true,
		Service: "travelctl",
	})

	path := cfg.SessionFile
	if path == "" {
		if path, err = session.DefaultPath(); err != nil {
			return err
		}
	}

	gw := gateway.New(cfg.Backend.BaseURL, &http.Client{Timeout: cfg.Backend.Timeout}, logger.For("gateway"))
	g := guard.NewLocal()
	bookings := service.NewBookingService(gw, g, nil, logger.For("bookings"))
	expenses := service.NewExpenseService(gw, g, nil, logger.For("expenses"))

	app := &cli.App{
		Session:  service.NewSession(ctx, gw, session.NewFileStore(path), logger.For("session")),
		Bookings: bookings,
		Trips:    service.NewTripService(gw, bookings, expenses, search.NewStatic(), g, nil, logger.For("trips")),
		Expenses: expenses,
		Admin:    service.NewAdminService(gw, bookings, g, nil, logger.For("admin")),
		Views:    service.NewViewsService(gw, logger.For("views")),
		Out:      os.Stdout,
		Log:      log,
	}
	return app.Run(ctx, args)
}
