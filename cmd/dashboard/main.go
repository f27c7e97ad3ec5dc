package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/tripnest/travel-client/internal/api"
	"github.com/tripnest/travel-client/internal/api/middleware"
	"github.com/tripnest/travel-client/internal/core/ports"
	"github.com/tripnest/travel-client/internal/core/service"
	"github.com/tripnest/travel-client/internal/infrastructure/config"
	mongodb "github.com/tripnest/travel-client/internal/infrastructure/db/mongo"
	redisdb "github.com/tripnest/travel-client/internal/infrastructure/db/redis"
	"github.com/tripnest/travel-client/internal/infrastructure/gateway"
	"github.com/tripnest/travel-client/internal/infrastructure/queue"
	"github.com/tripnest/travel-client/internal/infrastructure/search"
	"github.com/tripnest/travel-client/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "travel-bff",
	})
	if err := cfg.ValidateServer(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  "travel-bff",
	})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(dctx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	activities := mongodb.NewActivityRepository(db)
	if err := activities.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("activity indexes not ensured")
	}
	dispatcher := queue.NewDispatcher(0, activities, logger.For("activity"))
	dispatcher.Start()
	defer func() {
		cctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := dispatcher.Close(cctx); err != nil {
			log.Warn().Err(err).Msg("activity queue not drained")
		}
	}()

	gw := gateway.New(cfg.Backend.BaseURL, &http.Client{Timeout: cfg.Backend.Timeout}, logger.For("gateway"))
	guard := redisdb.NewActionGuard(rdb, cfg.Guard.TTL, logger.For("guard"))
	stores := func(sid string) ports.IdentityStore {
		return redisdb.NewIdentityStore(rdb, sid, cfg.SessionTTL)
	}

	bookings := service.NewBookingService(gw, guard, dispatcher, logger.For("bookings"))
	expenses := service.NewExpenseService(gw, guard, dispatcher, logger.For("expenses"))
	e := api.NewRouter(api.Deps{
		Sessions:   service.NewSessionManager(gw, stores, guard, logger.For("session")),
		Tokens:     middleware.NewTokenIssuer(cfg.JWTSecret, cfg.SessionTTL),
		Bookings:   bookings,
		Trips:      service.NewTripService(gw, bookings, expenses, search.NewStatic(), guard, dispatcher, logger.For("trips")),
		Expenses:   expenses,
		Admin:      service.NewAdminService(gw, bookings, guard, dispatcher, logger.For("admin")),
		Views:      service.NewViewsService(gw, logger.For("views")),
		Activities: activities,
		JWTSecret:  cfg.JWTSecret,
		Mongo:      db,
		Redis:      rdb,
		Log:        logger.For("http"),
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", cfg.Backend.BaseURL).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(sctx)
}
