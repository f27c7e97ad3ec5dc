package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tripnest/travel-client/internal/api/handler"
	"github.com/tripnest/travel-client/internal/api/middleware"
	"github.com/tripnest/travel-client/internal/core/domain"
	"github.com/tripnest/travel-client/internal/core/ports"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Sessions ports.SessionService
	Tokens   handler.TokenIssuer
	Bookings ports.BookingService
	Trips    ports.TripService
	Expenses ports.ExpenseService
	Admin    ports.AdminService
	Views    ports.ViewsService
	// Activities is optional; without it /v1/me/activity is not mounted.
	Activities handler.ActivityLister

	JWTSecret string
	Mongo     *mongo.Database
	Redis     *redis.Client
	Log       zerolog.Logger
	// Registry receives the HTTP metrics and backs /metrics. Nil uses the
	// default Prometheus registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if d.Registry != nil {
		registerer, gatherer = d.Registry, d.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "travel_bff",
		Registerer: registerer,
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Sessions, d.Tokens)
	viewsHandler := handler.NewViewsHandler(d.Views)
	bookingHandler := handler.NewBookingHandler(d.Bookings)
	tripHandler := handler.NewTripHandler(d.Trips, d.Views)
	expenseHandler := handler.NewExpenseHandler(d.Expenses)
	adminHandler := handler.NewAdminHandler(d.Admin)

	authenticated := []echo.MiddlewareFunc{
		middleware.Auth(d.JWTSecret),
		middleware.Session(d.Sessions),
	}

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, middleware.Auth(d.JWTSecret))

	// --- Public catalog ---
	e.GET("/v1/packages", viewsHandler.Catalog)
	e.GET("/v1/packages/:id", viewsHandler.Package)

	// --- Authenticated routes ---
	v1 := e.Group("/v1", authenticated...)
	v1.GET("/me", authHandler.Me)
	v1.PUT("/me", authHandler.UpdateMe)
	if d.Activities != nil {
		v1.GET("/me/activity", handler.NewActivityHandler(d.Activities).List)
	}
	v1.GET("/dashboard", viewsHandler.Dashboard)
	v1.GET("/history", viewsHandler.History)

	v1.POST("/packages/:id/bookings", bookingHandler.BookPackage)
	v1.POST("/packages/:id/trips", tripHandler.FromPackage)
	v1.POST("/bookings/:id/cancel", bookingHandler.Cancel)

	v1.POST("/trips", tripHandler.Create)
	v1.PUT("/trips/:id", tripHandler.Update)
	v1.GET("/trips/:id/expenses/total", expenseHandler.TripTotal)
	v1.POST("/trips/search", tripHandler.Search)
	v1.POST("/trips/options/bookings", tripHandler.BookOption)
	v1.POST("/trips/options/expenses", tripHandler.TrackOption)

	v1.GET("/expenses", expenseHandler.List)
	v1.POST("/expenses", expenseHandler.Create)
	v1.PUT("/expenses/:id", expenseHandler.Update)
	v1.DELETE("/expenses/:id", expenseHandler.Delete)

	// --- Admin routes ---
	admin := v1.Group("/admin", middleware.RBAC(domain.RoleAdmin))
	admin.GET("/overview", adminHandler.Overview)
	admin.POST("/packages", adminHandler.CreatePackage)
	admin.PUT("/packages/:id", adminHandler.UpdatePackage)
	admin.DELETE("/packages/:id", adminHandler.DeletePackage)
	admin.PUT("/users/:id", adminHandler.UpdateUser)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.PUT("/trips/:id", adminHandler.UpdateTrip)
	admin.PATCH("/bookings/:id/status", adminHandler.SetBookingStatus)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Mongo, d.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))

	return e
}

// requestLogger logs one line per request through zerolog.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  false,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Status >= 500 {
				evt = log.Error().Err(v.Error)
			}
			evt.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
