package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/venuebook/venue-scheduler/internal/api/handlers/cancel_booking"
	getBookingHandler "github.com/venuebook/venue-scheduler/internal/api/handlers/get_booking"
	getVenueBookingsHandler "github.com/venuebook/venue-scheduler/internal/api/handlers/get_venue_bookings"
	getVenueSlotsHandler "github.com/venuebook/venue-scheduler/internal/api/handlers/get_venue_slots"
	quotePriceHandler "github.com/venuebook/venue-scheduler/internal/api/handlers/quote_price"
	scheduleBookingHandler "github.com/venuebook/venue-scheduler/internal/api/handlers/schedule_booking"
	"github.com/venuebook/venue-scheduler/internal/api/middleware"
	"github.com/venuebook/venue-scheduler/internal/config"
	bookingRepo "github.com/venuebook/venue-scheduler/internal/infra/storage/booking"
	slotRepo "github.com/venuebook/venue-scheduler/internal/infra/storage/slotcatalog"
	venueRepo "github.com/venuebook/venue-scheduler/internal/infra/storage/venue"
	availabilityService "github.com/venuebook/venue-scheduler/internal/service/availability"
	bookingsService "github.com/venuebook/venue-scheduler/internal/service/bookings"
	catalogService "github.com/venuebook/venue-scheduler/internal/service/catalog"
	quotePriceUC "github.com/venuebook/venue-scheduler/internal/usecase/quote_price"
	scheduleBookingUC "github.com/venuebook/venue-scheduler/internal/usecase/schedule_booking"
	"github.com/venuebook/venue-scheduler/pkg/dbmetrics"
	"github.com/venuebook/venue-scheduler/pkg/logger"
	"github.com/venuebook/venue-scheduler/pkg/metrics"
	"github.com/venuebook/venue-scheduler/pkg/simpletxmanager"
	"github.com/venuebook/venue-scheduler/pkg/txmanager"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting venue-scheduler...")
	log.Info("Configuration loaded from config.toml")

	// Initialize metrics (when enabled)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Connect to the database
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Configure the connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Initialize repositories (with or without the metrics wrapper)
	var (
		bookingRepository *bookingRepo.Repository
		slotRepository    *slotRepo.Repository
		venueRepository   *venueRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		slotRepository = slotRepo.NewRepository(wrappedDB)
		venueRepository = venueRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		slotRepository = slotRepo.NewRepository(db)
		venueRepository = venueRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Initialize services
	availabilitySvc := availabilityService.NewService(
		bookingRepository,
		availabilityService.Policy{
			Step:           time.Duration(cfg.Scheduler.AlternativeStepDays) * 24 * time.Hour,
			Horizon:        time.Duration(cfg.Scheduler.AlternativeHorizonDays) * 24 * time.Hour,
			MaxSuggestions: cfg.Scheduler.MaxAlternatives,
		},
		log,
	)
	catalogSvc := catalogService.NewService(slotRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, venueRepository, log)

	// Initialize use cases
	scheduleBookingUseCase := scheduleBookingUC.NewUseCase(
		bookingRepository,
		venueRepository,
		catalogSvc,
		availabilitySvc,
		txMgr,
		scheduleBookingUC.Policy{
			MinLeadTime: time.Duration(cfg.Scheduler.MinLeadTimeHours) * time.Hour,
			MinDuration: time.Duration(cfg.Scheduler.MinDurationHours) * time.Hour,
			MaxDuration: time.Duration(cfg.Scheduler.MaxDurationHours) * time.Hour,
		},
		log,
	)
	quotePriceUseCase := quotePriceUC.NewUseCase(venueRepository, catalogSvc, log)

	// Initialize handlers
	scheduleBooking := scheduleBookingHandler.NewHandler(scheduleBookingUseCase, log)
	quotePrice := quotePriceHandler.NewHandler(quotePriceUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getVenueBookings := getVenueBookingsHandler.NewHandler(bookingSvc, log)
	getVenueSlots := getVenueSlotsHandler.NewHandler(catalogSvc, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (no authentication)
	// ============================================================

	// Active slots of a venue
	api.HandleFunc("/venues/{venueId}/slots", getVenueSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (require X-Tenant-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Bookings ---
	// Schedule a booking
	protected.HandleFunc("/bookings", scheduleBooking.Handle).Methods(http.MethodPost)

	// Fetch a booking by ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Cancel a booking
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Venue management ---
	// List a venue's bookings
	protected.HandleFunc("/venues/{venueId}/bookings", getVenueBookings.Handle).Methods(http.MethodGet)

	// Price a quote for a venue slot
	protected.HandleFunc("/venues/{venueId}/quotes", quotePrice.Handle).Methods(http.MethodPost)

	// HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Stop connection pool metrics collection
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
