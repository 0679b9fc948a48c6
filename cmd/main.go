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
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/quickstampnotary/QSN-PricingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/quickstampnotary/QSN-PricingService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/quickstampnotary/QSN-PricingService/internal/api/handlers/get_booking"
	reserveSlotHandler "github.com/quickstampnotary/QSN-PricingService/internal/api/handlers/reserve_slot"
	transparentPricingHandler "github.com/quickstampnotary/QSN-PricingService/internal/api/handlers/transparent_pricing"
	"github.com/quickstampnotary/QSN-PricingService/internal/api/middleware"
	"github.com/quickstampnotary/QSN-PricingService/internal/config"
	"github.com/quickstampnotary/QSN-PricingService/internal/infra/cache"
	bookingRepo "github.com/quickstampnotary/QSN-PricingService/internal/infra/storage/booking"
	reservationRepo "github.com/quickstampnotary/QSN-PricingService/internal/infra/storage/reservation"
	"github.com/quickstampnotary/QSN-PricingService/internal/integrations/googlemaps"
	distanceService "github.com/quickstampnotary/QSN-PricingService/internal/service/distance"
	pricingService "github.com/quickstampnotary/QSN-PricingService/internal/service/pricing"
	rulesService "github.com/quickstampnotary/QSN-PricingService/internal/service/rules"
	transparentService "github.com/quickstampnotary/QSN-PricingService/internal/service/transparent"
	cancelBookingUC "github.com/quickstampnotary/QSN-PricingService/internal/usecase/cancel_booking"
	createBookingUC "github.com/quickstampnotary/QSN-PricingService/internal/usecase/create_booking"
	getBookingUC "github.com/quickstampnotary/QSN-PricingService/internal/usecase/get_booking"
	reserveSlotUC "github.com/quickstampnotary/QSN-PricingService/internal/usecase/reserve_slot"
	"github.com/quickstampnotary/QSN-PricingService/pkg/logger"
	"github.com/quickstampnotary/QSN-PricingService/pkg/metrics"
	"github.com/quickstampnotary/QSN-PricingService/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting QSN-PricingService...")

	metricsCollector := metrics.New(cfg.Metrics.ServiceName)

	// Database
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Redis pricing cache, optional
	var pricingCache transparentService.PricingCache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis unavailable, pricing cache disabled: %v", err)
		} else {
			pricingCache = cache.New(redisClient,
				time.Duration(cfg.Redis.CacheTTLMinutes)*time.Minute, log, metricsCollector)
			log.Info("Pricing cache enabled (addr=%s, ttl=%dm)", cfg.Redis.Addr, cfg.Redis.CacheTTLMinutes)
		}
		cancel()
	}

	// Google Maps distance provider, optional; without a key every
	// resolution uses the keyword heuristic.
	var mapsClient distanceService.MapsClient
	if cfg.Maps.APIKey != "" {
		client, err := googlemaps.NewClient(cfg.Maps.APIKey, cfg.Maps.OriginAddress,
			time.Duration(cfg.Maps.TimeoutSeconds)*time.Second)
		if err != nil {
			log.Fatal("Failed to initialize maps client: %v", err)
		}
		mapsClient = client
		log.Info("Maps client initialized (origin=%s)", cfg.Maps.OriginAddress)
	} else {
		log.Warn("No maps API key configured, distance resolution runs on heuristics only")
	}

	location, err := time.LoadLocation(cfg.Pricing.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Pricing.Timezone, err)
	}

	// Repositories and transaction manager
	bookingRepository := bookingRepo.NewRepository(db)
	reservationRepository := reservationRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Services
	distanceSvc := distanceService.NewService(mapsClient, log, metricsCollector)
	rulesSvc := rulesService.NewService(log)
	pricingSvc := pricingService.NewService(location, cfg.Pricing.SameDayWindowHours, log)
	transparentSvc := transparentService.NewService(
		distanceSvc,
		rulesSvc,
		pricingSvc,
		pricingCache,
		log,
		metricsCollector,
		transparentService.WithCustomerHistory(bookingRepository),
	)

	// Use cases
	reserveSlotUseCase := reserveSlotUC.NewUseCase(reservationRepository, cfg.Pricing.HoldMinutes, log, metricsCollector)
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, reservationRepository, txMgr, log)
	getBookingUseCase := getBookingUC.NewUseCase(bookingRepository, log)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(bookingRepository, rulesSvc, txMgr, log)

	// Handlers
	transparentPricing := transparentPricingHandler.NewHandler(transparentSvc, log)
	reserveSlot := reserveSlotHandler.NewHandler(reserveSlotUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(getBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)

	// Router
	r := mux.NewRouter()
	r.Use(middleware.Logging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.Prometheus(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		if err := db.PingContext(req.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprint(w, `{"status":"degraded"}`)
			return
		}
		fmt.Fprint(w, `{"status":"ok"}`)
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Pricing
	api.HandleFunc("/pricing/transparent", transparentPricing.HandleQuote).Methods(http.MethodPost)
	api.HandleFunc("/pricing/transparent", transparentPricing.HandleCatalog).Methods(http.MethodGet)

	// Booking flow
	api.HandleFunc("/booking/reserve-slot", reserveSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/booking/create", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", getBooking.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.HandleGetByID).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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
