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

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/mux"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	approveBookingHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/approve_booking"
	cancelBookingHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/cancel_booking"
	checkConflictHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/check_conflict"
	createBookingHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/create_booking"
	createFacilityHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/create_facility"
	getAvailableSlotsHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/get_booking"
	getFacilityHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/get_facility"
	getFacilityBookingsHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/get_facility_bookings"
	getUserBookingsHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/get_user_bookings"
	listFacilitiesHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/list_facilities"
	updateFacilityHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/update_facility"
	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityBooking/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityBooking/internal/config"
	bookingRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/booking"
	facilityRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/facility"
	"github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/migrations"
	"github.com/m04kA/SMC-FacilityBooking/internal/integrations/events"
	bookingsService "github.com/m04kA/SMC-FacilityBooking/internal/service/bookings"
	facilitiesService "github.com/m04kA/SMC-FacilityBooking/internal/service/facilities"
	checkConflictUC "github.com/m04kA/SMC-FacilityBooking/internal/usecase/check_conflict"
	createBookingUC "github.com/m04kA/SMC-FacilityBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-FacilityBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-FacilityBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
	"github.com/m04kA/SMC-FacilityBooking/pkg/metrics"
	"github.com/m04kA/SMC-FacilityBooking/pkg/tracing"
	"github.com/m04kA/SMC-FacilityBooking/pkg/txmanager"
)

// eventPublisher общий интерфейс AMQP и no-op публикаторов
type eventPublisher interface {
	Publish(ctx context.Context, event events.BookingEvent) error
	Close() error
}

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.toml"
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-FacilityBooking...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены). nil-указатель безопасен для всех методов.
	var metricsCollector *metrics.Metrics
	stopCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Трейсинг. Без Init глобальный провайдер no-op.
	if cfg.Tracing.Enabled {
		shutdownTracing, err := tracing.Init(
			context.Background(),
			cfg.Metrics.ServiceName,
			cfg.Tracing.Environment,
			cfg.Tracing.Endpoint,
		)
		if err != nil {
			log.Fatal("Failed to initialize tracing: %v", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownTracing(ctx); err != nil {
				log.Error("Failed to flush traces: %v", err)
			}
		}()
		log.Info("Tracing enabled (endpoint=%s)", cfg.Tracing.Endpoint)
	}

	// Подключаемся к базе данных
	driver := cfg.Database.Driver
	db, err := sql.Open(driver, cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (driver=%s, host=%s, port=%d, db=%s)",
		driver, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if cfg.Database.AutoMigrate {
		if err := migrations.Up(db, log); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopCh)

	txMgr := txmanager.NewTransactionManager(
		wrappedDB,
		txmanager.WithMaxAttempts(cfg.Database.TxMaxAttempts),
		txmanager.WithRetryObserver(metricsCollector),
	)

	// Публикатор доменных событий
	var publisher eventPublisher = events.NopPublisher{}
	if cfg.Events.Enabled {
		amqpPublisher, err := events.NewPublisher(
			cfg.Events.URL,
			cfg.Events.Exchange,
			time.Duration(cfg.Events.PublishTimeout)*time.Second,
		)
		if err != nil {
			log.Fatal("Failed to connect to message broker: %v", err)
		}
		publisher = amqpPublisher
		log.Info("Event publishing enabled (exchange=%s)", cfg.Events.Exchange)
	}
	defer publisher.Close()

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	facilityRepository := facilityRepo.NewRepository(wrappedDB)

	// Сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, publisher, metricsCollector, log)
	facilitySvc := facilitiesService.NewService(facilityRepository, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		facilityRepository,
		txMgr,
		publisher,
		metricsCollector,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(bookingRepository, facilityRepository, log)
	checkConflictUseCase := checkConflictUC.NewUseCase(bookingRepository, log)

	// Handlers
	listFacilities := listFacilitiesHandler.NewHandler(facilitySvc, log)
	getFacility := getFacilityHandler.NewHandler(facilitySvc, log)
	createFacility := createFacilityHandler.NewHandler(facilitySvc, log)
	updateFacility := updateFacilityHandler.NewHandler(facilitySvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	checkConflict := checkConflictHandler.NewHandler(checkConflictUseCase, log)
	getFacilityBookings := getFacilityBookingsHandler.NewHandler(bookingSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	approveBooking := approveBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(
			cfg.RateLimit.RequestsPerSecond,
			cfg.RateLimit.Burst,
			time.Duration(cfg.RateLimit.TTL)*time.Second,
		)
		go limiter.RunCleanup(time.Minute, stopCh)
		r.Use(limiter.Middleware)
		log.Info("Rate limiting enabled (%.1f rps, burst=%d)", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
		defer cancel()

		if err := wrappedDB.PingContext(ctx); err != nil {
			handlers.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "down"})
			return
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "up"})
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/facilities", listFacilities.Handle).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{facilityId}", getFacility.Handle).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{facilityId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{facilityId}/conflicts", checkConflict.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Объекты (для управляющей компании) ---
	protected.HandleFunc("/facilities", createFacility.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/facilities/{facilityId}", updateFacility.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/facilities/{facilityId}/bookings", getFacilityBookings.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/approve", approveBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
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

	// Останавливаем сбор статистики пула и очистку rate limiter
	close(stopCh)

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
