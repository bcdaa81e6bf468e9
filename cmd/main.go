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
	"github.com/robfig/cron/v3"

	createBookingHandler "github.com/m04kA/SMC-ShopService/internal/api/handlers/create_booking"
	createBookingLinkHandler "github.com/m04kA/SMC-ShopService/internal/api/handlers/create_booking_link"
	createServiceHandler "github.com/m04kA/SMC-ShopService/internal/api/handlers/create_service"
	deleteServiceHandler "github.com/m04kA/SMC-ShopService/internal/api/handlers/delete_service"
	getAppointmentHandler "github.com/m04kA/SMC-ShopService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ShopService/internal/api/handlers/get_available_slots"
	getShopAppointmentsHandler "github.com/m04kA/SMC-ShopService/internal/api/handlers/get_shop_appointments"
	listEmployeesHandler "github.com/m04kA/SMC-ShopService/internal/api/handlers/list_employees"
	listManagerShopsHandler "github.com/m04kA/SMC-ShopService/internal/api/handlers/list_manager_shops"
	listServicesHandler "github.com/m04kA/SMC-ShopService/internal/api/handlers/list_services"
	listShopsHandler "github.com/m04kA/SMC-ShopService/internal/api/handlers/list_shops"
	loginHandler "github.com/m04kA/SMC-ShopService/internal/api/handlers/login"
	updateServiceHandler "github.com/m04kA/SMC-ShopService/internal/api/handlers/update_service"
	"github.com/m04kA/SMC-ShopService/internal/api/middleware"
	"github.com/m04kA/SMC-ShopService/internal/auth"
	"github.com/m04kA/SMC-ShopService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-ShopService/internal/infra/storage/appointment"
	bookingLinkRepo "github.com/m04kA/SMC-ShopService/internal/infra/storage/bookinglink"
	catalogRepo "github.com/m04kA/SMC-ShopService/internal/infra/storage/catalog"
	customerRepo "github.com/m04kA/SMC-ShopService/internal/infra/storage/customer"
	directoryRepo "github.com/m04kA/SMC-ShopService/internal/infra/storage/directory"
	appointmentsService "github.com/m04kA/SMC-ShopService/internal/service/appointments"
	authService "github.com/m04kA/SMC-ShopService/internal/service/auth"
	bookingLinksService "github.com/m04kA/SMC-ShopService/internal/service/bookinglinks"
	catalogService "github.com/m04kA/SMC-ShopService/internal/service/catalog"
	directoryService "github.com/m04kA/SMC-ShopService/internal/service/directory"
	createBookingUC "github.com/m04kA/SMC-ShopService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-ShopService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ShopService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ShopService/pkg/logger"
	"github.com/m04kA/SMC-ShopService/pkg/metrics"
	"github.com/m04kA/SMC-ShopService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ShopService/pkg/txmanager"
	"github.com/m04kA/SMC-ShopService/pkg/types"
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

	log.Info("Starting SMC-ShopService...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

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

	// Repositories and the transaction manager, with or without metrics.
	var (
		appointmentRepository *appointmentRepo.Repository
		catalogRepository     *catalogRepo.Repository
		directoryRepository   *directoryRepo.Repository
		customerRepository    *customerRepo.Repository
		bookingLinkRepository *bookingLinkRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		directoryRepository = directoryRepo.NewRepository(wrappedDB)
		customerRepository = customerRepo.NewRepository(wrappedDB)
		bookingLinkRepository = bookingLinkRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		directoryRepository = directoryRepo.NewRepository(db)
		customerRepository = customerRepo.NewRepository(db)
		bookingLinkRepository = bookingLinkRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	tokenIssuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
	linkTTL := time.Duration(cfg.Booking.LinkTTLMinutes) * time.Minute

	// Services.
	catalogSvc := catalogService.NewService(catalogRepository, log)
	directorySvc := directoryService.NewService(directoryRepository, log)
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		catalogRepository,
		directoryRepository,
		customerRepository,
		log,
	)
	linksSvc := bookingLinksService.NewService(
		bookingLinkRepository,
		customerRepository,
		directoryRepository,
		bookingLinksService.RealTimeProvider{},
		linkTTL,
		log,
	)
	authSvc := authService.NewService(directoryRepository, tokenIssuer, log)

	// Use cases.
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		directoryRepository,
		types.TimeString(cfg.Booking.BusinessDayStart),
		types.TimeString(cfg.Booking.BusinessDayEnd),
		cfg.Booking.SlotStepMinutes,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		appointmentRepository,
		directoryRepository,
		catalogSvc,
		linksSvc,
		txMgr,
		log,
	)

	// Handlers.
	login := loginHandler.NewHandler(authSvc, log)
	createBookingLink := createBookingLinkHandler.NewHandler(linksSvc, cfg.Booking.PublicBookingURL, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	getShopAppointments := getShopAppointmentsHandler.NewHandler(appointmentsSvc, log)
	listShops := listShopsHandler.NewHandler(directorySvc, log)
	listEmployees := listEmployeesHandler.NewHandler(directorySvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, directorySvc, log)
	listManagerShops := listManagerShopsHandler.NewHandler(directorySvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)

	// Expired booking links are purged on a schedule.
	cronRunner := cron.New()
	if _, err := cronRunner.AddFunc(cfg.Booking.CleanupSchedule, func() {
		if _, err := linksSvc.CleanupExpired(context.Background()); err != nil {
			log.Error("Booking link cleanup failed: %v", err)
		}
	}); err != nil {
		log.Fatal("Failed to schedule booking link cleanup: %v", err)
	}
	cronRunner.Start()
	defer cronRunner.Stop()
	log.Info("Booking link cleanup scheduled (%s)", cfg.Booking.CleanupSchedule)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (no authentication)
	// ============================================================

	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/booking-links", createBookingLink.Handle).Methods(http.MethodPost)

	// ============================================================
	// BOOKING ROUTES (require a live booking token)
	// ============================================================

	booking := api.PathPrefix("").Subrouter()
	booking.Use(middleware.BookingToken(linksSvc, log))

	booking.HandleFunc("/shops", listShops.Handle).Methods(http.MethodGet)
	booking.HandleFunc("/shops/{shopId}/employees", listEmployees.Handle).Methods(http.MethodGet)
	booking.HandleFunc("/employees/{employeeId}/services", listServices.Handle).Methods(http.MethodGet)
	booking.HandleFunc("/timeslots", getAvailableSlots.Handle).Methods(http.MethodGet)
	booking.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	booking.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// ============================================================
	// MANAGEMENT ROUTES (require a JWT)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokenIssuer, log))

	protected.HandleFunc("/manager/shops", listManagerShops.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/shops/{shopId}/appointments", getShopAppointments.Handle).Methods(http.MethodGet)

	// Catalog CRUD is manager-only.
	managerOnly := protected.PathPrefix("").Subrouter()
	managerOnly.Use(middleware.RequireManager(log))

	managerOnly.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	managerOnly.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPut)
	managerOnly.HandleFunc("/services/{serviceId}", deleteService.Handle).Methods(http.MethodDelete)

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
