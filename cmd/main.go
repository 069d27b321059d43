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

	addNextWeekHandler "github.com/m04kA/BNB-RentalService/internal/api/handlers/add_next_week"
	addSlotsHandler "github.com/m04kA/BNB-RentalService/internal/api/handlers/add_slots"
	bookSlotHandler "github.com/m04kA/BNB-RentalService/internal/api/handlers/book_slot"
	cancelBookingHandler "github.com/m04kA/BNB-RentalService/internal/api/handlers/cancel_booking"
	deleteSlotHandler "github.com/m04kA/BNB-RentalService/internal/api/handlers/delete_slot"
	getRatingEligibilityHandler "github.com/m04kA/BNB-RentalService/internal/api/handlers/get_rating_eligibility"
	getScheduleHandler "github.com/m04kA/BNB-RentalService/internal/api/handlers/get_schedule"
	getSlotHandler "github.com/m04kA/BNB-RentalService/internal/api/handlers/get_slot"
	getUserRentalsHandler "github.com/m04kA/BNB-RentalService/internal/api/handlers/get_user_rentals"
	retractSlotHandler "github.com/m04kA/BNB-RentalService/internal/api/handlers/retract_slot"
	searchListingsHandler "github.com/m04kA/BNB-RentalService/internal/api/handlers/search_listings"
	setPriceHandler "github.com/m04kA/BNB-RentalService/internal/api/handlers/set_price"
	"github.com/m04kA/BNB-RentalService/internal/api/middleware"
	"github.com/m04kA/BNB-RentalService/internal/config"
	bookingRepo "github.com/m04kA/BNB-RentalService/internal/infra/storage/booking"
	ledgerRepo "github.com/m04kA/BNB-RentalService/internal/infra/storage/ledger"
	listingRepo "github.com/m04kA/BNB-RentalService/internal/infra/storage/listing"
	slotRepo "github.com/m04kA/BNB-RentalService/internal/infra/storage/slot"
	userServiceClient "github.com/m04kA/BNB-RentalService/internal/integrations/userservice"
	bookingsService "github.com/m04kA/BNB-RentalService/internal/service/bookings"
	slotsService "github.com/m04kA/BNB-RentalService/internal/service/slots"
	addSlotsUC "github.com/m04kA/BNB-RentalService/internal/usecase/add_slots"
	bookSlotUC "github.com/m04kA/BNB-RentalService/internal/usecase/book_slot"
	searchListingsUC "github.com/m04kA/BNB-RentalService/internal/usecase/search_listings"
	"github.com/m04kA/BNB-RentalService/pkg/dbmetrics"
	"github.com/m04kA/BNB-RentalService/pkg/logger"
	"github.com/m04kA/BNB-RentalService/pkg/metrics"
	"github.com/m04kA/BNB-RentalService/pkg/simpletxmanager"
	"github.com/m04kA/BNB-RentalService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting BNB-RentalService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиент UserService
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (UserService=%s timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		slotRepository    *slotRepo.Repository
		bookingRepository *bookingRepo.Repository
		ledgerRepository  *ledgerRepo.Repository
		listingRepository *listingRepo.Repository
	)

	// Интерфейс для transaction manager (используется в сервисах и usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		ledgerRepository = ledgerRepo.NewRepository(wrappedDB)
		listingRepository = listingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = slotRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		ledgerRepository = ledgerRepo.NewRepository(db)
		listingRepository = listingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	slotSvc := slotsService.NewService(
		slotRepository,
		listingRepository,
		ledgerRepository,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		slotRepository,
		listingRepository,
		ledgerRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	addSlotsUseCase := addSlotsUC.NewUseCase(
		slotRepository,
		listingRepository,
		userClient,
		log,
	)
	bookSlotUseCase := bookSlotUC.NewUseCase(
		slotRepository,
		bookingRepository,
		listingRepository,
		ledgerRepository,
		userClient,
		txMgr,
		log,
	)
	searchListingsUseCase := searchListingsUC.NewUseCase(
		listingRepository,
		log,
	)

	// Инициализируем handlers
	addSlots := addSlotsHandler.NewHandler(addSlotsUseCase, log)
	addNextWeek := addNextWeekHandler.NewHandler(addSlotsUseCase, log)
	getSchedule := getScheduleHandler.NewHandler(slotSvc, log)
	getSlot := getSlotHandler.NewHandler(slotSvc, log)
	setPrice := setPriceHandler.NewHandler(slotSvc, log)
	retractSlot := retractSlotHandler.NewHandler(slotSvc, log)
	deleteSlot := deleteSlotHandler.NewHandler(slotSvc, log)
	bookSlot := bookSlotHandler.NewHandler(bookSlotUseCase, metricsCollector, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserRentals := getUserRentalsHandler.NewHandler(bookingSvc, log)
	getRatingEligibility := getRatingEligibilityHandler.NewHandler(bookingSvc, log)
	searchListings := searchListingsHandler.NewHandler(searchListingsUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Request ID для трассировки запросов
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Все маршруты требуют X-User-ID header
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Расписание листинга (хост) ---
	protected.HandleFunc("/listings/{listingId}/slots", addSlots.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/listings/{listingId}/slots/next-week", addNextWeek.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/listings/{listingId}/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// --- Слоты ---
	protected.HandleFunc("/slots/{slotId}", getSlot.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/slots/{slotId}/price", setPrice.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/slots/{slotId}/retract", retractSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/slots/{slotId}", deleteSlot.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	protected.HandleFunc("/slots/{slotId}/book", bookSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/slots/{slotId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Аренды пользователя ---
	protected.HandleFunc("/users/{userId}/rentals", getUserRentals.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/rentals/eligibility", getRatingEligibility.Handle).Methods(http.MethodGet)

	// --- Поиск листингов ---
	protected.HandleFunc("/listings", searchListings.Handle).Methods(http.MethodGet)

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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
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
