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

	cancelReservationHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/cancel_reservation"
	createCourtHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/create_court"
	createReservationHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/create_reservation"
	createRuleHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/create_rule"
	deleteRuleHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/delete_rule"
	getAvailabilityHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_availability"
	getCatalogHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_catalog"
	getQuoteHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_quote"
	getReservationHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_reservation"
	getUserReservationsHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_user_reservations"
	joinWaitlistHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/join_waitlist"
	"github.com/m04kA/SMC-CourtService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtService/internal/config"
	catalogRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/catalog"
	pricingruleRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/pricingrule"
	reservationRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/reservation"
	waitlistRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/waitlist"
	notifierClient "github.com/m04kA/SMC-CourtService/internal/integrations/notifier"
	catalogService "github.com/m04kA/SMC-CourtService/internal/service/catalog"
	pricingService "github.com/m04kA/SMC-CourtService/internal/service/pricing"
	reservationsService "github.com/m04kA/SMC-CourtService/internal/service/reservations"
	waitlistService "github.com/m04kA/SMC-CourtService/internal/service/waitlist"
	cancelReservationUC "github.com/m04kA/SMC-CourtService/internal/usecase/cancel_reservation"
	createReservationUC "github.com/m04kA/SMC-CourtService/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/m04kA/SMC-CourtService/internal/usecase/get_availability"
	"github.com/m04kA/SMC-CourtService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtService/pkg/logger"
	"github.com/m04kA/SMC-CourtService/pkg/metrics"
	"github.com/m04kA/SMC-CourtService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-CourtService/pkg/txmanager"
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

	log.Info("Starting SMC-CourtService...")
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

	// Инициализируем клиент уведомлений листа ожидания
	var notifier *notifierClient.Client
	if cfg.Notifier.Enabled {
		notifier, err = notifierClient.NewClient(cfg.Notifier.URL, cfg.Notifier.Exchange, log)
		if err != nil {
			log.Fatal("Failed to connect to message broker: %v", err)
		}
		log.Info("Notifier connected (exchange=%s)", cfg.Notifier.Exchange)
	} else {
		notifier = notifierClient.NewDisabledClient(log)
		log.Info("Notifier disabled")
	}
	defer notifier.Close()

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		catalogRepository     *catalogRepo.Repository
		ruleRepository        *pricingruleRepo.Repository
		waitlistRepository    *waitlistRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		ruleRepository = pricingruleRepo.NewRepository(wrappedDB)
		waitlistRepository = waitlistRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		ruleRepository = pricingruleRepo.NewRepository(db)
		waitlistRepository = waitlistRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	pricingSvc := pricingService.NewService(catalogRepository, ruleRepository, log)
	catalogSvc := catalogService.NewService(catalogRepository, ruleRepository, log)
	reservationsSvc := reservationsService.NewService(reservationRepository, log)
	waitlistSvc := waitlistService.NewService(waitlistRepository, catalogRepository, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		catalogRepository,
		pricingSvc,
		txMgr,
		log,
	)

	cancelReservationUseCase := cancelReservationUC.NewUseCase(
		reservationRepository,
		waitlistRepository,
		notifier,
		txMgr,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(reservationRepository, log)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(cancelReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationsSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getCatalog := getCatalogHandler.NewHandler(catalogSvc, log)
	getQuote := getQuoteHandler.NewHandler(pricingSvc, log)
	joinWaitlist := joinWaitlistHandler.NewHandler(waitlistSvc, log)
	createRule := createRuleHandler.NewHandler(pricingSvc, log)
	deleteRule := deleteRuleHandler.NewHandler(pricingSvc, log)
	createCourt := createCourtHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

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

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Справочник: корты, тренеры, инвентарь, правила ценообразования
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)

	// Карта занятости на день
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Предварительная оценка стоимости
	api.HandleFunc("/quotes", getQuote.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/reservations/{reservationId}", cancelReservation.Handle).Methods(http.MethodDelete)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// Вступление в лист ожидания
	protected.HandleFunc("/waitlist", joinWaitlist.Handle).Methods(http.MethodPost)

	// --- Административные операции ---
	protected.HandleFunc("/admin/rules", createRule.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/admin/rules/{ruleId}", deleteRule.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/admin/courts", createCourt.Handle).Methods(http.MethodPost)

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
