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

	checkMessageHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/check_message"
	createBookingHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/get_booking"
	getCategoryHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/get_category"
	getMessagesHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/get_messages"
	getProviderBookingsHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/get_provider_bookings"
	getTownHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/get_town"
	getUserBookingsHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/get_user_bookings"
	listAllCategoriesHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/list_all_categories"
	listCategoriesHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/list_categories"
	listTownsHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/list_towns"
	matchProvidersHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/match_providers"
	payBookingHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/pay_booking"
	sendMessageHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/send_message"
	setAvailabilityHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/set_availability"
	transitionBookingHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/transition_booking"
	updateProviderStatusHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/update_provider_status"
	"github.com/m04kA/SMC-MarketplaceService/internal/api/middleware"
	"github.com/m04kA/SMC-MarketplaceService/internal/config"
	availabilityRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/booking"
	categoryRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/category"
	chatRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/chat"
	providerRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/provider"
	townRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/town"
	bookingsService "github.com/m04kA/SMC-MarketplaceService/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-MarketplaceService/internal/service/catalog"
	chatService "github.com/m04kA/SMC-MarketplaceService/internal/service/chat"
	providersService "github.com/m04kA/SMC-MarketplaceService/internal/service/providers"
	createBookingUC "github.com/m04kA/SMC-MarketplaceService/internal/usecase/create_booking"
	matchProvidersUC "github.com/m04kA/SMC-MarketplaceService/internal/usecase/match_providers"
	"github.com/m04kA/SMC-MarketplaceService/pkg/dbmetrics"
	"github.com/m04kA/SMC-MarketplaceService/pkg/logger"
	"github.com/m04kA/SMC-MarketplaceService/pkg/metrics"
	"github.com/m04kA/SMC-MarketplaceService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-MarketplaceService/pkg/txmanager"
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

	log.Info("Starting SMC-MarketplaceService...")
	log.Info("Configuration loaded from config.toml")

	if cfg.Toggles.DisableAllTowns || cfg.Toggles.NoSellersAvailable || cfg.Toggles.PaymentAlwaysFails {
		log.Warn("Operational toggles active: disable_all_towns=%t, no_sellers_available=%t, payment_always_fails=%t",
			cfg.Toggles.DisableAllTowns, cfg.Toggles.NoSellersAvailable, cfg.Toggles.PaymentAlwaysFails)
	}

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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		townRepository         *townRepo.Repository
		categoryRepository     *categoryRepo.Repository
		providerRepository     *providerRepo.Repository
		availabilityRepository *availabilityRepo.Repository
		chatRepository         *chatRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		townRepository = townRepo.NewRepository(wrappedDB)
		categoryRepository = categoryRepo.NewRepository(wrappedDB)
		providerRepository = providerRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		chatRepository = chatRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		townRepository = townRepo.NewRepository(db)
		categoryRepository = categoryRepo.NewRepository(db)
		providerRepository = providerRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		chatRepository = chatRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		cfg.Toggles.PaymentAlwaysFails,
		log,
	)
	catalogSvc := catalogService.NewService(
		townRepository,
		categoryRepository,
		cfg.Toggles.DisableAllTowns,
		log,
	)
	chatSvc := chatService.NewService(
		chatRepository,
		bookingRepository,
		log,
	)
	providerSvc := providersService.NewService(
		providerRepository,
		availabilityRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		townRepository,
		categoryRepository,
		txMgr,
		cfg.Toggles.DisableAllTowns,
		log,
	)
	matchProvidersUseCase := matchProvidersUC.NewUseCase(
		providerRepository,
		availabilityRepository,
		cfg.Toggles.NoSellersAvailable,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	transitionBooking := transitionBookingHandler.NewHandler(bookingSvc, log)
	payBooking := payBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getProviderBookings := getProviderBookingsHandler.NewHandler(bookingSvc, log)
	matchProviders := matchProvidersHandler.NewHandler(matchProvidersUseCase, log)
	listTowns := listTownsHandler.NewHandler(catalogSvc, log)
	getTown := getTownHandler.NewHandler(catalogSvc, log)
	listCategories := listCategoriesHandler.NewHandler(catalogSvc, log)
	listAllCategories := listAllCategoriesHandler.NewHandler(catalogSvc, log)
	getCategory := getCategoryHandler.NewHandler(catalogSvc, log)
	sendMessage := sendMessageHandler.NewHandler(chatSvc, log)
	getMessages := getMessagesHandler.NewHandler(chatSvc, log)
	checkMessage := checkMessageHandler.NewHandler(chatSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(providerSvc, log)
	setAvailability := setAvailabilityHandler.NewHandler(providerSvc, log)
	updateProviderStatus := updateProviderStatusHandler.NewHandler(providerSvc, log)

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

	// Каталог городов и категорий
	api.HandleFunc("/towns", listTowns.Handle).Methods(http.MethodGet)
	api.HandleFunc("/towns/{townId}", getTown.Handle).Methods(http.MethodGet)
	api.HandleFunc("/towns/{townId}/categories", listCategories.Handle).Methods(http.MethodGet)
	api.HandleFunc("/categories", listAllCategories.Handle).Methods(http.MethodGet)
	api.HandleFunc("/categories/{categoryId}", getCategory.Handle).Methods(http.MethodGet)

	// Подбор исполнителей
	api.HandleFunc("/providers/match", matchProviders.Handle).Methods(http.MethodGet)

	// Проверка сообщения политикой общения
	api.HandleFunc("/messages/check", checkMessage.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/transition", transitionBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/pay", payBooking.Handle).Methods(http.MethodPost)

	// --- История заказов ---
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/providers/{providerId}/bookings", getProviderBookings.Handle).Methods(http.MethodGet)

	// --- Кабинет исполнителя ---
	protected.HandleFunc("/providers/{providerId}/availability", getAvailability.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/providers/{providerId}/availability", setAvailability.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/providers/{providerId}/status", updateProviderStatus.Handle).Methods(http.MethodPatch)

	// --- Чат бронирования ---
	protected.HandleFunc("/bookings/{bookingId}/messages", sendMessage.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/messages", getMessages.Handle).Methods(http.MethodGet)

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
