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

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	checkInHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/check_in"
	checkOutHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/check_out"
	createReservationHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/create_reservation"
	financesHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/finances"
	garagesHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/garages"
	payReservationHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/pay_reservation"
	ratingsHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/ratings"
	reportDisputeHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/report_dispute"
	requestWithdrawalHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/request_withdrawal"
	reservationsHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/reservations"
	resolveDisputeHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/resolve_dispute"
	searchGaragesHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/search_garages"
	usersHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/users"
	"github.com/m04kA/SMC-GarageService/internal/api/middleware"
	"github.com/m04kA/SMC-GarageService/internal/auth"
	"github.com/m04kA/SMC-GarageService/internal/config"
	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/internal/infra/cache"
	garageRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/garage"
	ratingRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/rating"
	reservationRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/reservation"
	ticketRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/ticket"
	userRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/user"
	walletRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/wallet"
	withdrawalRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/withdrawal"
	financesService "github.com/m04kA/SMC-GarageService/internal/service/finances"
	garagesService "github.com/m04kA/SMC-GarageService/internal/service/garages"
	"github.com/m04kA/SMC-GarageService/internal/service/ledger"
	"github.com/m04kA/SMC-GarageService/internal/service/pricing"
	ratingsService "github.com/m04kA/SMC-GarageService/internal/service/ratings"
	reservationsService "github.com/m04kA/SMC-GarageService/internal/service/reservations"
	usersService "github.com/m04kA/SMC-GarageService/internal/service/users"
	checkInUC "github.com/m04kA/SMC-GarageService/internal/usecase/check_in"
	checkOutUC "github.com/m04kA/SMC-GarageService/internal/usecase/check_out"
	createReservationUC "github.com/m04kA/SMC-GarageService/internal/usecase/create_reservation"
	payReservationUC "github.com/m04kA/SMC-GarageService/internal/usecase/pay_reservation"
	reportDisputeUC "github.com/m04kA/SMC-GarageService/internal/usecase/report_dispute"
	requestWithdrawalUC "github.com/m04kA/SMC-GarageService/internal/usecase/request_withdrawal"
	resolveDisputeUC "github.com/m04kA/SMC-GarageService/internal/usecase/resolve_dispute"
	searchGaragesUC "github.com/m04kA/SMC-GarageService/internal/usecase/search_garages"
	"github.com/m04kA/SMC-GarageService/migrations"
	"github.com/m04kA/SMC-GarageService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GarageService/pkg/logger"
	"github.com/m04kA/SMC-GarageService/pkg/metrics"
	"github.com/m04kA/SMC-GarageService/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		configPath = v
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

	log.Info("Starting SMC-GarageService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены). nil-коллектор ничего не пишет
	var metricsCollector *metrics.Metrics
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

	// Применяем миграции
	if cfg.Database.AutoMigrate {
		applied, err := migrations.Up(context.Background(), db)
		if err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Migrations applied: %d", applied)
	}

	// Обертка с метриками запросов. Транзакции всегда идут через нее
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Кэш результатов поиска
	var searchCache cache.Cache = cache.Nop{}
	if cfg.Redis.Enabled() {
		redisCache, err := cache.NewRedis(context.Background(), cfg.Redis.URL,
			time.Duration(cfg.Redis.DialTimeoutSec)*time.Second)
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		searchCache = redisCache
		log.Info("Search cache enabled (ttl=%ds)", cfg.Redis.SearchTTLSec)
	} else {
		log.Warn("Redis URL is empty, search cache disabled")
	}
	defer searchCache.Close()

	// Инициализируем репозитории
	userRepository := userRepo.NewRepository(wrappedDB)
	garageRepository := garageRepo.NewRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	walletRepository := walletRepo.NewRepository(wrappedDB)
	withdrawalRepository := withdrawalRepo.NewRepository(wrappedDB)
	ticketRepository := ticketRepo.NewRepository(wrappedDB)
	ratingRepository := ratingRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
	calculator := pricing.NewCalculator(cfg.Pricing.CommissionPercent, domain.ExtrasPolicy(cfg.Pricing.ExtrasPolicy))
	ledgerSvc := ledger.NewLedger(walletRepository, metricsCollector, log)

	userSvc := usersService.NewService(userRepository, tokens, cfg.Auth.BcryptCost, log)
	garageSvc := garagesService.NewService(garageRepository, searchCache, log)
	reservationSvc := reservationsService.NewService(reservationRepository, log)
	financeSvc := financesService.NewService(ledgerSvc, withdrawalRepository, txMgr, log)
	ratingSvc := ratingsService.NewService(ratingRepository, reservationRepository, log)

	// Инициализируем use cases
	searchGaragesUseCase := searchGaragesUC.NewUseCase(
		garageRepository,
		searchCache,
		metricsCollector,
		time.Duration(cfg.Redis.SearchTTLSec)*time.Second,
		log,
	)
	createReservationUseCase := createReservationUC.NewUseCase(
		garageRepository,
		reservationRepository,
		calculator,
		txMgr,
		searchCache,
		metricsCollector,
		log,
		createReservationUC.Options{
			TermsVersion:           cfg.Pricing.TermsVersion,
			RevalidateAvailability: cfg.Booking.RevalidateOnCreate,
		},
	)
	payReservationUseCase := payReservationUC.NewUseCase(reservationRepository, ledgerSvc, txMgr, metricsCollector, log)
	checkInUseCase := checkInUC.NewUseCase(reservationRepository, txMgr, metricsCollector, log)
	checkOutUseCase := checkOutUC.NewUseCase(reservationRepository, ledgerSvc, txMgr, metricsCollector, log)
	reportDisputeUseCase := reportDisputeUC.NewUseCase(reservationRepository, ticketRepository, txMgr, metricsCollector, log)
	resolveDisputeUseCase := resolveDisputeUC.NewUseCase(
		reservationRepository,
		ticketRepository,
		ledgerSvc,
		txMgr,
		metricsCollector,
		log,
	)
	requestWithdrawalUseCase := requestWithdrawalUC.NewUseCase(ledgerSvc, withdrawalRepository, txMgr, log)

	// Инициализируем handlers
	users := usersHandler.NewHandler(userSvc, log)
	garages := garagesHandler.NewHandler(garageSvc, log)
	reservations := reservationsHandler.NewHandler(reservationSvc, log)
	finances := financesHandler.NewHandler(financeSvc, log)
	ratings := ratingsHandler.NewHandler(ratingSvc, log)
	searchGarages := searchGaragesHandler.NewHandler(searchGaragesUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	payReservation := payReservationHandler.NewHandler(payReservationUseCase, log)
	checkIn := checkInHandler.NewHandler(checkInUseCase, log)
	checkOut := checkOutHandler.NewHandler(checkOutUseCase, log)
	reportDispute := reportDisputeHandler.NewHandler(reportDisputeUseCase, log)
	resolveDispute := resolveDisputeHandler.NewHandler(resolveDisputeUseCase, log)
	requestWithdrawal := requestWithdrawalHandler.NewHandler(requestWithdrawalUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		if err := db.PingContext(req.Context()); err != nil {
			log.Error("GET /health - database unavailable: %v", err)
			handlers.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/users/register", users.Register).Methods(http.MethodPost)
	api.HandleFunc("/users/login", users.Login).Methods(http.MethodPost)
	api.HandleFunc("/ratings/{targetType}/{targetId}", ratings.List).Methods(http.MethodGet)

	// ============================================================
	// AUTHENTICATED ROUTES (Bearer JWT)
	// ============================================================

	authenticated := api.PathPrefix("").Subrouter()
	authenticated.Use(middleware.Auth(tokens, userSvc, log))

	// KYC доступен до верификации
	authenticated.HandleFunc("/users/kyc", users.SubmitKYC).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES
	// ============================================================

	admin := authenticated.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/users/approve/{userId}", users.Approve).Methods(http.MethodPost)
	admin.HandleFunc("/finances/retiros", finances.AllWithdrawals).Methods(http.MethodGet)
	admin.HandleFunc("/finances/billetera/retiros/{id}/aprobar", finances.ApproveWithdrawal).Methods(http.MethodPost)
	admin.HandleFunc("/finances/billetera/{userId}/auditoria", finances.Audit).Methods(http.MethodGet)
	admin.HandleFunc("/support/tickets/{id}/resolver", resolveDispute.Handle).Methods(http.MethodPost)

	// ============================================================
	// VERIFIED ROUTES (KYC одобрен)
	// ============================================================

	verified := authenticated.PathPrefix("").Subrouter()
	verified.Use(middleware.RequireVerified)

	// --- Гаражи ---
	verified.HandleFunc("/garages", garages.Create).Methods(http.MethodPost)
	// mine регистрируется раньше {id}
	verified.HandleFunc("/garages/mine", garages.ListMine).Methods(http.MethodGet)
	verified.HandleFunc("/garages/{id}", garages.Get).Methods(http.MethodGet)
	verified.HandleFunc("/garages/{id}/horarios", garages.SetSchedule).Methods(http.MethodPost)
	verified.HandleFunc("/garages/{id}/servicios", garages.AddService).Methods(http.MethodPost)
	verified.HandleFunc("/garages/{id}/bloquear-fecha", garages.BlockDate).Methods(http.MethodPost)
	verified.HandleFunc("/garages/{id}/imagenes", garages.AddImage).Methods(http.MethodPost)

	// --- Поиск ---
	verified.HandleFunc("/search", searchGarages.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	verified.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	verified.HandleFunc("/reservations", reservations.List).Methods(http.MethodGet)
	verified.HandleFunc("/reservations/{id}", reservations.Get).Methods(http.MethodGet)
	verified.HandleFunc("/reservations/{id}/pagar", payReservation.Handle).Methods(http.MethodPost)

	// --- Операции ---
	verified.HandleFunc("/operations/{reservationId}/check-in", checkIn.Handle).Methods(http.MethodPost)
	verified.HandleFunc("/operations/{reservationId}/check-out", checkOut.Handle).Methods(http.MethodPost)

	// --- Финансы ---
	verified.HandleFunc("/finances/billetera", finances.Wallet).Methods(http.MethodGet)
	verified.HandleFunc("/finances/billetera/retiros", finances.MyWithdrawals).Methods(http.MethodGet)
	verified.HandleFunc("/finances/billetera/retiros", requestWithdrawal.Handle).Methods(http.MethodPost)

	// --- Поддержка ---
	verified.HandleFunc("/support/reservas/{id}/disputa", reportDispute.Handle).Methods(http.MethodPost)
	verified.HandleFunc("/support/reservas/{id}/calificar", ratings.Rate).Methods(http.MethodPost)

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
	close(stopMetricsCh)

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
