package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/crosspayhq/wallet-core/internal/facades"
	"github.com/crosspayhq/wallet-core/internal/fraud"
	"github.com/crosspayhq/wallet-core/internal/handlers"
	"github.com/crosspayhq/wallet-core/internal/jwt"
	"github.com/crosspayhq/wallet-core/internal/logger"
	"github.com/crosspayhq/wallet-core/internal/metrics"
	"github.com/crosspayhq/wallet-core/internal/middlewares"
	"github.com/crosspayhq/wallet-core/internal/repositories"
	"github.com/crosspayhq/wallet-core/internal/services"
	"github.com/crosspayhq/wallet-core/internal/validation"

	_ "github.com/crosspayhq/wallet-core/docs"
	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title wallet-core API
// @version 1.0.0
// @description Ledger core for multi-currency wallets: deposits, withdrawals, conversion and transfers
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, rateCacheExpSecond,
		kafkaAddr, kafkaTopic,
		lunaURL, lunaAPIKey,
		priceURL, rateRefreshSecond, sendReconcileSecond,
		jwtSecret, jwtExpSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, rateCacheExpSecond,
		kafkaAddr, kafkaTopic,
		lunaURL, lunaAPIKey,
		priceURL, rateRefreshSecond, sendReconcileSecond,
		jwtSecret, jwtExpSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, external service, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string, rateCacheExpSecond int,
	kafkaAddr, kafkaTopic string,
	lunaURL, lunaAPIKey string,
	priceURL string, rateRefreshSecond, sendReconcileSecond int,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if rateCacheExpSecond, err = strconv.Atoi(getEnv("RATE_CACHE_EXP_SECOND", "300")); err != nil {
		return
	}

	// Kafka config
	kafkaAddr = getEnv("KAFKA_ADDR", "localhost:9092")
	kafkaTopic = getEnv("KAFKA_TOPIC", "wallet-transactions")

	// External services config
	lunaURL = getEnv("LUNA_BASE_URL", "http://localhost:8090")
	lunaAPIKey = getEnv("LUNA_API_KEY", "")
	priceURL = getEnv("PRICE_SOURCE_URL", "https://api.coingecko.com/api/v3")
	if rateRefreshSecond, err = strconv.Atoi(getEnv("RATE_REFRESH_SECOND", "300")); err != nil {
		return
	}
	if sendReconcileSecond, err = strconv.Atoi(getEnv("SEND_RECONCILE_SECOND", "30")); err != nil {
		return
	}

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, external clients and
// the HTTP server. It sets up routes, applies middleware, starts the
// background refresh loops, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string, rateCacheExpSecond int,
	kafkaAddr, kafkaTopic string,
	lunaURL, lunaAPIKey string,
	priceURL string, rateRefreshSecond, sendReconcileSecond int,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", pgHost, pgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for the transaction event stream
	kafkaWriter := &kafka.Writer{
		Addr:     kafka.TCP(kafkaAddr),
		Topic:    kafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
	defer kafkaWriter.Close()

	// Initialize JWT service
	tokener := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// External service clients
	luna := facades.NewLunaFacade(lunaURL, lunaAPIKey, 10*time.Second)
	priceSource := facades.NewPriceSourceFacade(priceURL, 10*time.Second)

	// Metrics collector
	collector := metrics.NewCollector()

	// Initialize repositories
	txManager := repositories.NewTxManager(db, 3, 50*time.Millisecond)
	walletRepo := repositories.NewWalletRepository(db, repositories.TxFromContext)
	txRepo := repositories.NewTransactionRepository(db, repositories.TxFromContext)
	rateRepo := repositories.NewExchangeRateRepository(db)
	rateCache := repositories.NewRateCacheRepository(rdb, time.Duration(rateCacheExpSecond)*time.Second)
	profileRepo := repositories.NewProfileRepository(db, repositories.TxFromContext)
	kycRepo := repositories.NewKYCRepository(db, repositories.TxFromContext)

	// Validation and fraud checks
	validator := validation.NewEngine(txRepo, profileRepo)
	fraudChecker := fraud.NewChecker(txRepo, collector)

	// Initialize services
	rateService := services.NewRateService(priceSource, rateRepo, rateCache, collector)
	ledgerService := services.NewLedgerService(
		walletRepo, txRepo, validator, fraudChecker, rateService,
		luna, txManager, kafkaWriter, collector,
	)
	accountService := services.NewAccountService(walletRepo, profileRepo, kycRepo, luna, txManager)
	reconciler := services.NewReconcilerService(txRepo, txRepo, luna)

	// Background loops
	loopCtx, stopLoops := context.WithCancel(ctx)
	defer stopLoops()
	go rateService.RunRefreshLoop(loopCtx, time.Duration(rateRefreshSecond)*time.Second)
	go reconciler.RunReconcileLoop(loopCtx, time.Duration(sendReconcileSecond)*time.Second)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	authMiddleware := middlewares.AuthMiddleware(tokener)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)

		r.Post("/wallet/crypto", handlers.NewCreateWalletHandler(accountService))
		r.Post("/wallet/deposit", handlers.NewDepositHandler(ledgerService))
		r.Post("/wallet/withdraw", handlers.NewWithdrawHandler(ledgerService))
		r.Post("/wallet/convert", handlers.NewConvertHandler(ledgerService))
		r.Post("/wallet/transfer", handlers.NewTransferHandler(ledgerService))
		r.Get("/balance", handlers.NewBalanceHandler(ledgerService))
		r.Get("/transactions", handlers.NewTransactionsHandler(ledgerService))

		r.Get("/exchange/rates", handlers.NewRatesHandler(rateService))
		r.Get("/profile", handlers.NewProfileHandler(accountService))
		r.Post("/kyc", handlers.NewSubmitKYCHandler(accountService))

		r.Post("/admin/rates/refresh", handlers.NewRefreshRatesHandler(rateService))
		r.Get("/admin/kyc/pending", handlers.NewPendingKYCHandler(accountService))
		r.Post("/admin/kyc/{document_id}/review", handlers.NewReviewKYCHandler(accountService))
	})

	r.Handle("/metrics", collector.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	stopLoops()

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
