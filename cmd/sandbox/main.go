package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-currency-convert/docs"
	"github.com/sbilibin2017/gw-currency-convert/internal/facades"
	"github.com/sbilibin2017/gw-currency-convert/internal/handlers"
	"github.com/sbilibin2017/gw-currency-convert/internal/jwt"
	"github.com/sbilibin2017/gw-currency-convert/internal/logger"
	"github.com/sbilibin2017/gw-currency-convert/internal/middlewares"
	"github.com/sbilibin2017/gw-currency-convert/internal/repositories"
	"github.com/sbilibin2017/gw-currency-convert/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-currency-convert sandbox API
// @version 1.0.0
// @description Local emulation of the Currencycloud demo endpoints used by convertfunds
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		gwHost, gwPort,
		jwtSecret, jwtExp,
		rateCacheTTL, quoteSpread,
		kafkaBrokers, kafkaTopic,
		seedLoginID, seedAPIKey,
		err := parseConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse config: %v\n", err)
		os.Exit(2)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		gwHost, gwPort,
		jwtSecret, jwtExp,
		rateCacheTTL, quoteSpread,
		kafkaBrokers, kafkaTopic,
		seedLoginID, seedAPIKey,
	); err != nil {
		fmt.Fprintf(os.Stderr, "application stopped with error: %v\n", err)
		os.Exit(1)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting sandbox version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, database, Redis, gRPC, JWT, pricing, Kafka and seed configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	gwHost, gwPort string,
	jwtSecretKey string, jwtExpSecond int,
	rateCacheTTLSecond int, quoteSpread decimal.Decimal,
	kafkaBrokers []string, kafkaTopic string,
	seedLoginID, seedAPIKey string,
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
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// gRPC config
	gwHost = getEnv("GW_EXCHANGER_HOST", "localhost")
	gwPort = getEnv("GW_EXCHANGER_PORT", "50051")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "1800")); err != nil {
		return
	}

	// Pricing config
	if rateCacheTTLSecond, err = strconv.Atoi(getEnv("RATE_CACHE_TTL_SECOND", "60")); err != nil {
		return
	}
	if quoteSpread, err = decimal.NewFromString(getEnv("QUOTE_SPREAD", "0.005")); err != nil {
		return
	}
	if quoteSpread.IsNegative() || quoteSpread.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		err = fmt.Errorf("QUOTE_SPREAD must be in [0, 1), got %s", quoteSpread)
		return
	}

	// Kafka config, publishing is disabled without brokers
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				kafkaBrokers = append(kafkaBrokers, b)
			}
		}
	}
	kafkaTopic = getEnv("KAFKA_TOPIC", "conversions")

	// Seed contact
	seedLoginID = getEnv("SEED_LOGIN_ID", "development@currencycloud.com")
	seedAPIKey = getEnv("SEED_API_KEY", "deadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef")

	return
}

// run initializes the logger, database, Redis, gRPC client, Kafka writer and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	gwHost, gwPort string,
	jwtSecretKey string, jwtExpSecond int,
	rateCacheTTLSecond int, quoteSpread decimal.Decimal,
	kafkaBrokers []string, kafkaTopic string,
	seedLoginID, seedAPIKey string,
) error {
	if err := logger.Initialize(logLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)

	if err := repositories.Migrate(ctx, db); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}

	// Connect to gRPC service
	grpcAddr := fmt.Sprintf("%s:%s", gwHost, gwPort)
	conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("failed to connect to gRPC service at %s: %w", grpcAddr, err)
	}
	defer conn.Close()
	exchangeClient := pb.NewExchangeServiceClient(conn)

	// Kafka writer
	var kafkaWriter services.KafkaWriter
	if len(kafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(kafkaBrokers...),
			Topic:                  kafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		log.Infof("Publishing conversion events to %s on %v", kafkaTopic, kafkaBrokers)
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	contactReadRepo := repositories.NewContactReadRepository(db)
	contactWriteRepo := repositories.NewContactWriteRepository(db)
	conversionWriteRepo := repositories.NewConversionWriteRepository(db, middlewares.GetTxFromContext)
	rateCacheRepo := repositories.NewExchangeRateCacheRepository(rdb, time.Duration(rateCacheTTLSecond)*time.Second)
	denylistRepo := repositories.NewSessionDenylistRepository(rdb)

	// Initialize facades
	rateFacade := facades.NewExchangeRatesGRPCFacade(exchangeClient)

	// Initialize services
	authService := services.NewAuthService(contactReadRepo, contactWriteRepo, tokens, denylistRepo)
	quoteService := services.NewQuoteService(rateFacade, rateCacheRepo, quoteSpread)
	conversionService := services.NewConversionService(conversionWriteRepo, quoteService, kafkaWriter)

	if seedLoginID != "" {
		if err := authService.Register(ctx, seedLoginID, seedAPIKey); err != nil {
			return fmt.Errorf("failed to seed contact: %w", err)
		}
		log.Infof("Seeded contact %s", seedLoginID)
	}

	// Initialize handlers
	authenticateHandler := handlers.NewAuthenticateHandler(authService)
	closeSessionHandler := handlers.NewCloseSessionHandler(authService, middlewares.GetClaimsFromContext)
	detailedRateHandler := handlers.NewDetailedRateHandler(quoteService)
	createConversionHandler := handlers.NewCreateConversionHandler(conversionService, middlewares.GetClaimsFromContext, middlewares.GetRequestIDFromContext)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	// Public routes
	handlers.RegisterAuthenticateHandler(r, authenticateHandler)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokens, denylistRepo))
		handlers.RegisterCloseSessionHandler(r, closeSessionHandler)
		handlers.RegisterDetailedRateHandler(r, detailedRateHandler)

		r.Group(func(r chi.Router) {
			r.Use(middlewares.TxMiddleware(db))
			handlers.RegisterCreateConversionHandler(r, createConversionHandler)
		})
	})

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", appHost, appPort)
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
		log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown failed: %w", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
