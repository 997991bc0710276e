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
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/richardm/flight-search-api/internal/handlers"
	"github.com/richardm/flight-search-api/internal/jwt"
	"github.com/richardm/flight-search-api/internal/logger"
	"github.com/richardm/flight-search-api/internal/middlewares"
	"github.com/richardm/flight-search-api/internal/repositories"
	"github.com/richardm/flight-search-api/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title flight-search-api
// @version 1.0.0
// @description REST backend for the flight-search application: cookie-session auth and flight listing search
// @host localhost:4000
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// config holds all application configuration loaded from the environment.
type config struct {
	AppHost  string
	AppPort  string
	AppEnv   string
	LogLevel string

	PgHost         string
	PgPort         int
	PgUser         string
	PgPassword     string
	PgDB           string
	PgMaxOpenConns int
	PgMaxIdleConns int

	RedisHost     string
	RedisPort     int
	RedisDB       int
	RedisPassword string

	JWTSecretKey string
	JWTExpSecond int

	CookieDomain   string
	CookieSecure   bool
	CookieSameSite string

	CORSAllowedOrigins []string

	RateLimitMax          int
	RateLimitWindowSecond int

	KafkaAddr  string
	KafkaTopic string
}

// parseConfig loads environment variables from a file and returns the
// application configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "4000")
	cfg.AppEnv = getEnv("APP_ENV", "development")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PgUser = getEnv("POSTGRES_USER", "user")
	cfg.PgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PgDB = getEnv("POSTGRES_DB", "flights")
	if cfg.PgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.PgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.PgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config (rate limiter)
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")

	// JWT config: the session token and the cookie share the 7-day lifetime
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "")
	if cfg.JWTExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "604800")); err != nil {
		return
	}

	// Session cookie config
	cfg.CookieDomain = getEnv("COOKIE_DOMAIN", "")
	cfg.CookieSecure = cfg.AppEnv == "production"
	if v, ok := os.LookupEnv("COOKIE_SECURE"); ok && v != "" {
		if cfg.CookieSecure, err = strconv.ParseBool(v); err != nil {
			return
		}
	}
	cfg.CookieSameSite = getEnv("COOKIE_SAMESITE", "none")

	// CORS config
	cfg.CORSAllowedOrigins = strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"), ",")

	// Rate limit config (flights endpoints)
	if cfg.RateLimitMax, err = strconv.Atoi(getEnv("RATE_LIMIT_MAX", "100")); err != nil {
		return
	}
	if cfg.RateLimitWindowSecond, err = strconv.Atoi(getEnv("RATE_LIMIT_WINDOW_SECOND", "900")); err != nil {
		return
	}

	// Kafka config (flight events); empty address disables publishing
	cfg.KafkaAddr = getEnv("KAFKA_ADDR", "")
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "flight-events")

	if cfg.JWTSecretKey == "" {
		err = fmt.Errorf("JWT_SECRET_KEY is required")
	}
	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Session cookie settings; SameSite=None without Secure would be
	// silently dropped by browsers, refuse to start that way.
	sameSite, err := handlers.ParseSameSite(cfg.CookieSameSite)
	if err != nil {
		return err
	}
	if sameSite == http.SameSiteNoneMode && !cfg.CookieSecure {
		logger.Log.Warnw("SameSite=None without Secure; browsers will reject the session cookie outside localhost")
	}
	cookieCfg := handlers.NewCookieConfig(cfg.CookieDomain, cfg.CookieSecure, sameSite, cfg.JWTExpSecond)

	// Connect to PostgreSQL; unreachable store at boot is fatal
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PgUser, cfg.PgPassword, cfg.PgHost, cfg.PgPort, cfg.PgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", cfg.PgHost, cfg.PgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PgMaxOpenConns)
	db.SetMaxIdleConns(cfg.PgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	if err := repositories.EnsureSchema(ctx, db); err != nil {
		logger.Log.Fatal("schema bootstrap failed:", err)
	}

	// Connect to Redis (rate limiter backend)
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for flight events (optional)
	var kafkaWriter services.KafkaWriter
	if cfg.KafkaAddr != "" {
		kw := &kafka.Writer{
			Addr:     kafka.TCP(cfg.KafkaAddr),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kw.Close()
		kafkaWriter = kw
	}

	// Initialize JWT service
	sessionJWT := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	flightReadRepo := repositories.NewFlightReadRepository(db)
	flightWriteRepo := repositories.NewFlightWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, sessionJWT)
	flightService := services.NewFlightService(flightReadRepo, flightWriteRepo, kafkaWriter)

	// Initialize handlers
	signupHandler := handlers.NewSignupHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService, cookieCfg)
	meHandler := handlers.NewMeHandler(authService)
	logoutHandler := handlers.NewLogoutHandler(cookieCfg)
	flightListHandler := handlers.NewFlightListHandler(flightService)
	flightGetHandler := handlers.NewFlightGetHandler(flightService)
	flightCreateHandler := handlers.NewFlightCreateHandler(flightService)
	flightDeleteHandler := handlers.NewFlightDeleteHandler(flightService)

	authMiddleware := middlewares.AuthMiddleware(sessionJWT)
	rateLimiter := middlewares.NewRedisRateLimiter(rdb, cfg.RateLimitMax,
		time.Duration(cfg.RateLimitWindowSecond)*time.Second)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.CORSMiddleware(cfg.CORSAllowedOrigins))

	// Auth routes
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup", signupHandler)
		r.Post("/login", loginHandler)
		r.Post("/logout", logoutHandler)
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/me", meHandler)
		})
	})

	// Flight routes, rate limited as a group; only get-by-id needs a session
	r.Route("/flights", func(r chi.Router) {
		r.Use(middlewares.RateLimitMiddleware(rateLimiter))
		r.Get("/", flightListHandler)
		r.Post("/", flightCreateHandler)
		r.Delete("/{id}", flightDeleteHandler)
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/{id}", flightGetHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
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

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
