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

	"github.com/NithinS0/Skill-Hive/internal/handlers"

	"github.com/NithinS0/Skill-Hive/internal/jwt"
	"github.com/NithinS0/Skill-Hive/internal/logger"
	"github.com/NithinS0/Skill-Hive/internal/repositories"
	"github.com/NithinS0/Skill-Hive/internal/services"

	"github.com/NithinS0/Skill-Hive/internal/middlewares"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title Skill-Hive API
// @version 1.0.0
// @description Backend for matching household work requests with skilled workers
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
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

// config holds the application, database, Redis, Kafka, logging, JWT, and
// bootstrap admin configuration.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PgHost         string
	PgPort         int
	PgUser         string
	PgPassword     string
	PgDB           string
	PgMaxOpenConns int
	PgMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	SkillCacheTTL     time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	JWTSecretKey string
	JWTExp       time.Duration

	AdminUsername string
	AdminPassword string
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
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PgUser = getEnv("POSTGRES_USER", "user")
	cfg.PgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PgDB = getEnv("POSTGRES_DB", "skillhive")
	if cfg.PgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.PgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.PgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	var cacheTTLSecond int
	if cacheTTLSecond, err = strconv.Atoi(getEnv("SKILL_CACHE_TTL_SECOND", "300")); err != nil {
		return
	}
	cfg.SkillCacheTTL = time.Duration(cacheTTLSecond) * time.Second

	// Kafka config. Empty broker list disables event publishing.
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "work-request-events")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	var jwtExpSecond int
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}
	cfg.JWTExp = time.Duration(jwtExpSecond) * time.Second

	// Bootstrap admin config. Empty username disables seeding.
	cfg.AdminUsername = getEnv("ADMIN_USERNAME", "")
	cfg.AdminPassword = getEnv("ADMIN_PASSWORD", "")

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

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PgUser, cfg.PgPassword, cfg.PgHost, cfg.PgPort, cfg.PgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", cfg.PgHost, cfg.PgPort, cfg.PgDB)

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

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for lifecycle events, optional
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:     kafka.TCP(cfg.KafkaBrokers...),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka event publishing enabled, topic %s", cfg.KafkaTopic)
	} else {
		logger.Log.Info("Kafka brokers not configured, event publishing disabled")
	}

	// Initialize JWT service
	jwtSvc := jwt.New(cfg.JWTSecretKey, cfg.JWTExp)

	// Initialize repositories
	credReadRepo := repositories.NewCredentialReadRepository(db)
	credWriteRepo := repositories.NewCredentialWriteRepository(db, middlewares.GetTxFromContext)
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	workerReadRepo := repositories.NewWorkerReadRepository(db)
	workerWriteRepo := repositories.NewWorkerWriteRepository(db, middlewares.GetTxFromContext)
	skillReadRepo := repositories.NewSkillReadRepository(db)
	skillWriteRepo := repositories.NewSkillWriteRepository(db, middlewares.GetTxFromContext)
	skillCacheRepo := repositories.NewSkillCacheRepository(rdb, cfg.SkillCacheTTL)
	requestReadRepo := repositories.NewWorkRequestReadRepository(db)
	requestWriteRepo := repositories.NewWorkRequestWriteRepository(db, middlewares.GetTxFromContext)
	notificationReadRepo := repositories.NewNotificationReadRepository(db)
	notificationWriteRepo := repositories.NewNotificationWriteRepository(db, middlewares.GetTxFromContext)
	feedbackReadRepo := repositories.NewFeedbackReadRepository(db)
	feedbackWriteRepo := repositories.NewFeedbackWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	authService := services.NewAuthService(credReadRepo, credWriteRepo, userWriteRepo, workerWriteRepo, skillReadRepo, jwtSvc)
	profileService := services.NewProfileService(credReadRepo, userReadRepo, userWriteRepo, workerReadRepo, workerWriteRepo, skillReadRepo)
	skillService := services.NewSkillService(skillReadRepo, skillWriteRepo, skillCacheRepo)
	requestService := services.NewWorkRequestService(
		requestReadRepo, requestWriteRepo,
		credReadRepo, userReadRepo, workerReadRepo, skillReadRepo,
		notificationWriteRepo, kafkaWriter,
	)
	notificationService := services.NewNotificationService(notificationReadRepo, notificationWriteRepo, credReadRepo, userReadRepo, workerReadRepo)
	feedbackService := services.NewFeedbackService(feedbackReadRepo, feedbackWriteRepo, requestReadRepo, credReadRepo, workerReadRepo)
	adminService := services.NewAdminService(userReadRepo, workerReadRepo, credWriteRepo, requestWriteRepo)

	// Seed the bootstrap admin account when configured
	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		if err := authService.EnsureBootstrapAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			logger.Log.Fatal("bootstrap admin seeding failed:", err)
		}
	}

	// Initialize handlers
	registerUserHandler := handlers.NewRegisterUserHandler(authService)
	registerWorkerHandler := handlers.NewRegisterWorkerHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)

	listSkillsHandler := handlers.NewListSkillsHandler(skillService)
	createSkillHandler := handlers.NewCreateSkillHandler(skillService, jwtSvc)
	updateSkillHandler := handlers.NewUpdateSkillHandler(skillService, jwtSvc)
	deleteSkillHandler := handlers.NewDeleteSkillHandler(skillService, jwtSvc)

	getUserHandler := handlers.NewGetUserHandler(profileService, jwtSvc)
	updateUserHandler := handlers.NewUpdateUserHandler(profileService, jwtSvc)
	getWorkerHandler := handlers.NewGetWorkerHandler(profileService, jwtSvc)
	getWorkerSkillsHandler := handlers.NewGetWorkerSkillsHandler(profileService, jwtSvc)
	updateWorkerHandler := handlers.NewUpdateWorkerHandler(profileService, jwtSvc)
	updateWorkerStatusHandler := handlers.NewUpdateWorkerStatusHandler(profileService, jwtSvc)

	createRequestHandler := handlers.NewCreateWorkRequestHandler(requestService, jwtSvc)
	listUserRequestsHandler := handlers.NewListUserRequestsHandler(requestService, jwtSvc)
	listAvailableHandler := handlers.NewListAvailableRequestsHandler(requestService, jwtSvc)
	listWorkerRequestsHandler := handlers.NewListWorkerRequestsHandler(requestService, jwtSvc)
	acceptHandler := handlers.NewAcceptWorkRequestHandler(requestService, jwtSvc)
	declineHandler := handlers.NewDeclineWorkRequestHandler(requestService, jwtSvc)
	completeHandler := handlers.NewCompleteWorkRequestHandler(requestService, jwtSvc)
	cancelHandler := handlers.NewCancelWorkRequestHandler(requestService, jwtSvc)
	setArrivalHandler := handlers.NewSetArrivalTimeHandler(requestService, jwtSvc)
	confirmArrivalHandler := handlers.NewConfirmArrivalHandler(requestService, jwtSvc)

	listUserNotificationsHandler := handlers.NewListUserNotificationsHandler(notificationService, jwtSvc)
	listWorkerNotificationsHandler := handlers.NewListWorkerNotificationsHandler(notificationService, jwtSvc)
	markNotificationReadHandler := handlers.NewMarkNotificationReadHandler(notificationService, jwtSvc)

	submitFeedbackHandler := handlers.NewSubmitFeedbackHandler(feedbackService, jwtSvc)
	getFeedbackHandler := handlers.NewGetFeedbackHandler(feedbackService, jwtSvc)
	listWorkerFeedbackHandler := handlers.NewListWorkerFeedbackHandler(feedbackService, jwtSvc)

	adminListUsersHandler := handlers.NewAdminListUsersHandler(adminService, jwtSvc)
	adminListWorkersHandler := handlers.NewAdminListWorkersHandler(adminService, jwtSvc)
	adminDeleteUserHandler := handlers.NewAdminDeleteUserHandler(adminService, jwtSvc)
	adminDeleteWorkerHandler := handlers.NewAdminDeleteWorkerHandler(adminService, jwtSvc)
	adminListRequestsHandler := handlers.NewAdminListRequestsHandler(requestService, jwtSvc)
	adminListNotificationsHandler := handlers.NewAdminListNotificationsHandler(notificationService, jwtSvc)
	adminListFeedbackHandler := handlers.NewAdminListFeedbackHandler(feedbackService, jwtSvc)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	authMiddleware := middlewares.AuthMiddleware(jwtSvc)
	txMiddleware := middlewares.TxMiddleware(db)

	// Public routes. Registration runs inside a transaction: credential
	// and profile are inserted together.
	r.Post("/login", loginHandler)
	r.Group(func(r chi.Router) {
		r.Use(txMiddleware)
		r.Post("/register/user", registerUserHandler)
		r.Post("/register/worker", registerWorkerHandler)
	})

	// Protected routes with JWT middleware

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)

		// Read-only routes
		r.Get("/skills", listSkillsHandler)
		r.Get("/users/{user_id}", getUserHandler)
		r.Get("/users/{user_id}/requests", listUserRequestsHandler)
		r.Get("/users/{user_id}/notifications", listUserNotificationsHandler)
		r.Get("/workers/me", getWorkerHandler)
		r.Get("/workers/me/skills", getWorkerSkillsHandler)
		r.Get("/worker/requests", listWorkerRequestsHandler)
		r.Get("/worker/requests/available", listAvailableHandler)
		r.Get("/worker/notifications", listWorkerNotificationsHandler)
		r.Get("/worker/feedback", listWorkerFeedbackHandler)
		r.Get("/requests/{request_id}/feedback", getFeedbackHandler)
		r.Get("/admin/users", adminListUsersHandler)
		r.Get("/admin/workers", adminListWorkersHandler)
		r.Get("/admin/requests", adminListRequestsHandler)
		r.Get("/admin/notifications", adminListNotificationsHandler)
		r.Get("/admin/feedback", adminListFeedbackHandler)

		// Mutating routes run inside a transaction
		r.Group(func(r chi.Router) {
			r.Use(txMiddleware)

			r.Post("/skills", createSkillHandler)
			r.Put("/skills/{skill_id}", updateSkillHandler)
			r.Delete("/skills/{skill_id}", deleteSkillHandler)

			r.Put("/users/{user_id}", updateUserHandler)
			r.Put("/workers/me", updateWorkerHandler)
			r.Put("/workers/me/status", updateWorkerStatusHandler)

			r.Post("/users/{user_id}/requests", createRequestHandler)
			r.Post("/users/{user_id}/requests/{request_id}/cancel", cancelHandler)
			r.Post("/users/{user_id}/requests/{request_id}/confirm-arrival", confirmArrivalHandler)
			r.Post("/users/{user_id}/feedback", submitFeedbackHandler)

			r.Post("/worker/requests/{request_id}/accept", acceptHandler)
			r.Post("/worker/requests/{request_id}/decline", declineHandler)
			r.Post("/worker/requests/{request_id}/complete", completeHandler)
			r.Put("/worker/requests/{request_id}/arrival-time", setArrivalHandler)

			r.Post("/notifications/{notification_id}/read", markNotificationReadHandler)

			r.Delete("/admin/users/{user_id}", adminDeleteUserHandler)
			r.Delete("/admin/workers/{worker_id}", adminDeleteWorkerHandler)
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
