package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"papermark-backend/internal/api/routes"
	"papermark-backend/internal/auth"
	"papermark-backend/internal/config"
	"papermark-backend/internal/database"
	"papermark-backend/internal/email"
	"papermark-backend/internal/jobs"
	"papermark-backend/internal/logger"
	"papermark-backend/internal/metrics"
	"papermark-backend/internal/pdf"
	"papermark-backend/internal/service"
	"papermark-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	_ "papermark-backend/docs" // This is needed for swag
)

//	@title			Papermark Backend API
//	@version		1.0
//	@description	Backend API for Papermark: document sharing links, datarooms, view analytics, webhooks and billing.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	AGPL-3.0
//	@license.url	https://www.gnu.org/licenses/agpl-3.0.html

//	@host		localhost:7008
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	redisClient := connectRedis(ctx, cfg.RedisURL)

	store, err := storage.New(ctx, cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize storage:", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.RegisterCollectors(registry)

	scheduler := jobs.NewScheduler(schedulerConfig(cfg))

	infra := &routes.Infrastructure{
		DB:        db,
		Redis:     redisClient,
		Storage:   store,
		Mailer:    email.NewSender(cfg),
		PDF:       pdf.NewProcessor(),
		Scheduler: scheduler,
		Registry:  registry,
	}
	if cfg.StripeEnabled() {
		infra.Stripe = service.NewStripeClient(cfg.StripeSecretKey, cfg.StripeWebhookSecret)
	} else {
		logrus.Info("Stripe is not configured, billing endpoints are disabled")
	}
	if cfg.GoogleClientID != "" && cfg.GoogleClientSecret != "" {
		infra.Google = auth.NewGoogleProvider(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.BaseURL+"/api/auth/google/callback")
	}

	services, err := routes.NewServices(cfg, infra)
	if err != nil {
		logrus.Fatal("Failed to initialize services:", err)
	}

	// Background jobs; the scheduler always runs because webhook deliveries
	// and view notifications are queued on it, the periodic trigger is optional.
	routes.RegisterJobs(scheduler, services)
	if err := scheduler.Start(ctx); err != nil {
		logrus.Fatal("Failed to start job scheduler:", err)
	}
	var trigger *jobs.Trigger
	if cfg.JobsEnabled {
		trigger = jobs.NewTrigger(scheduler, jobs.DefaultTasks(), 30*time.Second)
		if err := trigger.Start(ctx); err != nil {
			logrus.Fatal("Failed to start job trigger:", err)
		}
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(cfg, infra, services)

	port := cfg.Port
	if port == "" {
		port = "7008"
	}
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server shutdown failed")
	}
	if trigger != nil {
		if err := trigger.Stop(shutdownCtx); err != nil {
			logrus.WithError(err).Warn("Job trigger shutdown failed")
		}
	}
	if err := scheduler.Stop(shutdownCtx); err != nil {
		logrus.WithError(err).Warn("Job scheduler shutdown failed")
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logrus.Info("Server stopped")
}

// connectRedis returns nil when url is empty or unreachable; callers fall back to in-memory state
func connectRedis(ctx context.Context, url string) *redis.Client {
	if url == "" {
		logrus.Info("REDIS_URL not set, using in-memory rate limits and sessions")
		return nil
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		logrus.Fatal("Invalid REDIS_URL:", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logrus.WithError(err).Warn("Redis is unreachable, using in-memory fallbacks")
		_ = client.Close()
		return nil
	}
	return client
}

func schedulerConfig(cfg *config.Config) jobs.SchedulerConfig {
	sc := jobs.DefaultSchedulerConfig()
	if cfg.JobWorkers > 0 {
		sc.Workers = cfg.JobWorkers
	}
	return sc
}
