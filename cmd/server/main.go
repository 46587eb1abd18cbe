package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/venturelink/venturelink-api/internal/api"
	"github.com/venturelink/venturelink-api/internal/database"
	"github.com/venturelink/venturelink-api/internal/jobs"
	"github.com/venturelink/venturelink-api/internal/logger"
	"github.com/venturelink/venturelink-api/internal/middleware"
	"github.com/venturelink/venturelink-api/internal/services"
	"github.com/venturelink/venturelink-api/pkg/config"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize configuration
	cfg := config.New()

	// Initialize logger
	appLog := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Initialize database
	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		appLog.Fatal("Failed to connect to database", err)
	}
	defer db.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		appLog.Fatal("Failed to run migrations", err)
	}

	// Optional Redis match cache
	var redisClient *redis.Client
	if cfg.HasRedis() {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			appLog.Fatal("Invalid Redis URL", err)
		}
		redisClient = redis.NewClient(opts)
		defer redisClient.Close()
		appLog.Info("match cache enabled", "ttl", cfg.MatchCacheTTL)
	}

	// Create centralized services
	svcs := services.NewServices(db.DB, cfg, redisClient, appLog)

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.GetTrustedProxies()); err != nil {
		appLog.Fatal("Failed to configure trusted proxies", err)
	}
	r.Use(middleware.RequestLoggingMiddleware(appLog))
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.CORSMiddleware(cfg))
	r.Use(gin.Recovery())

	// Setup API routes
	api.SetupRoutes(r, db, svcs, cfg)

	// Start the commitment expiry sweeper
	sweeper := jobs.NewCommitmentSweeper(svcs.Commitment, cfg.SweepInterval, appLog)
	sweeper.Start()
	defer sweeper.Stop()

	// Stop the sweeper cleanly on SIGINT/SIGTERM
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		sweeper.Stop()
		os.Exit(0)
	}()

	appLog.Info("server starting", "port", cfg.Port, "environment", cfg.Environment)
	if err := r.Run(":" + cfg.Port); err != nil {
		appLog.Fatal("Failed to start server", err)
	}
}
