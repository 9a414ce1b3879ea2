package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"smartparker-api/cache"
	"smartparker-api/config"
	"smartparker-api/database"
	"smartparker-api/middleware"
	"smartparker-api/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed database with test data (optional - for development)
	if cfg.SeedData {
		if err := database.SeedData(db); err != nil {
			log.Printf("Warning: Failed to seed database: %v", err)
		}
	}

	// Response cache: Redis when configured, in-process otherwise
	var store cache.Store
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		store = cache.NewRedisStore(rdb, cache.WithTTL(cfg.CacheTTL))
		log.Printf("Using Redis response cache at %s", cfg.RedisAddr)
	} else {
		store = cache.NewMemoryStore(cfg.CacheTTL)
		log.Print("Using in-process response cache")
	}

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()

	// Middleware
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Setup routes
	routes.SetupRoutes(router, db, store)

	// Start server
	log.Printf("Starting SmartParker API server on port %s", cfg.Port)
	log.Printf("Health check available at: http://localhost:%s/ping", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
