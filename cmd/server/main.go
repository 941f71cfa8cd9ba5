package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging
	"time"    // Session TTL durations

	"tourism_backend/internal/api"        // Custom package for API handlers
	"tourism_backend/internal/cache"      // Advisory Redis cache
	"tourism_backend/internal/config"     // Custom package for configuration
	"tourism_backend/internal/metrics"    // Prometheus collectors
	"tourism_backend/internal/middleware" // Custom package for middleware
	"tourism_backend/internal/repository" // Data-access layer
	"tourism_backend/internal/service"    // Business services
	"tourism_backend/internal/session"    // Session registry

	"github.com/gin-gonic/gin"                   // Gin web framework
	"github.com/prometheus/client_golang/prometheus" // Metrics registry
	"github.com/redis/go-redis/v9"               // Redis client
	"github.com/sirupsen/logrus"                 // Logrus for structured logging
	"gorm.io/driver/mysql"                       // MySQL driver for GORM
	"gorm.io/gorm"                               // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Shared infrastructure
	sessions := session.NewRedisRegistry(redisClient)
	store := cache.NewStore(redisClient)
	sessionTTL := time.Duration(cfg.SessionTTLMins) * time.Minute

	// Repositories and services
	userRepo := repository.NewUserRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	authSvc := service.NewAuthService(userRepo, sessions, cfg.JWTSecret, sessionTTL)
	bookingSvc := service.NewBookingService(bookingRepo, store)
	reviewSvc := service.NewReviewService(reviewRepo)

	// Metrics and rate limiting
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)
	loginLimiter := middleware.NewLoginRateLimiter(30, 10) // 30 attempts/min per IP
	defer loginLimiter.Stop()

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance
	r.Use(collector.Middleware())

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Auth routes
	r.POST("/signup", api.SignupHandler(authSvc))                          // Registration endpoint
	r.POST("/login", loginLimiter.Middleware(), api.LoginHandler(authSvc)) // Login endpoint, rate limited
	r.POST("/logout", api.LogoutHandler(authSvc))                          // Logout endpoint, idempotent
	r.POST("/forgot", api.ForgotPasswordHandler(authSvc))                  // Password reset endpoint

	// Session-gated routes
	protected := r.Group("/")
	protected.Use(middleware.SessionAuthMiddleware(authSvc))
	protected.GET("/protected", api.ProtectedHandler())                    // Session check endpoint
	protected.POST("/bookings", api.CreateBookingHandler(bookingSvc))      // Create booking
	protected.GET("/bookings/:user_id", api.ListBookingsHandler(bookingSvc))
	protected.GET("/bookings/:user_id/latest", api.GetLatestBookingHandler(bookingSvc))
	protected.GET("/booking/:id", api.GetBookingHandler(bookingSvc))
	protected.PUT("/booking/:id", api.UpdateBookingHandler(bookingSvc))
	protected.DELETE("/booking/:id", api.DeleteBookingHandler(bookingSvc))
	protected.POST("/reviews", api.AddReviewHandler(reviewSvc)) // Add review

	// Public routes
	r.GET("/reviews/:destination", api.ListReviewsHandler(reviewSvc)) // Public review listing
	r.POST("/chatbot", api.ChatbotHandler(authSvc))                   // Canned-response chatbot
	r.POST("/destinations/recommend", api.RecommendHandler())         // Interest-based recommendations
	r.GET("/health", api.HealthHandler(db, redisClient))              // Dependency health
	r.GET("/metrics", gin.WrapH(metrics.Handler(registry)))           // Prometheus scrape endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
