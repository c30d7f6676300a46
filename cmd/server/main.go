// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"snaplens-backend/internal/config"
	"snaplens-backend/internal/database"
	"snaplens-backend/internal/handlers"
	"snaplens-backend/internal/repository"
	"snaplens-backend/internal/routes"
	"snaplens-backend/internal/services"
)

func initLogger(env string) *zap.Logger {
	var config zap.Config

	if env == "production" {
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	} else {
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	// Customize time format
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	return logger
}

func main() {
	// Initialize logger first
	logger := initLogger(os.Getenv("ENV"))
	defer logger.Sync() // Flush any buffered log entries

	// Replace global logger
	zap.ReplaceGlobals(logger)

	logger.Info("Starting snaplens-backend server")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully",
		zap.String("host", cfg.Server.Host),
		zap.String("port", cfg.Server.Port))

	if cfg.SerpAPI.Key == "" {
		logger.Warn("SERPAPI_KEY is not set; visual search requests will fail")
	}
	if cfg.Lemon.WebhookSecret == "" {
		logger.Warn("LEMON_WEBHOOK_SECRET is not set; payment webhooks will be rejected")
	}

	// Initialize database
	db, err := database.NewMongoDB(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Close(ctx); err != nil {
			logger.Error("Error closing database connection", zap.Error(err))
		}
	}()

	logger.Info("Successfully connected to MongoDB")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetCollection("users"))

	// Initialize services
	userService := services.NewUserService(userRepo)
	authService := services.NewAuthService(userRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	creditsService := services.NewCreditsService(userRepo)
	wishlistService := services.NewWishlistService(userRepo)
	paymentService := services.NewPaymentService(cfg, creditsService)

	// Initialize external API services
	imageHostService := services.NewImageHostAPIService(cfg)
	serpAPIService := services.NewSerpAPIService(cfg)
	lensService := services.NewLensService(cfg, imageHostService, serpAPIService)

	logger.Info("All services initialized successfully")

	// Initialize handlers
	handlers := &routes.Handlers{
		Health:   handlers.NewHealthHandler(),
		Auth:     handlers.NewAuthHandler(userService, authService),
		User:     handlers.NewUserHandler(userService),
		Credits:  handlers.NewCreditsHandler(creditsService),
		Wishlist: handlers.NewWishlistHandler(wishlistService),
		Lens:     handlers.NewLensHandler(lensService),
		Payments: handlers.NewPaymentsHandler(paymentService),
	}

	// Setup routes
	router := routes.SetupRoutes(handlers, cfg.Auth.JWTSecret)

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Starting HTTP server",
			zap.String("address", serverAddr))

		// Log available endpoints
		endpoints := []struct {
			method      string
			path        string
			description string
		}{
			{"GET", "/", "Health check"},
			{"GET", "/health", "Health check"},
			{"GET", "/metrics", "Prometheus metrics"},
			{"POST", "/api/auth/signup", "Register a new account"},
			{"POST", "/api/auth/signin", "Sign in, returns a session token"},
			{"GET", "/api/auth/me", "Identity behind a session token"},
			{"GET", "/api/user", "Account profile and credit balance"},
			{"POST", "/api/credits/debit", "Debit credits from an account"},
			{"GET", "/api/wishlist", "List wishlist items"},
			{"POST", "/api/wishlist", "Add a wishlist item"},
			{"DELETE", "/api/wishlist", "Remove a wishlist item"},
			{"GET", "/api/lens", "Visual search status probe"},
			{"POST", "/api/lens", "Visual search by uploaded image"},
			{"POST", "/api/payments/lemonsqueezy/create", "Build a checkout URL"},
			{"POST", "/api/payments/lemonsqueezy/webhook", "Signed payment webhook"},
		}

		logger.Info("Available endpoints", zap.Int("count", len(endpoints)))
		for _, endpoint := range endpoints {
			logger.Debug("Endpoint registered",
				zap.String("method", endpoint.method),
				zap.String("path", endpoint.path),
				zap.String("description", endpoint.description))
		}

		logger.Info("CORS enabled for all origins")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Received shutdown signal, shutting down server gracefully")

	// Gracefully shutdown the server with a timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}
