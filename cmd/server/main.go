package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/billow-app/billow/internal/auth"
	"github.com/billow-app/billow/internal/config"
	"github.com/billow-app/billow/internal/database"
	"github.com/billow-app/billow/internal/handlers"
	"github.com/billow-app/billow/internal/logger"
	"github.com/billow-app/billow/internal/middleware"
	"github.com/billow-app/billow/internal/redis"
	"github.com/billow-app/billow/internal/service"
	"github.com/billow-app/billow/internal/storage"
)

func main() {
	log := logger.New("billow-server")
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: %v", err)
	}

	if cfg.Auth.JWTSecret == "" {
		cfg.Auth.JWTSecret = "your-secret-key-change-in-production"
		log.Warn("JWT_SECRET not set, using default (insecure for production)")
	}

	if err := database.Migrate(ctx, cfg.Database.PrimaryDSN); err != nil {
		log.Fatal("Failed to run migrations: %v", err)
	}

	dbManager, err := database.NewDBManager(ctx, database.Config{
		PrimaryDSN:      cfg.Database.PrimaryDSN,
		ReplicaDSNs:     cfg.Database.ReplicaDSNs,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
	})
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer dbManager.Close()

	var rateLimiter *middleware.RateLimiter
	if cfg.Redis.Addr != "" {
		redisClient, err := redis.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()

		rateLimiter = middleware.NewRateLimiter(
			redisClient.GetClient(),
			cfg.RateLimit.Requests,
			cfg.RateLimit.Window,
		)
	} else {
		log.Warn("REDIS_ADDR not set, rate limiting disabled")
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	userStorage := storage.NewPostgresUserStorage(dbManager)
	invoiceStorage := storage.NewPostgresInvoiceStorage(dbManager)

	router := handlers.NewRouter(handlers.RouterConfig{
		Auth:           handlers.NewAuthHandler(service.NewAuthService(userStorage, jwtManager)),
		Invoices:       handlers.NewInvoiceHandler(service.NewInvoiceService(invoiceStorage)),
		AuthMiddleware: middleware.NewAuthMiddleware(jwtManager, userStorage),
		RateLimiter:    rateLimiter,
		CORSOrigins:    cfg.Server.CORSOrigins,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: middleware.Recovery(log)(router),
	}

	go func() {
		log.Info("Listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Forced shutdown: %v", err)
	}

	log.Info("Server stopped")
}
