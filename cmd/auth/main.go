package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hirehub/config"
	v1 "hirehub/internal/delivery/http/v1"
	"hirehub/internal/repository/postgres"
	"hirehub/internal/usecase"
	"hirehub/pkg/database"
	"hirehub/pkg/logger"
	"hirehub/pkg/mailqueue"
	"hirehub/pkg/redis"
	"hirehub/pkg/storage"
	"hirehub/pkg/token"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init("auth")
	logger.Log.Info("Starting auth service", "port", cfg.Port)

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := postgres.Migrate(context.Background(), dbPool); err != nil {
		logger.Log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}

	files, err := storage.NewClient(context.Background(), storage.Config{
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		Region:          cfg.S3Region,
		Bucket:          cfg.S3Bucket,
		Endpoint:        cfg.S3Endpoint,
	})
	if err != nil {
		logger.Log.Error("Failed to configure object storage", "error", err)
		os.Exit(1)
	}

	queue, err := mailqueue.Connect(cfg.AMQPUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to message broker", "error", err)
		os.Exit(1)
	}
	defer queue.Close()

	userRepo := postgres.NewUserRepository(dbPool)
	tokens := token.NewManager(cfg.JWTSecret)
	authUC := usecase.NewAuthUsecase(userRepo, tokens, files, queue, cfg.FrontendURL)

	router := v1.NewAuthRouter(cfg, tokens, authUC)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down auth service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}
}
