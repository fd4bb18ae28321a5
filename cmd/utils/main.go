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
	"hirehub/internal/mailer"
	"hirehub/internal/usecase"
	"hirehub/pkg/ai"
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

	logger.Init("utils")
	logger.Log.Info("Starting utils service", "port", cfg.Port)

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

	// The utils binary doubles as the mail relay: it drains the send-mail
	// queue and hands each message to SMTP.
	sender := mailer.NewSMTPSender(cfg)
	if !sender.IsConfigured() {
		logger.Log.Warn("SMTP not fully configured - outbound mail will fail")
	}
	go func() {
		if err := queue.Consume(sender); err != nil {
			logger.Log.Error("Mail consumer stopped", "error", err)
		}
	}()

	advisor := ai.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	utilsUC := usecase.NewUtilsUsecase(files, advisor)

	tokens := token.NewManager(cfg.JWTSecret)
	router := v1.NewUtilsRouter(cfg, tokens, utilsUC)

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
	logger.Log.Info("Shutting down utils service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}
}
