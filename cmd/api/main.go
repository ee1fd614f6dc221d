package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/joshua-takyi/eventconnect/internal/config"
	"github.com/joshua-takyi/eventconnect/internal/connect"
	"github.com/joshua-takyi/eventconnect/internal/container"
	"github.com/joshua-takyi/eventconnect/internal/helpers"
	"github.com/joshua-takyi/eventconnect/internal/notify"
	"github.com/joshua-takyi/eventconnect/internal/routes"
	"github.com/joshua-takyi/eventconnect/internal/services"
	"github.com/joshua-takyi/eventconnect/internal/store"
)

func main() {
	// Load environment variables
	_ = godotenv.Load(".env.local")

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg)
	slog.SetDefault(logger)
	logger.Info("Starting EventConnect API server", "environment", cfg.Environment, "storage", cfg.Storage.Backend)

	ctx := context.Background()

	kv, err := connect.OpenStorage(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Error("Failed to open storage", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}

	data, err := store.Open(ctx, kv, store.Options{Prefix: cfg.Storage.Prefix, Logger: logger})
	if err != nil {
		logger.Error("Failed to load data", "error", err)
		os.Exit(1)
	}

	tokens := helpers.NewTokenIssuer([]byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL)
	if cfg.Auth.JWKSURL != "" {
		if err := tokens.WithJWKS(ctx, cfg.Auth.JWKSURL, logger); err != nil {
			logger.Error("Failed to load JWKS", "url", cfg.Auth.JWKSURL, "error", err)
			os.Exit(1)
		}
	}
	defer tokens.Close()

	var uploader services.ImageUploader
	cld, err := connect.CloudinaryCredentials(cfg.Cloudinary)
	if err != nil {
		logger.Error("Failed to connect to Cloudinary", "error", err)
		os.Exit(1)
	}
	if cld != nil {
		uploader = helpers.NewCloudinaryUploader(cld)
		logger.Info("Cloudinary uploads enabled")
	}

	var publisher notify.Publisher
	stopForward := func() {}
	nc, err := connect.NATSConnect(cfg.NATSURL, logger)
	if err != nil {
		logger.Error("Failed to connect to NATS", "error", err)
		os.Exit(1)
	}
	if nc != nil {
		publisher = notify.NewNATSPublisher(nc, logger)
		stopForward = notify.Forward(ctx, data, publisher, logger)
		logger.Info("Forwarding changes to NATS", "url", cfg.NATSURL)
	}

	appContainer := container.NewContainer(container.Options{
		Logger: logger,
		KV:     kv,
		Data:   data,
		Tokens: tokens,
		Auth: services.AuthOptions{
			Prefix:  cfg.Storage.Prefix,
			Latency: cfg.Auth.Latency,
		},
		Uploader:      uploader,
		CORSOrigins:   cfg.CORSOrigins,
		SecureCookies: cfg.IsProduction(),
	})

	if err := appContainer.AuthService.Restore(ctx); err != nil {
		logger.Error("Failed to restore session", "error", err)
	}
	logger.Debug("Auth state restored", "state", appContainer.AuthService.State())

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := routes.SetupRoutes(appContainer)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}
	stopForward()
	if publisher != nil {
		if err := publisher.Close(); err != nil {
			logger.Error("Error draining NATS", "error", err)
		}
	}
	if err := kv.Close(shutdownCtx); err != nil {
		logger.Error("Error closing storage", "error", err)
	}

	logger.Info("Server exited")
}

func setupLogger(cfg *config.Config) *slog.Logger {
	level := parseLevel(cfg.LogLevel)

	var handler slog.Handler
	if cfg.IsProduction() {
		// JSON logging for production
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	return slog.New(handler)
}

func parseLevel(value string) slog.Level {
	switch strings.ToLower(value) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
