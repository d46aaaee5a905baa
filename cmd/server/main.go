package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SAP-F-2025/submission-relay/internal/config"
	"github.com/SAP-F-2025/submission-relay/internal/handlers"
	"github.com/SAP-F-2025/submission-relay/internal/services"
	"github.com/SAP-F-2025/submission-relay/internal/utils"
	"github.com/SAP-F-2025/submission-relay/internal/validator"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.NewLogger("production", os.Stderr).Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := utils.NewLogger(cfg.Environment, os.Stdout)
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	location, err := cfg.Location()
	if err != nil {
		logger.Warn("Falling back to UTC", "error", err)
	}

	sender, err := cfg.Telegram.CreateSender(logger.Slog())
	if err != nil {
		// Delivery is best effort; run unconfigured rather than refuse to start.
		logger.LogError(err, "Failed to create Telegram sender, delivery disabled")
	}
	if sender != nil {
		defer func() {
			if err := sender.Close(); err != nil {
				logger.LogError(err, "Failed to close sender")
			}
		}()
	}

	relayService := services.NewRelayService(
		sender,
		services.NewFormatter(time.Now, location),
		logger.Slog(),
		validator.New(),
	)

	router := handlers.NewHandlerManager(relayService, logger).NewRouter()

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		logger.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.LogError(err, "Shutdown error")
		}
	}()

	logger.Info("Submission relay started",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"telegram_configured", relayService.Configured())

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.LogError(err, "Server error")
		os.Exit(1)
	}
	<-shutdownDone
	logger.Info("Server gracefully stopped")
}
