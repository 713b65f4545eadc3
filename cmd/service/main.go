// cmd/service/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github-profile-analyzer/internal/ai"
	"github-profile-analyzer/internal/api"
	"github-profile-analyzer/internal/config"
	"github-profile-analyzer/internal/github"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Application startup error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Initialize structured logger
	logLevel := new(slog.LevelVar)
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	// 2. Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	setLogLevel(cfg.LogLevel, logLevel)
	logger.Info("Configuration loaded successfully")

	if cfg.GithubToken == "" {
		logger.Warn("GITHUB_TOKEN not set, using unauthenticated GitHub API rate limits")
	}

	// 3. Setup context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// 4. Initialize application components
	ghClient := github.NewClient(cfg.GithubToken, logger)
	if cfg.GithubBaseURL != "" {
		if err := ghClient.OverrideBaseURL(cfg.GithubBaseURL); err != nil {
			return fmt.Errorf("invalid GITHUB_BASE_URL: %w", err)
		}
	}

	var aiClient api.VerdictClient
	if cfg.AIEnabled() {
		aiClient = ai.NewClient(cfg.AIGatewayURL, cfg.AIGatewayKey, cfg.AIModel, cfg.AITemperature, cfg.RequestTimeout, logger)
		logger.Info("AI gateway relay enabled", "model", cfg.AIModel)
	} else {
		logger.Info("AI gateway relay disabled, serving local analysis only")
	}

	router := api.NewRouter(ghClient, aiClient, logger)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// 5. Start the server in a separate goroutine
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server listening", "port", cfg.Port)
		serverErr <- server.ListenAndServe()
	}()

	// 6. Wait for shutdown signal or server failure
	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received. Exiting.")
	}

	// Allow in-flight requests to finish
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	return nil
}

func setLogLevel(level string, v *slog.LevelVar) {
	switch level {
	case "debug":
		v.Set(slog.LevelDebug)
	case "warn":
		v.Set(slog.LevelWarn)
	case "error":
		v.Set(slog.LevelError)
	default:
		v.Set(slog.LevelInfo)
	}
}
