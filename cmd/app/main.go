package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/levelupbd/LevelBoost_Go/internal/config"
	"github.com/levelupbd/LevelBoost_Go/internal/currency"
	"github.com/levelupbd/LevelBoost_Go/internal/database"
	"github.com/levelupbd/LevelBoost_Go/internal/database/postgres"
	"github.com/levelupbd/LevelBoost_Go/internal/handler"
	"github.com/levelupbd/LevelBoost_Go/internal/logger"
	"github.com/levelupbd/LevelBoost_Go/internal/pricing"
	"github.com/levelupbd/LevelBoost_Go/internal/server"
	"github.com/levelupbd/LevelBoost_Go/internal/settings"
)

// @title LevelBoost Pricing API
// @version 1.0
// @description Level-up price quotes with currency conversion for account boosting orders.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		false,
	))

	pool, err := database.NewPool(cfg.GetDBConnString(), database.DefaultMaxConnections, time.Minute, 30*time.Minute)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	settingsRepo := postgres.NewSettingsRepository(pool)
	currencyRepo := postgres.NewCurrencyRepository(pool)

	settingsService := settings.NewService(settingsRepo)
	pricingService := pricing.NewService(settingsService)
	rateResolver := currency.NewResolver(currencyRepo, currency.NewHTTPRateFetcher(cfg.RateProviderURL))

	handler.InitValidator()

	srv := server.NewServer(cfg.Port, cfg.APIKey, pool, pricingService, settingsService, rateResolver)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Server forced to shut down", "error", err)
	}

	slog.Info("Server stopped")
}
