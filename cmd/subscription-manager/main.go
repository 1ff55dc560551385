// Package main запускает консольный менеджер подписок.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	subscriptionmanager "github.com/magabrotheeeer/subscription-manager/internal/app/subscription-manager"
	"github.com/magabrotheeeer/subscription-manager/internal/config"
	"github.com/magabrotheeeer/subscription-manager/internal/lib/sl"
)

func main() {
	cfg := config.MustLoad()
	logger := setupLogger(cfg.Env)

	logger.Info("starting subscription-manager", slog.String("env", cfg.Env))
	logger.Debug("debug messages are enabled")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := subscriptionmanager.New(ctx, cfg, logger, os.Stdin, os.Stdout)
	if err != nil {
		logger.Error("failed to initialize app", sl.Err(err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		logger.Error("app stopped with error", sl.Err(err))
		os.Exit(1)
	}

	logger.Info("subscription-manager stopped gracefully")
}

// setupLogger пишет в stderr, чтобы логи не смешивались с выводом консоли.
func setupLogger(env string) *slog.Logger {
	var handler slog.Handler

	switch env {
	case config.EnvDev:
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	case config.EnvProd:
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	return slog.New(handler)
}
