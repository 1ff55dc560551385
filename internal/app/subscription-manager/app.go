// Package subscriptionmanager собирает зависимости менеджера подписок и запускает консоль.
package subscriptionmanager

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/magabrotheeeer/subscription-manager/internal/config"
	"github.com/magabrotheeeer/subscription-manager/internal/console"
	"github.com/magabrotheeeer/subscription-manager/internal/console/handlers/subscription/create"
	"github.com/magabrotheeeer/subscription-manager/internal/console/handlers/subscription/list"
	"github.com/magabrotheeeer/subscription-manager/internal/console/handlers/subscription/read"
	"github.com/magabrotheeeer/subscription-manager/internal/console/handlers/subscription/remove"
	"github.com/magabrotheeeer/subscription-manager/internal/console/handlers/subscription/stats"
	"github.com/magabrotheeeer/subscription-manager/internal/console/handlers/subscription/update"
	"github.com/magabrotheeeer/subscription-manager/internal/console/middlewarectx"
	"github.com/magabrotheeeer/subscription-manager/internal/console/router"
	"github.com/magabrotheeeer/subscription-manager/internal/metrics"
	subservice "github.com/magabrotheeeer/subscription-manager/internal/services/subscription"
	"github.com/magabrotheeeer/subscription-manager/internal/storage/memory"
)

// App приложение менеджера подписок.
type App struct {
	console *console.Console
	logger  *slog.Logger
	metrics *metrics.Collector
	service *subservice.SubscriptionService
}

// New создаёт хранилище, сервис и консоль и загружает начальные записи из конфигурации.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, in io.Reader, out io.Writer) (*App, error) {
	const op = "app.New"

	m := metrics.New()
	subscriptionService := subservice.NewSubscriptionService(memory.New(), m, logger)

	if err := subscriptionService.Seed(ctx, cfg.Seed); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	r := router.New()
	RegisterCommands(r, logger, subscriptionService, m)

	return &App{
		console: console.New(r, in, out, cfg.Console.Prompt, logger),
		logger:  logger,
		metrics: m,
		service: subscriptionService,
	}, nil
}

// RegisterCommands регистрирует все команды консоли.
func RegisterCommands(r *router.Router, logger *slog.Logger, subscriptionService *subservice.SubscriptionService, m *metrics.Collector) {
	r.Use(
		middlewarectx.RequestID,
		middlewarectx.Logger(logger),
		middlewarectx.Recoverer(logger),
	)

	r.Handle(list.New(logger, subscriptionService), "list", "search")
	r.Handle(read.New(logger, subscriptionService), "show")
	r.Handle(create.New(logger, subscriptionService), "add")
	r.Handle(update.New(logger, subscriptionService), "edit")
	r.Handle(remove.New(logger, subscriptionService), "remove")
	r.Handle(stats.New(logger, m), "stats")
}

// Run запускает консоль и блокируется до её завершения.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("console starting")
	if err := a.console.Run(ctx); err != nil {
		return err
	}
	a.logger.Info("console stopped")
	return nil
}
