// Package list реализует обработчик консольных команд list и search.
//
// Аргумент команды используется как ключевое слово поиска. Пустое ключевое
// слово выводит полный список подписок в порядке добавления.
package list

import (
	"context"
	"io"
	"log/slog"

	"github.com/magabrotheeeer/subscription-manager/internal/console/middlewarectx"
	"github.com/magabrotheeeer/subscription-manager/internal/console/response"
	"github.com/magabrotheeeer/subscription-manager/internal/lib/sl"
	"github.com/magabrotheeeer/subscription-manager/internal/models"
)

// Handler печатает подписки таблицей.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики поиска подписок.
type Service interface {
	Search(ctx context.Context, keyword string) ([]models.Subscription, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) Serve(ctx context.Context, w io.Writer, arg string) {
	const op = "handlers.subscription.list"

	log := h.log.With(
		slog.String("op", op),
		sl.RequestID(middlewarectx.GetReqID(ctx)),
	)

	subs, err := h.service.Search(ctx, arg)
	if err != nil {
		log.Error("failed to list subscriptions", sl.Err(err))
		_ = response.Write(w, response.FromError(err))
		return
	}

	log.Debug("success to list subscriptions", slog.Int("list_count", len(subs)))
	if err := response.Table(w, subs); err != nil {
		log.Error("failed to render subscriptions", sl.Err(err))
	}
}
