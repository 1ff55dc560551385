// Package read реализует обработчик консольной команды show.
package read

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/subscription-manager/internal/console/middlewarectx"
	"github.com/magabrotheeeer/subscription-manager/internal/console/response"
	"github.com/magabrotheeeer/subscription-manager/internal/lib/sl"
	"github.com/magabrotheeeer/subscription-manager/internal/models"
)

// NotFound печатается, если подписки с таким ID нет.
const NotFound = "Олдсонгүй"

// Handler печатает одну подписку по ID.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения подписки.
type Service interface {
	Read(ctx context.Context, id string) (*models.Subscription, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) Serve(ctx context.Context, w io.Writer, arg string) {
	const op = "handlers.subscription.read"

	log := h.log.With(
		slog.String("op", op),
		sl.RequestID(middlewarectx.GetReqID(ctx)),
	)

	id := strings.TrimSpace(arg)
	if id == "" {
		log.Error("id is missing")
		_ = response.Write(w, response.Error("дугаар оруулна уу"))
		return
	}

	sub, err := h.service.Read(ctx, id)
	if err != nil {
		log.Error("failed to read subscription", sl.Err(err))
		_ = response.Write(w, response.FromError(err))
		return
	}
	if sub == nil {
		log.Debug("subscription not found", slog.String("id", id))
		_ = response.Write(w, response.OK(NotFound))
		return
	}

	if err := response.Table(w, []models.Subscription{*sub}); err != nil {
		log.Error("failed to render subscription", sl.Err(err))
	}
}
