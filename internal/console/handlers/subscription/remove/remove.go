// Package remove реализует обработчик консольной команды remove.
//
// Handler удаляет подписку по ID и печатает количество удалённых записей.
package remove

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/subscription-manager/internal/console/middlewarectx"
	"github.com/magabrotheeeer/subscription-manager/internal/console/response"
	"github.com/magabrotheeeer/subscription-manager/internal/lib/sl"
)

// Handler обрабатывает команду удаления подписки по идентификатору.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики удаления подписки.
type Service interface {
	Remove(ctx context.Context, id string) (int, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) Serve(ctx context.Context, w io.Writer, arg string) {
	const op = "handlers.subscription.remove"

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

	res, err := h.service.Remove(ctx, id)
	if err != nil {
		log.Error("failed to delete subscription", sl.Err(err))
		_ = response.Write(w, response.FromError(err))
		return
	}

	log.Info("success to delete subscription", slog.Int("deleted entries", res))
	_ = response.Write(w, response.OK(fmt.Sprintf("Устгагдлаа: %d", res)))
}
