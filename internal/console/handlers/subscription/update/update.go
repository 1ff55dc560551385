// Package update реализует обработчик консольной команды edit.
//
// Аргумент команды состоит из ID подписки и JSON с новыми полями формы.
// Запись с неизвестным ID не считается ошибкой: хранилище остаётся без изменений.
package update

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/subscription-manager/internal/console/middlewarectx"
	"github.com/magabrotheeeer/subscription-manager/internal/console/response"
	"github.com/magabrotheeeer/subscription-manager/internal/lib/sl"
	"github.com/magabrotheeeer/subscription-manager/internal/models"
)

// Handler отвечает за обработку команды обновления подписки.
type Handler struct {
	log     *slog.Logger // Логгер для ведения журналов и ошибок
	service Service      // Сервис бизнес-логики обновления подписок
}

// Service описывает интерфейс бизнес-логики обновления подписки.
type Service interface {
	Update(ctx context.Context, id string, req models.DummyEntry) error
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// Serve разбирает "<id> <json>" и обновляет подписку.
func (h *Handler) Serve(ctx context.Context, w io.Writer, arg string) {
	const op = "handlers.subscription.update"

	log := h.log.With(
		slog.String("op", op),
		sl.RequestID(middlewarectx.GetReqID(ctx)),
	)

	id, body, _ := strings.Cut(strings.TrimSpace(arg), " ")
	if id == "" {
		log.Error("id is missing")
		_ = response.Write(w, response.Error("дугаар оруулна уу"))
		return
	}

	var req models.DummyEntry
	if err := render.DecodeJSON(strings.NewReader(body), &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		_ = response.Write(w, response.Error("JSON өгөгдлийг уншиж чадсангүй"))
		return
	}
	log.Debug("request body decoded", slog.String("id", id), slog.Any("request", req))

	if err := h.service.Update(ctx, id, req); err != nil {
		log.Info("failed to update subscription", sl.Err(err))
		_ = response.Write(w, response.FromError(err))
		return
	}

	log.Info("success to update subscription", slog.String("id", id))
	_ = response.Write(w, response.OK("Хадгалагдлаа"))
}
