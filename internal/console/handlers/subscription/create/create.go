// Package create реализует обработчик консольной команды add.
//
// Handler принимает JSON с полями формы, передаёт их сервису и печатает
// идентификатор новой подписки. Ошибки проверки печатаются в виде сообщения,
// после исправления которого команду можно повторить.
package create

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

// Handler обрабатывает команду создания подписки.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики создания подписки
}

// Service описывает интерфейс бизнес-логики создания подписки.
type Service interface {
	Create(ctx context.Context, req models.DummyEntry) (string, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// Serve декодирует JSON из аргумента и создаёт подписку.
func (h *Handler) Serve(ctx context.Context, w io.Writer, arg string) {
	const op = "handlers.subscription.create"

	log := h.log.With(
		slog.String("op", op),
		sl.RequestID(middlewarectx.GetReqID(ctx)),
	)

	var req models.DummyEntry
	if err := render.DecodeJSON(strings.NewReader(arg), &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		_ = response.Write(w, response.Error("JSON өгөгдлийг уншиж чадсангүй"))
		return
	}
	log.Debug("request body decoded", slog.Any("request", req))

	id, err := h.service.Create(ctx, req)
	if err != nil {
		log.Info("failed to create subscription", sl.Err(err))
		_ = response.Write(w, response.FromError(err))
		return
	}

	log.Info("success to create subscription", slog.String("id", id))
	_ = response.Write(w, response.OK(id))
}
