// Package middlewarectx содержит middleware консоли: идентификатор команды,
// журналирование и перехват паник.
//
// RequestID кладёт в контекст UUID, по которому записи логов одной команды
// связываются между собой. Logger пишет итог выполнения, Recoverer превращает
// панику обработчика в сообщение об ошибке, не завершая консоль.
package middlewarectx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/subscription-manager/internal/console/response"
	"github.com/magabrotheeeer/subscription-manager/internal/console/router"
	"github.com/magabrotheeeer/subscription-manager/internal/lib/sl"
)

// Key тип для ключей контекста команды.
type Key string

const (
	// RequestIDKey — ключ для идентификатора команды в контексте
	RequestIDKey Key = "request_id"
)

// GetReqID возвращает идентификатор команды или пустую строку.
func GetReqID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// RequestID добавляет в контекст новый идентификатор команды.
func RequestID(next router.Handler) router.Handler {
	return router.HandlerFunc(func(ctx context.Context, w io.Writer, arg string) {
		ctx = context.WithValue(ctx, RequestIDKey, uuid.NewString())
		next.Serve(ctx, w, arg)
	})
}

// Logger возвращает middleware, который пишет в лог имя команды и время выполнения.
func Logger(log *slog.Logger) router.Middleware {
	return func(next router.Handler) router.Handler {
		return router.HandlerFunc(func(ctx context.Context, w io.Writer, arg string) {
			start := time.Now()
			next.Serve(ctx, w, arg)
			log.Debug("command completed",
				slog.String("command", router.Command(ctx)),
				sl.RequestID(GetReqID(ctx)),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// Recoverer возвращает middleware, который перехватывает панику обработчика.
func Recoverer(log *slog.Logger) router.Middleware {
	return func(next router.Handler) router.Handler {
		return router.HandlerFunc(func(ctx context.Context, w io.Writer, arg string) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("command panicked",
						slog.String("command", router.Command(ctx)),
						sl.RequestID(GetReqID(ctx)),
						sl.Err(fmt.Errorf("%v", rec)),
					)
					_ = response.Write(w, response.Error("дотоод алдаа"))
				}
			}()
			next.Serve(ctx, w, arg)
		})
	}
}
