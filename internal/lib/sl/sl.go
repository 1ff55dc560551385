// Package sl содержит вспомогательные атрибуты для логгера slog.
package sl

import "log/slog"

// Err возвращает атрибут "error" с текстом ошибки.
// Для nil возвращается пустая строка, чтобы логирование не падало.
//
// Пример:
//
//	log.Error("failed to create subscription", sl.Err(err))
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

// Op возвращает атрибут "op" с именем операции.
func Op(op string) slog.Attr {
	return slog.String("op", op)
}

// RequestID возвращает атрибут "request_id" для связи записей одной команды.
func RequestID(id string) slog.Attr {
	return slog.String("request_id", id)
}
