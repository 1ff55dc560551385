// Package response содержит вспомогательные функции для формирования ответов консоли:
// сообщений об успехе, ошибок, ошибок валидации и таблицы подписок.
package response

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/subscription-manager/internal/models"
	"github.com/magabrotheeeer/subscription-manager/internal/validation"
)

const (
	// StatusOK — значение статуса для успешного ответа.
	StatusOK = "OK"
	// StatusError — значение статуса для ответа с ошибкой.
	StatusError = "Error"

	errorTitle = "Алдаа"
)

// Response описывает ответ на одну команду консоли.
type Response struct {
	Status  string
	Message string
}

// OK возвращает успешный Response с сообщением.
func OK(msg string) Response {
	return Response{
		Status:  StatusOK,
		Message: msg,
	}
}

// Error возвращает Response с ошибкой и переданным сообщением.
func Error(msg string) Response {
	return Response{
		Status:  StatusError,
		Message: msg,
	}
}

// ValidationError формирует Response на основе ошибок валидации полей выбора.
// Каждое нарушение превращается в человеко‑читаемый текст, объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) Response {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case validation.TagPlan:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be one of %s", err.Field(), join(models.Plans)))
		case validation.TagStatus:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be one of %s", err.Field(), join(models.Statuses)))
		case validation.TagKind:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be one of %s", err.Field(), join(models.Kinds)))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return Error(strings.Join(errsMsgs, ", "))
}

// FromError выбирает сообщение для ошибки сервиса: текст вида ошибки проверки,
// список нарушений полей выбора или общий текст для прочих ошибок.
func FromError(err error) Response {
	if kind, ok := validation.KindOf(err); ok {
		return Error(validation.Message(kind))
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return ValidationError(verrs)
	}
	return Error("Алдаа гарлаа: " + err.Error())
}

func (r Response) String() string {
	if r.Status == StatusError {
		return errorTitle + ": " + r.Message
	}
	return r.Message
}

// Write печатает ответ отдельной строкой.
func Write(w io.Writer, r Response) error {
	_, err := fmt.Fprintln(w, r.String())
	return err
}

// Table печатает подписки таблицей с заголовками models.Columns.
func Table(w io.Writer, subs []models.Subscription) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, strings.Join(models.Columns, "\t")); err != nil {
		return err
	}
	for _, sub := range subs {
		if _, err := fmt.Fprintln(tw, strings.Join(sub.Row(), "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func join[T any](values []T) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, fmt.Sprint(v))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
