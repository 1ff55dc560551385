// Package validation проверяет поля подписки, введённые пользователем, до того как
// они попадут в хранилище.
//
// Проверки выполняются в фиксированном порядке: имя клиента, телефон, формат суммы,
// минимальная сумма, дата. Проверка останавливается на первой ошибке, поэтому
// пользователь всегда видит ровно одно предсказуемое сообщение.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator"
	"github.com/shopspring/decimal"

	"github.com/magabrotheeeer/subscription-manager/internal/lib/money"
	"github.com/magabrotheeeer/subscription-manager/internal/models"
)

// ErrorKind классифицирует ошибку проверки.
type ErrorKind int

const (
	InvalidCustomer ErrorKind = iota + 1
	InvalidPhone
	InvalidRecurringFormat
	RecurringTooSmall
	InvalidDate
)

var (
	ErrInvalidCustomer        = errors.New("invalid customer")
	ErrInvalidPhone           = errors.New("invalid phone")
	ErrInvalidRecurringFormat = errors.New("invalid recurring format")
	ErrRecurringTooSmall      = errors.New("recurring too small")
	ErrInvalidDate            = errors.New("invalid date")
)

var kinds = map[ErrorKind]struct {
	name     string
	sentinel error
	message  string
}{
	InvalidCustomer: {
		name:     "InvalidCustomer",
		sentinel: ErrInvalidCustomer,
		message:  "Хэрэглэгчийн нэр дутуу байна.",
	},
	InvalidPhone: {
		name:     "InvalidPhone",
		sentinel: ErrInvalidPhone,
		message:  "Утасны дугаарыг зөв оруулна уу (8 оронтой).",
	},
	InvalidRecurringFormat: {
		name:     "InvalidRecurringFormat",
		sentinel: ErrInvalidRecurringFormat,
		message:  "Дахин төлбөрийг зөв оруулна уу (жишээ: $35.00).",
	},
	RecurringTooSmall: {
		name:     "RecurringTooSmall",
		sentinel: ErrRecurringTooSmall,
		message:  "Дахин төлбөрийн дүн $0.01-аас бага байж болохгүй.",
	},
	InvalidDate: {
		name:     "InvalidDate",
		sentinel: ErrInvalidDate,
		message:  "Дараагийн огноог зөв оруулна уу (жишээ: 09-25-2025).",
	},
}

func (k ErrorKind) String() string {
	if d, ok := kinds[k]; ok {
		return d.name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Message возвращает текст, который показывается пользователю для данного вида ошибки.
func Message(k ErrorKind) string {
	return kinds[k].message
}

// Error описывает первое нарушение, найденное при проверке.
type Error struct {
	Kind  ErrorKind
	Field string // Имя поля формы
	Value string // Значение в том виде, в каком оно пришло
}

func (e *Error) Error() string {
	return Message(e.Kind)
}

// Unwrap позволяет сравнивать ошибку с ErrInvalidPhone и другими через errors.Is.
func (e *Error) Unwrap() error {
	return kinds[e.Kind].sentinel
}

// KindOf возвращает вид ошибки проверки. Для прочих ошибок ok == false.
func KindOf(err error) (ErrorKind, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr.Kind, true
	}
	return 0, false
}

// Пользовательские теги, регистрируемые в New.
const (
	TagCurrency = "currency"
	TagDate     = "usdate"
	TagPlan     = "plan"
	TagStatus   = "status"
	TagKind     = "kind"
)

// New создаёт валидатор с зарегистрированными тегами currency, usdate, plan, status и kind.
func New() *validator.Validate {
	v := validator.New()

	mustRegister(v, TagCurrency, func(fl validator.FieldLevel) bool {
		return money.IsCanonical(fl.Field().String())
	})
	mustRegister(v, TagDate, func(fl validator.FieldLevel) bool {
		_, err := time.Parse(models.DateLayout, fl.Field().String())
		return err == nil
	})
	mustRegister(v, TagPlan, func(fl validator.FieldLevel) bool {
		_, err := models.ParsePlan(fl.Field().String())
		return err == nil
	})
	mustRegister(v, TagStatus, func(fl validator.FieldLevel) bool {
		_, err := models.ParseStatus(fl.Field().String())
		return err == nil
	})
	mustRegister(v, TagKind, func(fl validator.FieldLevel) bool {
		_, err := models.ParseKind(fl.Field().String())
		return err == nil
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

// Validator выполняет упорядоченную проверку полей подписки.
// Значение без состояния; один экземпляр можно переиспользовать.
type Validator struct {
	validate *validator.Validate
}

// NewValidator создаёт Validator.
func NewValidator() *Validator {
	return &Validator{validate: New()}
}

var std = NewValidator()

// Validate проверяет поля стандартным валидатором пакета.
func Validate(customer, phone, nextDate, recurring string) error {
	return std.Validate(customer, phone, nextDate, recurring)
}

// Validate проверяет имя, телефон, сумму и дату и возвращает *Error для первого нарушения.
func (v *Validator) Validate(customer, phone, nextDate, recurring string) error {
	if v.validate.Var(strings.TrimSpace(customer), "required,min=2") != nil {
		return &Error{Kind: InvalidCustomer, Field: "customer", Value: customer}
	}
	if v.validate.Var(phone, "len=8,number") != nil {
		return &Error{Kind: InvalidPhone, Field: "phone", Value: phone}
	}
	if v.validate.Var(recurring, "required,"+TagCurrency) != nil {
		return &Error{Kind: InvalidRecurringFormat, Field: "recurring", Value: recurring}
	}
	amount, err := money.Parse(recurring)
	if err != nil {
		return &Error{Kind: InvalidRecurringFormat, Field: "recurring", Value: recurring}
	}
	if money.BelowMinimum(amount) {
		return &Error{Kind: RecurringTooSmall, Field: "recurring", Value: recurring}
	}
	if v.validate.Var(nextDate, "required,"+TagDate) != nil {
		return &Error{Kind: InvalidDate, Field: "next_date", Value: nextDate}
	}
	return nil
}

// ParseDate разбирает дату в формате MM-DD-YYYY.
func ParseDate(text string) (time.Time, error) {
	t, err := time.Parse(models.DateLayout, text)
	if err != nil {
		return time.Time{}, &Error{Kind: InvalidDate, Field: "next_date", Value: text}
	}
	return t, nil
}

// FormatDate возвращает дату в формате MM-DD-YYYY.
func FormatDate(t time.Time) string {
	return t.Format(models.DateLayout)
}

// ParseRecurring разбирает сумму в каноническом виде ($35.00).
func ParseRecurring(text string) (decimal.Decimal, error) {
	d, err := money.Parse(text)
	if err != nil {
		return decimal.Zero, &Error{Kind: InvalidRecurringFormat, Field: "recurring", Value: text}
	}
	return d, nil
}

// FormatRecurring возвращает сумму в каноническом виде.
func FormatRecurring(d decimal.Decimal) string {
	return money.Format(d)
}
