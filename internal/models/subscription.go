// Package models содержит доменную модель подписки, перечисления плана, статуса и типа,
// а также структуру для приёма сырых данных формы до их проверки и преобразования.
package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/magabrotheeeer/subscription-manager/internal/lib/money"
)

// DateLayout задаёт канонический формат даты следующего платежа (MM-DD-YYYY).
const DateLayout = "01-02-2006"

var (
	// ErrUnknownPlan возвращается, если метка плана не входит в перечисление.
	ErrUnknownPlan = errors.New("unknown plan")
	// ErrUnknownStatus возвращается, если метка статуса не входит в перечисление.
	ErrUnknownStatus = errors.New("unknown status")
	// ErrUnknownKind возвращается, если метка типа не входит в перечисление.
	ErrUnknownKind = errors.New("unknown kind")
)

// Plan описывает периодичность списания. Значение совпадает с отображаемой меткой.
type Plan string

const (
	PlanMonthly Plan = "Сар бүр"
	PlanYearly  Plan = "Жил бүр"
)

// Plans перечисляет планы в порядке отображения в форме.
var Plans = []Plan{PlanMonthly, PlanYearly}

// ParsePlan преобразует метку в Plan.
func ParsePlan(label string) (Plan, error) {
	for _, p := range Plans {
		if string(p) == label {
			return p, nil
		}
	}
	return "", ErrUnknownPlan
}

// Status состояние подписки.
type Status string

const (
	StatusActive    Status = "Идэвхтэй"
	StatusScheduled Status = "Төлөвлөсөн"
	StatusClosed    Status = "Хаагдсан"
)

// Statuses перечисляет статусы в порядке отображения в форме.
var Statuses = []Status{StatusActive, StatusScheduled, StatusClosed}

// ParseStatus преобразует метку в Status.
func ParseStatus(label string) (Status, error) {
	for _, s := range Statuses {
		if string(s) == label {
			return s, nil
		}
	}
	return "", ErrUnknownStatus
}

// Kind различает продукт и услугу.
// Влияет только на отображаемую метку типа.
type Kind int

const (
	KindProduct Kind = iota
	KindService
)

var kindLabels = map[Kind]string{
	KindProduct: "Бүтээгдэхүүн",
	KindService: "Үйлчилгээ",
}

// Kinds перечисляет типы в порядке отображения в форме.
var Kinds = []Kind{KindProduct, KindService}

// Label возвращает отображаемую метку типа.
func (k Kind) Label() string {
	return kindLabels[k]
}

func (k Kind) String() string {
	return k.Label()
}

// ParseKind преобразует метку в Kind без учёта регистра.
func ParseKind(label string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(k.Label(), label) {
			return k, nil
		}
	}
	return 0, ErrUnknownKind
}

// Columns содержит заголовки столбцов таблицы подписок.
var Columns = []string{
	"Дугаар",
	"Хэрэглэгч",
	"Утас",
	"Дараагийн огноо",
	"Дахин төлбөр",
	"Төлөвлөгөө",
	"Төлөв",
	"Төрөл",
}

// Subscription представляет собой запись о подписке.
// После создания запись не изменяется: редактирование заменяет её новой.
type Subscription struct {
	ID        string          // Идентификатор вида S0001, назначается хранилищем
	Customer  string          // Имя клиента
	Phone     string          // Телефон, ровно 8 цифр
	NextDate  time.Time       // Дата следующего платежа
	Recurring decimal.Decimal // Сумма регулярного платежа
	Plan      Plan
	Status    Status
	Kind      Kind
}

// TypeLabel возвращает метку типа подписки.
func (s Subscription) TypeLabel() string {
	return s.Kind.Label()
}

// NextDateText возвращает дату следующего платежа в каноническом виде.
func (s Subscription) NextDateText() string {
	return s.NextDate.Format(DateLayout)
}

// RecurringText возвращает сумму в каноническом виде, например $35.00.
func (s Subscription) RecurringText() string {
	return money.Format(s.Recurring)
}

// Row возвращает значения столбцов в порядке Columns.
func (s Subscription) Row() []string {
	return []string{
		s.ID,
		s.Customer,
		s.Phone,
		s.NextDateText(),
		s.RecurringText(),
		string(s.Plan),
		string(s.Status),
		s.TypeLabel(),
	}
}

// DummyEntry используется для приёма данных формы (или JSON) до проверки.
// Все поля приходят строками; даты и суммы парсятся после валидации.
// Теги plan, status и kind регистрируются в пакете validation.
type DummyEntry struct {
	Customer  string `json:"customer" yaml:"customer"`
	Phone     string `json:"phone" yaml:"phone"`
	NextDate  string `json:"next_date" yaml:"next_date"`
	Recurring string `json:"recurring" yaml:"recurring"`
	Plan      string `json:"plan" yaml:"plan" validate:"required,plan"`
	Status    string `json:"status" yaml:"status" validate:"required,status"`
	Kind      string `json:"kind" yaml:"kind" validate:"required,kind"`
}
