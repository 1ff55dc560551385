// Package money содержит разбор и форматирование денежных сумм в каноническом
// виде: знак доллара, целая часть и, опционально, ровно две цифры после точки.
package money

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Symbol префикс денежной суммы.
const Symbol = "$"

var (
	// ErrFormat возвращается, если текст не соответствует каноническому виду.
	ErrFormat = errors.New("amount is not in canonical currency format")

	canonical = regexp.MustCompile(`^\$\d+(\.\d{2})?$`)

	// Minimum наименьшая допустимая сумма регулярного платежа.
	Minimum = decimal.RequireFromString("0.01")
)

// IsCanonical сообщает, записана ли сумма в виде $ddd или $ddd.dd.
func IsCanonical(text string) bool {
	return canonical.MatchString(text)
}

// Parse разбирает сумму в каноническом виде. Текст без $ отклоняется.
func Parse(text string) (decimal.Decimal, error) {
	const op = "money.Parse"

	if !IsCanonical(text) {
		return decimal.Zero, fmt.Errorf("%s: %q: %w", op, text, ErrFormat)
	}
	d, err := decimal.NewFromString(strings.TrimPrefix(text, Symbol))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", op, err)
	}
	return d, nil
}

// Format возвращает сумму с двумя знаками после точки, например $35.00.
func Format(d decimal.Decimal) string {
	return Symbol + d.StringFixed(2)
}

// BelowMinimum сообщает, меньше ли сумма Minimum.
func BelowMinimum(d decimal.Decimal) bool {
	return d.LessThan(Minimum)
}
