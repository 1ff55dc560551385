package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindLabel(t *testing.T) {
	assert.Equal(t, "Бүтээгдэхүүн", KindProduct.Label())
	assert.Equal(t, "Үйлчилгээ", KindService.Label())
	assert.Equal(t, "Үйлчилгээ", KindService.String())
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		want    Kind
		wantErr error
	}{
		{name: "product", label: "Бүтээгдэхүүн", want: KindProduct},
		{name: "service", label: "Үйлчилгээ", want: KindService},
		{name: "case insensitive", label: "бҮТЭЭГДЭХҮҮН", want: KindProduct},
		{name: "unknown", label: "Product", wantErr: ErrUnknownKind},
		{name: "empty", label: "", wantErr: ErrUnknownKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKind(tt.label)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePlanAndStatus(t *testing.T) {
	p, err := ParsePlan("Жил бүр")
	require.NoError(t, err)
	assert.Equal(t, PlanYearly, p)

	_, err = ParsePlan("Yearly")
	assert.ErrorIs(t, err, ErrUnknownPlan)

	s, err := ParseStatus("Хаагдсан")
	require.NoError(t, err)
	assert.Equal(t, StatusClosed, s)

	_, err = ParseStatus("хаагдсан")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestSubscriptionRow(t *testing.T) {
	sub := Subscription{
		ID:        "S0001",
		Customer:  "Бат Энх",
		Phone:     "99119911",
		NextDate:  time.Date(2025, time.September, 25, 0, 0, 0, 0, time.UTC),
		Recurring: decimal.NewFromInt(35),
		Plan:      PlanMonthly,
		Status:    StatusActive,
		Kind:      KindService,
	}

	row := sub.Row()

	require.Len(t, row, len(Columns))
	assert.Equal(t, []string{
		"S0001", "Бат Энх", "99119911", "09-25-2025", "$35.00", "Сар бүр", "Идэвхтэй", "Үйлчилгээ",
	}, row)
}
