package create

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/subscription-manager/internal/models"
	"github.com/magabrotheeeer/subscription-manager/internal/validation"
)

// MockService реализует интерфейс create.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, req models.DummyEntry) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestCreateHandler(t *testing.T) {
	entry := models.DummyEntry{
		Customer:  "Бат Энх",
		Phone:     "99119911",
		NextDate:  "09-25-2025",
		Recurring: "$35.00",
		Plan:      "Сар бүр",
		Status:    "Идэвхтэй",
		Kind:      "Бүтээгдэхүүн",
	}
	body := `{"customer":"Бат Энх","phone":"99119911","next_date":"09-25-2025","recurring":"$35.00",` +
		`"plan":"Сар бүр","status":"Идэвхтэй","kind":"Бүтээгдэхүүн"}`

	tests := []struct {
		name      string
		arg       string
		setupMock func(*MockService)
		want      string
	}{
		{
			name: "успешное создание",
			arg:  body,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, entry).Return("S0003", nil).Once()
			},
			want: "S0003\n",
		},
		{
			name:      "некорректный JSON",
			arg:       `{"customer":`,
			setupMock: func(_ *MockService) {},
			want:      "Алдаа: JSON өгөгдлийг уншиж чадсангүй\n",
		},
		{
			name:      "пустой аргумент",
			arg:       "",
			setupMock: func(_ *MockService) {},
			want:      "Алдаа: JSON өгөгдлийг уншиж чадсангүй\n",
		},
		{
			name: "ошибка валидации",
			arg:  body,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, entry).
					Return("", validation.Validate("Бат Энх", "1", "09-25-2025", "$35.00")).Once()
			},
			want: "Алдаа: " + validation.Message(validation.InvalidPhone) + "\n",
		},
		{
			name: "ошибка сервиса",
			arg:  body,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, entry).Return("", errors.New("boom")).Once()
			},
			want: "Алдаа: Алдаа гарлаа: boom\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			var out bytes.Buffer
			New(newNoopLogger(), svc).Serve(context.Background(), &out, tt.arg)

			assert.Equal(t, tt.want, out.String())
			svc.AssertExpectations(t)
		})
	}
}
