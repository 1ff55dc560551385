// Package services содержит бизнес-логику управления подписками: проверку полей формы
// и вызовы хранилища.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator"
	"github.com/shopspring/decimal"

	"github.com/magabrotheeeer/subscription-manager/internal/lib/sl"
	"github.com/magabrotheeeer/subscription-manager/internal/metrics"
	"github.com/magabrotheeeer/subscription-manager/internal/models"
	"github.com/magabrotheeeer/subscription-manager/internal/validation"
)

// SubscriptionRepository определяет методы для работы с подписками в хранилище.
type SubscriptionRepository interface {
	// List возвращает все подписки в порядке добавления.
	List() []models.Subscription
	// Add добавляет подписку и возвращает её ID.
	Add(customer, phone string, nextDate time.Time, recurring decimal.Decimal,
		plan models.Plan, status models.Status, kind models.Kind) string
	// FindByID возвращает подписку по ID.
	FindByID(id string) (models.Subscription, bool)
	// Edit заменяет подписку по ID; false, если подписки нет.
	Edit(id, customer, phone string, nextDate time.Time, recurring decimal.Decimal,
		plan models.Plan, status models.Status, kind models.Kind) bool
	// Remove удаляет подписку по ID и возвращает количество удалённых записей.
	Remove(id string) int
	// Filter возвращает подписки, содержащие ключевое слово.
	Filter(keyword string) []models.Subscription
	// Len возвращает количество подписок.
	Len() int
}

// Metrics описывает счётчики, которые обновляет сервис.
type Metrics interface {
	ObserveOperation(operation, status string)
	ObserveValidationFailure(kind string)
	SetRecords(n int)
}

// SubscriptionService реализует бизнес-логику работы с подписками.
type SubscriptionService struct {
	repo      SubscriptionRepository
	metrics   Metrics
	validator *validation.Validator
	validate  *validator.Validate
	log       *slog.Logger
}

// NewSubscriptionService создает новый экземпляр SubscriptionService.
func NewSubscriptionService(repo SubscriptionRepository, m Metrics, log *slog.Logger) *SubscriptionService {
	return &SubscriptionService{
		repo:      repo,
		metrics:   m,
		validator: validation.NewValidator(),
		validate:  validation.New(),
		log:       log,
	}
}

type fields struct {
	customer  string
	phone     string
	nextDate  time.Time
	recurring decimal.Decimal
	plan      models.Plan
	status    models.Status
	kind      models.Kind
}

// prepare обрезает пробелы, проверяет поля и преобразует их к доменным типам.
func (s *SubscriptionService) prepare(req models.DummyEntry) (fields, error) {
	req.Customer = strings.TrimSpace(req.Customer)
	req.Phone = strings.TrimSpace(req.Phone)
	req.NextDate = strings.TrimSpace(req.NextDate)
	req.Recurring = strings.TrimSpace(req.Recurring)

	if err := s.validator.Validate(req.Customer, req.Phone, req.NextDate, req.Recurring); err != nil {
		return fields{}, err
	}
	if err := s.validate.Struct(req); err != nil {
		return fields{}, err
	}

	nextDate, err := validation.ParseDate(req.NextDate)
	if err != nil {
		return fields{}, err
	}
	recurring, err := validation.ParseRecurring(req.Recurring)
	if err != nil {
		return fields{}, err
	}
	plan, err := models.ParsePlan(req.Plan)
	if err != nil {
		return fields{}, err
	}
	status, err := models.ParseStatus(req.Status)
	if err != nil {
		return fields{}, err
	}
	kind, err := models.ParseKind(req.Kind)
	if err != nil {
		return fields{}, err
	}

	return fields{
		customer:  req.Customer,
		phone:     req.Phone,
		nextDate:  nextDate,
		recurring: recurring,
		plan:      plan,
		status:    status,
		kind:      kind,
	}, nil
}

// reject фиксирует отклонённую форму в логах и метриках.
func (s *SubscriptionService) reject(log *slog.Logger, operation string, err error) {
	s.metrics.ObserveOperation(operation, metrics.StatusInvalid)
	if kind, ok := validation.KindOf(err); ok {
		s.metrics.ObserveValidationFailure(kind.String())
		log.Info("subscription form rejected", slog.String("kind", kind.String()))
		return
	}
	s.metrics.ObserveValidationFailure("InvalidSelection")
	log.Info("subscription form rejected", sl.Err(err))
}

// Create проверяет форму, добавляет подписку и возвращает её ID.
func (s *SubscriptionService) Create(ctx context.Context, req models.DummyEntry) (string, error) {
	const op = "services.subscription.Create"
	log := s.log.With(sl.Op(op))

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	f, err := s.prepare(req)
	if err != nil {
		s.reject(log, "create", err)
		return "", fmt.Errorf("%s: %w", op, err)
	}

	id := s.repo.Add(f.customer, f.phone, f.nextDate, f.recurring, f.plan, f.status, f.kind)
	s.metrics.ObserveOperation("create", metrics.StatusOK)
	s.metrics.SetRecords(s.repo.Len())

	log.Info("created new subscription", slog.String("id", id))
	return id, nil
}

// Update проверяет форму и заменяет подписку с заданным ID.
// Неизвестный ID не считается ошибкой: хранилище остаётся без изменений.
func (s *SubscriptionService) Update(ctx context.Context, id string, req models.DummyEntry) error {
	const op = "services.subscription.Update"
	log := s.log.With(sl.Op(op), slog.String("id", id))

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	f, err := s.prepare(req)
	if err != nil {
		s.reject(log, "update", err)
		return fmt.Errorf("%s: %w", op, err)
	}

	if !s.repo.Edit(id, f.customer, f.phone, f.nextDate, f.recurring, f.plan, f.status, f.kind) {
		s.metrics.ObserveOperation("update", metrics.StatusNoop)
		log.Debug("subscription not found, nothing to update")
		return nil
	}

	s.metrics.ObserveOperation("update", metrics.StatusOK)
	log.Info("updated subscription")
	return nil
}

// Remove удаляет подписку по ID и возвращает количество удалённых записей.
// Неизвестный ID не считается ошибкой.
func (s *SubscriptionService) Remove(ctx context.Context, id string) (int, error) {
	const op = "services.subscription.Remove"
	log := s.log.With(sl.Op(op), slog.String("id", id))

	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	count := s.repo.Remove(id)
	if count == 0 {
		s.metrics.ObserveOperation("remove", metrics.StatusNoop)
		log.Debug("subscription not found, nothing to remove")
		return 0, nil
	}

	s.metrics.ObserveOperation("remove", metrics.StatusOK)
	s.metrics.SetRecords(s.repo.Len())
	log.Info("removed subscription", slog.Int("count", count))
	return count, nil
}

// Read возвращает подписку по ID или nil, если её нет.
func (s *SubscriptionService) Read(ctx context.Context, id string) (*models.Subscription, error) {
	const op = "services.subscription.Read"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sub, ok := s.repo.FindByID(id)
	if !ok {
		return nil, nil
	}
	return &sub, nil
}

// List возвращает все подписки.
func (s *SubscriptionService) List(ctx context.Context) ([]models.Subscription, error) {
	const op = "services.subscription.List"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.repo.List(), nil
}

// Search возвращает подписки по ключевому слову.
// Пустое ключевое слово означает полный список.
func (s *SubscriptionService) Search(ctx context.Context, keyword string) ([]models.Subscription, error) {
	const op = "services.subscription.Search"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return s.repo.List(), nil
	}

	res := s.repo.Filter(keyword)
	s.log.Debug("filtered subscriptions", sl.Op(op),
		slog.String("keyword", keyword), slog.Int("count", len(res)))
	return res, nil
}

// Seed загружает начальные подписки через Create, так что они проходят ту же проверку.
func (s *SubscriptionService) Seed(ctx context.Context, entries []models.DummyEntry) error {
	const op = "services.subscription.Seed"

	for i, entry := range entries {
		if _, err := s.Create(ctx, entry); err != nil {
			return fmt.Errorf("%s: entry %d: %w", op, i, err)
		}
	}
	s.log.Info("seeded subscriptions", sl.Op(op), slog.Int("count", len(entries)))
	return nil
}
