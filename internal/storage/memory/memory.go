// Package memory реализует хранилище подписок в памяти процесса.
//
// Хранилище не проверяет данные: вызывающая сторона должна пропустить поля через
// пакет validation до вызова Add и Edit. Все данные теряются при завершении процесса.
//
// Store не защищён от конкурентного доступа. Им владеет один поток (консоль);
// при использовании из нескольких горутин доступ нужно оборачивать внешним мьютексом.
package memory

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/magabrotheeeer/subscription-manager/internal/models"
)

// IDPrefix префикс идентификатора подписки.
const IDPrefix = "S"

// Store хранит подписки в порядке добавления.
type Store struct {
	subs []models.Subscription
	seq  int
}

// New создаёт пустое хранилище.
func New() *Store {
	return &Store{}
}

// List возвращает все подписки в порядке добавления.
// Возвращается копия среза, изменение её элементов не влияет на хранилище.
func (s *Store) List() []models.Subscription {
	return slices.Clone(s.subs)
}

// Len возвращает количество подписок.
func (s *Store) Len() int {
	return len(s.subs)
}

// Add создаёт подписку, назначает ей новый идентификатор и возвращает его.
// Счётчик идентификаторов только растёт, поэтому после удаления номера не переиспользуются.
func (s *Store) Add(customer, phone string, nextDate time.Time, recurring decimal.Decimal,
	plan models.Plan, status models.Status, kind models.Kind) string {
	id := s.nextID()
	s.subs = append(s.subs, build(id, customer, phone, nextDate, recurring, plan, status, kind))
	return id
}

// FindByID возвращает подписку с заданным идентификатором.
func (s *Store) FindByID(id string) (models.Subscription, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Subscription{}, false
	}
	return s.subs[i], true
}

// Edit заменяет подписку с заданным идентификатором новой записью с тем же ID.
// Новая запись добавляется в конец списка. Если подписки нет, ничего не происходит;
// результат сообщает, была ли запись заменена.
func (s *Store) Edit(id, customer, phone string, nextDate time.Time, recurring decimal.Decimal,
	plan models.Plan, status models.Status, kind models.Kind) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.subs = slices.Delete(s.subs, i, i+1)
	s.subs = append(s.subs, build(id, customer, phone, nextDate, recurring, plan, status, kind))
	return true
}

// Remove удаляет все подписки с заданным идентификатором и возвращает их количество.
func (s *Store) Remove(id string) int {
	before := len(s.subs)
	s.subs = slices.DeleteFunc(s.subs, func(sub models.Subscription) bool {
		return sub.ID == id
	})
	return before - len(s.subs)
}

// Filter возвращает подписки, у которых ключевое слово встречается в ID, имени клиента,
// плане или статусе (без учёта регистра) либо в телефоне.
// Пустое ключевое слово совпадает со всеми записями.
func (s *Store) Filter(keyword string) []models.Subscription {
	fold := cases.Fold()
	needle := fold.String(keyword)

	var res []models.Subscription
	for _, sub := range s.subs {
		if strings.Contains(fold.String(sub.ID), needle) ||
			strings.Contains(fold.String(sub.Customer), needle) ||
			strings.Contains(sub.Phone, keyword) ||
			strings.Contains(fold.String(string(sub.Plan)), needle) ||
			strings.Contains(fold.String(string(sub.Status)), needle) {
			res = append(res, sub)
		}
	}
	return res
}

func (s *Store) nextID() string {
	s.seq++
	return fmt.Sprintf("%s%04d", IDPrefix, s.seq)
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.subs, func(sub models.Subscription) bool {
		return sub.ID == id
	})
}

func build(id, customer, phone string, nextDate time.Time, recurring decimal.Decimal,
	plan models.Plan, status models.Status, kind models.Kind) models.Subscription {
	return models.Subscription{
		ID:        id,
		Customer:  customer,
		Phone:     phone,
		NextDate:  nextDate,
		Recurring: recurring,
		Plan:      plan,
		Status:    status,
		Kind:      kind,
	}
}
