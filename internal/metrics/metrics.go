// Package metrics содержит счётчики Prometheus для операций с подписками.
// Метрики регистрируются в собственном реестре и не публикуются по сети.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "subscriptions"

// Статусы операций.
const (
	StatusOK      = "ok"
	StatusInvalid = "invalid"
	StatusNoop    = "noop"
)

// Collector хранит метрики менеджера подписок.
type Collector struct {
	registry *prometheus.Registry

	Operations         *prometheus.CounterVec
	ValidationFailures *prometheus.CounterVec
	Records            prometheus.Gauge
}

// New создаёт Collector с собственным реестром.
func New() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		registry: reg,
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Total number of subscription operations",
		}, []string{"operation", "status"}),
		ValidationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Total number of rejected subscription forms by error kind",
		}, []string{"kind"}),
		Records: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "records",
			Help:      "Number of subscriptions currently held in memory",
		}),
	}

	reg.MustRegister(c.Operations, c.ValidationFailures, c.Records)
	return c
}

// ObserveOperation увеличивает счётчик операции с заданным статусом.
func (c *Collector) ObserveOperation(operation, status string) {
	c.Operations.WithLabelValues(operation, status).Inc()
}

// ObserveValidationFailure увеличивает счётчик отклонённых форм.
func (c *Collector) ObserveValidationFailure(kind string) {
	c.ValidationFailures.WithLabelValues(kind).Inc()
}

// SetRecords выставляет текущее количество записей.
func (c *Collector) SetRecords(n int) {
	c.Records.Set(float64(n))
}

// Gather возвращает снимок всех метрик реестра.
func (c *Collector) Gather() ([]*dto.MetricFamily, error) {
	return c.registry.Gather()
}
