// Package stats реализует обработчик консольной команды stats: печатает текущие
// значения счётчиков операций с подписками.
package stats

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	dto "github.com/prometheus/client_model/go"

	"github.com/magabrotheeeer/subscription-manager/internal/console/middlewarectx"
	"github.com/magabrotheeeer/subscription-manager/internal/console/response"
	"github.com/magabrotheeeer/subscription-manager/internal/lib/sl"
)

// Handler печатает метрики построчно.
type Handler struct {
	log      *slog.Logger
	gatherer Gatherer
}

// Gatherer возвращает снимок метрик.
type Gatherer interface {
	Gather() ([]*dto.MetricFamily, error)
}

// New создает новый Handler.
func New(log *slog.Logger, gatherer Gatherer) *Handler {
	return &Handler{
		log:      log,
		gatherer: gatherer,
	}
}

func (h *Handler) Serve(ctx context.Context, w io.Writer, _ string) {
	const op = "handlers.subscription.stats"

	log := h.log.With(
		slog.String("op", op),
		sl.RequestID(middlewarectx.GetReqID(ctx)),
	)

	families, err := h.gatherer.Gather()
	if err != nil {
		log.Error("failed to gather metrics", sl.Err(err))
		_ = response.Write(w, response.FromError(err))
		return
	}

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if _, err := fmt.Fprintf(w, "%s%s %g\n", mf.GetName(), labels(m), value(mf.GetType(), m)); err != nil {
				log.Error("failed to write metrics", sl.Err(err))
				return
			}
		}
	}
}

func labels(m *dto.Metric) string {
	pairs := m.GetLabel()
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pairs))
	for _, lp := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func value(t dto.MetricType, m *dto.Metric) float64 {
	switch t {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue()
	default:
		return m.GetUntyped().GetValue()
	}
}
