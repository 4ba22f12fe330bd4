package middleware

import (
	"context"
	"time"

	"github.com/hezhis/dispatch"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Metrics records per-variant dispatch counts and handler latency.
type Metrics struct {
	messages *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		messages: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "dispatch",
				Name:      "messages_total",
				Help:      "Total dispatched messages.",
			},
			[]string{"variant", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "dispatch",
				Name:      "handler_duration_seconds",
				Help:      "Handler duration in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"variant"},
		),
	}
	for _, c := range []prometheus.Collector{m.messages, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) Middleware() dispatch.Middleware {
	return func(v dispatch.Variant, next dispatch.HandlerFunc) dispatch.HandlerFunc {
		variant := v.String()
		return func(ctx context.Context, msg any) error {
			start := time.Now()
			err := next(ctx, msg)

			outcome := OutcomeSuccess
			if err != nil {
				outcome = OutcomeError
			}
			m.messages.WithLabelValues(variant, outcome).Inc()
			m.duration.WithLabelValues(variant).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
