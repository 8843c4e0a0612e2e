// Package metrics exposes Prometheus instruments for charge operations.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels.
const (
	OutcomeOK       = "ok"
	OutcomeError    = "error"
	OutcomeNotFound = "not_found"
)

// Metrics holds the service's Prometheus collectors.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	amount     prometheus.Histogram
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cobrancas_operations_total",
			Help: "Charge store operations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cobrancas_operation_duration_seconds",
			Help:    "Charge store operation latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		amount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "cobrancas_created_amount",
			Help:    "Amounts of created charges.",
			Buckets: []float64{10, 50, 100, 500, 1000, 5000, 10000},
		}),
	}

	reg.MustRegister(m.operations, m.duration, m.amount)
	return m
}

// Observe records one operation that started at start.
func (m *Metrics) Observe(operation, outcome string, start time.Time) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(operation, outcome).Inc()
	m.duration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// ObserveAmount records the amount of a created charge.
func (m *Metrics) ObserveAmount(amount float64) {
	if m == nil {
		return
	}
	m.amount.Observe(amount)
}
