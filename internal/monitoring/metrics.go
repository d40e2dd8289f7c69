package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics counts calculations served by a session. Each instance owns its
// registry so several sessions (or tests) never collide.
type Metrics struct {
	registry     *prometheus.Registry
	calculations *prometheus.CounterVec
	errors       *prometheus.CounterVec
	positionSize *prometheus.HistogramVec
}

// NewMetrics creates and registers the calculator metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		calculations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tradesize_calculations_total",
				Help: "Total number of calculations performed",
			},
			[]string{"kind"},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tradesize_errors_total",
				Help: "Total number of rejected calculations",
			},
			[]string{"kind", "code"},
		),
		positionSize: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tradesize_position_size",
				Help:    "Distribution of computed position sizes",
				Buckets: prometheus.ExponentialBuckets(100, 10, 6),
			},
			[]string{"kind"},
		),
	}
	m.registry.MustRegister(m.calculations, m.errors, m.positionSize)
	return m
}

// RecordCalculation records a successful calculation.
func (m *Metrics) RecordCalculation(kind string) {
	m.calculations.WithLabelValues(kind).Inc()
}

// RecordPositionSize observes one computed position size.
func (m *Metrics) RecordPositionSize(kind string, size float64) {
	m.positionSize.WithLabelValues(kind).Observe(size)
}

// RecordError records a rejected calculation. code is the error code, or
// "unknown" when there is none.
func (m *Metrics) RecordError(kind, code string) {
	if code == "" {
		code = "unknown"
	}
	m.errors.WithLabelValues(kind, code).Inc()
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the Prometheus metrics endpoint
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
