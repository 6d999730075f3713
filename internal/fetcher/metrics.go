package fetcher

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Request outcomes recorded by Metrics.
const (
	OutcomeSuccess     = "success"
	OutcomeAppFailure  = "app_failure"
	OutcomeTransport   = "transport_error"
	OutcomeBadResponse = "bad_response"
)

// Metrics tracks fetcher activity on a dedicated registry.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics creates the fetcher collectors and registers them on a new registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "citynews_fetch_requests_total",
				Help: "Total number of backend requests by endpoint and outcome",
			},
			[]string{"path", "outcome"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "citynews_fetch_duration_seconds",
				Help:    "Backend request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path"},
		),
	}

	m.registry.MustRegister(m.RequestsTotal, m.RequestDuration)

	return m
}

// WriteFile writes the current metrics in text exposition format.
func (m *Metrics) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

func (m *Metrics) observe(route, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}

	m.RequestsTotal.WithLabelValues(route, outcome).Inc()
	m.RequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}
