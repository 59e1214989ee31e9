// Package metrics declares the Prometheus instruments for the checklist
// authority.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	ChecklistsLoaded   prometheus.Counter
	ChecklistsSaved    prometheus.Counter
	ValidationFailures prometheus.Counter
	RequestDuration    *prometheus.HistogramVec
}

// New creates and registers all metrics against the given registerer.
// Tests pass a fresh prometheus.NewRegistry to avoid double registration.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ChecklistsLoaded: factory.NewCounter(prometheus.CounterOpts{
			Name: "a11ycheck_checklists_loaded_total",
			Help: "Total number of checklist load operations served",
		}),
		ChecklistsSaved: factory.NewCounter(prometheus.CounterOpts{
			Name: "a11ycheck_checklists_saved_total",
			Help: "Total number of checklist records persisted",
		}),
		ValidationFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "a11ycheck_validation_failures_total",
			Help: "Total number of records rejected by schema validation",
		}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "a11ycheck_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status code",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(route, status string, seconds float64) {
	m.RequestDuration.WithLabelValues(route, status).Observe(seconds)
}
