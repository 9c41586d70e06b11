// Package metrics exposes the prometheus instrumentation for the API and
// the analysis engine.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every prometheus collector the service registers. A nil
// Manager is valid and drops all observations, so callers never guard.
type Manager struct {
	counterRequests  *prometheus.CounterVec
	histReqDuration  *prometheus.HistogramVec
	counterAnalyses  *prometheus.CounterVec
	counterGenerated prometheus.Counter
	counterPanics    prometheus.Counter
	gaugeDegraded    prometheus.Gauge
}

func NewManager(namespace string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)
	return &Manager{
		counterRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total handled HTTP requests.",
		}, []string{"method", "path", "status"}),
		histReqDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		counterAnalyses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Analyzer runs, by analyzer and outcome.",
		}, []string{"analyzer", "outcome"}),
		counterGenerated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "workouts_generated_total",
			Help:      "Successfully generated workouts.",
		}),
		counterPanics: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recovered_panics_total",
			Help:      "Panics recovered at task or request boundaries.",
		}),
		gaugeDegraded: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "health_degraded_components",
			Help:      "Subsystems reporting degraded or error on the last health check.",
		}),
	}
}

func (m *Manager) CountRequest(method, path, status string) {
	if m == nil {
		return
	}
	m.counterRequests.WithLabelValues(method, path, status).Inc()
}

func (m *Manager) ObserveRequestDuration(method, path string, d time.Duration) {
	if m == nil {
		return
	}
	m.histReqDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

// CountAnalysis records one analyzer run; outcome is "ok" or "recovered".
func (m *Manager) CountAnalysis(analyzer, outcome string) {
	if m == nil {
		return
	}
	m.counterAnalyses.WithLabelValues(analyzer, outcome).Inc()
}

func (m *Manager) CountGeneratedWorkout() {
	if m == nil {
		return
	}
	m.counterGenerated.Inc()
}

func (m *Manager) CountRecoveredPanic() {
	if m == nil {
		return
	}
	m.counterPanics.Inc()
}

func (m *Manager) SetDegradedComponents(n int) {
	if m == nil {
		return
	}
	m.gaugeDegraded.Set(float64(n))
}
