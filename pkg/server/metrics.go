package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the server's Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "bindkit").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for dispatch duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Metrics holds the server's Prometheus metrics.
type Metrics struct {
	bindPasses        prometheus.Counter
	listenersAttached prometheus.Counter
	bindErrors        prometheus.Counter
	eventsTotal       *prometheus.CounterVec
	dispatchDuration  prometheus.Histogram
	activeSessions    prometheus.Gauge
}

// NewMetrics registers and returns the server metrics.
func NewMetrics(config MetricsConfig) *Metrics {
	if config.Namespace == "" {
		config.Namespace = "bindkit"
	}
	if config.Buckets == nil {
		config.Buckets = prometheus.DefBuckets
	}
	if config.Registry == nil {
		config.Registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		bindPasses: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "bind_passes_total",
			Help:        "Total number of binding passes run",
			ConstLabels: config.ConstLabels,
		}),
		listenersAttached: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "listeners_attached_total",
			Help:        "Total number of listeners attached by binding passes",
			ConstLabels: config.ConstLabels,
		}),
		bindErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "bind_errors_total",
			Help:        "Total number of elements that failed to bind",
			ConstLabels: config.ConstLabels,
		}),
		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "events_dispatched_total",
			Help:        "Total number of bridge events dispatched",
			ConstLabels: config.ConstLabels,
		}, []string{"event", "status"}),
		dispatchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Name:        "dispatch_duration_seconds",
			Help:        "Event dispatch duration in seconds",
			Buckets:     config.Buckets,
			ConstLabels: config.ConstLabels,
		}),
		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Name:        "active_sessions",
			Help:        "Number of connected sessions",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// RecordBindPass records the outcome of a binding pass.
func (m *Metrics) RecordBindPass(listeners, failures int) {
	if m == nil {
		return
	}
	m.bindPasses.Inc()
	m.listenersAttached.Add(float64(listeners))
	m.bindErrors.Add(float64(failures))
}

// RecordDispatch records one bridge event dispatch.
func (m *Metrics) RecordDispatch(event, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.eventsTotal.WithLabelValues(event, status).Inc()
	m.dispatchDuration.Observe(d.Seconds())
}

// SessionOpened increments the active session gauge.
func (m *Metrics) SessionOpened() {
	if m == nil {
		return
	}
	m.activeSessions.Inc()
}

// SessionClosed decrements the active session gauge.
func (m *Metrics) SessionClosed() {
	if m == nil {
		return
	}
	m.activeSessions.Dec()
}
