package router

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the router's Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "domkit").
	Namespace string

	// Subsystem is the metrics subsystem (default: "router").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the router metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "domkit",
		Subsystem: "router",
		// Renders are synchronous DOM work; most land well under 10ms.
		Buckets:  []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
		Registry: prometheus.DefaultRegisterer,
	}
}

// Metrics holds the router's Prometheus collectors. A nil *Metrics records
// nothing.
type Metrics struct {
	navigations      *prometheus.CounterVec
	renderDuration   prometheus.Histogram
	fallbacks        prometheus.Counter
	releasedBindings prometheus.Counter
}

// NewMetrics registers the router collectors.
//
// Metrics collected:
//   - domkit_router_navigations_total: renders by source (initial, navigate, popstate)
//   - domkit_router_render_duration_seconds: time spent building and attaching a page
//   - domkit_router_fallbacks_total: renders of the fallback view for unknown paths
//   - domkit_router_released_bindings_total: bindings and listeners released on page replacement
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		navigations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "navigations_total",
			Help:        "Total number of page renders by trigger",
			ConstLabels: config.ConstLabels,
		}, []string{"source"}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Page render duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		fallbacks: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "fallbacks_total",
			Help:        "Total number of unknown paths rendered with the fallback view",
			ConstLabels: config.ConstLabels,
		}),

		releasedBindings: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "released_bindings_total",
			Help:        "Total number of signal bindings and listeners released with discarded pages",
			ConstLabels: config.ConstLabels,
		}),
	}
}

func (m *Metrics) observe(source string, seconds float64, fallback bool, released int) {
	if m == nil {
		return
	}
	m.navigations.WithLabelValues(source).Inc()
	m.renderDuration.Observe(seconds)
	if fallback {
		m.fallbacks.Inc()
	}
	if released > 0 {
		m.releasedBindings.Add(float64(released))
	}
}
