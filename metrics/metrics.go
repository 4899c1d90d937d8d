// Package metrics exposes Prometheus instruments for manifest generation.
//
// A nil *Metrics is valid and records nothing, so callers that do not care
// about metrics can pass nil.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "lv2ttl"

// Failure reasons used as the "reason" label.
const (
	ReasonLoad     = "load"
	ReasonRender   = "render"
	ReasonPrefix   = "unresolved_prefix"
	ReasonMetadata = "invalid_metadata"
	ReasonWrite    = "write"
)

// Metrics holds the generation instruments.
type Metrics struct {
	rendered prometheus.Counter
	failures *prometheus.CounterVec
	duration prometheus.Histogram
	prefixes prometheus.Histogram
}

// New creates the instruments and registers them with reg. A nil reg leaves
// them unregistered.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		rendered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_rendered_total",
			Help:      "Number of Turtle documents written.",
		}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "render_failures_total",
			Help:      "Number of descriptions that could not be turned into a document.",
		}, []string{"reason"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Time spent loading, rendering and writing one document.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		prefixes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "prefixes_declared",
			Help:      "Number of @prefix declarations per document.",
			Buckets:   prometheus.LinearBuckets(0, 2, 8),
		}),
	}

	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.rendered, m.failures, m.duration, m.prefixes} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveRendered records a written document.
func (m *Metrics) ObserveRendered(elapsed time.Duration, prefixes int) {
	if m == nil {
		return
	}
	m.rendered.Inc()
	m.duration.Observe(elapsed.Seconds())
	m.prefixes.Observe(float64(prefixes))
}

// ObserveFailure records a failed generation.
func (m *Metrics) ObserveFailure(reason string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(reason).Inc()
}
