// Package metrics provides Prometheus instrumentation for parser runs.
// It is opt-in: library callers that never construct a Metrics value never
// touch a global registry.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the counters and histograms tracked for a parse run.
type Metrics struct {
	segmentsTotal   *prometheus.CounterVec
	parseDuration   *prometheus.HistogramVec
	forcedSplits    *prometheus.CounterVec
}

// New creates a Metrics instance and registers its vectors against reg.
// Pass prometheus.NewRegistry() for an isolated registry, or
// prometheus.DefaultRegisterer to expose the metrics on the default
// /metrics endpoint.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		segmentsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ionparse_segments_parsed_total",
				Help: "Total segments produced by a parser.",
			},
			[]string{"parser"},
		),
		parseDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ionparse_parse_duration_seconds",
				Help:    "Wall-clock time spent inside Parse.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"parser"},
		),
		forcedSplits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ionparse_forced_splits_total",
				Help: "Splits performed because a window exceeded max_width rather than because of gain.",
			},
			[]string{"parser"},
		),
	}
	reg.MustRegister(m.segmentsTotal, m.parseDuration, m.forcedSplits)
	return m
}

// RecordParse records the segment count and duration of one Parse call.
func (m *Metrics) RecordParse(parser string, segments int, d time.Duration) {
	if m == nil {
		return
	}
	m.segmentsTotal.WithLabelValues(parser).Add(float64(segments))
	m.parseDuration.WithLabelValues(parser).Observe(d.Seconds())
}

// RecordForcedSplit increments the forced-split counter for parser.
func (m *Metrics) RecordForcedSplit(parser string) {
	if m == nil {
		return
	}
	m.forcedSplits.WithLabelValues(parser).Inc()
}
