package observe

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "indoornav"

// Metrics holds the Prometheus collectors fed by the observer returned from NewPrometheus.
type Metrics struct {
	// QueriesTotal counts route queries.
	// Labels: outcome (ok, error)
	QueriesTotal *prometheus.CounterVec

	// StageDurationSeconds measures the time spent in each stage.
	// Labels: stage (index, graph, search, enhance, directions, route)
	StageDurationSeconds *prometheus.HistogramVec

	// SearchExpandedNodes observes how many nodes each search closed.
	SearchExpandedNodes prometheus.Histogram
}

// NewMetrics registers the collectors with reg. A nil reg uses the default registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		QueriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "route_queries_total",
				Help:      "Total number of route queries by outcome",
			},
			[]string{"outcome"},
		),
		StageDurationSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "stage_duration_seconds",
				Help:      "Time spent in each navigation stage in seconds",
				Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"stage"},
		),
		SearchExpandedNodes: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "search_expanded_nodes",
				Help:      "Number of graph nodes closed per search",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
	}
}

// Observe records e.
func (m *Metrics) Observe(_ context.Context, e Event) {
	m.StageDurationSeconds.WithLabelValues(string(e.Stage)).Observe(e.Duration.Seconds())
	switch e.Stage {
	case StageSearch:
		if e.Err == nil {
			m.SearchExpandedNodes.Observe(float64(e.Expanded))
		}
	case StageRoute:
		m.QueriesTotal.WithLabelValues(e.Outcome()).Inc()
	}
}

// NewPrometheus returns an observer exporting metrics through reg.
func NewPrometheus(reg prometheus.Registerer) Observer {
	return NewMetrics(reg)
}
