package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initPipelineMetrics() {
	r.AnalysesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "prothub_analyses_total",
			Help: "Total number of analysis runs",
		},
		[]string{"outcome"},
	)

	r.AnalysisDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "prothub_analysis_duration_seconds",
			Help:    "End-to-end analysis duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"outcome"},
	)

	r.RecordsParsedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "prothub_records_parsed_total",
			Help: "Total number of interaction records accepted by the parser",
		},
	)

	r.RecordsDroppedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "prothub_records_dropped_total",
			Help: "Total number of malformed interaction records dropped",
		},
	)

	r.GraphNodes = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "prothub_graph_nodes",
			Help:    "Node count of constructed graphs",
			Buckets: []float64{1, 10, 50, 100, 250, 500, 1000},
		},
	)

	r.GraphEdges = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "prothub_graph_edges",
			Help:    "Edge count of constructed graphs",
			Buckets: []float64{1, 10, 50, 100, 500, 1000, 5000},
		},
	)

	r.LayoutDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "prothub_layout_duration_seconds",
			Help:    "Force-directed layout duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
	)

	r.LayoutIterations = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "prothub_layout_iterations",
			Help:    "Iterations configured per layout run",
			Buckets: []float64{10, 25, 50, 100, 200},
		},
	)
}

func (r *Registry) initFetchMetrics() {
	r.FetchesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "prothub_fetches_total",
			Help: "Total number of upstream interaction fetches",
		},
		[]string{"status"},
	)

	r.FetchDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "prothub_fetch_duration_seconds",
			Help:    "Upstream fetch duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.5, 1.0, 5.0, 10.0},
		},
	)
}
