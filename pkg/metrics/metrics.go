package metrics

import (
	"time"
)

// RecordAnalysis records one pipeline run with its outcome and duration.
func (r *Registry) RecordAnalysis(outcome string, duration time.Duration, nodes, edges int) {
	r.AnalysesTotal.WithLabelValues(outcome).Inc()
	r.AnalysisDuration.WithLabelValues(outcome).Observe(duration.Seconds())
	r.GraphNodes.Observe(float64(nodes))
	r.GraphEdges.Observe(float64(edges))
}

// RecordParse records parser accept/drop counts for one batch.
func (r *Registry) RecordParse(accepted, dropped int) {
	r.RecordsParsedTotal.Add(float64(accepted))
	r.RecordsDroppedTotal.Add(float64(dropped))
}

// RecordLayout records one layout computation.
func (r *Registry) RecordLayout(duration time.Duration, iterations int) {
	r.LayoutDuration.Observe(duration.Seconds())
	r.LayoutIterations.Observe(float64(iterations))
}

// RecordFetch records one upstream fetch attempt.
func (r *Registry) RecordFetch(status string, duration time.Duration) {
	r.FetchesTotal.WithLabelValues(status).Inc()
	r.FetchDuration.Observe(duration.Seconds())
}
