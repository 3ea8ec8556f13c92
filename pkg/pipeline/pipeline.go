// Package pipeline wires the analysis stages together: raw interaction
// records are parsed into triples, accumulated into a graph, ranked for
// hubs, laid out in 2D, and adapted into a drawable scene. One Analyze call
// owns all of its intermediate state; nothing is shared across calls.
package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/prothub/pkg/algorithms"
	"github.com/dd0wney/prothub/pkg/graph"
	"github.com/dd0wney/prothub/pkg/interactions"
	"github.com/dd0wney/prothub/pkg/logging"
	"github.com/dd0wney/prothub/pkg/metrics"
	"github.com/dd0wney/prothub/pkg/scene"
	"github.com/dd0wney/prothub/pkg/visualization"
)

// Outcome distinguishes a normal result from the expected "no interactions
// found" case. No data is not a failure in this domain, so it is a result
// variant rather than an error.
type Outcome string

const (
	OutcomeOK     Outcome = "ok"
	OutcomeNoData Outcome = "no_data"
)

// Options parameterizes one analysis run.
type Options struct {
	TopN   int
	Layout visualization.LayoutConfig
}

// Result is the complete output of one analysis run. All artifacts are
// present even for OutcomeNoData, as empty-but-valid values.
type Result struct {
	ID      string
	Outcome Outcome

	Graph   *graph.Graph
	Ranking []algorithms.RankedNode
	Layout  map[string]visualization.Position
	Scene   *scene.Scene

	RecordsIn       int
	TriplesAccepted int
	RecordsDropped  int
}

// Analyzer runs the pipeline. Safe for concurrent use: it holds no mutable
// state between calls.
type Analyzer struct {
	logger  logging.Logger
	metrics *metrics.Registry
}

// New creates an Analyzer. A nil logger disables logging; a nil registry
// disables metrics.
func New(logger logging.Logger, registry *metrics.Registry) *Analyzer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Analyzer{
		logger:  logger.With(logging.Component("pipeline")),
		metrics: registry,
	}
}

// Analyze runs records through all five stages. Malformed records are
// dropped by the parser; if nothing survives, or the resulting graph is
// empty, the result carries OutcomeNoData with empty artifacts. Errors can
// only originate from the layout engine and indicate a programming fault,
// not bad input.
func (a *Analyzer) Analyze(ctx context.Context, records []interactions.Record, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	id := uuid.NewString()
	log := a.logger.With(logging.AnalysisID(id))

	triples := interactions.Parse(records)
	dropped := len(records) - len(triples)
	if a.metrics != nil {
		a.metrics.RecordParse(len(triples), dropped)
	}
	if dropped > 0 {
		log.Debug("dropped malformed records", logging.Int("dropped", dropped))
	}

	g := graph.New()
	for _, tr := range triples {
		g.AddEdge(tr.Source, tr.Target, tr.Weight)
	}

	result := &Result{
		ID:              id,
		Graph:           g,
		Layout:          map[string]visualization.Position{},
		Scene:           &scene.Scene{Segments: []scene.Segment{}, Glyphs: []scene.Glyph{}},
		RecordsIn:       len(records),
		TriplesAccepted: len(triples),
		RecordsDropped:  dropped,
	}

	if g.NodeCount() == 0 {
		result.Outcome = OutcomeNoData
		if a.metrics != nil {
			a.metrics.RecordAnalysis(string(OutcomeNoData), time.Since(start), 0, 0)
		}
		log.Info("analysis produced no data",
			logging.Int("records_in", len(records)),
			logging.Int("dropped", dropped),
		)
		return result, nil
	}

	result.Ranking = algorithms.TopHubs(g, opts.TopN)

	layoutCfg := opts.Layout
	layoutStart := time.Now()
	positions, err := visualization.NewForceDirectedLayout(&layoutCfg).ComputeLayout(g)
	if err != nil {
		if a.metrics != nil {
			a.metrics.RecordAnalysis("error", time.Since(start), g.NodeCount(), g.EdgeCount())
		}
		log.Error("layout computation failed", logging.Error(err))
		return nil, err
	}
	if a.metrics != nil {
		a.metrics.RecordLayout(time.Since(layoutStart), layoutCfg.Iterations)
	}

	result.Layout = positions
	result.Scene = scene.Build(g, algorithms.HubSet(result.Ranking), positions)
	result.Outcome = OutcomeOK

	if a.metrics != nil {
		a.metrics.RecordAnalysis(string(OutcomeOK), time.Since(start), g.NodeCount(), g.EdgeCount())
	}
	log.Info("analysis complete",
		logging.Int("nodes", g.NodeCount()),
		logging.Int("edges", g.EdgeCount()),
		logging.Int("hubs", len(result.Ranking)),
		logging.Duration("elapsed", time.Since(start)),
	)

	return result, nil
}
