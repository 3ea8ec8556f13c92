// Package scene maps a graph, its hub ranking and a computed layout into a
// renderer-agnostic scene description. Rendering the scene into pixels is
// the consumer's job; this package only decides geometry and visual
// encoding.
package scene

import (
	"fmt"
	"math"

	"github.com/dd0wney/prothub/pkg/graph"
	"github.com/dd0wney/prothub/pkg/visualization"
)

// Visual encoding constants. Glyph radius grows with degree and is clipped;
// labels on low-degree non-hub nodes are suppressed to keep dense graphs
// readable.
const (
	BaseRadius      = 15.0
	RadiusPerDegree = 2.0
	MaxRadius       = 60.0
	LabelMinDegree  = 2

	CategoryHub     = "hub"
	CategoryRegular = "regular"
)

// Segment is one edge drawn between two resolved coordinates.
type Segment struct {
	From visualization.Position `json:"from"`
	To   visualization.Position `json:"to"`
}

// Glyph is one node to draw: where, how large, which color category, and
// what text to show. Label is empty when suppressed; Hover always carries
// the full identity.
type Glyph struct {
	Position visualization.Position `json:"position"`
	Radius   float64                `json:"radius"`
	Category string                 `json:"category"`
	Label    string                 `json:"label,omitempty"`
	Hover    string                 `json:"hover"`
}

// Scene is the complete drawable description of one analysis. It is built
// once and never mutated afterwards; ordering of segments and glyphs follows
// graph insertion order so identical inputs produce identical scenes.
type Scene struct {
	Segments []Segment `json:"segments"`
	Glyphs   []Glyph   `json:"glyphs"`
}

// Build produces a scene from the graph, the hub membership set and the
// layout. Edges are emitted only when both endpoints have a resolved
// coordinate, and glyphs only for laid-out nodes, so a partial layout can
// never make Build fail or emit dangling geometry.
func Build(g *graph.Graph, hubs map[string]bool, layout map[string]visualization.Position) *Scene {
	s := &Scene{
		Segments: make([]Segment, 0, g.EdgeCount()),
		Glyphs:   make([]Glyph, 0, g.NodeCount()),
	}

	for _, e := range g.Edges() {
		from, okFrom := layout[e.Source]
		to, okTo := layout[e.Target]
		if !okFrom || !okTo {
			continue
		}
		s.Segments = append(s.Segments, Segment{From: from, To: to})
	}

	degrees := g.Degrees()
	for _, label := range g.Nodes() {
		pos, ok := layout[label]
		if !ok {
			continue
		}

		degree := degrees[label]
		isHub := hubs[label]

		category := CategoryRegular
		if isHub {
			category = CategoryHub
		}

		text := label
		if degree < LabelMinDegree && !isHub {
			text = ""
		}

		s.Glyphs = append(s.Glyphs, Glyph{
			Position: pos,
			Radius:   glyphRadius(degree),
			Category: category,
			Label:    text,
			Hover:    fmt.Sprintf("%s (degree %d)", label, degree),
		})
	}

	return s
}

// glyphRadius scales monotonically with degree up to the clip.
func glyphRadius(degree int) float64 {
	return math.Min(BaseRadius+RadiusPerDegree*float64(degree), MaxRadius)
}
