// Package visualization computes 2D layouts for interaction graphs.
package visualization

import (
	"github.com/dd0wney/prothub/pkg/graph"
)

// Position represents a 2D coordinate
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LayoutConfig configures layout parameters. Seed drives the initial
// placement of iterative algorithms; the same graph, seed, iteration count
// and spacing always produce the same coordinates.
type LayoutConfig struct {
	Width      float64 // Canvas width
	Height     float64 // Canvas height
	Iterations int     // Number of iterations for iterative algorithms
	Padding    float64 // Padding from edges
	Seed       int64   // Seed for the initial placement
	SpacingK   float64 // Multiplier on the optimal node distance (default 1)
}

// Layout interface for different layout algorithms. Implementations must be
// total over any valid graph: an empty graph yields an empty position map,
// never an error.
type Layout interface {
	ComputeLayout(g *graph.Graph) (map[string]Position, error)
}
