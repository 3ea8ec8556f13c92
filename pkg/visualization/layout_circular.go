package visualization

import (
	"math"

	"github.com/dd0wney/prothub/pkg/graph"
)

// CircularLayout arranges nodes in a circle in insertion order. Cheap,
// deterministic fallback for graphs too large for the quadratic
// force-directed relaxation.
type CircularLayout struct {
	config *LayoutConfig
}

// NewCircularLayout creates a new circular layout
func NewCircularLayout(config *LayoutConfig) *CircularLayout {
	if config.Width == 0 {
		config.Width = 1000
	}
	if config.Height == 0 {
		config.Height = 800
	}
	if config.Padding == 0 {
		config.Padding = 50
	}
	return &CircularLayout{config: config}
}

// ComputeLayout arranges nodes in a circle
func (cl *CircularLayout) ComputeLayout(g *graph.Graph) (map[string]Position, error) {
	labels := g.Nodes()
	positions := make(map[string]Position, len(labels))

	if len(labels) == 0 {
		return positions, nil
	}

	centerX := cl.config.Width / 2
	centerY := cl.config.Height / 2
	radius := math.Min(centerX, centerY) - cl.config.Padding

	angleStep := 2 * math.Pi / float64(len(labels))

	for i, label := range labels {
		angle := float64(i) * angleStep
		positions[label] = Position{
			X: centerX + radius*math.Cos(angle),
			Y: centerY + radius*math.Sin(angle),
		}
	}

	return positions, nil
}
