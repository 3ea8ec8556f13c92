package visualization

import (
	"math"
	"math/rand"

	"github.com/dd0wney/prothub/pkg/graph"
)

// ForceDirectedLayout implements force-directed (spring) graph layout.
// Connected nodes attract proportionally to distance, all pairs repel
// inversely with distance, and the system is relaxed for a fixed number of
// iterations under a cooling temperature. Edge direction is ignored:
// attraction applies whichever endpoint was recorded as source.
type ForceDirectedLayout struct {
	config *LayoutConfig
}

// NewForceDirectedLayout creates a new force-directed layout
func NewForceDirectedLayout(config *LayoutConfig) *ForceDirectedLayout {
	// A zero canvas would make the optimal distance k zero and the
	// attraction term divide by zero, so the canvas gets defaults too.
	if config.Width == 0 {
		config.Width = 1000
	}
	if config.Height == 0 {
		config.Height = 800
	}
	if config.Iterations == 0 {
		config.Iterations = 50
	}
	if config.Padding == 0 {
		config.Padding = 50
	}
	if config.SpacingK == 0 {
		config.SpacingK = 1
	}
	return &ForceDirectedLayout{config: config}
}

// ComputeLayout computes positions using the force-directed algorithm.
// The RNG is constructed from the config seed per call, never taken from
// the global generator, so repeated runs over the same topology are
// reproducible. All node iteration goes over the graph's insertion-ordered
// node slice; iterating a Go map here would break determinism.
func (fdl *ForceDirectedLayout) ComputeLayout(g *graph.Graph) (map[string]Position, error) {
	labels := g.Nodes()

	if len(labels) == 0 {
		return make(map[string]Position), nil
	}

	// Single node - center it
	if len(labels) == 1 {
		return map[string]Position{
			labels[0]: {
				X: fdl.config.Width / 2,
				Y: fdl.config.Height / 2,
			},
		}, nil
	}

	rng := rand.New(rand.NewSource(fdl.config.Seed))

	// Initialize seeded random positions
	positions := make(map[string]Position, len(labels))
	for _, label := range labels {
		positions[label] = Position{
			X: rng.Float64()*(fdl.config.Width-2*fdl.config.Padding) + fdl.config.Padding,
			Y: rng.Float64()*(fdl.config.Height-2*fdl.config.Padding) + fdl.config.Padding,
		}
	}

	// Symmetric neighbor lists in deterministic order. Both stored
	// directions collapse into the same neighbor relation.
	neighbors := make(map[string][]string, len(labels))
	seen := make(map[[2]string]bool)
	addNeighbor := func(a, b string) {
		if seen[[2]string{a, b}] {
			return
		}
		seen[[2]string{a, b}] = true
		neighbors[a] = append(neighbors[a], b)
	}
	for _, e := range g.Edges() {
		addNeighbor(e.Source, e.Target)
		addNeighbor(e.Target, e.Source)
	}

	// Force-directed iterations
	k := fdl.config.SpacingK * math.Sqrt((fdl.config.Width*fdl.config.Height)/float64(len(labels))) // Optimal distance
	temperature := fdl.config.Width / 10.0

	for iter := 0; iter < fdl.config.Iterations; iter++ {
		forces := make(map[string]Position, len(labels))
		for _, label := range labels {
			forces[label] = Position{X: 0, Y: 0}
		}

		// Repulsion between all pairs
		for i, a := range labels {
			for j := i + 1; j < len(labels); j++ {
				b := labels[j]
				dx := positions[a].X - positions[b].X
				dy := positions[a].Y - positions[b].Y
				dist := math.Sqrt(dx*dx + dy*dy)

				if dist < 0.01 {
					dist = 0.01
				}

				force := (k * k) / dist
				fx := (dx / dist) * force
				fy := (dy / dist) * force

				forces[a] = Position{X: forces[a].X + fx, Y: forces[a].Y + fy}
				forces[b] = Position{X: forces[b].X - fx, Y: forces[b].Y - fy}
			}
		}

		// Attraction between connected nodes
		for _, a := range labels {
			for _, b := range neighbors[a] {
				dx := positions[a].X - positions[b].X
				dy := positions[a].Y - positions[b].Y
				dist := math.Sqrt(dx*dx + dy*dy)

				if dist < 0.01 {
					continue
				}

				force := (dist * dist) / k
				fx := (dx / dist) * force
				fy := (dy / dist) * force

				forces[a] = Position{X: forces[a].X - fx, Y: forces[a].Y - fy}
			}
		}

		// Apply forces with cooling
		cool := 1.0 - float64(iter)/float64(fdl.config.Iterations)
		for _, label := range labels {
			fx := forces[label].X
			fy := forces[label].Y
			force := math.Sqrt(fx*fx + fy*fy)

			if force > 0 {
				dx := (fx / force) * math.Min(force, temperature) * cool
				dy := (fy / force) * math.Min(force, temperature) * cool

				positions[label] = Position{
					X: positions[label].X + dx,
					Y: positions[label].Y + dy,
				}
			}
		}

		temperature *= 0.95
	}

	// Normalize positions to bounds
	return normalizePositions(positions, fdl.config.Width, fdl.config.Height, fdl.config.Padding), nil
}
