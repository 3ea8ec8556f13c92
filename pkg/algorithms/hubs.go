// Package algorithms contains graph analysis over the interaction graph.
package algorithms

import (
	"sort"

	"github.com/dd0wney/prothub/pkg/graph"
)

// RankedNode is one entry of a hub ranking.
type RankedNode struct {
	Label  string `json:"label"`
	Degree int    `json:"degree"`
}

// TopHubs ranks nodes by degree, descending, and returns at most n entries.
// Degree counts a node as source and as target across all stored edges, so
// the symmetric nature of interactions is respected even though edges are
// stored directed. Ties are broken by node insertion order, which makes the
// ranking fully deterministic for a given construction sequence.
//
// n < 0 is treated as 0. An empty graph yields an empty ranking.
func TopHubs(g *graph.Graph, n int) []RankedNode {
	if n <= 0 || g.NodeCount() == 0 {
		return nil
	}

	degrees := g.Degrees()
	labels := g.Nodes()

	ranked := make([]RankedNode, len(labels))
	for i, label := range labels {
		ranked[i] = RankedNode{Label: label, Degree: degrees[label]}
	}

	// Stable sort keeps insertion order among equal degrees.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Degree > ranked[j].Degree
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// HubSet turns a ranking into a membership set for O(1) hub lookups.
func HubSet(ranking []RankedNode) map[string]bool {
	hubs := make(map[string]bool, len(ranking))
	for _, rn := range ranking {
		hubs[rn.Label] = true
	}
	return hubs
}
