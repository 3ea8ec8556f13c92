package algorithms

import (
	"testing"

	"github.com/dd0wney/prothub/pkg/graph"
)

// buildTriangle builds the A-B, B-C, A-C triangle where every node has
// degree 2 and ranking order falls back to insertion order.
func buildTriangle(t *testing.T) *graph.Graph {
	t.Helper()

	g := graph.New()
	g.AddEdge("A", "B", 0.9)
	g.AddEdge("B", "C", 0.5)
	g.AddEdge("A", "C", 0.3)
	return g
}

// TestTopHubs_EmptyGraph verifies an empty graph yields an empty ranking.
func TestTopHubs_EmptyGraph(t *testing.T) {
	ranking := TopHubs(graph.New(), 5)

	if len(ranking) != 0 {
		t.Errorf("Expected empty ranking, got %d entries", len(ranking))
	}
}

// TestTopHubs_ZeroN verifies topN of zero yields an empty ranking.
func TestTopHubs_ZeroN(t *testing.T) {
	g := buildTriangle(t)

	if ranking := TopHubs(g, 0); len(ranking) != 0 {
		t.Errorf("Expected empty ranking for n=0, got %d entries", len(ranking))
	}
	if ranking := TopHubs(g, -1); len(ranking) != 0 {
		t.Errorf("Expected empty ranking for negative n, got %d entries", len(ranking))
	}
}

// TestTopHubs_TieBreakInsertionOrder checks the triangle example: all
// degrees equal, so the top 2 must be the two earliest-inserted nodes.
func TestTopHubs_TieBreakInsertionOrder(t *testing.T) {
	g := buildTriangle(t)

	ranking := TopHubs(g, 2)

	if len(ranking) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(ranking))
	}
	if ranking[0].Label != "A" || ranking[1].Label != "B" {
		t.Errorf("Expected [A B], got [%s %s]", ranking[0].Label, ranking[1].Label)
	}
	for _, rn := range ranking {
		if rn.Degree != 2 {
			t.Errorf("Expected degree 2 for %s, got %d", rn.Label, rn.Degree)
		}
	}
}

// TestTopHubs_DegreeDescending verifies higher-degree nodes rank first.
func TestTopHubs_DegreeDescending(t *testing.T) {
	g := graph.New()
	// Star around HUB plus a stray edge, so HUB has degree 3.
	g.AddEdge("X", "HUB", 0.5)
	g.AddEdge("HUB", "Y", 0.5)
	g.AddEdge("HUB", "Z", 0.5)
	g.AddEdge("X", "Y", 0.5)

	ranking := TopHubs(g, 10)

	if ranking[0].Label != "HUB" || ranking[0].Degree != 3 {
		t.Errorf("Expected HUB(3) first, got %s(%d)", ranking[0].Label, ranking[0].Degree)
	}
	// X and Y both have degree 2; X was inserted first.
	if ranking[1].Label != "X" || ranking[2].Label != "Y" {
		t.Errorf("Expected [X Y] after HUB, got [%s %s]", ranking[1].Label, ranking[2].Label)
	}
	if ranking[3].Label != "Z" || ranking[3].Degree != 1 {
		t.Errorf("Expected Z(1) last, got %s(%d)", ranking[3].Label, ranking[3].Degree)
	}
}

// TestTopHubs_TruncatesToN verifies the ranking is capped at n entries.
func TestTopHubs_TruncatesToN(t *testing.T) {
	g := buildTriangle(t)

	if ranking := TopHubs(g, 1); len(ranking) != 1 {
		t.Errorf("Expected 1 entry, got %d", len(ranking))
	}
	if ranking := TopHubs(g, 100); len(ranking) != 3 {
		t.Errorf("Expected all 3 entries when n exceeds node count, got %d", len(ranking))
	}
}

// TestTopHubs_SingleEdgeInsertionOrder checks the (X,Y) example: degrees are
// equal, ranking must follow insertion order.
func TestTopHubs_SingleEdgeInsertionOrder(t *testing.T) {
	g := graph.New()
	g.AddEdge("X", "Y", 0.8)

	ranking := TopHubs(g, 5)

	if len(ranking) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(ranking))
	}
	if ranking[0].Label != "X" || ranking[1].Label != "Y" {
		t.Errorf("Expected [X Y], got [%s %s]", ranking[0].Label, ranking[1].Label)
	}
	if ranking[0].Degree != 1 || ranking[1].Degree != 1 {
		t.Errorf("Expected degree 1 for both, got %d and %d", ranking[0].Degree, ranking[1].Degree)
	}
}

// TestTopHubs_Deterministic verifies repeated runs on the same graph give
// identical output.
func TestTopHubs_Deterministic(t *testing.T) {
	g := buildTriangle(t)

	first := TopHubs(g, 3)
	second := TopHubs(g, 3)

	if len(first) != len(second) {
		t.Fatalf("Ranking lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Entry %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

// TestHubSet verifies the membership set matches the ranking.
func TestHubSet(t *testing.T) {
	g := buildTriangle(t)

	hubs := HubSet(TopHubs(g, 2))

	if len(hubs) != 2 {
		t.Fatalf("Expected 2 hubs, got %d", len(hubs))
	}
	if !hubs["A"] || !hubs["B"] {
		t.Error("Expected A and B in hub set")
	}
	if hubs["C"] {
		t.Error("C must not be in the top-2 hub set")
	}
}
