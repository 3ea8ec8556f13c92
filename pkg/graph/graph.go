// Package graph holds the in-memory interaction graph built from
// normalized (source, target, weight) triples.
package graph

// Edge is a directed interaction as stored. Interactions are logically
// symmetric, but A->B and B->A are kept as distinct edges when the source
// data contains both directions; consumers that need symmetric behavior
// (degree counting, layout) must treat both directions as touching a node.
type Edge struct {
	Source string
	Target string
	Weight float64
}

// Graph owns the node set and the edge set. Nodes exist implicitly as the
// union of all edge endpoints and are kept in first-seen order, which is the
// tie-break order for hub ranking.
type Graph struct {
	nodes     []string
	nodeIndex map[string]int
	edges     []Edge
	edgeIndex map[[2]string]int
}

// New returns an empty graph. A graph built from zero triples is valid and
// has zero nodes and zero edges.
func New() *Graph {
	return &Graph{
		nodeIndex: make(map[string]int),
		edgeIndex: make(map[[2]string]int),
	}
}

// addNode registers a label if unseen and returns its insertion index.
func (g *Graph) addNode(label string) int {
	if idx, ok := g.nodeIndex[label]; ok {
		return idx
	}
	idx := len(g.nodes)
	g.nodes = append(g.nodes, label)
	g.nodeIndex[label] = idx
	return idx
}

// AddEdge applies one normalized triple. Missing endpoints are created.
// Re-adding the same ordered (source, target) pair overwrites the stored
// weight instead of creating a duplicate edge.
func (g *Graph) AddEdge(source, target string, weight float64) {
	g.addNode(source)
	g.addNode(target)

	key := [2]string{source, target}
	if idx, ok := g.edgeIndex[key]; ok {
		g.edges[idx].Weight = weight
		return
	}
	g.edgeIndex[key] = len(g.edges)
	g.edges = append(g.edges, Edge{Source: source, Target: target, Weight: weight})
}

// NodeCount returns the number of distinct node labels.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of stored directed edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// HasNode reports whether the label appears as an endpoint of any edge.
func (g *Graph) HasNode(label string) bool {
	_, ok := g.nodeIndex[label]
	return ok
}

// NodeIndex returns the insertion index of a label, or -1 when absent.
func (g *Graph) NodeIndex(label string) int {
	idx, ok := g.nodeIndex[label]
	if !ok {
		return -1
	}
	return idx
}

// Nodes returns node labels in insertion order. The slice is a copy.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Edges returns stored edges in insertion order. The slice is a copy.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Weight returns the stored weight for the ordered (source, target) pair.
func (g *Graph) Weight(source, target string) (float64, bool) {
	idx, ok := g.edgeIndex[[2]string{source, target}]
	if !ok {
		return 0, false
	}
	return g.edges[idx].Weight, true
}

// Degrees computes per-node degree in one pass over the edges. A node is
// counted once per edge touching it in either stored direction, so a node
// appearing as both source and target of the same edge (a self loop)
// contributes two.
func (g *Graph) Degrees() map[string]int {
	degrees := make(map[string]int, len(g.nodes))
	for _, label := range g.nodes {
		degrees[label] = 0
	}
	for _, e := range g.edges {
		degrees[e.Source]++
		degrees[e.Target]++
	}
	return degrees
}

// Degree returns the degree of a single node, 0 when absent.
func (g *Graph) Degree(label string) int {
	if !g.HasNode(label) {
		return 0
	}
	degree := 0
	for _, e := range g.edges {
		if e.Source == label {
			degree++
		}
		if e.Target == label {
			degree++
		}
	}
	return degree
}
