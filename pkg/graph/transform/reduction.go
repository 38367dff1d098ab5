package transform

import "github.com/matzehuels/modgraph/pkg/graph"

// Reduce removes self-loops and then redundant edges from g in place,
// using the algorithm selected by mode. An unknown mode is treated as
// [ModeSinglePass].
//
// Reduce never removes nodes, and every node pair that was connected by a
// path before the call is still connected afterwards.
func Reduce(g *graph.Graph, mode Mode) Result {
	res := Result{
		Mode:        mode,
		NodesBefore: g.NodeCount(),
		EdgesBefore: g.EdgeCount(),
	}

	res.SelfLoopsRemoved = RemoveSelfLoops(g)
	switch mode {
	case ModeFull:
		res.TransitiveEdgesRemoved = FullReduction(g)
	default:
		res.Mode = ModeSinglePass
		res.TransitiveEdgesRemoved = TwoHopReduction(g)
	}

	res.NodesAfter = g.NodeCount()
	res.EdgesAfter = g.EdgeCount()
	return res
}

// RemoveSelfLoops removes the edge N→N for every node N and returns the
// number of edges removed. A mod that lists itself as a dependency adds
// nothing to the reachability relation.
func RemoveSelfLoops(g *graph.Graph) int {
	removed := 0
	for _, id := range g.NodeIDs() {
		if g.RemoveEdge(id, id) {
			removed++
		}
	}
	return removed
}

// TwoHopReduction removes an edge A→C whenever edges A→B and B→C both exist,
// and returns the number of edges removed.
//
// # Algorithm
//
// A single pass visits every ordered triple (A, B, C) with A, B and C
// ranging over the nodes in insertion order. For each A and B with A→B
// present, every C with B→C present causes A→C to be removed. Edge
// existence is checked against the live graph, so a removal is visible to
// every triple visited after it.
//
// The pass is not repeated. Shortcuts implied only by paths longer than
// two hops, or whose witness edge was removed earlier in the pass, are
// kept. For example, with nodes inserted A, B, C, D and edges A→B, B→C,
// C→D, A→C, A→D, the triple (A, B, C) removes A→C before (A, C, D) is
// visited, so A→D survives. Inserting the same nodes as D, C, B, A removes
// A→D first and leaves the chain A→B→C→D.
//
// Every removal happens while its two-hop witness is present, so
// reachability is preserved, cycles included.
//
// # Performance
//
// Time complexity is O(V² + E·V) edge lookups: the innermost loop only runs
// for pairs (A, B) joined by an edge.
func TwoHopReduction(g *graph.Graph) int {
	nodes := g.NodeIDs()
	removed := 0
	for _, a := range nodes {
		for _, b := range nodes {
			if !g.HasEdge(a, b) {
				continue
			}
			for _, c := range nodes {
				if g.HasEdge(b, c) && g.RemoveEdge(a, c) {
					removed++
				}
			}
		}
	}
	return removed
}

// FullReduction removes every edge (u, v) for which v is still reachable
// from u once that edge is ignored, and returns the number of edges
// removed.
//
// Edges are visited in the order returned by [graph.Graph.Edges] and each
// check runs against the live graph. On an acyclic graph the result is the
// unique transitive reduction. On a cyclic graph the result is a minimal
// edge set with the same reachability, which edge set depends on visiting
// order.
//
// # Performance
//
// Each edge triggers one depth-first search, so time complexity is
// O(E·(V+E)). Dependency graphs of a few hundred mods reduce in
// milliseconds.
func FullReduction(g *graph.Graph) int {
	removed := 0
	for _, e := range g.Edges() {
		if g.Reachable(e.From, e.To, e) {
			g.RemoveEdge(e.From, e.To)
			removed++
		}
	}
	return removed
}
