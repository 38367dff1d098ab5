// Package graph provides the directed dependency graph that modgraph builds
// from mod manifests.
//
// # Overview
//
// Nodes are mod identifiers and edges are declared dependencies, each
// carrying a Mandatory flag. Unlike a package-manager graph, a graph built
// from a folder of third-party archives is noisy: mods declare dependencies
// on mods that are not installed, declare themselves as dependencies, and
// occasionally form cycles. The [Graph] type accepts all of that.
//
// # Basic Usage
//
// Create a graph with [New]. Declared mods are added with [Graph.AddNode],
// which is idempotent. Dependencies are added with [Graph.AddEdge], which
// creates missing endpoints on the fly:
//
//	g := graph.New()
//	g.AddNode(graph.Node{ID: "create"})
//	g.AddEdge(graph.Edge{From: "create", To: "flywheel", Mandatory: true})
//	g.NodeCount() // 2
//
// At most one edge exists per ordered pair. Adding the same edge twice
// overwrites its Mandatory flag.
//
// # Ordering
//
// Nodes keep insertion order, and so do the outgoing edges of each node.
// [Graph.NodeIDs], [Graph.Nodes] and [Graph.Edges] follow that order, which
// keeps the order-sensitive reductions in [transform] reproducible.
//
// # Cycles
//
// [Graph.Validate] reports [ErrGraphHasCycle] when the graph contains a
// directed cycle. Callers treat this as a diagnostic, not a failure.
//
// [transform]: github.com/matzehuels/modgraph/pkg/graph/transform
package graph
