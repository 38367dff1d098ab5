package graph

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is empty.
	// All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrGraphHasCycle is returned by [Graph.Validate] when a cycle is detected.
	// Cycles are legal in a dependency graph built from manifests, but they
	// are worth reporting. Detection uses depth-first search with
	// white/gray/black coloring.
	ErrGraphHasCycle = errors.New("graph contains a cycle")
)

// Metadata stores arbitrary key-value pairs attached to nodes.
// It is commonly used to record the archive a mod was declared in.
// Metadata maps are never nil once a node is part of a graph.
type Metadata map[string]any

// Node represents a mod identifier in the dependency graph.
//
// The zero value is not usable - ID must be set before adding to a Graph.
type Node struct {
	ID   string   // Mod identifier (also used as display label)
	Meta Metadata // Arbitrary key-value metadata (never nil after AddNode)
}

// Edge represents a declared dependency From → To.
type Edge struct {
	From      string // Depending mod
	To        string // Dependency target
	Mandatory bool   // False for optional (soft) dependencies
}

// Graph is a directed dependency graph keyed by mod identifier.
//
// Nodes keep insertion order, and so do the outgoing edges of each node,
// which makes every traversal in this package deterministic. At most one
// edge exists per ordered pair: adding an existing edge overwrites its
// Mandatory flag. Adding an edge creates missing endpoints on the fly, so a
// dependency may reference a mod that was never declared.
//
// The zero value is not usable - use New to create a Graph.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	nodes    map[string]*Node
	order    []string
	outgoing map[string][]string // nodeID -> targets, insertion order
	incoming map[string][]string // nodeID -> sources, insertion order
	flags    map[edgeKey]bool    // (from, to) -> mandatory
}

type edgeKey struct{ from, to string }

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		nodes:    make(map[string]*Node),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
		flags:    make(map[edgeKey]bool),
	}
}

// AddNode adds a node to the graph. Adding an ID that already exists is a
// no-op and returns false; the existing node keeps its metadata. Returns
// ErrInvalidNodeID if the ID is empty.
func (g *Graph) AddNode(n Node) (bool, error) {
	if n.ID == "" {
		return false, ErrInvalidNodeID
	}
	if _, exists := g.nodes[n.ID]; exists {
		return false, nil
	}
	if n.Meta == nil {
		n.Meta = Metadata{}
	}
	node := &n
	g.nodes[node.ID] = node
	g.order = append(g.order, node.ID)
	return true, nil
}

func (g *Graph) ensureNode(id string) {
	if _, ok := g.nodes[id]; !ok {
		_, _ = g.AddNode(Node{ID: id})
	}
}

// AddEdge adds the directed edge from→to, creating missing endpoints.
// If the edge already exists its Mandatory flag is overwritten and no
// duplicate is created. Returns ErrInvalidNodeID if either ID is empty.
func (g *Graph) AddEdge(e Edge) error {
	if e.From == "" || e.To == "" {
		return ErrInvalidNodeID
	}
	g.ensureNode(e.From)
	g.ensureNode(e.To)

	key := edgeKey{e.From, e.To}
	if _, exists := g.flags[key]; !exists {
		g.outgoing[e.From] = append(g.outgoing[e.From], e.To)
		g.incoming[e.To] = append(g.incoming[e.To], e.From)
	}
	g.flags[key] = e.Mandatory
	return nil
}

// RemoveEdge removes the edge from→to and reports whether it existed.
func (g *Graph) RemoveEdge(from, to string) bool {
	key := edgeKey{from, to}
	if _, ok := g.flags[key]; !ok {
		return false
	}
	delete(g.flags, key)
	g.outgoing[from] = slices.DeleteFunc(g.outgoing[from], func(s string) bool { return s == to })
	g.incoming[to] = slices.DeleteFunc(g.incoming[to], func(s string) bool { return s == from })
	return true
}

// HasEdge reports whether the edge from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.flags[edgeKey{from, to}]
	return ok
}

// Edge returns the edge from→to and true, or a zero Edge and false.
func (g *Graph) Edge(from, to string) (Edge, bool) {
	mandatory, ok := g.flags[edgeKey{from, to}]
	if !ok {
		return Edge{}, false
	}
	return Edge{From: from, To: to, Mandatory: mandatory}, true
}

// Node returns the node with the given ID and true, or nil and false if not found.
// The returned pointer refers to the node in the graph, so metadata changes
// are visible to later readers.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// NodeIDs returns all node IDs in insertion order.
func (g *Graph) NodeIDs() []string { return slices.Clone(g.order) }

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, len(g.order))
	for i, id := range g.order {
		nodes[i] = g.nodes[id]
	}
	return nodes
}

// Edges returns a copy of all edges, grouped by source in node insertion
// order and, within a source, in the order the edges were added.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, len(g.flags))
	for _, from := range g.order {
		for _, to := range g.outgoing[from] {
			edges = append(edges, Edge{From: from, To: to, Mandatory: g.flags[edgeKey{from, to}]})
		}
	}
	return edges
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.order) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.flags) }

// Children returns the IDs of nodes this node depends on.
// The returned slice should not be modified.
func (g *Graph) Children(id string) []string { return g.outgoing[id] }

// Parents returns the IDs of nodes that depend on this node.
// The returned slice should not be modified.
func (g *Graph) Parents(id string) []string { return g.incoming[id] }

// OutDegree returns the number of outgoing edges from the node.
func (g *Graph) OutDegree(id string) int { return len(g.outgoing[id]) }

// InDegree returns the number of incoming edges to the node.
func (g *Graph) InDegree(id string) int { return len(g.incoming[id]) }

// Sources returns nodes nothing depends on, in insertion order.
func (g *Graph) Sources() []*Node {
	var sources []*Node
	for _, id := range g.order {
		if len(g.incoming[id]) == 0 {
			sources = append(sources, g.nodes[id])
		}
	}
	return sources
}

// Sinks returns nodes with no dependencies, in insertion order.
func (g *Graph) Sinks() []*Node {
	var sinks []*Node
	for _, id := range g.order {
		if len(g.outgoing[id]) == 0 {
			sinks = append(sinks, g.nodes[id])
		}
	}
	return sinks
}

// Reachable reports whether to can be reached from from by following at
// least one edge. The skip edge, if non-zero, is treated as absent.
func (g *Graph) Reachable(from, to string, skip Edge) bool {
	visited := make(map[string]bool, len(g.order))
	stack := []string{from}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range g.outgoing[cur] {
			if cur == skip.From && next == skip.To {
				continue
			}
			if next == to {
				return true
			}
			if !visited[next] {
				visited[next] = true
				stack = append(stack, next)
			}
		}
	}
	return false
}

// Validate returns ErrGraphHasCycle if the graph contains a directed cycle,
// self-loops included. Runs in O(N+E).
func (g *Graph) Validate() error {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(g.order))
	var hasCycle bool

	var dfs func(id string)
	dfs = func(id string) {
		color[id] = gray
		for _, child := range g.outgoing[id] {
			switch color[child] {
			case white:
				dfs(child)
			case gray:
				hasCycle = true
			}
			if hasCycle {
				return
			}
		}
		color[id] = black
	}

	for _, id := range g.order {
		if color[id] == white {
			dfs(id)
			if hasCycle {
				return ErrGraphHasCycle
			}
		}
	}
	return nil
}
