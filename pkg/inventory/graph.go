package inventory

import (
	"github.com/matzehuels/modgraph/pkg/graph"
)

// PlatformIDs are the pseudo-dependencies every mod declares on the mod
// loader and the game. They are never added to the graph.
var PlatformIDs = []string{"forge", "minecraft"}

// BuildOptions configures [BuildGraph].
type BuildOptions struct {
	// MandatoryOnly drops optional dependencies.
	MandatoryOnly bool

	// Exclude lists further dependency targets to drop, on top of
	// [PlatformIDs].
	Exclude []string
}

// BuildStats describes what [BuildGraph] did.
type BuildStats struct {
	// Declared counts dependency declarations seen on loaded records.
	Declared int
	// Added counts edge insertions, duplicates included.
	Added int
	// Excluded counts declarations dropped as platform or excluded targets.
	Excluded int
	// Optional counts optional declarations dropped by MandatoryOnly.
	Optional int
}

// BuildGraph builds the dependency graph for records.
//
// Every non-empty ModID becomes a node, in record order; repeated IDs
// collapse into the first node, whose metadata keeps the first archive
// that declared it. Every dependency becomes an edge ModID → target, unless
// the target is excluded. Undeclared targets are created by the edge
// insertion and carry no "declared" metadata. Sentinel records contribute
// nothing.
func BuildGraph(records []Record, opts BuildOptions) (*graph.Graph, BuildStats) {
	excluded := make(map[string]bool, len(PlatformIDs)+len(opts.Exclude))
	for _, id := range PlatformIDs {
		excluded[id] = true
	}
	for _, id := range opts.Exclude {
		excluded[id] = true
	}

	g := graph.New()
	for _, r := range records {
		if r.Failed() {
			continue
		}
		_, _ = g.AddNode(graph.Node{ID: r.ModID, Meta: graph.Metadata{
			"source":   r.Source,
			"declared": true,
		}})
	}

	var stats BuildStats
	for _, r := range records {
		if r.Failed() {
			continue
		}
		for _, d := range r.Dependencies {
			stats.Declared++
			if excluded[d.ModID] {
				stats.Excluded++
				continue
			}
			if opts.MandatoryOnly && !d.Mandatory {
				stats.Optional++
				continue
			}
			if err := g.AddEdge(graph.Edge{From: r.ModID, To: d.ModID, Mandatory: d.Mandatory}); err != nil {
				// Empty dependency target; nothing to draw.
				continue
			}
			stats.Added++
		}
	}
	return g, stats
}

// IsDeclared reports whether the node for id came from a loaded archive
// rather than from a dependency on a mod that is not installed.
func IsDeclared(g *graph.Graph, id string) bool {
	n, ok := g.Node(id)
	if !ok {
		return false
	}
	declared, _ := n.Meta["declared"].(bool)
	return declared
}

// Undeclared returns the IDs of graph nodes that no loaded archive
// declared, in graph order. These are dependencies on missing mods.
func Undeclared(g *graph.Graph) []string {
	var out []string
	for _, id := range g.NodeIDs() {
		if !IsDeclared(g, id) {
			out = append(out, id)
		}
	}
	return out
}
