// Package pkg provides the libraries behind modgraph, a tool that draws the
// dependency graph of a Minecraft Forge mods folder.
//
// # Overview
//
// modgraph reads META-INF/mods.toml from every archive in a mods folder,
// builds a directed graph of mod dependencies, removes redundant edges and
// writes the result as Graphviz DOT. The pkg directory is organized into:
//
//  1. [manifest] and [inventory] - Reading archives into dependency records
//  2. [graph] and [graph/transform] - The graph and its edge reduction
//  3. [render/nodelink] and [io] - DOT generation, SVG rendering, file export
//  4. [pipeline] - Orchestration (scan → build → reduce → export)
//  5. [cache], [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
// The data flow through modgraph:
//
//	mods/*.jar
//	     ↓
//	[inventory] package (scan archives, one record per declared mod)
//	     ↓
//	[inventory.BuildGraph] (edges mod → dependency, platform IDs dropped)
//	     ↓
//	[graph/transform] package (self-loops and two-hop shortcuts removed)
//	     ↓
//	[render/nodelink] package (DOT, optionally SVG)
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil, nil)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    ModsDir: "mods",
//	    Output:  "graph",
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Stats.EdgesAfter)
//
// The stages can also be used on their own:
//
//	records, _ := inventory.Scan(ctx, "mods", inventory.Options{})
//	g, _ := inventory.BuildGraph(records, inventory.BuildOptions{})
//	transform.Reduce(g, transform.ModeSinglePass)
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//
// # Testing
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/inventory/... # Specific package
//	go test -run Example        # Examples only
//
// [manifest]: https://pkg.go.dev/github.com/matzehuels/modgraph/pkg/manifest
// [inventory]: https://pkg.go.dev/github.com/matzehuels/modgraph/pkg/inventory
// [inventory.BuildGraph]: https://pkg.go.dev/github.com/matzehuels/modgraph/pkg/inventory#BuildGraph
// [graph]: https://pkg.go.dev/github.com/matzehuels/modgraph/pkg/graph
// [graph/transform]: https://pkg.go.dev/github.com/matzehuels/modgraph/pkg/graph/transform
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/modgraph/pkg/render/nodelink
// [io]: https://pkg.go.dev/github.com/matzehuels/modgraph/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/modgraph/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/modgraph/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/modgraph/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/modgraph/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/modgraph/pkg/buildinfo
package pkg
