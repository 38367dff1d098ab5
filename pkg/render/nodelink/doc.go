// Package nodelink renders mod dependency graphs as node-link diagrams.
//
// # DOT Format
//
// [ToDOT] produces Graphviz DOT source with numbered nodes labelled by mod
// ID. Optional dependencies are drawn in [OptionalEdgeColor]; mandatory ones
// use the Graphviz default. The plain output can be fed to any Graphviz
// tool:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	os.WriteFile("graph", []byte(dot), 0644)
//
// With [Options.Styled], the output also sets a left-to-right layout and
// marks mods that are depended on but not installed with a dashed outline.
//
// # Rendering
//
// [RenderSVG] renders DOT source in-process:
//
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering, so no Graphviz installation is required.
package nodelink
