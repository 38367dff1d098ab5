// Package render groups the visual output formats for dependency graphs.
//
// The [nodelink] subpackage writes Graphviz DOT and renders it to SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [nodelink]: github.com/matzehuels/modgraph/pkg/render/nodelink
package render
