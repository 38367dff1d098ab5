package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/modgraph/pkg/graph"
	"github.com/matzehuels/modgraph/pkg/inventory"
)

// OptionalEdgeColor is the colour of edges for optional dependencies.
const OptionalEdgeColor = "gray36"

// Options configures DOT generation.
type Options struct {
	// Styled adds graph-level layout attributes and draws nodes that no
	// archive declared with a dashed outline. When false, the output
	// carries only labels and edge colours.
	Styled bool
}

// ToDOT converts a dependency graph to Graphviz DOT format.
//
// Nodes are numbered in insertion order and labelled with their mod ID.
// Mandatory edges carry an empty attribute list and optional edges are
// coloured [OptionalEdgeColor]:
//
//	digraph {
//	    0 [ label = "create" ]
//	    1 [ label = "flywheel" ]
//	    2 [ label = "jei" ]
//	    0 -> 1 [ ]
//	    0 -> 2 [ color = gray36 ]
//	}
//
// The resulting DOT string can be rendered with [RenderSVG].
func ToDOT(g *graph.Graph, opts Options) string {
	index := make(map[string]int, g.NodeCount())

	var buf bytes.Buffer
	buf.WriteString("digraph {\n")
	if opts.Styled {
		buf.WriteString("    rankdir = LR\n")
		buf.WriteString("    bgcolor = \"transparent\"\n")
		buf.WriteString("    node [ shape = box, style = \"rounded,filled\", fillcolor = white ]\n")
	}

	for i, n := range g.Nodes() {
		index[n.ID] = i
		fmt.Fprintf(&buf, "    %d [ %s]\n", i, strings.Join(nodeAttrs(g, n, opts), ""))
	}

	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "    %d -> %d [ %s]\n", index[e.From], index[e.To], edgeAttrs(e))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(g *graph.Graph, n *graph.Node, opts Options) []string {
	attrs := []string{fmt.Sprintf("label = %s ", strconv.Quote(n.ID))}
	if opts.Styled && !inventory.IsDeclared(g, n.ID) {
		attrs = append(attrs, "style = \"rounded,filled,dashed\" ", "fillcolor = lightgrey ")
	}
	return attrs
}

func edgeAttrs(e graph.Edge) string {
	if e.Mandatory {
		return ""
	}
	return "color = " + OptionalEdgeColor + " "
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the root <svg> tag with one whose viewBox
// starts at the origin, so the image scales cleanly when embedded.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
