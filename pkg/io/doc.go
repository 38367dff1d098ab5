// Package io writes dependency graphs to files and reads them back.
//
// # DOT Export
//
// [ExportDOT] writes the Graphviz DOT produced by
// [github.com/matzehuels/modgraph/pkg/render/nodelink.ToDOT] to a file,
// by default [DefaultDOTPath]:
//
//	err := io.ExportDOT(g, io.DefaultDOTPath, nodelink.Options{})
//
// # JSON Format
//
// [ExportJSON] writes a node and edge listing:
//
//	{
//	  "nodes": [
//	    {"id": "create", "meta": {"declared": true, "source": "mods/create.jar"}},
//	    {"id": "jei"}
//	  ],
//	  "edges": [
//	    {"from": "create", "to": "jei", "mandatory": false}
//	  ]
//	}
//
// Nodes appear in insertion order. [ImportJSON] and [ReadJSON] rebuild an
// identical graph from this format, which the render command uses to turn
// an earlier export into SVG.
//
// # Errors
//
// File functions return [github.com/matzehuels/modgraph/pkg/errors.Error]
// values: output failures carry ErrCodeInternal, missing input files
// ErrCodeFileNotFound.
package io
