package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/modgraph/pkg/errors"
	"github.com/matzehuels/modgraph/pkg/graph"
	"github.com/matzehuels/modgraph/pkg/render/nodelink"
)

// DefaultDOTPath is the file [ExportDOT] callers write to when no output
// path is configured.
const DefaultDOTPath = "graph"

type document struct {
	Nodes []node `json:"nodes"`
	Edges []edge `json:"edges"`
}

type node struct {
	ID   string         `json:"id"`
	Meta graph.Metadata `json:"meta,omitempty"`
}

type edge struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Mandatory bool   `json:"mandatory"`
}

// WriteDOT renders g with [nodelink.ToDOT] and writes it to w.
func WriteDOT(g *graph.Graph, w io.Writer, opts nodelink.Options) error {
	if _, err := io.WriteString(w, nodelink.ToDOT(g, opts)); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// ExportDOT writes g as DOT to the file at path, replacing any existing
// file. Failures are reported as [errors.ErrCodeInternal].
func ExportDOT(g *graph.Graph, path string, opts nodelink.Options) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteDOT(g, w, opts)
	})
}

// WriteJSON encodes g as JSON and writes it to w.
// The output lists every node, with metadata, and every edge with its
// mandatory flag. It can be read back with [ReadJSON].
func WriteJSON(g *graph.Graph, w io.Writer) error {
	edges := g.Edges()
	out := document{
		Nodes: make([]node, 0, g.NodeCount()),
		Edges: make([]edge, len(edges)),
	}

	for _, n := range g.Nodes() {
		out.Nodes = append(out.Nodes, node{ID: n.ID, Meta: n.Meta})
	}
	for i, e := range edges {
		out.Edges[i] = edge{From: e.From, To: e.To, Mandatory: e.Mandatory}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes g to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(g *graph.Graph, path string) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteJSON(g, w)
	})
}

// WriteSVG writes rendered SVG bytes to the file at path.
func WriteSVG(svg []byte, path string) error {
	return writeFile(path, func(w io.Writer) error {
		_, err := w.Write(svg)
		return err
	})
}

// writeFile writes to a temporary file next to path and renames it into
// place once write and close succeed, so a failed write never leaves a
// truncated file at path. Any previous file at path is kept on failure.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	tmp := f.Name()

	if err := write(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeInternal, err, "close %s", path)
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeInternal, err, "chmod %s", path)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeInternal, err, "rename %s", path)
	}
	return nil
}
