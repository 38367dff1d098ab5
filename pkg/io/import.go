package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/modgraph/pkg/errors"
	"github.com/matzehuels/modgraph/pkg/graph"
)

// ReadJSON decodes a graph written by [WriteJSON] from r.
//
// The input must be a JSON object with "nodes" and "edges" arrays:
//
//	{
//	  "nodes": [{"id": "create"}, {"id": "flywheel"}],
//	  "edges": [{"from": "create", "to": "flywheel", "mandatory": true}]
//	}
//
// Nodes are added in listed order, so DOT numbering survives a round trip.
// Edges may reference nodes that are not listed; they are created on
// insertion, as when the graph was built. Cycles are accepted.
//
// ReadJSON returns an error if the JSON is malformed, a node has an empty
// or duplicate ID, or an edge has an empty endpoint.
func ReadJSON(r io.Reader) (*graph.Graph, error) {
	var data document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	g := graph.New()
	for _, n := range data.Nodes {
		added, err := g.AddNode(graph.Node{ID: n.ID, Meta: n.Meta})
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", n.ID, err)
		}
		if !added {
			return nil, fmt.Errorf("node %q: duplicate id", n.ID)
		}
	}
	for _, e := range data.Edges {
		if err := g.AddEdge(graph.Edge{From: e.From, To: e.To, Mandatory: e.Mandatory}); err != nil {
			return nil, fmt.Errorf("edge %s->%s: %w", e.From, e.To, err)
		}
	}

	return g, nil
}

// ImportJSON reads a JSON file at path and returns the decoded graph.
// A missing file is reported as [errors.ErrCodeFileNotFound]; malformed
// content as [errors.ErrCodeInvalidInput].
func ImportJSON(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	g, err := ReadJSON(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return g, nil
}
