// Package graph provides the node-link serialization format for positioned
// graphs and curve output.
//
// The JSON format carries node coordinates alongside the edge list:
//
//	{
//	  "nodes": [{"id": "a", "x": 0, "y": 0}, {"id": "b", "x": 10, "y": 0}],
//	  "edges": [{"from": "a", "to": "b"}]
//	}
//
// Use [Graph.EdgeList] and [Graph.Positions] to convert into the generator's
// inputs, and [MarshalCurves]/[WriteCurves] to serialize its output as a
// JSON array of polylines. All file and stream I/O lives at this boundary;
// the generator itself never touches it.
package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/edgebend/pkg/curve"
	"github.com/matzehuels/edgebend/pkg/errors"
	"github.com/matzehuels/edgebend/pkg/geom"
)

// Node is a positioned graph node.
type Node struct {
	ID    string  `json:"id"`
	Label string  `json:"label,omitempty"` // Display label (defaults to ID)
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n *Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Edge is a directed edge in the serialization format.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Graph is the canonical serialization format for positioned graphs.
// Edge order is significant: curve output is parallel to it.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// EdgeList converts the serialized edges into generator input, preserving
// order.
func (g Graph) EdgeList() []curve.Edge {
	out := make([]curve.Edge, len(g.Edges))
	for i, e := range g.Edges {
		out[i] = curve.Edge{From: e.From, To: e.To}
	}
	return out
}

// Positions builds the node-ID to coordinate mapping for the generator.
// Duplicate node IDs are an INVALID_GRAPH error.
func (g Graph) Positions() (map[string]geom.Point, error) {
	pos := make(map[string]geom.Point, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.ID == "" {
			return nil, errors.New(errors.ErrCodeInvalidGraph, "node with empty ID")
		}
		if _, dup := pos[n.ID]; dup {
			return nil, errors.New(errors.ErrCodeInvalidGraph, "duplicate node ID %q", n.ID)
		}
		pos[n.ID] = geom.Pt(n.X, n.Y)
	}
	return pos, nil
}

// Validate checks structural consistency: node IDs are non-empty and unique,
// and every edge endpoint references a known node.
func (g Graph) Validate() error {
	pos, err := g.Positions()
	if err != nil {
		return err
	}
	for _, e := range g.Edges {
		if _, ok := pos[e.From]; !ok {
			return errors.New(errors.ErrCodeInvalidGraph, "edge references unknown node %q", e.From)
		}
		if _, ok := pos[e.To]; !ok {
			return errors.New(errors.ErrCodeInvalidGraph, "edge references unknown node %q", e.To)
		}
	}
	return nil
}

// MarshalGraph serializes a Graph to pretty-printed JSON bytes.
func MarshalGraph(g Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteGraph(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalGraph deserializes JSON bytes to a Graph.
func UnmarshalGraph(data []byte) (Graph, error) {
	return ReadGraph(bytes.NewReader(data))
}

// WriteGraph writes a Graph as indented JSON to w.
func WriteGraph(g Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g); err != nil {
		return fmt.Errorf("encode graph: %w", err)
	}
	return nil
}

// WriteGraphFile writes a Graph to a JSON file.
// The file is created with 0644 permissions.
func WriteGraphFile(g Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteGraph(g, f)
}

// ReadGraph decodes a JSON graph from r.
func ReadGraph(r io.Reader) (Graph, error) {
	var g Graph
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return Graph{}, errors.Wrap(errors.ErrCodeInvalidGraph, err, "decode graph")
	}
	return g, nil
}

// ReadGraphFile reads a JSON file and returns the decoded Graph.
func ReadGraphFile(path string) (Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return Graph{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ReadGraph(f)
}

// MarshalCurves serializes generator output as a JSON array of polylines,
// each polyline an array of [x, y] pairs, parallel to the input edge list.
func MarshalCurves(curves []curve.Polyline) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCurves(curves, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteCurves writes generator output as JSON to w.
func WriteCurves(curves []curve.Polyline, w io.Writer) error {
	out := make([][][2]float64, len(curves))
	for i, c := range curves {
		pts := make([][2]float64, len(c))
		for j, p := range c {
			pts[j] = [2]float64{p.X, p.Y}
		}
		out[i] = pts
	}
	enc := json.NewEncoder(w)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode curves: %w", err)
	}
	return nil
}
