// Package graphfile reads and writes the small JSON graph format
// cmd/graphlayout operates on: nodes with widths/heights and optional
// compound parents, edges with optional names/minlen/weight, and (on
// write) the computed x/y/rank/points fields.
package graphfile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/arjunmenon/graphlayout/graph"
)

type nodeJSON struct {
	ID     string  `json:"id"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Parent string  `json:"parent,omitempty"`

	Rank *int       `json:"rank,omitempty"`
	X    *float64   `json:"x,omitempty"`
	Y    *float64   `json:"y,omitempty"`
}

type pointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type edgeJSON struct {
	V      string  `json:"v"`
	W      string  `json:"w"`
	Name   string  `json:"name,omitempty"`
	MinLen int     `json:"minlen,omitempty"`
	Weight float64 `json:"weight,omitempty"`

	Points []pointJSON `json:"points,omitempty"`
}

type graphJSON struct {
	Nodes []nodeJSON `json:"nodes"`
	Edges []edgeJSON `json:"edges"`
}

// Read loads a graph.Graph from a JSON file in the schema above. Unset
// MinLen defaults to 1 and unset Weight to 1, matching
// graph.DefaultEdgeLabel.
func Read(path string) (*graph.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph %s: %w", path, err)
	}

	var doc graphJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse graph %s: %w", path, err)
	}

	g := graph.New(graph.Options{Directed: true, Compound: true, Multigraph: true})

	for _, n := range doc.Nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("parse graph %s: node with empty id", path)
		}
		g.SetNode(n.ID, graph.NodeLabel{Width: n.Width, Height: n.Height})
	}
	for _, n := range doc.Nodes {
		if n.Parent != "" {
			g.SetParent(n.ID, n.Parent)
		}
	}

	for _, e := range doc.Edges {
		minLen := e.MinLen
		if minLen == 0 {
			minLen = 1
		}
		weight := e.Weight
		if weight == 0 {
			weight = 1
		}
		g.SetEdge(graph.EdgeID{V: e.V, W: e.W, Name: e.Name}, &graph.EdgeLabel{
			MinLen: minLen,
			Weight: weight,
		})
	}

	return g, nil
}

// Write serializes g back to path in the same schema, populating each
// node's computed rank/x/y and each edge's routed points.
func Write(path string, g *graph.Graph) error {
	doc := graphJSON{}

	for _, id := range g.Nodes() {
		n, _ := g.Node(id)
		rank := n.Rank
		x, y := n.X, n.Y
		doc.Nodes = append(doc.Nodes, nodeJSON{
			ID:     id,
			Width:  n.Width,
			Height: n.Height,
			Parent: g.Parent(id),
			Rank:   &rank,
			X:      &x,
			Y:      &y,
		})
	}

	for _, eid := range g.Edges() {
		e, _ := g.Edge(eid)
		ej := edgeJSON{V: eid.V, W: eid.W, Name: eid.Name, MinLen: e.MinLen, Weight: e.Weight}
		for _, p := range e.Points {
			ej.Points = append(ej.Points, pointJSON{X: p.X, Y: p.Y})
		}
		doc.Edges = append(doc.Edges, ej)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode graph %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write graph %s: %w", path, err)
	}
	return nil
}
