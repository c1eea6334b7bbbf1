// Package graph implements the multigraph-with-compound-structure container
// the layout pipeline runs on: node/edge/parent queries, multigraph
// identity, and compound parent/child bookkeeping, with no layout logic of
// its own.
//
// Node and edge adjacency is indexed twice: once in plain Go maps (the
// source of truth, keyed by the caller-facing string ids) and once in a
// gonum/graph/simple.DirectedGraph kept in sync on every mutation, the way
// ritzau-deps-analyzer's FileGraph wraps simple.DirectedGraph behind a
// string-id registry. The gonum projection is what the acyclic stage's
// cycle check runs gonum/graph/topo algorithms against; it collapses
// parallel edges between the same pair to one, which is correct for
// reachability, topological order, and cycle detection, and it leaves
// self-loops out.
package graph

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph/simple"
)

// NodeID identifies a node. Lexicographic order on NodeID is the
// deterministic tie-break used throughout the pipeline.
type NodeID = string

// EdgeID identifies one edge of a (possibly parallel) bundle between V and
// W. Name distinguishes parallel edges in a multigraph. When Acyclic
// reverses a multigraph edge it gives the reversed edge a fresh name and
// keeps the original one in the label's ForwardName, so the original edge
// can always be recovered.
type EdgeID struct {
	V, W, Name string
}

func (e EdgeID) String() string {
	return fmt.Sprintf("%s->%s[%s]", e.V, e.W, e.Name)
}

// Reversed returns the edge id with V and W swapped, Name unchanged.
func (e EdgeID) Reversed() EdgeID {
	return EdgeID{V: e.W, W: e.V, Name: e.Name}
}

// Graph is a directed multigraph with compound (parent/children) structure.
type Graph struct {
	directed   bool
	compound   bool
	multigraph bool

	label Label

	nodes map[NodeID]NodeLabel
	edges map[EdgeID]EdgeLabel

	outEdges map[NodeID][]EdgeID
	inEdges  map[NodeID][]EdgeID

	parent   map[NodeID]NodeID
	children map[NodeID]map[NodeID]bool

	defaultEdgeLabel func() EdgeLabel

	ids     map[NodeID]int64
	revIDs  map[int64]NodeID
	nextID  int64
	simple  *simple.DirectedGraph
}

// Options configure graph construction: multigraph, compound, directed.
type Options struct {
	Directed   bool
	Compound   bool
	Multigraph bool
}

// New creates an empty graph.
func New(opts Options) *Graph {
	return &Graph{
		directed:         opts.Directed,
		compound:         opts.Compound,
		multigraph:       opts.Multigraph,
		label:            DefaultLabel(),
		nodes:            make(map[NodeID]NodeLabel),
		edges:            make(map[EdgeID]EdgeLabel),
		outEdges:         make(map[NodeID][]EdgeID),
		inEdges:          make(map[NodeID][]EdgeID),
		parent:           make(map[NodeID]NodeID),
		children:         make(map[NodeID]map[NodeID]bool),
		defaultEdgeLabel: func() EdgeLabel { return DefaultEdgeLabel() },
		ids:              make(map[NodeID]int64),
		revIDs:           make(map[int64]NodeID),
		simple:           simple.NewDirectedGraph(),
	}
}

// IsCompound reports whether this graph tracks parent/child structure.
func (g *Graph) IsCompound() bool { return g.compound }

// IsMultigraph reports whether this graph allows parallel edges.
func (g *Graph) IsMultigraph() bool { return g.multigraph }

// GraphLabel returns the graph-level attribute bag.
func (g *Graph) GraphLabel() Label { return g.label }

// SetGraphLabel replaces the graph-level attribute bag.
func (g *Graph) SetGraphLabel(l Label) { g.label = l }

// SetDefaultEdgeLabel installs the factory used to default a new edge's
// label when SetEdge is called without one.
func (g *Graph) SetDefaultEdgeLabel(factory func() EdgeLabel) {
	g.defaultEdgeLabel = factory
}

func (g *Graph) gonumID(id NodeID) int64 {
	gid, ok := g.ids[id]
	if !ok {
		gid = g.nextID
		g.nextID++
		g.ids[id] = gid
		g.revIDs[gid] = id
	}
	return gid
}

// Nodes returns all node ids in lexicographic order.
func (g *Graph) Nodes() []NodeID {
	out := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// HasNode reports whether id is present.
func (g *Graph) HasNode(id NodeID) bool {
	_, ok := g.nodes[id]
	return ok
}

// Node returns id's label. The second return is false if id is absent.
func (g *Graph) Node(id NodeID) (NodeLabel, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// SetNode creates or updates a node's label.
func (g *Graph) SetNode(id NodeID, label NodeLabel) {
	if _, exists := g.nodes[id]; !exists {
		g.simple.AddNode(simple.Node(g.gonumID(id)))
		if g.compound {
			g.parent[id] = ""
			g.children[id] = make(map[NodeID]bool)
		}
	}
	g.nodes[id] = label
}

// RemoveNode removes id along with every incident edge. Compound children
// are reparented to id's own parent, matching graphlib's behavior.
func (g *Graph) RemoveNode(id NodeID) {
	if _, ok := g.nodes[id]; !ok {
		return
	}
	for _, eid := range append([]EdgeID{}, g.outEdges[id]...) {
		g.RemoveEdge(eid)
	}
	for _, eid := range append([]EdgeID{}, g.inEdges[id]...) {
		g.RemoveEdge(eid)
	}
	if g.compound {
		p := g.parent[id]
		for child := range g.children[id] {
			g.SetParent(child, p)
		}
		delete(g.children, id)
		if p != "" {
			delete(g.children[p], id)
		}
		delete(g.parent, id)
	}
	delete(g.nodes, id)
	delete(g.outEdges, id)
	delete(g.inEdges, id)
	gid := g.ids[id]
	g.simple.RemoveNode(gid)
	delete(g.ids, id)
	delete(g.revIDs, gid)
}

// Parent returns id's compound parent, or "" if id is a root or the graph
// is not compound.
func (g *Graph) Parent(id NodeID) NodeID {
	if !g.compound {
		return ""
	}
	return g.parent[id]
}

// SetParent assigns id's compound parent. parent == "" makes id a root.
func (g *Graph) SetParent(id, parent NodeID) {
	if !g.compound {
		return
	}
	if old := g.parent[id]; old != "" {
		delete(g.children[old], id)
	}
	g.parent[id] = parent
	if parent != "" {
		if g.children[parent] == nil {
			g.children[parent] = make(map[NodeID]bool)
		}
		g.children[parent][id] = true
	}
}

// Children returns id's compound children in lexicographic order. Passing
// "" returns the top-level (parentless) nodes.
func (g *Graph) Children(id NodeID) []NodeID {
	if !g.compound {
		if id == "" {
			return g.Nodes()
		}
		return nil
	}
	var out []NodeID
	if id == "" {
		for _, v := range g.Nodes() {
			if g.parent[v] == "" {
				out = append(out, v)
			}
		}
		return out
	}
	for child := range g.children[id] {
		out = append(out, child)
	}
	sort.Strings(out)
	return out
}

// Edges returns every edge id in deterministic order (by V, then W, then
// Name).
func (g *Graph) Edges() []EdgeID {
	out := make([]EdgeID, 0, len(g.edges))
	for id := range g.edges {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.V != b.V {
			return a.V < b.V
		}
		if a.W != b.W {
			return a.W < b.W
		}
		return a.Name < b.Name
	})
	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edge returns eid's label.
func (g *Graph) Edge(eid EdgeID) (EdgeLabel, bool) {
	e, ok := g.edges[eid]
	return e, ok
}

// SetEdge creates or updates an edge. When eid.Name is empty and the graph
// is a multigraph, callers are expected to have assigned a unique name
// themselves (see NewEdgeName) so parallel edges stay distinguishable. A
// self-loop is stored like any other edge but is not added to the gonum
// projection.
func (g *Graph) SetEdge(eid EdgeID, label *EdgeLabel) {
	if !g.multigraph {
		eid.Name = ""
	}
	if _, exists := g.edges[eid]; !exists {
		if !g.HasNode(eid.V) {
			g.SetNode(eid.V, NodeLabel{})
		}
		if !g.HasNode(eid.W) {
			g.SetNode(eid.W, NodeLabel{})
		}
		g.outEdges[eid.V] = append(g.outEdges[eid.V], eid)
		g.inEdges[eid.W] = append(g.inEdges[eid.W], eid)
		if eid.V != eid.W && !g.simple.HasEdgeFromTo(g.gonumID(eid.V), g.gonumID(eid.W)) {
			e := g.simple.NewEdge(simple.Node(g.gonumID(eid.V)), simple.Node(g.gonumID(eid.W)))
			g.simple.SetEdge(e)
		}
	}
	if label == nil {
		l := g.defaultEdgeLabel()
		label = &l
	}
	g.edges[eid] = *label
}

// RemoveEdge deletes an edge. If it was the last parallel edge between V and
// W, the gonum reachability projection drops the connection too.
func (g *Graph) RemoveEdge(eid EdgeID) {
	if !g.multigraph {
		eid.Name = ""
	}
	if _, ok := g.edges[eid]; !ok {
		return
	}
	delete(g.edges, eid)
	g.outEdges[eid.V] = removeEdgeID(g.outEdges[eid.V], eid)
	g.inEdges[eid.W] = removeEdgeID(g.inEdges[eid.W], eid)

	stillConnected := false
	for _, other := range g.outEdges[eid.V] {
		if other.W == eid.W {
			stillConnected = true
			break
		}
	}
	if !stillConnected {
		g.simple.RemoveEdge(g.gonumID(eid.V), g.gonumID(eid.W))
	}
}

func removeEdgeID(list []EdgeID, eid EdgeID) []EdgeID {
	for i, e := range list {
		if e == eid {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// OutEdgeIDs returns the ids of edges leaving id.
func (g *Graph) OutEdgeIDs(id NodeID) []EdgeID {
	return append([]EdgeID{}, g.outEdges[id]...)
}

// InEdgeIDs returns the ids of edges entering id.
func (g *Graph) InEdgeIDs(id NodeID) []EdgeID {
	return append([]EdgeID{}, g.inEdges[id]...)
}

// Successors returns the distinct nodes reachable from id via one out edge.
func (g *Graph) Successors(id NodeID) []NodeID {
	seen := map[NodeID]bool{}
	var out []NodeID
	for _, e := range g.outEdges[id] {
		if !seen[e.W] {
			seen[e.W] = true
			out = append(out, e.W)
		}
	}
	sort.Strings(out)
	return out
}

// Predecessors returns the distinct nodes with an edge into id.
func (g *Graph) Predecessors(id NodeID) []NodeID {
	seen := map[NodeID]bool{}
	var out []NodeID
	for _, e := range g.inEdges[id] {
		if !seen[e.V] {
			seen[e.V] = true
			out = append(out, e.V)
		}
	}
	sort.Strings(out)
	return out
}

// Roots returns nodes with no incoming edges, in lexicographic order.
func (g *Graph) Roots() []NodeID {
	var out []NodeID
	for _, id := range g.Nodes() {
		if len(g.inEdges[id]) == 0 {
			out = append(out, id)
		}
	}
	return out
}

// Simple returns the gonum reachability projection: one edge per connected
// pair of nodes, regardless of multiplicity, with self-loops left out. Algorithms that only need
// topology (topological sort, cycle detection) run against this.
func (g *Graph) Simple() *simple.DirectedGraph { return g.simple }

// GonumID returns the stable gonum node id assigned to a node.
func (g *Graph) GonumID(id NodeID) int64 { return g.gonumID(id) }

// NodeForGonumID reverses GonumID.
func (g *Graph) NodeForGonumID(gid int64) (NodeID, bool) {
	id, ok := g.revIDs[gid]
	return id, ok
}

// Copy returns a deep copy, used by the driver to build the pipeline's
// working graph without mutating the caller's input.
func (g *Graph) Copy() *Graph {
	ng := New(Options{Directed: g.directed, Compound: g.compound, Multigraph: g.multigraph})
	ng.label = g.label
	ng.label.DummyChains = append([]NodeID{}, g.label.DummyChains...)
	ng.defaultEdgeLabel = g.defaultEdgeLabel

	for _, id := range g.Nodes() {
		n := g.nodes[id]
		ng.SetNode(id, n)
	}
	if g.compound {
		for _, id := range g.Nodes() {
			if p := g.parent[id]; p != "" {
				ng.SetParent(id, p)
			}
		}
	}
	for _, eid := range g.Edges() {
		l := g.edges[eid]
		ng.SetEdge(eid, &l)
	}
	return ng
}
