package graph

import "testing"

func newTestGraph() *Graph {
	return New(Options{Directed: true, Compound: true, Multigraph: true})
}

func TestSetNodeAndNode(t *testing.T) {
	g := newTestGraph()
	g.SetNode("a", NodeLabel{Width: 10, Height: 20})

	n, ok := g.Node("a")
	if !ok {
		t.Fatal("expected node a to exist")
	}
	if n.Width != 10 || n.Height != 20 {
		t.Errorf("got width=%v height=%v, want 10, 20", n.Width, n.Height)
	}
	if len(g.Nodes()) != 1 {
		t.Errorf("expected 1 node, got %d", len(g.Nodes()))
	}
}

func TestSetEdgeCreatesEndpoints(t *testing.T) {
	g := newTestGraph()
	g.SetEdge(EdgeID{V: "a", W: "b"}, &EdgeLabel{Weight: 1, MinLen: 1})

	if !g.HasNode("a") || !g.HasNode("b") {
		t.Fatal("SetEdge should create missing endpoint nodes")
	}
	if len(g.Edges()) != 1 {
		t.Errorf("expected 1 edge, got %d", len(g.Edges()))
	}
}

func TestRemoveNodeCascadesEdges(t *testing.T) {
	g := newTestGraph()
	g.SetEdge(EdgeID{V: "a", W: "b"}, &EdgeLabel{})
	g.SetEdge(EdgeID{V: "b", W: "c"}, &EdgeLabel{})

	g.RemoveNode("b")

	if len(g.Edges()) != 0 {
		t.Errorf("expected all edges touching b to be removed, got %d", len(g.Edges()))
	}
	if g.HasNode("b") {
		t.Error("expected b to be removed")
	}
}

func TestRemoveNodeReparentsChildren(t *testing.T) {
	g := newTestGraph()
	g.SetNode("p", NodeLabel{})
	g.SetNode("gp", NodeLabel{})
	g.SetNode("c", NodeLabel{})
	g.SetParent("p", "gp")
	g.SetParent("c", "p")

	g.RemoveNode("p")

	if g.Parent("c") != "gp" {
		t.Errorf("expected c to be reparented to gp, got %q", g.Parent("c"))
	}
}

func TestParentChildren(t *testing.T) {
	g := newTestGraph()
	g.SetNode("p", NodeLabel{})
	g.SetNode("a", NodeLabel{})
	g.SetNode("b", NodeLabel{})
	g.SetParent("a", "p")
	g.SetParent("b", "p")

	children := g.Children("p")
	if len(children) != 2 || children[0] != "a" || children[1] != "b" {
		t.Errorf("expected [a b], got %v", children)
	}
}

func TestMultigraphParallelEdges(t *testing.T) {
	g := newTestGraph()
	g.SetEdge(EdgeID{V: "a", W: "b", Name: "e1"}, &EdgeLabel{})
	g.SetEdge(EdgeID{V: "a", W: "b", Name: "e2"}, &EdgeLabel{})

	if len(g.Edges()) != 2 {
		t.Errorf("expected 2 parallel edges, got %d", len(g.Edges()))
	}
	if len(g.Successors("a")) != 1 {
		t.Errorf("expected Successors to collapse parallel edges to 1 distinct node, got %d", len(g.Successors("a")))
	}
}

func TestCopyIsIndependent(t *testing.T) {
	g := newTestGraph()
	g.SetEdge(EdgeID{V: "a", W: "b"}, &EdgeLabel{Weight: 1})

	cp := g.Copy()
	cp.SetNode("c", NodeLabel{})

	if g.HasNode("c") {
		t.Error("mutating the copy should not affect the original")
	}
}

func TestRoots(t *testing.T) {
	g := newTestGraph()
	g.SetEdge(EdgeID{V: "a", W: "b"}, &EdgeLabel{})
	g.SetEdge(EdgeID{V: "c", W: "b"}, &EdgeLabel{})

	roots := g.Roots()
	if len(roots) != 2 || roots[0] != "a" || roots[1] != "c" {
		t.Errorf("expected [a c], got %v", roots)
	}
}

func TestSimpleProjectionReachability(t *testing.T) {
	g := newTestGraph()
	g.SetEdge(EdgeID{V: "a", W: "b", Name: "e1"}, &EdgeLabel{})
	g.SetEdge(EdgeID{V: "a", W: "b", Name: "e2"}, &EdgeLabel{})

	if !g.Simple().HasEdgeFromTo(g.GonumID("a"), g.GonumID("b")) {
		t.Error("expected the gonum projection to have an edge a->b")
	}

	g.RemoveEdge(EdgeID{V: "a", W: "b", Name: "e1"})
	if !g.Simple().HasEdgeFromTo(g.GonumID("a"), g.GonumID("b")) {
		t.Error("removing one of two parallel edges should not drop the projection edge")
	}

	g.RemoveEdge(EdgeID{V: "a", W: "b", Name: "e2"})
	if g.Simple().HasEdgeFromTo(g.GonumID("a"), g.GonumID("b")) {
		t.Error("removing the last parallel edge should drop the projection edge")
	}
}
