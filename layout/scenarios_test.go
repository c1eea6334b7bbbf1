package layout

import (
	"math"
	"testing"

	"github.com/arjunmenon/graphlayout/graph"
)

func approxEqual(t *testing.T, got, want float64, what string) {
	t.Helper()
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("%s: got %v, want %v", what, got, want)
	}
}

// Scenario 1: an empty graph sizes to just its margins.
func TestScenarioEmptyGraph(t *testing.T) {
	g := newPropertiesTestGraph()
	lab := g.GraphLabel()
	lab.MarginX, lab.MarginY = 10, 10
	g.SetGraphLabel(lab)

	if err := Layout(g, Options{}); err != nil {
		t.Fatalf("Layout: %v", err)
	}

	out := g.GraphLabel()
	approxEqual(t, out.Width, 2*10, "graph.width")
	approxEqual(t, out.Height, 2*10, "graph.height")
}

// Scenario 2: a single node centers within its margins.
func TestScenarioSingleNode(t *testing.T) {
	g := newPropertiesTestGraph()
	lab := g.GraphLabel()
	lab.MarginX, lab.MarginY = 10, 10
	g.SetGraphLabel(lab)
	g.SetNode("a", graph.NodeLabel{Width: 50, Height: 100})

	if err := Layout(g, Options{}); err != nil {
		t.Fatalf("Layout: %v", err)
	}

	a, _ := g.Node("a")
	approxEqual(t, a.X, 25+10, "a.x")
	approxEqual(t, a.Y, 50+10, "a.y")

	out := g.GraphLabel()
	approxEqual(t, out.Width, 50+2*10, "graph.width")
	approxEqual(t, out.Height, 100+2*10, "graph.height")
}

// Scenario 3: two nodes joined by one default edge rank 0 and 1, spaced by
// ranksep, with the edge's polyline touching both rectangles.
func TestScenarioTwoNodesOneEdge(t *testing.T) {
	g := newPropertiesTestGraph()
	g.SetNode("a", graph.NodeLabel{Width: 50, Height: 50})
	g.SetNode("b", graph.NodeLabel{Width: 50, Height: 50})
	g.SetEdge(graph.EdgeID{V: "a", W: "b"}, &graph.EdgeLabel{MinLen: 1, Weight: 1})

	if err := Layout(g, Options{}); err != nil {
		t.Fatalf("Layout: %v", err)
	}

	a, _ := g.Node("a")
	b, _ := g.Node("b")
	if a.Rank != 0 || b.Rank != 1 {
		t.Errorf("expected a.rank=0 b.rank=1, got a=%d b=%d", a.Rank, b.Rank)
	}

	lab := g.GraphLabel()
	approxEqual(t, b.Y-a.Y, (a.Height+b.Height)/2+lab.RankSep, "b.y - a.y")

	e, _ := g.Edge(graph.EdgeID{V: "a", W: "b"})
	if len(e.Points) != 2 {
		t.Errorf("expected a 2-point edge (start and end on rectangle boundaries), got %d", len(e.Points))
	}
}

// Scenario 4: a self-loop produces a 5-point arc and widens the graph.
func TestScenarioSelfLoop(t *testing.T) {
	g := newPropertiesTestGraph()
	g.SetNode("a", graph.NodeLabel{Width: 100, Height: 100})
	g.SetEdge(graph.EdgeID{V: "a", W: "a"}, &graph.EdgeLabel{MinLen: 1, Weight: 1})

	if err := Layout(g, Options{}); err != nil {
		t.Fatalf("Layout: %v", err)
	}

	a, _ := g.Node("a")
	approxEqual(t, a.Width, 100, "a.width")

	e, _ := g.Edge(graph.EdgeID{V: "a", W: "a"})
	if len(e.Points) != 5 {
		t.Fatalf("expected 5 points, got %d", len(e.Points))
	}

	lab := g.GraphLabel()
	if lab.Width <= a.Width {
		t.Errorf("expected graph width to expand beyond the node's own width for the loop, got graph.width=%v a.width=%v", lab.Width, a.Width)
	}
}

// Scenario 5: a long edge (minlen=3) gets intermediate polyline points and a
// y-monotone route.
func TestScenarioLongEdge(t *testing.T) {
	g := newPropertiesTestGraph()
	g.SetNode("a", graph.NodeLabel{Width: 50, Height: 50})
	g.SetNode("b", graph.NodeLabel{Width: 50, Height: 50})
	g.SetEdge(graph.EdgeID{V: "a", W: "b"}, &graph.EdgeLabel{MinLen: 3, Weight: 1})

	if err := Layout(g, Options{}); err != nil {
		t.Fatalf("Layout: %v", err)
	}

	a, _ := g.Node("a")
	b, _ := g.Node("b")
	if b.Rank-a.Rank != 3 {
		t.Fatalf("expected rank(b)-rank(a) == 3, got %d", b.Rank-a.Rank)
	}

	e, _ := g.Edge(graph.EdgeID{V: "a", W: "b"})
	if len(e.Points) < 4 {
		t.Fatalf("expected at least 2 intermediate points plus the 2 endpoints, got %d points", len(e.Points))
	}
	for i := 1; i < len(e.Points); i++ {
		if e.Points[i].Y < e.Points[i-1].Y {
			t.Errorf("expected a monotone-in-y polyline, points[%d].y=%v < points[%d].y=%v",
				i, e.Points[i].Y, i-1, e.Points[i-1].Y)
		}
	}
}

// Scenario 6: a compound parent encloses its two children, and the child
// ranks remain ordered by the edge between them.
func TestScenarioCompoundParent(t *testing.T) {
	g := newPropertiesTestGraph()
	g.SetNode("p", graph.NodeLabel{})
	g.SetNode("a", graph.NodeLabel{Width: 50, Height: 50})
	g.SetNode("b", graph.NodeLabel{Width: 50, Height: 50})
	g.SetParent("a", "p")
	g.SetParent("b", "p")
	g.SetEdge(graph.EdgeID{V: "a", W: "b"}, &graph.EdgeLabel{MinLen: 1, Weight: 1})

	if err := Layout(g, Options{}); err != nil {
		t.Fatalf("Layout: %v", err)
	}

	p, _ := g.Node("p")
	a, _ := g.Node("a")
	b, _ := g.Node("b")

	if p.Width <= 0 || p.Height <= 0 {
		t.Fatalf("expected a sized compound parent, got %+v", p)
	}
	if a.Rank >= b.Rank {
		t.Errorf("expected a.rank < b.rank, got a=%d b=%d", a.Rank, b.Rank)
	}
	if a.X-a.Width/2 < p.X-p.Width/2 || b.X+b.Width/2 > p.X+p.Width/2 {
		t.Error("expected both children horizontally enclosed by the parent")
	}
	if a.Y-a.Height/2 < p.Y-p.Height/2 || b.Y+b.Height/2 > p.Y+p.Height/2 {
		t.Error("expected both children vertically enclosed by the parent")
	}
}
