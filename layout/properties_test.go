package layout

import (
	"testing"

	"github.com/arjunmenon/graphlayout/graph"
)

func newPropertiesTestGraph() *graph.Graph {
	return graph.New(graph.Options{Directed: true, Compound: true, Multigraph: true})
}

// fixtures returns a handful of graphs exercising different pipeline paths:
// a simple chain, a diamond, a cycle, a compound parent, and a self-loop.
func fixtures() map[string]*graph.Graph {
	out := map[string]*graph.Graph{}

	chain := newPropertiesTestGraph()
	chain.SetEdge(graph.EdgeID{V: "a", W: "b"}, &graph.EdgeLabel{MinLen: 1, Weight: 1})
	chain.SetEdge(graph.EdgeID{V: "b", W: "c"}, &graph.EdgeLabel{MinLen: 1, Weight: 1})
	chain.SetNode("a", graph.NodeLabel{Width: 50, Height: 50})
	chain.SetNode("b", graph.NodeLabel{Width: 50, Height: 50})
	chain.SetNode("c", graph.NodeLabel{Width: 50, Height: 50})
	out["chain"] = chain

	diamond := newPropertiesTestGraph()
	for _, e := range [][2]string{{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"}} {
		diamond.SetEdge(graph.EdgeID{V: e[0], W: e[1]}, &graph.EdgeLabel{MinLen: 1, Weight: 1})
	}
	for _, id := range []string{"a", "b", "c", "d"} {
		diamond.SetNode(id, graph.NodeLabel{Width: 40, Height: 40})
	}
	out["diamond"] = diamond

	cycle := newPropertiesTestGraph()
	cycle.SetEdge(graph.EdgeID{V: "a", W: "b"}, &graph.EdgeLabel{MinLen: 1, Weight: 1})
	cycle.SetEdge(graph.EdgeID{V: "b", W: "c"}, &graph.EdgeLabel{MinLen: 1, Weight: 1})
	cycle.SetEdge(graph.EdgeID{V: "c", W: "a"}, &graph.EdgeLabel{MinLen: 1, Weight: 1})
	for _, id := range []string{"a", "b", "c"} {
		cycle.SetNode(id, graph.NodeLabel{Width: 30, Height: 30})
	}
	out["cycle"] = cycle

	compound := newPropertiesTestGraph()
	compound.SetNode("p", graph.NodeLabel{})
	compound.SetNode("a", graph.NodeLabel{Width: 50, Height: 50})
	compound.SetNode("b", graph.NodeLabel{Width: 50, Height: 50})
	compound.SetParent("a", "p")
	compound.SetParent("b", "p")
	compound.SetEdge(graph.EdgeID{V: "a", W: "b"}, &graph.EdgeLabel{MinLen: 1, Weight: 1})
	out["compound"] = compound

	selfLoop := newPropertiesTestGraph()
	selfLoop.SetNode("a", graph.NodeLabel{Width: 100, Height: 100})
	selfLoop.SetEdge(graph.EdgeID{V: "a", W: "a"}, &graph.EdgeLabel{MinLen: 1, Weight: 1})
	out["self-loop"] = selfLoop

	return out
}

func TestLayoutInvariants(t *testing.T) {
	for name, g := range fixtures() {
		t.Run(name, func(t *testing.T) {
			if err := Layout(g, Options{}); err != nil {
				t.Fatalf("Layout: %v", err)
			}
			if violations := Validate(g); len(violations) > 0 {
				for _, v := range violations {
					t.Errorf("%s", v)
				}
			}
		})
	}
}

// Invariant 7: two runs on identical input produce identical output.
func TestLayoutIsDeterministic(t *testing.T) {
	for name, g := range fixtures() {
		t.Run(name, func(t *testing.T) {
			g2 := g.Copy()

			if err := Layout(g, Options{}); err != nil {
				t.Fatalf("Layout (first run): %v", err)
			}
			if err := Layout(g2, Options{}); err != nil {
				t.Fatalf("Layout (second run): %v", err)
			}

			for _, id := range g.Nodes() {
				n1, _ := g.Node(id)
				n2, ok := g2.Node(id)
				if !ok {
					t.Fatalf("node %s missing from second run", id)
				}
				if n1.X != n2.X || n1.Y != n2.Y || n1.Rank != n2.Rank || n1.Order != n2.Order {
					t.Errorf("node %s differs between runs: %+v vs %+v", id, n1, n2)
				}
			}
		})
	}
}

// Invariant 8: attributes outside the whitelist are untouched on the
// caller's input graph.
func TestLayoutRoundTripPreservesUnknownAttributes(t *testing.T) {
	g := newPropertiesTestGraph()
	g.SetNode("a", graph.NodeLabel{Width: 50, Height: 50})
	g.SetNode("b", graph.NodeLabel{Width: 50, Height: 50})
	g.SetEdge(graph.EdgeID{V: "a", W: "b"}, &graph.EdgeLabel{MinLen: 1, Weight: 1, LabelOffset: 17})

	if err := Layout(g, Options{}); err != nil {
		t.Fatalf("Layout: %v", err)
	}

	e, _ := g.Edge(graph.EdgeID{V: "a", W: "b"})
	if e.LabelOffset != 17 {
		t.Errorf("expected caller-set LabelOffset to survive layout untouched, got %v", e.LabelOffset)
	}
}

func TestLayoutReversesCyclicEdges(t *testing.T) {
	g := fixtures()["cycle"]
	if err := Layout(g, Options{}); err != nil {
		t.Fatalf("Layout: %v", err)
	}

	reversedCount := 0
	for _, eid := range g.Edges() {
		e, _ := g.Edge(eid)
		if e.Reversed {
			reversedCount++
		}
	}
	if reversedCount == 0 {
		t.Error("expected at least one edge of the 3-cycle to be marked reversed")
	}
}

func TestLayoutCompoundParentEnclosesChildren(t *testing.T) {
	g := fixtures()["compound"]
	if err := Layout(g, Options{}); err != nil {
		t.Fatalf("Layout: %v", err)
	}

	p, _ := g.Node("p")
	a, _ := g.Node("a")
	b, _ := g.Node("b")

	if p.Width <= 0 || p.Height <= 0 {
		t.Fatalf("expected compound parent to get a nonzero size, got %+v", p)
	}
	for _, child := range []graph.NodeLabel{a, b} {
		if child.X-child.Width/2 < p.X-p.Width/2 || child.X+child.Width/2 > p.X+p.Width/2 {
			t.Errorf("child at x=%v width=%v not enclosed by parent x=%v width=%v", child.X, child.Width, p.X, p.Width)
		}
	}

	an, _ := g.Node("a")
	bn, _ := g.Node("b")
	if an.Rank >= bn.Rank {
		t.Errorf("expected a.rank < b.rank, got a=%d b=%d", an.Rank, bn.Rank)
	}
}

func TestLayoutSelfLoopProducesFivePointArc(t *testing.T) {
	g := fixtures()["self-loop"]
	if err := Layout(g, Options{}); err != nil {
		t.Fatalf("Layout: %v", err)
	}

	e, ok := g.Edge(graph.EdgeID{V: "a", W: "a"})
	if !ok {
		t.Fatal("expected the self-loop edge to survive layout")
	}
	if len(e.Points) != 5 {
		t.Errorf("expected a 5-point loop, got %d points", len(e.Points))
	}
}
