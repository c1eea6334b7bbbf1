package position

import (
	"math"
	"testing"

	"github.com/arjunmenon/graphlayout/graph"
)

func newPositionTestGraph() *graph.Graph {
	g := graph.New(graph.Options{Directed: true, Compound: true, Multigraph: true})
	lab := g.GraphLabel()
	lab.RankSep = 50
	lab.NodeSep = 50
	g.SetGraphLabel(lab)
	return g
}

func TestRunSetsYFromRankHeights(t *testing.T) {
	g := newPositionTestGraph()
	g.SetNode("a", graph.NodeLabel{Width: 50, Height: 100, Rank: 0})
	g.SetNode("b", graph.NodeLabel{Width: 50, Height: 100, Rank: 1})
	g.SetEdge(graph.EdgeID{V: "a", W: "b"}, &graph.EdgeLabel{Weight: 1, MinLen: 1})

	Run(g)

	a, _ := g.Node("a")
	b, _ := g.Node("b")
	wantGap := (a.Height+b.Height)/2 + g.GraphLabel().RankSep
	gotGap := b.Y - a.Y
	if math.Abs(gotGap-wantGap) > 1e-6 {
		t.Errorf("got b.Y - a.Y = %v, want %v", gotGap, wantGap)
	}
}

func TestRunRespectsNodeSep(t *testing.T) {
	g := newPositionTestGraph()
	g.SetNode("a", graph.NodeLabel{Width: 50, Height: 50, Rank: 0, Order: 0})
	g.SetNode("b", graph.NodeLabel{Width: 50, Height: 50, Rank: 0, Order: 1})

	Run(g)

	a, _ := g.Node("a")
	b, _ := g.Node("b")
	minGap := a.Width/2 + g.GraphLabel().NodeSep + b.Width/2
	if b.X-a.X < minGap-1e-6 {
		t.Errorf("got b.X - a.X = %v, want at least %v", b.X-a.X, minGap)
	}
}

func TestRunAlignsSingleChildUnderParent(t *testing.T) {
	g := newPositionTestGraph()
	g.SetNode("a", graph.NodeLabel{Width: 50, Height: 50, Rank: 0, Order: 0})
	g.SetNode("b", graph.NodeLabel{Width: 50, Height: 50, Rank: 1, Order: 0})
	g.SetEdge(graph.EdgeID{V: "a", W: "b"}, &graph.EdgeLabel{Weight: 1, MinLen: 1})

	Run(g)

	a, _ := g.Node("a")
	b, _ := g.Node("b")
	if math.Abs(a.X-b.X) > 1e-6 {
		t.Errorf("expected a lone child to align directly under its only parent, got a.X=%v b.X=%v", a.X, b.X)
	}
}
