package order

import (
	"testing"

	"github.com/arjunmenon/graphlayout/graph"
)

func newOrderTestGraph() *graph.Graph {
	return graph.New(graph.Options{Directed: true, Compound: true, Multigraph: true})
}

func setRank(g *graph.Graph, id graph.NodeID, rank int) {
	n, _ := g.Node(id)
	n.Rank = rank
	g.SetNode(id, n)
}

func finalMatrix(g *graph.Graph, maxRank int) [][]graph.NodeID {
	matrix := make([][]graph.NodeID, maxRank+1)
	for _, id := range g.Nodes() {
		n, _ := g.Node(id)
		matrix[n.Rank] = append(matrix[n.Rank], id)
	}
	for _, layer := range matrix {
		for i := 0; i < len(layer); i++ {
			for j := i + 1; j < len(layer); j++ {
				ni, _ := g.Node(layer[i])
				nj, _ := g.Node(layer[j])
				if ni.Order > nj.Order {
					layer[i], layer[j] = layer[j], layer[i]
				}
			}
		}
	}
	return matrix
}

// A tree has no crossing-minimization work to do; the ordering algorithm
// must settle on zero crossings.
func TestOrderTreeHasNoCrossings(t *testing.T) {
	g := newOrderTestGraph()
	edges := [][2]string{{"a", "b"}, {"a", "c"}, {"b", "d"}, {"b", "e"}, {"c", "f"}}
	for _, e := range edges {
		g.SetEdge(graph.EdgeID{V: e[0], W: e[1]}, &graph.EdgeLabel{Weight: 1})
	}
	setRank(g, "a", 0)
	setRank(g, "b", 1)
	setRank(g, "c", 1)
	setRank(g, "d", 2)
	setRank(g, "e", 2)
	setRank(g, "f", 2)

	Run(g)

	cc := CrossCount(g, finalMatrix(g, 2))
	if cc != 0 {
		t.Errorf("expected 0 crossings on a tree, got %v", cc)
	}
}

// A two-source three-layer graph has an ordering with zero crossings; the
// algorithm must find it.
func TestOrderTwoSourceThreeLayer(t *testing.T) {
	g := newOrderTestGraph()
	edges := [][2]string{{"a", "b"}, {"b", "c"}, {"a", "e"}, {"d", "f"}, {"f", "g"}, {"d", "e"}}
	for _, e := range edges {
		g.SetEdge(graph.EdgeID{V: e[0], W: e[1]}, &graph.EdgeLabel{Weight: 1})
	}
	setRank(g, "a", 1)
	setRank(g, "d", 1)
	setRank(g, "b", 2)
	setRank(g, "e", 2)
	setRank(g, "f", 2)
	setRank(g, "c", 3)
	setRank(g, "g", 3)

	Run(g)

	cc := CrossCount(g, finalMatrix(g, 3))
	if cc != 0 {
		t.Errorf("expected 0 crossings on the two-source three-layer graph, got %v", cc)
	}
}

// The Gansner et al. four-layer example has a best ordering with at most
// one crossing.
func TestOrderGansnerExample(t *testing.T) {
	g := newOrderTestGraph()
	edges := [][2]string{
		{"a", "b"}, {"a", "e"}, {"a", "g"},
		{"b", "c"},
		{"e", "f"},
		{"g", "h"},
		{"c", "d"}, {"f", "d"}, {"h", "d"},
	}
	for _, e := range edges {
		g.SetEdge(graph.EdgeID{V: e[0], W: e[1]}, &graph.EdgeLabel{Weight: 1})
	}
	setRank(g, "a", 1)
	setRank(g, "b", 2)
	setRank(g, "e", 2)
	setRank(g, "g", 2)
	setRank(g, "c", 3)
	setRank(g, "f", 3)
	setRank(g, "h", 3)
	setRank(g, "d", 4)

	Run(g)

	cc := CrossCount(g, finalMatrix(g, 4))
	if cc > 1 {
		t.Errorf("expected at most 1 crossing on the Gansner example, got %v", cc)
	}
}

func TestCrossCountCountsASingleCrossing(t *testing.T) {
	g := newOrderTestGraph()
	g.SetEdge(graph.EdgeID{V: "a", W: "d"}, &graph.EdgeLabel{Weight: 1})
	g.SetEdge(graph.EdgeID{V: "b", W: "c"}, &graph.EdgeLabel{Weight: 1})

	north := []graph.NodeID{"a", "b"}
	south := []graph.NodeID{"c", "d"}

	cc := CrossCount(g, [][]graph.NodeID{north, south})
	if cc != 1 {
		t.Errorf("expected exactly 1 crossing, got %v", cc)
	}
}
