package rank

import (
	"github.com/arjunmenon/graphlayout/graph"
)

// tree is an undirected spanning structure used only within this package:
// network simplex and the tight-tree ranker both need a tree over the
// ranked graph's nodes, but neither needs compound or multigraph bookkeeping,
// so a minimal adjacency map stands in rather than another graph.Graph.
type tree struct {
	nodes map[graph.NodeID]bool
	adj   map[graph.NodeID]map[graph.NodeID]bool
}

func newTree() *tree {
	return &tree{nodes: map[graph.NodeID]bool{}, adj: map[graph.NodeID]map[graph.NodeID]bool{}}
}

func (t *tree) addNode(v graph.NodeID) {
	if t.nodes[v] {
		return
	}
	t.nodes[v] = true
	t.adj[v] = map[graph.NodeID]bool{}
}

func (t *tree) addEdge(v, w graph.NodeID) {
	t.addNode(v)
	t.addNode(w)
	t.adj[v][w] = true
	t.adj[w][v] = true
}

func (t *tree) hasNode(v graph.NodeID) bool { return t.nodes[v] }

func (t *tree) nodeCount() int { return len(t.nodes) }

func (t *tree) neighbors(v graph.NodeID) []graph.NodeID {
	var out []graph.NodeID
	for w := range t.adj[v] {
		out = append(out, w)
	}
	return out
}

// TightTree runs LongestPath followed by FeasibleTree, the "tight-tree"
// ranker: a single tightening pass, cheaper than full network simplex and
// good enough when the graph has little slack to remove.
func TightTree(l *graph.Graph) {
	LongestPath(l)
	FeasibleTree(l)
}

// FeasibleTree grows a maximal tight subtree (every tree edge has zero
// slack) starting from an arbitrary node, and whenever it gets stuck,
// shifts every ranked node already in the tree by the slack of the
// tree-incident edge with the least slack, which makes that edge tight and
// lets the tree grow by at least one more node. It stops once every node is
// in the tree, or once no edge joins the tree to a node outside it (a
// disconnected graph leaves the other components out of the tree).
func FeasibleTree(l *graph.Graph) *tree {
	nodes := l.Nodes()
	t := newTree()
	if len(nodes) == 0 {
		return t
	}
	t.addNode(nodes[0])

	for tightTreeGrow(t, l) < len(nodes) {
		eid, ok := findMinSlackEdge(t, l)
		if !ok {
			break
		}
		delta := slack(l, eid)
		if t.hasNode(eid.W) {
			delta = -delta
		}
		shiftRanks(t, l, delta)
	}
	return t
}

func tightTreeGrow(t *tree, l *graph.Graph) int {
	var dfs func(v graph.NodeID)
	dfs = func(v graph.NodeID) {
		for _, eid := range nodeEdges(l, v) {
			w := eid.W
			if w == v {
				w = eid.V
			}
			if !t.hasNode(w) && slack(l, eid) == 0 {
				t.addNode(w)
				t.addEdge(v, w)
				dfs(w)
			}
		}
	}
	for v := range t.nodes {
		dfs(v)
	}
	return t.nodeCount()
}

// nodeEdges returns every edge (in either direction) incident to v.
func nodeEdges(l *graph.Graph, v graph.NodeID) []graph.EdgeID {
	out := append([]graph.EdgeID{}, l.OutEdgeIDs(v)...)
	out = append(out, l.InEdgeIDs(v)...)
	return out
}

func findMinSlackEdge(t *tree, l *graph.Graph) (graph.EdgeID, bool) {
	var best graph.EdgeID
	bestSlack := 0
	found := false
	for _, eid := range l.Edges() {
		if t.hasNode(eid.V) == t.hasNode(eid.W) {
			continue
		}
		s := slack(l, eid)
		if !found || s < bestSlack {
			best, bestSlack, found = eid, s, true
		}
	}
	return best, found
}

func shiftRanks(t *tree, l *graph.Graph, delta int) {
	for v := range t.nodes {
		n, _ := l.Node(v)
		n.Rank += delta
		l.SetNode(v, n)
	}
}
