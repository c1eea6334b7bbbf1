// Package rank assigns an integer rank to every node of a graph so that for
// every edge (v, w), rank(w) >= rank(v) + minlen(v, w). It implements the
// three ranking strategies this package offers: longest-path (fast, often wide),
// tight-tree (longest-path tightened by a feasible spanning tree), and
// network-simplex (the same tightening iterated to a local optimum, at
// higher cost).
package rank

import (
	"github.com/arjunmenon/graphlayout/graph"
)

// LongestPath assigns every node the length of the longest path to it from
// a source (a node with no in edges), which is the tightest rank a purely
// forward walk can produce without any slack-reduction pass afterward.
func LongestPath(l *graph.Graph) {
	visited := map[graph.NodeID]bool{}
	var dfs func(v graph.NodeID) int
	dfs = func(v graph.NodeID) int {
		n, _ := l.Node(v)
		if visited[v] {
			return n.Rank
		}
		visited[v] = true

		rank := 0
		for _, eid := range l.InEdgeIDs(v) {
			e, _ := l.Edge(eid)
			if r := dfs(eid.V) + e.MinLen; r > rank {
				rank = r
			}
		}
		n.Rank = rank
		l.SetNode(v, n)
		return rank
	}

	for _, v := range l.Roots() {
		dfs(v)
	}
	// Every other node takes its rank from its predecessors, which dfs
	// walks recursively.
	for _, v := range l.Nodes() {
		if !visited[v] {
			dfs(v)
		}
	}
}

// slack returns how much more room edge eid has beyond its minimum length,
// given the current ranks of its endpoints.
func slack(l *graph.Graph, eid graph.EdgeID) int {
	v, _ := l.Node(eid.V)
	w, _ := l.Node(eid.W)
	e, _ := l.Edge(eid)
	return w.Rank - v.Rank - e.MinLen
}
