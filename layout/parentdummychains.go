package layout

import (
	"github.com/arjunmenon/graphlayout/graph"
)

// postorderInfo is the postorder interval (low, lim) of a node in the
// compound tree, used to answer lowest-common-ancestor queries in O(depth).
type postorderInfo struct {
	low, lim int
}

func postorderIntervals(l *graph.Graph) map[graph.NodeID]postorderInfo {
	result := map[graph.NodeID]postorderInfo{}
	lim := 0
	var dfs func(v graph.NodeID)
	dfs = func(v graph.NodeID) {
		low := lim
		for _, child := range l.Children(v) {
			dfs(child)
		}
		result[v] = postorderInfo{low: low, lim: lim}
		lim++
	}
	for _, v := range l.Children("") {
		dfs(v)
	}
	return result
}

// runParentDummyChains reattaches each normalize-created dummy chain to the
// correct compound parent at every rank it crosses. A chain may
// cross in and out of several nested subgraphs; each dummy node's parent is
// the innermost subgraph whose rank range contains that dummy's rank, on
// the path between the chain's two endpoints' lowest common ancestor.
func runParentDummyChains(l *graph.Graph) {
	if !l.IsCompound() {
		return
	}
	postorder := postorderIntervals(l)
	lab := l.GraphLabel()

	for _, head := range lab.DummyChains {
		node, ok := l.Node(head)
		if !ok || node.OrigEdge == nil {
			continue
		}
		eid := *node.OrigEdge
		path, lca := findPath(l, postorder, eid.V, eid.W)
		pathIdx := 0
		ascending := true

		v := head
		for v != eid.W {
			n, ok := l.Node(v)
			if !ok {
				break
			}
			var pathV graph.NodeID
			if ascending {
				for pathIdx < len(path) {
					pathV = path[pathIdx]
					if pathV == lca {
						break
					}
					pn, _ := l.Node(pathV)
					if pn.MaxRank >= n.Rank {
						break
					}
					pathIdx++
				}
				if pathIdx < len(path) && path[pathIdx] == lca {
					ascending = false
				}
			}
			if !ascending {
				for pathIdx < len(path)-1 {
					next := path[pathIdx+1]
					nn, _ := l.Node(next)
					if nn.MinRank > n.Rank {
						break
					}
					pathIdx++
				}
				pathV = path[pathIdx]
			}

			l.SetParent(v, pathV)
			succs := l.Successors(v)
			if len(succs) == 0 {
				break
			}
			v = succs[0]
		}
	}
}

// findPath returns the path of compound ancestors from v up to the lowest
// common ancestor of v and w, concatenated with the path down from the lca
// to w, plus the lca itself.
func findPath(l *graph.Graph, postorder map[graph.NodeID]postorderInfo, v, w graph.NodeID) ([]graph.NodeID, graph.NodeID) {
	low := min(postorder[v].low, postorder[w].low)
	lim := max(postorder[v].lim, postorder[w].lim)

	var vPath []graph.NodeID
	parent := v
	for {
		parent = l.Parent(parent)
		vPath = append(vPath, parent)
		if parent == "" {
			break
		}
		pi := postorder[parent]
		if pi.low <= low && lim <= pi.lim {
			break
		}
	}
	lca := parent

	var wPath []graph.NodeID
	parent = w
	for {
		parent = l.Parent(parent)
		if parent == lca {
			break
		}
		wPath = append(wPath, parent)
	}
	// reverse wPath
	for i, j := 0, len(wPath)-1; i < j; i, j = i+1, j-1 {
		wPath[i], wPath[j] = wPath[j], wPath[i]
	}
	return append(vPath, wPath...), lca
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
