package rank

import (
	"github.com/arjunmenon/graphlayout/graph"
)

// treeNode carries the bookkeeping network simplex needs per node of the
// feasible tree: its postorder interval (low, lim) for O(1) "is w under v"
// queries, and its parent in the tree.
type treeNode struct {
	low, lim int
	parent   graph.NodeID
	hasPar   bool
}

// simplified is a local, single-edge-per-pair view of l's edges: parallel
// edges between the same ordered pair are folded into one with summed
// weight and the largest minlen, which is all network simplex needs and
// keeps every slack/cut-value computation from double-counting a pair.
type simplified struct {
	weight map[[2]graph.NodeID]float64
	minlen map[[2]graph.NodeID]int
	pairs  [][2]graph.NodeID
}

func simplify(l *graph.Graph) *simplified {
	s := &simplified{weight: map[[2]graph.NodeID]float64{}, minlen: map[[2]graph.NodeID]int{}}
	seen := map[[2]graph.NodeID]bool{}
	for _, eid := range l.Edges() {
		if eid.V == eid.W {
			continue
		}
		key := [2]graph.NodeID{eid.V, eid.W}
		e, _ := l.Edge(eid)
		w := e.Weight
		if w <= 0 {
			w = 1
		}
		if !seen[key] {
			seen[key] = true
			s.pairs = append(s.pairs, key)
			s.minlen[key] = e.MinLen
		} else if e.MinLen > s.minlen[key] {
			s.minlen[key] = e.MinLen
		}
		s.weight[key] += w
	}
	return s
}

func (s *simplified) slack(l *graph.Graph, v, w graph.NodeID) int {
	vn, _ := l.Node(v)
	wn, _ := l.Node(w)
	return wn.Rank - vn.Rank - s.minlen[[2]graph.NodeID{v, w}]
}

// NetworkSimplex finds the rank assignment minimizing the sum of
// weight(e)*(rank(w)-rank(v)) over all edges, subject to every edge's
// minlen, by iteratively replacing a tree edge with a negative cut value
// (the first one leaveEdge finds) with the best-fitting non-tree edge crossing the same cut, until no tree
// edge wants to leave. Written from the algorithm's textbook description
// — see DESIGN.md.
func NetworkSimplex(l *graph.Graph) {
	s := simplify(l)
	LongestPath(l)
	t := FeasibleTree(l)

	info := map[graph.NodeID]*treeNode{}
	assignLowLim(t, info)

	cut := map[[2]graph.NodeID]float64{}
	initCutValues(t, l, s, info, cut)

	const maxIter = 200000
	for iter := 0; iter < maxIter; iter++ {
		leaveV, leaveW, ok := leaveEdge(t, cut)
		if !ok {
			break
		}
		enterV, enterW, ok := enterEdge(t, l, s, info, leaveV, leaveW)
		if !ok {
			break
		}
		exchange(t, l, s, info, cut, leaveV, leaveW, enterV, enterW)
	}

	normalizeMinRank(l)
}

func assignLowLim(t *tree, info map[graph.NodeID]*treeNode) {
	var root graph.NodeID
	for v := range t.nodes {
		root = v
		break
	}
	lim := 1
	visited := map[graph.NodeID]bool{}
	var dfs func(v graph.NodeID, parent graph.NodeID, hasParent bool) int
	dfs = func(v graph.NodeID, parent graph.NodeID, hasParent bool) int {
		low := lim
		visited[v] = true
		for _, w := range t.neighbors(v) {
			if !visited[w] {
				lim = dfs(w, v, true)
			}
		}
		info[v] = &treeNode{low: low, lim: lim, parent: parent, hasPar: hasParent}
		lim++
		return lim
	}
	if root != "" {
		dfs(root, "", false)
	}
}

// isDescendant reports whether w lies in v's subtree of the feasible tree.
func isDescendant(info map[graph.NodeID]*treeNode, w, v graph.NodeID) bool {
	wi, wok := info[w]
	vi, vok := info[v]
	if !wok || !vok {
		return false
	}
	return vi.low <= wi.low && wi.lim <= vi.lim
}

func cutKey(v, w graph.NodeID) [2]graph.NodeID { return [2]graph.NodeID{v, w} }

func initCutValues(t *tree, l *graph.Graph, s *simplified, info map[graph.NodeID]*treeNode, cut map[[2]graph.NodeID]float64) {
	order := postorderTreeNodes(t, info)
	for _, v := range order {
		n := info[v]
		if !n.hasPar {
			continue
		}
		cut[cutKey(v, n.parent)] = calcCutValue(t, l, s, info, cut, v, n.parent)
	}
}

func postorderTreeNodes(t *tree, info map[graph.NodeID]*treeNode) []graph.NodeID {
	out := make([]graph.NodeID, 0, len(info))
	for v := range info {
		out = append(out, v)
	}
	// sort by lim ascending gives a valid postorder since lim is assigned
	// in postorder during assignLowLim.
	for i := 1; i < len(out); i++ {
		j := i
		for j > 0 && info[out[j-1]].lim > info[out[j]].lim {
			out[j-1], out[j] = out[j], out[j-1]
			j--
		}
	}
	return out
}

// calcCutValue computes the cut value of the tree edge (child, parent):
// the parent-directed edges across the cut minus the child-directed ones,
// folding in the already-known cut values of child's other tree edges so
// each is computed in O(degree) rather than O(n).
func calcCutValue(t *tree, l *graph.Graph, s *simplified, info map[graph.NodeID]*treeNode, cut map[[2]graph.NodeID]float64, child, parent graph.NodeID) float64 {
	childIsTail := true
	if _, ok := s.weight[[2]graph.NodeID{child, parent}]; !ok {
		childIsTail = false
	}
	var graphWeight float64
	if childIsTail {
		graphWeight = s.weight[[2]graph.NodeID{child, parent}]
	} else {
		graphWeight = s.weight[[2]graph.NodeID{parent, child}]
	}
	cutValue := graphWeight

	for _, eid := range nodeEdges(l, child) {
		if eid.V == eid.W {
			continue
		}
		isOut := eid.V == child
		other := eid.W
		if !isOut {
			other = eid.V
		}
		if other == parent {
			continue
		}
		pointsToHead := isOut == childIsTail
		key := [2]graph.NodeID{eid.V, eid.W}
		w := s.weight[key]
		if w == 0 {
			continue
		}
		if pointsToHead {
			cutValue += w
		} else {
			cutValue -= w
		}
		if t.adj[child][other] {
			var otherCut float64
			if info[other].hasPar && info[other].parent == child {
				otherCut = cut[cutKey(other, child)]
			} else {
				otherCut = cut[cutKey(child, other)]
			}
			if pointsToHead {
				cutValue -= otherCut
			} else {
				cutValue += otherCut
			}
		}
	}
	return cutValue
}

func leaveEdge(t *tree, cut map[[2]graph.NodeID]float64) (graph.NodeID, graph.NodeID, bool) {
	for key, v := range cut {
		if v < 0 {
			return key[0], key[1], true
		}
	}
	return "", "", false
}

// enterEdge finds the minimum-slack edge of the original graph that crosses
// the same cut as the leaving tree edge but runs the other way, so swapping
// it in keeps the tree feasible while improving total weighted rank span.
func enterEdge(t *tree, l *graph.Graph, s *simplified, info map[graph.NodeID]*treeNode, leaveV, leaveW graph.NodeID) (graph.NodeID, graph.NodeID, bool) {
	vInTail := isDescendant(info, leaveV, leaveW)

	var bestV, bestW graph.NodeID
	bestSlack := 0
	found := false

	for _, pair := range s.pairs {
		v, w := pair[0], pair[1]
		tailInSubtree := isDescendant(info, v, leaveW)
		headInSubtree := isDescendant(info, w, leaveW)
		if tailInSubtree == headInSubtree {
			continue
		}
		var candidate bool
		if vInTail {
			candidate = !tailInSubtree && headInSubtree
		} else {
			candidate = tailInSubtree && !headInSubtree
		}
		if !candidate {
			continue
		}
		sl := s.slack(l, v, w)
		if !found || sl < bestSlack {
			bestV, bestW, bestSlack, found = v, w, sl, true
		}
	}
	return bestV, bestW, found
}

func exchange(t *tree, l *graph.Graph, s *simplified, info map[graph.NodeID]*treeNode, cut map[[2]graph.NodeID]float64, leaveV, leaveW, enterV, enterW graph.NodeID) {
	delete(t.adj[leaveV], leaveW)
	delete(t.adj[leaveW], leaveV)
	delete(cut, cutKey(leaveV, leaveW))

	t.addEdge(enterV, enterW)

	delta := s.slack(l, enterV, enterW)
	if delta != 0 {
		// Shift every node on leaveW's side of the old cut by delta so the
		// entering edge becomes tight without disturbing the other side.
		shiftSubtree(t, l, info, leaveW, leaveV, delta)
	}

	info = map[graph.NodeID]*treeNode{}
	assignLowLim(t, info)
	cutCopy := map[[2]graph.NodeID]float64{}
	initCutValues(t, l, s, info, cutCopy)
	for k := range cut {
		delete(cut, k)
	}
	for k, v := range cutCopy {
		cut[k] = v
	}
}

// shiftSubtree walks from start without crossing into avoid's side and
// shifts every node it reaches by delta.
func shiftSubtree(t *tree, l *graph.Graph, info map[graph.NodeID]*treeNode, start, avoid graph.NodeID, delta int) {
	visited := map[graph.NodeID]bool{avoid: true}
	var dfs func(v graph.NodeID)
	dfs = func(v graph.NodeID) {
		if visited[v] {
			return
		}
		visited[v] = true
		n, _ := l.Node(v)
		n.Rank += delta
		l.SetNode(v, n)
		for w := range t.adj[v] {
			dfs(w)
		}
	}
	dfs(start)
}

func normalizeMinRank(l *graph.Graph) {
	min := 0
	first := true
	for _, v := range l.Nodes() {
		n, _ := l.Node(v)
		if first || n.Rank < min {
			min = n.Rank
			first = false
		}
	}
	if min == 0 {
		return
	}
	for _, v := range l.Nodes() {
		n, _ := l.Node(v)
		n.Rank -= min
		l.SetNode(v, n)
	}
}
