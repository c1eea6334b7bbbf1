package layout

import (
	"github.com/arjunmenon/graphlayout/graph"
)

// runAddBorderSegments walks the compound tree bottom-up and, for every
// subgraph whose MinRank/MaxRank have been set by assignRankMinMax, adds a
// left and a right zero-size border dummy at each rank the subgraph spans,
// chained together rank over rank: these are what Position later widens
// the subgraph against, distinct from the nesting graph's single
// top/bottom markers. A no-op on a non-compound graph.
func runAddBorderSegments(l *graph.Graph) {
	if !l.IsCompound() {
		return
	}
	var dfs func(v graph.NodeID)
	dfs = func(v graph.NodeID) {
		for _, child := range l.Children(v) {
			dfs(child)
		}
		if v == "" {
			return
		}
		node, ok := l.Node(v)
		if !ok || (node.MinRank == 0 && node.MaxRank == 0) {
			return
		}
		node.BorderLeft = make([]graph.NodeID, node.MaxRank-node.MinRank+1)
		node.BorderRight = make([]graph.NodeID, node.MaxRank-node.MinRank+1)
		l.SetNode(v, node)
		for rank := node.MinRank; rank <= node.MaxRank; rank++ {
			addBorderNode(l, v, true, rank)
			addBorderNode(l, v, false, rank)
		}
	}
	dfs("")
}

func addBorderNode(l *graph.Graph, subgraph graph.NodeID, left bool, rank int) {
	prefix := "br"
	if left {
		prefix = "bl"
	}
	curr := addDummyNode(l, graph.DummyBorder, graph.NodeLabel{Rank: rank}, prefix)
	l.SetParent(curr, subgraph)

	node, _ := l.Node(subgraph)
	if left {
		node.BorderLeft[rank-node.MinRank] = curr
	} else {
		node.BorderRight[rank-node.MinRank] = curr
	}
	l.SetNode(subgraph, node)

	if rank > node.MinRank {
		var prevID graph.NodeID
		if left {
			prevID = node.BorderLeft[rank-node.MinRank-1]
		} else {
			prevID = node.BorderRight[rank-node.MinRank-1]
		}
		if prevID != "" {
			l.SetEdge(graph.EdgeID{V: prevID, W: curr, Name: nextDummyID("be")}, &graph.EdgeLabel{Weight: 1, MinLen: 1})
		}
	}
}

// assignRankMinMax sets, on every compound parent that got nesting-graph
// top/bottom markers, MinRank/MaxRank from those markers' ranks. The
// markers stay in the graph: removeBorderNodes reads their final Y and
// then deletes them. lab.MaxRank is also set here to the graph's overall
// maximum rank.
func assignRankMinMax(l *graph.Graph) {
	maxRank := 0
	for _, v := range l.Nodes() {
		node, _ := l.Node(v)
		if node.BorderTop != "" {
			top, _ := l.Node(node.BorderTop)
			bottom, _ := l.Node(node.BorderBottom)
			node.MinRank = top.Rank
			node.MaxRank = bottom.Rank
			if node.MaxRank > maxRank {
				maxRank = node.MaxRank
			}
			l.SetNode(v, node)
		}
		if node.Rank > maxRank {
			maxRank = node.Rank
		}
	}
	lab := l.GraphLabel()
	lab.MaxRank = maxRank
	l.SetGraphLabel(lab)
}

// removeBorderNodes sizes every compound parent's rectangle from its
// border-top/bottom/left/right dummies' final positions, then deletes all
// of them: a compound parent's width is the span between its last left and
// last right border dummy, its height the span between top and bottom, and
// its center follows from those.
func removeBorderNodes(l *graph.Graph) {
	for _, v := range l.Nodes() {
		node, ok := l.Node(v)
		if !ok || len(l.Children(v)) == 0 {
			continue
		}
		top, hasTop := l.Node(node.BorderTop)
		bottom, hasBottom := l.Node(node.BorderBottom)
		if !hasTop || !hasBottom || len(node.BorderLeft) == 0 || len(node.BorderRight) == 0 {
			continue
		}
		left, _ := l.Node(node.BorderLeft[len(node.BorderLeft)-1])
		right, _ := l.Node(node.BorderRight[len(node.BorderRight)-1])

		node.Width = right.X - left.X
		if node.Width < 0 {
			node.Width = -node.Width
		}
		node.Height = bottom.Y - top.Y
		if node.Height < 0 {
			node.Height = -node.Height
		}
		node.X = left.X + node.Width/2
		node.Y = top.Y + node.Height/2
		l.SetNode(v, node)
	}

	for _, v := range l.Nodes() {
		node, ok := l.Node(v)
		if !ok {
			continue
		}
		switch node.Dummy {
		case graph.DummyBorder, graph.DummyNestingTop, graph.DummyNestingBottom:
			l.RemoveNode(v)
		}
	}
}
