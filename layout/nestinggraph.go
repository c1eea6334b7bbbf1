package layout

import (
	"github.com/arjunmenon/graphlayout/graph"
)

// runNestingGraph injects a synthetic root plus top/bottom nodes around
// every compound subtree, connected by high-weight synthetic edges, so
// that the ordinary ranker clusters each subtree's descendants into a
// contiguous rank range without knowing anything about compound structure
//. cleanupNestingGraph removes all of it once ranking is done.
func runNestingGraph(l *graph.Graph) {
	root := addDummyNode(l, graph.DummyNestingRoot, graph.NodeLabel{}, "root")

	depths := treeDepths(l)
	height := 0
	for _, d := range depths {
		if d > height {
			height = d
		}
	}
	height--
	if height < 0 {
		height = 0
	}
	nodeSep := 2*height + 1

	lab := l.GraphLabel()
	lab.NestingRoot = root
	l.SetGraphLabel(lab)

	for _, eid := range l.Edges() {
		e, _ := l.Edge(eid)
		e.MinLen *= nodeSep
		l.SetEdge(eid, &e)
	}

	weight := sumWeights(l) + 1

	for _, child := range l.Children("") {
		nestingDFS(l, root, nodeSep, weight, height, depths, child)
	}

	lab = l.GraphLabel()
	l.SetGraphLabel(lab)
	nodeRankFactor = nodeSep
}

// nodeRankFactor records nodeSep so removeEmptyRanks knows which empty
// ranks are reserved spacing rather than genuine gaps. Package state reset
// per Layout call, mirroring dummyCounter.
var nodeRankFactor = 1

func nestingDFS(l *graph.Graph, root graph.NodeID, nodeSep int, weight float64, height int, depths map[graph.NodeID]int, v graph.NodeID) {
	children := l.Children(v)
	if len(children) == 0 {
		if v != root {
			e := graph.EdgeLabel{Weight: 0, MinLen: nodeSep, Nesting: true}
			l.SetEdge(graph.EdgeID{V: root, W: v, Name: nextDummyID("nest")}, &e)
		}
		return
	}

	top := addDummyNode(l, graph.DummyNestingTop, graph.NodeLabel{}, "bt")
	bottom := addDummyNode(l, graph.DummyNestingBottom, graph.NodeLabel{}, "bb")

	label, _ := l.Node(v)
	l.SetParent(top, v)
	label.BorderTop = top
	l.SetParent(bottom, v)
	label.BorderBottom = bottom
	l.SetNode(v, label)

	for _, child := range children {
		nestingDFS(l, root, nodeSep, weight, height, depths, child)

		childNode, _ := l.Node(child)
		childTop, childBottom := child, child
		if childNode.BorderTop != "" {
			childTop = childNode.BorderTop
		}
		if childNode.BorderBottom != "" {
			childBottom = childNode.BorderBottom
		}
		thisWeight := 2 * weight
		if childNode.BorderTop != "" {
			thisWeight = weight
		}
		minlen := 1
		if childTop == childBottom {
			minlen = height - depths[v] + 1
		}

		l.SetEdge(graph.EdgeID{V: top, W: childTop, Name: nextDummyID("nest")},
			&graph.EdgeLabel{Weight: thisWeight, MinLen: minlen, Nesting: true})
		l.SetEdge(graph.EdgeID{V: childBottom, W: bottom, Name: nextDummyID("nest")},
			&graph.EdgeLabel{Weight: thisWeight, MinLen: minlen, Nesting: true})
	}

	if l.Parent(v) == "" {
		l.SetEdge(graph.EdgeID{V: root, W: top, Name: nextDummyID("nest")},
			&graph.EdgeLabel{Weight: 0, MinLen: height + depths[v]})
	}
}

func treeDepths(l *graph.Graph) map[graph.NodeID]int {
	depths := map[graph.NodeID]int{}
	var dfs func(v graph.NodeID, depth int)
	dfs = func(v graph.NodeID, depth int) {
		for _, child := range l.Children(v) {
			dfs(child, depth+1)
		}
		depths[v] = depth
	}
	for _, v := range l.Children("") {
		dfs(v, 1)
	}
	return depths
}

func sumWeights(l *graph.Graph) float64 {
	sum := 0.0
	for _, eid := range l.Edges() {
		e, _ := l.Edge(eid)
		sum += e.Weight
	}
	return sum
}

// cleanupNestingGraph removes the synthetic root and every synthetic
// nesting edge added by runNestingGraph.
func cleanupNestingGraph(l *graph.Graph) {
	lab := l.GraphLabel()
	if lab.NestingRoot != "" {
		l.RemoveNode(lab.NestingRoot)
		lab.NestingRoot = ""
		l.SetGraphLabel(lab)
	}
	for _, eid := range l.Edges() {
		e, _ := l.Edge(eid)
		if e.Nesting {
			l.RemoveEdge(eid)
		}
	}
}
