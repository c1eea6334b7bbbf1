package layout

import (
	"github.com/arjunmenon/graphlayout/graph"
)

// runAdjustCoordinateSystem rotates a left-to-right or right-to-left graph
// into the top-to-bottom coordinate system every other stage (rank, order,
// position) is written against, by swapping each node and edge's width and
// height up front. runUndoCoordinateSystem rotates the finished
// layout back into the caller's requested RankDir.
func runAdjustCoordinateSystem(l *graph.Graph) {
	switch l.GraphLabel().RankDir {
	case graph.RankDirLR, graph.RankDirRL:
		swapWidthHeight(l)
	}
}

func runUndoCoordinateSystem(l *graph.Graph) {
	switch l.GraphLabel().RankDir {
	case graph.RankDirBT, graph.RankDirRL:
		reverseY(l)
	}
	switch l.GraphLabel().RankDir {
	case graph.RankDirLR, graph.RankDirRL:
		swapXY(l)
		swapWidthHeight(l)
	}
}

func swapWidthHeight(l *graph.Graph) {
	for _, v := range l.Nodes() {
		n, _ := l.Node(v)
		n.Width, n.Height = n.Height, n.Width
		l.SetNode(v, n)
	}
	for _, eid := range l.Edges() {
		e, _ := l.Edge(eid)
		e.Width, e.Height = e.Height, e.Width
		l.SetEdge(eid, &e)
	}
}

func reverseY(l *graph.Graph) {
	for _, v := range l.Nodes() {
		n, _ := l.Node(v)
		n.Y = -n.Y
		l.SetNode(v, n)
	}
	for _, eid := range l.Edges() {
		e, _ := l.Edge(eid)
		for i := range e.Points {
			e.Points[i].Y = -e.Points[i].Y
		}
		e.Y = -e.Y
		l.SetEdge(eid, &e)
	}
}

func swapXY(l *graph.Graph) {
	for _, v := range l.Nodes() {
		n, _ := l.Node(v)
		n.X, n.Y = n.Y, n.X
		l.SetNode(v, n)
	}
	for _, eid := range l.Edges() {
		e, _ := l.Edge(eid)
		for i := range e.Points {
			e.Points[i].X, e.Points[i].Y = e.Points[i].Y, e.Points[i].X
		}
		e.X, e.Y = e.Y, e.X
		l.SetEdge(eid, &e)
	}
}
