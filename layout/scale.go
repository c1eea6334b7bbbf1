package layout

import (
	"github.com/arjunmenon/graphlayout/graph"
)

// Scale multiplies every node's position and size and every edge's route
// and label position by factor, for callers that need the finished layout
// re-rendered at a different zoom or DPI without recomputing it.
func Scale(l *graph.Graph, factor float64) {
	for _, v := range l.Nodes() {
		n, _ := l.Node(v)
		n.X *= factor
		n.Y *= factor
		n.Width *= factor
		n.Height *= factor
		l.SetNode(v, n)
	}
	for _, eid := range l.Edges() {
		e, _ := l.Edge(eid)
		for i := range e.Points {
			e.Points[i].X *= factor
			e.Points[i].Y *= factor
		}
		if e.HasLabelPos {
			e.X *= factor
			e.Y *= factor
		}
		l.SetEdge(eid, &e)
	}
	lab := l.GraphLabel()
	lab.Width *= factor
	lab.Height *= factor
	l.SetGraphLabel(lab)
}
