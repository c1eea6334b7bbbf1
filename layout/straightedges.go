package layout

import (
	"github.com/arjunmenon/graphlayout/graph"
)

// straightenEdges drops every intermediate bend point Normalize's dummy
// chain produced, leaving each edge's Points as a direct line between its
// two endpoint intersections, computed against each node's final boundary
// rather than its center. Used when Options.StraightEdges asks for the
// cheaper rendering style instead of the routed polyline.
func straightenEdges(l *graph.Graph) {
	for _, eid := range l.Edges() {
		e, _ := l.Edge(eid)
		if len(e.Points) < 2 {
			continue
		}
		e.Points = []graph.Point{e.Points[0], e.Points[len(e.Points)-1]}
		l.SetEdge(eid, &e)
	}
}
