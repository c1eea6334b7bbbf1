package layout

import (
	"github.com/arjunmenon/graphlayout/graph"
)

// runRemoveSelfEdges strips every self-loop off l and stashes it on its
// owner node's SelfEdges, so every later stage (acyclic, rank, order,
// position) never has to special-case an edge whose two endpoints are the
// same node.
func runRemoveSelfEdges(l *graph.Graph) {
	for _, eid := range l.Edges() {
		if eid.V != eid.W {
			continue
		}
		label, _ := l.Edge(eid)
		node, _ := l.Node(eid.V)
		idCopy := eid
		node.SelfEdges = append(node.SelfEdges, graph.SelfEdge{ID: idCopy, Label: label})
		l.SetNode(eid.V, node)
		l.RemoveEdge(eid)
	}
}

// runInsertSelfEdges runs after ordering. It walks each rank in order and,
// after every node, inserts one "selfedge" dummy per self-loop that node
// owns, sized by the loop's label, so position reserves room for the loop
// beside its owner; the self-loop never influences crossing counts
// between distinct nodes.
func runInsertSelfEdges(l *graph.Graph) {
	layers := buildLayerMatrix(l)
	for _, layer := range layers {
		orderShift := 0
		for i, v := range layer {
			node, _ := l.Node(v)
			node.Order = i + orderShift
			selfEdges := node.SelfEdges
			node.SelfEdges = nil
			l.SetNode(v, node)

			for _, se := range selfEdges {
				orderShift++
				idCopy := se.ID
				labelCopy := se.Label
				addDummyNode(l, graph.DummySelfEdge, graph.NodeLabel{
					Width:         se.Label.Width,
					Height:        se.Label.Height,
					Rank:          node.Rank,
					Order:         i + orderShift,
					OrigEdge:      &idCopy,
					OrigEdgeLabel: &labelCopy,
				}, "se")
			}
		}
	}
}

// runPositionSelfEdges replaces every selfedge dummy with a five-point
// loop drawn off the right side of its owner node, using the dummy's
// final x as the loop's horizontal extent.
func runPositionSelfEdges(l *graph.Graph) {
	for _, v := range l.Nodes() {
		node, ok := l.Node(v)
		if !ok || node.Dummy != graph.DummySelfEdge {
			continue
		}
		if node.OrigEdge == nil || node.OrigEdgeLabel == nil {
			continue
		}
		owner, _ := l.Node(node.OrigEdge.V)

		x := owner.X + owner.Width/2
		y := owner.Y
		dx := node.X - x
		dy := owner.Height / 2

		label := *node.OrigEdgeLabel
		label.Points = []graph.Point{
			{X: x + 2*dx/3, Y: y - dy},
			{X: x + 5*dx/6, Y: y - dy},
			{X: x + dx, Y: y},
			{X: x + 5*dx/6, Y: y + dy},
			{X: x + 2*dx/3, Y: y + dy},
		}
		label.X = owner.X + owner.Width
		label.Y = owner.Y

		eid := *node.OrigEdge
		l.RemoveNode(v)
		l.SetEdge(eid, &label)
	}
}
