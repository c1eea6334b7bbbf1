package layout

import (
	"github.com/arjunmenon/graphlayout/graph"
)

// runNormalize splits every edge (u,v) with rank(v)-rank(u) > 1 into a
// chain u -> d1 -> d2 -> ... -> v of unit-length dummy "edge" nodes. The
// original edge's label — including its back-reference — is
// stashed on the chain's head dummy so undoNormalize can reconstruct it;
// the chain's head ids are recorded on the graph label the way dagre
// threads g.graph().dummyChains through the pipeline.
func runNormalize(l *graph.Graph) {
	lab := l.GraphLabel()
	lab.DummyChains = nil
	l.SetGraphLabel(lab)

	for _, eid := range l.Edges() {
		normalizeEdge(l, eid)
	}
}

func normalizeEdge(l *graph.Graph, eid graph.EdgeID) {
	vNode, _ := l.Node(eid.V)
	wNode, _ := l.Node(eid.W)
	if wNode.Rank == vNode.Rank+1 {
		return
	}

	origLabel, _ := l.Edge(eid)
	l.RemoveEdge(eid)

	origLabelCopy := origLabel
	origLabelCopy.Points = nil

	v := eid.V
	first := true
	for rank := vNode.Rank + 1; rank < wNode.Rank; rank++ {
		kind := graph.DummyEdge
		attrs := graph.NodeLabel{Rank: rank}
		if origLabel.HasLabelPos && rank == origLabel.LabelRank {
			kind = graph.DummyEdgeLabel
			attrs.Width = origLabel.Width
			attrs.Height = origLabel.Height
		}
		dummy := addDummyNode(l, kind, attrs, "d")
		dn, _ := l.Node(dummy)
		origRef := eid
		dn.OrigEdge = &origRef
		if first {
			dn.OrigEdgeLabel = &origLabelCopy
			lab := l.GraphLabel()
			lab.DummyChains = append(lab.DummyChains, dummy)
			l.SetGraphLabel(lab)
			first = false
		}
		l.SetNode(dummy, dn)

		l.SetEdge(graph.EdgeID{V: v, W: dummy, Name: eid.Name}, &graph.EdgeLabel{Weight: origLabel.Weight, MinLen: 1})
		v = dummy
	}
	l.SetEdge(graph.EdgeID{V: v, W: eid.W, Name: eid.Name}, &graph.EdgeLabel{Weight: origLabel.Weight, MinLen: 1})
}

// undoNormalize collapses each dummy chain back into a single edge,
// collecting the chain's node coordinates into the edge's Points polyline
// in the original direction. assignNodeIntersects later prepends/appends
// the endpoint intersections.
func undoNormalize(l *graph.Graph) {
	lab := l.GraphLabel()
	for _, head := range lab.DummyChains {
		node, ok := l.Node(head)
		if !ok {
			continue
		}
		orig := node.OrigEdgeLabel
		if orig == nil || node.OrigEdge == nil {
			continue
		}
		origLabel := *orig
		v := head
		for {
			n, ok := l.Node(v)
			if !ok || (n.Dummy != graph.DummyEdge && n.Dummy != graph.DummyEdgeLabel) {
				break
			}
			origLabel.Points = append(origLabel.Points, graph.Point{X: n.X, Y: n.Y})
			if n.Dummy == graph.DummyEdgeLabel {
				origLabel.HasLabelPos = true
				origLabel.X, origLabel.Y = n.X, n.Y
				origLabel.Width, origLabel.Height = n.Width, n.Height
			}
			succs := l.Successors(v)
			l.RemoveNode(v)
			if len(succs) == 0 {
				break
			}
			v = succs[0]
		}
		l.SetEdge(*node.OrigEdge, &origLabel)
	}
	lab.DummyChains = nil
	l.SetGraphLabel(lab)
}
