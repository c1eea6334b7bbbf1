// Package layout computes node positions and edge routes for a directed
// graph arranged in horizontal (or vertical) layers, following the
// Sugiyama-style pipeline: break cycles, rank nodes into layers, normalize
// long edges into unit-length dummy chains, order each layer to minimize
// edge crossings, and assign final coordinates.
package layout

import (
	"math"

	"github.com/arjunmenon/graphlayout/graph"
	"github.com/arjunmenon/graphlayout/layout/internal/order"
	"github.com/arjunmenon/graphlayout/layout/internal/position"
	"github.com/arjunmenon/graphlayout/layout/internal/rank"
)

// Layout computes positions for every node and routes for every edge of g,
// writing the results back onto g's own node and edge labels. g is not
// replaced; only X, Y, Rank, Points, Width and Height (on
// compound parents), X and Y on edges that carry a label, and the graph
// label's Width/Height/MaxRank are updated, the way dagre.js's Layout() mutates the caller's graph in
// place.
func Layout(g *graph.Graph, opts Options) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = invariantf("%v", r)
		}
	}()

	resetDummyCounter()
	nodeRankFactor = 1

	l := buildLayoutGraph(g)
	if err := runLayout(l, opts); err != nil {
		return err
	}
	updateInputGraph(g, l)
	return nil
}

// buildLayoutGraph returns the working copy the pipeline mutates, isolating
// the caller's graph from every intermediate dummy node and temporary
// attribute the stages below thread through the graph label. Every edge's
// label is field-filled against graph.DefaultEdgeLabel: a caller that calls
// SetEdge with only some fields set (e.g. just MinLen) gets the usual
// defaults for the rest instead of the zero value.
func buildLayoutGraph(g *graph.Graph) *graph.Graph {
	l := g.Copy()
	def := graph.DefaultEdgeLabel()
	for _, eid := range l.Edges() {
		e, _ := l.Edge(eid)
		if e.MinLen == 0 {
			e.MinLen = def.MinLen
		}
		if e.Weight == 0 {
			e.Weight = def.Weight
		}
		if e.LabelOffset == 0 {
			e.LabelOffset = def.LabelOffset
		}
		if e.LabelPos == "" {
			e.LabelPos = def.LabelPos
		}
		l.SetEdge(eid, &e)
	}
	return l
}

func runLayout(l *graph.Graph, opts Options) error {
	p := newProgress(opts)

	p.startStage("makeSpaceForEdgeLabels")
	makeSpaceForEdgeLabels(l)
	p.done()

	p.startStage("removeSelfEdges")
	runRemoveSelfEdges(l)
	p.done()

	p.startStage("acyclic")
	if err := runAcyclic(l); err != nil {
		return err
	}
	p.done()

	p.startStage("nestingGraph.run")
	runNestingGraph(l)
	p.done()

	p.startStage("rank")
	if err := rankGraph(l, opts); err != nil {
		return err
	}
	p.done()

	p.startStage("injectEdgeLabelProxies")
	injectEdgeLabelProxies(l)
	p.done()

	p.startStage("removeEmptyRanks")
	removeEmptyRanks(l, nodeRankFactor)
	p.done()

	p.startStage("nestingGraph.cleanup")
	cleanupNestingGraph(l)
	p.done()

	p.startStage("normalizeRanks")
	normalizeRanks(l)
	p.done()

	p.startStage("assignRankMinMax")
	assignRankMinMax(l)
	p.done()

	p.startStage("removeEdgeLabelProxies")
	removeEdgeLabelProxies(l)
	p.done()

	p.startStage("normalize.run")
	runNormalize(l)
	p.done()

	p.startStage("parentDummyChains")
	runParentDummyChains(l)
	p.done()

	p.startStage("addBorderSegments")
	runAddBorderSegments(l)
	p.done()

	p.startStage("order")
	order.Run(l)
	p.done()

	p.startStage("insertSelfEdges")
	runInsertSelfEdges(l)
	p.done()

	p.startStage("adjustCoordinateSystem")
	runAdjustCoordinateSystem(l)
	p.done()

	p.startStage("position")
	position.Run(l)
	p.done()

	p.startStage("positionSelfEdges")
	runPositionSelfEdges(l)
	p.done()

	p.startStage("removeBorderNodes")
	removeBorderNodes(l)
	p.done()

	p.startStage("normalize.undo")
	undoNormalize(l)
	p.done()

	p.startStage("fixupEdgeLabelCoords")
	fixupEdgeLabelCoords(l)
	p.done()

	p.startStage("undoCoordinateSystem")
	runUndoCoordinateSystem(l)
	p.done()

	p.startStage("translateGraph")
	translateGraph(l)
	p.done()

	p.startStage("assignNodeIntersects")
	assignNodeIntersects(l)
	if opts.StraightEdges {
		straightenEdges(l)
	}
	p.done()

	p.startStage("reversePoints")
	reversePointsForReversedEdges(l)
	p.done()

	p.startStage("acyclic.undo")
	undoAcyclic(l)
	p.done()

	return nil
}

func rankGraph(l *graph.Graph, opts Options) error {
	switch l.GraphLabel().Ranker {
	case graph.RankerLongestPath:
		rank.LongestPath(l)
	case graph.RankerTightTree:
		rank.TightTree(l)
	case graph.RankerNetworkSimplex, "":
		rank.NetworkSimplex(l)
	default:
		return unsupportedf("ranker %q", l.GraphLabel().Ranker)
	}
	return nil
}

// makeSpaceForEdgeLabels halves ranksep, then for every edge that actually
// carries a label (nonzero Width and Height), doubles its minlen so an
// extra rank opens up to hold that label, and widens (or heightens,
// depending on rankdir) the edge with a non-center label position by its
// LabelOffset. Edges without a label are left alone: nothing reserves a
// rank for them, so they keep their original minlen gap instead of opening
// an empty rank that would only need collapsing again later.
func makeSpaceForEdgeLabels(l *graph.Graph) {
	lab := l.GraphLabel()
	lab.RankSep /= 2
	l.SetGraphLabel(lab)

	for _, eid := range l.Edges() {
		e, _ := l.Edge(eid)
		if e.Width == 0 || e.Height == 0 {
			continue
		}
		e.MinLen *= 2
		if e.LabelPos != graph.LabelPosCenter {
			switch lab.RankDir {
			case graph.RankDirTB, graph.RankDirBT, "":
				e.Width += e.LabelOffset
			default:
				e.Height += e.LabelOffset
			}
		}
		l.SetEdge(eid, &e)
	}
}

// injectEdgeLabelProxies drops a floating, edge-less dummy node at the
// midpoint rank of every edge whose label occupies real space, so that
// rank compaction (removeEmptyRanks) doesn't fold away the rank reserved
// for the label before removeEdgeLabelProxies reads it back as LabelRank.
func injectEdgeLabelProxies(l *graph.Graph) {
	for _, eid := range l.Edges() {
		e, _ := l.Edge(eid)
		if e.Width == 0 || e.Height == 0 {
			continue
		}
		e.HasLabelPos = true
		l.SetEdge(eid, &e)

		v, _ := l.Node(eid.V)
		w, _ := l.Node(eid.W)
		rank := (w.Rank-v.Rank)/2 + v.Rank
		idCopy := eid
		addDummyNode(l, graph.DummyEdgeProxy, graph.NodeLabel{Rank: rank, OrigEdge: &idCopy}, "ep")
	}
}

// removeEdgeLabelProxies reads each proxy's settled rank back onto its
// owning edge as LabelRank and deletes the proxy.
func removeEdgeLabelProxies(l *graph.Graph) {
	for _, v := range l.Nodes() {
		node, ok := l.Node(v)
		if !ok || node.Dummy != graph.DummyEdgeProxy || node.OrigEdge == nil {
			continue
		}
		e, ok := l.Edge(*node.OrigEdge)
		if ok {
			e.LabelRank = node.Rank
			l.SetEdge(*node.OrigEdge, &e)
		}
		l.RemoveNode(v)
	}
}

// translateGraph shifts every node and routed edge so the whole drawing's
// bounding box (node rectangles, edge points and edge labels, expanded by
// the graph's margins) starts at the origin, and
// records the final Width/Height on the graph label.
func translateGraph(l *graph.Graph) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	lab := l.GraphLabel()

	extend := func(x, y, w, h float64) {
		if x-w/2 < minX {
			minX = x - w/2
		}
		if x+w/2 > maxX {
			maxX = x + w/2
		}
		if y-h/2 < minY {
			minY = y - h/2
		}
		if y+h/2 > maxY {
			maxY = y + h/2
		}
	}

	for _, v := range l.Nodes() {
		n, _ := l.Node(v)
		extend(n.X, n.Y, n.Width, n.Height)
	}
	for _, eid := range l.Edges() {
		e, _ := l.Edge(eid)
		for _, p := range e.Points {
			extend(p.X, p.Y, 0, 0)
		}
		if e.HasLabelPos {
			extend(e.X, e.Y, e.Width, e.Height)
		}
	}
	if minX == math.Inf(1) {
		minX, minY = 0, 0
		maxX, maxY = 0, 0
	}

	minX -= lab.MarginX
	minY -= lab.MarginY

	for _, v := range l.Nodes() {
		n, _ := l.Node(v)
		n.X -= minX
		n.Y -= minY
		l.SetNode(v, n)
	}
	for _, eid := range l.Edges() {
		e, _ := l.Edge(eid)
		for i := range e.Points {
			e.Points[i].X -= minX
			e.Points[i].Y -= minY
		}
		if e.HasLabelPos {
			e.X -= minX
			e.Y -= minY
		}
		l.SetEdge(eid, &e)
	}

	lab.Width = maxX - minX + lab.MarginX
	lab.Height = maxY - minY + lab.MarginY
	l.SetGraphLabel(lab)
}

// assignNodeIntersects clips every edge's routed polyline so it starts and
// ends exactly on its endpoint nodes' boundaries rather than their centers,
// using a boundary-ray intersection against each node's bounding rectangle.
func assignNodeIntersects(l *graph.Graph) {
	for _, eid := range l.Edges() {
		if eid.V == eid.W {
			// self-edges are already fully routed by runPositionSelfEdges;
			// clipping here would grow their loop from 5 points to 7.
			continue
		}
		e, _ := l.Edge(eid)
		vNode, _ := l.Node(eid.V)
		wNode, _ := l.Node(eid.W)

		var p1, p2 graph.Point
		if len(e.Points) == 0 {
			p1 = graph.Point{X: wNode.X, Y: wNode.Y}
			p2 = graph.Point{X: vNode.X, Y: vNode.Y}
		} else {
			p1 = e.Points[0]
			p2 = e.Points[len(e.Points)-1]
		}

		start := rectIntersect(graph.Point{X: vNode.X, Y: vNode.Y}, vNode.Width, vNode.Height, p1)
		end := rectIntersect(graph.Point{X: wNode.X, Y: wNode.Y}, wNode.Width, wNode.Height, p2)

		e.Points = append([]graph.Point{start}, e.Points...)
		e.Points = append(e.Points, end)
		l.SetEdge(eid, &e)
	}
}

// fixupEdgeLabelCoords nudges a non-center edge label off to the side of
// its edge's midpoint once the edge's final route is known.
func fixupEdgeLabelCoords(l *graph.Graph) {
	for _, eid := range l.Edges() {
		e, _ := l.Edge(eid)
		if !e.HasLabelPos {
			continue
		}
		switch e.LabelPos {
		case graph.LabelPosLeft:
			e.Width -= e.LabelOffset
			e.X -= e.Width/2 + e.LabelOffset
		case graph.LabelPosRight:
			e.Width -= e.LabelOffset
			e.X += e.Width/2 + e.LabelOffset
		}
		l.SetEdge(eid, &e)
	}
}

// reversePointsForReversedEdges flips the point order on every edge Acyclic
// reversed, so the caller always sees points running from the edge's
// original V to its original W regardless of which direction the ranker
// actually routed it in.
func reversePointsForReversedEdges(l *graph.Graph) {
	for _, eid := range l.Edges() {
		e, _ := l.Edge(eid)
		if !e.Reversed {
			continue
		}
		for i, j := 0, len(e.Points)-1; i < j; i, j = i+1, j-1 {
			e.Points[i], e.Points[j] = e.Points[j], e.Points[i]
		}
		l.SetEdge(eid, &e)
	}
}

// updateInputGraph copies the working copy's computed coordinates back onto
// the caller's original graph, leaving everything else on it untouched.
func updateInputGraph(g, l *graph.Graph) {
	for _, v := range g.Nodes() {
		n, ok := g.Node(v)
		if !ok {
			continue
		}
		ln, ok := l.Node(v)
		if !ok {
			continue
		}
		n.X, n.Y = ln.X, ln.Y
		n.Rank = ln.Rank
		if len(g.Children(v)) > 0 {
			n.Width, n.Height = ln.Width, ln.Height
		}
		g.SetNode(v, n)
	}

	for _, eid := range g.Edges() {
		e, ok := g.Edge(eid)
		if !ok {
			continue
		}
		le, ok := l.Edge(eid)
		if !ok {
			continue
		}
		e.Points = le.Points
		if le.HasLabelPos {
			e.X, e.Y = le.X, le.Y
		}
		g.SetEdge(eid, &e)
	}

	glab := g.GraphLabel()
	llab := l.GraphLabel()
	glab.Width, glab.Height = llab.Width, llab.Height
	glab.MaxRank = llab.MaxRank
	g.SetGraphLabel(glab)
}
