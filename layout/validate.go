package layout

import (
	"fmt"

	"github.com/arjunmenon/graphlayout/graph"
)

// Violation describes one failed layout invariant, identified by the node
// or edge it was checked against.
type Violation struct {
	Rule string
	On   string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Rule, v.On)
}

// Validate checks g against its structural layout invariants (1-6 below;
// determinism and round-trip are cross-run properties exercised by
// tests, not a single-graph check) and returns every violation found. A nil
// slice means g passed every check. Callers normally run this immediately
// after Layout.
func Validate(g *graph.Graph) []Violation {
	var out []Violation

	for _, eid := range g.Edges() {
		e, _ := g.Edge(eid)
		un, _ := g.Node(eid.V)
		wn, _ := g.Node(eid.W)
		if !e.Reversed && un.Rank > wn.Rank {
			out = append(out, Violation{"rank-monotonicity", eid.String()})
		}
	}

	// A rank counts as covered either by a real node sitting on it, or by a
	// real edge whose dummy chain passed through it (those dummies never
	// survive on the caller's graph, so their ranks have to be inferred
	// from the edge's own endpoints) — real plus label-proxy-adjusted
	// spacing, not bare node occupancy.
	covered := map[int]bool{}
	minRank, maxRank := 0, 0
	first := true
	for _, id := range g.Nodes() {
		n, _ := g.Node(id)
		covered[n.Rank] = true
		if first {
			minRank, maxRank = n.Rank, n.Rank
			first = false
		}
		if n.Rank < minRank {
			minRank = n.Rank
		}
		if n.Rank > maxRank {
			maxRank = n.Rank
		}
	}
	for _, eid := range g.Edges() {
		if eid.V == eid.W {
			continue
		}
		un, _ := g.Node(eid.V)
		wn, _ := g.Node(eid.W)
		lo, hi := un.Rank, wn.Rank
		if lo > hi {
			lo, hi = hi, lo
		}
		for r := lo; r <= hi; r++ {
			covered[r] = true
		}
	}
	for r := minRank; r <= maxRank; r++ {
		if !covered[r] {
			out = append(out, Violation{"rank-contiguity", fmt.Sprintf("rank %d", r)})
		}
	}

	byRank := map[int][]int{}
	for _, id := range g.Nodes() {
		n, _ := g.Node(id)
		byRank[n.Rank] = append(byRank[n.Rank], n.Order)
	}
	for r, orders := range byRank {
		seen := make([]bool, len(orders))
		ok := true
		for _, o := range orders {
			if o < 0 || o >= len(orders) || seen[o] {
				ok = false
				break
			}
			seen[o] = true
		}
		if !ok {
			out = append(out, Violation{"order-permutation", fmt.Sprintf("rank %d", r)})
		}
	}

	for _, id := range g.Nodes() {
		n, _ := g.Node(id)
		if n.X-n.Width/2 < -1e-6 || n.Y-n.Height/2 < -1e-6 {
			out = append(out, Violation{"non-negative-coordinates", id})
		}
	}

	lab := g.GraphLabel()
	maxX, maxY := 0.0, 0.0
	for _, id := range g.Nodes() {
		n, _ := g.Node(id)
		if x := n.X + n.Width/2; x > maxX {
			maxX = x
		}
		if y := n.Y + n.Height/2; y > maxY {
			maxY = y
		}
	}
	if lab.Width < maxX+lab.MarginX-1e-6 {
		out = append(out, Violation{"graph-bounding-width", fmt.Sprintf("width=%v need>=%v", lab.Width, maxX+lab.MarginX)})
	}
	if lab.Height < maxY+lab.MarginY-1e-6 {
		out = append(out, Violation{"graph-bounding-height", fmt.Sprintf("height=%v need>=%v", lab.Height, maxY+lab.MarginY)})
	}

	for _, eid := range g.Edges() {
		if eid.V == eid.W {
			// self-loops are a fixed 5-point arc, not a boundary-clipped
			// polyline; excluded from this check the same way
			// assignNodeIntersects skips them.
			continue
		}
		e, _ := g.Edge(eid)
		if len(e.Points) < 2 {
			continue
		}
		un, _ := g.Node(eid.V)
		wn, _ := g.Node(eid.W)
		first, last := e.Points[0], e.Points[len(e.Points)-1]
		if !onBoundary(first, un) {
			out = append(out, Violation{"edge-endpoint-on-boundary", eid.String() + " (start)"})
		}
		if !onBoundary(last, wn) {
			out = append(out, Violation{"edge-endpoint-on-boundary", eid.String() + " (end)"})
		}
	}

	return out
}

const boundaryEpsilon = 1e-4

func onBoundary(p graph.Point, n graph.NodeLabel) bool {
	left, right := n.X-n.Width/2, n.X+n.Width/2
	top, bottom := n.Y-n.Height/2, n.Y+n.Height/2
	onVertical := (approx(p.X, left) || approx(p.X, right)) && p.Y >= top-boundaryEpsilon && p.Y <= bottom+boundaryEpsilon
	onHorizontal := (approx(p.Y, top) || approx(p.Y, bottom)) && p.X >= left-boundaryEpsilon && p.X <= right+boundaryEpsilon
	return onVertical || onHorizontal
}

func approx(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= boundaryEpsilon
}
