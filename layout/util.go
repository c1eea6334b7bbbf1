package layout

import (
	"fmt"
	"math"

	"github.com/arjunmenon/graphlayout/graph"
)

// dummyCounter mints deterministic, run-local synthetic node names. It is
// reset at the start of every Layout call so identical input yields
// identical dummy ids even though the counter itself is package state.
var dummyCounter int

func resetDummyCounter() { dummyCounter = 0 }

func nextDummyID(prefix string) string {
	dummyCounter++
	return fmt.Sprintf("_%s%d", prefix, dummyCounter)
}

// addDummyNode creates a new node of the given dummy kind with the given
// label template, returning its id. Every stage that synthesizes a node
// (normalize, nesting graph, border segments, self-edges, label proxies)
// goes through this single factory, per the "dummy node polymorphism as an
// enum" design note.
func addDummyNode(l *graph.Graph, kind graph.DummyKind, label graph.NodeLabel, prefix string) graph.NodeID {
	label.Dummy = kind
	id := nextDummyID(prefix)
	l.SetNode(id, label)
	return id
}

// buildLayerMatrix returns, for each rank 0..maxRank, the node ids at that
// rank ordered by NodeLabel.Order.
func buildLayerMatrix(l *graph.Graph) [][]graph.NodeID {
	maxRank := l.GraphLabel().MaxRank
	layers := make([][]graph.NodeID, maxRank+1)
	for _, id := range l.Nodes() {
		n, _ := l.Node(id)
		if n.Rank < 0 || n.Rank > maxRank {
			continue
		}
		layers[n.Rank] = append(layers[n.Rank], id)
	}
	for r := range layers {
		orderOf := func(id graph.NodeID) int {
			n, _ := l.Node(id)
			return n.Order
		}
		sortByKey(layers[r], orderOf)
	}
	return layers
}

// sortByKey is insertion-sort-stable ordering by an int key, used instead
// of sort.Slice wherever insertion-order tie-breaking matters.
func sortByKey(ids []graph.NodeID, key func(graph.NodeID) int) {
	for i := 1; i < len(ids); i++ {
		j := i
		for j > 0 && key(ids[j-1]) > key(ids[j]) {
			ids[j-1], ids[j] = ids[j], ids[j-1]
			j--
		}
	}
}

// maxRankOf returns the largest Rank among all of l's nodes, dummies
// included, or -1 if l is empty.
func maxRankOf(l *graph.Graph) int {
	max := -1
	for _, id := range l.Nodes() {
		n, _ := l.Node(id)
		if n.Rank > max {
			max = n.Rank
		}
	}
	return max
}

// normalizeRanks shifts every node's rank so the minimum is 0.
func normalizeRanks(l *graph.Graph) {
	min := math.MaxInt32
	for _, id := range l.Nodes() {
		n, _ := l.Node(id)
		if n.Rank < min {
			min = n.Rank
		}
	}
	if min == math.MaxInt32 || min == 0 {
		return
	}
	for _, id := range l.Nodes() {
		n, _ := l.Node(id)
		n.Rank -= min
		l.SetNode(id, n)
	}
}

// removeEmptyRanks compacts ranks containing no nodes, folding each empty
// rank into the one below it, EXCEPT when that rank is a multiple of
// nodeRankFactor relative to the minimum rank: runNestingGraph multiplied
// every edge's minlen by nodeSep (2*treeHeight+1) to leave room for a
// compound subtree's top/bottom border nodes between ranks, and the empty
// ranks between those multiples are spacing that no border node ended up
// using. Only ranks NOT aligned to the factor are ever folded away, so
// with a factor of 1 nothing is folded.
func removeEmptyRanks(l *graph.Graph, nodeRankFactor int) {
	if nodeRankFactor <= 0 {
		nodeRankFactor = 1
	}
	byRank := map[int][]graph.NodeID{}
	minRank := math.MaxInt32
	maxRank := -1
	for _, id := range l.Nodes() {
		n, _ := l.Node(id)
		byRank[n.Rank] = append(byRank[n.Rank], id)
		if n.Rank < minRank {
			minRank = n.Rank
		}
		if n.Rank > maxRank {
			maxRank = n.Rank
		}
	}
	if minRank == math.MaxInt32 {
		return
	}

	delta := 0
	for r := minRank; r <= maxRank; r++ {
		ids, has := byRank[r]
		if !has && (r-minRank)%nodeRankFactor != 0 {
			delta--
			continue
		}
		if delta == 0 {
			continue
		}
		for _, id := range ids {
			n, _ := l.Node(id)
			n.Rank += delta
			l.SetNode(id, n)
		}
	}
}

// rectIntersect shoots a ray from the rectangle centered at center with the
// given width/height toward point, and returns where that ray crosses the
// rectangle's boundary. Used to seed and terminate edge polylines exactly
// on a node's boundary.
func rectIntersect(center graph.Point, width, height float64, point graph.Point) graph.Point {
	x, y := center.X, center.Y
	dx := point.X - x
	dy := point.Y - y
	if dx == 0 && dy == 0 {
		return center
	}

	w, h := width/2, height/2
	var sx, sy float64
	if math.Abs(dy)*w > math.Abs(dx)*h {
		// intersects top or bottom edge
		if dy < 0 {
			h = -h
		}
		sx = h * dx / dy
		sy = h
	} else {
		// intersects left or right edge
		if dx < 0 {
			w = -w
		}
		sx = w
		sy = w * dy / dx
	}
	return graph.Point{X: x + sx, Y: y + sy}
}
