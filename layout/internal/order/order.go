package order

import (
	"sort"

	"github.com/arjunmenon/graphlayout/graph"
)

// Run orders every rank of l to (approximately) minimize edge crossings
// between adjacent ranks. It seeds an order with initOrder, then repeatedly
// sweeps the layering median-heuristic down then up, running the
// adjacent-pair transpose after the third and fourth sweep of every four,
// keeping whichever layering has the lowest
// CrossCount seen so far; it stops once four consecutive sweeps fail to
// improve on the best found, following dagre.js's own stopping rule rather
// than a fixed iteration count.
func Run(l *graph.Graph) {
	maxRank := maxRankOf(l)
	if maxRank < 0 {
		return
	}

	layering := initOrder(l, maxRank)
	assignOrder(l, layering)

	best := cloneLayering(layering)
	bestCC := CrossCount(l, best)

	for i, sinceBest := 0, 0; sinceBest < 4; i, sinceBest = i+1, sinceBest+1 {
		if i%2 == 0 {
			sweepDown(l, layering)
		} else {
			sweepUp(l, layering)
		}
		if i%4 >= 2 {
			transpose(l, layering)
		}

		cc := CrossCount(l, layering)
		if cc < bestCC {
			bestCC = cc
			best = cloneLayering(layering)
			sinceBest = -1
		}
	}

	assignOrder(l, best)
}

func maxRankOf(l *graph.Graph) int {
	max := -1
	for _, v := range l.Nodes() {
		n, _ := l.Node(v)
		if n.Rank > max {
			max = n.Rank
		}
	}
	return max
}

// initOrder seeds each rank's initial order with a BFS over the whole
// graph starting from the lowest-ranked nodes, so that nodes connected by
// an edge tend to start out near each other before any sweep runs.
func initOrder(l *graph.Graph, maxRank int) [][]graph.NodeID {
	layers := make([][]graph.NodeID, maxRank+1)
	visited := map[graph.NodeID]bool{}

	nodes := append([]graph.NodeID{}, l.Nodes()...)
	sort.Slice(nodes, func(i, j int) bool {
		ni, _ := l.Node(nodes[i])
		nj, _ := l.Node(nodes[j])
		if ni.Rank != nj.Rank {
			return ni.Rank < nj.Rank
		}
		return nodes[i] < nodes[j]
	})

	var queue []graph.NodeID
	push := func(v graph.NodeID) {
		if visited[v] {
			return
		}
		visited[v] = true
		queue = append(queue, v)
	}

	for _, start := range nodes {
		if visited[start] {
			continue
		}
		push(start)
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			n, _ := l.Node(v)
			if n.Rank >= 0 && n.Rank <= maxRank {
				layers[n.Rank] = append(layers[n.Rank], v)
			}
			for _, w := range l.Successors(v) {
				push(w)
			}
		}
	}
	return layers
}

func assignOrder(l *graph.Graph, layering [][]graph.NodeID) {
	for _, layer := range layering {
		for i, v := range layer {
			n, _ := l.Node(v)
			n.Order = i
			l.SetNode(v, n)
		}
	}
}

func cloneLayering(layering [][]graph.NodeID) [][]graph.NodeID {
	out := make([][]graph.NodeID, len(layering))
	for i, layer := range layering {
		out[i] = append([]graph.NodeID{}, layer...)
	}
	return out
}

// sweepDown reorders every rank below the first by the median order of each
// node's predecessors in the rank above, keeping the assignOrder-visible
// state in sync so CrossCount and the next sweep both see it.
func sweepDown(l *graph.Graph, layering [][]graph.NodeID) {
	assignOrder(l, layering)
	for r := 1; r < len(layering); r++ {
		layering[r] = medianSort(l, layering[r], l.Predecessors)
		for i, v := range layering[r] {
			n, _ := l.Node(v)
			n.Order = i
			l.SetNode(v, n)
		}
	}
}

// sweepUp is sweepDown's mirror image, reordering every rank above the
// last by the median order of each node's successors in the rank below.
func sweepUp(l *graph.Graph, layering [][]graph.NodeID) {
	assignOrder(l, layering)
	for r := len(layering) - 2; r >= 0; r-- {
		layering[r] = medianSort(l, layering[r], l.Successors)
		for i, v := range layering[r] {
			n, _ := l.Node(v)
			n.Order = i
			l.SetNode(v, n)
		}
	}
}

// medianSort reorders layer by the median Order of each node's neighbors
// (as given by neighborFn, already ordered in the adjacent rank); nodes
// with no such neighbor keep their current relative position among
// themselves, interleaved at their original index, matching dagre's
// treatment of "no median" nodes in sortLayer.
func medianSort(l *graph.Graph, layer []graph.NodeID, neighborFn func(graph.NodeID) []graph.NodeID) []graph.NodeID {
	type item struct {
		id        graph.NodeID
		origIdx   int
		median    float64
		hasMedian bool
	}
	items := make([]item, len(layer))
	for i, v := range layer {
		neighbors := neighborFn(v)
		var positions []int
		for _, w := range neighbors {
			n, _ := l.Node(w)
			positions = append(positions, n.Order)
		}
		items[i] = item{id: v, origIdx: i, median: float64(i)}
		if len(positions) > 0 {
			sort.Ints(positions)
			items[i].median = medianOf(positions)
			items[i].hasMedian = true
		}
	}

	// Nodes without a neighbor in the adjacent rank keep a median equal to
	// their original index, so they stay roughly in place instead of being
	// pulled toward either end by the sort below.
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].median != items[j].median {
			return items[i].median < items[j].median
		}
		return items[i].origIdx < items[j].origIdx
	})

	out := make([]graph.NodeID, len(items))
	for i, it := range items {
		out[i] = it.id
	}
	return out
}

func medianOf(sorted []int) float64 {
	n := len(sorted)
	mid := n / 2
	if n%2 == 1 {
		return float64(sorted[mid])
	}
	if n == 2 {
		return float64(sorted[0]+sorted[1]) / 2
	}
	left := sorted[mid-1] - sorted[0]
	right := sorted[n-1] - sorted[mid]
	if left+right == 0 {
		return float64(sorted[mid-1]+sorted[mid]) / 2
	}
	return float64(sorted[mid-1]*right+sorted[mid]*left) / float64(left+right)
}

// transpose repeatedly swaps adjacent node pairs within each rank whenever
// doing so reduces the crossing count against both neighboring ranks,
// until a full pass makes no further improvement.
func transpose(l *graph.Graph, layering [][]graph.NodeID) {
	improved := true
	for improved {
		improved = false
		assignOrder(l, layering)
		for r, layer := range layering {
			for i := 0; i+1 < len(layer); i++ {
				before := localCrossings(l, layering, r, i, i+1)
				layer[i], layer[i+1] = layer[i+1], layer[i]
				for j, v := range layer {
					n, _ := l.Node(v)
					n.Order = j
					l.SetNode(v, n)
				}
				after := localCrossings(l, layering, r, i, i+1)
				if after < before {
					improved = true
				} else {
					layer[i], layer[i+1] = layer[i+1], layer[i]
					for j, v := range layer {
						n, _ := l.Node(v)
						n.Order = j
						l.SetNode(v, n)
					}
				}
			}
		}
	}
}

// localCrossings counts crossings between rank r and its neighbors above
// and below only, the scope transpose needs to evaluate a single swap.
func localCrossings(l *graph.Graph, layering [][]graph.NodeID, r, _, _ int) float64 {
	total := 0.0
	if r > 0 {
		total += twoLayerCrossCount(l, layering[r-1], layering[r])
	}
	if r+1 < len(layering) {
		total += twoLayerCrossCount(l, layering[r], layering[r+1])
	}
	return total
}
