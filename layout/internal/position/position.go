// Package position assigns final X/Y coordinates to every node once rank
// and order are fixed. Y comes directly from cumulative rank heights; X
// comes from a four-direction median alignment pass in the
// style of Brandes-Koepke, averaged together so no single sweep direction
// biases the result, unless the graph label's Align picks one sweep.
package position

import (
	"sort"

	"github.com/arjunmenon/graphlayout/graph"
)

// Run assigns Y from rank heights and X from four direction-biased median
// alignments (up/down, left/right bias), averaged per node. When the graph
// label's Align names one alignment, X is taken from that one alone.
func Run(l *graph.Graph) {
	layers := buildLayerMatrix(l)
	if len(layers) == 0 {
		return
	}
	assignY(l, layers)

	xs := make([][]float64, 4)
	dirs := []struct {
		down, left bool
	}{
		{true, true}, {true, false}, {false, true}, {false, false},
	}
	for i, d := range dirs {
		xs[i] = alignOnce(l, layers, d.down, d.left)
	}
	switch l.GraphLabel().Align {
	case graph.AlignUL:
		xs = xs[0:1]
	case graph.AlignUR:
		xs = xs[1:2]
	case graph.AlignDL:
		xs = xs[2:3]
	case graph.AlignDR:
		xs = xs[3:4]
	}

	ids := flatten(layers)
	avg := make(map[graph.NodeID]float64, len(ids))
	for _, id := range ids {
		avg[id] = 0
	}
	for _, xsPass := range xs {
		for i, id := range ids {
			avg[id] += xsPass[i]
		}
	}
	for _, id := range ids {
		n, _ := l.Node(id)
		n.X = avg[id] / float64(len(xs))
		l.SetNode(id, n)
	}
}

func flatten(layers [][]graph.NodeID) []graph.NodeID {
	var out []graph.NodeID
	for _, layer := range layers {
		out = append(out, layer...)
	}
	return out
}

func buildLayerMatrix(l *graph.Graph) [][]graph.NodeID {
	maxRank := -1
	for _, v := range l.Nodes() {
		n, _ := l.Node(v)
		if n.Rank > maxRank {
			maxRank = n.Rank
		}
	}
	if maxRank < 0 {
		return nil
	}
	layers := make([][]graph.NodeID, maxRank+1)
	for _, v := range l.Nodes() {
		n, _ := l.Node(v)
		if n.Rank < 0 {
			continue
		}
		layers[n.Rank] = append(layers[n.Rank], v)
	}
	for r := range layers {
		layer := layers[r]
		sort.Slice(layer, func(i, j int) bool {
			ni, _ := l.Node(layer[i])
			nj, _ := l.Node(layer[j])
			return ni.Order < nj.Order
		})
	}
	return layers
}

// assignY sets every node's Y to the center of its rank's horizontal band,
// stacking bands by the tallest node in each rank plus the graph's ranksep.
func assignY(l *graph.Graph, layers [][]graph.NodeID) {
	y := 0.0
	ranksep := l.GraphLabel().RankSep
	for _, layer := range layers {
		height := 0.0
		for _, id := range layer {
			n, _ := l.Node(id)
			if n.Height > height {
				height = n.Height
			}
		}
		center := y + height/2
		for _, id := range layer {
			n, _ := l.Node(id)
			n.Y = center
			l.SetNode(id, n)
		}
		y = center + height/2 + ranksep
	}
}

// alignOnce runs one directional sweep: each node is pulled toward the
// median Order position of its reference neighbors (predecessors if down,
// successors otherwise; with an even number of neighbors, the lower of the
// two middle positions if left is true and the upper one if not), then every rank is left-to-right compacted so
// no two nodes violate nodesep plus half their widths.
func alignOnce(l *graph.Graph, layers [][]graph.NodeID, down, left bool) []float64 {
	desired := map[graph.NodeID]float64{}

	rankOrder := make([]int, len(layers))
	for i := range rankOrder {
		rankOrder[i] = i
	}
	if !down {
		for i, j := 0, len(rankOrder)-1; i < j; i, j = i+1, j-1 {
			rankOrder[i], rankOrder[j] = rankOrder[j], rankOrder[i]
		}
	}

	for _, r := range rankOrder {
		layer := layers[r]
		for _, id := range layer {
			var neighbors []graph.NodeID
			if down {
				neighbors = l.Predecessors(id)
			} else {
				neighbors = l.Successors(id)
			}
			if len(neighbors) == 0 {
				continue
			}
			positions := make([]float64, 0, len(neighbors))
			for _, w := range neighbors {
				if x, ok := desired[w]; ok {
					positions = append(positions, x)
				} else {
					wn, _ := l.Node(w)
					positions = append(positions, wn.X)
				}
			}
			sort.Float64s(positions)
			desired[id] = medianBiased(positions, left)
		}
	}

	nodeSep := l.GraphLabel().NodeSep
	out := make([]float64, 0)
	for _, layer := range layers {
		x := 0.0
		for i, id := range layer {
			n, _ := l.Node(id)
			want, ok := desired[id]
			if !ok {
				want = x
			}
			if i == 0 {
				x = want
			} else {
				prevID := layer[i-1]
				pn, _ := l.Node(prevID)
				minX := x + pn.Width/2 + nodeSep + n.Width/2
				if want > minX {
					x = want
				} else {
					x = minX
				}
			}
			out = append(out, x)
		}
	}
	return out
}

func medianBiased(sorted []float64, left bool) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	if left {
		return sorted[n/2-1]
	}
	return sorted[n/2]
}
