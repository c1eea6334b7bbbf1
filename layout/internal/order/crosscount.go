// Package order assigns every node an Order within its rank so that the
// number of edge crossings between adjacent ranks is small: it
// seeds an initial order with a BFS, then alternates median-heuristic
// sweeps with an adjacent-swap transpose pass, keeping whichever layering
// minimizes the weighted crossing count.
package order

import (
	"github.com/arjunmenon/graphlayout/graph"
)

// CrossCount returns the total weighted number of edge crossings between
// every pair of adjacent layers in matrix, where layer i holds the node ids
// at rank i ordered left to right.
func CrossCount(l *graph.Graph, matrix [][]graph.NodeID) float64 {
	total := 0.0
	for i := 1; i < len(matrix); i++ {
		total += twoLayerCrossCount(l, matrix[i-1], matrix[i])
	}
	return total
}

// twoLayerCrossCount counts weighted crossings between edges running from
// north to south, by comparing every pair of edges: two edges cross when
// their north-layer order is the opposite of their south-layer order.
func twoLayerCrossCount(l *graph.Graph, north, south []graph.NodeID) float64 {
	southPos := make(map[graph.NodeID]int, len(south))
	for i, v := range south {
		southPos[v] = i
	}

	type entry struct {
		northPos int
		southPos int
		weight   float64
	}
	var entries []entry
	for i, v := range north {
		for _, eid := range l.OutEdgeIDs(v) {
			sp, ok := southPos[eid.W]
			if !ok {
				continue
			}
			e, _ := l.Edge(eid)
			w := e.Weight
			if w <= 0 {
				w = 1
			}
			entries = append(entries, entry{northPos: i, southPos: sp, weight: w})
		}
	}

	total := 0.0
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			a, b := entries[i], entries[j]
			if (a.northPos-b.northPos)*(a.southPos-b.southPos) < 0 {
				total += a.weight * b.weight
			}
		}
	}
	return total
}
