package layout

import (
	"sort"

	"gonum.org/v1/gonum/graph/topo"

	"github.com/arjunmenon/graphlayout/graph"
)

// runAcyclic picks a feedback arc set according to l's acyclicer and
// reverses each selected edge in place. It fails loudly (via
// the returned error, not a panic, since this is reachable from the
// exported Layout entry point) if acyclicer is "none" and the graph is
// still cyclic afterward: the ranker cannot proceed on a cyclic graph.
func runAcyclic(l *graph.Graph) error {
	var fas []graph.EdgeID

	switch l.GraphLabel().Acyclicer {
	case graph.AcyclicerGreedy, "":
		fas = greedyFAS(l)
	case graph.AcyclicerNone:
		if hasCycle(l) {
			return invariantf("acyclicer is \"none\" but the input graph has a cycle")
		}
		return nil
	default:
		return unsupportedf("acyclicer %q", l.GraphLabel().Acyclicer)
	}

	for _, eid := range fas {
		label, ok := l.Edge(eid)
		if !ok {
			continue
		}
		if eid.V == eid.W {
			return invariantf("self-edge %s survived to Acyclic", eid)
		}
		l.RemoveEdge(eid)
		label.Reversed = true
		label.ForwardName = eid.Name
		name := eid.Name
		if l.IsMultigraph() {
			name = graph.NewEdgeName()
		}
		rev := graph.EdgeID{V: eid.W, W: eid.V, Name: name}
		l.SetEdge(rev, &label)
	}
	return nil
}

// undoAcyclic reverses every edge Acyclic flipped, restoring its original
// direction and name on L before updateInputGraph runs. It leaves the
// points alone: reversePointsForReversedEdges has already run on L and put
// them in the original edge's direction.
func undoAcyclic(l *graph.Graph) {
	for _, eid := range l.Edges() {
		label, _ := l.Edge(eid)
		if !label.Reversed {
			continue
		}
		l.RemoveEdge(eid)
		label.Reversed = false
		orig := graph.EdgeID{V: eid.W, W: eid.V, Name: label.ForwardName}
		label.ForwardName = ""
		l.SetEdge(orig, &label)
	}
}

// hasCycle reports whether l's reachability projection contains a cycle
// (including a self-loop), via gonum's Tarjan SCC implementation: any SCC
// of more than one node is a cycle, and any node with an edge to itself is
// too even though Tarjan reports it as a singleton SCC.
func hasCycle(l *graph.Graph) bool {
	sccs := topo.TarjanSCC(l.Simple())
	for _, scc := range sccs {
		if len(scc) > 1 {
			return true
		}
	}
	for _, eid := range l.Edges() {
		if eid.V == eid.W {
			return true
		}
	}
	return false
}

// greedyFAS is the Eades-Lin-Smyth bucket-queue heuristic: nodes are kept
// in buckets keyed by out-degree minus in-degree (both edge-weight
// weighted); at each step a sink (no out edges) or source (no in edges) is
// removed for free, and failing that the node with the best degree
// differential is removed and its surviving in-edges are recorded as part
// of the feedback arc set. This is the algorithm dagre calls "greedyFAS";
// no pack file implements it, so it is written fresh against the
// algorithm's description rather than copied (see DESIGN.md).
func greedyFAS(l *graph.Graph) []graph.EdgeID {
	type entry struct {
		id       graph.NodeID
		in, out  float64
		removed  bool
	}

	nodes := l.Nodes()
	if len(nodes) <= 1 {
		return nil
	}

	entries := make(map[graph.NodeID]*entry, len(nodes))
	for _, id := range nodes {
		entries[id] = &entry{id: id}
	}

	// weight[v][w] aggregates parallel-edge weight between v and w so the
	// bucket differential reflects total pull, not edge count.
	weight := map[[2]graph.NodeID]float64{}
	maxOut, maxIn := 0.0, 0.0
	for _, eid := range l.Edges() {
		if eid.V == eid.W {
			continue
		}
		label, _ := l.Edge(eid)
		w := label.Weight
		if w <= 0 {
			w = 1
		}
		weight[[2]graph.NodeID{eid.V, eid.W}] += w
		entries[eid.V].out += w
		entries[eid.W].in += w
		if entries[eid.V].out > maxOut {
			maxOut = entries[eid.V].out
		}
		if entries[eid.W].in > maxIn {
			maxIn = entries[eid.W].in
		}
	}

	numBuckets := int(maxOut+maxIn) + 3
	zeroIdx := int(maxIn) + 1
	buckets := make([][]*entry, numBuckets)

	bucketOf := func(e *entry) int {
		if e.out == 0 {
			return 0
		}
		if e.in == 0 {
			return numBuckets - 1
		}
		idx := int(e.out-e.in) + zeroIdx
		if idx < 1 {
			idx = 1
		}
		if idx > numBuckets-2 {
			idx = numBuckets - 2
		}
		return idx
	}
	bucketIdx := map[graph.NodeID]int{}
	assign := func(e *entry) {
		idx := bucketOf(e)
		bucketIdx[e.id] = idx
		buckets[idx] = append(buckets[idx], e)
	}

	sortedIDs := append([]graph.NodeID{}, nodes...)
	sort.Strings(sortedIDs)
	for _, id := range sortedIDs {
		assign(entries[id])
	}

	// successors/predecessors restricted to still-present entries.
	succ := map[graph.NodeID]map[graph.NodeID]bool{}
	pred := map[graph.NodeID]map[graph.NodeID]bool{}
	for _, eid := range l.Edges() {
		if eid.V == eid.W {
			continue
		}
		if succ[eid.V] == nil {
			succ[eid.V] = map[graph.NodeID]bool{}
		}
		succ[eid.V][eid.W] = true
		if pred[eid.W] == nil {
			pred[eid.W] = map[graph.NodeID]bool{}
		}
		pred[eid.W][eid.V] = true
	}

	dequeue := func(idx int) *entry {
		for len(buckets[idx]) > 0 {
			e := buckets[idx][0]
			buckets[idx] = buckets[idx][1:]
			if !e.removed {
				return e
			}
		}
		return nil
	}

	remaining := len(nodes)
	var fasPairs [][2]graph.NodeID

	removeNode := func(e *entry, collectIn bool) {
		e.removed = true
		remaining--
		for other := range pred[e.id] {
			oe := entries[other]
			if oe.removed {
				continue
			}
			if collectIn {
				fasPairs = append(fasPairs, [2]graph.NodeID{other, e.id})
			}
			oe.out -= weight[[2]graph.NodeID{other, e.id}]
			assign(oe)
		}
		for other := range succ[e.id] {
			oe := entries[other]
			if oe.removed {
				continue
			}
			oe.in -= weight[[2]graph.NodeID{e.id, other}]
			assign(oe)
		}
	}

	for remaining > 0 {
		for e := dequeue(0); e != nil; e = dequeue(0) {
			removeNode(e, false)
		}
		for e := dequeue(numBuckets - 1); e != nil; e = dequeue(numBuckets - 1) {
			removeNode(e, false)
		}
		if remaining == 0 {
			break
		}
		picked := false
		for i := numBuckets - 2; i > 0; i-- {
			if e := dequeue(i); e != nil {
				removeNode(e, true)
				picked = true
				break
			}
		}
		if !picked {
			break
		}
	}

	var fas []graph.EdgeID
	for _, pair := range fasPairs {
		v, w := pair[0], pair[1]
		for _, eid := range l.OutEdgeIDs(v) {
			if eid.W == w {
				fas = append(fas, eid)
			}
		}
	}
	return fas
}
