package graph

// RankDir is the direction the ranks flow in the finished drawing.
type RankDir string

const (
	RankDirTB RankDir = "TB"
	RankDirBT RankDir = "BT"
	RankDirLR RankDir = "LR"
	RankDirRL RankDir = "RL"
)

// RankerKind selects the ranking algorithm used to assign node ranks.
type RankerKind string

const (
	RankerNetworkSimplex RankerKind = "network-simplex"
	RankerTightTree      RankerKind = "tight-tree"
	RankerLongestPath    RankerKind = "longest-path"
)

// AcyclicerKind selects the feedback-arc-set strategy used to break cycles.
type AcyclicerKind string

const (
	AcyclicerGreedy AcyclicerKind = "greedy"
	AcyclicerNone   AcyclicerKind = "none"
)

// LabelPos is the position of an edge label relative to its edge.
type LabelPos string

const (
	LabelPosLeft   LabelPos = "l"
	LabelPosCenter LabelPos = "c"
	LabelPosRight  LabelPos = "r"
)

// Align biases Brandes-Koepke x-coordinate assignment toward one of the
// four alignment sweeps instead of averaging all four.
type Align string

const (
	AlignNone Align = ""
	AlignUL   Align = "UL"
	AlignUR   Align = "UR"
	AlignDL   Align = "DL"
	AlignDR   Align = "DR"
)

// DummyKind tags the role a synthetic node plays in the layout pipeline.
// Modeled as an enum, never as subclassing, per the one-node-type rule.
type DummyKind string

const (
	DummyNone          DummyKind = ""
	DummyEdge          DummyKind = "edge"
	DummyEdgeLabel     DummyKind = "edge-label"
	DummyEdgeProxy     DummyKind = "edge-proxy"
	DummyBorder        DummyKind = "border"
	DummySelfEdge      DummyKind = "selfedge"
	DummyNestingTop    DummyKind = "nesting-top"
	DummyNestingBottom DummyKind = "nesting-bottom"
	DummyNestingRoot   DummyKind = "nesting-root"
)

// Point is a coordinate in graph space.
type Point struct {
	X, Y float64
}

// Label is the graph-level attribute bag. RankSep/NodeSep/EdgeSep/MarginX/
// MarginY/Ranker/Acyclicer/RankDir/Align are the public, whitelisted fields;
// Width/Height/MaxRank are computed outputs. DummyChains and
// NestingRoot are pipeline-private bookkeeping threaded between stages the
// way dagre.js piggybacks transient state on the graph label rather than a
// separate context object.
type Label struct {
	RankDir   RankDir
	RankSep   float64
	NodeSep   float64
	EdgeSep   float64
	MarginX   float64
	MarginY   float64
	Ranker    RankerKind
	Acyclicer AcyclicerKind
	Align     Align

	Width   float64
	Height  float64
	MaxRank int

	DummyChains []NodeID
	NestingRoot NodeID
}

// DefaultLabel returns the graph label with dagre's own default values applied.
func DefaultLabel() Label {
	return Label{
		RankDir:   RankDirTB,
		RankSep:   50,
		NodeSep:   50,
		EdgeSep:   20,
		Ranker:    RankerNetworkSimplex,
		Acyclicer: AcyclicerGreedy,
	}
}

// SelfEdge is a self-loop stashed on its owner node by removeSelfEdges so
// that ordering and ranking never have to reason about self-loops.
type SelfEdge struct {
	ID    EdgeID
	Label EdgeLabel
}

// NodeLabel is the per-node attribute bag. Width/Height are inputs;
// Rank/Order/X/Y are computed by the pipeline; Dummy marks synthetic nodes;
// the Border* fields are populated only on compound parents; SelfEdges is
// transient state live only between removeSelfEdges and insertSelfEdges.
type NodeLabel struct {
	Width  float64
	Height float64

	Rank  int
	Order int
	X, Y  float64

	Dummy DummyKind

	// OrigEdge identifies the original (pre-normalize) edge this dummy node
	// stands in for, when Dummy is DummyEdge or DummyEdgeProxy.
	OrigEdge *EdgeID
	// OrigEdgeLabel is stashed on the first dummy node of a chain so
	// undoNormalize can reconstruct the original edge label.
	OrigEdgeLabel *EdgeLabel

	MinRank      int
	MaxRank      int
	BorderTop    NodeID
	BorderBottom NodeID
	BorderLeft   []NodeID
	BorderRight  []NodeID

	SelfEdges []SelfEdge
}

// EdgeLabel is the per-edge attribute bag.
type EdgeLabel struct {
	MinLen      int
	Weight      float64
	Width       float64
	Height      float64
	LabelOffset float64
	LabelPos    LabelPos

	Points    []Point
	X, Y      float64
	HasLabelPos bool
	LabelRank int

	Reversed    bool
	ForwardName string

	// Nesting marks a synthetic edge added by the nesting graph, so
	// cleanupNestingGraph can remove exactly these and nothing else.
	Nesting bool
}

// DefaultEdgeLabel returns the edge label with dagre's own default values applied.
func DefaultEdgeLabel() EdgeLabel {
	return EdgeLabel{
		MinLen:      1,
		Weight:      1,
		LabelOffset: 10,
		LabelPos:    LabelPosRight,
	}
}
