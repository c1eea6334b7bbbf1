package graph

import "github.com/google/uuid"

// NewEdgeName mints a unique edge name. Acyclic uses it for the synthetic
// reverse edge it creates when it flips an edge in a multigraph, so that
// edge keeps its own identity distinct from any parallel edge already
// running the other way. SetEdge never calls it: an edge added without a
// name keeps the empty name. Grounded on the same
// google/uuid usage pattern as the corpus's dependency-graph tooling
// (matzehuels-stacktower, ritzau-deps-analyzer both take it as a direct
// dependency for exactly this kind of identifier minting).
func NewEdgeName() string {
	return uuid.NewString()
}
