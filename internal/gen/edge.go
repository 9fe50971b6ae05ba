package gen

import "fmt"

// Edge is an unordered pair of vertex indices stored in canonical form:
// Source is always the smaller index, Destination the larger. Two edges
// built from (a,b) and (b,a) compare equal.
type Edge struct {
	Source      uint64
	Destination uint64
}

// NewEdge canonicalizes the pair so that Source < Destination.
func NewEdge(a, b uint64) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{Source: a, Destination: b}
}

// Validate checks the edge invariants against the sampling domain.
func (e Edge) Validate(numVertices uint64) error {
	if e.Source == e.Destination {
		return fmt.Errorf("self-loop on vertex index %d", e.Source)
	}
	if e.Source >= numVertices || e.Destination >= numVertices {
		return fmt.Errorf("edge endpoint out of range: (%d, %d), num_vertices=%d",
			e.Source, e.Destination, numVertices)
	}
	return nil
}

// Compare orders edges ascending by (Source, Destination).
func (e Edge) Compare(other Edge) int {
	switch {
	case e.Source < other.Source:
		return -1
	case e.Source > other.Source:
		return 1
	case e.Destination < other.Destination:
		return -1
	case e.Destination > other.Destination:
		return 1
	}
	return 0
}
