package gen

import "github.com/puzpuzpuz/xsync/v3"

// EdgeSet is the shared deduplicated edge collection the sampler workers race
// on. TryInsert must be safe for concurrent use; Snapshot and Len may only be
// called after every writer has finished.
type EdgeSet interface {
	// TryInsert atomically adds the edge and reports whether it was newly
	// inserted. The first writer wins; duplicates return false.
	TryInsert(e Edge) bool
	// Snapshot returns all inserted edges in unspecified order.
	Snapshot() []Edge
	// Len returns the number of distinct edges inserted.
	Len() int
}

// concurrentEdgeSet backs EdgeSet with a striped concurrent hash map, keeping
// the membership-test-plus-insert hot path off a single global lock.
type concurrentEdgeSet struct {
	m *xsync.MapOf[Edge, struct{}]
}

// NewEdgeSet returns an EdgeSet sized for the expected number of edges.
func NewEdgeSet(sizeHint int) EdgeSet {
	return &concurrentEdgeSet{
		m: xsync.NewMapOf[Edge, struct{}](xsync.WithPresize(sizeHint)),
	}
}

func (s *concurrentEdgeSet) TryInsert(e Edge) bool {
	_, loaded := s.m.LoadOrStore(e, struct{}{})
	return !loaded
}

func (s *concurrentEdgeSet) Snapshot() []Edge {
	edges := make([]Edge, 0, s.m.Size())
	s.m.Range(func(e Edge, _ struct{}) bool {
		edges = append(edges, e)
		return true
	})
	return edges
}

func (s *concurrentEdgeSet) Len() int {
	return s.m.Size()
}
