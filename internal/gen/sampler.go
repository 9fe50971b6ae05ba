package gen

import (
	"fmt"
	"math/rand/v2"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// SamplerStats aggregates the per-worker draw counters after the join.
type SamplerStats struct {
	Attempts   uint64 `json:"attempts"`
	SelfLoops  uint64 `json:"self_loops_rejected"`
	Duplicates uint64 `json:"duplicates_rejected"`
}

// Sampler draws exactly NumEdges distinct canonical edges over vertex indices
// [0, NumVertices), uniformly without replacement. Each of the Workers owns an
// independent PRNG stream seeded Seed+workerID and a disjoint share of the
// target count; the only shared state is the dedup set.
type Sampler struct {
	NumVertices uint64
	NumEdges    uint64
	Seed        uint64
	Workers     int
}

// workerQuota is the exact number of edges worker i of w must contribute.
// The quotas partition the total: they sum to numEdges for every w >= 1.
func workerQuota(numEdges uint64, i, w int) uint64 {
	quota := numEdges / uint64(w)
	if uint64(i) < numEdges%uint64(w) {
		quota++
	}
	return quota
}

// Run fans out the workers, joins them, and returns the full edge set. The
// returned stats count every draw, including rejected ones. A result size
// other than NumEdges means the quota partition is broken and is reported as
// an internal error.
func (s *Sampler) Run() ([]Edge, SamplerStats, error) {
	if s.Workers < 1 {
		return nil, SamplerStats{}, fmt.Errorf("sampler: worker count %d < 1", s.Workers)
	}

	set := NewEdgeSet(int(s.NumEdges))
	var attempts, selfLoops, duplicates atomic.Uint64

	var g errgroup.Group
	for i := 0; i < s.Workers; i++ {
		workerID := i
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(s.Seed+uint64(workerID), 0))
			quota := workerQuota(s.NumEdges, workerID, s.Workers)

			var drawn, loops, dups uint64
			var created uint64
			for created < quota {
				drawn++
				a := rng.Uint64N(s.NumVertices)
				b := rng.Uint64N(s.NumVertices)
				if a == b {
					loops++
					continue
				}
				if set.TryInsert(NewEdge(a, b)) {
					created++
				} else {
					dups++
				}
			}

			attempts.Add(drawn)
			selfLoops.Add(loops)
			duplicates.Add(dups)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, SamplerStats{}, err
	}

	if got := uint64(set.Len()); got != s.NumEdges {
		return nil, SamplerStats{}, fmt.Errorf(
			"internal error: sampler produced %d edges, requested %d", got, s.NumEdges)
	}

	stats := SamplerStats{
		Attempts:   attempts.Load(),
		SelfLoops:  selfLoops.Load(),
		Duplicates: duplicates.Load(),
	}
	return set.Snapshot(), stats, nil
}
