package gen

import (
	"context"
	"fmt"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/graphbench/ugg/internal/observability"
)

// Params are the immutable knobs for one generation run.
type Params struct {
	NumVertices     uint64
	NumEdges        uint64
	ExpansionFactor float64
	Seed            uint64
	Workers         int
}

// Graph is the complete generation result: the vertex-ID sequence in emission
// order and the canonical edge list with endpoints already remapped to IDs and
// sorted ascending by (Source, Destination). It is handed whole to
// serialization; nothing is streamed.
type Graph struct {
	VertexIDs []uint64
	Edges     []Edge

	Stats          SamplerStats
	SampleDuration time.Duration
	ExpandDuration time.Duration
}

// Generate runs the edge sampler and the vertex-ID expander concurrently,
// then sorts, validates, and remaps the edges through the index-to-ID
// mapping. Violated invariants here mean a bug in the sampler, not bad input,
// and surface as internal errors.
func Generate(ctx context.Context, p Params) (*Graph, error) {
	g := &Graph{}

	var group errgroup.Group
	group.Go(func() error {
		_, span := observability.StartGenerateSpan(ctx, "sample_edges", p.NumVertices, p.NumEdges, p.Workers)
		defer span.End()

		start := time.Now()
		sampler := &Sampler{
			NumVertices: p.NumVertices,
			NumEdges:    p.NumEdges,
			Seed:        p.Seed,
			Workers:     p.Workers,
		}
		edges, stats, err := sampler.Run()
		if err != nil {
			observability.RecordError(span, err)
			return err
		}
		g.Edges = edges
		g.Stats = stats
		g.SampleDuration = time.Since(start)
		observability.RecordSamplerResult(span, len(edges), stats.Attempts, stats.SelfLoops, stats.Duplicates)
		return nil
	})
	group.Go(func() error {
		_, span := observability.StartGenerateSpan(ctx, "expand_vertices", p.NumVertices, p.NumEdges, p.Workers)
		defer span.End()

		start := time.Now()
		g.VertexIDs = ExpandVertexIDs(p.NumVertices, p.ExpansionFactor)
		g.ExpandDuration = time.Since(start)
		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(g.Edges, Edge.Compare)

	for _, e := range g.Edges {
		if err := e.Validate(p.NumVertices); err != nil {
			return nil, fmt.Errorf("internal error: %w", err)
		}
	}
	if uint64(len(g.VertexIDs)) != p.NumVertices {
		return nil, fmt.Errorf("internal error: expanded %d vertex IDs, requested %d",
			len(g.VertexIDs), p.NumVertices)
	}

	// The mapping is strictly increasing, so the remap preserves both the
	// sort order and Source < Destination.
	for i, e := range g.Edges {
		g.Edges[i] = Edge{
			Source:      g.VertexIDs[e.Source],
			Destination: g.VertexIDs[e.Destination],
		}
	}

	return g, nil
}
