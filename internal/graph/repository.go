package graph

import (
	"context"

	"github.com/graphbench/ugg/internal/gen"
)

// Repository provides graph database storage for generated datasets.
type Repository interface {
	// StoreDataset persists the vertex IDs and edges under the given
	// dataset name.
	StoreDataset(ctx context.Context, name string, vertexIDs []uint64, edges []gen.Edge) error
	// CountVertices returns the number of stored vertices for a dataset.
	CountVertices(ctx context.Context, name string) (int64, error)
	// Close releases resources.
	Close(ctx context.Context) error
}
