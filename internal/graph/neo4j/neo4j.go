package neo4j

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/graphbench/ugg/internal/gen"
)

// batchSize bounds the number of rows per UNWIND statement.
const batchSize = 10_000

// Repository implements graph.Repository using Neo4j.
type Neo4jRepository struct {
	driver neo4j.DriverWithContext
}

// New creates a Neo4j-backed repository.
func NewNeo4j(ctx context.Context, uri, username, password string) (*Neo4jRepository, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("neo4j driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, fmt.Errorf("neo4j connectivity: %w", err)
	}
	return &Neo4jRepository{driver: driver}, nil
}

// StoreDataset loads the vertices and undirected edges in UNWIND batches.
// Vertices carry the dataset name so several datasets can coexist.
func (r *Neo4jRepository) StoreDataset(ctx context.Context, name string, vertexIDs []uint64, edges []gen.Edge) error {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{})
	defer session.Close(ctx)

	for start := 0; start < len(vertexIDs); start += batchSize {
		end := min(start+batchSize, len(vertexIDs))
		rows := make([]any, 0, end-start)
		for _, id := range vertexIDs[start:end] {
			rows = append(rows, int64(id))
		}
		_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
			return tx.Run(ctx,
				"UNWIND $ids AS id MERGE (:Vertex {dataset: $dataset, id: id})",
				map[string]any{"ids": rows, "dataset": name})
		})
		if err != nil {
			return fmt.Errorf("store vertices [%d:%d]: %w", start, end, err)
		}
	}

	for start := 0; start < len(edges); start += batchSize {
		end := min(start+batchSize, len(edges))
		rows := make([]any, 0, end-start)
		for _, e := range edges[start:end] {
			rows = append(rows, map[string]any{
				"src": int64(e.Source),
				"dst": int64(e.Destination),
			})
		}
		_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
			return tx.Run(ctx,
				"UNWIND $rows AS row "+
					"MATCH (a:Vertex {dataset: $dataset, id: row.src}) "+
					"MATCH (b:Vertex {dataset: $dataset, id: row.dst}) "+
					"MERGE (a)-[:CONNECTED]-(b)",
				map[string]any{"rows": rows, "dataset": name})
		})
		if err != nil {
			return fmt.Errorf("store edges [%d:%d]: %w", start, end, err)
		}
	}

	return nil
}

// CountVertices returns the number of stored vertices for a dataset.
func (r *Neo4jRepository) CountVertices(ctx context.Context, name string) (int64, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		records, err := tx.Run(ctx,
			"MATCH (v:Vertex {dataset: $dataset}) RETURN count(v) AS n",
			map[string]any{"dataset": name})
		if err != nil {
			return nil, err
		}
		rec, err := records.Single(ctx)
		if err != nil {
			return nil, err
		}
		n, _ := rec.Get("n")
		return n.(int64), nil
	})
	if err != nil {
		return 0, fmt.Errorf("count vertices: %w", err)
	}
	return result.(int64), nil
}

// Close shuts down the underlying driver.
func (r *Neo4jRepository) Close(ctx context.Context) error {
	return r.driver.Close(ctx)
}
