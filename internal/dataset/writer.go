// Package dataset reads and writes the flat .v/.e/.properties layout consumed
// by graph-benchmark drivers.
package dataset

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/graphbench/ugg/internal/gen"
)

// Fixed downstream algorithm parameters advertised in the properties file.
const (
	algorithms            = "bfs, cdlp, lcc, pagerank, sssp, wcc"
	cdlpMaxIterations     = 10
	pagerankDampingFactor = "0.85"
	pagerankIterations    = 30
)

// Write serializes the graph under the given path prefix, creating the parent
// directory if needed. It produces <prefix>.v, <prefix>.e and
// <prefix>.properties, in that order; a failure aborts the remaining files
// but leaves completed ones in place.
func Write(g *gen.Graph, prefix string, now time.Time) error {
	dir := filepath.Dir(prefix)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", dir, err)
	}

	if err := writeVertices(g.VertexIDs, prefix+".v"); err != nil {
		return err
	}
	if err := writeEdges(g.Edges, prefix+".e"); err != nil {
		return err
	}
	return writeProperties(g, prefix, now)
}

func writeVertices(ids []uint64, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create vertex file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, id := range ids {
		w.WriteString(strconv.FormatUint(id, 10))
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write vertex file: %w", err)
	}
	return nil
}

func writeEdges(edges []gen.Edge, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create edge file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, e := range edges {
		w.WriteString(strconv.FormatUint(e.Source, 10))
		w.WriteByte(' ')
		w.WriteString(strconv.FormatUint(e.Destination, 10))
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write edge file: %w", err)
	}
	return nil
}

// writeProperties emits the benchmark driver metadata. The key layout is a
// compatibility contract: every key is prefixed by the output basename, the
// BFS source vertex is the ID assigned to vertex index 0.
func writeProperties(g *gen.Graph, prefix string, now time.Time) error {
	path := prefix + ".properties"
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create properties file: %w", err)
	}
	defer f.Close()

	name := filepath.Base(prefix)
	bfsSource := uint64(1)
	if len(g.VertexIDs) > 0 {
		bfsSource = g.VertexIDs[0]
	}

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "# Generated by ugg on %s\n", now.Format(time.RFC1123))
	fmt.Fprintf(w, "graph.%s.vertex-file = %s.v\n", name, prefix)
	fmt.Fprintf(w, "graph.%s.edge-file = %s.e\n", name, prefix)
	fmt.Fprintf(w, "graph.%s.meta.vertices = %d\n", name, len(g.VertexIDs))
	fmt.Fprintf(w, "graph.%s.meta.edges = %d\n", name, len(g.Edges))
	fmt.Fprintf(w, "graph.%s.directed = false\n", name)
	fmt.Fprintf(w, "graph.%s.algorithms = %s\n", name, algorithms)
	fmt.Fprintf(w, "graph.%s.bfs.source-vertex = %d\n", name, bfsSource)
	fmt.Fprintf(w, "graph.%s.cdlp.max-iterations = %d\n", name, cdlpMaxIterations)
	fmt.Fprintf(w, "graph.%s.pagerank.damping-factor = %s\n", name, pagerankDampingFactor)
	fmt.Fprintf(w, "graph.%s.pagerank.num-iterations = %d\n", name, pagerankIterations)
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write properties file: %w", err)
	}
	return nil
}
