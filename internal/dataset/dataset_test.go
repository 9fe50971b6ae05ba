package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/graphbench/ugg/internal/gen"
)

func testGraph() *gen.Graph {
	return &gen.Graph{
		VertexIDs: []uint64{1, 2, 3, 4, 5},
		Edges: []gen.Edge{
			{Source: 1, Destination: 2},
			{Source: 1, Destination: 4},
			{Source: 2, Destination: 5},
			{Source: 3, Destination: 4},
		},
	}
}

func TestWrite_VertexAndEdgeFiles(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "graphs", "example")
	if err := Write(testGraph(), prefix, time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	vdata, err := os.ReadFile(prefix + ".v")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(vdata), "1\n2\n3\n4\n5\n"; got != want {
		t.Errorf("vertex file = %q, want %q", got, want)
	}

	edata, err := os.ReadFile(prefix + ".e")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(edata), "1 2\n1 4\n2 5\n3 4\n"; got != want {
		t.Errorf("edge file = %q, want %q", got, want)
	}
}

func TestWrite_PropertiesLayout(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "example")
	now := time.Date(2026, 8, 27, 10, 30, 0, 0, time.UTC)
	if err := Write(testGraph(), prefix, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(prefix + ".properties")
	if err != nil {
		t.Fatal(err)
	}

	want := fmt.Sprintf(`# Generated by ugg on Thu, 27 Aug 2026 10:30:00 UTC
graph.example.vertex-file = %s.v
graph.example.edge-file = %s.e
graph.example.meta.vertices = 5
graph.example.meta.edges = 4
graph.example.directed = false
graph.example.algorithms = bfs, cdlp, lcc, pagerank, sssp, wcc
graph.example.bfs.source-vertex = 1
graph.example.cdlp.max-iterations = 10
graph.example.pagerank.damping-factor = 0.85
graph.example.pagerank.num-iterations = 30
`, prefix, prefix)
	if string(data) != want {
		t.Errorf("properties file mismatch:\ngot:\n%s\nwant:\n%s", data, want)
	}
}

func TestWrite_BFSSourceIsFirstVertexID(t *testing.T) {
	g := testGraph()
	g.VertexIDs = []uint64{7, 9, 12, 20, 31}
	g.Edges = []gen.Edge{{Source: 7, Destination: 9}}

	prefix := filepath.Join(t.TempDir(), "sparse")
	if err := Write(g, prefix, time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(prefix + ".properties")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "graph.sparse.bfs.source-vertex = 7\n") {
		t.Errorf("properties should pin the BFS source to the first vertex ID, got:\n%s", data)
	}
}

func TestReadBack_RoundTrip(t *testing.T) {
	g := testGraph()
	prefix := filepath.Join(t.TempDir(), "roundtrip")
	if err := Write(g, prefix, time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ids, err := ReadVertices(prefix + ".v")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(ids, g.VertexIDs) {
		t.Errorf("vertex IDs = %v, want %v", ids, g.VertexIDs)
	}

	edges, err := ReadEdges(prefix + ".e")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(edges, g.Edges) {
		t.Errorf("edges = %v, want %v", edges, g.Edges)
	}
}

func TestRead_Malformed(t *testing.T) {
	dir := t.TempDir()

	vpath := filepath.Join(dir, "bad.v")
	if err := os.WriteFile(vpath, []byte("1\nxyz\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadVertices(vpath); err == nil {
		t.Error("expected an error for a non-numeric vertex ID")
	}

	epath := filepath.Join(dir, "bad.e")
	if err := os.WriteFile(epath, []byte("1 2 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadEdges(epath); err == nil {
		t.Error("expected an error for a three-field edge line")
	}
}

func TestRead_MissingFile(t *testing.T) {
	if _, err := ReadVertices(filepath.Join(t.TempDir(), "absent.v")); err == nil {
		t.Error("expected an error for a missing vertex file")
	}
	if _, err := ReadEdges(filepath.Join(t.TempDir(), "absent.e")); err == nil {
		t.Error("expected an error for a missing edge file")
	}
}
