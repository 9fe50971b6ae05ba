package metrics

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/graphbench/ugg/internal/gen"
)

// RunMetrics collects statistics for a full generation run.
type RunMetrics struct {
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at,omitempty"`
	Duration   time.Duration `json:"duration_ms,omitempty"`

	NumVertices uint64 `json:"num_vertices"`
	NumEdges    uint64 `json:"num_edges"`
	MaxVertexID uint64 `json:"max_vertex_id"`
	Seed        uint64 `json:"seed"`
	Workers     int    `json:"workers"`

	Sampler gen.SamplerStats `json:"sampler"`
	Phases  []PhaseMetrics   `json:"phases"`

	OutputPrefix string `json:"output_prefix"`
}

// PhaseMetrics records a single pipeline phase's timing.
type PhaseMetrics struct {
	Name     string        `json:"name"`
	Duration time.Duration `json:"duration_ms"`
}

// New starts tracking a generation run.
func New() *RunMetrics {
	return &RunMetrics{StartedAt: time.Now()}
}

// CollectGraph records counts and sampler statistics from the result.
func (m *RunMetrics) CollectGraph(g *gen.Graph) {
	m.NumVertices = uint64(len(g.VertexIDs))
	m.NumEdges = uint64(len(g.Edges))
	if len(g.VertexIDs) > 0 {
		m.MaxVertexID = g.VertexIDs[len(g.VertexIDs)-1]
	}
	m.Sampler = g.Stats
	m.AddPhase("sample_edges", g.SampleDuration)
	m.AddPhase("expand_vertices", g.ExpandDuration)
}

// AddPhase records a single phase's timing.
func (m *RunMetrics) AddPhase(name string, d time.Duration) {
	m.Phases = append(m.Phases, PhaseMetrics{Name: name, Duration: d})
}

// Finish marks the run as complete.
func (m *RunMetrics) Finish() {
	m.FinishedAt = time.Now()
	m.Duration = m.FinishedAt.Sub(m.StartedAt)
}

// JSON renders the metrics as indented JSON.
func (m *RunMetrics) JSON() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

// PrintSummary writes a human-readable report.
func (m *RunMetrics) PrintSummary(w io.Writer) {
	fmt.Fprintf(w, "\n=== Generation Summary ===\n")
	fmt.Fprintf(w, "Vertices:             %s\n", humanize.Comma(int64(m.NumVertices)))
	fmt.Fprintf(w, "Edges:                %s\n", humanize.Comma(int64(m.NumEdges)))
	fmt.Fprintf(w, "Max vertex ID:        %s\n", humanize.Comma(int64(m.MaxVertexID)))
	fmt.Fprintf(w, "Seed:                 %d\n", m.Seed)
	fmt.Fprintf(w, "Workers:              %d\n", m.Workers)
	fmt.Fprintf(w, "Sampler attempts:     %s\n", humanize.Comma(int64(m.Sampler.Attempts)))
	fmt.Fprintf(w, "  self-loops dropped: %s\n", humanize.Comma(int64(m.Sampler.SelfLoops)))
	fmt.Fprintf(w, "  duplicates dropped: %s\n", humanize.Comma(int64(m.Sampler.Duplicates)))
	for _, p := range m.Phases {
		fmt.Fprintf(w, "Phase %-15s %v\n", p.Name+":", p.Duration.Round(time.Millisecond))
	}
	fmt.Fprintf(w, "Total:                %v\n", m.Duration.Round(time.Millisecond))
	fmt.Fprintf(w, "Output prefix:        %s\n", m.OutputPrefix)
}
