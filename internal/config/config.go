package config

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the application configuration read from file and environment.
// Per-run generation parameters live in Generation, built once from the CLI
// flags and passed down by value.
type Config struct {
	Generator GeneratorConfig `mapstructure:"generator"`
	Graph     GraphConfig     `mapstructure:"graph"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
}

// GeneratorConfig carries defaults the CLI flags can override.
type GeneratorConfig struct {
	Workers int `mapstructure:"workers"`
}

// GraphConfig configures the Neo4j export target.
type GraphConfig struct {
	URI      string `mapstructure:"uri"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// TracingConfig configures the OTLP trace exporter.
type TracingConfig struct {
	Endpoint   string  `mapstructure:"endpoint"`
	SampleRate float64 `mapstructure:"sample_rate"`
}

// Load reads configuration from file and environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("UGG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// Generation is the immutable, validated parameter set for one run. Construct
// it with NewGeneration; no component reads ambient state beyond this value.
type Generation struct {
	NumVertices     uint64
	NumEdges        uint64
	ExpansionFactor float64
	Seed            uint64
	Workers         int
	OutputPrefix    string

	// AverageDegree reports that NumEdges was given below NumVertices and
	// reinterpreted as average edges per vertex.
	AverageDegree bool
	// RequestedEdges is the edge count as given, before reinterpretation.
	RequestedEdges uint64
}

// NewGeneration validates the run parameters and applies the undirected
// average-degree reinterpretation: an edge count below the vertex count is
// taken as edges per vertex and multiplied by NumVertices/2 (integer
// division). A nil seed selects one from a non-deterministic source; workers
// of 0 selects the hardware parallelism.
func NewGeneration(numVertices, numEdges uint64, factor float64, seed *uint64, workers int, outputPrefix string) (Generation, error) {
	if numVertices == 0 {
		return Generation{}, fmt.Errorf("no vertices to generate")
	}
	if numEdges == 0 {
		return Generation{}, fmt.Errorf("no edges to generate")
	}
	if factor < 1.0 {
		return Generation{}, fmt.Errorf("expansion factor (max_vertex_id) is less than 1: %g", factor)
	}
	if outputPrefix == "" {
		return Generation{}, fmt.Errorf("missing output prefix")
	}
	if workers < 0 {
		return Generation{}, fmt.Errorf("worker count %d is negative", workers)
	}
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	g := Generation{
		NumVertices:     numVertices,
		NumEdges:        numEdges,
		ExpansionFactor: factor,
		Workers:         workers,
		OutputPrefix:    outputPrefix,
		RequestedEdges:  numEdges,
	}

	if numEdges < numVertices {
		g.AverageDegree = true
		g.NumEdges = numEdges * (numVertices / 2)
		if g.NumEdges == 0 {
			return Generation{}, fmt.Errorf("average degree %d over %d vertices yields no edges", numEdges, numVertices)
		}
	}

	// The sampler cannot terminate past the combinatorial ceiling of a
	// simple undirected graph.
	if exceedsMaxEdges(g.NumVertices, g.NumEdges) {
		return Generation{}, fmt.Errorf(
			"cannot fit %d distinct edges in a simple undirected graph over %d vertices (max %s)",
			g.NumEdges, g.NumVertices, maxEdgesString(g.NumVertices))
	}

	if seed != nil {
		g.Seed = *seed
	} else {
		var buf [8]byte
		if _, err := rand.Read(buf[:]); err != nil {
			return Generation{}, fmt.Errorf("seeding random generator: %w", err)
		}
		g.Seed = binary.LittleEndian.Uint64(buf[:])
	}

	return g, nil
}

// MaxVertexID is the upper bound of the expanded vertex-ID domain.
func (g Generation) MaxVertexID() uint64 {
	return uint64(math.Ceil(g.ExpansionFactor*float64(g.NumVertices-1))) + 1
}

// exceedsMaxEdges reports whether numEdges > numVertices*(numVertices-1)/2,
// avoiding overflow in the product. Beyond 2^32 vertices the ceiling cannot
// be exceeded by a uint64 edge count.
func exceedsMaxEdges(numVertices, numEdges uint64) bool {
	if numVertices >= 1<<32 {
		return false
	}
	return numEdges > numVertices*(numVertices-1)/2
}

func maxEdgesString(numVertices uint64) string {
	if numVertices >= 1<<32 {
		return "more than 2^63"
	}
	return fmt.Sprintf("%d", numVertices*(numVertices-1)/2)
}
