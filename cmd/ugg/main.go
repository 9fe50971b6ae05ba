package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/graphbench/ugg/internal/config"
	"github.com/graphbench/ugg/internal/dataset"
	"github.com/graphbench/ugg/internal/gen"
	"github.com/graphbench/ugg/internal/graph"
	"github.com/graphbench/ugg/internal/graph/neo4j"
	"github.com/graphbench/ugg/internal/metrics"
	"github.com/graphbench/ugg/internal/observability"
	"github.com/graphbench/ugg/internal/quantity"
)

const version = "0.1.0"

func main() {
	var (
		numVerticesArg string
		numEdgesArg    string
		maxVertexID    float64
		outputPrefix   string
		seed           uint64
		workers        int
		configPath     string
		jsonReport     bool
	)

	rootCmd := &cobra.Command{
		Use:           "ugg",
		Short:         "Uniform Graph Generator (ugg): create a uniform undirected graph",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	generateCmd := &cobra.Command{
		Use:   "generate -V <num_vertices> -E <num_edges> -o <output_prefix> [-m <max_vertex_id>]",
		Short: "Generate a uniform undirected graph and write it as .v/.e/.properties files",
		RunE: func(cmd *cobra.Command, args []string) error {
			var seedPtr *uint64
			if cmd.Flags().Changed("seed") {
				seedPtr = &seed
			}
			return runGenerate(configPath, numVerticesArg, numEdgesArg, maxVertexID,
				outputPrefix, seedPtr, workers, jsonReport)
		},
	}

	generateCmd.Flags().StringVarP(&numVerticesArg, "num_vertices", "V", "",
		"The number of vertices to generate in the graph (accepts magnitude suffixes, e.g. 2M)")
	generateCmd.Flags().StringVarP(&numEdgesArg, "num_edges", "E", "",
		"The total number of edges in the graph. If less than the number of vertices, it is the average number of edges per vertex")
	generateCmd.Flags().Float64VarP(&maxVertexID, "max_vertex_id", "m", 1.0,
		"The expansion factor for the maximum vertex id to assign to the vertices in the graph")
	generateCmd.Flags().StringVarP(&outputPrefix, "output", "o", "",
		"The prefix path where to save the created graph")
	generateCmd.Flags().Uint64Var(&seed, "seed", 0,
		"Seed to initialise the random generator")
	generateCmd.Flags().IntVar(&workers, "workers", 0,
		"Number of sampler workers (default: hardware parallelism)")
	generateCmd.Flags().StringVar(&configPath, "config", "configs/ugg.yaml", "Config file path")
	generateCmd.Flags().BoolVar(&jsonReport, "json", false, "Output the run metrics as JSON")
	_ = generateCmd.MarkFlagRequired("num_vertices")
	_ = generateCmd.MarkFlagRequired("num_edges")
	_ = generateCmd.MarkFlagRequired("output")

	var (
		exportPrefix string
		exportName   string
	)
	exportCmd := &cobra.Command{
		Use:   "export --prefix <output_prefix>",
		Short: "Load a generated dataset into Neo4j",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(configPath, exportPrefix, exportName)
		},
	}
	exportCmd.Flags().StringVar(&exportPrefix, "prefix", "", "Path prefix of the dataset to load (<prefix>.v and <prefix>.e)")
	exportCmd.Flags().StringVar(&exportName, "name", "", "Dataset name in the database (default: prefix basename)")
	exportCmd.Flags().StringVar(&configPath, "config", "configs/ugg.yaml", "Config file path")
	_ = exportCmd.MarkFlagRequired("prefix")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the ugg version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("ugg version %s\n", version)
		},
	}

	rootCmd.AddCommand(generateCmd, exportCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintf(os.Stderr, "Type `%s --help' to check how to run the program\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "Program terminated")
		os.Exit(1)
	}
}

func runGenerate(configPath, numVerticesArg, numEdgesArg string, maxVertexID float64,
	outputPrefix string, seed *uint64, workers int, jsonReport bool) error {

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = &config.Config{}
	}
	if workers == 0 {
		workers = cfg.Generator.Workers
	}

	numVertices, err := quantity.Parse(numVerticesArg)
	if err != nil {
		return fmt.Errorf("num_vertices: %w", err)
	}
	numEdges, err := quantity.Parse(numEdgesArg)
	if err != nil {
		return fmt.Errorf("num_edges: %w", err)
	}

	params, err := config.NewGeneration(numVertices, numEdges, maxVertexID, seed, workers, outputPrefix)
	if err != nil {
		return err
	}

	if params.AverageDegree {
		fmt.Printf("Assuming to create %d edges on average per vertex\n\n", params.RequestedEdges)
	}
	fmt.Printf("Number of vertices to create: %d\n", params.NumVertices)
	fmt.Printf("Number of edges to create: %d\n", params.NumEdges)
	fmt.Printf("Max vertex id: %d (exp factor: %g)\n", params.MaxVertexID(), params.ExpansionFactor)
	fmt.Printf("Output prefix: %s\n", params.OutputPrefix)
	fmt.Printf("Seed for the random generator: %d\n", params.Seed)
	fmt.Println()

	ctx := context.Background()
	tp, err := initTracing(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer tp.Shutdown(ctx)

	m := metrics.New()
	m.Seed = params.Seed
	m.Workers = params.Workers
	m.OutputPrefix = params.OutputPrefix

	fmt.Println("=== Generating vertices and edges ===")
	g, err := gen.Generate(ctx, gen.Params{
		NumVertices:     params.NumVertices,
		NumEdges:        params.NumEdges,
		ExpansionFactor: params.ExpansionFactor,
		Seed:            params.Seed,
		Workers:         params.Workers,
	})
	if err != nil {
		return err
	}
	m.CollectGraph(g)

	fmt.Println("=== Writing dataset ===")
	start := time.Now()
	_, span := observability.StartWriteSpan(ctx, params.OutputPrefix)
	err = dataset.Write(g, params.OutputPrefix, time.Now())
	observability.RecordError(span, err)
	span.End()
	if err != nil {
		return err
	}
	m.AddPhase("write_dataset", time.Since(start))

	m.Finish()
	if jsonReport {
		data, err := m.JSON()
		if err != nil {
			return fmt.Errorf("marshal metrics: %w", err)
		}
		fmt.Println(string(data))
	} else {
		m.PrintSummary(os.Stdout)
	}

	fmt.Println("Done")
	return nil
}

func initTracing(ctx context.Context, cfg *config.Config) (*observability.TracerProvider, error) {
	rate := cfg.Tracing.SampleRate
	if rate == 0 {
		rate = 1.0
	}
	return observability.InitTracing(ctx, &observability.TracingConfig{
		ServiceName:    "ugg",
		ServiceVersion: version,
		OTLPEndpoint:   cfg.Tracing.Endpoint,
		SampleRate:     rate,
	})
}

func runExport(configPath, prefix, name string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("export requires a config with graph credentials: %w", err)
	}
	if cfg.Graph.URI == "" {
		return fmt.Errorf("no graph database configured (set graph.uri in %s or UGG_GRAPH_URI)", configPath)
	}
	if name == "" {
		name = filepath.Base(prefix)
	}

	vertexIDs, err := dataset.ReadVertices(prefix + ".v")
	if err != nil {
		return err
	}
	edges, err := dataset.ReadEdges(prefix + ".e")
	if err != nil {
		return err
	}
	slog.Info("Loaded dataset", "name", name, "vertices", len(vertexIDs), "edges", len(edges))

	ctx := context.Background()
	tp, err := initTracing(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer tp.Shutdown(ctx)

	var repo graph.Repository
	repo, err = neo4j.NewNeo4j(ctx, cfg.Graph.URI, cfg.Graph.Username, cfg.Graph.Password)
	if err != nil {
		return err
	}
	defer repo.Close(ctx)

	_, span := observability.StartExportSpan(ctx, "neo4j", len(vertexIDs), len(edges))
	err = repo.StoreDataset(ctx, name, vertexIDs, edges)
	observability.RecordError(span, err)
	span.End()
	if err != nil {
		return err
	}

	stored, err := repo.CountVertices(ctx, name)
	if err != nil {
		return err
	}
	if stored != int64(len(vertexIDs)) {
		return fmt.Errorf("export verification failed: stored %d vertices, expected %d", stored, len(vertexIDs))
	}
	slog.Info("Export complete", "name", name, "vertices", stored)
	return nil
}
