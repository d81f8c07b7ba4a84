package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/algovista/algovista/builder"
	"github.com/algovista/algovista/config"
	"github.com/algovista/algovista/core"
	"github.com/algovista/algovista/trace"
)

// overrides holds the persistent flags that shadow config fields.
type overrides struct {
	nodes     int
	edges     int
	directed  bool
	weighted  bool
	algorithm string
	start     int
	speed     float64
	interval  time.Duration
	seed      int64
	shape     string
}

func (o *overrides) register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.IntVarP(&o.nodes, "nodes", "n", 0, "number of nodes (default from config)")
	pf.IntVarP(&o.edges, "edges", "e", 0, "random edge budget (default from config)")
	pf.BoolVar(&o.directed, "directed", false, "directed graph")
	pf.BoolVar(&o.weighted, "weighted", false, "weighted graph")
	pf.StringVarP(&o.algorithm, "algorithm", "a", "", "bfs, dfs, dijkstra or bellman-ford (default from config)")
	pf.IntVarP(&o.start, "start", "s", 0, "start node (default from config)")
	pf.Float64Var(&o.speed, "speed", 0, "playback speed factor (default from config)")
	pf.DurationVar(&o.interval, "interval", 0, "tick interval at speed 1 (default from config)")
	pf.Int64Var(&o.seed, "seed", 0, "random seed, 0 for time-based (default from config)")
	pf.StringVar(&o.shape, "shape", string(builder.ShapeRandom), "graph shape: random, path, cycle, star, wheel, complete")
}

// settings overlays the flags the user set onto cfg and validates the result.
func (o *overrides) settings(cmd *cobra.Command, cfg config.Config) (config.Config, error) {
	flags := cmd.Flags()
	if flags.Changed("nodes") {
		cfg.Nodes = o.nodes
	}
	if flags.Changed("edges") {
		cfg.Edges = o.edges
	}
	if flags.Changed("directed") {
		cfg.Directed = o.directed
	}
	if flags.Changed("weighted") {
		cfg.Weighted = o.weighted
	}
	if flags.Changed("algorithm") {
		cfg.Algorithm = o.algorithm
	}
	if flags.Changed("start") {
		cfg.Start = o.start
	}
	if flags.Changed("speed") {
		cfg.Speed = o.speed
	}
	if flags.Changed("interval") {
		cfg.BaseInterval = o.interval
	}
	if flags.Changed("seed") {
		cfg.Seed = o.seed
	}
	if alg, err := trace.ParseAlgorithm(cfg.Algorithm); err == nil {
		cfg.Algorithm = alg.String()
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

// graphOptions maps the mode flags of cfg to core options.
func graphOptions(cfg config.Config) []core.GraphOption {
	var opts []core.GraphOption
	if cfg.Directed {
		opts = append(opts, core.WithDirected())
	}
	if cfg.Weighted {
		opts = append(opts, core.WithWeighted())
	}
	return opts
}

// seedOf returns cfg.Seed, or a time-based seed when it is 0.
func seedOf(cfg config.Config) int64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return time.Now().UnixNano()
}

// generateGraph builds the graph described by cfg and the --shape flag.
func (o *overrides) generateGraph(cfg config.Config, seed int64) (*core.Graph, error) {
	shape, err := builder.ParseShape(o.shape)
	if err != nil {
		return nil, err
	}
	ctor, err := shape.Constructor(cfg.Nodes, cfg.Edges)
	if err != nil {
		return nil, err
	}
	g, err := builder.BuildGraph(cfg.Nodes, graphOptions(cfg),
		[]builder.BuilderOption{builder.WithSeed(seed)}, ctor)
	if err != nil {
		return nil, fmt.Errorf("generate %s graph: %w", shape, err)
	}

	return g, nil
}
