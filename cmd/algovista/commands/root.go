package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/algovista/algovista/config"
	"github.com/algovista/algovista/metrics"
	"github.com/algovista/algovista/traversal"
)

const appName = "algovista"

// app carries the state shared by every subcommand of one invocation.
type app struct {
	cfgFile  string
	logLevel string
	spans    bool
	dumpProm bool
	over     overrides

	cfg       config.Config
	logger    *slog.Logger
	registry  *prometheus.Registry
	collector *metrics.Collector
	tp        *sdktrace.TracerProvider
}

// Execute runs the CLI until completion or interrupt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   appName,
		Short: "Graph traversal visualizer",
		Long: `algovista builds small graphs and steps through BFS, DFS, Dijkstra
and Bellman-Ford on them, one visited node at a time.

Defaults come from $XDG_CONFIG_HOME/algovista/config.yaml; flags override them.`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/algovista/config.yaml)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (default from config)")
	pf.BoolVar(&a.spans, "spans", false, "export traversal spans to stderr")
	pf.BoolVar(&a.dumpProm, "metrics", false, "print collected metrics to stderr on exit")
	a.over.register(root)

	root.AddCommand(
		newGenerateCmd(a),
		newTraceCmd(a),
		newPlayCmd(a),
		newBuildCmd(a),
		newConfigCmd(a),
	)

	return root
}

// setup loads the config and wires logging, metrics and tracing.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.Level()
	if a.logLevel != "" {
		lc := cfg
		lc.LogLevel = strings.ToLower(a.logLevel)
		if err := lc.Validate(); err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
		level = lc.Level()
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	a.registry = prometheus.NewRegistry()
	a.collector = metrics.New(a.registry)

	if a.spans {
		tp, err := newTracerProvider(cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("spans: %w", err)
		}
		a.tp = tp
	}

	return nil
}

func (a *app) teardown(cmd *cobra.Command, _ []string) error {
	if a.tp != nil {
		if err := a.tp.Shutdown(cmd.Context()); err != nil {
			a.logger.Warn("span exporter shutdown failed", slog.Any("error", err))
		}
	}
	if a.dumpProm {
		return dumpMetrics(cmd.ErrOrStderr(), a.registry)
	}
	return nil
}

// quiet swaps the logger for a discarding one, for full-screen output.
func (a *app) quiet() {
	a.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (a *app) engine() *traversal.Engine {
	opts := []traversal.EngineOption{
		traversal.WithLogger(a.logger),
		traversal.WithObserver(a.collector),
	}
	if a.tp != nil {
		opts = append(opts, traversal.WithTracerProvider(a.tp))
	}
	return traversal.NewEngine(opts...)
}
