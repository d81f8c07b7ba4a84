package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/algovista/algovista/core"
	"github.com/algovista/algovista/report"
	"github.com/algovista/algovista/trace"
	"github.com/algovista/algovista/traversal"
)

// traceJSON is the --json form of a trace. Unreachable distances are null.
type traceJSON struct {
	Algorithm string            `json:"algorithm"`
	Start     int               `json:"start"`
	Order     []int             `json:"order"`
	Distances map[string]*int64 `json:"distances,omitempty"`
	Parents   map[string]int    `json:"parents"`
}

func toJSON(tr *trace.Trace) traceJSON {
	out := traceJSON{
		Algorithm: tr.Algorithm.String(),
		Start:     tr.Start,
		Order:     tr.OrderCopy(),
		Parents:   make(map[string]int, len(tr.Parents)),
	}
	for id, p := range tr.Parents {
		out.Parents[strconv.Itoa(id)] = p
	}
	if tr.HasDistances() {
		out.Distances = make(map[string]*int64, tr.NodeCount)
		for id := 0; id < tr.NodeCount; id++ {
			if d, ok := tr.Distance(id); ok {
				out.Distances[strconv.Itoa(id)] = &d
			} else {
				out.Distances[strconv.Itoa(id)] = nil
			}
		}
	}
	return out
}

func newTraceCmd(a *app) *cobra.Command {
	var (
		all       bool
		asJSON    bool
		structure bool
	)
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Run a traversal and print its visit order and distance table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.over.settings(cmd, a.cfg)
			if err != nil {
				return err
			}
			g, err := a.over.generateGraph(cfg, seedOf(cfg))
			if err != nil {
				return err
			}

			algs := traversal.Algorithms()
			if !all {
				alg, err := cfg.AlgorithmTag()
				if err != nil {
					return err
				}
				algs = []traversal.Algorithm{alg}
			}

			traces := make([]*trace.Trace, len(algs))
			eng := a.engine()
			eg, ctx := errgroup.WithContext(cmd.Context())
			for i, alg := range algs {
				eg.Go(func() error {
					tr, err := eng.Run(ctx, g, alg, cfg.Start)
					if err != nil {
						return fmt.Errorf("%s: %w", alg, err)
					}
					traces[i] = tr
					return nil
				})
			}
			if err := eg.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				docs := make([]traceJSON, len(traces))
				for i, tr := range traces {
					docs[i] = toJSON(tr)
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(docs)
			}

			if structure {
				if err := report.WriteStructure(out, g); err != nil {
					return err
				}
				fmt.Fprintln(out)
			}
			for i, tr := range traces {
				if i > 0 {
					fmt.Fprintln(out)
				}
				if err := writeTrace(out, g, tr); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "run every algorithm concurrently")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print traces as JSON")
	cmd.Flags().BoolVar(&structure, "structure", false, "print the graph tables first")
	return cmd
}

// writeTrace prints the summary of a full trace and, for shortest-path
// algorithms, its distance table.
func writeTrace(w io.Writer, g *core.Graph, tr *trace.Trace) error {
	if err := report.WriteSummary(w, tr.Algorithm, g, tr.Order); err != nil {
		return err
	}
	if !tr.HasDistances() {
		return nil
	}
	fmt.Fprintln(w)
	return report.WriteDistances(w, tr)
}
