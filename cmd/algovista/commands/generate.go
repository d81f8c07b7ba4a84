package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/algovista/algovista/report"
)

func newGenerateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate a graph and print its matrix, adjacency list and edge list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.over.settings(cmd, a.cfg)
			if err != nil {
				return err
			}
			seed := seedOf(cfg)
			g, err := a.over.generateGraph(cfg, seed)
			if err != nil {
				return err
			}
			a.logger.Debug("graph generated",
				slog.Int("nodes", g.NodeCount()),
				slog.Int("edges", g.EdgeCount()),
				slog.Int64("seed", seed),
			)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Nodes: %d  Edges: %d  Directed: %t  Weighted: %t  Seed: %d\n\n",
				g.NodeCount(), g.EdgeCount(), g.Directed(), g.Weighted(), seed)
			return report.WriteStructure(out, g)
		},
	}
}
