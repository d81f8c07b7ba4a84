package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/algovista/algovista/config"
	"github.com/algovista/algovista/core"
	"github.com/algovista/algovista/custombuild"
	"github.com/algovista/algovista/report"
)

var errBadEdgeArg = errors.New("edge must look like FROM-TO or FROM-TO:WEIGHT")

// edgeArg is one parsed FROM-TO[:WEIGHT] argument.
type edgeArg struct {
	from, to core.NodeID
	weight   int64
}

func parseEdgeArg(s string) (edgeArg, error) {
	spec, weight, hasWeight := strings.Cut(s, ":")
	from, to, ok := strings.Cut(spec, "-")
	if !ok {
		return edgeArg{}, fmt.Errorf("%q: %w", s, errBadEdgeArg)
	}
	e := edgeArg{weight: 1}
	var err error
	if e.from, err = strconv.Atoi(strings.TrimSpace(from)); err != nil {
		return edgeArg{}, fmt.Errorf("%q: %w", s, errBadEdgeArg)
	}
	if e.to, err = strconv.Atoi(strings.TrimSpace(to)); err != nil {
		return edgeArg{}, fmt.Errorf("%q: %w", s, errBadEdgeArg)
	}
	if hasWeight {
		if e.weight, err = strconv.ParseInt(strings.TrimSpace(weight), 10, 64); err != nil {
			return edgeArg{}, fmt.Errorf("%q: %w", s, errBadEdgeArg)
		}
	}
	return e, nil
}

func newBuildCmd(a *app) *cobra.Command {
	var run bool
	cmd := &cobra.Command{
		Use:   "build [FROM-TO[:WEIGHT]...]",
		Short: "Build a custom graph edge by edge",
		Long: `build creates a graph from explicit edges, e.g.

  algovista build --nodes 4 --weighted 0-1:3 1-2 2-3:7

Without edge arguments on a terminal it asks for the node count and then
for edges interactively. Node counts range from 2 to 15.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			gopts := graphOptions(a.overlayModes(cmd))
			out := cmd.OutOrStdout()

			var (
				g   *core.Graph
				err error
			)
			if len(args) == 0 && isatty.IsTerminal(os.Stdin.Fd()) {
				g, err = buildInteractive(newLinePrompter(cmd.InOrStdin(), out), out, gopts)
			} else {
				n := custombuild.DefaultNodes
				if cmd.Flags().Changed("nodes") {
					n = a.over.nodes
				}
				g, err = buildFromArgs(n, args, gopts)
			}
			if err != nil {
				return err
			}

			if err := report.WriteStructure(out, g); err != nil {
				return err
			}
			if !run {
				return nil
			}

			cfg := a.overlayModes(cmd)
			if cmd.Flags().Changed("algorithm") {
				cfg.Algorithm = a.over.algorithm
			}
			alg, err := cfg.AlgorithmTag()
			if err != nil {
				return err
			}
			start := 0
			if cmd.Flags().Changed("start") {
				start = a.over.start
			}
			tr, err := a.engine().Run(cmd.Context(), g, alg, start)
			if err != nil {
				return err
			}
			fmt.Fprintln(out)
			return writeTrace(out, g, tr)
		},
	}
	cmd.Flags().BoolVar(&run, "run", false, "run the selected algorithm on the built graph")
	return cmd
}

// overlayModes applies only --directed and --weighted; build validates its
// own node range.
func (a *app) overlayModes(cmd *cobra.Command) config.Config {
	cfg := a.cfg
	if cmd.Flags().Changed("directed") {
		cfg.Directed = a.over.directed
	}
	if cmd.Flags().Changed("weighted") {
		cfg.Weighted = a.over.weighted
	}
	return cfg
}

// buildFromArgs replays each edge argument as two selections and a commit.
func buildFromArgs(n int, args []string, gopts []core.GraphOption) (*core.Graph, error) {
	s, err := custombuild.NewSession(n, gopts...)
	if err != nil {
		return nil, err
	}
	for _, arg := range args {
		e, err := parseEdgeArg(arg)
		if err != nil {
			return nil, err
		}
		if _, err := s.Select(e.from); err != nil {
			return nil, fmt.Errorf("%s: %w", arg, err)
		}
		st, err := s.Select(e.to)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", arg, err)
		}
		if st != custombuild.StatusEdgeReady {
			return nil, fmt.Errorf("%s: %w", arg, core.ErrLoopNotAllowed)
		}
		if err := s.Commit(e.weight); err != nil {
			return nil, fmt.Errorf("%s: %w", arg, err)
		}
	}
	return s.Finish()
}

// buildInteractive asks for a node count, then reads "FROM TO" lines until
// an empty line or end of input.
func buildInteractive(p *linePrompter, out io.Writer, gopts []core.GraphOption) (*core.Graph, error) {
	s, err := custombuild.Start(p, gopts...)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(out, "Select two nodes to create an edge. Empty line to finish.")
	for {
		line, err := p.line("edge (FROM TO): ")
		if errors.Is(err, errNoInput) || (err == nil && line == "") {
			break
		}
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			p.Alert("Invalid Input", "Enter two node numbers separated by a space.")
			continue
		}
		for _, f := range fields {
			id, err := strconv.Atoi(f)
			if err != nil {
				p.Alert("Invalid Input", "Please enter a valid number.")
				s.Cancel()
				break
			}
			st, err := s.Connect(p, id)
			if err != nil {
				if errors.Is(err, custombuild.ErrNodeOutOfRange) {
					p.Alert("Invalid Node", err.Error())
				}
				s.Cancel()
				break
			}
			fmt.Fprintln(out, st.Hint(id))
		}
	}
	fmt.Fprintf(out, "Custom graph created with %d edges.\n\n", s.EdgesAdded())
	return s.Finish()
}
