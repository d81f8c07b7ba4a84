package commands

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/algovista/algovista/core"
	"github.com/algovista/algovista/host"
	"github.com/algovista/algovista/playback"
)

func newPlayCmd(a *app) *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Step through a traversal, interactively or as timed frames",
		Long: `play animates a traversal one visited node per tick.

On a terminal it opens an interactive player:
  p play   space pause   r reset   + / - speed
  a next algorithm   s next start node   g new graph   q quit

With --plain, or when stdout is not a terminal, frames are printed as
lines until the run completes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.over.settings(cmd, a.cfg)
			if err != nil {
				return err
			}
			alg, err := cfg.AlgorithmTag()
			if err != nil {
				return err
			}
			seed := seedOf(cfg)
			g, err := a.over.generateGraph(cfg, seed)
			if err != nil {
				return err
			}

			interactive := !plain && isatty.IsTerminal(os.Stdout.Fd()) && isatty.IsTerminal(os.Stdin.Fd())
			if interactive {
				a.quiet()
			}

			ctrl := playback.NewController(
				playback.WithBaseInterval(cfg.BaseInterval),
				playback.WithLogger(a.logger),
				playback.WithObserver(a.collector),
			)
			if err := ctrl.SetSpeed(cfg.Speed); err != nil {
				return err
			}
			eng := a.engine()
			tr, err := eng.Run(cmd.Context(), g, alg, cfg.Start)
			if err != nil {
				return err
			}
			if err := ctrl.Load(tr); err != nil {
				return err
			}
			a.logger.Info("playback loaded",
				slog.String("run_id", ctrl.Snapshot().RunID),
				slog.String("algorithm", alg.String()),
				slog.Int("start", cfg.Start),
				slog.Int64("seed", seed),
			)

			if !interactive {
				r := &plainRenderer{w: cmd.OutOrStdout(), speed: ctrl.Speed}
				return host.Drive(cmd.Context(), ctrl, r, g)
			}

			next := seed
			p := newPlayer(playerDeps{
				ctx:   cmd.Context(),
				ctrl:  ctrl,
				eng:   eng,
				graph: g,
				alg:   alg,
				start: cfg.Start,
				regen: func() (*core.Graph, error) {
					next++
					return a.over.generateGraph(cfg, next)
				},
			})
			if _, err := tea.NewProgram(p, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run(); err != nil {
				return fmt.Errorf("player: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print frames instead of opening the interactive player")
	return cmd
}
