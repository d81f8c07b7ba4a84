// SPDX-License-Identifier: MIT
// Package: algovista/builder
//
// impl_random.go - implementation of Random(edges) constructor.
//
// Contract:
//   • edges ≥ 1 (else ErrBadSize); the graph needs ≥ 2 nodes; cfg.rng is required.
//   • At most edges*RandomAttemptFactor draws. Each draw picks from and to
//     uniformly over all nodes; self-loops and pairs that already have a
//     matrix entry are skipped. Stops once edges edges were placed, so the
//     result may hold fewer edges than requested on small or dense graphs.
//   • Weight per placed edge comes from cfg.weightFn, by default uniform
//     in [RandomWeightMin, RandomWeightMax].
//
// Complexity:
//   • Time: O(edges) draws.
//
// Determinism:
//   • Draw order is from, to, weight; fixed seed ⇒ identical graph.

package builder

import (
	"fmt"

	"github.com/algovista/algovista/core"
)

// Random returns a Constructor that scatters up to edges random edges over
// every node of the graph.
func Random(edges int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if edges < 1 {
			return fmt.Errorf("%s: edges=%d < 1: %w", MethodRandom, edges, ErrBadSize)
		}
		n := g.NodeCount()
		if n < MinRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandom, n, MinRandomNodes, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandom, ErrNeedRandSource)
		}

		rng := cfg.rng
		placed := 0
		for attempt := 0; placed < edges && attempt < edges*RandomAttemptFactor; attempt++ {
			from, to := rng.Intn(n), rng.Intn(n)
			if from == to || g.HasEdge(from, to) {
				continue
			}
			if err := addEdge(MethodRandom, g, cfg, from, to); err != nil {
				return err
			}
			placed++
		}

		return nil
	}
}
