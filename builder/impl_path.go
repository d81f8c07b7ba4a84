// SPDX-License-Identifier: MIT
// Package: algovista/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - 2 ≤ n ≤ g.NodeCount() (else ErrTooFewVertices / ErrTooManyVertices).
//   - Emits edges (i-1) -> i for i=1..n-1 in stable increasing order.
//   - Weight policy: cfg.weightFn(cfg.rng) on weighted graphs, else DefaultEdgeWeight.
//
// Complexity:
//   - Time: O(n).
//   - Space: O(1) extra.

package builder

import "github.com/algovista/algovista/core"

// Path returns a Constructor that links nodes 0..n-1 into a simple path.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateSpan(MethodPath, g, n, MinPathNodes); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(MethodPath, g, cfg, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}
