// SPDX-License-Identifier: MIT
// Package: algovista/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • 3 ≤ n ≤ g.NodeCount().
//   • Emits edges in stable order i -> (i+1)%n for i=0..n-1.
//   • Directed graphs get a single orientation (a directed ring).
//
// Complexity:
//   • Time: O(n).
//   • Space: O(1) extra.

package builder

import "github.com/algovista/algovista/core"

// Cycle returns a Constructor that builds the n-node cycle C_n over nodes 0..n-1.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateSpan(MethodCycle, g, n, MinCycleNodes); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(MethodCycle, g, cfg, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
