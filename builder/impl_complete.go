// SPDX-License-Identifier: MIT
// Package: algovista/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • 1 ≤ n ≤ g.NodeCount().
//   • Undirected: one edge per pair i<j, emitted i asc then j asc.
//   • Directed: both arcs i→j and j→i for every pair, same order.
//
// Complexity:
//   • Time: O(n²).

package builder

import "github.com/algovista/algovista/core"

// Complete returns a Constructor that builds K_n over nodes 0..n-1.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateSpan(MethodComplete, g, n, MinCompleteNodes); err != nil {
			return err
		}
		directed := g.Directed()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(MethodComplete, g, cfg, i, j); err != nil {
					return err
				}
				if directed {
					if err := addEdge(MethodComplete, g, cfg, j, i); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
