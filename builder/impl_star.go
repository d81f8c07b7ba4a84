// SPDX-License-Identifier: MIT
// Package: algovista/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • 2 ≤ n ≤ g.NodeCount().
//   • Hub is CenterVertex (0); leaves are 1..n-1 in ascending order.
//   • Directed graphs get hub → leaf spokes only.

package builder

import "github.com/algovista/algovista/core"

// Star returns a Constructor that connects CenterVertex to nodes 1..n-1.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateSpan(MethodStar, g, n, MinStarNodes); err != nil {
			return err
		}
		for leaf := 1; leaf < n; leaf++ {
			if err := addEdge(MethodStar, g, cfg, CenterVertex, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
