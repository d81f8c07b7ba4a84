// SPDX-License-Identifier: MIT
// Package: algovista/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   • 4 ≤ n ≤ g.NodeCount().
//   • Rim is Cycle(n-1) over nodes 0..n-2; the hub is node n-1.
//   • Spokes are emitted hub → rim in ascending rim order; directed graphs
//     also get rim → hub so the hub is reachable from the rim.
//
// Complexity:
//   • Time: O(n).
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/algovista/algovista/core"
)

// Wheel returns a Constructor that builds the wheel W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateSpan(MethodWheel, g, n, MinWheelNodes); err != nil {
			return err
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", MethodWheel, n-1, err)
		}

		hub := n - 1
		for rim := 0; rim < hub; rim++ {
			if err := addEdge(MethodWheel, g, cfg, hub, rim); err != nil {
				return err
			}
			if g.Directed() {
				if err := addEdge(MethodWheel, g, cfg, rim, hub); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
