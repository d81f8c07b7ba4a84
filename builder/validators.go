// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
package builder

import (
	"fmt"

	"github.com/algovista/algovista/core"
)

// validateSpan ensures min ≤ n ≤ g.NodeCount().
//
// Parameters:
//   - method: constructor name constant, e.g. MethodCycle.
//   - g:      target graph.
//   - n:      number of nodes the constructor spans, starting at 0.
//   - min:    minimal acceptable n.
func validateSpan(method string, g *core.Graph, n, min int) error {
	if n < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
	}
	if n > g.NodeCount() {
		return fmt.Errorf("%s: n=%d > nodes=%d: %w", method, n, g.NodeCount(), ErrTooManyVertices)
	}

	return nil
}

// addEdge inserts from→to with the next configured weight and wraps core
// failures with method context.
func addEdge(method string, g *core.Graph, cfg builderConfig, from, to core.NodeID) error {
	w := cfg.weight(g)
	if err := g.AddEdge(from, to, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", method, from, to, w, err)
	}

	return nil
}
