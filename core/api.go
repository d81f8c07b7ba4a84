// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.
// AI-HINT (file):
//   - Flags are immutable after NewGraph; reading them never races with AddEdge.
//   - Stats() is an O(1) snapshot; rely on it for quick diagnostics and complexity labels.

package core

// NodeCount returns the number of nodes fixed at construction.
//
// Implementation:
//   - Return the immutable field; no lock is needed because it is never written after NewGraph.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) NodeCount() int {
	return g.nodeCount
}

// Directed reports whether edges are one-way.
//
// Behavior highlights:
//   - Pure policy query: does not scan edges.
//   - When false, every AddEdge stores both (a,b) and (b,a).
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Directed() bool {
	return g.directed
}

// Weighted reports whether caller-supplied weights are kept.
//
// Notes:
//   - This is a display/validation flag. Shortest-path algorithms run on
//     unweighted graphs too, where every edge weighs 1.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Weighted() bool {
	return g.weighted
}

// HasNode reports whether id lies in [0, NodeCount).
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) HasNode(id NodeID) bool {
	return g.inRange(id)
}

// inRange is the single range predicate used by every method.
func (g *Graph) inRange(id NodeID) bool {
	return id >= 0 && id < g.nodeCount
}

// Stats is a read-only snapshot of configuration flags and catalog sizes.
type Stats struct {
	NodeCount    int  // fixed node count
	Directed     bool // edges are one-way
	Weighted     bool // weights are kept
	EdgeEntries  int  // len(Edges()), mirrors included
	LogicalEdges int  // EdgeCount(), mirrors excluded
}

// Stats produces a deterministic snapshot of flags and sizes.
//
// Implementation:
//   - Stage 1: Acquire mu.RLock and read len(edges).
//   - Stage 2: Derive the logical count from directedness.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Stats() Stats {
	g.mu.RLock()
	entries := len(g.edges)
	g.mu.RUnlock()

	logical := entries
	if !g.directed {
		logical = entries / 2
	}

	return Stats{
		NodeCount:    g.nodeCount,
		Directed:     g.directed,
		Weighted:     g.weighted,
		EdgeEntries:  entries,
		LogicalEdges: logical,
	}
}
