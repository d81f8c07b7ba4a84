// File: methods_clone.go
// Role: Cloning graph instances.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// CloneEmpty returns a new Graph with identical configuration and no edges.
// Complexity: O(V²).
func (g *Graph) CloneEmpty() *Graph {
	clone := &Graph{
		nodeCount: g.nodeCount,
		directed:  g.directed,
		weighted:  g.weighted,
	}
	clone.resetStorage()

	return clone
}

// Clone returns a deep copy of the Graph: configuration, matrix, adjacency
// and edge list. Later mutation of either graph does not affect the other.
// Complexity: O(V²+E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()

	g.mu.RLock()
	defer g.mu.RUnlock()

	for i, row := range g.matrix {
		copy(clone.matrix[i], row)
	}
	for i, list := range g.adjacency {
		clone.adjacency[i] = append(clone.adjacency[i], list...)
	}
	clone.edges = append(clone.edges, g.edges...)

	return clone
}
