// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, AdjacencyList, Matrix).
// Determinism:
//   - Neighbors() preserves insertion order; traversal child order depends on it.
// Concurrency:
//   - Read operations hold mu read lock and return independent copies.

package core

// Neighbors returns the adjacency list of id in insertion order.
//
// Parallel edges appear once per insertion. For undirected graphs the
// mirror entry of every edge is included, so both endpoints see each other.
// Returns ErrNodeNotFound if id is out of range.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id NodeID) ([]Neighbor, error) {
	if !g.inRange(id) {
		return nil, ErrNodeNotFound
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Neighbor, len(g.adjacency[id]))
	copy(out, g.adjacency[id])

	return out, nil
}

// NeighborIDs returns the destination IDs of Neighbors(id), in the same order
// and with the same repetitions.
// Complexity: O(deg(id)).
func (g *Graph) NeighborIDs(id NodeID) ([]NodeID, error) {
	nbs, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]NodeID, len(nbs))
	for i, nb := range nbs {
		ids[i] = nb.To
	}

	return ids, nil
}

// AdjacencyList returns a copy of every node's adjacency list, indexed by NodeID.
// Complexity: O(V+E).
func (g *Graph) AdjacencyList() [][]Neighbor {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][]Neighbor, g.nodeCount)
	for i, list := range g.adjacency {
		out[i] = make([]Neighbor, len(list))
		copy(out[i], list)
	}

	return out
}

// Matrix returns a copy of the adjacency matrix. matrix[from][to] is the most
// recently added weight from → to, or 0 when no edge exists.
// Complexity: O(V²).
func (g *Graph) Matrix() [][]int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][]int64, g.nodeCount)
	for i, row := range g.matrix {
		out[i] = make([]int64, len(row))
		copy(out[i], row)
	}

	return out
}
