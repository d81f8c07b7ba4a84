// File: methods_edges.go
// Role: Edge lifecycle and edge queries: AddEdge/Clear/Edges/LogicalEdges/
//       EdgeCount/HasEdge/Weight/ParallelCount.
// Determinism:
//   - Edges() and LogicalEdges() return entries in insertion order.
// Concurrency:
//   - Mutations under mu write lock; reads under mu read lock.
// AI-HINT (file):
//   - Out-of-range endpoints are a silent no-op, not an error.
//   - Unweighted graphs force weight to 1 regardless of input.
//   - Parallel edges append; the matrix keeps the most recent weight only.

package core

// AddEdge adds an edge from → to.
//
// AI-HINT:
//   - If from or to is outside [0, NodeCount) this returns nil and changes nothing.
//   - If from == to this returns ErrLoopNotAllowed.
//   - If Weighted()==true and weight <= 0 this returns ErrNonPositiveWeight.
//   - If Weighted()==false the weight is replaced by 1.
//
// Steps:
//  1. Drop out-of-range requests.
//  2. Validate loops and weight.
//  3. Lock mu; write matrix, adjacency, edge list.
//  4. If undirected, mirror all three.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to NodeID, weight int64) error {
	// 1) Permissive range policy: generators may probe invalid indices.
	if !g.inRange(from) || !g.inRange(to) {
		return nil
	}

	// 2) Input validation
	if from == to {
		return ErrLoopNotAllowed
	}
	if !g.weighted {
		weight = unitWeight
	} else if weight <= 0 {
		return ErrNonPositiveWeight
	}

	// 3) Insert under lock
	g.mu.Lock()
	defer g.mu.Unlock()

	g.link(from, to, weight)
	// 4) Mirror undirected
	if !g.directed {
		g.link(to, from, weight)
	}

	return nil
}

// link writes one directed entry into every representation.
// Caller must hold g.mu for writing.
func (g *Graph) link(from, to NodeID, weight int64) {
	g.matrix[from][to] = weight
	g.adjacency[from] = append(g.adjacency[from], Neighbor{To: to, Weight: weight})
	g.edges = append(g.edges, Edge{From: from, To: to, Weight: weight})
}

// Clear removes every edge while keeping NodeCount, Directed and Weighted.
// The matrix is zeroed and adjacency lists are emptied (not removed), so the
// graph is immediately usable by traversals.
// Complexity: O(V²).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.resetStorage()
}

// Edges returns a copy of the edge list in insertion order.
// Undirected graphs report both directions of every logical edge.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// LogicalEdges returns the edges a user would draw: every entry for a
// directed graph, and only entries with From < To for an undirected one.
// Complexity: O(E).
func (g *Graph) LogicalEdges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.directed {
		out := make([]Edge, len(g.edges))
		copy(out, g.edges)
		return out
	}
	out := make([]Edge, 0, len(g.edges)/2)
	for _, e := range g.edges {
		// the mirrored (b,a) entry of an undirected edge is skipped
		if e.From > e.To {
			continue
		}
		out = append(out, e)
	}

	return out
}

// EdgeCount returns the number of logical edges (parallel edges counted).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.directed {
		return len(g.edges)
	}

	return len(g.edges) / 2
}

// HasEdge reports whether the matrix holds an edge from → to.
// Out-of-range IDs report false.
func (g *Graph) HasEdge(from, to NodeID) bool {
	return g.Weight(from, to) != 0
}

// Weight returns matrix[from][to]: the most recently added weight from → to,
// or 0 when there is no such edge or either ID is out of range.
func (g *Graph) Weight(from, to NodeID) int64 {
	if !g.inRange(from) || !g.inRange(to) {
		return 0
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.matrix[from][to]
}

// ParallelCount returns how many adjacency entries from → to exist.
// It exposes the multiplicity the matrix hides: a value above 1 means
// Weight(from,to) reflects only the last of several parallel edges.
// Complexity: O(deg(from)).
func (g *Graph) ParallelCount(from, to NodeID) int {
	if !g.inRange(from) || !g.inRange(to) {
		return 0
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, nb := range g.adjacency[from] {
		if nb.To == to {
			n++
		}
	}

	return n
}
