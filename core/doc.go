// Package core provides the thread-safe in-memory graph model every
// traversal in this module reads from.
//
// The Graph G = (V,E) has a fixed node set V = {0, …, n-1} chosen at
// construction and an edge set that only grows:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted); unweighted edges weigh 1
//   - Three synchronized representations:
//     matrix[from][to] = weight (0 = absent),
//     adjacency[from] = []Neighbor in insertion order,
//     edges = []Edge in insertion order
//   - A single sync.RWMutex; every read returns a copy
//
// Why insertion order?
//
//	BFS and DFS expand children in the order Neighbors() yields them, so the
//	order in which edges were added is part of the observable result.
//
// Undirected graphs:
//
//	AddEdge(a, b, w) stores (a,b,w) and (b,a,w) in the edge list and in both
//	adjacency lists, and sets matrix[a][b] = matrix[b][a] = w. LogicalEdges()
//	drops the mirrored half using the rule "skip entries where From > To".
//
// Parallel edges:
//
//	Adding the same ordered pair twice appends a second adjacency entry and
//	a second edge entry; the matrix holds the last weight. ParallelCount
//	reports the multiplicity.
//
// Core Methods:
//
//	// Construction
//	NewGraph(n int, opts ...GraphOption) (*Graph, error) // O(V²)
//
//	// Mutation
//	AddEdge(from, to NodeID, weight int64) error         // O(1)†
//	Clear()                                              // O(V²)
//
//	// Query
//	Neighbors(id NodeID) ([]Neighbor, error)             // O(deg)
//	NeighborIDs(id NodeID) ([]NodeID, error)             // O(deg)
//	AdjacencyList() [][]Neighbor                         // O(V+E)
//	Matrix() [][]int64                                   // O(V²)
//	Edges() []Edge                                       // O(E)
//	LogicalEdges() []Edge                                // O(E)
//	Weight(from, to NodeID) int64                        // O(1)
//	HasEdge(from, to NodeID) bool                        // O(1)
//	ParallelCount(from, to NodeID) int                   // O(deg)
//	NodeCount(), EdgeCount(), Directed(), Weighted(), Stats()
//
//	// Cloning
//	CloneEmpty() *Graph                                  // O(V²)
//	Clone() *Graph                                       // O(V²+E)
//
// Errors:
//
//	ErrInvalidSize        – NewGraph with n <= 0
//	ErrNodeNotFound       – Neighbors on an out-of-range node
//	ErrLoopNotAllowed     – AddEdge(v, v, w)
//	ErrNonPositiveWeight  – AddEdge with w <= 0 on a weighted graph
//
// † AddEdge with an out-of-range endpoint is a silent no-op by contract:
// random generators may probe invalid indices, and user-facing range checks
// belong to the host.
package core
