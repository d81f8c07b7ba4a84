// Package core defines the central Graph, Edge, and Neighbor types used by
// every traversal, and provides thread-safe primitives for building,
// querying, clearing and cloning a fixed-size integer-indexed graph.
//
// The Graph keeps three synchronized representations of its topology:
// an adjacency matrix (0 = no edge), per-node adjacency lists in insertion
// order, and a flat edge list in insertion order. All mutations and reads
// go through a single sync.RWMutex, and every read returns a copy.
//
// Errors:
//
//	ErrInvalidSize        - node count is zero or negative.
//	ErrNodeNotFound       - a read referenced a node outside [0, NodeCount).
//	ErrLoopNotAllowed     - AddEdge with from == to.
//	ErrNonPositiveWeight  - weight <= 0 on a weighted graph.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidSize indicates a graph was requested with nodeCount <= 0.
	ErrInvalidSize = errors.New("core: node count must be positive")

	// ErrNodeNotFound indicates a query referenced a node outside [0, NodeCount).
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNonPositiveWeight indicates a zero or negative weight on a weighted graph.
	// Zero is reserved as the "absent edge" marker of the adjacency matrix.
	ErrNonPositiveWeight = errors.New("core: edge weight must be positive")
)

// NodeID identifies a node. Valid IDs are the integers in [0, NodeCount).
type NodeID = int

// NoNode is the sentinel NodeID for "no node" (no parent, nothing selected).
const NoNode NodeID = -1

// unitWeight is the weight every edge of an unweighted graph carries.
const unitWeight int64 = 1

// Edge is one directed entry of the edge list.
//
// Undirected graphs store each logical edge as two Edge values, (a,b) and (b,a).
type Edge struct {
	// From is the source node.
	From NodeID

	// To is the destination node.
	To NodeID

	// Weight is the cost of the edge; always 1 on unweighted graphs.
	Weight int64
}

// Neighbor is one adjacency-list entry of a node.
type Neighbor struct {
	To     NodeID
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected makes every edge one-way (from → to).
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// WithWeighted keeps caller-supplied weights instead of forcing them to 1.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// Graph is the in-memory graph model.
//
// nodeCount, directed and weighted are fixed at construction; rebuilding a
// graph of another shape means constructing a new Graph.
type Graph struct {
	mu sync.RWMutex // guards everything below

	// Configuration flags
	nodeCount int
	directed  bool
	weighted  bool

	// Storage
	matrix    [][]int64    // matrix[from][to] = most recent weight, 0 = absent
	adjacency [][]Neighbor // adjacency[from] in insertion order
	edges     []Edge       // every directed entry in insertion order
}

// NewGraph creates an empty Graph with nodeCount nodes and no edges.
// By default the Graph is undirected and unweighted.
// Returns ErrInvalidSize if nodeCount <= 0.
// Complexity: O(V²) for the matrix.
func NewGraph(nodeCount int, opts ...GraphOption) (*Graph, error) {
	if nodeCount <= 0 {
		return nil, ErrInvalidSize
	}
	g := &Graph{nodeCount: nodeCount}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}
	g.resetStorage()

	return g, nil
}

// resetStorage allocates empty matrix, adjacency and edge storage.
// Caller must hold g.mu for writing (or own g exclusively).
func (g *Graph) resetStorage() {
	g.matrix = make([][]int64, g.nodeCount)
	for i := range g.matrix {
		g.matrix[i] = make([]int64, g.nodeCount)
	}
	g.adjacency = make([][]Neighbor, g.nodeCount)
	for i := range g.adjacency {
		g.adjacency[i] = []Neighbor{}
	}
	g.edges = []Edge{}
}
