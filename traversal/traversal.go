// Package traversal is the single entry point hosts use to compute a
// *trace.Trace: it dispatches an Algorithm tag to the bfs, dfs, dijkstra
// or bellmanford package and normalizes their errors.
package traversal

import (
	"errors"
	"fmt"

	"github.com/algovista/algovista/bellmanford"
	"github.com/algovista/algovista/bfs"
	"github.com/algovista/algovista/core"
	"github.com/algovista/algovista/dfs"
	"github.com/algovista/algovista/dijkstra"
	"github.com/algovista/algovista/trace"
)

// Algorithm selects one of the four traversals.
type Algorithm = trace.Algorithm

// The four supported algorithms.
const (
	BFS         = trace.BFS
	DFS         = trace.DFS
	Dijkstra    = trace.Dijkstra
	BellmanFord = trace.BellmanFord
)

var (
	// ErrUnknownAlgorithm is returned for an Algorithm value outside the enum.
	ErrUnknownAlgorithm = trace.ErrUnknownAlgorithm

	// ErrInvalidStartNode wraps every per-algorithm start-node error.
	ErrInvalidStartNode = errors.New("traversal: invalid start node")

	// ErrNilGraph wraps every per-algorithm nil-graph error.
	ErrNilGraph = errors.New("traversal: graph is nil")
)

// Algorithms returns every supported algorithm in menu order.
func Algorithms() []Algorithm {
	return []Algorithm{BFS, DFS, Dijkstra, BellmanFord}
}

// ParseAlgorithm maps a name such as "bfs" or "Bellman-Ford" to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	return trace.ParseAlgorithm(name)
}

// Run computes the trace of alg on g from start.
//
// g is only read; Run is safe to call concurrently on the same graph.
// Start-node and nil-graph failures match ErrInvalidStartNode and
// ErrNilGraph via errors.Is, as well as the originating package's sentinel.
func Run(g *core.Graph, alg Algorithm, start core.NodeID) (*trace.Trace, error) {
	var (
		tr  *trace.Trace
		err error
	)
	switch alg {
	case BFS:
		tr, err = bfs.BFS(g, start)
	case DFS:
		tr, err = dfs.DFS(g, start)
	case Dijkstra:
		tr, err = dijkstra.Dijkstra(g, start)
	case BellmanFord:
		tr, err = bellmanford.BellmanFord(g, start)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}

	return tr, classify(err)
}

// classify attaches the facade sentinels to algorithm errors.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bfs.ErrStartNodeNotFound),
		errors.Is(err, dfs.ErrStartNodeNotFound),
		errors.Is(err, dijkstra.ErrStartNodeNotFound),
		errors.Is(err, bellmanford.ErrStartNodeNotFound):
		return fmt.Errorf("%w: %w", ErrInvalidStartNode, err)
	case errors.Is(err, bfs.ErrGraphNil),
		errors.Is(err, dfs.ErrGraphNil),
		errors.Is(err, dijkstra.ErrGraphNil),
		errors.Is(err, bellmanford.ErrGraphNil):
		return fmt.Errorf("%w: %w", ErrNilGraph, err)
	default:
		return err
	}
}
