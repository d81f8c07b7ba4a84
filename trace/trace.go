// Package trace defines the immutable result every traversal in this module
// produces: a visitation order plus, for shortest-path algorithms, the
// final distance and parent maps.
package trace

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/algovista/algovista/core"
)

// Infinity is the distance of a node no path reaches.
const Infinity int64 = math.MaxInt64

// Extend returns d+w when the sum is a finite distance. It reports false
// when d is Infinity or the sum would reach Infinity or wrap below MinInt64.
func Extend(d, w int64) (int64, bool) {
	if d == Infinity {
		return Infinity, false
	}
	if w > 0 && d >= Infinity-w {
		return Infinity, false
	}
	if w < 0 && d < math.MinInt64-w {
		return Infinity, false
	}

	return d + w, true
}

// Sentinel errors for trace queries.
var (
	// ErrNoPath is returned by PathTo when dest was never reached.
	ErrNoPath = errors.New("trace: no path to node")

	// ErrUnknownAlgorithm is returned by ParseAlgorithm for an unrecognized name.
	ErrUnknownAlgorithm = errors.New("trace: unknown algorithm")
)

// Algorithm tags which traversal produced a Trace.
type Algorithm int

const (
	// BFS is breadth-first search.
	BFS Algorithm = iota
	// DFS is depth-first search (pre-order).
	DFS
	// Dijkstra is Dijkstra's single-source shortest paths.
	Dijkstra
	// BellmanFord is the Bellman-Ford single-source shortest paths.
	BellmanFord
)

var algorithmNames = [...]string{
	BFS:         "bfs",
	DFS:         "dfs",
	Dijkstra:    "dijkstra",
	BellmanFord: "bellman-ford",
}

// String returns the canonical lowercase name ("bfs", "bellman-ford", …).
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// Valid reports whether a is one of the four known algorithms.
func (a Algorithm) Valid() bool {
	return a >= BFS && a <= BellmanFord
}

// ShortestPath reports whether the algorithm computes distances.
func (a Algorithm) ShortestPath() bool {
	return a == Dijkstra || a == BellmanFord
}

// ParseAlgorithm maps a user-facing name to an Algorithm.
// Matching is case-insensitive and accepts "bellmanford", "bellman_ford"
// and the display names used in menus ("Bellman-Ford").
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)
	switch key {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	case "dijkstra":
		return Dijkstra, nil
	case "bellman-ford", "bellmanford":
		return BellmanFord, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Trace is the ordered output of one traversal run.
//
//   - Order: nodes in visitation order.
//   - Distances: every node's final distance (Infinity if unreachable);
//     nil for BFS and DFS.
//   - Parents: predecessor of every reached node except Start.
//
// A Trace is never mutated after the producing algorithm returns; treat
// the exported fields as read-only.
type Trace struct {
	Algorithm Algorithm
	Start     core.NodeID
	NodeCount int
	Order     []core.NodeID
	Distances map[core.NodeID]int64
	Parents   map[core.NodeID]core.NodeID
}

// New returns an empty Trace with capacity hints for n nodes.
// Shortest-path algorithms get a Distances map with every node at Infinity.
func New(alg Algorithm, start core.NodeID, n int) *Trace {
	t := &Trace{
		Algorithm: alg,
		Start:     start,
		NodeCount: n,
		Order:     make([]core.NodeID, 0, n),
		Parents:   make(map[core.NodeID]core.NodeID, n),
	}
	if alg.ShortestPath() {
		t.Distances = make(map[core.NodeID]int64, n)
		for id := 0; id < n; id++ {
			t.Distances[id] = Infinity
		}
	}

	return t
}

// Len returns the number of visitation steps.
func (t *Trace) Len() int { return len(t.Order) }

// At returns the node visited at step i.
func (t *Trace) At(i int) core.NodeID { return t.Order[i] }

// HasDistances reports whether the trace carries a distance table.
func (t *Trace) HasDistances() bool { return t.Distances != nil }

// Distance returns the final distance of id and whether it is finite.
func (t *Trace) Distance(id core.NodeID) (int64, bool) {
	d, ok := t.Distances[id]
	if !ok || d == Infinity {
		return Infinity, false
	}
	return d, true
}

// Parent returns the predecessor of id, or core.NoNode and false for the
// start node and unreachable nodes.
func (t *Trace) Parent(id core.NodeID) (core.NodeID, bool) {
	p, ok := t.Parents[id]
	if !ok {
		return core.NoNode, false
	}
	return p, true
}

// Reached reports whether id was reached from Start.
func (t *Trace) Reached(id core.NodeID) bool {
	if id == t.Start {
		return true
	}
	_, ok := t.Parents[id]
	return ok
}

// OrderCopy returns a copy of Order.
func (t *Trace) OrderCopy() []core.NodeID {
	out := make([]core.NodeID, len(t.Order))
	copy(out, t.Order)
	return out
}

// PathTo reconstructs the path from Start to dest along Parents.
// Returns ErrNoPath if dest was not reached.
func (t *Trace) PathTo(dest core.NodeID) ([]core.NodeID, error) {
	if !t.Reached(dest) {
		return nil, fmt.Errorf("%w %d", ErrNoPath, dest)
	}
	// build reversed path; the hop bound guards against a corrupt parent cycle
	path := []core.NodeID{}
	for cur, hops := dest, 0; hops <= t.NodeCount; hops++ {
		path = append(path, cur)
		prev, ok := t.Parents[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
