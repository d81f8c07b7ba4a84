package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/algovista/algovista/core"
	"github.com/algovista/algovista/trace"
)

// Dijkstra computes shortest distances from start to every node of g and
// returns them as a *trace.Trace.
//
// Returns:
//
//   - Order: the heap pop order, i.e. the order in which distances became final.
//   - Distances: every node; trace.Infinity if unreachable.
//   - Parents: predecessor on the shortest path for every reached node except start.
//
// Ties on distance are broken by insertion into the heap: among equal keys
// the entry pushed first is popped first, so results are reproducible.
//
// Unweighted graphs are handled as unit-weight graphs. No negative-weight
// precondition is checked; the core model rejects non-positive weights.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, start core.NodeID, opts ...Option) (*trace.Trace, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil
	if g == nil {
		return nil, ErrGraphNil
	}

	// 3) Validate start exists
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartNodeNotFound, start, g.NodeCount())
	}

	n := g.NodeCount()
	r := &runner{
		g:       g,
		options: cfg,
		res:     trace.New(trace.Dijkstra, start, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}

	// 4) Seed and run main loop
	r.init(start)
	if err := r.process(); err != nil {
		return r.res, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph  // read-only within Dijkstra
	options Options      // thresholds and context
	res     *trace.Trace // distances, parents and pop order
	visited []bool       // finalized flags
	pq      nodePQ       // lazy min-heap
	seq     uint64       // insertion counter for tie-breaking
}

// init sets dist[start]=0 and pushes start into the heap.
func (r *runner) init(start core.NodeID) {
	r.res.Distances[start] = 0
	heap.Init(&r.pq)
	r.push(start, 0)
}

// push adds an entry stamped with the next insertion sequence number.
func (r *runner) push(id core.NodeID, dist int64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: dist, seq: r.seq})
	r.seq++
}

// process repeatedly extracts the closest unfinished node and relaxes its
// outgoing adjacency entries until the heap is empty or MaxDistance is exceeded.
func (r *runner) process() error {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// 1) Pop the smallest (dist, seq) entry.
		item := heap.Pop(&r.pq).(*nodeItem)

		// 2) Stale entry for an already finalized node.
		if r.visited[item.id] {
			continue
		}

		// 3) Nothing closer remains within the cap.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) Finalize and record the visit.
		r.visited[item.id] = true
		r.res.Order = append(r.res.Order, item.id)

		// 5) Relax adjacency entries.
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve the distance of each neighbor of u.
// Assumes the distance of u is final.
func (r *runner) relax(u core.NodeID) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	du := r.res.Distances[u]
	for _, nb := range neighbors {
		if r.visited[nb.To] {
			continue
		}
		// impassable edge
		if nb.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		newDist, ok := trace.Extend(du, nb.Weight)
		if !ok || newDist > r.options.MaxDistance {
			continue
		}
		// strictly better only; equal keys keep the earlier parent
		if newDist >= r.res.Distances[nb.To] {
			continue
		}
		r.res.Distances[nb.To] = newDist
		r.res.Parents[nb.To] = u
		r.push(nb.To, newDist)
	}

	return nil
}

// nodeItem is one heap entry: a node, its tentative distance, and the
// order in which the entry was pushed.
type nodeItem struct {
	id   core.NodeID
	dist int64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq) ascending.
// Outdated entries stay in the heap and are skipped on pop.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by insertion sequence.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already swapped
// the minimum into that position.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
