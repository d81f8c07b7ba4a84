package bellmanford

import (
	"fmt"

	"github.com/algovista/algovista/core"
	"github.com/algovista/algovista/trace"
)

// BellmanFord computes single-source shortest distances from start by
// relaxing the full edge list of g exactly NodeCount-1 times.
//
// The trace order records start first and then each node at the moment
// its distance improves for the first time, across all passes. It is not
// a structural order of the graph. Unreachable nodes keep trace.Infinity
// and never enter the order.
//
// By default no negative-cycle pass is run; see WithNegativeCycleCheck.
// With the check enabled a detected cycle yields the completed trace
// together with ErrNegativeCycle.
//
// Complexity: O(V·E) time, O(V) extra space.
func BellmanFord(g *core.Graph, start core.NodeID, opts ...Option) (*trace.Trace, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartNodeNotFound, start, g.NodeCount())
	}

	n := g.NodeCount()
	r := &relaxer{
		edges:  g.Edges(),
		weight: cfg.WeightFn,
		res:    trace.New(trace.BellmanFord, start, n),
		seen:   make([]bool, n),
	}
	r.res.Distances[start] = 0
	r.record(start)

	for pass := 0; pass < n-1; pass++ {
		select {
		case <-cfg.Ctx.Done():
			return r.res, cfg.Ctx.Err()
		default:
		}
		if !r.pass() && cfg.EarlyExit {
			break
		}
	}

	if cfg.CheckNegativeCycle && r.canRelax() {
		return r.res, fmt.Errorf("%w (start %d)", ErrNegativeCycle, start)
	}

	return r.res, nil
}

// relaxer holds the state of one run.
type relaxer struct {
	edges  []core.Edge
	weight func(core.Edge) int64
	res    *trace.Trace
	seen   []bool // already in res.Order
}

// record appends id to the order on its first improvement.
func (r *relaxer) record(id core.NodeID) {
	if r.seen[id] {
		return
	}
	r.seen[id] = true
	r.res.Order = append(r.res.Order, id)
}

// pass relaxes every edge once and reports whether any distance improved.
func (r *relaxer) pass() bool {
	changed := false
	dist := r.res.Distances
	for _, e := range r.edges {
		nd, ok := trace.Extend(dist[e.From], r.weight(e))
		if ok && nd < dist[e.To] {
			dist[e.To] = nd
			r.res.Parents[e.To] = e.From
			r.record(e.To)
			changed = true
		}
	}

	return changed
}

// canRelax reports whether some edge still improves a distance.
func (r *relaxer) canRelax() bool {
	dist := r.res.Distances
	for _, e := range r.edges {
		if nd, ok := trace.Extend(dist[e.From], r.weight(e)); ok && nd < dist[e.To] {
			return true
		}
	}

	return false
}
