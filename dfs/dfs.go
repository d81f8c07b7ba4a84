package dfs

import (
	"fmt"

	"github.com/algovista/algovista/core"
	"github.com/algovista/algovista/trace"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph   *core.Graph  // underlying graph
	opts    DFSOptions   // traversal options
	visited []bool       // marked on first visit
	res     *trace.Trace // result collector
}

// DFS performs depth-first search on graph g from start.
// Nodes enter the returned trace in pre-order: a node is appended the
// moment it is first reached, and children are explored in adjacency
// insertion order. Nodes unreachable from start never appear.
//
// On cancellation or a hook error the partial trace is returned with the error.
func DFS(g *core.Graph, start core.NodeID, opts ...Option) (*trace.Trace, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Verify start
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartNodeNotFound, start, g.NodeCount())
	}

	// 4. Initialize result with capacity hint
	n := g.NodeCount()
	walker := &dfsWalker{
		graph:   g,
		opts:    dopts,
		visited: make([]bool, n),
		res:     trace.New(trace.DFS, start, n),
	}

	// 5. Traverse the single tree rooted at start
	if err := walker.traverse(start, 0); err != nil {
		return walker.res, err
	}

	return walker.res, nil
}

// traverse visits id at the given depth, recursing into unvisited neighbors.
func (w *dfsWalker) traverse(id core.NodeID, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark visited and record pre-order position
	w.visited[id] = true
	w.res.Order = append(w.res.Order, id)

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	// 4. Explore neighbors unless the depth limit is reached
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		nbs, err := w.graph.NeighborIDs(id)
		if err != nil {
			return fmt.Errorf("dfs: NeighborIDs(%d): %w", id, err)
		}
		for _, nid := range nbs {
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(id, nid) {
				continue
			}
			if w.visited[nid] {
				continue
			}
			w.res.Parents[nid] = id
			if err = w.traverse(nid, depth+1); err != nil {
				return err
			}
		}
	}

	// 5. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
		}
	}

	return nil
}
