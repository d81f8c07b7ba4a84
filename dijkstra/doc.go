// Package dijkstra implements Dijkstra's shortest-path algorithm on a
// core.Graph and reports the run as a *trace.Trace.
//
// Overview:
//
//   - Computes the minimum-cost path from start to all reachable nodes in
//     O((V + E) log V) time, using a container/heap min-heap keyed by
//     tentative distance.
//   - Lazy decrease-key: an improved distance pushes a new entry; stale
//     entries are dropped on pop by a finalized check.
//   - Equal keys pop in insertion order, so the visit order is deterministic.
//   - The trace order is the pop order.
//
// Options:
//
//   - WithContext(ctx):         cancellation between pops.
//   - WithMaxDistance(x):       nodes with distance > x are not explored (x ≥ 0).
//   - WithInfEdgeThreshold(t):  edges with weight ≥ t are skipped (t > 0).
//
// Errors:
//
//   - ErrGraphNil:           g is nil.
//   - ErrStartNodeNotFound:  start not in [0, NodeCount).
//
// Example:
//
//	tr, err := dijkstra.Dijkstra(g, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d, _ := tr.Distance(2)
//	path, _ := tr.PathTo(2)
package dijkstra
