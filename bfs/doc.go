// Package bfs provides breadth-first search over a core.Graph,
// returning the visit order and BFS-tree parents as a *trace.Trace.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from a start node.
//   - A node is marked visited when it is enqueued, not when it is dequeued,
//     so it enters the queue at most once.
//   - Neighbors are expanded in the graph's adjacency insertion order.
//   - Returns a trace.Trace containing:
//   - Order: visit (dequeue) sequence
//   - Parents: node → its predecessor in the BFS tree
//   - Distances: nil (BFS is not a shortest-path trace here)
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a node is discovered)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor entries via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	core.Graph.Neighbors returns entries in insertion order, and BFS enqueues
//	in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = nodes, E = adjacency entries)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	tr, err := bfs.BFS(g, 0)
//	if err != nil {
//	    // ErrGraphNil, ErrStartNodeNotFound, ErrOptionViolation, ctx errors or hook errors
//	}
//	fmt.Println(tr.Order)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartNodeNotFound    if start is outside [0, NodeCount).
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
