// Package dfs implements depth-first search on a core.Graph and reports
// the result as a *trace.Trace.
//
// What:
//
//   - DFS explores as far as possible along each branch before backtracking.
//   - The trace order is pre-order: a node is recorded, and marked visited,
//     the first time it is reached. Children are explored in the graph's
//     adjacency insertion order, so the sequence is deterministic.
//   - Parents holds the DFS-tree predecessor of every reached node except start.
//   - Distances is nil; DFS is not a shortest-path trace.
//
// Supports:
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//
// Complexity:
//
//   - Time:   O(V+E)
//   - Memory: O(V) for the recursion stack and visited flags
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartNodeNotFound    start not in [0, NodeCount)
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
