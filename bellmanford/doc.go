// Package bellmanford implements the Bellman-Ford single-source
// shortest-path algorithm over a core.Graph, reporting the run as a
// *trace.Trace.
//
// What:
//
//   - Exactly NodeCount-1 passes over g.Edges() (both directions of every
//     undirected edge), relaxing each edge in insertion order.
//   - Order is the order of first distance improvement, start first.
//   - Distances covers every node; unreachable nodes stay trace.Infinity.
//   - Parents holds the last improving predecessor of each reached node.
//
// Options:
//
//   - WithNegativeCycleCheck(): one extra verification pass; returns the
//     trace with ErrNegativeCycle when an edge can still be relaxed.
//   - WithEarlyExit(): stop after a pass that changes nothing.
//   - WithWeightFn(fn): relax with fn(edge) instead of the stored weight.
//   - WithContext(ctx): cancellation between passes.
//
// Complexity:
//
//   - Time:   O(V·E)
//   - Memory: O(V)
package bellmanford
