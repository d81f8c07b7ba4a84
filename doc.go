// Package algovista is an in-memory playground for watching graph
// traversals unfold. A small graph is searched with BFS, DFS, Dijkstra or
// Bellman-Ford and the visit order is replayed one step at a time.
//
// 🚀 What is algovista?
//
//	A small, thread-safe library plus a terminal front end that brings together:
//		• Core primitives: fixed-size graphs with integer node IDs and dual storage
//		• Traversals: BFS, DFS
//		• Shortest paths: Dijkstra, Bellman-Ford
//		• Playback: a speed-controlled Idle/Running/Paused/Completed state machine
//		• Builders: random, path, cycle, star, wheel and complete graphs
//		• Custom build: click-by-click edge entry through a host prompter
//
// ✨ Why choose algovista?
//
//   - Deterministic – neighbor order follows edge insertion, so every trace is reproducible
//   - Headless core – algorithms never touch a screen; hosts render snapshots
//   - Observable – slog logging plus OpenTelemetry spans and Prometheus counters
//   - Extensible – hooks (OnVisit, OnEnqueue…) and functional options throughout
//
// Under the hood, everything is organized under these subpackages:
//
//	core/        - Graph, Edge and Neighbor types with adjacency list + matrix views
//	bfs/, dfs/   - unweighted traversals producing a trace.Trace
//	dijkstra/    - non-negative shortest paths with a binary heap
//	bellmanford/ - shortest paths by repeated relaxation
//	trace/       - the ordered result every algorithm hands to playback
//	traversal/   - one entry point that dispatches and times runs
//	playback/    - the step-by-step controller
//	host/        - the boundary a renderer and prompter implement
//	builder/     - graph shapes and the random generator
//	custombuild/ - the two-click edge entry session
//	report/      - text tables for orders, distances and graph structure
//	config/      - YAML settings with validation
//	metrics/     - Prometheus collectors for runs and playback
//	cmd/algovista - the CLI and TUI
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	BFS from 0 visits 0 1 3 2.
//
//	go install github.com/algovista/algovista/cmd/algovista@latest
package algovista
