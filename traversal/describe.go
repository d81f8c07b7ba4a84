package traversal

import "fmt"

// Info is the human-facing description of an algorithm: what it does and
// its asymptotic cost.
type Info struct {
	Algorithm   Algorithm
	Name        string // display name, e.g. "Bellman-Ford"
	Description string
	Time        string // e.g. "O(V + E)"
	Space       string

	timeFor func(v, e int) string
}

// TimeFor renders the time bound instantiated for v nodes and e edges,
// e.g. "Time: O(V + E) = O(7 + 8)".
func (i Info) TimeFor(v, e int) string {
	return fmt.Sprintf("Time: %s = %s", i.Time, i.timeFor(v, e))
}

// SpaceFor renders the space bound instantiated for v nodes.
func (i Info) SpaceFor(v int) string {
	return fmt.Sprintf("Space: %s = O(%d)", i.Space, v)
}

var infos = map[Algorithm]Info{
	BFS: {
		Algorithm: BFS,
		Name:      "BFS",
		Description: "Breadth-First Search explores graph level by level. " +
			"Uses a queue. Good for finding shortest path in unweighted graphs.",
		Time:    "O(V + E)",
		Space:   "O(V)",
		timeFor: linear,
	},
	DFS: {
		Algorithm: DFS,
		Name:      "DFS",
		Description: "Depth-First Search explores as deep as possible before backtracking. " +
			"Uses recursion/stack. Good for topological sorting and cycle detection.",
		Time:    "O(V + E)",
		Space:   "O(V)",
		timeFor: linear,
	},
	Dijkstra: {
		Algorithm: Dijkstra,
		Name:      "Dijkstra",
		Description: "Finds shortest path from source to all nodes in weighted graphs. " +
			"Uses priority queue. Does not work with negative weights.",
		Time:  "O((V + E) log V)",
		Space: "O(V)",
		timeFor: func(v, e int) string {
			return fmt.Sprintf("O((%d + %d) log %d)", v, e, v)
		},
	},
	BellmanFord: {
		Algorithm: BellmanFord,
		Name:      "Bellman-Ford",
		Description: "Finds shortest path and can detect negative cycles. " +
			"Works with negative weights. Slower than Dijkstra.",
		Time:  "O(V × E)",
		Space: "O(V)",
		timeFor: func(v, e int) string {
			return fmt.Sprintf("O(%d × %d)", v, e)
		},
	},
}

func linear(v, e int) string { return fmt.Sprintf("O(%d + %d)", v, e) }

// Describe returns the Info for alg, or ErrUnknownAlgorithm.
func Describe(alg Algorithm) (Info, error) {
	info, ok := infos[alg]
	if !ok {
		return Info{}, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}

	return info, nil
}
