package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/algovista/algovista/core"
	"github.com/algovista/algovista/dfs"
)

// buildChain creates a directed chain graph of length n: 0→1→2→…→n-1
func buildChain(n int) *core.Graph {
	g, _ := core.NewGraph(n, core.WithDirected())
	for i := 0; i < n-1; i++ {
		_ = g.AddEdge(i, i+1, 1)
	}

	return g
}

// buildBinaryTree creates a directed complete binary tree with 2^depth-1 nodes,
// node i having children 2i+1 and 2i+2.
func buildBinaryTree(depth int) *core.Graph {
	n := (1 << depth) - 1
	g, _ := core.NewGraph(n, core.WithDirected())
	for i := 1; i < n; i++ {
		_ = g.AddEdge((i-1)/2, i, 1)
	}

	return g
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, 0)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	g := buildChain(3)
	for _, start := range []int{-1, 3, 100} {
		res, err := dfs.DFS(g, start)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, dfs.ErrStartNodeNotFound)
	}
}

func TestDFS_SingleNode_NoEdges(t *testing.T) {
	g, err := core.NewGraph(1)
	assert.NoError(t, err)

	res, err := dfs.DFS(g, 0)
	assert.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)
	_, hasParent := res.Parent(0)
	assert.False(t, hasParent, "start node should have no parent")
	assert.False(t, res.HasDistances())
}

func TestDFS_PathGraph(t *testing.T) {
	g, _ := core.NewGraph(4)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(2, 3, 1)

	res, err := dfs.DFS(g, 0)
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
}

func TestDFS_PreOrderFollowsAdjacency(t *testing.T) {
	//   0 → 2 → 3
	//   ↓
	//   1
	// 2 is inserted before 1, so the deep branch through 2 comes first.
	g, _ := core.NewGraph(4, core.WithDirected())
	_ = g.AddEdge(0, 2, 1)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(2, 3, 1)

	res, err := dfs.DFS(g, 0)
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3, 1}, res.Order)
	assert.Equal(t, map[int]int{2: 0, 3: 2, 1: 0}, res.Parents)
}

func TestDFS_UndirectedBacktracking(t *testing.T) {
	// Triangle 0-1-2 with a tail 0-3: DFS reaches 2 through 1,
	// so 0's edge to 2 is a back edge and 3 comes last.
	g, _ := core.NewGraph(4)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(0, 2, 1)
	_ = g.AddEdge(0, 3, 1)

	res, err := dfs.DFS(g, 0)
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
	p, _ := res.Parent(2)
	assert.Equal(t, 1, p)
}

func TestDFS_ChainAndParent(t *testing.T) {
	const n = 10
	g := buildChain(n)
	res, err := dfs.DFS(g, 0)
	assert.NoError(t, err)

	expected := make([]int, n)
	for i := range expected {
		expected[i] = i
	}
	assert.Equal(t, expected, res.Order)

	path, err := res.PathTo(n - 1)
	assert.NoError(t, err)
	assert.Equal(t, expected, path)
}

func TestDFS_Disconnected(t *testing.T) {
	g, _ := core.NewGraph(6)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(3, 4, 1)

	res, err := dfs.DFS(g, 0)
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
	for _, id := range []int{3, 4, 5} {
		assert.False(t, res.Reached(id), "disconnected node %d should not be reached", id)
	}
}

func TestDFS_MaxDepth(t *testing.T) {
	g := buildChain(3)

	res, err := dfs.DFS(g, 0, dfs.WithMaxDepth(0))
	assert.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)

	res, err = dfs.DFS(g, 0, dfs.WithMaxDepth(1))
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)
}

func TestDFS_FilterNeighbor(t *testing.T) {
	g, _ := core.NewGraph(3, core.WithDirected())
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(0, 2, 1)

	res, err := dfs.DFS(g, 0, dfs.WithFilterNeighbor(func(_, nbr int) bool {
		return nbr != 2
	}))
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)
	assert.False(t, res.Reached(2), "filtered neighbor should not be visited")
}

func TestDFS_OnVisitOnExitHooks(t *testing.T) {
	g := buildBinaryTree(3) // 7 nodes
	var pre, post []int

	res, err := dfs.DFS(g, 0,
		dfs.WithOnVisit(func(id, _ int) error {
			pre = append(pre, id)

			return nil
		}),
		dfs.WithOnExit(func(id int) error {
			post = append(post, id)

			return nil
		}),
	)
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 4, 2, 5, 6}, pre)
	assert.Equal(t, pre, res.Order, "trace order is pre-order")
	assert.Equal(t, []int{3, 4, 1, 5, 6, 2, 0}, post)
}

func TestDFS_OnVisitError(t *testing.T) {
	g := buildBinaryTree(3)
	stop := errors.New("stop at 3")

	res, err := dfs.DFS(g, 0, dfs.WithOnVisit(func(id, _ int) error {
		if id == 3 {
			return stop
		}

		return nil
	}))
	assert.NotNil(t, res)
	assert.ErrorIs(t, err, stop)
	assert.ErrorContains(t, err, "OnVisit hook for 3")
	// The partial trace keeps what was reached before the abort.
	assert.Equal(t, []int{0, 1, 3}, res.Order)
}

func TestDFS_OnExitError(t *testing.T) {
	g := buildChain(2)

	res, err := dfs.DFS(g, 0, dfs.WithOnExit(func(id int) error {
		if id == 1 {
			return errors.New("halt at 1 on exit")
		}

		return nil
	}))
	assert.NotNil(t, res)
	assert.ErrorContains(t, err, "OnExit hook for 1")
}

func TestDFS_CancellationImmediate(t *testing.T) {
	g := buildChain(100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate

	res, err := dfs.DFS(g, 0, dfs.WithContext(ctx))
	assert.NotNil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Order, "no nodes should be visited when canceled immediately")
}

func TestDFS_BinaryTree_AllReached(t *testing.T) {
	const depth = 4 // 15 nodes
	g := buildBinaryTree(depth)
	res, err := dfs.DFS(g, 0)
	assert.NoError(t, err)
	assert.Len(t, res.Order, (1<<depth)-1)
	assert.Len(t, res.Parents, (1<<depth)-2)
}
