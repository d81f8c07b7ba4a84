package custombuild_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algovista/algovista/core"
	"github.com/algovista/algovista/custombuild"
)

func TestNewSession_Bounds(t *testing.T) {
	for _, n := range []int{-1, 0, 1, 16} {
		_, err := custombuild.NewSession(n)
		assert.ErrorIs(t, err, custombuild.ErrInvalidNodeCount, "n=%d", n)
	}
	for _, n := range []int{2, 15} {
		s, err := custombuild.NewSession(n)
		require.NoError(t, err)
		assert.Equal(t, n, s.Graph().NodeCount())
	}
}

func TestSession_SelectFlow(t *testing.T) {
	s, err := custombuild.NewSession(4)
	require.NoError(t, err)

	st, err := s.Select(1)
	require.NoError(t, err)
	assert.Equal(t, custombuild.StatusFirstSelected, st)
	id, ok := s.Selected()
	assert.True(t, ok)
	assert.Equal(t, 1, id)

	// same node again cancels
	st, err = s.Select(1)
	require.NoError(t, err)
	assert.Equal(t, custombuild.StatusCancelled, st)
	_, ok = s.Selected()
	assert.False(t, ok)

	_, _ = s.Select(0)
	st, err = s.Select(3)
	require.NoError(t, err)
	assert.Equal(t, custombuild.StatusEdgeReady, st)
	from, to, ok := s.PendingEdge()
	assert.True(t, ok)
	assert.Equal(t, [2]int{0, 3}, [2]int{from, to})

	_, err = s.Select(2)
	assert.ErrorIs(t, err, custombuild.ErrEdgePending)

	require.NoError(t, s.Commit(99))
	assert.True(t, s.Graph().HasEdge(0, 3))
	assert.True(t, s.Graph().HasEdge(3, 0), "undirected by default")
	assert.Equal(t, int64(1), s.Graph().Weight(0, 3), "unweighted graphs ignore the weight")
	_, _, ok = s.PendingEdge()
	assert.False(t, ok)
	assert.Equal(t, 1, s.EdgesAdded())
}

func TestSession_Errors(t *testing.T) {
	s, _ := custombuild.NewSession(3, core.WithWeighted(), core.WithDirected())

	_, err := s.Select(3)
	assert.ErrorIs(t, err, custombuild.ErrNodeOutOfRange)
	assert.ErrorIs(t, s.Commit(1), custombuild.ErrNoPendingEdge)

	_, _ = s.Select(0)
	_, _ = s.Select(2)
	assert.ErrorIs(t, s.Commit(0), custombuild.ErrInvalidWeight)
	_, _, ok := s.PendingEdge()
	assert.False(t, ok, "a rejected weight clears the selection")
	assert.False(t, s.Graph().HasEdge(0, 2))

	_, _ = s.Select(0)
	_, _ = s.Select(2)
	require.NoError(t, s.Commit(6))
	assert.Equal(t, int64(6), s.Graph().Weight(0, 2))
	assert.False(t, s.Graph().HasEdge(2, 0), "directed")
}

func TestSession_CancelAndFinish(t *testing.T) {
	s, _ := custombuild.NewSession(3)
	_, _ = s.Select(0)
	_, _ = s.Select(1)
	s.Cancel()
	_, _, ok := s.PendingEdge()
	assert.False(t, ok)

	_, _ = s.Select(2)
	g, err := s.Finish()
	require.NoError(t, err)
	assert.Equal(t, 0, g.EdgeCount())

	_, err = s.Finish()
	assert.ErrorIs(t, err, custombuild.ErrSessionClosed)
	_, err = s.Select(0)
	assert.ErrorIs(t, err, custombuild.ErrSessionClosed)
	assert.ErrorIs(t, s.Commit(1), custombuild.ErrSessionClosed)
}

func TestStatus_Hint(t *testing.T) {
	assert.Contains(t, custombuild.StatusFirstSelected.Hint(4), "Node 4 selected")
	assert.Contains(t, custombuild.StatusCancelled.Hint(4), "cancelled")
	assert.Empty(t, custombuild.Status(9).Hint(0))
}

// scriptedPrompter answers from fixed values and records alerts.
type scriptedPrompter struct {
	count    int
	countErr error
	weights  []int64
	alerts   []string
}

func (p *scriptedPrompter) AskInt(string, int, int, int) (int, error) { return p.count, p.countErr }

func (p *scriptedPrompter) AskWeight(core.NodeID, core.NodeID) (int64, error) {
	if len(p.weights) == 0 {
		return 0, errors.New("cancelled")
	}
	w := p.weights[0]
	p.weights = p.weights[1:]
	return w, nil
}

func (p *scriptedPrompter) Alert(title, _ string) { p.alerts = append(p.alerts, title) }

func TestStart(t *testing.T) {
	p := &scriptedPrompter{count: 20}
	_, err := custombuild.Start(p)
	assert.ErrorIs(t, err, custombuild.ErrInvalidNodeCount)
	assert.Equal(t, []string{"Invalid Input"}, p.alerts)

	p = &scriptedPrompter{countErr: errors.New("not a number")}
	_, err = custombuild.Start(p)
	assert.Error(t, err)

	p = &scriptedPrompter{count: 4}
	s, err := custombuild.Start(p, core.WithWeighted())
	require.NoError(t, err)
	assert.True(t, s.Graph().Weighted())
	assert.Empty(t, p.alerts)
}

func TestSession_Connect(t *testing.T) {
	p := &scriptedPrompter{weights: []int64{5, -2}}
	s, _ := custombuild.NewSession(3, core.WithWeighted())

	st, err := s.Connect(p, 0)
	require.NoError(t, err)
	assert.Equal(t, custombuild.StatusFirstSelected, st)
	st, err = s.Connect(p, 1)
	require.NoError(t, err)
	assert.Equal(t, custombuild.StatusEdgeReady, st)
	assert.Equal(t, int64(5), s.Graph().Weight(0, 1))

	// negative weight: alert, nothing added
	_, _ = s.Connect(p, 1)
	_, err = s.Connect(p, 2)
	assert.ErrorIs(t, err, custombuild.ErrInvalidWeight)
	assert.False(t, s.Graph().HasEdge(1, 2))

	// prompt cancelled
	_, _ = s.Connect(p, 1)
	_, err = s.Connect(p, 2)
	assert.Error(t, err)
	assert.Equal(t, []string{"Invalid Weight", "Invalid Input"}, p.alerts)
	_, ok := s.Selected()
	assert.False(t, ok)
	assert.Equal(t, 1, s.EdgesAdded())
}

func TestSession_ConnectUnweightedSkipsPrompt(t *testing.T) {
	p := &scriptedPrompter{}
	s, _ := custombuild.NewSession(2)
	_, _ = s.Connect(p, 0)
	_, err := s.Connect(p, 1)
	require.NoError(t, err)
	assert.True(t, s.Graph().HasEdge(0, 1))
	assert.Empty(t, p.alerts)
}
