package metrics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algovista/algovista/core"
	"github.com/algovista/algovista/metrics"
	"github.com/algovista/algovista/playback"
	"github.com/algovista/algovista/traversal"
)

func TestObserveRun(t *testing.T) {
	m := metrics.New(nil)

	m.ObserveRun(traversal.BFS, 0, 4, time.Millisecond, nil)
	m.ObserveRun(traversal.BFS, 0, 0, 0, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues("bfs", metrics.StatusSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues("bfs", metrics.StatusError)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.TraceSteps))
}

func TestRegistersWithRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.OnTick(1, 0)

	n, err := testutil.GatherAndCount(reg, "algovista_playback_ticks_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.Panics(t, func() { metrics.New(reg) }, "duplicate registration")
}

func TestEngineAndControllerWiring(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))

	eng := traversal.NewEngine(traversal.WithObserver(m))
	tr, err := eng.Run(context.Background(), g, traversal.DFS, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues("dfs", metrics.StatusSuccess)))

	ctrl := playback.NewController(playback.WithObserver(m))
	require.NoError(t, ctrl.Load(tr))
	require.NoError(t, ctrl.Play())
	for !ctrl.State().IsTerminal() {
		ctrl.Tick()
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(m.TicksTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.TransitionsTotal.WithLabelValues(string(playback.StateIdle), string(playback.StateRunning))))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.TransitionsTotal.WithLabelValues(string(playback.StateRunning), string(playback.StateCompleted))))
}
