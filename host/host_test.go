package host_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algovista/algovista/core"
	"github.com/algovista/algovista/host"
	"github.com/algovista/algovista/playback"
	"github.com/algovista/algovista/traversal"
)

type frameLog struct {
	mu     sync.Mutex
	frames []host.Frame
}

func (f *frameLog) Render(fr host.Frame) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.frames = append(f.frames, fr)
	return nil
}

func loaded(t *testing.T, interval time.Duration) (*core.Graph, *playback.Controller) {
	t.Helper()
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, g.AddEdge(i, i+1, 1))
	}
	tr, err := traversal.Run(g, traversal.BFS, 0)
	require.NoError(t, err)

	c := playback.NewController(playback.WithBaseInterval(interval))
	require.NoError(t, c.Load(tr))

	return g, c
}

func TestDrive_PlaysToCompletion(t *testing.T) {
	g, c := loaded(t, time.Millisecond)
	log := &frameLog{}

	require.NoError(t, host.Drive(context.Background(), c, log, g))

	// initial frame + 4 reveals + completion
	require.Len(t, log.frames, 6)
	assert.Equal(t, playback.StateRunning, log.frames[0].Snapshot.State)
	assert.Equal(t, 0, log.frames[0].Snapshot.Step)
	for i, fr := range log.frames[1:5] {
		assert.Equal(t, i, fr.Snapshot.Current)
		assert.Same(t, g, fr.Graph)
	}
	assert.Equal(t, playback.StateCompleted, log.frames[5].Snapshot.State)
}

func TestDrive_ContextCancel(t *testing.T) {
	g, c := loaded(t, time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := host.Drive(ctx, c, &frameLog{}, g)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 0, c.Step())
}

func TestDrive_RenderErrorStops(t *testing.T) {
	g, c := loaded(t, time.Millisecond)
	boom := errors.New("boom")
	calls := 0
	r := host.RendererFunc(func(host.Frame) error {
		calls++
		if calls == 2 {
			return boom
		}
		return nil
	})

	err := host.Drive(context.Background(), c, r, g)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, c.Step())
}

func TestDrive_NoTraceOrController(t *testing.T) {
	assert.ErrorIs(t, host.Drive(context.Background(), nil, &frameLog{}, nil), host.ErrNilController)

	c := playback.NewController()
	assert.ErrorIs(t, host.Drive(context.Background(), c, &frameLog{}, nil), playback.ErrNoTrace)
}

func TestDrive_SpeedChangeAppliesToNextTick(t *testing.T) {
	g, c := loaded(t, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- host.Drive(ctx, c, &frameLog{}, g) }()

	// the first tick is scheduled an hour out; the speed change must not
	// shorten it
	require.Eventually(t, func() bool { return c.State() == playback.StateRunning }, time.Second, time.Millisecond)
	require.NoError(t, c.SetSpeed(1e9))
	select {
	case <-done:
		t.Fatal("speed change must not shorten the already scheduled tick")
	case <-time.After(20 * time.Millisecond):
	}
	assert.Equal(t, 0, c.Step())

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
