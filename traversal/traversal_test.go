package traversal_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/algovista/algovista/bfs"
	"github.com/algovista/algovista/core"
	"github.com/algovista/algovista/trace"
	"github.com/algovista/algovista/traversal"
)

func pathGraph(t *testing.T, weighted bool) *core.Graph {
	t.Helper()
	var opts []core.GraphOption
	if weighted {
		opts = append(opts, core.WithWeighted())
	}
	g, err := core.NewGraph(4, opts...)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, g.AddEdge(i, i+1, 1))
	}

	return g
}

func TestRun_AllAlgorithmsOnPath(t *testing.T) {
	g := pathGraph(t, true)
	for _, alg := range traversal.Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			tr, err := traversal.Run(g, alg, 0)
			require.NoError(t, err)
			assert.Equal(t, alg, tr.Algorithm)
			assert.Equal(t, []int{0, 1, 2, 3}, tr.Order)
			assert.Equal(t, alg.ShortestPath(), tr.HasDistances())
		})
	}
}

func TestRun_ErrorsAreClassified(t *testing.T) {
	g := pathGraph(t, false)
	for _, alg := range traversal.Algorithms() {
		_, err := traversal.Run(g, alg, 4)
		assert.ErrorIs(t, err, traversal.ErrInvalidStartNode, alg.String())

		_, err = traversal.Run(nil, alg, 0)
		assert.ErrorIs(t, err, traversal.ErrNilGraph, alg.String())
	}

	// the originating sentinel is still reachable
	_, err := traversal.Run(g, traversal.BFS, -1)
	assert.ErrorIs(t, err, bfs.ErrStartNodeNotFound)

	_, err = traversal.Run(g, traversal.Algorithm(42), 0)
	assert.ErrorIs(t, err, traversal.ErrUnknownAlgorithm)
}

func TestRun_UnreachableNodes(t *testing.T) {
	g, _ := core.NewGraph(4, core.WithWeighted())
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(2, 3, 2))

	for _, alg := range traversal.Algorithms() {
		tr, err := traversal.Run(g, alg, 0)
		require.NoError(t, err)
		assert.NotContains(t, tr.Order, 2, alg.String())
		assert.NotContains(t, tr.Order, 3, alg.String())
		if tr.HasDistances() {
			assert.Equal(t, trace.Infinity, tr.Distances[3], alg.String())
		}
	}
}

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]traversal.Algorithm{
		"bfs":          traversal.BFS,
		"DFS":          traversal.DFS,
		"Dijkstra":     traversal.Dijkstra,
		"Bellman-Ford": traversal.BellmanFord,
		"bellman_ford": traversal.BellmanFord,
	}
	for in, want := range cases {
		got, err := traversal.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := traversal.ParseAlgorithm("a-star")
	assert.ErrorIs(t, err, traversal.ErrUnknownAlgorithm)
}

func TestDescribe(t *testing.T) {
	info, err := traversal.Describe(traversal.BFS)
	require.NoError(t, err)
	assert.Equal(t, "Time: O(V + E) = O(7 + 8)", info.TimeFor(7, 8))
	assert.Equal(t, "Space: O(V) = O(7)", info.SpaceFor(7))
	assert.Contains(t, info.Description, "level by level")

	info, _ = traversal.Describe(traversal.Dijkstra)
	assert.Equal(t, "Time: O((V + E) log V) = O((5 + 6) log 5)", info.TimeFor(5, 6))

	info, _ = traversal.Describe(traversal.BellmanFord)
	assert.Equal(t, "Time: O(V × E) = O(5 × 6)", info.TimeFor(5, 6))
	assert.Equal(t, "Bellman-Ford", info.Name)

	_, err = traversal.Describe(traversal.Algorithm(-1))
	assert.ErrorIs(t, err, traversal.ErrUnknownAlgorithm)
}

type recordingObserver struct {
	algs  []traversal.Algorithm
	steps []int
	errs  []error
}

func (r *recordingObserver) ObserveRun(alg traversal.Algorithm, _ core.NodeID, steps int, _ time.Duration, err error) {
	r.algs = append(r.algs, alg)
	r.steps = append(r.steps, steps)
	r.errs = append(r.errs, err)
}

func TestEngine_ObserverLoggerAndSpans(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	obs := &recordingObserver{}
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

	eng := traversal.NewEngine(
		traversal.WithLogger(logger),
		traversal.WithObserver(obs),
		traversal.WithTracerProvider(tp),
	)
	g := pathGraph(t, false)

	tr, err := eng.Run(context.Background(), g, traversal.DFS, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, tr.Len())

	_, err = eng.Run(context.Background(), g, traversal.BFS, 9)
	assert.ErrorIs(t, err, traversal.ErrInvalidStartNode)

	assert.Equal(t, []traversal.Algorithm{traversal.DFS, traversal.BFS}, obs.algs)
	assert.Equal(t, []int{4, 0}, obs.steps)
	assert.NoError(t, obs.errs[0])
	assert.Error(t, obs.errs[1])

	out := buf.String()
	assert.Contains(t, out, "traversal completed")
	assert.Contains(t, out, "traversal failed")

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "traversal.Run", spans[0].Name())
	assert.Equal(t, codes.Ok, spans[0].Status().Code)
	assert.Equal(t, codes.Error, spans[1].Status().Code)

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range spans[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, "dfs", attrs["traversal.algorithm"].AsString())
	assert.Equal(t, int64(4), attrs["traversal.nodes"].AsInt64())
	assert.Equal(t, int64(3), attrs["traversal.edges"].AsInt64())
	assert.Equal(t, int64(4), attrs["traversal.steps"].AsInt64())

	_, err = eng.Run(context.Background(), nil, traversal.BFS, 0)
	assert.ErrorIs(t, err, traversal.ErrNilGraph)
	require.Len(t, sr.Ended(), 3)
}

func TestEngine_DefaultsAreSilent(t *testing.T) {
	eng := traversal.NewEngine(traversal.WithLogger(nil), traversal.WithTracerProvider(nil))
	tr, err := eng.Run(context.Background(), pathGraph(t, false), traversal.BFS, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, tr.Order)
}
