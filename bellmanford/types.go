package bellmanford

import (
	"context"
	"errors"

	"github.com/algovista/algovista/core"
)

// Sentinel errors returned by BellmanFord.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed.
	ErrGraphNil = errors.New("bellmanford: graph is nil")

	// ErrStartNodeNotFound indicates that start lies outside [0, NodeCount).
	ErrStartNodeNotFound = errors.New("bellmanford: start node not found")

	// ErrNegativeCycle is returned together with the trace when
	// WithNegativeCycleCheck is set and an edge can still be relaxed
	// after nodeCount-1 passes.
	ErrNegativeCycle = errors.New("bellmanford: negative cycle reachable from start")
)

// Option configures a BellmanFord run.
type Option func(*Options)

// Options holds BellmanFord settings.
type Options struct {
	// Ctx is checked once per pass.
	Ctx context.Context

	// CheckNegativeCycle runs one verification pass after the main passes.
	CheckNegativeCycle bool

	// EarlyExit stops as soon as a full pass improves nothing.
	// The resulting trace is identical; only the pass count differs.
	EarlyExit bool

	// WeightFn maps each edge to the weight used for relaxation.
	// Defaults to Edge.Weight.
	WeightFn func(e core.Edge) int64
}

// DefaultOptions returns Options with a background context, no
// verification pass, no early exit and stored edge weights.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		WeightFn: func(e core.Edge) int64 { return e.Weight },
	}
}

// WithContext sets the cancellation context. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithNegativeCycleCheck enables the extra verification pass.
func WithNegativeCycleCheck() Option {
	return func(o *Options) { o.CheckNegativeCycle = true }
}

// WithEarlyExit stops relaxation after the first pass with no improvement.
func WithEarlyExit() Option {
	return func(o *Options) { o.EarlyExit = true }
}

// WithWeightFn overrides the relaxation weight of each edge, e.g. to
// study negative costs the graph model itself does not store.
// Panics if fn is nil.
func WithWeightFn(fn func(e core.Edge) int64) Option {
	if fn == nil {
		panic("bellmanford: WithWeightFn(nil)")
	}
	return func(o *Options) { o.WeightFn = fn }
}
