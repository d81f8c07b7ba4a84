// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm over a core.Graph.
package dijkstra

import (
	"context"
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed to Dijkstra.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrStartNodeNotFound indicates that start lies outside [0, NodeCount).
	ErrStartNodeNotFound = errors.New("dijkstra: start node not found")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – optional cap on distances to explore (nodes beyond stay at Infinity).
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is math.MaxInt64 (no obstacles).
type Options struct {
	Ctx              context.Context // cancellation, checked once per pop
	MaxDistance      int64           // Maximum distance to explore
	InfEdgeThreshold int64           // Weight threshold above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithContext sets a context checked between heap extractions.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed this value are not explored.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable. Edges with weight ≥ threshold are skipped.
// Zero or negative values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with:
//   - Ctx:              context.Background()
//   - MaxDistance:      math.MaxInt64 (no distance limit)
//   - InfEdgeThreshold: math.MaxInt64 (no edges treated as impassable)
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
