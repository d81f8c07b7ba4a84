// SPDX-License-Identifier: MIT
// Package: algovista/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil (pure/deterministic unless seeded)
//   • weightFn = UniformWeightFn(RandomWeightMin, RandomWeightMax),
//     which yields DefaultEdgeWeight while rng is nil

package builder

import (
	"math/rand"

	"github.com/algovista/algovista/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges; used only for weighted graphs.
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: UniformWeightFn(RandomWeightMin, RandomWeightMax),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the weight of the next edge of g.
func (c builderConfig) weight(g *core.Graph) int64 {
	if !g.Weighted() {
		return DefaultEdgeWeight
	}
	return c.weightFn(c.rng)
}
