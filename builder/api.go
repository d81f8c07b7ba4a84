// SPDX-License-Identifier: MIT
// Package: algovista/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(n, gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Factories are implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Constructors never panic; they return sentinel errors.
//
// AI-Hints:
//   - Use WithSeed(...) to freeze Random; without an RNG Random fails with ErrNeedRandSource.
//   - Compose constructors in BuildGraph to overlay shapes on the same node set.

package builder

import (
	"fmt"
	"strings"

	"github.com/algovista/algovista/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Respect the graph's directed and weighted flags.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an n-node core.Graph with graph options gopts, resolves
// the builder configuration from bopts, and applies all constructors in
// order. Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; the partial graph is discarded.
//
// Errors:
//   - core.ErrInvalidSize for n <= 0.
//   - Constructor sentinels (ErrTooFewVertices, ErrNeedRandSource, ...) via errors.Is.
func BuildGraph(n int, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs constructors against an existing graph, e.g. to regenerate
// edges after g.Clear().
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// Shape names a topology a host can ask for by string.
type Shape string

// Supported shapes.
const (
	ShapeRandom   Shape = "random"
	ShapePath     Shape = "path"
	ShapeCycle    Shape = "cycle"
	ShapeStar     Shape = "star"
	ShapeWheel    Shape = "wheel"
	ShapeComplete Shape = "complete"
)

// Shapes lists every supported shape.
func Shapes() []Shape {
	return []Shape{ShapeRandom, ShapePath, ShapeCycle, ShapeStar, ShapeWheel, ShapeComplete}
}

// ParseShape maps a case-insensitive name to a Shape.
func ParseShape(name string) (Shape, error) {
	s := Shape(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Shapes() {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("ParseShape(%q): %w", name, ErrUnknownShape)
}

// Constructor returns the constructor for s spanning n nodes. edges is
// only used by ShapeRandom.
func (s Shape) Constructor(n, edges int) (Constructor, error) {
	switch s {
	case ShapeRandom:
		return Random(edges), nil
	case ShapePath:
		return Path(n), nil
	case ShapeCycle:
		return Cycle(n), nil
	case ShapeStar:
		return Star(n), nil
	case ShapeWheel:
		return Wheel(n), nil
	case ShapeComplete:
		return Complete(n), nil
	default:
		return nil, fmt.Errorf("Shape(%q): %w", string(s), ErrUnknownShape)
	}
}
