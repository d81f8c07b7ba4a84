// SPDX-License-Identifier: MIT
// Package: algovista/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w ("<Method>: ...: %w").
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the minimum for
// the requested constructor (e.g. Cycle(2)).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrTooManyVertices indicates that a constructor was asked to span more
// nodes than the graph has.
var ErrTooManyVertices = errors.New("builder: parameter exceeds graph size")

// ErrBadSize indicates an invalid edge budget (Random(edges < 1)).
var ErrBadSize = errors.New("builder: invalid size")

// ErrNeedRandSource indicates that a stochastic constructor requires an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a programmer error during composition: a nil
// graph or a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownShape is returned by ParseShape for unsupported names.
var ErrUnknownShape = errors.New("builder: unknown shape")
