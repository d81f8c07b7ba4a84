// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for algovista/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep tests stdlib-only (no third-party assertion frameworks).
//   - Enforce concurrency-safe testing patterns (no *testing.T usage inside goroutines).

package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/algovista/algovista/core"
)

// Common node IDs used across core tests.
const (
	Node0 = 0
	Node1 = 1
	Node2 = 2
	Node3 = 3

	NodeNegative = -1
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight0 = 0
	Weight1 = 1
	Weight4 = 4
	Weight7 = 7
	Weight9 = 9
)

// Common sizes used across core tests.
const (
	NSmall      = 4
	NReaders    = 50
	NWriterRuns = 200
)

// MustNewGraph builds a graph or fails the test.
func MustNewGraph(t *testing.T, n int, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n, opts...)
	MustNoError(t, err, "NewGraph")

	return g
}

// MustAddEdge adds an edge or fails the test.
func MustAddEdge(t *testing.T, g *core.Graph, from, to core.NodeID, w int64) {
	t.Helper()
	MustNoError(t, g.AddEdge(from, to, w), "AddEdge")
}

// MustNoError fails the test when err is non-nil.
func MustNoError(t *testing.T, err error, ctx string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", ctx, err)
	}
}

// MustErrorIs fails the test when err does not match target.
func MustErrorIs(t *testing.T, err, target error, ctx string) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("%s: want %v, got %v", ctx, target, err)
	}
}

// MustTrue fails the test when cond is false.
func MustTrue(t *testing.T, cond bool, ctx string) {
	t.Helper()
	if !cond {
		t.Fatalf("%s: expected true", ctx)
	}
}

// MustFalse fails the test when cond is true.
func MustFalse(t *testing.T, cond bool, ctx string) {
	t.Helper()
	if cond {
		t.Fatalf("%s: expected false", ctx)
	}
}

// MustEqual fails the test when got and want are not deeply equal.
func MustEqual(t *testing.T, got, want interface{}, ctx string) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("%s: got %v, want %v", ctx, got, want)
	}
}

// MustSymmetric fails the test when the matrix is not symmetric.
func MustSymmetric(t *testing.T, m [][]int64) {
	t.Helper()
	for a := range m {
		for b := range m[a] {
			if m[a][b] != m[b][a] {
				t.Fatalf("matrix[%d][%d]=%d but matrix[%d][%d]=%d", a, b, m[a][b], b, a, m[b][a])
			}
		}
	}
}
