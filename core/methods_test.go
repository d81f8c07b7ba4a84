// SPDX-License-Identifier: MIT
// Package core_test locks in AddEdge/Clear semantics and the three-way
// consistency of matrix, adjacency and edge list.

package core_test

import (
	"math/rand"
	"testing"

	"github.com/algovista/algovista/core"
)

// TestAddEdge_Undirected ASSERTS both directions are materialized.
func TestAddEdge_Undirected(t *testing.T) {
	g := MustNewGraph(t, NSmall, core.WithWeighted())
	MustAddEdge(t, g, Node0, Node1, Weight4)

	MustEqual(t, g.Edges(), []core.Edge{
		{From: Node0, To: Node1, Weight: Weight4},
		{From: Node1, To: Node0, Weight: Weight4},
	}, "edge list")
	MustEqual(t, g.Weight(Node0, Node1), int64(Weight4), "matrix[0][1]")
	MustEqual(t, g.Weight(Node1, Node0), int64(Weight4), "matrix[1][0]")

	n0, _ := g.Neighbors(Node0)
	n1, _ := g.Neighbors(Node1)
	MustEqual(t, n0, []core.Neighbor{{To: Node1, Weight: Weight4}}, "adjacency[0]")
	MustEqual(t, n1, []core.Neighbor{{To: Node0, Weight: Weight4}}, "adjacency[1]")
	MustEqual(t, g.LogicalEdges(), []core.Edge{{From: Node0, To: Node1, Weight: Weight4}}, "logical edges")
}

// TestAddEdge_Directed ASSERTS only from → to is stored.
func TestAddEdge_Directed(t *testing.T) {
	g := MustNewGraph(t, NSmall, core.WithDirected())
	MustAddEdge(t, g, Node2, Node1, Weight9)

	MustTrue(t, g.HasEdge(Node2, Node1), "HasEdge(2,1)")
	MustFalse(t, g.HasEdge(Node1, Node2), "HasEdge(1,2)")
	// unweighted: forced to 1
	MustEqual(t, g.Weight(Node2, Node1), int64(Weight1), "forced unit weight")
	MustEqual(t, g.LogicalEdges(), []core.Edge{{From: Node2, To: Node1, Weight: Weight1}}, "logical edges keep from > to when directed")
}

// TestAddEdge_OutOfRange ASSERTS out-of-range endpoints are a silent no-op.
func TestAddEdge_OutOfRange(t *testing.T) {
	g := MustNewGraph(t, NSmall)
	MustNoError(t, g.AddEdge(NodeNegative, Node1, Weight1), "negative from")
	MustNoError(t, g.AddEdge(Node0, NSmall, Weight1), "to == n")
	MustEqual(t, len(g.Edges()), 0, "no edges stored")
	_, err := g.Neighbors(NSmall)
	MustErrorIs(t, err, core.ErrNodeNotFound, "Neighbors(n)")
}

// TestAddEdge_SelfLoop ASSERTS self-loops are rejected without mutation.
func TestAddEdge_SelfLoop(t *testing.T) {
	g := MustNewGraph(t, NSmall)
	MustErrorIs(t, g.AddEdge(Node2, Node2, Weight1), core.ErrLoopNotAllowed, "AddEdge(2,2)")
	MustEqual(t, len(g.Edges()), 0, "no edges stored")
	MustFalse(t, g.HasEdge(Node2, Node2), "matrix diagonal stays zero")
}

// TestAddEdge_Weights ASSERTS weight policy for weighted and unweighted graphs.
func TestAddEdge_Weights(t *testing.T) {
	w := MustNewGraph(t, NSmall, core.WithWeighted())
	MustErrorIs(t, w.AddEdge(Node0, Node1, Weight0), core.ErrNonPositiveWeight, "zero weight")
	MustErrorIs(t, w.AddEdge(Node0, Node1, -3), core.ErrNonPositiveWeight, "negative weight")
	MustEqual(t, w.EdgeCount(), 0, "rejected weights store nothing")

	u := MustNewGraph(t, NSmall)
	MustAddEdge(t, u, Node0, Node1, -3)
	MustAddEdge(t, u, Node1, Node2, Weight0)
	for _, e := range u.Edges() {
		MustEqual(t, e.Weight, int64(Weight1), "unweighted edges weigh 1")
	}
}

// TestAddEdge_ParallelEdges ASSERTS parallel edges append while the matrix
// keeps the most recent weight.
func TestAddEdge_ParallelEdges(t *testing.T) {
	g := MustNewGraph(t, NSmall, core.WithWeighted(), core.WithDirected())
	MustAddEdge(t, g, Node0, Node1, Weight4)
	MustAddEdge(t, g, Node0, Node1, Weight9)

	MustEqual(t, g.ParallelCount(Node0, Node1), 2, "ParallelCount")
	MustEqual(t, g.Weight(Node0, Node1), int64(Weight9), "matrix keeps last weight")
	ids, _ := g.NeighborIDs(Node0)
	MustEqual(t, ids, []core.NodeID{Node1, Node1}, "NeighborIDs repeats parallel edges")
	MustEqual(t, g.EdgeCount(), 2, "EdgeCount counts parallel edges")
}

// TestNeighbors_InsertionOrder ASSERTS adjacency follows insertion order, not ID order.
func TestNeighbors_InsertionOrder(t *testing.T) {
	g := MustNewGraph(t, NSmall)
	MustAddEdge(t, g, Node0, Node3, Weight1)
	MustAddEdge(t, g, Node0, Node1, Weight1)
	MustAddEdge(t, g, Node0, Node2, Weight1)

	ids, err := g.NeighborIDs(Node0)
	MustNoError(t, err, "NeighborIDs")
	MustEqual(t, ids, []core.NodeID{Node3, Node1, Node2}, "insertion order")
}

// TestClear_EquivalentToFresh ASSERTS Clear yields a model indistinguishable
// from a freshly constructed one.
func TestClear_EquivalentToFresh(t *testing.T) {
	g := MustNewGraph(t, NSmall, core.WithWeighted())
	MustAddEdge(t, g, Node0, Node1, Weight4)
	MustAddEdge(t, g, Node2, Node3, Weight7)
	g.Clear()

	fresh := MustNewGraph(t, NSmall, core.WithWeighted())
	MustEqual(t, g.Matrix(), fresh.Matrix(), "matrix")
	MustEqual(t, g.AdjacencyList(), fresh.AdjacencyList(), "adjacency")
	MustEqual(t, g.Edges(), fresh.Edges(), "edges")
	MustEqual(t, g.Stats(), fresh.Stats(), "stats")

	// still usable afterwards
	MustAddEdge(t, g, Node1, Node2, Weight1)
	MustEqual(t, g.EdgeCount(), 1, "EdgeCount after reuse")
}

// TestMatrix_SymmetricUnderRandomInserts ASSERTS undirected symmetry holds
// for random insert sequences, including parallel edges and rejected calls.
func TestMatrix_SymmetricUnderRandomInserts(t *testing.T) {
	const n = 9
	r := rand.New(rand.NewSource(7))
	g := MustNewGraph(t, n, core.WithWeighted())
	for i := 0; i < 200; i++ {
		// some calls are out of range, loops or zero weights on purpose
		_ = g.AddEdge(r.Intn(n+2)-1, r.Intn(n+2)-1, int64(r.Intn(10)))
	}
	MustSymmetric(t, g.Matrix())
	MustEqual(t, len(g.Edges())%2, 0, "mirrored entries come in pairs")
}

// TestMatrix_ReturnsCopy ASSERTS callers cannot mutate internal state.
func TestMatrix_ReturnsCopy(t *testing.T) {
	g := MustNewGraph(t, NSmall)
	m := g.Matrix()
	m[Node0][Node1] = Weight9
	MustFalse(t, g.HasEdge(Node0, Node1), "matrix copy must be detached")

	MustAddEdge(t, g, Node0, Node1, Weight1)
	edges := g.Edges()
	edges[0].Weight = Weight9
	MustEqual(t, g.Weight(Node0, Node1), int64(Weight1), "edge copy must be detached")
}
