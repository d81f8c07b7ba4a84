// Package custombuild implements the click-two-nodes flow for building a
// graph by hand. It is host-agnostic: a TUI, CLI or test feeds it node
// selections and weights, and it validates them before touching the graph.
package custombuild

import (
	"errors"
	"fmt"

	"github.com/algovista/algovista/core"
)

// Node-count bounds for a custom graph.
const (
	MinNodes     = 2
	MaxNodes     = 15
	DefaultNodes = 5
)

// Sentinel errors.
var (
	ErrInvalidNodeCount = fmt.Errorf("custombuild: node count must be in [%d,%d]", MinNodes, MaxNodes)
	ErrNodeOutOfRange   = errors.New("custombuild: node out of range")
	ErrEdgePending      = errors.New("custombuild: an edge is waiting for Commit or Cancel")
	ErrNoPendingEdge    = errors.New("custombuild: no edge pending")
	ErrInvalidWeight    = errors.New("custombuild: weight must be positive")
	ErrSessionClosed    = errors.New("custombuild: session already finished")
)

// Status is the result of a Select.
type Status int

const (
	// StatusFirstSelected: a first endpoint is now highlighted.
	StatusFirstSelected Status = iota
	// StatusCancelled: the highlighted node was selected again and dropped.
	StatusCancelled
	// StatusEdgeReady: two distinct endpoints are chosen; Commit or Cancel next.
	StatusEdgeReady
)

// Session accumulates edges on a fresh graph. It is not safe for
// concurrent use.
type Session struct {
	g      *core.Graph
	first  core.NodeID
	second core.NodeID
	edges  int
	closed bool
}

// NewSession starts a session on an empty graph of n nodes.
// opts are passed to core.NewGraph (WithDirected, WithWeighted).
func NewSession(n int, opts ...core.GraphOption) (*Session, error) {
	if n < MinNodes || n > MaxNodes {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidNodeCount, n)
	}
	g, err := core.NewGraph(n, opts...)
	if err != nil {
		return nil, err
	}

	return &Session{g: g, first: core.NoNode, second: core.NoNode}, nil
}

// Select handles a click on node id.
//
//   - nothing selected: id becomes the first endpoint.
//   - id is the first endpoint: the selection is cancelled.
//   - otherwise: (first, id) becomes the pending edge.
//
// While an edge is pending Select returns ErrEdgePending.
func (s *Session) Select(id core.NodeID) (Status, error) {
	if s.closed {
		return 0, ErrSessionClosed
	}
	if !s.g.HasNode(id) {
		return 0, fmt.Errorf("%w: %d", ErrNodeOutOfRange, id)
	}
	if s.second != core.NoNode {
		return 0, ErrEdgePending
	}
	switch s.first {
	case core.NoNode:
		s.first = id
		return StatusFirstSelected, nil
	case id:
		s.first = core.NoNode
		return StatusCancelled, nil
	default:
		s.second = id
		return StatusEdgeReady, nil
	}
}

// Selected returns the highlighted first endpoint, if any.
func (s *Session) Selected() (core.NodeID, bool) {
	return s.first, s.first != core.NoNode
}

// PendingEdge returns the endpoints awaiting Commit, if any.
func (s *Session) PendingEdge() (from, to core.NodeID, ok bool) {
	if s.second == core.NoNode {
		return core.NoNode, core.NoNode, false
	}
	return s.first, s.second, true
}

// Commit adds the pending edge. On a weighted graph weight must be
// positive; on an unweighted graph it is ignored. The selection is
// cleared whether or not the weight was accepted.
func (s *Session) Commit(weight int64) error {
	if s.closed {
		return ErrSessionClosed
	}
	from, to, ok := s.PendingEdge()
	if !ok {
		return ErrNoPendingEdge
	}
	defer s.Cancel()

	if s.g.Weighted() && weight <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWeight, weight)
	}
	if err := s.g.AddEdge(from, to, weight); err != nil {
		return fmt.Errorf("custombuild: add %d→%d: %w", from, to, err)
	}
	s.edges++

	return nil
}

// Cancel drops any selection or pending edge.
func (s *Session) Cancel() {
	s.first, s.second = core.NoNode, core.NoNode
}

// EdgesAdded returns how many edges Commit has added.
func (s *Session) EdgesAdded() int { return s.edges }

// Graph returns the graph under construction. Callers must not mutate it
// while the session is open.
func (s *Session) Graph() *core.Graph { return s.g }

// Finish closes the session and returns the built graph.
func (s *Session) Finish() (*core.Graph, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}
	s.Cancel()
	s.closed = true

	return s.g, nil
}

// Hint is the instruction a host shows after a Select.
func (st Status) Hint(id core.NodeID) string {
	switch st {
	case StatusFirstSelected:
		return fmt.Sprintf("Node %d selected. Now select another node to create an edge.", id)
	case StatusCancelled:
		return "Selection cancelled. Select two nodes to create an edge."
	case StatusEdgeReady:
		return fmt.Sprintf("Creating edge to %d.", id)
	default:
		return ""
	}
}
