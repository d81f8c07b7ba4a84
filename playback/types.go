package playback

import (
	"errors"
	"time"

	"github.com/algovista/algovista/core"
	"github.com/algovista/algovista/trace"
)

// State is the controller's machine state.
type State string

const (
	// StateIdle: a trace is loaded (or none yet) and nothing has played since the last Load/Reset.
	StateIdle State = "idle"

	// StateRunning: Tick advances the playhead.
	StateRunning State = "running"

	// StatePaused: the playhead is frozen mid-trace.
	StatePaused State = "paused"

	// StateCompleted: every trace element has been shown and the last node settled.
	StateCompleted State = "completed"
)

// String returns the state name.
func (s State) String() string {
	return string(s)
}

// IsTerminal reports whether only Reset or Load can leave s.
func (s State) IsTerminal() bool {
	return s == StateCompleted
}

// NodeState is the visual state of one node during playback.
type NodeState string

const (
	// Unvisited nodes have not been reached by the playhead.
	Unvisited NodeState = "unvisited"

	// Frontier is the node the playhead currently points at.
	Frontier NodeState = "frontier"

	// Visited nodes are behind the playhead.
	Visited NodeState = "visited"
)

// String returns the node state name.
func (n NodeState) String() string {
	return string(n)
}

// Sentinel errors.
var (
	// ErrNilTrace is returned by Load(nil).
	ErrNilTrace = errors.New("playback: trace is nil")

	// ErrInvalidTrace is returned by Load when the order names a node
	// outside [0, NodeCount).
	ErrInvalidTrace = errors.New("playback: trace order out of range")

	// ErrNoTrace is returned by Play before any Load.
	ErrNoTrace = errors.New("playback: no trace loaded")

	// ErrInvalidSpeed is returned by SetSpeed for non-positive or non-finite factors.
	ErrInvalidSpeed = errors.New("playback: speed factor must be a positive finite number")
)

// Snapshot is a consistent copy of the controller's state, safe to keep
// after the controller moves on.
type Snapshot struct {
	RunID    string        // identifies the current Load; empty before any
	State    State         // machine state
	Step     int           // number of trace elements shown so far
	Nodes    []NodeState   // per node, indexed by core.NodeID
	Current  core.NodeID   // Frontier node, or core.NoNode
	Shown    []core.NodeID // Trace.Order[:Step]
	Trace    *trace.Trace  // the loaded trace; read-only
	Interval time.Duration // delay the host should wait before the next Tick
}

// Done reports whether playback has completed.
func (s Snapshot) Done() bool {
	return s.State == StateCompleted
}

// Observer receives state-machine events. Callbacks run while the
// controller lock is held and must not call back into the controller.
type Observer interface {
	OnTransition(from, to State)
	OnTick(step int, node core.NodeID)
}
