package playback

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/algovista/algovista/core"
	"github.com/algovista/algovista/trace"
)

// DefaultBaseInterval is the tick interval at speed 1.
const DefaultBaseInterval = time.Second

// Controller replays a trace as a sequence of discrete visual states.
//
// It performs no timing of its own: the host calls Tick at Interval()
// spacing while State() is StateRunning. All methods are safe for
// concurrent use; each Tick is atomic with respect to Snapshot.
type Controller struct {
	mu sync.Mutex

	base     time.Duration
	speed    float64
	logger   *slog.Logger
	observer Observer

	runID string
	tr    *trace.Trace
	state State
	step  int
	nodes []NodeState
}

// Option configures a Controller.
type Option func(*Controller)

// WithBaseInterval sets the tick interval at speed 1. Panics if d <= 0.
func WithBaseInterval(d time.Duration) Option {
	if d <= 0 {
		panic(fmt.Sprintf("playback: WithBaseInterval(%v): must be positive", d))
	}
	return func(c *Controller) { c.base = d }
}

// WithLogger sets the controller logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver installs an Observer for transitions and ticks.
func WithObserver(o Observer) Option {
	return func(c *Controller) { c.observer = o }
}

// NewController returns an Idle controller with no trace, speed 1 and
// DefaultBaseInterval.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		base:   DefaultBaseInterval,
		speed:  1,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		state:  StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Load replaces the trace. From any state the controller moves to Idle
// with step 0 and every node Unvisited; it does not start playing.
func (c *Controller) Load(tr *trace.Trace) error {
	if tr == nil {
		return ErrNilTrace
	}
	for i, id := range tr.Order {
		if id < 0 || id >= tr.NodeCount {
			return fmt.Errorf("%w: Order[%d]=%d outside [0,%d)", ErrInvalidTrace, i, id, tr.NodeCount)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.tr = tr
	c.runID = uuid.NewString()
	c.rewind()
	c.transition(StateIdle)
	c.logger.Debug("trace loaded",
		slog.String("run_id", c.runID),
		slog.String("algorithm", tr.Algorithm.String()),
		slog.Int("steps", tr.Len()),
		slog.Int("nodes", tr.NodeCount),
	)

	return nil
}

// Play starts or resumes playback at the current step.
// Idle and Paused move to Running; Running and Completed are unchanged.
// A completed run must be Reset before it can play again.
func (c *Controller) Play() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.tr == nil {
		return ErrNoTrace
	}
	switch c.state {
	case StateIdle, StatePaused:
		c.transition(StateRunning)
	}

	return nil
}

// Pause freezes a running playback. It is a no-op in any other state.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateRunning {
		c.transition(StatePaused)
	}
}

// Reset returns to Idle with step 0 and every node Unvisited, keeping the
// loaded trace and speed.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.rewind()
	c.transition(StateIdle)
}

// Tick advances playback by one element. It only acts while Running and
// reports whether anything changed.
//
// While step < len the node at step becomes Frontier and the previous
// one Visited. The tick after the last element settles the final node to
// Visited and completes, so the last node stays Frontier for one interval.
func (c *Controller) Tick() (Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateRunning {
		return c.snapshot(), false
	}

	order := c.tr.Order
	if c.step < len(order) {
		if c.step > 0 {
			c.nodes[order[c.step-1]] = Visited
		}
		node := order[c.step]
		c.nodes[node] = Frontier
		c.step++
		if c.observer != nil {
			c.observer.OnTick(c.step, node)
		}
	} else {
		if len(order) > 0 {
			c.nodes[order[len(order)-1]] = Visited
		}
		c.transition(StateCompleted)
	}

	return c.snapshot(), true
}

// SetSpeed sets the speed factor; Interval becomes base/factor. The new
// interval applies to the next tick the host schedules.
func (c *Controller) SetSpeed(factor float64) error {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSpeed, factor)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// the interval must stay a representable Duration
	if float64(c.base)/factor >= math.MaxInt64 {
		return fmt.Errorf("%w: %v gives an interval beyond %v", ErrInvalidSpeed, factor, time.Duration(math.MaxInt64))
	}

	c.speed = factor
	c.logger.Debug("speed changed", slog.Float64("speed", factor), slog.Duration("interval", c.interval()))

	return nil
}

// Interval returns the delay the host should wait before the next Tick.
func (c *Controller) Interval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.interval()
}

// Speed returns the current speed factor.
func (c *Controller) Speed() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.speed
}

// State returns the machine state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Step returns how many trace elements have been shown.
func (c *Controller) Step() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.step
}

// Trace returns the loaded trace, or nil.
func (c *Controller) Trace() *trace.Trace {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.tr
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.snapshot()
}

// interval computes base/speed. Caller holds c.mu.
func (c *Controller) interval() time.Duration {
	return time.Duration(float64(c.base) / c.speed)
}

// rewind sets step 0 and all nodes Unvisited. Caller holds c.mu.
func (c *Controller) rewind() {
	c.step = 0
	if c.tr == nil {
		c.nodes = nil
		return
	}
	if cap(c.nodes) >= c.tr.NodeCount {
		c.nodes = c.nodes[:c.tr.NodeCount]
	} else {
		c.nodes = make([]NodeState, c.tr.NodeCount)
	}
	for i := range c.nodes {
		c.nodes[i] = Unvisited
	}
}

// transition moves to next, logging and notifying on an actual change.
// Caller holds c.mu.
func (c *Controller) transition(next State) {
	prev := c.state
	c.state = next
	if prev == next {
		return
	}
	c.logger.Debug("playback transition",
		slog.String("run_id", c.runID),
		slog.String("from", prev.String()),
		slog.String("to", next.String()),
		slog.Int("step", c.step),
	)
	if c.observer != nil {
		c.observer.OnTransition(prev, next)
	}
}

// snapshot copies the state. Caller holds c.mu.
func (c *Controller) snapshot() Snapshot {
	s := Snapshot{
		RunID:    c.runID,
		State:    c.state,
		Step:     c.step,
		Current:  core.NoNode,
		Trace:    c.tr,
		Interval: c.interval(),
	}
	s.Nodes = make([]NodeState, len(c.nodes))
	copy(s.Nodes, c.nodes)
	if c.tr != nil {
		s.Shown = make([]core.NodeID, c.step)
		copy(s.Shown, c.tr.Order[:c.step])
		if c.step > 0 && c.state != StateCompleted {
			s.Current = c.tr.Order[c.step-1]
		}
	}

	return s
}
