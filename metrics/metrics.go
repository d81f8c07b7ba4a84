// Package metrics exposes Prometheus instruments for traversal runs and
// playback sessions.
//
// A Collector implements both traversal.Observer and playback.Observer,
// so a host wires one value into the engine and the controller:
//
//	reg := prometheus.NewRegistry()
//	m := metrics.New(reg)
//	eng := traversal.NewEngine(traversal.WithObserver(m))
//	ctrl := playback.NewController(playback.WithObserver(m))
//
// All operations are safe for concurrent use.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/algovista/algovista/core"
	"github.com/algovista/algovista/playback"
	"github.com/algovista/algovista/traversal"
)

const namespace = "algovista"

// Run outcome label values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Collector holds the instruments.
type Collector struct {
	// RunsTotal counts traversal runs. Labels: algorithm, status.
	RunsTotal *prometheus.CounterVec

	// TraceSteps observes the length of each successful trace. Labels: algorithm.
	TraceSteps *prometheus.HistogramVec

	// RunSeconds observes how long each traversal took. Labels: algorithm.
	RunSeconds *prometheus.HistogramVec

	// TicksTotal counts playback steps that revealed a node.
	TicksTotal prometheus.Counter

	// TransitionsTotal counts playback state changes. Labels: from, to.
	TransitionsTotal *prometheus.CounterVec
}

var (
	_ traversal.Observer = (*Collector)(nil)
	_ playback.Observer  = (*Collector)(nil)
)

// New creates a Collector registered with reg. A nil reg leaves the
// instruments unregistered, which is handy in tests and one-shot commands.
func New(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		RunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "traversal",
				Name:      "runs_total",
				Help:      "Traversal runs by algorithm and status",
			},
			[]string{"algorithm", "status"},
		),
		TraceSteps: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "traversal",
				Name:      "trace_steps",
				Help:      "Number of visitation steps per trace",
				Buckets:   []float64{1, 2, 4, 8, 15, 32, 64, 128},
			},
			[]string{"algorithm"},
		),
		RunSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "traversal",
				Name:      "run_seconds",
				Help:      "Time spent computing a trace",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
			},
			[]string{"algorithm"},
		),
		TicksTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "playback",
				Name:      "ticks_total",
				Help:      "Playback ticks that revealed a node",
			},
		),
		TransitionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "playback",
				Name:      "transitions_total",
				Help:      "Playback state transitions",
			},
			[]string{"from", "to"},
		),
	}
}

// ObserveRun implements traversal.Observer.
func (c *Collector) ObserveRun(alg traversal.Algorithm, _ core.NodeID, steps int, took time.Duration, err error) {
	name := alg.String()
	if err != nil {
		c.RunsTotal.WithLabelValues(name, StatusError).Inc()
		return
	}
	c.RunsTotal.WithLabelValues(name, StatusSuccess).Inc()
	c.TraceSteps.WithLabelValues(name).Observe(float64(steps))
	c.RunSeconds.WithLabelValues(name).Observe(took.Seconds())
}

// OnTick implements playback.Observer.
func (c *Collector) OnTick(int, core.NodeID) {
	c.TicksTotal.Inc()
}

// OnTransition implements playback.Observer.
func (c *Collector) OnTransition(from, to playback.State) {
	c.TransitionsTotal.WithLabelValues(string(from), string(to)).Inc()
}
