package traversal

import (
	"context"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/algovista/algovista/core"
	"github.com/algovista/algovista/trace"
)

// Observer receives one callback per completed Engine.Run.
// metrics.Collector implements it.
type Observer interface {
	ObserveRun(alg Algorithm, start core.NodeID, steps int, took time.Duration, err error)
}

// Engine wraps Run with logging, tracing spans and an optional Observer.
// The zero value is not usable; construct with NewEngine.
type Engine struct {
	logger   *slog.Logger
	observer Observer
	tracer   oteltrace.Tracer
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the engine logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithObserver installs an Observer notified after every run.
func WithObserver(o Observer) EngineOption {
	return func(e *Engine) { e.observer = o }
}

// WithTracerProvider sets the OpenTelemetry provider spans are created from.
// Defaults to the global provider, which is a no-op unless the host installs one.
func WithTracerProvider(tp oteltrace.TracerProvider) EngineOption {
	return func(e *Engine) {
		if tp != nil {
			e.tracer = tp.Tracer(tracerName)
		}
	}
}

const tracerName = "algovista.traversal"

// NewEngine returns an Engine with a discard logger and no observer.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Run computes the trace of alg on g from start, the same as the
// package-level Run, and reports the outcome to the logger, the span and
// the observer. ctx carries the parent span only; traversals on bounded
// graphs are not interrupted.
func (e *Engine) Run(ctx context.Context, g *core.Graph, alg Algorithm, start core.NodeID) (*trace.Trace, error) {
	ctx, span := e.tracer.Start(ctx, "traversal.Run",
		oteltrace.WithAttributes(
			attribute.String("traversal.algorithm", alg.String()),
			attribute.Int("traversal.start", start),
		),
	)
	defer span.End()
	if g != nil {
		span.SetAttributes(
			attribute.Int("traversal.nodes", g.NodeCount()),
			attribute.Int("traversal.edges", g.EdgeCount()),
		)
	}

	began := time.Now()
	tr, err := Run(g, alg, start)
	took := time.Since(began)

	steps := 0
	if tr != nil {
		steps = tr.Len()
	}
	span.SetAttributes(attribute.Int("traversal.steps", steps))

	if e.observer != nil {
		e.observer.ObserveRun(alg, start, steps, took, err)
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		e.logger.WarnContext(ctx, "traversal failed",
			slog.String("algorithm", alg.String()),
			slog.Int("start", start),
			slog.String("error", err.Error()),
		)
		return tr, err
	}

	span.SetStatus(codes.Ok, "")
	e.logger.DebugContext(ctx, "traversal completed",
		slog.String("algorithm", alg.String()),
		slog.Int("start", start),
		slog.Int("steps", steps),
		slog.Duration("duration", took),
	)

	return tr, nil
}
