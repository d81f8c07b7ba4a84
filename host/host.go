// Package host is the boundary between the algorithmic core and whatever
// presents it. The core never draws, prompts or sleeps; a host implements
// Renderer and Prompter and owns the timer that drives playback.
package host

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/algovista/algovista/core"
	"github.com/algovista/algovista/playback"
)

// ErrNilController is returned by Drive when ctrl is nil.
var ErrNilController = errors.New("host: controller is nil")

// Frame is everything a renderer needs for one redraw.
type Frame struct {
	Graph    *core.Graph
	Snapshot playback.Snapshot
}

// Renderer draws frames. Returning an error stops Drive.
type Renderer interface {
	Render(Frame) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Frame) error

// Render calls f(fr).
func (f RendererFunc) Render(fr Frame) error { return f(fr) }

// Prompter collects user input for custom graph construction.
type Prompter interface {
	// AskInt asks for an integer in [min, max], offering def.
	AskInt(prompt string, def, min, max int) (int, error)
	// AskWeight asks for the weight of the edge from → to.
	AskWeight(from, to core.NodeID) (int64, error)
	// Alert shows a message that needs no answer.
	Alert(title, msg string)
}

// Drive plays ctrl to completion on a host-side timer, rendering the
// initial frame and every frame a tick changes.
//
// The delay before each tick is read from ctrl.Interval() at scheduling
// time, so speed changes take effect from the next tick on. While ctrl is
// paused or reset by someone else, Drive keeps polling at the current
// interval. Drive returns nil once playback completes, ctx.Err() when ctx
// is done, or the first render error.
func Drive(ctx context.Context, ctrl *playback.Controller, r Renderer, g *core.Graph) error {
	if ctrl == nil {
		return ErrNilController
	}
	if err := ctrl.Play(); err != nil {
		return fmt.Errorf("host: play: %w", err)
	}
	if err := r.Render(Frame{Graph: g, Snapshot: ctrl.Snapshot()}); err != nil {
		return fmt.Errorf("host: render: %w", err)
	}

	timer := time.NewTimer(ctrl.Interval())
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}

		snap, changed := ctrl.Tick()
		if changed {
			if err := r.Render(Frame{Graph: g, Snapshot: snap}); err != nil {
				return fmt.Errorf("host: render: %w", err)
			}
		}
		if snap.Done() {
			return nil
		}
		timer.Reset(ctrl.Interval())
	}
}
