package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/algovista/algovista/core"
	"github.com/algovista/algovista/host"
	"github.com/algovista/algovista/playback"
)

// marker renders one node in a given state.
type marker func(id core.NodeID, st playback.NodeState) string

// plainMarker tags nodes with ASCII-safe prefixes: ·unvisited >frontier ✓visited.
func plainMarker(id core.NodeID, st playback.NodeState) string {
	s := strconv.Itoa(id)
	switch st {
	case playback.Frontier:
		return ">" + s
	case playback.Visited:
		return "✓" + s
	default:
		return "·" + s
	}
}

// nodeRow renders every node of snap with mark, space separated.
func nodeRow(snap playback.Snapshot, mark marker) string {
	parts := make([]string, len(snap.Nodes))
	for id, st := range snap.Nodes {
		parts[id] = mark(id, st)
	}
	return strings.Join(parts, " ")
}

// statusLine summarizes the machine: "running  step 3/7  speed 1.00x".
func statusLine(snap playback.Snapshot, speed float64) string {
	total := 0
	if snap.Trace != nil {
		total = snap.Trace.Len()
	}
	return fmt.Sprintf("%-9s  step %d/%d  speed %.2fx", snap.State, snap.Step, total, speed)
}

// plainRenderer prints one line per frame and the full report once done.
type plainRenderer struct {
	w     io.Writer
	speed func() float64
}

var _ host.Renderer = (*plainRenderer)(nil)

func (r *plainRenderer) Render(fr host.Frame) error {
	snap := fr.Snapshot
	if _, err := fmt.Fprintf(r.w, "%s  %s\n", statusLine(snap, r.speed()), nodeRow(snap, plainMarker)); err != nil {
		return err
	}
	if !snap.Done() {
		return nil
	}
	fmt.Fprintln(r.w)
	return writeTrace(r.w, fr.Graph, snap.Trace)
}
