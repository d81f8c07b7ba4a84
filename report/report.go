// Package report renders graphs and traces as plain-text tables for
// terminal hosts: the visit order, the distance table, and the three
// structural views of a graph (matrix, adjacency list, edge list).
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/algovista/algovista/core"
	"github.com/algovista/algovista/trace"
	"github.com/algovista/algovista/traversal"
)

// Glyphs used in tables.
const (
	InfinityGlyph = "∞"
	NoParentGlyph = "-"
	Arrow         = " → "
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// Order joins node IDs with arrows: "0 → 1 → 2".
func Order(ids []core.NodeID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}

	return strings.Join(parts, Arrow)
}

// Distance formats d, using ∞ for trace.Infinity.
func Distance(d int64) string {
	if d == trace.Infinity {
		return InfinityGlyph
	}

	return strconv.FormatInt(d, 10)
}

// WriteDistances writes the Node / Distance / Parent table of a
// shortest-path trace, one row per node. Traces without distances write
// nothing.
func WriteDistances(w io.Writer, tr *trace.Trace) error {
	if tr == nil || !tr.HasDistances() {
		return nil
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "Node\tDistance\tParent")
	for id := 0; id < tr.NodeCount; id++ {
		parent := NoParentGlyph
		if p, ok := tr.Parent(id); ok {
			parent = strconv.Itoa(p)
		}
		d, _ := tr.Distance(id)
		fmt.Fprintf(tw, "%d\t%s\t%s\n", id, Distance(d), parent)
	}

	return tw.Flush()
}

// WriteMatrix writes the adjacency matrix with row and column headers.
// Zero cells are blank.
func WriteMatrix(w io.Writer, g *core.Graph) error {
	m := g.Matrix()
	tw := newTable(w)

	header := make([]string, 0, len(m)+1)
	header = append(header, "")
	for j := range m {
		header = append(header, strconv.Itoa(j))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for i, row := range m {
		cells := make([]string, 0, len(row)+1)
		cells = append(cells, strconv.Itoa(i))
		for _, v := range row {
			if v == 0 {
				cells = append(cells, "")
				continue
			}
			cells = append(cells, strconv.FormatInt(v, 10))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	return tw.Flush()
}

// Neighbors formats one adjacency row, "1, 3(4)": weights are shown only
// on weighted graphs and only when greater than 1.
func Neighbors(nbs []core.Neighbor, weighted bool) string {
	parts := make([]string, len(nbs))
	for i, nb := range nbs {
		parts[i] = strconv.Itoa(nb.To)
		if weighted && nb.Weight > 1 {
			parts[i] += "(" + strconv.FormatInt(nb.Weight, 10) + ")"
		}
	}

	return strings.Join(parts, ", ")
}

// WriteAdjacency writes the Node / Neighbors table.
func WriteAdjacency(w io.Writer, g *core.Graph) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "Node\tNeighbors")
	for id, nbs := range g.AdjacencyList() {
		fmt.Fprintf(tw, "%d\t%s\n", id, Neighbors(nbs, g.Weighted()))
	}

	return tw.Flush()
}

// WriteEdges writes the numbered logical edge list; undirected edges
// appear once. Weighted graphs get a Weight column.
func WriteEdges(w io.Writer, g *core.Graph) error {
	tw := newTable(w)
	weighted := g.Weighted()
	if weighted {
		fmt.Fprintln(tw, "Edge #\tFrom\tTo\tWeight")
	} else {
		fmt.Fprintln(tw, "Edge #\tFrom\tTo")
	}
	for i, e := range g.LogicalEdges() {
		if weighted {
			fmt.Fprintf(tw, "%d\t%d\t%d\t%d\n", i, e.From, e.To, e.Weight)
			continue
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\n", i, e.From, e.To)
	}

	return tw.Flush()
}

// Complexity returns the instantiated time and space labels of alg on g,
// e.g. "Time: O(V + E) = O(7 + 8)" and "Space: O(V) = O(7)".
func Complexity(alg traversal.Algorithm, g *core.Graph) (timeLabel, spaceLabel string, err error) {
	info, err := traversal.Describe(alg)
	if err != nil {
		return "", "", err
	}
	v, e := g.NodeCount(), g.EdgeCount()

	return info.TimeFor(v, e), info.SpaceFor(v), nil
}

// WriteSummary writes the algorithm description, its complexity labels
// and the visit order revealed so far.
func WriteSummary(w io.Writer, alg traversal.Algorithm, g *core.Graph, shown []core.NodeID) error {
	info, err := traversal.Describe(alg)
	if err != nil {
		return err
	}
	timeLabel, spaceLabel, _ := Complexity(alg, g)
	_, err = fmt.Fprintf(w, "%s\n%s\n%s\n%s\nTraversal Order: %s\n",
		info.Name, info.Description, timeLabel, spaceLabel, Order(shown))

	return err
}

// WriteStructure writes the matrix, adjacency list and edge list one
// after another, each under a title line.
func WriteStructure(w io.Writer, g *core.Graph) error {
	sections := []struct {
		title string
		write func(io.Writer, *core.Graph) error
	}{
		{"Adjacency Matrix", WriteMatrix},
		{"Adjacency List", WriteAdjacency},
		{"Edge List", WriteEdges},
	}
	for i, s := range sections {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, s.title)
		if err := s.write(w, g); err != nil {
			return fmt.Errorf("report: %s: %w", s.title, err)
		}
	}

	return nil
}
