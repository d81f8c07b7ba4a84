package commands

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/algovista/algovista/core"
	"github.com/algovista/algovista/playback"
	"github.com/algovista/algovista/report"
	"github.com/algovista/algovista/traversal"
)

// Speed bounds reachable with + and -.
const (
	minSpeed = 0.1
	maxSpeed = 10
)

type playerDeps struct {
	ctx   context.Context
	ctrl  *playback.Controller
	eng   *traversal.Engine
	graph *core.Graph
	alg   traversal.Algorithm
	start core.NodeID
	regen func() (*core.Graph, error)
}

// tickMsg fires when a scheduled tick is due. seq ties it to the schedule
// that produced it; ticks from before a pause, reset or reload are dropped.
type tickMsg struct{ seq int }

type playerStyles struct {
	title     lipgloss.Style
	help      lipgloss.Style
	err       lipgloss.Style
	unvisited lipgloss.Style
	frontier  lipgloss.Style
	visited   lipgloss.Style
}

func newPlayerStyles() playerStyles {
	return playerStyles{
		title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff9f")).Padding(0, 1),
		help:      lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681")),
		err:       lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f")),
		unvisited: lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681")),
		frontier:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd700")),
		visited:   lipgloss.NewStyle().Foreground(lipgloss.Color("#00c853")),
	}
}

// player is the interactive bubbletea model for the play command.
type player struct {
	playerDeps

	seq      int
	styles   playerStyles
	body     viewport.Model
	err      error
	quitting bool
}

func newPlayer(d playerDeps) player {
	if d.ctx == nil {
		d.ctx = context.Background()
	}
	m := player{
		playerDeps: d,
		styles:     newPlayerStyles(),
		body:       viewport.New(80, 20),
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m player) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.body = viewport.New(msg.Width, max(3, msg.Height-8))
		m.refresh()
		return m, nil

	case tickMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		snap, _ := m.ctrl.Tick()
		m.refresh()
		if snap.State == playback.StateRunning {
			return m, m.schedule()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m player) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	case tea.KeySpace:
		return m.pause()
	}

	m.err = nil
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case " ":
		return m.pause()
	case "p":
		if err := m.ctrl.Play(); err != nil {
			m.err = err
			return m, nil
		}
		if m.ctrl.State() != playback.StateRunning {
			return m, nil
		}
		m.seq++
		m.refresh()
		return m, m.schedule()
	case "r":
		m.ctrl.Reset()
		m.seq++
		m.refresh()
	case "+", "=":
		m.err = m.ctrl.SetSpeed(min(m.ctrl.Speed()*2, maxSpeed))
		m.refresh()
	case "-", "_":
		m.err = m.ctrl.SetSpeed(max(m.ctrl.Speed()/2, minSpeed))
		m.refresh()
	case "a":
		algs := traversal.Algorithms()
		for i, alg := range algs {
			if alg == m.alg {
				m.alg = algs[(i+1)%len(algs)]
				break
			}
		}
		m.reload()
	case "s":
		m.start = (m.start + 1) % m.graph.NodeCount()
		m.reload()
	case "g":
		if m.regen == nil {
			return m, nil
		}
		g, err := m.regen()
		if err != nil {
			m.err = err
			return m, nil
		}
		m.graph = g
		m.start = min(m.start, g.NodeCount()-1)
		m.reload()
	default:
		var cmd tea.Cmd
		m.body, cmd = m.body.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m player) pause() (tea.Model, tea.Cmd) {
	m.ctrl.Pause()
	m.seq++
	m.refresh()
	return m, nil
}

// reload recomputes the trace for the current graph, algorithm and start
// node and loads it, leaving the controller Idle.
func (m *player) reload() {
	tr, err := m.eng.Run(m.ctx, m.graph, m.alg, m.start)
	if err != nil {
		m.err = err
		return
	}
	if err := m.ctrl.Load(tr); err != nil {
		m.err = err
		return
	}
	m.seq++
	m.refresh()
}

func (m player) schedule() tea.Cmd {
	seq := m.seq
	return tea.Tick(m.ctrl.Interval(), func(time.Time) tea.Msg {
		return tickMsg{seq: seq}
	})
}

// refresh rebuilds the scrollable report below the node row.
func (m *player) refresh() {
	snap := m.ctrl.Snapshot()
	var buf bytes.Buffer
	if err := report.WriteSummary(&buf, m.alg, m.graph, snap.Shown); err != nil {
		m.err = err
	}
	if snap.Done() && snap.Trace != nil && snap.Trace.HasDistances() {
		buf.WriteString("\n")
		_ = report.WriteDistances(&buf, snap.Trace)
	}
	buf.WriteString("\n")
	_ = report.WriteStructure(&buf, m.graph)
	m.body.SetContent(buf.String())
}

func (m player) mark(id core.NodeID, st playback.NodeState) string {
	label := strconv.Itoa(id)
	switch st {
	case playback.Frontier:
		return m.styles.frontier.Render("[" + label + "]")
	case playback.Visited:
		return m.styles.visited.Render("(" + label + ")")
	default:
		return m.styles.unvisited.Render(" " + label + " ")
	}
}

// View implements tea.Model.
func (m player) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}
	snap := m.ctrl.Snapshot()

	var b strings.Builder
	info, _ := traversal.Describe(m.alg)
	b.WriteString(m.styles.title.Render(fmt.Sprintf("AlgoVista · %s from %d", info.Name, m.start)))
	b.WriteString("\n")
	b.WriteString(statusLine(snap, m.ctrl.Speed()))
	b.WriteString("\n\n")
	b.WriteString(nodeRow(snap, m.mark))
	b.WriteString("\n\n")
	b.WriteString(m.body.View())
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(m.styles.err.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.help.Render("p play • space pause • r reset • +/- speed • a algorithm • s start • g new graph • ↑/↓ scroll • q quit"))
	return b.String()
}
