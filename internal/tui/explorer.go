package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/potflow/internal/field"
	"github.com/san-kum/potflow/internal/flows"
	"github.com/san-kum/potflow/internal/linalg"
	"github.com/san-kum/potflow/internal/scan"
	"github.com/san-kum/potflow/internal/viz"
)

const (
	gridCols = 48
	gridRows = 20
	span     = 2.0
)

var shades = []rune{' ', '░', '▒', '▓', '█'}

// Explorer is an interactive map of a flow's rotationality. The cursor
// is a reference point; the status line reads out the estimate there.
type Explorer struct {
	registry *flows.Registry
	names    []string
	flowIdx  int
	fl       flows.Flow

	norms   []linalg.NormKind
	normIdx int

	grid     *scan.Grid
	curR     int
	curC     int
	scanErr  error
	quitting bool
}

// NewExplorer builds the explorer over all two-dimensional builtin flows.
func NewExplorer() Explorer {
	registry := flows.NewRegistry()
	names := make([]string, 0)
	for _, name := range registry.List() {
		fl, err := registry.Get(name)
		if err == nil && fl.Dim() == 2 {
			names = append(names, name)
		}
	}

	m := Explorer{
		registry: registry,
		names:    names,
		norms:    linalg.NormKinds(),
		curR:     gridRows / 2,
		curC:     gridCols / 2,
	}
	m.loadFlow(0)
	return m
}

func (m *Explorer) loadFlow(idx int) {
	m.flowIdx = idx
	fl, err := m.registry.Get(m.names[idx])
	if err != nil {
		m.scanErr = err
		return
	}
	m.fl = fl
	m.rescan()
}

func (m *Explorer) rescan() {
	base := make(field.Vec, m.fl.Dim())
	m.grid, m.scanErr = scan.Sweep(m.fl.Eval, base, scan.Region{
		AxisX: 0, AxisY: 1,
		MinX: -span, MaxX: span,
		MinY: -span, MaxY: span,
		NX: gridCols, NY: gridRows,
	}, scan.WithNorm(m.norms[m.normIdx]), scan.WithWorkers(4))
}

func (m Explorer) Init() tea.Cmd { return nil }

func (m Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.curR < gridRows-1 {
			m.curR++
		}
	case "down", "j":
		if m.curR > 0 {
			m.curR--
		}
	case "left", "h":
		if m.curC > 0 {
			m.curC--
		}
	case "right", "l":
		if m.curC < gridCols-1 {
			m.curC++
		}
	case "n":
		m.normIdx = (m.normIdx + 1) % len(m.norms)
		m.rescan()
	case "f":
		m.loadFlow((m.flowIdx + 1) % len(m.names))
	case "r":
		m.rescan()
	}
	return m, nil
}

func (m Explorer) View() string {
	if m.quitting {
		return ""
	}
	if m.scanErr != nil {
		return viz.Panel.Render(fmt.Sprintf("scan failed: %v", m.scanErr))
	}
	if m.grid == nil {
		return "scanning..."
	}

	var b strings.Builder
	b.WriteString(viz.Title.Render("potflow explorer") + "  ")
	b.WriteString(viz.Subtle.Render(fmt.Sprintf("flow=%s norm=%s", m.fl.Name(), m.norms[m.normIdx])))
	b.WriteString("\n\n")

	// Rows render top-down, grid Y points up.
	for r := gridRows - 1; r >= 0; r-- {
		for c := 0; c < gridCols; c++ {
			if r == m.curR && c == m.curC {
				b.WriteString(viz.Value.Render("+"))
				continue
			}
			v := m.grid.Err[r][c]
			idx := int(v * float64(len(shades)-1))
			if idx >= len(shades) {
				idx = len(shades) - 1
			}
			b.WriteString(viz.ErrStyle(v).Render(string(shades[idx])))
		}
		b.WriteString("\n")
	}

	x := m.grid.Xs[m.curC]
	y := m.grid.Ys[m.curR]
	b.WriteString("\n")
	b.WriteString(viz.Label.Render("x0: ") + fmt.Sprintf("(%.3f, %.3f)  ", x, y))
	b.WriteString(viz.Label.Render("err: ") +
		viz.ErrStyle(m.grid.Err[m.curR][m.curC]).Render(fmt.Sprintf("%.4f", m.grid.Err[m.curR][m.curC])) + "  ")
	b.WriteString(viz.Label.Render("dV from center: ") + fmt.Sprintf("%+.5f", m.grid.DV[m.curR][m.curC]))
	b.WriteString("\n")
	b.WriteString(viz.KeyHint.Render("arrows/hjkl move · n norm · f flow · r rescan · q quit"))

	return b.String()
}

// Run starts the explorer in the alternate screen.
func Run() error {
	_, err := tea.NewProgram(NewExplorer(), tea.WithAltScreen()).Run()
	return err
}
