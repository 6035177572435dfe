package viz

import "github.com/charmbracelet/lipgloss"

var (
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	Label = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888899"))

	Value = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00ccff")).
		Bold(true)

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)

	// Reliability colors: green is trustworthy, red is not.
	ErrLow  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88"))
	ErrMid  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00"))
	ErrHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
)

// ErrStyle picks a color for a relative error score in [0, 1].
func ErrStyle(err float64) lipgloss.Style {
	switch {
	case err < 0.2:
		return ErrLow
	case err < 0.6:
		return ErrMid
	default:
		return ErrHigh
	}
}
