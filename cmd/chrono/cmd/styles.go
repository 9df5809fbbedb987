package cmd

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorAccent  = lipgloss.Color("#F59E0B")
	colorMuted   = lipgloss.Color("#6B7280")
)

// styles holds the styles of one output stream. Colors are only emitted
// when the stream is a terminal.
type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	header  lipgloss.Style
	day     lipgloss.Style
	weekend lipgloss.Style
	box     lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(colorPrimary),
		label: r.NewStyle().
			Foreground(colorMuted),
		header: r.NewStyle().
			Bold(true).
			Width(3).
			Align(lipgloss.Right),
		day: r.NewStyle().
			Width(3).
			Align(lipgloss.Right),
		weekend: r.NewStyle().
			Width(3).
			Align(lipgloss.Right).
			Foreground(colorAccent),
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1),
	}
}

// table renders label/value rows with the labels padded to a common width
func (s styles) table(rows [][2]string) string {
	width := 0
	for _, row := range rows {
		if w := lipgloss.Width(row[0]); w > width {
			width = w
		}
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		label := s.label.Width(width + 2).Render(row[0])
		lines[i] = label + row[1]
	}
	return strings.Join(lines, "\n")
}
