package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	panel   lipgloss.Style
	header  lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	op      lipgloss.Style
	playing lipgloss.Style
	paused  lipgloss.Style
	help    lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		panel:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Muted).Padding(1, 2),
		header:  lipgloss.NewStyle().Foreground(t.Title).Bold(true).MarginBottom(1),
		label:   lipgloss.NewStyle().Foreground(t.Muted).Width(12),
		value:   lipgloss.NewStyle().Foreground(t.Text),
		op:      lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		playing: lipgloss.NewStyle().Foreground(t.Playing).Bold(true),
		paused:  lipgloss.NewStyle().Foreground(t.Paused).Bold(true),
		help:    lipgloss.NewStyle().Foreground(t.Muted).MarginTop(1),
	}
}

// ProgressBar renders the fraction of a sequence already shown.
func ProgressBar(index, total, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if total > 1 {
		filled = index * width / (total - 1)
	} else if total == 1 {
		filled = width
	}
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
