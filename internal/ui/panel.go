package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Panel frames lines in the current theme's border.
func Panel(lines []string) string {
	return lipgloss.NewStyle().
		Border(current.Border).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// ProgressBar renders a bar with done/total and a percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	pct := float64(done) / float64(total) * 100
	return fmt.Sprintf("%s %3d%%", Bar(pct, width), int(pct))
}

// Bar renders pct (0-100) as a fixed-width bar.
func Bar(pct float64, width int) string {
	if width < 5 {
		width = 5
	}
	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return current.Success.Render(strings.Repeat(current.BarFull, filled)) +
		current.Muted.Render(strings.Repeat(current.BarEmpty, width-filled))
}
