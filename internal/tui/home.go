package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/sharehouse/internal/calendar"
	"github.com/idilsaglam/sharehouse/internal/leaderboard"
	"github.com/idilsaglam/sharehouse/internal/ui"
)

const (
	cellWidth = 4
	barWidth  = 24
)

var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("8")).
	Padding(0, 1).
	MarginBottom(1)

func (m app) homeView() string {
	t := ui.Current()
	cards := []string{
		t.Title.Render("♥ ShareHouse"),
		cardStyle.Render(m.choresCard()),
		cardStyle.Render(m.calendarCard()),
		cardStyle.Render(m.leaderboardCard()),
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (m app) choresCard() string {
	t := ui.Current()
	lines := []string{t.Title.Render("My Chores")}

	active := m.state.Chores.Active()
	if len(active) == 0 {
		lines = append(lines, t.Muted.Render("all done - nice work"))
	}
	for i, c := range active {
		prefix := "  "
		if i == m.choreIdx {
			prefix = t.Selected.Render("> ")
		}
		pts := t.Muted.Render(fmt.Sprintf("+%d", c.Points))
		lines = append(lines, fmt.Sprintf("%s%s %s %s", prefix, t.Muted.Render(t.BoxUnchecked), c.Name, pts))
	}
	return strings.Join(lines, "\n")
}

func (m app) calendarCard() string {
	t := ui.Current()
	toggle := "▾"
	if m.cal.Expanded {
		toggle = "▴"
	}
	header := fmt.Sprintf("%s  %s  %s",
		t.Title.Render("Calendar"), t.Accent.Render(m.cal.Title()), t.Muted.Render(toggle))

	var labels strings.Builder
	for _, l := range calendar.WeekdayLabels {
		labels.WriteString(fmt.Sprintf("%*s", cellWidth, l))
	}
	lines := []string{header, t.Muted.Render(labels.String())}

	if !m.cal.Expanded {
		var row strings.Builder
		for _, d := range m.cal.Week() {
			cell := fmt.Sprintf("%*d", cellWidth, d.Date.Day())
			if d.IsToday {
				cell = t.Today.Render(cell)
			}
			row.WriteString(cell)
		}
		return strings.Join(append(lines, row.String()), "\n")
	}

	grid := m.cal.Grid()
	var row strings.Builder
	for i, c := range grid {
		cell := fmt.Sprintf("%*d", cellWidth, c.Day)
		switch {
		case !c.Current:
			cell = t.Muted.Render(cell)
		case m.cal.IsToday(c):
			cell = t.Today.Render(cell)
		case c.Day == m.selDay:
			cell = t.Selected.Render(cell)
		}
		row.WriteString(cell)
		if (i+1)%7 == 0 || i == len(grid)-1 {
			lines = append(lines, row.String())
			row.Reset()
		}
	}
	lines = append(lines, t.Muted.Render("drag or [ ] to change month"))
	return strings.Join(lines, "\n")
}

func (m app) leaderboardCard() string {
	t := ui.Current()
	lines := []string{t.Title.Render("Leaderboard")}
	board := leaderboard.Board(m.deps.User, m.state.Chores.Points(), m.deps.Housemates)
	for _, e := range leaderboard.Rank(board) {
		lines = append(lines,
			fmt.Sprintf("%d. %s - %d pts", e.Rank, e.Name, e.Points),
			ui.Bar(e.Width, barWidth),
		)
	}
	return strings.Join(lines, "\n")
}

func (m app) dialogView() string {
	t := ui.Current()
	d := m.dialog
	var choices string
	if d.kind == dialogConfirm {
		choices = t.Success.Render("[y] Yes") + "   " + t.Muted.Render("[n] Cancel")
	} else {
		choices = t.Accent.Render("[enter] OK")
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color("12")).
		Padding(1, 3).
		Render(t.Title.Render(d.title) + "\n\n" + d.message + "\n\n" + choices)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
