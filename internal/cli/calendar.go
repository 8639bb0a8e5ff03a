package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/sharehouse/internal/calendar"
	"github.com/idilsaglam/sharehouse/internal/leaderboard"
	"github.com/idilsaglam/sharehouse/internal/ui"
)

// now is swapped in tests.
var now = time.Now

func calendarCmd(_ **env) *cobra.Command {
	var (
		month string
		week  bool
	)

	c := &cobra.Command{
		Use:   "calendar",
		Short: "Show this week or a month grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := calendar.NewView(now())
			if month != "" {
				m, err := time.ParseInLocation("2006-01", month, time.Local)
				if err != nil {
					return usagef("--month: want YYYY-MM, got %q", month)
				}
				v.Displayed = m
			}
			if !week {
				v = v.Toggle()
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Panel(calendarLines(v)))
			return nil
		},
	}
	c.Flags().StringVar(&month, "month", "", "month to show, YYYY-MM (default: this month)")
	c.Flags().BoolVar(&week, "week", false, "show only the current week")
	return c
}

func calendarLines(v calendar.View) []string {
	t := ui.Current()
	var head strings.Builder
	for _, l := range calendar.WeekdayLabels {
		head.WriteString(fmt.Sprintf("%3s", l))
	}
	lines := []string{t.Title.Render(v.Title()), t.Muted.Render(head.String())}

	if !v.Expanded {
		var row strings.Builder
		for _, d := range v.Week() {
			cell := fmt.Sprintf("%3d", d.Date.Day())
			if d.IsToday {
				cell = t.Today.Render(cell)
			}
			row.WriteString(cell)
		}
		return append(lines, row.String())
	}

	grid := v.Grid()
	var row strings.Builder
	for i, c := range grid {
		cell := fmt.Sprintf("%3d", c.Day)
		switch {
		case !c.Current:
			cell = t.Muted.Render(cell)
		case v.IsToday(c):
			cell = t.Today.Render(cell)
		}
		row.WriteString(cell)
		if (i+1)%7 == 0 || i == len(grid)-1 {
			lines = append(lines, row.String())
			row.Reset()
		}
	}
	return lines
}

func leaderboardCmd(e **env) *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard",
		Short: "Show points for everyone in the house",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cur := *e
			t := ui.Current()
			board := leaderboard.Board(cur.cfg.User, cur.state.Chores.Points(), cur.cfg.Housemates)

			lines := []string{t.Title.Render("Leaderboard"), ""}
			for _, r := range leaderboard.Rank(board) {
				lines = append(lines,
					fmt.Sprintf("%d. %s - %d pts", r.Rank, r.Name, r.Points),
					ui.Bar(r.Width, 28))
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Panel(lines))
			return nil
		},
	}
}
