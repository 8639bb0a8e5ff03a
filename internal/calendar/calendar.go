// Package calendar computes the week strip and month grid shown on the home
// screen and handles month-to-month navigation.
package calendar

import "time"

// WeekdayLabels are the column headers, Monday first.
var WeekdayLabels = [7]string{"M", "T", "W", "T", "F", "S", "S"}

// Day is one date of the week strip.
type Day struct {
	Date    time.Time
	IsToday bool
}

// Cell is one month-grid cell. Current is false for the leading days
// borrowed from the previous month.
type Cell struct {
	Day     int
	Current bool
}

// mondayIndex maps time.Weekday (Sunday=0) onto a Monday=0 scale.
func mondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

// SameDate compares calendar dates, ignoring the clock.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Week returns the 7 dates of today's week, starting on Monday.
func Week(today time.Time) []Day {
	monday := today.AddDate(0, 0, -mondayIndex(today.Weekday()))
	out := make([]Day, 0, 7)
	for i := 0; i < 7; i++ {
		d := monday.AddDate(0, 0, i)
		out = append(out, Day{Date: d, IsToday: SameDate(d, today)})
	}
	return out
}

// DaysIn returns the number of days in the given month.
// Day 0 of the following month normalises to the last day of this one.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 12, 0, 0, 0, time.UTC).Day()
}

// LeadingCells is the number of previous-month days shown before day 1.
func LeadingCells(year int, month time.Month) int {
	first := time.Date(year, month, 1, 12, 0, 0, 0, time.UTC)
	return mondayIndex(first.Weekday())
}

// MonthGrid returns the leading previous-month cells followed by every day of
// the month. Rows are not padded at the end, so the length ranges from 28 to 37.
func MonthGrid(year int, month time.Month) []Cell {
	lead := LeadingCells(year, month)
	days := DaysIn(year, month)
	prev := DaysIn(year, month-1)

	cells := make([]Cell, 0, lead+days)
	for i := lead - 1; i >= 0; i-- {
		cells = append(cells, Cell{Day: prev - i})
	}
	for d := 1; d <= days; d++ {
		cells = append(cells, Cell{Day: d, Current: true})
	}
	return cells
}

// AddMonths moves d by n calendar months. The day of month is clamped to the
// target month's length (Jan 31 + 1 month is Feb 28/29, not early March), so
// moving forward and back always lands in the starting month.
func AddMonths(d time.Time, n int) time.Time {
	y, m, day := d.Date()
	first := time.Date(y, m+time.Month(n), 1, d.Hour(), d.Minute(), d.Second(), d.Nanosecond(), d.Location())
	if last := DaysIn(first.Year(), first.Month()); day > last {
		day = last
	}
	return first.AddDate(0, 0, day-1)
}
