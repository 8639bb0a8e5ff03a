package calendar

import (
	"fmt"
	"math"
	"time"
)

// Gesture is the displacement of a drag measured when it is released.
type Gesture struct {
	DX, DY float64
}

// Thresholds decide when a drag is a month swipe.
type Thresholds struct {
	// Claim is the horizontal distance a drag must exceed, while also being
	// more horizontal than vertical, before it counts as a swipe at all.
	Claim float64
	// Swipe is the horizontal distance that actually changes the month.
	Swipe float64
}

// DefaultThresholds match touch-screen behaviour: 20 units to claim, 50 to swipe.
var DefaultThresholds = Thresholds{Claim: 20, Swipe: 50}

// Claims reports whether the gesture is horizontal enough to be a swipe
// rather than a vertical scroll.
func (t Thresholds) Claims(g Gesture) bool {
	ax, ay := math.Abs(g.DX), math.Abs(g.DY)
	return ax > ay && ax > t.Claim
}

// Months returns the month step for a released gesture: +1 for a left swipe,
// -1 for a right swipe, 0 otherwise.
func (t Thresholds) Months(g Gesture) int {
	if !t.Claims(g) {
		return 0
	}
	switch {
	case g.DX < -t.Swipe:
		return 1
	case g.DX > t.Swipe:
		return -1
	}
	return 0
}

// View is the calendar card state: which month is shown and whether the card
// shows the full month or only this week. Methods return updated copies.
type View struct {
	Today     time.Time
	Displayed time.Time
	Expanded  bool
}

func NewView(today time.Time) View {
	return View{Today: today, Displayed: today}
}

// Toggle switches between week and month view. Nothing else changes.
func (v View) Toggle() View {
	v.Expanded = !v.Expanded
	return v
}

// Shift moves the displayed month by n months.
func (v View) Shift(n int) View {
	if n != 0 {
		v.Displayed = AddMonths(v.Displayed, n)
	}
	return v
}

// Swipe applies a released gesture. The bool reports whether the month changed.
func (v View) Swipe(g Gesture, t Thresholds) (View, bool) {
	n := t.Months(g)
	if n == 0 {
		return v, false
	}
	return v.Shift(n), true
}

// Title is the month heading, e.g. "October 2026".
func (v View) Title() string {
	return fmt.Sprintf("%s %d", v.Displayed.Month(), v.Displayed.Year())
}

func (v View) Week() []Day { return Week(v.Today) }

func (v View) Grid() []Cell {
	return MonthGrid(v.Displayed.Year(), v.Displayed.Month())
}

// IsToday reports whether a grid cell of the displayed month is today.
func (v View) IsToday(c Cell) bool {
	if !c.Current {
		return false
	}
	y, m, d := v.Today.Date()
	return c.Day == d && v.Displayed.Month() == m && v.Displayed.Year() == y
}

// Prompt is a yes/no question to put in front of the user.
type Prompt struct {
	Title   string
	Message string
}

// EventPrompt is shown when a day of the displayed month is picked.
// Leading cells from the previous month are not selectable.
func (v View) EventPrompt(c Cell) (Prompt, bool) {
	if !c.Current {
		return Prompt{}, false
	}
	return Prompt{
		Title:   "Add event",
		Message: fmt.Sprintf("Add event on %d %s?", c.Day, v.Displayed.Month()),
	}, true
}
