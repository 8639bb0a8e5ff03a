package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestView_ToggleOnlyFlipsExpanded(t *testing.T) {
	v := NewView(date(2026, time.October, 17)).Shift(2)
	toggled := v.Toggle()

	assert.True(t, toggled.Expanded)
	assert.Equal(t, v.Displayed, toggled.Displayed)
	assert.Equal(t, v.Today, toggled.Today)
	assert.False(t, toggled.Toggle().Expanded)
}

func TestView_SwipeNavigates(t *testing.T) {
	v := NewView(date(2026, time.January, 31))

	next, changed := v.Swipe(Gesture{DX: -75, DY: 3}, DefaultThresholds)
	assert.True(t, changed)
	assert.Equal(t, "February 2026", next.Title())

	back, changed := next.Swipe(Gesture{DX: 75}, DefaultThresholds)
	assert.True(t, changed)
	assert.Equal(t, "January 2026", back.Title())

	same, changed := back.Swipe(Gesture{DX: 10}, DefaultThresholds)
	assert.False(t, changed)
	assert.Equal(t, back, same)
}

func TestView_SwipeWrapsYear(t *testing.T) {
	v := NewView(date(2026, time.January, 10))
	prev, _ := v.Swipe(Gesture{DX: 120}, DefaultThresholds)
	assert.Equal(t, "December 2025", prev.Title())
}

func TestView_IsToday(t *testing.T) {
	v := NewView(date(2026, time.October, 17))
	assert.True(t, v.IsToday(Cell{Day: 17, Current: true}))
	assert.False(t, v.IsToday(Cell{Day: 17, Current: false}))
	assert.False(t, v.IsToday(Cell{Day: 16, Current: true}))

	// Same day number in another month is not today.
	assert.False(t, v.Shift(1).IsToday(Cell{Day: 17, Current: true}))
}

func TestView_EventPrompt(t *testing.T) {
	v := NewView(date(2026, time.October, 17))

	p, ok := v.EventPrompt(Cell{Day: 3, Current: true})
	assert.True(t, ok)
	assert.Equal(t, "Add event", p.Title)
	assert.Equal(t, "Add event on 3 October?", p.Message)

	_, ok = v.EventPrompt(Cell{Day: 28, Current: false})
	assert.False(t, ok)
}
