// Package chores tracks the household chore list and the local user's points.
package chores

import (
	"fmt"

	"github.com/idilsaglam/sharehouse/internal/model"
)

// Prompt asks the user to confirm a chore before it is marked done.
type Prompt struct {
	ChoreID string
	Title   string
	Message string
}

// Tracker holds the chores and the running point total. It is a value:
// mutating methods return an updated copy and leave the receiver untouched.
type Tracker struct {
	chores []model.Chore
	points int
}

func NewTracker(chores []model.Chore, points int) Tracker {
	return Tracker{chores: clone(chores), points: points}
}

// Chores returns every chore, done or not.
func (t Tracker) Chores() []model.Chore { return clone(t.chores) }

func (t Tracker) Points() int { return t.points }

// Active returns the chores still to do, in list order.
func (t Tracker) Active() []model.Chore {
	out := make([]model.Chore, 0, len(t.chores))
	for _, c := range t.chores {
		if !c.Done {
			out = append(out, c)
		}
	}
	return out
}

// WithPoints replaces the running total, e.g. after loading it from storage.
func (t Tracker) WithPoints(points int) Tracker {
	t.points = points
	return t
}

// RequestCompletion builds the confirmation question for a pending chore.
// Unknown and already-done chores produce no prompt.
func (t Tracker) RequestCompletion(id string) (Prompt, bool) {
	i := t.find(id)
	if i < 0 || t.chores[i].Done {
		return Prompt{}, false
	}
	return Prompt{
		ChoreID: id,
		Title:   "Chore completed?",
		Message: fmt.Sprintf("Did you finish %q?", t.chores[i].Name),
	}, true
}

// Confirm marks a pending chore done and adds its points.
// Confirming a done or unknown chore changes nothing and reports false.
func (t Tracker) Confirm(id string) (Tracker, bool) {
	i := t.find(id)
	if i < 0 || t.chores[i].Done {
		return t, false
	}
	next := Tracker{chores: clone(t.chores), points: t.points + t.chores[i].Points}
	next.chores[i].Done = true
	return next, true
}

func (t Tracker) find(id string) int {
	for i, c := range t.chores {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func clone(in []model.Chore) []model.Chore {
	out := make([]model.Chore, len(in))
	copy(out, in)
	return out
}
