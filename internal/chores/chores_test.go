package chores

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/sharehouse/internal/model"
)

func seed() []model.Chore {
	return []model.Chore{
		{ID: "1", Name: "Fold washing", Points: 10},
		{ID: "2", Name: "Pack dishwasher", Points: 5},
		{ID: "3", Name: "Cook dinner", Points: 20},
	}
}

func TestRequestCompletion(t *testing.T) {
	tr := NewTracker(seed(), 0)

	p, ok := tr.RequestCompletion("2")
	require.True(t, ok)
	assert.Equal(t, "2", p.ChoreID)
	assert.Equal(t, "Chore completed?", p.Title)
	assert.Equal(t, `Did you finish "Pack dishwasher"?`, p.Message)

	_, ok = tr.RequestCompletion("nope")
	assert.False(t, ok)
}

func TestRequestCompletion_DoesNotMutate(t *testing.T) {
	tr := NewTracker(seed(), 7)
	_, _ = tr.RequestCompletion("1")
	assert.Equal(t, 7, tr.Points())
	assert.Len(t, tr.Active(), 3)
}

func TestConfirm_AddsPointsAndHidesChore(t *testing.T) {
	tr := NewTracker(seed(), 0)

	next, ok := tr.Confirm("3")
	require.True(t, ok)
	assert.Equal(t, 20, next.Points())

	active := next.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "1", active[0].ID)
	assert.Equal(t, "2", active[1].ID)

	// The receiver is unchanged.
	assert.Equal(t, 0, tr.Points())
	assert.Len(t, tr.Active(), 3)
}

func TestConfirm_TwiceCountsOnce(t *testing.T) {
	tr := NewTracker(seed(), 100)

	once, ok := tr.Confirm("1")
	require.True(t, ok)
	twice, ok := once.Confirm("1")
	assert.False(t, ok)

	assert.Equal(t, 110, twice.Points())
	_, ok = twice.RequestCompletion("1")
	assert.False(t, ok, "done chores are not offered again")
}

func TestConfirm_UnknownIsNoop(t *testing.T) {
	tr := NewTracker(seed(), 5)
	next, ok := tr.Confirm("42")
	assert.False(t, ok)
	assert.Equal(t, tr.Chores(), next.Chores())
	assert.Equal(t, 5, next.Points())
}

func TestNewTracker_CopiesInput(t *testing.T) {
	in := seed()
	tr := NewTracker(in, 0)
	in[0].Done = true
	assert.Len(t, tr.Active(), 3)
}
