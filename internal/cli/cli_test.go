package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/sharehouse/internal/household"
	"github.com/idilsaglam/sharehouse/internal/model"
	"github.com/idilsaglam/sharehouse/internal/store/kvstore"
	"github.com/idilsaglam/sharehouse/internal/ui"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func run(t *testing.T, dir, stdin string, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	full := append([]string{"--data-dir", dir, "--theme", "mono"}, args...)
	code := Execute(full, strings.NewReader(stdin), &out, &errOut)
	ui.SetOutput(os.Stdout, os.Stderr)
	return result{code: code, stdout: out.String(), stderr: errOut.String()}
}

func stored(t *testing.T, dir string) map[string]string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(dir, kvstore.DataFileName))
	require.NoError(t, err)
	var m map[string]string
	require.NoError(t, json.Unmarshal(b, &m))
	return m
}

func TestGroceryAddAndList(t *testing.T) {
	dir := t.TempDir()

	r := run(t, dir, "", "grocery", "add", "oat", "milk")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "added")

	r = run(t, dir, "", "grocery", "ls")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "Grocery list")
	assert.Contains(t, r.stdout, "oat milk")
	assert.Contains(t, r.stdout, " 4.")

	assert.Contains(t, stored(t, dir)[household.KeyGroceries], `"oat milk"`)
}

func TestGroceryDoneGrouped(t *testing.T) {
	dir := t.TempDir()

	r := run(t, dir, "", "grocery", "done", "2")
	require.Equal(t, 0, r.code, r.stderr)

	r = run(t, dir, "", "grocery", "ls", "--group")
	require.Equal(t, 0, r.code, r.stderr)
	pending := strings.Index(r.stdout, "Pending")
	done := strings.Index(r.stdout, "Done")
	eggs := strings.Index(r.stdout, "Eggs")
	require.True(t, pending >= 0 && done >= 0 && eggs >= 0)
	assert.Greater(t, eggs, done, "toggled item is listed under Done")
}

func TestListUsageErrors(t *testing.T) {
	dir := t.TempDir()

	r := run(t, dir, "", "grocery", "done", "9")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stderr, "index out of range: have 3, got 9")

	r = run(t, dir, "", "grocery", "done", "two")
	assert.Equal(t, 2, r.code)

	r = run(t, dir, "", "grocery", "add", "   ")
	assert.Equal(t, 2, r.code)

	r = run(t, dir, "", "grocery", "rm", "1")
	assert.Equal(t, 2, r.code, "groceries have no rm")
}

func TestCleaningRemove(t *testing.T) {
	dir := t.TempDir()

	r := run(t, dir, "", "cleaning", "rm", "1")
	require.Equal(t, 0, r.code, r.stderr)

	r = run(t, dir, "", "cleaning", "ls")
	require.Equal(t, 0, r.code, r.stderr)
	assert.NotContains(t, r.stdout, "Vacuum lounge")
	assert.Contains(t, r.stdout, "Clean bathroom")
}

func TestCleaningGroupedIndexesMatchRm(t *testing.T) {
	dir := t.TempDir()
	require.Equal(t, 0, run(t, dir, "", "cleaning", "done", "3").code)

	r := run(t, dir, "", "cleaning", "ls", "--group")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, " 3. [x] Take out bins")
	assert.Contains(t, r.stdout, " 1. [ ] Vacuum lounge")

	require.Equal(t, 0, run(t, dir, "", "cleaning", "rm", "3").code)
	r = run(t, dir, "", "cleaning", "ls")
	require.Equal(t, 0, r.code, r.stderr)
	assert.NotContains(t, r.stdout, "Take out bins")
	assert.Contains(t, r.stdout, "Vacuum lounge")
}

func TestFlatLinesTruncatesByWidth(t *testing.T) {
	ui.SetTheme("mono")
	defer ui.SetTheme("classic")

	long := strings.Repeat("a", 76) + "ééééé"
	for _, done := range []bool{false, true} {
		lines := flatLines([]model.Item{{Text: long, Done: done}}, []int{0})
		require.Len(t, lines, 1)
		assert.True(t, utf8.ValidString(lines[0]), "done=%v", done)
		assert.Contains(t, lines[0], "...")
		assert.LessOrEqual(t, ansi.StringWidth(lines[0]), len(" 1. [ ] ")+maxText)
	}

	short := flatLines([]model.Item{{Text: "Café"}}, []int{4})
	assert.Equal(t, " 5. [ ] Café", short[0])
}

func TestChoresDone(t *testing.T) {
	dir := t.TempDir()

	r := run(t, dir, "", "chores", "done", "1", "--yes")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "+10 pts (total 10)")
	assert.Equal(t, "10", stored(t, dir)[household.KeyPoints])

	r = run(t, dir, "", "chores")
	require.Equal(t, 0, r.code, r.stderr)
	assert.NotContains(t, r.stdout, "Fold washing")
	assert.Contains(t, r.stdout, "Pack dishwasher")

	// A finished chore can't be confirmed again.
	r = run(t, dir, "", "chores", "done", "1", "--yes")
	assert.Equal(t, 2, r.code)
	assert.Equal(t, "10", stored(t, dir)[household.KeyPoints])
}

func TestChoresDonePrompt(t *testing.T) {
	dir := t.TempDir()

	r := run(t, dir, "n\n", "chores", "done", "3")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, `Did you finish "Cook dinner"? [y/N]`)
	assert.Contains(t, r.stdout, "cancelled")

	r = run(t, dir, "y\n", "chores", "done", "3")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "+20 pts (total 20)")
}

func TestLeaderboard(t *testing.T) {
	dir := t.TempDir()
	require.Equal(t, 0, run(t, dir, "", "chores", "done", "3", "-y").code)

	r := run(t, dir, "", "leaderboard")
	require.Equal(t, 0, r.code, r.stderr)
	lily := strings.Index(r.stdout, "1. Lily - 120 pts")
	you := strings.Index(r.stdout, "3. You - 20 pts")
	assert.True(t, lily >= 0 && you > lily, r.stdout)
}

func TestCalendar(t *testing.T) {
	defer func(prev func() time.Time) { now = prev }(now)
	now = func() time.Time { return time.Date(2026, time.February, 10, 9, 0, 0, 0, time.Local) }

	dir := t.TempDir()
	r := run(t, dir, "", "calendar")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "February 2026")
	assert.Contains(t, r.stdout, " 28")

	r = run(t, dir, "", "calendar", "--month", "2026-08")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "August 2026")
	assert.Contains(t, r.stdout, " 31")

	r = run(t, dir, "", "calendar", "--week")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, " 11 12 13 14 15")
	assert.NotContains(t, r.stdout, " 28")

	r = run(t, dir, "", "calendar", "--month", "August")
	assert.Equal(t, 2, r.code)
}

func TestExitCodes(t *testing.T) {
	dir := t.TempDir()

	assert.Equal(t, 2, run(t, dir, "", "bogus").code)
	assert.Equal(t, 2, run(t, dir, "", "chores", "--nope").code)
	assert.Equal(t, 2, run(t, dir, "", "chores", "done").code)
	assert.Equal(t, 2, run(t, dir, "", "--theme", "rainbow", "chores").code)
}

func TestCorruptStoreFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, kvstore.DataFileName), []byte("{nope"), 0o644))

	r := run(t, dir, "", "grocery", "ls")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "Milk")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := "user: Sam\nhousemates:\n  - name: Kit\n    points: 7\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(cfg), 0o644))

	r := run(t, dir, "", "leaderboard")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "1. Kit - 7 pts")
	assert.Contains(t, r.stdout, "2. Sam - 0 pts")
}
