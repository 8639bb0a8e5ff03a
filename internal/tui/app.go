// Package tui is the interactive ShareHouse app: a home screen with chores,
// calendar and leaderboard, plus the grocery and cleaning checklists.
package tui

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/sharehouse/internal/calendar"
	"github.com/idilsaglam/sharehouse/internal/checklist"
	"github.com/idilsaglam/sharehouse/internal/household"
	"github.com/idilsaglam/sharehouse/internal/ui"
)

type tab int

const (
	tabHome tab = iota
	tabGroceries
	tabCleaning
	tabCount
)

var tabNames = [tabCount]string{"Home", "Groceries", "Cleaning"}

type dialogKind int

const (
	dialogConfirm dialogKind = iota
	dialogNotice
)

type dialog struct {
	kind    dialogKind
	title   string
	message string
	choreID string
}

type press struct{ x, y int }

type app struct {
	deps Deps
	keys keyMap
	help help.Model

	width, height int

	loaded bool
	state  household.State

	tab       tab
	choreIdx  int
	cal       calendar.View
	selDay    int
	swipe     calendar.Thresholds
	dragStart *press

	groceries checklistScreen
	cleaning  checklistScreen

	dialog *dialog
	status string
}

// Run starts the program and blocks until the user quits.
func Run(deps Deps) error {
	p := tea.NewProgram(newApp(deps), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func newApp(deps Deps) app {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	w, h := ui.TermSize()
	today := deps.Now()
	return app{
		deps:      deps,
		keys:      defaultKeys(),
		help:      help.New(),
		width:     w,
		height:    h,
		state:     household.Initial(deps.Seed),
		cal:       calendar.NewView(today),
		selDay:    today.Day(),
		swipe:     calendar.Thresholds{Claim: deps.Gesture.Claim, Swipe: deps.Gesture.Swipe},
		groceries: newChecklistScreen(checklist.Grocery, "Groceries 🛒"),
		cleaning:  newChecklistScreen(checklist.Cleaning, "Cleaning 🧽"),
	}
}

func (m app) Init() tea.Cmd { return cmdLoad(m.deps) }

func (m app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case loadedMsg:
		m.loaded = true
		m.state = msg.state
		m.groceries = m.groceries.sync(m.state.Groceries)
		m.cleaning = m.cleaning.sync(m.state.Cleaning)
		m.deps.Logger.Info("state.loaded",
			"chores", len(m.state.Chores.Chores()),
			"points", m.state.Chores.Points(),
			"groceries", m.state.Groceries.Len(),
			"cleaning", m.state.Cleaning.Len())
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.dialog != nil {
			return m.updateDialog(msg), nil
		}
		if !m.inputActive() {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, m.keys.NextTab):
				m.tab = (m.tab + 1) % tabCount
				return m, nil
			case key.Matches(msg, m.keys.PrevTab):
				m.tab = (m.tab + tabCount - 1) % tabCount
				return m, nil
			}
			switch msg.String() {
			case "1", "2", "3":
				m.tab = tab(msg.String()[0] - '1')
				return m, nil
			}
		}

	case tea.MouseMsg:
		if m.dialog == nil && m.tab == tabHome {
			return m.updateMouse(msg), nil
		}
	}

	if !m.loaded {
		return m, nil
	}

	switch m.tab {
	case tabGroceries:
		var (
			next    checklist.List
			changed bool
			cmd     tea.Cmd
		)
		m.groceries, next, changed, cmd = m.groceries.update(msg, m.state.Groceries)
		if changed {
			m.state.Groceries = next
			m.save(household.KeyGroceries)
		}
		return m, cmd

	case tabCleaning:
		var (
			next    checklist.List
			changed bool
			cmd     tea.Cmd
		)
		m.cleaning, next, changed, cmd = m.cleaning.update(msg, m.state.Cleaning)
		if changed {
			m.state.Cleaning = next
			m.save(household.KeyCleaning)
		}
		return m, cmd
	}

	if km, ok := msg.(tea.KeyMsg); ok {
		return m.updateHome(km), nil
	}
	return m, nil
}

func (m app) inputActive() bool {
	switch m.tab {
	case tabGroceries:
		return m.groceries.inputActive()
	case tabCleaning:
		return m.cleaning.inputActive()
	}
	return false
}

func (m app) updateHome(msg tea.KeyMsg) app {
	active := m.state.Chores.Active()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.choreIdx > 0 {
			m.choreIdx--
		}
	case key.Matches(msg, m.keys.Down):
		if m.choreIdx < len(active)-1 {
			m.choreIdx++
		}
	case key.Matches(msg, m.keys.Complete):
		if m.choreIdx < len(active) {
			if p, ok := m.state.Chores.RequestCompletion(active[m.choreIdx].ID); ok {
				m.dialog = &dialog{kind: dialogConfirm, title: p.Title, message: p.Message, choreID: p.ChoreID}
			}
		}
	case key.Matches(msg, m.keys.ToggleCalendar):
		m.cal = m.cal.Toggle()
	case m.cal.Expanded && key.Matches(msg, m.keys.PrevMonth):
		m = m.shiftMonth(-1)
	case m.cal.Expanded && key.Matches(msg, m.keys.NextMonth):
		m = m.shiftMonth(1)
	case m.cal.Expanded && key.Matches(msg, m.keys.PrevDay):
		if m.selDay > 1 {
			m.selDay--
		}
	case m.cal.Expanded && key.Matches(msg, m.keys.NextDay):
		if m.selDay < calendar.DaysIn(m.cal.Displayed.Year(), m.cal.Displayed.Month()) {
			m.selDay++
		}
	case m.cal.Expanded && key.Matches(msg, m.keys.AddEvent):
		if p, ok := m.cal.EventPrompt(calendar.Cell{Day: m.selDay, Current: true}); ok {
			m.dialog = &dialog{kind: dialogNotice, title: p.Title, message: p.Message}
		}
	}
	return m
}

func (m app) shiftMonth(n int) app {
	m.cal = m.cal.Shift(n)
	if last := calendar.DaysIn(m.cal.Displayed.Year(), m.cal.Displayed.Month()); m.selDay > last {
		m.selDay = last
	}
	m.deps.Logger.Debug("calendar.month", "shown", m.cal.Title())
	return m
}

// updateMouse turns a press/release pair on the home screen into a swipe.
// Terminal cells are scaled to the same units as the touch thresholds.
func (m app) updateMouse(msg tea.MouseMsg) app {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.dragStart = &press{x: msg.X, y: msg.Y}
		}
	case tea.MouseActionRelease:
		if m.dragStart == nil {
			return m
		}
		g := calendar.Gesture{
			DX: float64(msg.X-m.dragStart.x) * m.deps.Gesture.CellWidth,
			DY: float64(msg.Y-m.dragStart.y) * m.deps.Gesture.CellHeight,
		}
		m.dragStart = nil
		if !m.cal.Expanded {
			return m
		}
		if n := m.swipe.Months(g); n != 0 {
			m = m.shiftMonth(n)
		}
	}
	return m
}

func (m app) updateDialog(msg tea.KeyMsg) app {
	d := m.dialog
	switch msg.String() {
	case "y", "Y", "enter":
		m.dialog = nil
		if d.kind != dialogConfirm {
			m.deps.Logger.Info("calendar.event_prompt", "message", d.message)
			return m
		}
		return m.confirmChore(d.choreID)
	case "n", "N", "esc", "q":
		m.dialog = nil
	}
	return m
}

func (m app) confirmChore(id string) app {
	before := m.state.Chores.Points()
	next, ok := m.state.Chores.Confirm(id)
	if !ok {
		return m
	}
	m.state.Chores = next
	gained := next.Points() - before
	m.status = fmt.Sprintf("+%d pts", gained)
	if n := len(next.Active()); m.choreIdx >= n && n > 0 {
		m.choreIdx = n - 1
	}
	m.deps.Logger.Info("chore.confirmed", "id", id, "points", gained, "total", next.Points())
	m.save(household.KeyChores, household.KeyPoints)
	return m
}

// save enqueues the keys on the single writer; it never waits for the disk.
func (m app) save(keys ...string) {
	if m.deps.Writer == nil {
		return
	}
	if err := m.state.Save(m.deps.Writer, keys...); err != nil {
		m.deps.Logger.Error("state.save_failed", "keys", keys, "err", err)
	}
}

func (m app) View() string {
	if m.dialog != nil {
		return m.dialogView()
	}
	t := ui.Current()

	var tabs []string
	for i, name := range tabNames {
		label := fmt.Sprintf(" %d %s ", i+1, name)
		if tab(i) == m.tab {
			label = t.Selected.Render(label)
		} else {
			label = t.Muted.Render(label)
		}
		tabs = append(tabs, label)
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if m.status != "" {
		header += "  " + t.Success.Render(m.status)
	}

	var body string
	switch {
	case !m.loaded:
		body = t.Muted.Render("Loading…")
	case m.tab == tabGroceries:
		body = m.groceries.setSize(m.width-4, m.height-6).view()
	case m.tab == tabCleaning:
		body = m.cleaning.setSize(m.width-4, m.height-6).view()
	default:
		body = m.homeView() + "\n" + m.help.View(homeKeys{k: m.keys, expanded: m.cal.Expanded})
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(header + "\n\n" + body)
}
