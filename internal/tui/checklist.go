package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/sharehouse/internal/checklist"
	"github.com/idilsaglam/sharehouse/internal/model"
	"github.com/idilsaglam/sharehouse/internal/ui"
)

// itemRow adapts model.Item to bubbles/list.Item
type itemRow struct {
	model.Item
}

func (r itemRow) Title() string       { return r.Text }
func (r itemRow) Description() string { return "" }
func (r itemRow) FilterValue() string { return r.Text }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(itemRow)
	t := ui.Current()

	box := t.Muted.Render(t.BoxUnchecked)
	text := it.Text
	if it.Done {
		box = t.Success.Render(t.BoxChecked)
		text = t.Done.Render(text)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s", prefix, box, text)
}

// checklistScreen is one checklist tab: a list plus an inline add bar.
type checklistScreen struct {
	kind  checklist.Kind
	label string
	list  list.Model

	adding bool
	ti     textinput.Model
	addErr string
}

var (
	addBind    = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	toggleBind = key.NewBinding(key.WithKeys(" ", "enter", "x"), key.WithHelp("space", "toggle"))
	deleteBind = key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete"))
)

func newChecklistScreen(kind checklist.Kind, label string) checklistScreen {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	// Positions index the checklist directly, so no filtered views.
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Muted
	l.Styles.PaginationStyle = ui.Current().Muted
	l.SetStatusBarItemName("item", "items")

	binds := []key.Binding{addBind, toggleBind}
	if kind.CanDelete() {
		binds = append(binds, deleteBind)
	}
	l.AdditionalShortHelpKeys = func() []key.Binding { return binds }
	l.AdditionalFullHelpKeys = func() []key.Binding { return binds }

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	return checklistScreen{kind: kind, label: label, list: l, ti: ti}
}

// sync rebuilds the visible rows from the checklist.
func (s checklistScreen) sync(cl checklist.List) checklistScreen {
	items := cl.Items()
	rows := make([]list.Item, 0, len(items))
	for _, it := range items {
		rows = append(rows, itemRow{it})
	}
	idx := s.list.Index()
	s.list.SetItems(rows)
	if idx >= len(rows) {
		idx = len(rows) - 1
	}
	if idx >= 0 {
		s.list.Select(idx)
	}

	t := ui.Current()
	done, pending := cl.Stats()
	s.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		s.label,
		t.Success.Render(t.SymDone), done,
		t.Pending.Render(t.SymPending), pending,
		t.Accent.Render("Total"), cl.Len(),
	)
	return s
}

func (s checklistScreen) inputActive() bool { return s.adding }

// update handles a message for this tab. It returns the possibly changed
// checklist and whether it changed, so the caller can persist it.
func (s checklistScreen) update(msg tea.Msg, cl checklist.List) (checklistScreen, checklist.List, bool, tea.Cmd) {
	if s.adding {
		if km, ok := msg.(tea.KeyMsg); ok {
			switch km.String() {
			case "enter":
				next, changed := cl.Add(s.ti.Value())
				if !changed {
					s.addErr = "Item cannot be empty"
					return s, cl, false, nil
				}
				s.adding = false
				s.addErr = ""
				s.ti.SetValue("")
				s.ti.Blur()
				s = s.sync(next)
				s.list.Select(next.Len() - 1)
				return s, next, true, nil
			case "esc":
				s.adding = false
				s.addErr = ""
				s.ti.SetValue("")
				s.ti.Blur()
				return s, cl, false, nil
			}
		}
		var cmd tea.Cmd
		s.ti, cmd = s.ti.Update(msg)
		return s, cl, false, cmd
	}

	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, addBind):
			s.adding = true
			s.ti.SetValue("")
			s.ti.Placeholder = "Add a " + s.kind.String() + " item"
			return s, cl, false, s.ti.Focus()

		case key.Matches(km, toggleBind):
			next, changed := cl.Toggle(s.list.Index())
			if changed {
				s = s.sync(next)
			}
			return s, next, changed, nil

		case key.Matches(km, deleteBind):
			next, changed := cl.Delete(s.list.Index())
			if changed {
				s = s.sync(next)
			}
			return s, next, changed, nil
		}
	}

	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cl, false, cmd
}

func (s checklistScreen) setSize(w, h int) checklistScreen {
	listHeight := h
	if s.adding {
		listHeight = h - 4
	}
	s.list.SetSize(w, listHeight)
	return s
}

func (s checklistScreen) view() string {
	content := s.list.View()
	if !s.adding {
		return content
	}
	title := "Add " + s.kind.String() + " item"
	if s.addErr != "" {
		title += " - " + ui.Current().Error.Render(s.addErr)
	}
	bar := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return content + "\n" + bar.Render(title+"\n"+s.ti.View())
}
