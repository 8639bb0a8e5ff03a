package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down       key.Binding
	Complete       key.Binding
	ToggleCalendar key.Binding
	PrevMonth      key.Binding
	NextMonth      key.Binding
	PrevDay        key.Binding
	NextDay        key.Binding
	AddEvent       key.Binding
	NextTab        key.Binding
	PrevTab        key.Binding
	Quit           key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:             key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:           key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Complete:       key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "done")),
		ToggleCalendar: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "week/month")),
		PrevMonth:      key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev month")),
		NextMonth:      key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next month")),
		PrevDay:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "day")),
		NextDay:        key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "day")),
		AddEvent:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "add event")),
		NextTab:        key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next screen")),
		PrevTab:        key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev screen")),
		Quit:           key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// homeKeys is the help.KeyMap for the home screen. Month keys only show
// while the month grid is open.
type homeKeys struct {
	k        keyMap
	expanded bool
}

func (h homeKeys) ShortHelp() []key.Binding {
	out := []key.Binding{h.k.Up, h.k.Down, h.k.Complete, h.k.ToggleCalendar}
	if h.expanded {
		out = append(out, h.k.PrevMonth, h.k.NextMonth, h.k.AddEvent)
	}
	return append(out, h.k.NextTab, h.k.Quit)
}

func (h homeKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.k.Up, h.k.Down, h.k.Complete},
		{h.k.ToggleCalendar, h.k.PrevMonth, h.k.NextMonth, h.k.PrevDay, h.k.NextDay, h.k.AddEvent},
		{h.k.NextTab, h.k.PrevTab, h.k.Quit},
	}
}
