package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/sharehouse/internal/household"
)

// cmdLoad decodes stored state off the event loop. It runs once, at startup.
func cmdLoad(deps Deps) tea.Cmd {
	if deps.State != nil {
		st := *deps.State
		return func() tea.Msg { return loadedMsg{state: st} }
	}
	return func() tea.Msg {
		st := household.Load(deps.Store, deps.Seed, deps.Logger)
		return loadedMsg{state: st}
	}
}
