package tui

import "github.com/idilsaglam/sharehouse/internal/household"

type loadedMsg struct {
	state household.State
}
