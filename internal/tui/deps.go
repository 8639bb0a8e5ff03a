package tui

import (
	"log/slog"
	"time"

	"github.com/idilsaglam/sharehouse/internal/config"
	"github.com/idilsaglam/sharehouse/internal/household"
	"github.com/idilsaglam/sharehouse/internal/model"
)

// Deps is everything the app needs from outside the terminal.
type Deps struct {
	Store  household.Getter
	Writer household.Enqueuer
	Seed   household.Seed
	// State, when set, was already loaded from Store and is used as is.
	State *household.State

	User       string
	Housemates []model.Person
	Gesture    config.Gesture

	Now    func() time.Time
	Logger *slog.Logger
}
