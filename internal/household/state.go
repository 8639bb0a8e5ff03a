// Package household ties the chore tracker and both checklists to key-value
// storage: loading with seed fallback and encoding each key for saving.
package household

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/idilsaglam/sharehouse/internal/checklist"
	"github.com/idilsaglam/sharehouse/internal/chores"
	"github.com/idilsaglam/sharehouse/internal/config"
	"github.com/idilsaglam/sharehouse/internal/model"
)

// Storage keys.
const (
	KeyChores    = "CHORES"
	KeyPoints    = "POINTS"
	KeyGroceries = "GROCERIES"
	KeyCleaning  = "CLEANING"
)

// AllKeys lists every key in save order.
var AllKeys = []string{KeyChores, KeyPoints, KeyGroceries, KeyCleaning}

var errNull = errors.New("null value")

type Getter interface {
	Get(key string) (string, bool)
}

type Enqueuer interface {
	Enqueue(key, value string) bool
}

// Seed is the state used before anything has been stored.
type Seed struct {
	Chores    []model.Chore
	Groceries []string
	Cleaning  []string
}

func SeedFrom(cfg config.Config) Seed {
	return Seed{Chores: cfg.Chores, Groceries: cfg.Groceries, Cleaning: cfg.Cleaning}
}

// State is everything the app persists.
type State struct {
	Chores    chores.Tracker
	Groceries checklist.List
	Cleaning  checklist.List
}

func Initial(seed Seed) State {
	return State{
		Chores:    chores.NewTracker(seed.Chores, 0),
		Groceries: checklist.FromTexts(checklist.Grocery, seed.Groceries),
		Cleaning:  checklist.FromTexts(checklist.Cleaning, seed.Cleaning),
	}
}

// Load starts from the seed and replaces each part found in storage.
// Missing keys are expected on first run; malformed values are logged and
// the seed value is kept.
func Load(g Getter, seed Seed, log *slog.Logger) State {
	st := Initial(seed)

	if raw, ok := g.Get(KeyChores); ok {
		if list, err := decodeChores(raw); err != nil {
			log.Warn("household.load_failed", "key", KeyChores, "err", err)
		} else {
			st.Chores = chores.NewTracker(list, st.Chores.Points())
		}
	}
	if raw, ok := g.Get(KeyPoints); ok {
		if pts, err := decodePoints(raw); err != nil {
			log.Warn("household.load_failed", "key", KeyPoints, "err", err)
		} else {
			st.Chores = st.Chores.WithPoints(pts)
		}
	}
	if raw, ok := g.Get(KeyGroceries); ok {
		if items, err := decodeItems(raw); err != nil {
			log.Warn("household.load_failed", "key", KeyGroceries, "err", err)
		} else {
			st.Groceries = checklist.New(checklist.Grocery, items)
		}
	}
	if raw, ok := g.Get(KeyCleaning); ok {
		if items, err := decodeItems(raw); err != nil {
			log.Warn("household.load_failed", "key", KeyCleaning, "err", err)
		} else {
			st.Cleaning = checklist.New(checklist.Cleaning, items)
		}
	}
	return st
}

// Encode serialises one key of the state.
func (s State) Encode(key string) (string, error) {
	switch key {
	case KeyChores:
		return marshal(s.Chores.Chores())
	case KeyPoints:
		return strconv.Itoa(s.Chores.Points()), nil
	case KeyGroceries:
		return marshal(s.Groceries.Items())
	case KeyCleaning:
		return marshal(s.Cleaning.Items())
	}
	return "", fmt.Errorf("unknown key %q", key)
}

// Save enqueues the given keys, or every key when none are named.
// Saving is fire-and-forget; write errors surface through the writer.
func (s State) Save(w Enqueuer, keys ...string) error {
	if len(keys) == 0 {
		keys = AllKeys
	}
	for _, k := range keys {
		v, err := s.Encode(k)
		if err != nil {
			return err
		}
		w.Enqueue(k, v)
	}
	return nil
}

func marshal(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("json marshal: %w", err)
	}
	return string(b), nil
}

func decodeChores(raw string) ([]model.Chore, error) {
	var out []model.Chore
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if out == nil {
		return nil, errNull
	}
	seen := make(map[string]bool, len(out))
	for i, c := range out {
		switch {
		case strings.TrimSpace(c.ID) == "":
			return nil, fmt.Errorf("chores[%d]: empty id", i)
		case seen[c.ID]:
			return nil, fmt.Errorf("chores[%d]: duplicate id %q", i, c.ID)
		case c.Points < 0:
			return nil, fmt.Errorf("chores[%d]: negative points %d", i, c.Points)
		}
		seen[c.ID] = true
	}
	return out, nil
}

func decodePoints(raw string) (int, error) {
	pts, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	if pts < 0 {
		return 0, fmt.Errorf("negative total %d", pts)
	}
	return pts, nil
}

func decodeItems(raw string) ([]model.Item, error) {
	var out []model.Item
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if out == nil {
		return nil, errNull
	}
	for i := range out {
		if out[i].ID == "" {
			out[i].ID = uuid.NewString()
		}
	}
	return out, nil
}
