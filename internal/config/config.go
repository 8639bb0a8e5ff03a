// Package config loads sharehouse settings from YAML with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/sharehouse/internal/model"
)

const (
	EnvHome   = "SHAREHOUSE_HOME"
	EnvConfig = "SHAREHOUSE_CONFIG"

	defaultDirName  = ".sharehouse"
	defaultFileName = "config.yaml"
)

// ErrInvalid marks a config file that parsed but holds unusable values.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	// DataDir holds storage.json and logs/. Resolved from flags and env,
	// never read from the file itself.
	DataDir string `yaml:"-"`

	Theme string `yaml:"theme"`
	Debug bool   `yaml:"debug"`

	User       string         `yaml:"user"`
	Housemates []model.Person `yaml:"housemates"`

	Chores    []model.Chore `yaml:"chores"`
	Groceries []string      `yaml:"groceries"`
	Cleaning  []string      `yaml:"cleaning"`

	Gesture Gesture `yaml:"gesture"`
}

// Gesture tunes mouse-drag month swipes. Claim and Swipe are in the same
// units as a touch screen; CellWidth/CellHeight convert terminal cells to them.
type Gesture struct {
	Claim      float64 `yaml:"claim"`
	Swipe      float64 `yaml:"swipe"`
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// Default is the configuration used when no file exists.
func Default() Config {
	return Config{
		Theme: "classic",
		User:  "You",
		Housemates: []model.Person{
			{Name: "Lily", Points: 120},
			{Name: "Elle", Points: 95},
		},
		Chores: []model.Chore{
			{ID: "1", Name: "Fold washing", Points: 10},
			{ID: "2", Name: "Pack dishwasher", Points: 5},
			{ID: "3", Name: "Cook dinner", Points: 20},
		},
		Groceries: []string{"Milk", "Eggs", "Bread"},
		Cleaning:  []string{"Vacuum lounge", "Clean bathroom", "Take out bins"},
		Gesture: Gesture{
			Claim:      20,
			Swipe:      50,
			CellWidth:  8,
			CellHeight: 16,
		},
	}
}

// ResolveDataDir picks the data directory: flag, then $SHAREHOUSE_HOME,
// then ~/.sharehouse.
func ResolveDataDir(flagValue string) (string, error) {
	if v := strings.TrimSpace(flagValue); v != "" {
		return filepath.Abs(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvHome)); v != "" {
		return filepath.Abs(v)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, defaultDirName), nil
}

// ResolvePath picks the config file: flag, then $SHAREHOUSE_CONFIG,
// then config.yaml in the data directory.
func ResolvePath(flagValue, dataDir string) string {
	if v := strings.TrimSpace(flagValue); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv(EnvConfig)); v != "" {
		return v
	}
	return filepath.Join(dataDir, defaultFileName)
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values a YAML file could get wrong.
func (c Config) Validate() error {
	if strings.TrimSpace(c.User) == "" {
		return fmt.Errorf("%w: user must not be empty", ErrInvalid)
	}
	switch strings.ToLower(c.Theme) {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("%w: unknown theme %q", ErrInvalid, c.Theme)
	}
	seen := make(map[string]bool, len(c.Chores))
	for i, ch := range c.Chores {
		if strings.TrimSpace(ch.ID) == "" {
			return fmt.Errorf("%w: chores[%d].id is empty", ErrInvalid, i)
		}
		if seen[ch.ID] {
			return fmt.Errorf("%w: chores[%d].id %q is duplicated", ErrInvalid, i, ch.ID)
		}
		seen[ch.ID] = true
		if ch.Points < 0 {
			return fmt.Errorf("%w: chores[%d].points must be >= 0", ErrInvalid, i)
		}
	}
	g := c.Gesture
	if g.Claim <= 0 || g.Swipe <= 0 || g.CellWidth <= 0 || g.CellHeight <= 0 {
		return fmt.Errorf("%w: gesture values must be positive", ErrInvalid)
	}
	return nil
}
