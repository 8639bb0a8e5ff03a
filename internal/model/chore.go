package model

// Chore is a household task worth a fixed number of points.
type Chore struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Points int    `json:"points" yaml:"points"`
	Done   bool   `json:"done" yaml:"-"`
}

// Person is a leaderboard entry.
type Person struct {
	Name   string `json:"name" yaml:"name"`
	Points int    `json:"points" yaml:"points"`
}
