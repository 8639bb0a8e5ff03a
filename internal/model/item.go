package model

import (
	"strings"

	"github.com/google/uuid"
)

// Item is one checklist entry (grocery or cleaning task).
// Name and done flag live in the same record so positions can't drift apart.
type Item struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// NewItem trims text and assigns a fresh id. Callers reject blank text first.
func NewItem(text string) Item {
	return Item{ID: uuid.NewString(), Text: strings.TrimSpace(text)}
}
