// Package checklist implements the grocery and cleaning lists.
package checklist

import (
	"strings"

	"github.com/idilsaglam/sharehouse/internal/model"
)

// Kind distinguishes the two lists. Only cleaning tasks can be deleted.
type Kind int

const (
	Grocery Kind = iota
	Cleaning
)

func (k Kind) String() string {
	if k == Cleaning {
		return "cleaning"
	}
	return "grocery"
}

// CanDelete reports whether entries of this list can be removed.
func (k Kind) CanDelete() bool { return k == Cleaning }

// List is an ordered checklist addressed by position. Mutating methods return
// an updated copy; the bool reports whether anything changed.
type List struct {
	kind  Kind
	items []model.Item
}

func New(kind Kind, items []model.Item) List {
	return List{kind: kind, items: clone(items)}
}

// FromTexts builds a fresh list with every entry pending.
func FromTexts(kind Kind, texts []string) List {
	l := List{kind: kind}
	for _, s := range texts {
		l, _ = l.Add(s)
	}
	return l
}

func (l List) Kind() Kind          { return l.kind }
func (l List) Len() int            { return len(l.items) }
func (l List) Items() []model.Item { return clone(l.items) }

// Add appends trimmed text as a pending entry. Blank text is ignored.
func (l List) Add(text string) (List, bool) {
	if strings.TrimSpace(text) == "" {
		return l, false
	}
	items := make([]model.Item, len(l.items), len(l.items)+1)
	copy(items, l.items)
	l.items = append(items, model.NewItem(text))
	return l, true
}

// Toggle flips the done flag of entry i.
func (l List) Toggle(i int) (List, bool) {
	if i < 0 || i >= len(l.items) {
		return l, false
	}
	l.items = clone(l.items)
	l.items[i].Done = !l.items[i].Done
	return l, true
}

// Delete removes entry i. Grocery lists refuse deletion.
func (l List) Delete(i int) (List, bool) {
	if !l.kind.CanDelete() || i < 0 || i >= len(l.items) {
		return l, false
	}
	items := make([]model.Item, 0, len(l.items)-1)
	items = append(items, l.items[:i]...)
	l.items = append(items, l.items[i+1:]...)
	return l, true
}

// Stats counts done and pending entries.
func (l List) Stats() (done, pending int) {
	for _, it := range l.items {
		if it.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

func clone(in []model.Item) []model.Item {
	out := make([]model.Item, len(in))
	copy(out, in)
	return out
}
