package action

import (
	"slices"
	"time"
)

// Board is a ranked, filtered view with progressive disclosure. Scoring
// happens once in NewBoard; expanding or collapsing only moves the slice
// boundary.
type Board struct {
	Filter     Filter
	MaxVisible int
	ranked     []Ranked
	disclosure *Disclosure
}

// NewBoard ranks items and wraps them in a collapsed or expanded view.
func NewBoard(items []Item, filter Filter, maxVisible int, showAll bool, now time.Time) (*Board, error) {
	ranked, err := Rank(items, filter, now)
	if err != nil {
		return nil, err
	}
	disclosure, err := NewDisclosure(showAll)
	if err != nil {
		return nil, err
	}
	return &Board{
		Filter:     filter,
		MaxVisible: maxVisible,
		ranked:     ranked,
		disclosure: disclosure,
	}, nil
}

// Visible returns a copy of the items currently on screen.
func (b *Board) Visible() []Ranked {
	return slices.Clone(visibleSlice(b.ranked, b.MaxVisible, b.disclosure.Expanded()))
}

// All returns a copy of every ranked item that passed the filter.
func (b *Board) All() []Ranked {
	return slices.Clone(b.ranked)
}

// Len returns the number of items that passed the filter.
func (b *Board) Len() int {
	return len(b.ranked)
}

// HiddenCount returns how many filtered items the collapsed view hides.
func (b *Board) HiddenCount() int {
	return len(b.ranked) - len(b.Visible())
}

// Expanded returns true if the board shows every filtered item.
func (b *Board) Expanded() bool {
	return b.disclosure.Expanded()
}

func (b *Board) Toggle() {
	b.disclosure.Send(EventToggle)
}

func (b *Board) Expand() {
	b.disclosure.Send(EventExpand)
}

func (b *Board) Collapse() {
	b.disclosure.Send(EventCollapse)
}
