package action

import (
	"cmp"
	"slices"
	"time"
)

// Priority boosts stacked on top of a kind's base priority.
const (
	OverdueBoost      = 5
	DueSoonBoost      = 2
	ClientFacingBoost = 1

	// DueSoonDays is the window (in rounded-up days) that earns DueSoonBoost.
	DueSoonDays = 1

	// UrgentThreshold is the computed priority at which an item counts as urgent.
	UrgentThreshold = 10
)

// Ranked is an item annotated with its computed priority.
type Ranked struct {
	Item     `yaml:",inline"`
	Priority int `json:"computed_priority" yaml:"computed_priority"`
}

// ComputePriority scores an item against now. Scores are not clamped, so
// stacked boosts may exceed the nominal range.
//
// An overdue item also falls inside the due-soon window and receives both
// boosts.
func ComputePriority(item Item, now time.Time) (int, error) {
	base, ok := item.Kind.BasePriority()
	if !ok {
		return 0, &ValidationError{ItemID: item.ID, Err: ErrUnknownKind}
	}

	priority := base + item.Urgency.Boost()

	if item.IsOverdue(now) {
		priority += OverdueBoost
	}
	if days, ok := item.DaysUntilDue(now); ok && days <= DueSoonDays {
		priority += DueSoonBoost
	}
	if item.ClientFacing {
		priority += ClientFacingBoost
	}

	return priority, nil
}

// Rank validates, scores and filters items, returning them in descending
// priority order. Ties keep their input order.
func Rank(items []Item, filter Filter, now time.Time) ([]Ranked, error) {
	if !filter.IsValid() {
		return nil, ErrInvalidFilter
	}

	ranked := make([]Ranked, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		priority, err := ComputePriority(item, now)
		if err != nil {
			return nil, err
		}
		r := Ranked{Item: item, Priority: priority}
		if filter.Matches(r, now) {
			ranked = append(ranked, r)
		}
	}

	slices.SortStableFunc(ranked, func(a, b Ranked) int {
		return cmp.Compare(b.Priority, a.Priority)
	})
	return ranked, nil
}

// Prioritize ranks items and applies progressive disclosure: only the first
// maxVisible entries are returned unless showAll is set.
func Prioritize(items []Item, filter Filter, maxVisible int, showAll bool, now time.Time) ([]Ranked, error) {
	ranked, err := Rank(items, filter, now)
	if err != nil {
		return nil, err
	}
	return visibleSlice(ranked, maxVisible, showAll), nil
}

func visibleSlice(ranked []Ranked, maxVisible int, showAll bool) []Ranked {
	if showAll || maxVisible <= 0 || maxVisible >= len(ranked) {
		return ranked
	}
	return ranked[:maxVisible]
}
