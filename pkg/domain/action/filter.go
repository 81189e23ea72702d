package action

import (
	"fmt"
	"time"
)

// Filter selects which ranked items appear in a view.
type Filter string

const (
	FilterAll     Filter = "all"
	FilterUrgent  Filter = "urgent"
	FilterOverdue Filter = "overdue"
	FilterToday   Filter = "today"
)

// AllFilters returns the filters in the order the filter bar shows them.
func AllFilters() []Filter {
	return []Filter{FilterAll, FilterUrgent, FilterOverdue, FilterToday}
}

// IsValid returns true if the filter is supported.
func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterUrgent, FilterOverdue, FilterToday:
		return true
	default:
		return false
	}
}

func (f Filter) String() string {
	return string(f)
}

// Next returns the filter that follows f on the filter bar, wrapping around.
func (f Filter) Next() Filter {
	filters := AllFilters()
	for i, candidate := range filters {
		if candidate == f {
			return filters[(i+1)%len(filters)]
		}
	}
	return FilterAll
}

// Matches reports whether a ranked item passes the filter at now.
func (f Filter) Matches(r Ranked, now time.Time) bool {
	switch f {
	case FilterUrgent:
		return r.Urgency.IsHigh() || r.Priority >= UrgentThreshold
	case FilterOverdue:
		return r.IsOverdue(now)
	case FilterToday:
		return r.IsDueToday(now)
	case FilterAll:
		return true
	default:
		return false
	}
}

// ParseFilter parses a string into a Filter. The empty string selects all.
func ParseFilter(s string) (Filter, error) {
	if s == "" {
		return FilterAll, nil
	}
	f := Filter(s)
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %q (expected: all, urgent, overdue, or today)", ErrInvalidFilter, s)
	}
	return f, nil
}

// CountByFilter returns how many items each filter would show.
func CountByFilter(items []Item, now time.Time) (map[Filter]int, error) {
	counts := make(map[Filter]int, len(AllFilters()))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		priority, err := ComputePriority(item, now)
		if err != nil {
			return nil, err
		}
		r := Ranked{Item: item, Priority: priority}
		for _, f := range AllFilters() {
			if f.Matches(r, now) {
				counts[f]++
			}
		}
	}
	return counts, nil
}
