// Package action ranks the action items surfaced on the project dashboard.
//
// Items are read-only inputs: every ranking returns a freshly allocated
// slice and never writes back to the source collection.
package action

import (
	"fmt"
	"time"
)

// Item is a single thing a project is waiting on.
type Item struct {
	ID           string     `json:"id" yaml:"id"`
	ProjectID    string     `json:"project_id" yaml:"project_id"`
	ProjectName  string     `json:"project_name" yaml:"project_name"`
	Title        string     `json:"title" yaml:"title"`
	Description  string     `json:"description,omitempty" yaml:"description,omitempty"`
	Kind         Kind       `json:"type" yaml:"type"`
	Urgency      Urgency    `json:"urgency" yaml:"urgency"`
	DueDate      *time.Time `json:"due_date,omitempty" yaml:"due_date,omitempty"`
	Progress     *int       `json:"progress,omitempty" yaml:"progress,omitempty"`
	ClientFacing bool       `json:"client_facing,omitempty" yaml:"client_facing,omitempty"`
}

// Validate checks the item against the closed kind and urgency sets and the
// progress range.
func (i Item) Validate() error {
	if i.ID == "" {
		return &ValidationError{Err: ErrMissingID}
	}
	if !i.Kind.IsValid() {
		return &ValidationError{ItemID: i.ID, Err: fmt.Errorf("%w: %q", ErrUnknownKind, i.Kind)}
	}
	if !i.Urgency.IsValid() {
		return &ValidationError{ItemID: i.ID, Err: fmt.Errorf("%w: %q", ErrInvalidUrgency, i.Urgency)}
	}
	if i.Progress != nil && (*i.Progress < 0 || *i.Progress > 100) {
		return &ValidationError{ItemID: i.ID, Err: fmt.Errorf("%w: %d", ErrProgressOutOfRange, *i.Progress)}
	}
	return nil
}

// HasDueDate returns true if the item carries a due date.
func (i Item) HasDueDate() bool {
	return i.DueDate != nil
}

// IsOverdue returns true if the due date is strictly before now.
func (i Item) IsOverdue(now time.Time) bool {
	return i.DueDate != nil && i.DueDate.Before(now)
}

// IsDueToday compares calendar dates in now's location, not elapsed time.
func (i Item) IsDueToday(now time.Time) bool {
	if i.DueDate == nil {
		return false
	}
	dy, dm, dd := i.DueDate.In(now.Location()).Date()
	ny, nm, nd := now.Date()
	return dy == ny && dm == nm && dd == nd
}

// DaysUntilDue returns the whole days until the due date, rounded up.
// Past due dates yield zero or negative values. The second result is false
// when the item has no due date.
func (i Item) DaysUntilDue(now time.Time) (int, bool) {
	if i.DueDate == nil {
		return 0, false
	}
	return ceilDays(i.DueDate.Sub(now)), true
}

func ceilDays(d time.Duration) int {
	const day = 24 * time.Hour
	days := int(d / day)
	if d%day > 0 {
		days++
	}
	return days
}
