package application

import (
	"time"

	"github.com/felixgeelhaar/clearwater/pkg/domain/action"
	"github.com/felixgeelhaar/clearwater/pkg/domain/events"
	"github.com/felixgeelhaar/clearwater/pkg/domain/procurement"
)

// BoardView is the serializable form of an action board.
type BoardView struct {
	Filter   action.Filter   `json:"filter"`
	Total    int             `json:"total"`
	Hidden   int             `json:"hidden"`
	Expanded bool            `json:"expanded"`
	Items    []action.Ranked `json:"items"`
}

// NewBoardView captures the visible slice of a board.
func NewBoardView(b *action.Board) BoardView {
	return BoardView{
		Filter:   b.Filter,
		Total:    b.Len(),
		Hidden:   b.HiddenCount(),
		Expanded: b.Expanded(),
		Items:    b.Visible(),
	}
}

// CountsView is the per-filter badge count shown on the filter bar.
type CountsView struct {
	All     int `json:"all"`
	Urgent  int `json:"urgent"`
	Overdue int `json:"overdue"`
	Today   int `json:"today"`
}

func NewCountsView(counts map[action.Filter]int) CountsView {
	return CountsView{
		All:     counts[action.FilterAll],
		Urgent:  counts[action.FilterUrgent],
		Overdue: counts[action.FilterOverdue],
		Today:   counts[action.FilterToday],
	}
}

// ComparisonSummary is a one-line description of a stored comparison.
type ComparisonSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	ProjectID string `json:"project_id,omitempty"`
	Quotes    int    `json:"quotes"`
	Primary   string `json:"recommended,omitempty"`
}

func SummarizeComparisons(comparisons []procurement.Comparison) []ComparisonSummary {
	out := make([]ComparisonSummary, 0, len(comparisons))
	for _, c := range comparisons {
		out = append(out, ComparisonSummary{
			ID:        c.ID,
			Title:     c.Title,
			ProjectID: c.ProjectID,
			Quotes:    len(c.Quotes),
			Primary:   c.Recommendation.Primary,
		})
	}
	return out
}

// CriteriaView reports weights together with their sum, which need not be 100.
type CriteriaView struct {
	procurement.Criteria
	Sum        int  `json:"sum"`
	Normalized bool `json:"normalized"`
}

func NewCriteriaView(c procurement.Criteria) CriteriaView {
	return CriteriaView{Criteria: c, Sum: c.Sum(), Normalized: c.CheckSum() == nil}
}

// CriteriaChange is one recorded update of the stored weights.
type CriteriaChange struct {
	At       time.Time             `json:"at"`
	Actor    string                `json:"actor"`
	Type     string                `json:"type"`
	Criteria procurement.Criteria  `json:"criteria"`
	Previous *procurement.Criteria `json:"previous,omitempty"`
}

// CriteriaHistory lists weight changes and whether the audit chain verified.
type CriteriaHistory struct {
	Changes    []CriteriaChange   `json:"changes"`
	Intact     bool               `json:"intact"`
	Violations []events.Violation `json:"violations,omitempty"`
}
