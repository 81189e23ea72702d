package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/felixgeelhaar/clearwater/pkg/application"
	"github.com/felixgeelhaar/clearwater/pkg/domain/action"
	"github.com/felixgeelhaar/clearwater/pkg/domain/procurement"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{285000, "$285,000"},
		{96000, "$96,000"},
		{950, "$950"},
	}
	for _, tt := range tests {
		if got := formatPrice(tt.price); got != tt.want {
			t.Errorf("formatPrice(%v) = %q, want %q", tt.price, got, tt.want)
		}
	}
}

func TestFormatDue(t *testing.T) {
	overdue := fixedNow.Add(-26 * time.Hour)
	today := fixedNow.Add(3 * time.Hour)
	later := fixedNow.Add(72 * time.Hour)

	tests := []struct {
		name string
		item action.Item
		want string
	}{
		{"no due date", action.Item{}, "-"},
		{"overdue", action.Item{DueDate: &overdue}, "overdue Mar 9"},
		{"today", action.Item{DueDate: &today}, "today 13:00"},
		{"later", action.Item{DueDate: &later}, "Mar 13"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatDue(tt.item, fixedNow); got != tt.want {
				t.Errorf("formatDue() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatTitle(t *testing.T) {
	progress := 30
	item := action.Item{Title: "Wet well sizing", Progress: &progress, ClientFacing: true}
	if got := formatTitle(item); got != "Wet well sizing (30%) *" {
		t.Errorf("formatTitle() = %q", got)
	}
}

func TestFilterBar(t *testing.T) {
	got := filterBar(action.FilterOverdue, application.CountsView{All: 8, Urgent: 6, Overdue: 2, Today: 1})
	want := "all 8  urgent 6  [overdue 2]  today 1"
	if got != want {
		t.Errorf("filterBar() = %q, want %q", got, want)
	}
}

func TestRenderBoard_Empty(t *testing.T) {
	var buf bytes.Buffer
	renderBoard(&buf, application.BoardView{Filter: action.FilterToday}, application.CountsView{}, fixedNow)
	if !strings.Contains(buf.String(), "No action items match this filter.") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestCriteriaLine(t *testing.T) {
	if got := criteriaLine(procurement.DefaultCriteria()); strings.Contains(got, "not normalized") {
		t.Errorf("default criteria flagged: %s", got)
	}
	got := criteriaLine(procurement.Criteria{Price: 50, Quality: 50, Delivery: 50, Support: 50})
	if !strings.Contains(got, "(sum 200) - not normalized") {
		t.Errorf("criteriaLine() = %q", got)
	}
}

func TestRenderResult(t *testing.T) {
	comparisons := application.SampleComparisons()
	result, err := procurement.Compare(comparisons[0], procurement.DefaultCriteria())
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}

	var buf bytes.Buffer
	renderResult(&buf, result)
	out := buf.String()
	if !containsAll(out, "Secondary treatment package (riverside-secondary)", "$285,000",
		"Best score: sludge-system-2", "Recommended: mbr-system-1 (differs from best score)") {
		t.Errorf("unexpected output:\n%s", out)
	}

	buf.Reset()
	renderResult(&buf, &procurement.Result{ComparisonID: "empty", Title: "Nothing yet"})
	if !strings.Contains(buf.String(), "No quotes in this comparison.") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}
