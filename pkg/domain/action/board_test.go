package action

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDisclosure(t *testing.T) {
	d, err := NewDisclosure(false)
	if err != nil {
		t.Fatalf("NewDisclosure() error = %v", err)
	}
	if d.Current() != StateCollapsed {
		t.Fatalf("expected collapsed, got %s", d.Current())
	}

	d.Send(EventCollapse)
	if d.Current() != StateCollapsed {
		t.Errorf("collapse on collapsed view changed state to %s", d.Current())
	}

	d.Send(EventToggle)
	if !d.Expanded() {
		t.Errorf("expected expanded after toggle, got %s", d.Current())
	}

	d.Send(EventExpand)
	if !d.Expanded() {
		t.Errorf("expand on expanded view changed state to %s", d.Current())
	}

	d.Send(EventCollapse)
	if d.Expanded() {
		t.Errorf("expected collapsed after collapse")
	}

	expanded, _ := NewDisclosure(true)
	if !expanded.Expanded() {
		t.Errorf("NewDisclosure(true) should start expanded")
	}
}

func TestBoard_ToggleKeepsRanking(t *testing.T) {
	board, err := NewBoard(sampleItems(), FilterAll, 3, false, testNow)
	if err != nil {
		t.Fatalf("NewBoard() error = %v", err)
	}

	if got := len(board.Visible()); got != 3 {
		t.Fatalf("Visible() len = %d, want 3", got)
	}
	if got := board.HiddenCount(); got != 2 {
		t.Errorf("HiddenCount() = %d, want 2", got)
	}

	before := board.All()
	board.Toggle()

	if !board.Expanded() {
		t.Fatal("expected board to be expanded")
	}
	if got := len(board.Visible()); got != 5 {
		t.Errorf("Visible() len after toggle = %d, want 5", got)
	}
	if board.HiddenCount() != 0 {
		t.Errorf("HiddenCount() after toggle = %d, want 0", board.HiddenCount())
	}
	if diff := cmp.Diff(before, board.All()); diff != "" {
		t.Errorf("toggle changed ranking (-before +after):\n%s", diff)
	}

	board.Collapse()
	if diff := cmp.Diff(before[:3], board.Visible()); diff != "" {
		t.Errorf("collapsed view mismatch (-want +got):\n%s", diff)
	}

	// Callers get copies; editing them leaves the board untouched.
	before[0].Priority = -1
	visible := board.Visible()
	visible[1].Title = "edited"
	if got := board.All(); got[0].Priority == -1 || got[1].Title == "edited" {
		t.Errorf("board ranking changed through a returned slice: %+v", got[:2])
	}
}

func TestBoard_FewerItemsThanLimit(t *testing.T) {
	board, err := NewBoard(sampleItems()[:2], FilterAll, 5, false, testNow)
	if err != nil {
		t.Fatalf("NewBoard() error = %v", err)
	}
	if board.Len() != 2 || len(board.Visible()) != 2 {
		t.Errorf("expected 2 items, got Len=%d Visible=%d", board.Len(), len(board.Visible()))
	}
	if board.HiddenCount() != 0 {
		t.Errorf("HiddenCount() = %d, want 0", board.HiddenCount())
	}
}

func TestBoard_InvalidItem(t *testing.T) {
	_, err := NewBoard([]Item{{ID: "x", Kind: "nope", Urgency: UrgencyLow}}, FilterAll, 5, false, testNow)
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}
}
