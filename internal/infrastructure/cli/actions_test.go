package cli

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/felixgeelhaar/clearwater/pkg/application"
	"github.com/felixgeelhaar/clearwater/pkg/domain/action"
)

func decodeBoard(t *testing.T, out string) application.BoardView {
	t.Helper()
	var view application.BoardView
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("decode board: %v\n%s", err, out)
	}
	return view
}

func TestActionsCmd_JSON(t *testing.T) {
	dir, cleanup := withTempDir(t)
	defer cleanup()
	seedWorkspace(t, dir)

	out := captureStdout(t, func() {
		if err := runCLI(t, "actions", "--json", "--now", fixedNowFlag); err != nil {
			t.Fatalf("actions: %v", err)
		}
	})
	view := decodeBoard(t, out)

	if view.Total != 8 || view.Hidden != 3 || len(view.Items) != 5 {
		t.Fatalf("total=%d hidden=%d items=%d, want 8/3/5", view.Total, view.Hidden, len(view.Items))
	}
	wantOrder := []string{"act-004", "act-001", "act-003", "act-008", "act-006"}
	for i, id := range wantOrder {
		if view.Items[i].ID != id {
			t.Errorf("Items[%d] = %s, want %s", i, view.Items[i].ID, id)
		}
	}
	if view.Items[0].Priority != 20 {
		t.Errorf("top priority = %d, want 20", view.Items[0].Priority)
	}
}

func TestActionsCmd_Flags(t *testing.T) {
	dir, cleanup := withTempDir(t)
	defer cleanup()
	seedWorkspace(t, dir)

	tests := []struct {
		name      string
		args      []string
		wantItems int
		wantFirst string
	}{
		{"show all", []string{"--all"}, 8, "act-004"},
		{"limit", []string{"--limit", "2"}, 2, "act-004"},
		{"overdue", []string{"--filter", "overdue"}, 2, "act-004"},
		{"today", []string{"-f", "today"}, 1, "act-003"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"actions", "--json", "--now", fixedNowFlag}, tt.args...)
			out := captureStdout(t, func() {
				if err := runCLI(t, args...); err != nil {
					t.Fatalf("actions %v: %v", tt.args, err)
				}
			})
			view := decodeBoard(t, out)
			if len(view.Items) != tt.wantItems {
				t.Fatalf("items = %d, want %d", len(view.Items), tt.wantItems)
			}
			if view.Items[0].ID != tt.wantFirst {
				t.Errorf("first = %s, want %s", view.Items[0].ID, tt.wantFirst)
			}
		})
	}
}

func TestActionsCmd_Table(t *testing.T) {
	dir, cleanup := withTempDir(t)
	defer cleanup()
	seedWorkspace(t, dir)

	out := captureStdout(t, func() {
		if err := runCLI(t, "actions", "--now", fixedNowFlag); err != nil {
			t.Fatalf("actions: %v", err)
		}
	})
	if !containsAll(out, "[all 8]", "urgent 6", "overdue 2", "today 1", "Milestone 2 invoice outstanding", "3 more hidden") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestActionsCmd_Errors(t *testing.T) {
	_, cleanup := withTempDir(t)
	defer cleanup()

	if err := runCLI(t, "actions"); !errors.Is(err, application.ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized, got %v", err)
	}
	if err := runCLI(t, "actions", "--filter", "someday"); !errors.Is(err, action.ErrInvalidFilter) {
		t.Errorf("expected ErrInvalidFilter, got %v", err)
	}
	err := runCLI(t, "actions", "--now", "yesterday")
	if err == nil || !strings.Contains(err.Error(), "invalid --now") {
		t.Errorf("expected invalid --now error, got %v", err)
	}
}
