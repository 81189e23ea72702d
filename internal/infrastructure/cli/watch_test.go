package cli

import (
	"errors"
	"testing"

	"github.com/felixgeelhaar/clearwater/pkg/application"
)

func TestWatchCmd_Once(t *testing.T) {
	dir, cleanup := withTempDir(t)
	defer cleanup()
	seedWorkspace(t, dir)
	t.Setenv("CLEARWATER_WATCH_ONCE", "true")

	out := captureStdout(t, func() {
		if err := runCLI(t, "watch"); err != nil {
			t.Fatalf("watch: %v", err)
		}
	})
	if !containsAll(out, "[all 8]", "Secondary treatment package", "UV disinfection") {
		t.Errorf("unexpected output:\n%s", out)
	}

	out = captureStdout(t, func() {
		if err := runCLI(t, "watch", "--comparison", "cedar-falls-uv"); err != nil {
			t.Fatalf("watch --comparison: %v", err)
		}
	})
	if containsAll(out, "Secondary treatment package") {
		t.Errorf("filtered watch printed other comparisons:\n%s", out)
	}

	out = captureStdout(t, func() {
		if err := runCLI(t, "watch", "--comparison", "missing"); err != nil {
			t.Fatalf("watch with a bad comparison should keep running: %v", err)
		}
	})
	if !containsAll(out, "Comparison missing unavailable") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestWatchCmd_NotInitialized(t *testing.T) {
	_, cleanup := withTempDir(t)
	defer cleanup()
	t.Setenv("CLEARWATER_WATCH_ONCE", "true")

	if err := runCLI(t, "watch"); !errors.Is(err, application.ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized, got %v", err)
	}
}
