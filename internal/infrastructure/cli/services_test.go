package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/felixgeelhaar/clearwater/internal/infrastructure/config"
)

func TestGetProjectRoot(t *testing.T) {
	dir, cleanup := withTempDir(t)
	defer cleanup()
	resetFlags()
	defer resetFlags()

	cwd, _ := os.Getwd()
	root, err := getProjectRoot()
	if err != nil || root != cwd {
		t.Errorf("getProjectRoot() = %q, %v; want %q", root, err, cwd)
	}

	projectPath = dir
	root, err = getProjectRoot()
	if err != nil {
		t.Fatalf("getProjectRoot() error = %v", err)
	}
	if filepath.Base(root) != filepath.Base(dir) {
		t.Errorf("getProjectRoot() = %q, want %q", root, dir)
	}

	projectPath = filepath.Join(dir, "missing")
	if _, err := getProjectRoot(); err == nil {
		t.Error("expected error for a missing project path")
	}

	file := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(file, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	projectPath = file
	if _, err := getProjectRoot(); err == nil {
		t.Error("expected error for a file project path")
	}
}

func TestNewLogger(t *testing.T) {
	dir, cleanup := withTempDir(t)
	defer cleanup()
	resetFlags()
	defer resetFlags()

	if _, err := newLogger(dir); err != nil {
		t.Fatalf("newLogger() default error = %v", err)
	}

	logLevel = "loud"
	if _, err := newLogger(dir); err == nil {
		t.Error("expected error for an unknown --log-level")
	}

	logLevel = ""
	if err := os.MkdirAll(filepath.Join(dir, ".clearwater"), 0700); err != nil {
		t.Fatal(err)
	}
	if err := config.SaveLogConfig(dir, &config.LogConfig{Level: "debug", Format: "json"}); err != nil {
		t.Fatalf("SaveLogConfig: %v", err)
	}
	logger, err := newLogger(dir)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	if logger == nil {
		t.Fatal("expected a logger")
	}
}

func TestCurrentActor(t *testing.T) {
	t.Setenv("USER", "alice")
	if got := currentActor(); got != "alice" {
		t.Errorf("currentActor() = %q, want alice", got)
	}
	t.Setenv("USER", "")
	if got := currentActor(); got != "cli" {
		t.Errorf("currentActor() = %q, want cli", got)
	}
}
