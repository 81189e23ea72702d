package cli

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/felixgeelhaar/clearwater/internal/infrastructure/wiring"
)

const fixedNowFlag = "2026-03-10T10:00:00Z"

var fixedNow = time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("read stdout: %v", err)
	}
	return buf.String()
}

func withTempDir(t *testing.T) (string, func()) {
	t.Helper()

	dir, err := os.MkdirTemp("", "clearwater-cli-test-*")
	if err != nil {
		t.Fatalf("temp dir: %v", err)
	}
	old, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}

	return dir, func() {
		_ = os.Chdir(old)
		_ = os.RemoveAll(dir)
	}
}

// resetFlags restores every command flag variable, since cobra keeps values
// between Execute calls on the shared RootCmd.
func resetFlags() {
	projectPath = ""
	logLevel = ""
	initSamples = false
	actionsFilter = "all"
	actionsAll = false
	actionsLimit = 0
	actionsJSON = false
	actionsNow = ""
	procureJSON = false
	historyLimit = 10
	weightFlags.Price = unsetWeight
	weightFlags.Quality = unsetWeight
	weightFlags.Delivery = unsetWeight
	weightFlags.Support = unsetWeight
	watchComparison = ""
	watchDebounce = 0
	mcpTransport = "stdio"
	mcpAddr = ":8080"
}

// runCLI executes the root command with args and returns the error.
func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	resetFlags()
	RootCmd.SetArgs(args)
	return RootCmd.Execute()
}

// seedWorkspace initializes dir with sample data dated relative to fixedNow.
func seedWorkspace(t *testing.T, dir string) *wiring.AppServices {
	t.Helper()
	services, err := wiring.BuildAppServices(dir, nil)
	if err != nil {
		t.Fatalf("BuildAppServices: %v", err)
	}
	services.Init.WithClock(func() time.Time { return fixedNow })
	if err := services.Init.InitializeWorkspace(context.Background(), "test", true); err != nil {
		t.Fatalf("InitializeWorkspace: %v", err)
	}
	return services
}

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}
