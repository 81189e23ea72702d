package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/felixgeelhaar/clearwater/internal/infrastructure/config"
	"github.com/felixgeelhaar/clearwater/internal/infrastructure/wiring"
)

func loadServices(root string) (*wiring.AppServices, error) {
	logger, err := newLogger(root)
	if err != nil {
		return nil, err
	}
	services, err := wiring.BuildAppServices(root, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build services: %w", err)
	}
	return services, nil
}

// newLogger reads logging.yaml from the workspace. The --log-level flag wins over the file.
func newLogger(root string) (*slog.Logger, error) {
	cfg, err := config.LoadLogConfig(root)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Level = logLevel
	}
	logger, err := config.NewLogger(os.Stderr, cfg)
	if err != nil {
		return nil, NewCLIError("invalid logging configuration", "Use --log-level debug|info|warn|error", err)
	}
	return logger, nil
}

func getProjectRoot() (string, error) {
	if projectPath != "" {
		abs, err := filepath.Abs(projectPath)
		if err != nil {
			return "", fmt.Errorf("invalid project path %q: %w", projectPath, err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return "", fmt.Errorf("project path %q: %w", abs, err)
		}
		if !info.IsDir() {
			return "", fmt.Errorf("project path %q is not a directory", abs)
		}
		return abs, nil
	}
	return os.Getwd()
}

func loadServicesForCurrentDir() (*wiring.AppServices, error) {
	root, err := getProjectRoot()
	if err != nil {
		return nil, err
	}
	return loadServices(root)
}

// currentActor names the user recorded on criteria changes.
func currentActor() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "cli"
}
