package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/felixgeelhaar/clearwater/pkg/storage"
	"gopkg.in/yaml.v3"
)

const loggingConfigFile = "logging.yaml"

// LogConfig controls the CLI logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
}

// DefaultLogConfig logs warnings and above as text.
func DefaultLogConfig() *LogConfig {
	return &LogConfig{Level: "warn", Format: "text"}
}

// LoadLogConfig reads logging.yaml from the workspace. A missing file yields the defaults.
func LoadLogConfig(root string) (*LogConfig, error) {
	repo := storage.NewFilesystemRepository(root)
	path, err := repo.ResolvePath(loggingConfigFile)
	if err != nil {
		return nil, err
	}

	cfg := DefaultLogConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read logging config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal logging config: %w", err)
	}
	return cfg, nil
}

func SaveLogConfig(root string, cfg *LogConfig) error {
	if cfg == nil {
		return fmt.Errorf("logging config is nil")
	}

	repo := storage.NewFilesystemRepository(root)
	path, err := repo.ResolvePath(loggingConfigFile)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal logging config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

// ParseLevel maps debug, info, warn and error to slog levels. Empty means warn.
func ParseLevel(s string) (slog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return slog.LevelWarn, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid log level %q (expected: debug, info, warn, or error)", s)
	}
	return level, nil
}

// NewLogger builds a logger writing to w.
func NewLogger(w io.Writer, cfg *LogConfig) (*slog.Logger, error) {
	if cfg == nil {
		cfg = DefaultLogConfig()
	}
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	switch cfg.Format {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q (expected: text or json)", cfg.Format)
	}
}
