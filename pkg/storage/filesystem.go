package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/felixgeelhaar/clearwater/pkg/domain"
	"github.com/felixgeelhaar/clearwater/pkg/domain/action"
	"github.com/felixgeelhaar/clearwater/pkg/domain/procurement"
	"github.com/felixgeelhaar/fortify/retry"
	"gopkg.in/yaml.v3"
)

const WorkspaceDir = ".clearwater"
const ActionsFile = "actions.yaml"
const ComparisonsFile = "comparisons.yaml"
const SettingsFile = "settings.yaml"
const EventsFile = "events.jsonl"

type actionsDocument struct {
	Actions []action.Item `yaml:"actions"`
}

type comparisonsDocument struct {
	Comparisons []procurement.Comparison `yaml:"comparisons"`
}

type FilesystemRepository struct {
	root        string
	retryConfig retry.Config
}

func NewFilesystemRepository(root string) *FilesystemRepository {
	return &FilesystemRepository{
		root: root,
		retryConfig: retry.Config{
			MaxAttempts:   3,
			InitialDelay:  10 * time.Millisecond,
			BackoffPolicy: retry.BackoffExponential,
		},
	}
}

// Root returns the workspace root directory.
func (r *FilesystemRepository) Root() string {
	return r.root
}

// Dir returns the .clearwater directory.
func (r *FilesystemRepository) Dir() string {
	return filepath.Join(r.root, WorkspaceDir)
}

// ResolvePath ensures the path is within the .clearwater directory and prevents traversal.
func (r *FilesystemRepository) ResolvePath(filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("filename cannot be empty")
	}

	baseDir := r.Dir()
	cleanPath := filepath.Clean(filepath.Join(baseDir, filename))

	// Direct children only.
	if !strings.HasPrefix(cleanPath, baseDir) || filepath.Dir(cleanPath) != baseDir {
		return "", fmt.Errorf("invalid file path: %s", filename)
	}

	return cleanPath, nil
}

func (r *FilesystemRepository) Initialize() error {
	// G301: Use 0700 for directories
	if err := os.MkdirAll(r.Dir(), 0700); err != nil {
		return fmt.Errorf("failed to create %s directory: %w", WorkspaceDir, err)
	}
	return nil
}

func (r *FilesystemRepository) IsInitialized() bool {
	_, err := os.Stat(r.Dir())
	return err == nil
}

func (r *FilesystemRepository) SaveActions(items []action.Item) error {
	return r.writeYAML(ActionsFile, actionsDocument{Actions: items})
}

// LoadActions returns the workspace action items. A missing actions file
// yields an empty list.
func (r *FilesystemRepository) LoadActions() ([]action.Item, error) {
	retryer := retry.New[[]action.Item](r.retryConfig)

	return retryer.Do(context.Background(), func(ctx context.Context) ([]action.Item, error) {
		data, err := r.readDocument(ActionsFile, actionsSchemaLoader)
		if err != nil || data == nil {
			return []action.Item{}, err
		}

		var doc actionsDocument
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal actions: %w", err)
		}
		if doc.Actions == nil {
			doc.Actions = []action.Item{}
		}
		return doc.Actions, nil
	})
}

func (r *FilesystemRepository) SaveComparisons(comparisons []procurement.Comparison) error {
	return r.writeYAML(ComparisonsFile, comparisonsDocument{Comparisons: comparisons})
}

// LoadComparisons returns the workspace quote comparisons. A missing
// comparisons file yields an empty list.
func (r *FilesystemRepository) LoadComparisons() ([]procurement.Comparison, error) {
	retryer := retry.New[[]procurement.Comparison](r.retryConfig)

	return retryer.Do(context.Background(), func(ctx context.Context) ([]procurement.Comparison, error) {
		data, err := r.readDocument(ComparisonsFile, comparisonsSchemaLoader)
		if err != nil || data == nil {
			return []procurement.Comparison{}, err
		}

		var doc comparisonsDocument
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal comparisons: %w", err)
		}
		if doc.Comparisons == nil {
			doc.Comparisons = []procurement.Comparison{}
		}
		return doc.Comparisons, nil
	})
}

func (r *FilesystemRepository) SaveSettings(settings *domain.WorkspaceSettings) error {
	if settings == nil {
		return fmt.Errorf("settings are nil")
	}
	return r.writeYAML(SettingsFile, settings)
}

// LoadSettings returns the workspace settings. Keys missing from
// settings.yaml keep their defaults.
func (r *FilesystemRepository) LoadSettings() (*domain.WorkspaceSettings, error) {
	path, err := r.ResolvePath(SettingsFile)
	if err != nil {
		return nil, err
	}

	settings := domain.DefaultSettings()

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	return settings, nil
}

// readDocument reads a YAML document and validates it against its schema.
// It returns nil data when the file does not exist.
func (r *FilesystemRepository) readDocument(name string, schema schemaLoader) ([]byte, error) {
	path, err := r.ResolvePath(name)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	if err := validateDocument(name, schema, data); err != nil {
		return nil, err
	}
	return data, nil
}

func (r *FilesystemRepository) writeYAML(name string, v any) error {
	path, err := r.ResolvePath(name)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}

	// G306: Use 0600 for files
	return os.WriteFile(path, data, 0600)
}
