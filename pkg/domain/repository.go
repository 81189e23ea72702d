package domain

import (
	"github.com/felixgeelhaar/clearwater/pkg/domain/action"
	"github.com/felixgeelhaar/clearwater/pkg/domain/events"
	"github.com/felixgeelhaar/clearwater/pkg/domain/procurement"
)

// DefaultMaxVisible is how many action items the collapsed view shows.
const DefaultMaxVisible = 5

// WorkspaceRepository handles the workspace documents in the .clearwater/ directory.
type WorkspaceRepository interface {
	Initialize() error
	IsInitialized() bool
	SaveActions(items []action.Item) error
	LoadActions() ([]action.Item, error)
	SaveComparisons(comparisons []procurement.Comparison) error
	LoadComparisons() ([]procurement.Comparison, error)
	SaveSettings(settings *WorkspaceSettings) error
	LoadSettings() (*WorkspaceSettings, error)
}

// AuditLog records workspace events.
type AuditLog interface {
	Append(event *events.Event) error
}

// AuditTrail is an AuditLog that can also be read back and checked.
type AuditTrail interface {
	AuditLog
	Events(types ...string) ([]*events.Event, error)
	Verify() ([]events.Violation, error)
}

// WorkspaceSettings is the serialized representation of settings.yaml
type WorkspaceSettings struct {
	Name          string               `yaml:"name" json:"name"`
	MaxVisible    int                  `yaml:"max_visible" json:"max_visible"`
	Criteria      procurement.Criteria `yaml:"criteria" json:"criteria"`
	StrictWeights bool                 `yaml:"strict_weights" json:"strict_weights"` // Reject criteria that do not sum to 100
}

// DefaultSettings returns the settings a new workspace starts with.
func DefaultSettings() *WorkspaceSettings {
	return &WorkspaceSettings{
		MaxVisible: DefaultMaxVisible,
		Criteria:   procurement.DefaultCriteria(),
	}
}
