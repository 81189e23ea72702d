package application_test

import (
	"slices"
	"time"

	"github.com/felixgeelhaar/clearwater/pkg/domain"
	"github.com/felixgeelhaar/clearwater/pkg/domain/action"
	"github.com/felixgeelhaar/clearwater/pkg/domain/events"
	"github.com/felixgeelhaar/clearwater/pkg/domain/procurement"
)

var testNow = time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

type MockRepo struct {
	Actions     []action.Item
	Comparisons []procurement.Comparison
	Settings    *domain.WorkspaceSettings
	Initialized bool
	InitError   error
	SaveError   error
	LoadError   error
}

func (m *MockRepo) Initialize() error   { m.Initialized = true; return m.InitError }
func (m *MockRepo) IsInitialized() bool { return m.Initialized }

func (m *MockRepo) SaveActions(items []action.Item) error  { m.Actions = items; return m.SaveError }
func (m *MockRepo) LoadActions() ([]action.Item, error)    { return m.Actions, m.LoadError }
func (m *MockRepo) LoadComparisons() ([]procurement.Comparison, error) {
	return m.Comparisons, m.LoadError
}
func (m *MockRepo) SaveComparisons(c []procurement.Comparison) error {
	m.Comparisons = c
	return m.SaveError
}
func (m *MockRepo) SaveSettings(s *domain.WorkspaceSettings) error {
	if m.SaveError != nil {
		return m.SaveError
	}
	copied := *s
	m.Settings = &copied
	return nil
}
func (m *MockRepo) LoadSettings() (*domain.WorkspaceSettings, error) {
	if m.LoadError != nil {
		return nil, m.LoadError
	}
	if m.Settings == nil {
		return domain.DefaultSettings(), nil
	}
	copied := *m.Settings
	return &copied, nil
}

type MockAudit struct {
	Recorded    []*events.Event
	AppendError error
	Violations  []events.Violation
}

func (m *MockAudit) Append(e *events.Event) error {
	if m.AppendError != nil {
		return m.AppendError
	}
	m.Recorded = append(m.Recorded, e)
	return nil
}

func (m *MockAudit) Events(types ...string) ([]*events.Event, error) {
	var out []*events.Event
	for _, e := range m.Recorded {
		if len(types) == 0 || slices.Contains(types, e.Type) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *MockAudit) Verify() ([]events.Violation, error) { return m.Violations, nil }
