package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/clearwater/pkg/domain"
	"github.com/felixgeelhaar/clearwater/pkg/domain/events"
)

// SystemActor is recorded on events the tool emits on its own behalf.
const SystemActor = "clearwater"

// InitService creates new workspaces.
type InitService struct {
	repo   domain.WorkspaceRepository
	audit  domain.AuditLog
	now    func() time.Time
	logger *slog.Logger
}

// NewInitService creates a new init service.
func NewInitService(repo domain.WorkspaceRepository, audit domain.AuditLog, logger *slog.Logger) *InitService {
	if logger == nil {
		logger = slog.Default()
	}
	return &InitService{repo: repo, audit: audit, now: time.Now, logger: logger}
}

// WithClock replaces the clock used to place sample due dates.
func (s *InitService) WithClock(now func() time.Time) *InitService {
	s.now = now
	return s
}

// InitializeWorkspace creates the workspace directory and default settings.
// With samples set it also writes the demo actions and comparisons.
func (s *InitService) InitializeWorkspace(ctx context.Context, name string, withSamples bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.repo.IsInitialized() {
		return ErrAlreadyInitialized
	}

	if err := s.repo.Initialize(); err != nil {
		return fmt.Errorf("initialize workspace: %w", err)
	}

	settings := domain.DefaultSettings()
	settings.Name = name
	if err := s.repo.SaveSettings(settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	if withSamples {
		if err := s.repo.SaveActions(SampleActions(s.now())); err != nil {
			return fmt.Errorf("save sample actions: %w", err)
		}
		if err := s.repo.SaveComparisons(SampleComparisons()); err != nil {
			return fmt.Errorf("save sample comparisons: %w", err)
		}
	}

	if s.audit != nil {
		err := s.audit.Append(events.New(events.TypeWorkspaceInitialized, SystemActor, map[string]any{
			"name":    name,
			"samples": withSamples,
		}))
		if err != nil {
			s.logger.Warn("failed to record init event", "error", err)
		}
	}

	s.logger.Info("workspace initialized", "name", name, "samples", withSamples)
	return nil
}
