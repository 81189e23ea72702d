package wiring

import (
	"log/slog"

	"github.com/felixgeelhaar/clearwater/pkg/application"
)

// AppServices exposes the application layer services wired together with a workspace.
type AppServices struct {
	Workspace   *Workspace
	Init        *application.InitService
	Actions     *application.ActionService
	Procurement *application.ProcurementService
	Logger      *slog.Logger
}

// BuildAppServices constructs the services for a workspace root.
func BuildAppServices(root string, logger *slog.Logger) (*AppServices, error) {
	if logger == nil {
		logger = slog.Default()
	}

	workspace, err := NewWorkspace(root)
	if err != nil {
		return nil, err
	}

	return &AppServices{
		Workspace:   workspace,
		Init:        application.NewInitService(workspace.Repo, workspace.Events, logger.With("component", "init")),
		Actions:     application.NewActionService(workspace.Repo, logger.With("component", "actions")),
		Procurement: application.NewProcurementService(workspace.Repo, workspace.Events, logger.With("component", "procurement")),
		Logger:      logger,
	}, nil
}
