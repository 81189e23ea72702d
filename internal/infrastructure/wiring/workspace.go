package wiring

import (
	"errors"

	"github.com/felixgeelhaar/clearwater/pkg/storage"
)

// Workspace bundles core infrastructure dependencies.
type Workspace struct {
	Repo   *storage.FilesystemRepository
	Events *storage.FileEventStore
}

// NewWorkspace opens the workspace rooted at root. Neither the documents nor
// the audit log are read here, so a damaged log never blocks a command.
func NewWorkspace(root string) (*Workspace, error) {
	if root == "" {
		return nil, errors.New("workspace root is required")
	}
	repo := storage.NewFilesystemRepository(root)
	return &Workspace{
		Repo:   repo,
		Events: storage.NewFileEventStore(repo.Dir()),
	}, nil
}
