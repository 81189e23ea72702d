package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet window before a recompute runs.
const DefaultDebounce = 300 * time.Millisecond

// Change lists the workspace documents touched during one debounce window.
type Change struct {
	Files []string // base names, first-seen order
}

// Touches reports whether the change includes the named document.
func (c Change) Touches(name string) bool {
	for _, f := range c.Files {
		if f == name {
			return true
		}
	}
	return false
}

// Options configure a WorkspaceWatcher.
type Options struct {
	Debounce time.Duration
	Filter   *PatternFilter
	Logger   *slog.Logger
}

// WorkspaceWatcher watches the workspace directory and calls onChange once
// per burst of document writes.
type WorkspaceWatcher struct {
	watcher  *fsnotify.Watcher
	dir      string
	debounce time.Duration
	filter   *PatternFilter
	onChange func(Change)
	logger   *slog.Logger
}

// NewWorkspaceWatcher creates a watcher on dir. The directory must exist.
func NewWorkspaceWatcher(dir string, opts Options, onChange func(Change)) (*WorkspaceWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Filter == nil {
		opts.Filter = NewPatternFilter(DefaultInclude, DefaultExclude)
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &WorkspaceWatcher{
		watcher:  w,
		dir:      dir,
		debounce: opts.Debounce,
		filter:   opts.Filter,
		onChange: onChange,
		logger:   opts.Logger,
	}, nil
}

// Run starts the event loop. It blocks until the context is cancelled.
func (w *WorkspaceWatcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	debouncer := NewDebouncer(w.debounce, func(files []string) {
		w.logger.Debug("workspace changed", "files", files)
		if w.onChange != nil {
			w.onChange(Change{Files: files})
		}
	})
	defer debouncer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !relevantOp(event.Op) || !w.filter.Matches(event.Name) {
				continue
			}
			debouncer.Trigger(filepath.Base(event.Name))

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}

// Editors that save via rename surface as Create on the new name.
func relevantOp(op fsnotify.Op) bool {
	return op.Has(fsnotify.Create) || op.Has(fsnotify.Write) || op.Has(fsnotify.Rename)
}
