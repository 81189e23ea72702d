package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/clearwater/pkg/domain"
	"github.com/felixgeelhaar/clearwater/pkg/domain/action"
)

// BoardOptions control how the action board is built.
type BoardOptions struct {
	Filter     action.Filter
	MaxVisible int       // 0 uses the workspace setting
	ShowAll    bool
	Now        time.Time // zero uses the service clock
}

// ActionService builds prioritized action views from workspace data.
type ActionService struct {
	repo   domain.WorkspaceRepository
	now    func() time.Time
	logger *slog.Logger
}

// NewActionService creates a new action service.
func NewActionService(repo domain.WorkspaceRepository, logger *slog.Logger) *ActionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ActionService{repo: repo, now: time.Now, logger: logger}
}

// WithClock replaces the clock used for overdue and due-today checks.
func (s *ActionService) WithClock(now func() time.Time) *ActionService {
	s.now = now
	return s
}

// Board loads the workspace action items and ranks them.
func (s *ActionService) Board(ctx context.Context, opts BoardOptions) (*action.Board, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !s.repo.IsInitialized() {
		return nil, ErrNotInitialized
	}

	items, err := s.repo.LoadActions()
	if err != nil {
		return nil, err
	}

	maxVisible := opts.MaxVisible
	if maxVisible == 0 {
		settings, err := s.repo.LoadSettings()
		if err != nil {
			return nil, err
		}
		maxVisible = settings.MaxVisible
	}

	filter := opts.Filter
	if filter == "" {
		filter = action.FilterAll
	}

	now := s.resolveNow(opts.Now)
	board, err := action.NewBoard(items, filter, maxVisible, opts.ShowAll, now)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("ranked action items",
		"filter", filter,
		"items", len(items),
		"matched", board.Len(),
		"max_visible", maxVisible,
	)
	return board, nil
}

// Counts returns how many items each filter would show.
func (s *ActionService) Counts(ctx context.Context, now time.Time) (map[action.Filter]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !s.repo.IsInitialized() {
		return nil, ErrNotInitialized
	}

	items, err := s.repo.LoadActions()
	if err != nil {
		return nil, err
	}
	return action.CountByFilter(items, s.resolveNow(now))
}

func (s *ActionService) resolveNow(now time.Time) time.Time {
	if now.IsZero() {
		return s.now()
	}
	return now
}
