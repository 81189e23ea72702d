package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/felixgeelhaar/clearwater/internal/infrastructure/watch"
	"github.com/felixgeelhaar/clearwater/internal/infrastructure/wiring"
	"github.com/felixgeelhaar/clearwater/pkg/application"
	"github.com/felixgeelhaar/clearwater/pkg/domain/action"
	"github.com/felixgeelhaar/clearwater/pkg/storage"
	"github.com/spf13/cobra"
)

var (
	watchComparison string
	watchDebounce   time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-rank actions and rescore quotes whenever workspace files change",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}
		if !services.Workspace.Repo.IsInitialized() {
			return MapError(application.ErrNotInitialized)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		out := cmd.OutOrStdout()
		renderActionsSnapshot(ctx, out, services)
		renderComparisonSnapshot(ctx, out, services, watchComparison)

		if os.Getenv("CLEARWATER_WATCH_ONCE") == "true" {
			return nil
		}

		dir := services.Workspace.Repo.Dir()
		w, err := watch.NewWorkspaceWatcher(dir, watch.Options{
			Debounce: watchDebounce,
			Logger:   services.Logger.With("component", "watch"),
		}, func(change watch.Change) {
			fmt.Fprintf(out, "\nChange detected at %s: %v\n", time.Now().Format("15:04:05"), change.Files)
			if change.Touches(storage.ActionsFile) || change.Touches(storage.SettingsFile) {
				renderActionsSnapshot(ctx, out, services)
			}
			if change.Touches(storage.ComparisonsFile) || change.Touches(storage.SettingsFile) {
				renderComparisonSnapshot(ctx, out, services, watchComparison)
			}
		})
		if err != nil {
			return fmt.Errorf("failed to start watcher: %w", err)
		}

		fmt.Fprintf(out, "\nWatching %s for changes... (Ctrl+C to stop)\n", dir)
		if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

// renderActionsSnapshot prints the board. Load errors are reported, not returned,
// so a half-written file does not end the watch.
func renderActionsSnapshot(ctx context.Context, out io.Writer, services *wiring.AppServices) {
	now := time.Now()
	board, err := services.Actions.Board(ctx, application.BoardOptions{Filter: action.FilterAll, Now: now})
	if err != nil {
		fmt.Fprintf(out, "Actions unavailable: %v\n", err)
		return
	}
	counts, err := services.Actions.Counts(ctx, now)
	if err != nil {
		fmt.Fprintf(out, "Actions unavailable: %v\n", err)
		return
	}
	renderBoard(out, application.NewBoardView(board), application.NewCountsView(counts), now)
}

// renderComparisonSnapshot prints one comparison, or every comparison when id is empty.
func renderComparisonSnapshot(ctx context.Context, out io.Writer, services *wiring.AppServices, id string) {
	ids := []string{id}
	if id == "" {
		comparisons, err := services.Procurement.ListComparisons(ctx)
		if err != nil {
			fmt.Fprintf(out, "Comparisons unavailable: %v\n", err)
			return
		}
		ids = ids[:0]
		for _, c := range comparisons {
			ids = append(ids, c.ID)
		}
	}

	for _, cid := range ids {
		result, err := services.Procurement.Compare(ctx, cid, nil)
		if err != nil {
			fmt.Fprintf(out, "Comparison %s unavailable: %v\n", cid, err)
			continue
		}
		fmt.Fprintln(out)
		renderResult(out, result)
	}
}

func init() {
	watchCmd.Flags().StringVarP(&watchComparison, "comparison", "c", "", "Only rescore this comparison")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "Quiet period before recomputing")
	RootCmd.AddCommand(watchCmd)
}
