package cli

import (
	"os"
	"time"

	"github.com/felixgeelhaar/clearwater/pkg/application"
	"github.com/felixgeelhaar/clearwater/pkg/domain/action"
	"github.com/spf13/cobra"
)

var (
	actionsFilter string
	actionsAll    bool
	actionsLimit  int
	actionsJSON   bool
	actionsNow    string
)

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "Show pending action items ranked by priority",
	Long: `Rank every pending action item across projects.

Priority starts from the action type, then adds urgency, overdue, due-soon
and client-facing boosts. The collapsed view shows the top items only; use
--all to see the rest.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := action.ParseFilter(actionsFilter)
		if err != nil {
			return MapError(err)
		}
		now, err := parseNowFlag(actionsNow)
		if err != nil {
			return err
		}

		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		board, err := services.Actions.Board(cmd.Context(), application.BoardOptions{
			Filter:     filter,
			MaxVisible: actionsLimit,
			ShowAll:    actionsAll,
			Now:        now,
		})
		if err != nil {
			return MapError(err)
		}
		view := application.NewBoardView(board)

		if actionsJSON {
			return writeJSON(os.Stdout, view)
		}

		counts, err := services.Actions.Counts(cmd.Context(), now)
		if err != nil {
			return MapError(err)
		}
		if now.IsZero() {
			now = time.Now()
		}
		renderBoard(os.Stdout, view, application.NewCountsView(counts), now)
		return nil
	},
}

// parseNowFlag parses an RFC3339 override. Empty means the current time.
func parseNowFlag(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, NewCLIError("invalid --now value", "Use an RFC3339 timestamp such as 2026-03-10T12:00:00Z", err)
	}
	return t, nil
}

func init() {
	actionsCmd.Flags().StringVarP(&actionsFilter, "filter", "f", "all", "Filter: all, urgent, overdue, or today")
	actionsCmd.Flags().BoolVarP(&actionsAll, "all", "a", false, "Show every matching item")
	actionsCmd.Flags().IntVarP(&actionsLimit, "limit", "n", 0, "Collapsed view size (default from settings)")
	actionsCmd.Flags().BoolVar(&actionsJSON, "json", false, "Output in JSON format")
	actionsCmd.Flags().StringVar(&actionsNow, "now", "", "Evaluate due dates at this RFC3339 time")
	RootCmd.AddCommand(actionsCmd)
}
