package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/fortify/timeout"
	"github.com/felixgeelhaar/mcp-go"

	"github.com/felixgeelhaar/clearwater/internal/infrastructure/wiring"
	"github.com/felixgeelhaar/clearwater/pkg/application"
	"github.com/felixgeelhaar/clearwater/pkg/domain/action"
	"github.com/felixgeelhaar/clearwater/pkg/domain/procurement"
)

// HandlerTimeout bounds every tool call.
const HandlerTimeout = 10 * time.Second

// agentActor is recorded on criteria changes made through MCP.
const agentActor = "ai-agent"

type Server struct {
	mcpServer   *mcp.Server
	actions     *application.ActionService
	procurement *application.ProcurementService
	logger      *slog.Logger
}

var (
	Version     = "dev"
	BuildCommit = "unknown"
	BuildDate   = "unknown"
)

// mcpErr returns a user-friendly error for MCP clients.
func mcpErr(friendly string) error {
	return fmt.Errorf("%s", friendly)
}

func NewServer(root string, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}
	services, err := wiring.BuildAppServices(root, logger)
	if err != nil {
		return nil, fmt.Errorf("build services: %w", err)
	}

	info := mcp.ServerInfo{
		Name:    "clearwater",
		Version: Version,
	}

	s := &Server{
		mcpServer: mcp.NewServer(info,
			mcp.WithTitle("Clearwater MCP Server"),
			mcp.WithDescription("Clearwater ranks pending project actions and scores equipment quotes for water-treatment projects."),
			mcp.WithWebsiteURL("https://github.com/felixgeelhaar/clearwater"),
			mcp.WithBuildInfo(BuildCommit, BuildDate),
			mcp.WithInstructions("Use clearwater_prioritize_actions to decide what needs attention, and clearwater_score_equipment to compare supplier quotes under adjustable weights."),
		),
		actions:     services.Actions,
		procurement: services.Procurement,
		logger:      logger.With("component", "mcp"),
	}

	s.registerTools()
	s.registerSchemaResource()
	return s, nil
}

type PrioritizeArgs struct {
	Filter     string `json:"filter,omitempty" jsonschema:"description=View filter: all, urgent, overdue, or today (default all)"`
	ShowAll    bool   `json:"show_all,omitempty" jsonschema:"description=Return every matching item instead of the collapsed top slice"`
	MaxVisible int    `json:"max_visible,omitempty" jsonschema:"description=Collapsed view size (default from workspace settings)"`
	Now        string `json:"now,omitempty" jsonschema:"description=Evaluate due dates at this RFC3339 time instead of the current time"`
}

type CountsArgs struct {
	Now string `json:"now,omitempty" jsonschema:"description=Evaluate due dates at this RFC3339 time instead of the current time"`
}

type ScoreArgs struct {
	ComparisonID string `json:"comparison_id" jsonschema:"description=The ID of the comparison to score"`
	Price        *int   `json:"price,omitempty" jsonschema:"description=Price weight override (omit to use the stored weight; 0 ignores the criterion)"`
	Quality      *int   `json:"quality,omitempty" jsonschema:"description=Quality weight override (omit to use the stored weight; 0 ignores the criterion)"`
	Delivery     *int   `json:"delivery,omitempty" jsonschema:"description=Delivery weight override (omit to use the stored weight; 0 ignores the criterion)"`
	Support      *int   `json:"support,omitempty" jsonschema:"description=Support weight override (omit to use the stored weight; 0 ignores the criterion)"`
}

func (a ScoreArgs) hasOverride() bool {
	return a.Price != nil || a.Quality != nil || a.Delivery != nil || a.Support != nil
}

type StepCriterionArgs struct {
	Criterion string `json:"criterion" jsonschema:"description=The criterion to adjust: price, quality, delivery, or support"`
	Delta     int    `json:"delta" jsonschema:"description=Number of 5-point slider notches to move (negative lowers the weight)"`
}

type HistoryArgs struct {
	Limit int `json:"limit,omitempty" jsonschema:"description=Return at most this many changes, newest first (default all)"`
}

func (s *Server) registerTools() {
	s.mcpServer.Tool("clearwater_prioritize_actions").
		Description("Rank pending project action items by computed priority, with optional filter and progressive disclosure").
		Handler(s.handlePrioritizeActions)

	s.mcpServer.Tool("clearwater_action_counts").
		Description("Count action items per filter (all, urgent, overdue, today)").
		Handler(s.handleActionCounts)

	s.mcpServer.Tool("clearwater_list_comparisons").
		Description("List the procurement comparisons stored in the workspace").
		Handler(s.handleListComparisons)

	s.mcpServer.Tool("clearwater_score_equipment").
		Description("Score and rank the quotes of a comparison under the stored or overridden criteria weights").
		Handler(s.handleScoreEquipment)

	s.mcpServer.Tool("clearwater_get_criteria").
		Description("Retrieve the stored procurement criteria weights").
		Handler(s.handleGetCriteria)

	s.mcpServer.Tool("clearwater_step_criterion").
		Description("Move one stored criteria weight by whole slider notches, clamped to 5..50").
		Handler(s.handleStepCriterion)

	s.mcpServer.Tool("clearwater_criteria_history").
		Description("List recorded criteria weight changes and verify the workspace audit log").
		Handler(s.handleCriteriaHistory)
}

// run executes fn under the handler timeout.
func run[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) (T, error) {
	t := timeout.New[T](timeout.Config{DefaultTimeout: HandlerTimeout})
	return t.Execute(ctx, HandlerTimeout, fn)
}

func parseNow(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, raw)
}

func (s *Server) handlePrioritizeActions(ctx context.Context, args PrioritizeArgs) (application.BoardView, error) {
	filter, err := action.ParseFilter(args.Filter)
	if err != nil {
		return application.BoardView{}, mcpErr(fmt.Sprintf("Unknown filter '%s'. Use all, urgent, overdue, or today.", args.Filter))
	}
	now, err := parseNow(args.Now)
	if err != nil {
		return application.BoardView{}, mcpErr("Invalid 'now' value. Use an RFC3339 timestamp such as 2026-03-10T12:00:00Z.")
	}

	return run(ctx, func(ctx context.Context) (application.BoardView, error) {
		board, err := s.actions.Board(ctx, application.BoardOptions{
			Filter:     filter,
			MaxVisible: args.MaxVisible,
			ShowAll:    args.ShowAll,
			Now:        now,
		})
		if err != nil {
			s.logger.Warn("prioritize failed", "error", err)
			return application.BoardView{}, s.workspaceErr(err, "Failed to rank action items. Check actions.yaml for invalid entries.")
		}
		return application.NewBoardView(board), nil
	})
}

func (s *Server) handleActionCounts(ctx context.Context, args CountsArgs) (application.CountsView, error) {
	now, err := parseNow(args.Now)
	if err != nil {
		return application.CountsView{}, mcpErr("Invalid 'now' value. Use an RFC3339 timestamp such as 2026-03-10T12:00:00Z.")
	}

	return run(ctx, func(ctx context.Context) (application.CountsView, error) {
		counts, err := s.actions.Counts(ctx, now)
		if err != nil {
			return application.CountsView{}, s.workspaceErr(err, "Failed to count action items. Check actions.yaml for invalid entries.")
		}
		return application.NewCountsView(counts), nil
	})
}

func (s *Server) handleListComparisons(ctx context.Context, args struct{}) ([]application.ComparisonSummary, error) {
	return run(ctx, func(ctx context.Context) ([]application.ComparisonSummary, error) {
		comparisons, err := s.procurement.ListComparisons(ctx)
		if err != nil {
			return nil, s.workspaceErr(err, "Failed to load comparisons. Check comparisons.yaml for invalid entries.")
		}
		return application.SummarizeComparisons(comparisons), nil
	})
}

func (s *Server) handleScoreEquipment(ctx context.Context, args ScoreArgs) (*procurement.Result, error) {
	if args.ComparisonID == "" {
		return nil, mcpErr("comparison_id is required. Use clearwater_list_comparisons to find one.")
	}

	return run(ctx, func(ctx context.Context) (*procurement.Result, error) {
		var override *procurement.Criteria
		if args.hasOverride() {
			stored, err := s.procurement.GetCriteria(ctx)
			if err != nil {
				return nil, s.workspaceErr(err, "Failed to load criteria weights.")
			}
			merged := mergeWeights(stored, args)
			override = &merged
		}

		result, err := s.procurement.Compare(ctx, args.ComparisonID, override)
		switch {
		case errors.Is(err, application.ErrComparisonNotFound):
			return nil, mcpErr(fmt.Sprintf("Comparison '%s' not found. Use clearwater_list_comparisons to see available IDs.", args.ComparisonID))
		case errors.Is(err, procurement.ErrWeightsNotNormalized):
			return nil, mcpErr("This workspace requires weights that sum to 100.")
		case err != nil:
			return nil, s.workspaceErr(err, "Failed to score comparison. Check comparisons.yaml for invalid quotes.")
		}
		return result, nil
	})
}

func mergeWeights(stored procurement.Criteria, args ScoreArgs) procurement.Criteria {
	if args.Price != nil {
		stored.Price = *args.Price
	}
	if args.Quality != nil {
		stored.Quality = *args.Quality
	}
	if args.Delivery != nil {
		stored.Delivery = *args.Delivery
	}
	if args.Support != nil {
		stored.Support = *args.Support
	}
	return stored
}

func (s *Server) handleGetCriteria(ctx context.Context, args struct{}) (application.CriteriaView, error) {
	return run(ctx, func(ctx context.Context) (application.CriteriaView, error) {
		c, err := s.procurement.GetCriteria(ctx)
		if err != nil {
			return application.CriteriaView{}, s.workspaceErr(err, "Failed to load criteria weights.")
		}
		return application.NewCriteriaView(c), nil
	})
}

func (s *Server) handleStepCriterion(ctx context.Context, args StepCriterionArgs) (application.CriteriaView, error) {
	criterion, err := procurement.ParseCriterion(args.Criterion)
	if err != nil {
		return application.CriteriaView{}, mcpErr(fmt.Sprintf("Unknown criterion '%s'. Use price, quality, delivery, or support.", args.Criterion))
	}

	return run(ctx, func(ctx context.Context) (application.CriteriaView, error) {
		c, err := s.procurement.StepCriterion(ctx, criterion, args.Delta, agentActor)
		if errors.Is(err, procurement.ErrWeightsNotNormalized) {
			return application.CriteriaView{}, mcpErr("This workspace requires weights that sum to 100; adjust another criterion in the opposite direction first.")
		}
		if err != nil {
			return application.CriteriaView{}, s.workspaceErr(err, "Failed to update criteria weights.")
		}
		return application.NewCriteriaView(c), nil
	})
}

func (s *Server) handleCriteriaHistory(ctx context.Context, args HistoryArgs) (*application.CriteriaHistory, error) {
	if args.Limit < 0 {
		return nil, mcpErr("limit must not be negative.")
	}
	return run(ctx, func(ctx context.Context) (*application.CriteriaHistory, error) {
		history, err := s.procurement.History(ctx, args.Limit)
		if err != nil {
			return nil, s.workspaceErr(err, "Failed to read the audit log.")
		}
		return history, nil
	})
}

// workspaceErr maps a missing workspace to its own hint and anything else to fallback.
func (s *Server) workspaceErr(err error, fallback string) error {
	if errors.Is(err, application.ErrNotInitialized) {
		return mcpErr("Workspace not initialized. Run 'clearwater init' in the project directory first.")
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return mcpErr("The request timed out.")
	}
	return mcpErr(fallback)
}

func (s *Server) ServeStdio(ctx context.Context) error {
	return mcp.ServeStdio(ctx, s.mcpServer)
}

func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	return mcp.ServeHTTP(ctx, s.mcpServer, addr, mcp.WithDefaultCORS())
}
