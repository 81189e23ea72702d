package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/felixgeelhaar/clearwater/pkg/domain"
	"github.com/felixgeelhaar/clearwater/pkg/domain/events"
	"github.com/felixgeelhaar/clearwater/pkg/domain/procurement"
)

// ProcurementService scores workspace quote comparisons and manages the
// stored criteria weights.
type ProcurementService struct {
	repo   domain.WorkspaceRepository
	audit  domain.AuditTrail
	logger *slog.Logger
}

// NewProcurementService creates a new procurement service.
func NewProcurementService(repo domain.WorkspaceRepository, audit domain.AuditTrail, logger *slog.Logger) *ProcurementService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProcurementService{repo: repo, audit: audit, logger: logger}
}

// ListComparisons returns every comparison in the workspace.
func (s *ProcurementService) ListComparisons(ctx context.Context) ([]procurement.Comparison, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	return s.repo.LoadComparisons()
}

// GetComparison returns the comparison with the given ID.
func (s *ProcurementService) GetComparison(ctx context.Context, id string) (*procurement.Comparison, error) {
	comparisons, err := s.ListComparisons(ctx)
	if err != nil {
		return nil, err
	}
	for i := range comparisons {
		if comparisons[i].ID == id {
			return &comparisons[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrComparisonNotFound, id)
}

// Compare scores a comparison. A nil override uses the stored criteria.
func (s *ProcurementService) Compare(ctx context.Context, id string, override *procurement.Criteria) (*procurement.Result, error) {
	comparison, err := s.GetComparison(ctx, id)
	if err != nil {
		return nil, err
	}

	settings, err := s.repo.LoadSettings()
	if err != nil {
		return nil, err
	}

	criteria := settings.Criteria
	if override != nil {
		criteria = *override
	}
	if settings.StrictWeights {
		if err := criteria.CheckSum(); err != nil {
			return nil, err
		}
	}

	result, err := procurement.Compare(*comparison, criteria)
	if err != nil {
		return nil, err
	}

	for _, scored := range result.Ranked {
		for _, w := range scored.Warnings {
			s.logger.Warn("quote scored with fallback", "comparison", id, "quote", scored.ID, "warning", w)
		}
	}
	s.logger.Debug("scored comparison",
		"comparison", id,
		"quotes", len(result.Ranked),
		"best", result.BestScoreID,
		"weights_sum", criteria.Sum(),
	)
	return result, nil
}

// GetCriteria returns the stored criteria weights.
func (s *ProcurementService) GetCriteria(ctx context.Context) (procurement.Criteria, error) {
	if err := s.ready(ctx); err != nil {
		return procurement.Criteria{}, err
	}
	settings, err := s.repo.LoadSettings()
	if err != nil {
		return procurement.Criteria{}, err
	}
	return settings.Criteria, nil
}

// UpdateCriteria stores new weights as given. Strict workspaces reject
// weights that do not sum to 100.
func (s *ProcurementService) UpdateCriteria(ctx context.Context, criteria procurement.Criteria, actor string) (procurement.Criteria, error) {
	return s.saveCriteria(ctx, criteria, actor, events.TypeCriteriaUpdated)
}

// StepCriterion moves one weight by the given number of slider notches.
func (s *ProcurementService) StepCriterion(ctx context.Context, criterion procurement.Criterion, steps int, actor string) (procurement.Criteria, error) {
	current, err := s.GetCriteria(ctx)
	if err != nil {
		return procurement.Criteria{}, err
	}
	next, err := current.Step(criterion, steps)
	if err != nil {
		return procurement.Criteria{}, err
	}
	return s.saveCriteria(ctx, next, actor, events.TypeCriteriaUpdated)
}

// ResetCriteria restores the default weights.
func (s *ProcurementService) ResetCriteria(ctx context.Context, actor string) (procurement.Criteria, error) {
	return s.saveCriteria(ctx, procurement.DefaultCriteria(), actor, events.TypeCriteriaReset)
}

func (s *ProcurementService) saveCriteria(ctx context.Context, criteria procurement.Criteria, actor, eventType string) (procurement.Criteria, error) {
	if err := s.ready(ctx); err != nil {
		return procurement.Criteria{}, err
	}

	settings, err := s.repo.LoadSettings()
	if err != nil {
		return procurement.Criteria{}, err
	}
	if settings.StrictWeights {
		if err := criteria.CheckSum(); err != nil {
			return procurement.Criteria{}, err
		}
	}

	previous := settings.Criteria
	settings.Criteria = criteria
	if err := s.repo.SaveSettings(settings); err != nil {
		return procurement.Criteria{}, fmt.Errorf("save settings: %w", err)
	}

	if s.audit != nil {
		metadata := criteriaMetadata(criteria)
		metadata["previous"] = criteriaMetadata(previous)
		err := s.audit.Append(events.New(eventType, actor, metadata))
		if err != nil {
			s.logger.Warn("failed to record criteria event", "error", err)
		}
	}

	s.logger.Info("criteria updated", "actor", actor, "sum", criteria.Sum())
	return criteria, nil
}

// History returns criteria changes from the audit log, newest first, along
// with the result of verifying the chain. A positive limit keeps only the
// most recent changes.
func (s *ProcurementService) History(ctx context.Context, limit int) (*CriteriaHistory, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	history := &CriteriaHistory{Changes: []CriteriaChange{}, Intact: true}
	if s.audit == nil {
		return history, nil
	}

	recorded, err := s.audit.Events(events.TypeCriteriaUpdated, events.TypeCriteriaReset)
	if err != nil {
		return nil, fmt.Errorf("read audit log: %w", err)
	}
	for i := len(recorded) - 1; i >= 0; i-- {
		e := recorded[i]
		var rec criteriaRecord
		if err := e.Decode(&rec); err != nil {
			s.logger.Warn("skipping unreadable criteria event", "event", e.ID, "error", err)
			continue
		}
		history.Changes = append(history.Changes, CriteriaChange{
			At:       e.Timestamp,
			Actor:    e.Actor,
			Type:     e.Type,
			Criteria: rec.Criteria,
			Previous: rec.Previous,
		})
		if limit > 0 && len(history.Changes) == limit {
			break
		}
	}

	violations, err := s.audit.Verify()
	if err != nil {
		return nil, fmt.Errorf("verify audit log: %w", err)
	}
	if len(violations) > 0 {
		s.logger.Warn("audit log failed verification", "violations", len(violations))
	}
	history.Violations = violations
	history.Intact = len(violations) == 0
	return history, nil
}

type criteriaRecord struct {
	procurement.Criteria
	Previous *procurement.Criteria `json:"previous"`
}

func criteriaMetadata(c procurement.Criteria) map[string]any {
	return map[string]any{
		"price":    c.Price,
		"quality":  c.Quality,
		"delivery": c.Delivery,
		"support":  c.Support,
	}
}

func (s *ProcurementService) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.repo.IsInitialized() {
		return ErrNotInitialized
	}
	return nil
}
