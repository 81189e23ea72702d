package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/felixgeelhaar/clearwater/pkg/application"
	"github.com/felixgeelhaar/clearwater/pkg/domain/action"
	"github.com/felixgeelhaar/clearwater/pkg/domain/procurement"
	"github.com/felixgeelhaar/clearwater/pkg/storage"
)

// CLIError wraps domain errors with user-facing messages and actionable hints.
type CLIError struct {
	Message  string
	Hint     string
	Err      error
	ExitCode int
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a CLIError with a default exit code of 1.
func NewCLIError(msg, hint string, err error) *CLIError {
	return &CLIError{
		Message:  msg,
		Hint:     hint,
		Err:      err,
		ExitCode: 1,
	}
}

// MapError converts known domain errors into CLIErrors with actionable hints.
// Unmapped errors are returned as-is.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	var schemaErr *storage.SchemaError
	if errors.As(err, &schemaErr) {
		return NewCLIError(
			fmt.Sprintf("%s does not match the expected format", schemaErr.File),
			fmt.Sprintf("Fix these fields in %s/%s: %s", storage.WorkspaceDir, schemaErr.File, strings.Join(schemaErr.Issues, "; ")),
			err,
		)
	}

	var itemErr *action.ValidationError
	if errors.As(err, &itemErr) {
		return NewCLIError(
			"invalid action item",
			fmt.Sprintf("Check item '%s' in %s/%s", itemErr.ItemID, storage.WorkspaceDir, storage.ActionsFile),
			err,
		)
	}

	var quoteErr *procurement.ValidationError
	if errors.As(err, &quoteErr) {
		return NewCLIError(
			"invalid equipment quote",
			fmt.Sprintf("Check quote '%s' in %s/%s", quoteErr.QuoteID, storage.WorkspaceDir, storage.ComparisonsFile),
			err,
		)
	}

	switch {
	case errors.Is(err, application.ErrNotInitialized):
		return NewCLIError("workspace not initialized", "Run 'clearwater init --samples' to create a workspace with demo data", err)
	case errors.Is(err, application.ErrAlreadyInitialized):
		return NewCLIError("workspace already initialized", fmt.Sprintf("Edit the files in %s/ or remove the directory to start over", storage.WorkspaceDir), err)
	case errors.Is(err, application.ErrComparisonNotFound):
		return NewCLIError("comparison not found", "Run 'clearwater procure list' to see available comparisons", err)
	case errors.Is(err, action.ErrInvalidFilter):
		return NewCLIError("unknown filter", "Use one of: all, urgent, overdue, today", err)
	case errors.Is(err, procurement.ErrUnknownCriterion):
		return NewCLIError("unknown criterion", "Use one of: price, quality, delivery, support", err)
	case errors.Is(err, procurement.ErrWeightsNotNormalized):
		return NewCLIError("weights must sum to 100", fmt.Sprintf("Adjust the weights, or set strict_weights: false in %s/%s", storage.WorkspaceDir, storage.SettingsFile), err)
	}

	return err
}
