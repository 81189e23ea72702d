package procurement

import (
	"errors"
	"fmt"
)

// Domain errors for procurement scoring.
var (
	// ErrUnknownRating indicates a recommendation outside the closed rating set.
	ErrUnknownRating = errors.New("unknown recommendation rating")

	// ErrNegativePrice indicates a quote priced below zero.
	ErrNegativePrice = errors.New("price must not be negative")

	// ErrMissingID indicates a quote without an identifier.
	ErrMissingID = errors.New("quote id is required")

	// ErrLeadTimeUnparsable indicates a lead time with no integer in it.
	ErrLeadTimeUnparsable = errors.New("lead time has no week count")

	// ErrWeightsNotNormalized indicates criteria weights that do not sum to 100.
	ErrWeightsNotNormalized = errors.New("criteria weights do not sum to 100")

	// ErrUnknownCriterion indicates a criterion name other than price, quality, delivery or support.
	ErrUnknownCriterion = errors.New("unknown criterion")
)

// LeadTimeParseError reports the raw lead time that could not be parsed.
type LeadTimeParseError struct {
	Raw string
}

func (e *LeadTimeParseError) Error() string {
	return fmt.Sprintf("cannot parse lead time %q", e.Raw)
}

// Is allows errors.Is to match ErrLeadTimeUnparsable.
func (e *LeadTimeParseError) Is(target error) bool {
	return target == ErrLeadTimeUnparsable
}

// ValidationError reports which quote failed validation.
type ValidationError struct {
	QuoteID string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.QuoteID == "" {
		return "invalid quote: " + e.Err.Error()
	}
	return "invalid quote " + e.QuoteID + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
