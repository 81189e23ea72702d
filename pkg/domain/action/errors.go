package action

import "errors"

// Domain errors for action prioritization.
var (
	// ErrUnknownKind indicates an action kind outside the closed kind set.
	ErrUnknownKind = errors.New("unknown action kind")

	// ErrInvalidUrgency indicates an urgency other than high, medium or low.
	ErrInvalidUrgency = errors.New("invalid urgency")

	// ErrInvalidFilter indicates an unsupported view filter.
	ErrInvalidFilter = errors.New("invalid action filter")

	// ErrProgressOutOfRange indicates a progress value outside [0,100].
	ErrProgressOutOfRange = errors.New("progress out of range")

	// ErrMissingID indicates an action item without an identifier.
	ErrMissingID = errors.New("action item id is required")
)

// ValidationError reports which item failed validation.
type ValidationError struct {
	ItemID string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.ItemID == "" {
		return "invalid action item: " + e.Err.Error()
	}
	return "invalid action item " + e.ItemID + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
