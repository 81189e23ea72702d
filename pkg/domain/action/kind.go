package action

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Kind identifies what a project needs from the user next.
type Kind string

const (
	KindChatReady           Kind = "chat_ready"
	KindEngineeringReady    Kind = "engineering_ready"
	KindPaymentRequired     Kind = "payment_required"
	KindApprovalNeeded      Kind = "approval_needed"
	KindReviewPending       Kind = "review_pending"
	KindDeadlineApproaching Kind = "deadline_approaching"
	KindProcurementReady    Kind = "procurement_ready"
	KindSelectionRequired   Kind = "selection_required"
)

// AllKinds returns all valid action kinds.
func AllKinds() []Kind {
	return []Kind{
		KindChatReady,
		KindEngineeringReady,
		KindPaymentRequired,
		KindApprovalNeeded,
		KindReviewPending,
		KindDeadlineApproaching,
		KindProcurementReady,
		KindSelectionRequired,
	}
}

// IsValid returns true if the kind is a member of the closed kind set.
func (k Kind) IsValid() bool {
	_, ok := k.BasePriority()
	return ok
}

func (k Kind) String() string {
	return string(k)
}

// BasePriority returns the starting priority for the kind. The second
// result is false for kinds outside the closed set.
func (k Kind) BasePriority() (int, bool) {
	switch k {
	case KindPaymentRequired, KindDeadlineApproaching:
		return 10, true
	case KindApprovalNeeded:
		return 9, true
	case KindChatReady, KindSelectionRequired:
		return 8, true
	case KindProcurementReady:
		return 7, true
	case KindEngineeringReady:
		return 6, true
	case KindReviewPending:
		return 5, true
	default:
		return 0, false
	}
}

// DisplayName returns a human-readable label for the kind.
func (k Kind) DisplayName() string {
	switch k {
	case KindChatReady:
		return "Chat Ready"
	case KindEngineeringReady:
		return "Engineering Ready"
	case KindPaymentRequired:
		return "Payment Required"
	case KindApprovalNeeded:
		return "Approval Needed"
	case KindReviewPending:
		return "Review Pending"
	case KindDeadlineApproaching:
		return "Deadline Approaching"
	case KindProcurementReady:
		return "Procurement Ready"
	case KindSelectionRequired:
		return "Selection Required"
	default:
		return string(k)
	}
}

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// UnmarshalJSON rejects kinds outside the closed set.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseKind(str)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// UnmarshalYAML rejects kinds outside the closed set.
func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	var str string
	if err := value.Decode(&str); err != nil {
		return err
	}
	parsed, err := ParseKind(str)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
