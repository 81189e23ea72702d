package action

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Urgency is the user-facing urgency of an action item.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// IsValid returns true if the urgency is a valid urgency.
func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	default:
		return false
	}
}

func (u Urgency) String() string {
	return string(u)
}

// Boost returns the priority points the urgency adds to an item's score.
func (u Urgency) Boost() int {
	switch u {
	case UrgencyHigh:
		return 3
	case UrgencyMedium:
		return 1
	default:
		return 0
	}
}

// IsHigh returns true if this is high urgency.
func (u Urgency) IsHigh() bool {
	return u == UrgencyHigh
}

// DisplayName returns a human-readable display name for the urgency.
func (u Urgency) DisplayName() string {
	switch u {
	case UrgencyLow:
		return "Low"
	case UrgencyMedium:
		return "Medium"
	case UrgencyHigh:
		return "High"
	default:
		return string(u)
	}
}

// ParseUrgency parses a string into an Urgency.
func ParseUrgency(s string) (Urgency, error) {
	u := Urgency(s)
	if !u.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidUrgency, s)
	}
	return u, nil
}

// UnmarshalJSON implements json.Unmarshaler interface.
func (u *Urgency) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseUrgency(str)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler interface.
func (u *Urgency) UnmarshalYAML(value *yaml.Node) error {
	var str string
	if err := value.Decode(&str); err != nil {
		return err
	}
	parsed, err := ParseUrgency(str)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
