// Package events defines the workspace audit events.
package events

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Event types recorded by the workspace.
const (
	TypeWorkspaceInitialized = "workspace.initialized"
	TypeCriteriaUpdated      = "criteria.updated"
	TypeCriteriaReset        = "criteria.reset"
)

// Event is a single entry in the workspace audit log.
type Event struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Actor     string         `json:"actor"`
	Timestamp time.Time      `json:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	PrevHash  string         `json:"prev_hash,omitempty"`
	Hash      string         `json:"hash,omitempty"`
}

// New creates an event of the given type. ID and timestamp are assigned on append.
func New(eventType, actor string, metadata map[string]any) *Event {
	return &Event{Type: eventType, Actor: actor, Metadata: metadata}
}

// CalculateHash generates a deterministic SHA256 hash of the event.
func (e *Event) CalculateHash() string {
	h := sha256.New()
	h.Write([]byte(e.PrevHash))
	h.Write([]byte(e.ID))
	h.Write([]byte(e.Timestamp.Format(time.RFC3339Nano)))
	h.Write([]byte(e.Type))
	h.Write([]byte(e.Actor))
	h.Write([]byte(canonicalJSON(e.Metadata)))
	return hex.EncodeToString(h.Sum(nil))
}

// Decode unmarshals the metadata into v, which should be a pointer to a
// struct with json tags.
func (e *Event) Decode(v any) error {
	data, err := json.Marshal(e.Metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s metadata: %w", e.Type, err)
	}
	return nil
}

// canonicalJSON renders metadata the way it reads back from the log: every
// value is reduced to plain JSON, so structs and maps hash the same and keys
// are sorted at every level.
func canonicalJSON(m map[string]any) string {
	if len(m) == 0 {
		return "{}"
	}
	data, err := json.Marshal(m)
	if err != nil {
		return "{}"
	}
	var plain any
	if err := json.Unmarshal(data, &plain); err != nil {
		return "{}"
	}
	out, err := json.Marshal(plain)
	if err != nil {
		return "{}"
	}
	return string(out)
}

// Violation is one broken link found while verifying the audit chain.
type Violation struct {
	Line    int    `json:"line"`
	EventID string `json:"event_id,omitempty"`
	Reason  string `json:"reason"`
}

func (v Violation) String() string {
	if v.EventID == "" {
		return fmt.Sprintf("line %d: %s", v.Line, v.Reason)
	}
	return fmt.Sprintf("line %d (%s): %s", v.Line, v.EventID, v.Reason)
}
