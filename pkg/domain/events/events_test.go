package events

import (
	"encoding/json"
	"testing"
	"time"
)

type weights struct {
	Support  int `json:"support"`
	Delivery int `json:"delivery"`
}

func sampleEvent() *Event {
	e := New(TypeCriteriaUpdated, "alice", map[string]any{
		"price":   35,
		"quality": 40,
	})
	e.ID = "evt-1"
	e.Timestamp = time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	return e
}

func TestNew(t *testing.T) {
	e := New(TypeWorkspaceInitialized, "clearwater", nil)
	if e.Type != TypeWorkspaceInitialized || e.Actor != "clearwater" {
		t.Errorf("New() = %+v", e)
	}
	if e.ID != "" || !e.Timestamp.IsZero() {
		t.Errorf("New() should leave ID and timestamp for the store, got %+v", e)
	}
}

func TestCalculateHash_Deterministic(t *testing.T) {
	a := sampleEvent()
	b := sampleEvent()
	if a.CalculateHash() != b.CalculateHash() {
		t.Error("identical events hashed differently")
	}
	if len(a.CalculateHash()) != 64 {
		t.Errorf("hash length = %d, want 64", len(a.CalculateHash()))
	}
}

func TestCalculateHash_FieldsMatter(t *testing.T) {
	base := sampleEvent().CalculateHash()

	tests := []struct {
		name   string
		mutate func(e *Event)
	}{
		{"actor", func(e *Event) { e.Actor = "bob" }},
		{"type", func(e *Event) { e.Type = TypeCriteriaReset }},
		{"prev hash", func(e *Event) { e.PrevHash = "abc" }},
		{"timestamp", func(e *Event) { e.Timestamp = e.Timestamp.Add(time.Second) }},
		{"metadata", func(e *Event) { e.Metadata["price"] = 36 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := sampleEvent()
			tt.mutate(e)
			if e.CalculateHash() == base {
				t.Errorf("changing %s did not change the hash", tt.name)
			}
		})
	}
}

func TestCanonicalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]any
		want string
	}{
		{"nil", nil, "{}"},
		{"empty", map[string]any{}, "{}"},
		{"sorted keys", map[string]any{"support": 10, "delivery": 15}, `{"delivery":15,"support":10}`},
		{"nested struct", map[string]any{"previous": weights{Support: 10, Delivery: 15}}, `{"previous":{"delivery":15,"support":10}}`},
		{"nested map", map[string]any{"previous": map[string]any{"support": 10, "delivery": 15}}, `{"previous":{"delivery":15,"support":10}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canonicalJSON(tt.in); got != tt.want {
				t.Errorf("canonicalJSON() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCalculateHash_SurvivesRoundTrip(t *testing.T) {
	e := sampleEvent()
	e.Metadata["previous"] = weights{Support: 10, Delivery: 15}
	e.Hash = e.CalculateHash()

	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var decoded Event
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got := decoded.CalculateHash(); got != e.Hash {
		t.Errorf("CalculateHash() after round trip = %s, want %s", got, e.Hash)
	}
}

func TestDecode(t *testing.T) {
	e := New(TypeCriteriaUpdated, "alice", map[string]any{"support": 10.0, "delivery": 15.0, "extra": "x"})
	var got weights
	if err := e.Decode(&got); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if want := (weights{Support: 10, Delivery: 15}); got != want {
		t.Errorf("Decode() = %+v, want %+v", got, want)
	}

	bad := New(TypeCriteriaUpdated, "alice", map[string]any{"support": "lots"})
	if err := bad.Decode(&got); err == nil {
		t.Error("Decode() expected an error for a mistyped field")
	}
}

func TestViolationString(t *testing.T) {
	tests := []struct {
		v    Violation
		want string
	}{
		{Violation{Line: 3, Reason: "unreadable entry"}, "line 3: unreadable entry"},
		{Violation{Line: 4, EventID: "evt-1", Reason: "hash mismatch"}, "line 4 (evt-1): hash mismatch"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
