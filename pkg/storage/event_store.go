package storage

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/felixgeelhaar/clearwater/pkg/domain/events"
	"github.com/google/uuid"
)

// FileEventStore keeps the workspace audit log as a hash-chained JSON Lines
// file. Lines that cannot be decoded are skipped by readers and reported by
// Verify; they never stop the workspace from opening.
type FileEventStore struct {
	mu        sync.Mutex
	dir       string
	path      string
	head      string
	headKnown bool
}

// entry is one line of the log. Either event or err is set.
type entry struct {
	line  int
	event *events.Event
	err   error
}

// NewFileEventStore returns a store for events.jsonl inside dir. Nothing is
// read or created until the first call.
func NewFileEventStore(dir string) *FileEventStore {
	return &FileEventStore{dir: dir, path: filepath.Join(dir, EventsFile)}
}

// Append assigns ID and timestamp when missing, chains the event to the last
// readable entry and writes it.
func (s *FileEventStore) Append(event *events.Event) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.headKnown {
		entries, err := s.read()
		if err != nil {
			return err
		}
		if last := lastEvent(entries); last != nil {
			s.head = last.Hash
		}
		s.headKnown = true
	}

	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	event.PrevHash = s.head
	event.Hash = event.CalculateHash()

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return fmt.Errorf("open events file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close events file: %w", cerr)
		}
	}()

	// A torn final line must not swallow the new entry.
	terminated, err := endsWithNewline(f)
	if err != nil {
		return err
	}
	if !terminated {
		data = append([]byte{'\n'}, data...)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write event: %w", err)
	}

	s.head = event.Hash
	return nil
}

// Events returns readable events in log order, optionally limited to the
// given types.
func (s *FileEventStore) Events(types ...string) ([]*events.Event, error) {
	s.mu.Lock()
	entries, err := s.read()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	var result []*events.Event
	for _, e := range entries {
		if e.event == nil {
			continue
		}
		if len(types) > 0 && !slices.Contains(types, e.event.Type) {
			continue
		}
		result = append(result, e.event)
	}
	return result, nil
}

// Last returns the most recent readable event, or nil for an empty log.
func (s *FileEventStore) Last() (*events.Event, error) {
	s.mu.Lock()
	entries, err := s.read()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return lastEvent(entries), nil
}

// Verify walks the chain and reports every unreadable line, broken link and
// altered entry. An empty result means the log is intact.
func (s *FileEventStore) Verify() ([]events.Violation, error) {
	s.mu.Lock()
	entries, err := s.read()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	var violations []events.Violation
	prev := ""
	for _, e := range entries {
		if e.event == nil {
			violations = append(violations, events.Violation{Line: e.line, Reason: "unreadable entry: " + e.err.Error()})
			continue
		}
		if e.event.PrevHash != prev {
			violations = append(violations, events.Violation{Line: e.line, EventID: e.event.ID, Reason: "chain broken: previous hash does not match"})
		}
		if e.event.Hash != e.event.CalculateHash() {
			violations = append(violations, events.Violation{Line: e.line, EventID: e.event.ID, Reason: "hash mismatch: entry was altered"})
		}
		prev = e.event.Hash
	}
	return violations, nil
}

func (s *FileEventStore) read() ([]entry, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open events file: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	var entries []entry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var event events.Event
		if err := json.Unmarshal(raw, &event); err != nil {
			entries = append(entries, entry{line: line, err: err})
			continue
		}
		entries = append(entries, entry{line: line, event: &event})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan events: %w", err)
	}
	return entries, nil
}

func lastEvent(entries []entry) *events.Event {
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].event != nil {
			return entries[i].event
		}
	}
	return nil
}

func endsWithNewline(f *os.File) (bool, error) {
	info, err := f.Stat()
	if err != nil {
		return false, fmt.Errorf("stat events file: %w", err)
	}
	if info.Size() == 0 {
		return true, nil
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read events file: %w", err)
	}
	return last[0] == '\n', nil
}
