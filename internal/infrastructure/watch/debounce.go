// Package watch recomputes views when workspace documents change on disk.
package watch

import (
	"sync"
	"time"
)

// Debouncer collects items during a quiet window and delivers them in one
// callback once no new item has arrived for the window duration.
type Debouncer[T comparable] struct {
	window   time.Duration
	mu       sync.Mutex
	timer    *time.Timer
	pending  []T
	callback func([]T)
}

// NewDebouncer creates a debouncer with the given window duration.
func NewDebouncer[T comparable](window time.Duration, callback func([]T)) *Debouncer[T] {
	return &Debouncer[T]{
		window:   window,
		callback: callback,
	}
}

// Trigger records item and restarts the window. Duplicate items within one
// window are delivered once, in first-seen order.
func (d *Debouncer[T]) Trigger(item T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	seen := false
	for _, p := range d.pending {
		if p == item {
			seen = true
			break
		}
	}
	if !seen {
		d.pending = append(d.pending, item)
	}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

func (d *Debouncer[T]) fire() {
	d.mu.Lock()
	batch := d.pending
	d.pending = nil
	d.mu.Unlock()

	if len(batch) > 0 && d.callback != nil {
		d.callback(batch)
	}
}

// Stop cancels any pending callback and drops the collected items.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = nil
}
