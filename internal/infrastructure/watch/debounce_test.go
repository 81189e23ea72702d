package watch

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestDebouncer_CoalescesRapidTriggers(t *testing.T) {
	var count atomic.Int32
	var mu sync.Mutex
	var got []string

	d := NewDebouncer(50*time.Millisecond, func(batch []string) {
		count.Add(1)
		mu.Lock()
		got = batch
		mu.Unlock()
	})
	defer d.Stop()

	for _, name := range []string{"actions.yaml", "comparisons.yaml", "actions.yaml", "settings.yaml"} {
		d.Trigger(name)
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)

	if n := count.Load(); n != 1 {
		t.Errorf("expected 1 callback invocation, got %d", n)
	}
	mu.Lock()
	defer mu.Unlock()
	want := []string{"actions.yaml", "comparisons.yaml", "settings.yaml"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("batch mismatch (-want +got):\n%s", diff)
	}
}

func TestDebouncer_SeparateWindows(t *testing.T) {
	var count atomic.Int32
	d := NewDebouncer(20*time.Millisecond, func([]int) { count.Add(1) })
	defer d.Stop()

	d.Trigger(1)
	time.Sleep(100 * time.Millisecond)
	d.Trigger(2)
	time.Sleep(100 * time.Millisecond)

	if n := count.Load(); n != 2 {
		t.Errorf("expected 2 callback invocations, got %d", n)
	}
}

func TestDebouncer_Stop(t *testing.T) {
	var count atomic.Int32
	d := NewDebouncer(50*time.Millisecond, func([]string) {
		count.Add(1)
	})

	d.Trigger("actions.yaml")
	d.Stop()

	time.Sleep(100 * time.Millisecond)

	if n := count.Load(); n != 0 {
		t.Errorf("expected 0 callback invocations after stop, got %d", n)
	}
}
