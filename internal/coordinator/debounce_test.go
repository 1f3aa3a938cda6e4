// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

package coordinator

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_LastCallWins(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	var mu sync.Mutex
	var fired []string
	done := make(chan struct{})

	record := func(arg string) func() {
		return func() {
			mu.Lock()
			fired = append(fired, arg)
			mu.Unlock()
			close(done)
		}
	}

	// Three calls inside the quiet window; only the last should fire,
	// with the last arguments.
	d.Call(record("first"))
	time.Sleep(10 * time.Millisecond)
	d.Call(record("second"))
	time.Sleep(10 * time.Millisecond)
	d.Call(record("third"))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("debounced call never fired")
	}

	// Give any erroneous earlier timers a chance to fire.
	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(fired) != 1 {
		t.Fatalf("fired %d times, want 1: %v", len(fired), fired)
	}
	if fired[0] != "third" {
		t.Errorf("fired with %q, want %q", fired[0], "third")
	}
}

func TestDebouncer_Cancel(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)

	var count atomic.Int64
	d.Call(func() { count.Add(1) })

	if !d.Cancel() {
		t.Error("Cancel should report a pending call")
	}
	if d.Cancel() {
		t.Error("second Cancel should report nothing pending")
	}

	time.Sleep(80 * time.Millisecond)
	if got := count.Load(); got != 0 {
		t.Errorf("cancelled call fired %d times", got)
	}
}

func TestDebouncer_SeparatedCallsBothFire(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	var count atomic.Int64
	d.Call(func() { count.Add(1) })
	time.Sleep(60 * time.Millisecond)
	d.Call(func() { count.Add(1) })
	time.Sleep(60 * time.Millisecond)

	if got := count.Load(); got != 2 {
		t.Errorf("fired %d times, want 2", got)
	}
}

func TestNewDebouncer_DefaultDelay(t *testing.T) {
	if got := NewDebouncer(0).Delay(); got != DefaultDebounceDelay {
		t.Errorf("delay = %s, want %s", got, DefaultDebounceDelay)
	}
	if got := NewDebouncer(-time.Second).Delay(); got != DefaultDebounceDelay {
		t.Errorf("delay = %s, want %s", got, DefaultDebounceDelay)
	}
}
