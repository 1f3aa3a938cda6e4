// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

package coordinator

import (
	"sync"
	"time"
)

// DefaultDebounceDelay is used when NewDebouncer receives a
// non-positive delay.
const DefaultDebounceDelay = 1000 * time.Millisecond

// Debouncer coalesces rapid calls into one: only the last call within
// the quiet window fires, with the arguments it was given. Safe for
// concurrent use.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// NewDebouncer returns a debouncer with the given quiet window.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}
	return &Debouncer{delay: delay}
}

// Call schedules fn to run after the quiet window. A call before the
// window elapses replaces the scheduled function entirely, so the last
// caller's fn (and whatever it closes over) is the one that runs.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Cancel drops any scheduled call. It reports whether a call was
// pending.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer == nil {
		return false
	}
	stopped := d.timer.Stop()
	d.timer = nil
	return stopped
}

// Delay returns the configured quiet window.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}
