// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

package coordinator

import "sync"

// Toast is one transient notification. PointIndex and AreaIndex tie the
// message to a map selection when set; Suffix carries trailing detail
// text.
type Toast struct {
	Key        uint64 `json:"key"`
	Message    string `json:"message"`
	PointIndex *int   `json:"point_index,omitempty"`
	AreaIndex  *int   `json:"area_index,omitempty"`
	Suffix     string `json:"suffix,omitempty"`
}

// ToastQueue hands out monotonically increasing keys so consecutive
// notifications are always distinguishable, even when the payload text
// repeats. A UI keyed on Toast.Key observes a change on every Show.
// Only the most recent toast is live at a time.
type ToastQueue struct {
	mu      sync.Mutex
	nextKey uint64
	current *Toast
}

// NewToastQueue returns an empty queue. The first Show yields key 1 so
// the zero key can mean "no toast".
func NewToastQueue() *ToastQueue {
	return &ToastQueue{}
}

// Show replaces the current toast and returns it with a fresh key. Two
// calls with identical payloads still return distinct keys.
func (q *ToastQueue) Show(message string, pointIndex, areaIndex *int, suffix string) Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.nextKey++
	t := Toast{
		Key:        q.nextKey,
		Message:    message,
		PointIndex: pointIndex,
		AreaIndex:  areaIndex,
		Suffix:     suffix,
	}
	q.current = &t
	return t
}

// Hide dismisses the toast with the given key. Keys of already-replaced
// toasts are ignored, so a late dismissal never hides a newer toast.
// Hide(0) clears unconditionally.
func (q *ToastQueue) Hide(key uint64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if key == 0 || (q.current != nil && q.current.Key == key) {
		q.current = nil
	}
}

// Current returns the live toast, or ok=false when none is showing.
func (q *ToastQueue) Current() (Toast, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.current == nil {
		return Toast{}, false
	}
	return *q.current, true
}
