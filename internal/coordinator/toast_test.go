// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

package coordinator

import "testing"

func TestToastQueue_IdenticalMessagesGetDistinctKeys(t *testing.T) {
	q := NewToastQueue()

	a := q.Show("export complete", nil, nil, "")
	b := q.Show("export complete", nil, nil, "")

	if a.Key == b.Key {
		t.Errorf("consecutive toasts share key %d", a.Key)
	}
	if b.Key <= a.Key {
		t.Errorf("keys not monotonic: %d then %d", a.Key, b.Key)
	}
}

func TestToastQueue_CurrentTracksLatest(t *testing.T) {
	q := NewToastQueue()

	if _, ok := q.Current(); ok {
		t.Error("empty queue reported a current toast")
	}

	point := 3
	q.Show("loading tiles", &point, nil, "")
	latest := q.Show("no imagery for this month", nil, nil, "try a wider window")

	got, ok := q.Current()
	if !ok {
		t.Fatal("expected a current toast")
	}
	if got.Key != latest.Key || got.Message != latest.Message || got.Suffix != latest.Suffix {
		t.Errorf("current = %+v, want %+v", got, latest)
	}
	if got.PointIndex != nil {
		t.Error("stale point index leaked into the new toast")
	}
}

func TestToastQueue_SelectionIndices(t *testing.T) {
	q := NewToastQueue()

	point, area := 2, 5
	got := q.Show("comparing selections", &point, &area, "")
	if got.PointIndex == nil || *got.PointIndex != 2 {
		t.Errorf("point index = %v, want 2", got.PointIndex)
	}
	if got.AreaIndex == nil || *got.AreaIndex != 5 {
		t.Errorf("area index = %v, want 5", got.AreaIndex)
	}
}

func TestToastQueue_HideIgnoresStaleKey(t *testing.T) {
	q := NewToastQueue()

	old := q.Show("first", nil, nil, "")
	current := q.Show("second", nil, nil, "")

	// Dismissing the replaced toast must not hide the live one.
	q.Hide(old.Key)
	if got, ok := q.Current(); !ok || got.Key != current.Key {
		t.Errorf("stale Hide removed the live toast: %+v ok=%v", got, ok)
	}

	q.Hide(current.Key)
	if _, ok := q.Current(); ok {
		t.Error("toast still showing after Hide with live key")
	}

	// Hiding on an empty queue is a no-op.
	q.Hide(current.Key)
}

func TestToastQueue_HideZeroClearsUnconditionally(t *testing.T) {
	q := NewToastQueue()
	q.Show("anything", nil, nil, "")
	q.Hide(0)
	if _, ok := q.Current(); ok {
		t.Error("Hide(0) did not clear the toast")
	}
}
