// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

package coordinator

import (
	"fmt"
	"sync"
	"testing"
)

func TestBatchCoordinator_Lifecycle(t *testing.T) {
	c := NewBatchCoordinator()

	if got := c.BatchID(); got != 0 {
		t.Errorf("initial batch ID = %d, want 0", got)
	}
	if !c.AllComplete() {
		t.Error("fresh coordinator should report all complete")
	}

	id := c.Register("tiles/3/4/2")
	if id != 0 {
		t.Errorf("Register returned batch %d, want 0", id)
	}
	c.Register("summary")
	if got := c.PendingCount(); got != 2 {
		t.Errorf("pending = %d, want 2", got)
	}

	// Duplicate registration does not grow the batch.
	c.Register("summary")
	if got := c.PendingCount(); got != 2 {
		t.Errorf("pending after duplicate register = %d, want 2", got)
	}

	c.Unregister("tiles/3/4/2")
	if got := c.PendingCount(); got != 1 {
		t.Errorf("pending after unregister = %d, want 1", got)
	}
	if c.AllComplete() {
		t.Error("AllComplete should be false with one pending request")
	}

	c.Unregister("summary")
	if !c.AllComplete() {
		t.Error("AllComplete should be true after draining")
	}
}

func TestBatchCoordinator_ClearAllInvalidatesOldBatch(t *testing.T) {
	c := NewBatchCoordinator()

	oldID := c.Register("find_month")
	c.ClearAll()

	if got := c.PendingCount(); got != 0 {
		t.Errorf("pending after ClearAll = %d, want 0", got)
	}
	if got := c.BatchID(); got != oldID+1 {
		t.Errorf("batch ID after ClearAll = %d, want %d", got, oldID+1)
	}
	if !c.IsStale(oldID) {
		t.Error("response from the cleared batch should be stale")
	}
	if c.IsStale(c.BatchID()) {
		t.Error("current batch must never be stale")
	}

	// A response from the old batch settling late is harmless.
	c.Unregister("find_month")
	if got := c.PendingCount(); got != 0 {
		t.Errorf("pending after stale unregister = %d, want 0", got)
	}
}

func TestBatchCoordinator_UnregisterUnknownKey(t *testing.T) {
	c := NewBatchCoordinator()
	c.Unregister("never-registered")
	if got := c.PendingCount(); got != 0 {
		t.Errorf("pending = %d, want 0", got)
	}
}

func TestBatchCoordinator_Concurrent(t *testing.T) {
	c := NewBatchCoordinator()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("req-%d", n)
			c.Register(key)
			c.Unregister(key)
		}(i)
	}
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.ClearAll()
		}()
	}
	wg.Wait()

	if got := c.BatchID(); got != 10 {
		t.Errorf("batch ID after 10 ClearAll = %d, want 10", got)
	}
}
