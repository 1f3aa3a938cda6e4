// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

package coordinator

import "sync"

// BatchCoordinator tracks in-flight request groups so late responses
// from a superseded batch can be recognized and discarded. A new batch
// begins whenever ClearAll is called; responses carrying an older batch
// ID are stale by definition.
type BatchCoordinator struct {
	mu      sync.Mutex
	batchID uint64
	pending map[string]struct{}
}

// NewBatchCoordinator returns a coordinator at batch 0 with no pending
// requests.
func NewBatchCoordinator() *BatchCoordinator {
	return &BatchCoordinator{
		pending: make(map[string]struct{}),
	}
}

// Register adds a request key to the current batch and returns the batch
// ID the caller should carry alongside its response. Registering a key
// twice is a no-op for membership but still returns the current ID.
func (c *BatchCoordinator) Register(key string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending[key] = struct{}{}
	return c.batchID
}

// Unregister removes a request key. Unknown keys are ignored so a
// response that raced a ClearAll settles quietly.
func (c *BatchCoordinator) Unregister(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, key)
}

// ClearAll abandons every pending request and advances the batch ID.
// Any response carrying a smaller ID is stale.
func (c *BatchCoordinator) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = make(map[string]struct{})
	c.batchID++
}

// BatchID returns the current batch identifier.
func (c *BatchCoordinator) BatchID() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.batchID
}

// IsStale reports whether a response minted under id belongs to an
// abandoned batch.
func (c *BatchCoordinator) IsStale(id uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return id != c.batchID
}

// PendingCount returns the number of registered requests in the current
// batch.
func (c *BatchCoordinator) PendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// AllComplete reports whether the current batch has drained.
func (c *BatchCoordinator) AllComplete() bool {
	return c.PendingCount() == 0
}
