// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

package analytics

import (
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/verdantgeo/verdant/internal/logging"
	"github.com/verdantgeo/verdant/internal/metrics"
)

// writeTimeout bounds a single store write from the recorder loop so a
// wedged database cannot stall the drain goroutine forever.
const writeTimeout = 10 * time.Second

// Recorder decouples event producers from the store: Record never
// blocks the caller. Events beyond the buffer capacity are dropped and
// counted; analytics logging is best-effort by contract.
type Recorder struct {
	store  Store
	events chan recordedEvent
	done   chan struct{}
	wg     sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

type recordedEvent struct {
	eventType string
	data      json.RawMessage
	ts        time.Time
}

// NewRecorder starts the drain goroutine with the given buffer size.
func NewRecorder(store Store, bufferSize int) *Recorder {
	if bufferSize < 1 {
		bufferSize = 1
	}
	r := &Recorder{
		store:  store,
		events: make(chan recordedEvent, bufferSize),
		done:   make(chan struct{}),
	}
	r.wg.Add(1)
	go r.drain()
	return r
}

// Record enqueues an event stamped now. It returns immediately; when
// the buffer is full the event is dropped with a warning.
func (r *Recorder) Record(eventType string, data json.RawMessage) {
	r.RecordAt(eventType, data, time.Now())
}

// RecordAt enqueues an event with an explicit timestamp.
func (r *Recorder) RecordAt(eventType string, data json.RawMessage, ts time.Time) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	select {
	case r.events <- recordedEvent{eventType: eventType, data: data, ts: ts}:
	default:
		metrics.AnalyticsEventsDropped.Inc()
		logging.Warn().
			Str("event_type", eventType).
			Msg("analytics buffer full, event dropped")
	}
	r.mu.Unlock()
}

func (r *Recorder) drain() {
	defer r.wg.Done()
	for ev := range r.events {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := r.store.LogEventAt(ctx, ev.eventType, ev.data, ev.ts); err != nil {
			logging.Error().
				Err(err).
				Str("event_type", ev.eventType).
				Msg("failed to persist analytics event")
		}
		cancel()
	}
	close(r.done)
}

// Close stops accepting events, flushes the buffer and waits for the
// drain goroutine to finish.
func (r *Recorder) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	close(r.events)
	r.mu.Unlock()

	r.wg.Wait()
	<-r.done
}
