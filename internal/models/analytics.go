// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

package models

import (
	"github.com/goccy/go-json"
)

// AnalyticsEvent is one append-only usage event. Timestamp is epoch
// milliseconds (UTC) so ordering survives JSON round-trips without
// timezone drift.
type AnalyticsEvent struct {
	ID        int64           `json:"id"`
	EventType string          `json:"event_type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp int64           `json:"timestamp"`
}

// EventQuery filters and pages an analytics query. All filters are
// conjunctive; zero values mean "no constraint". Page is 1-indexed.
type EventQuery struct {
	EventType string `json:"event_type,omitempty"`
	Since     int64  `json:"since,omitempty"` // inclusive lower bound, epoch ms
	Until     int64  `json:"until,omitempty"` // inclusive upper bound, epoch ms
	Page      int    `json:"page"`
	Limit     int    `json:"limit"`
}

// EventPage is one page of analytics events, newest first.
type EventPage struct {
	Events []AnalyticsEvent `json:"events"`
	Page   int              `json:"page"`
	Limit  int              `json:"limit"`
	Total  int64            `json:"total"`
}

// Summary aggregates the event log by type.
type Summary struct {
	Total   int64            `json:"total"`
	ByType  map[string]int64 `json:"by_type"`
	Oldest  int64            `json:"oldest,omitempty"` // epoch ms, 0 when empty
	Newest  int64            `json:"newest,omitempty"` // epoch ms, 0 when empty
}
