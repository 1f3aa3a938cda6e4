// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

package models

// FindMonthResult is the imagery provider's answer to a month
// availability probe: the most recent month with usable scenes for a
// bounding box under a cloud tolerance. Field names mirror the
// provider's wire format so the result passes through unmodified.
type FindMonthResult struct {
	Month      string    `json:"month"`
	ImageCount int       `json:"imageCount"`
	TileURL    string    `json:"tileUrl,omitempty"`
	Bounds     []float64 `json:"bounds,omitempty"` // west, south, east, north
}
