// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

package models

import "time"

// APIResponse is the envelope every JSON endpoint returns.
type APIResponse struct {
	Status   string      `json:"status"` // "success" or "error"
	Data     interface{} `json:"data,omitempty"`
	Metadata *Metadata   `json:"metadata,omitempty"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries pagination and timing information for list responses.
type Metadata struct {
	Page       int       `json:"page,omitempty"`
	Limit      int       `json:"limit,omitempty"`
	Total      int64     `json:"total,omitempty"`
	TotalPages int       `json:"total_pages,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// APIError describes a failed request. Code is a stable machine-readable
// identifier; Message is safe to show to an operator.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Error codes used across the API surface.
const (
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeAuth         = "AUTH_ERROR"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeUpstream     = "UPSTREAM_ERROR"
	ErrCodeRateLimited  = "RATE_LIMITED"
	ErrCodeUnavailable  = "SERVICE_UNAVAILABLE"
)
