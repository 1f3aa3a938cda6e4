// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/verdantgeo/verdant/internal/analytics"
	"github.com/verdantgeo/verdant/internal/logging"
	"github.com/verdantgeo/verdant/internal/models"
)

// recordEvent forwards to the async recorder when one is wired. Event
// logging is best-effort everywhere; handlers never fail because of it.
func (h *Handler) recordEvent(eventType string, data json.RawMessage) {
	if h.recorder != nil {
		h.recorder.Record(eventType, data)
	}
}

// logEventRequest is the POST /api/analytics/log body.
type logEventRequest struct {
	EventType string          `json:"event_type"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// handleLogEvent ingests one client-side event. The write is queued,
// so the response is 202 rather than 200.
func (h *Handler) handleLogEvent(w http.ResponseWriter, r *http.Request) {
	var req logEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation,
			"request body must be JSON", err.Error())
		return
	}
	if req.EventType == "" {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation,
			"event_type is required", "")
		return
	}

	h.recordEvent(req.EventType, req.Data)
	respondJSON(w, r, http.StatusAccepted, map[string]string{"state": "queued"}, nil)
}

// handleQueryEvents answers GET /api/admin/analytics/events with
// filters (eventType, startDate, endDate as epoch ms) and 1-indexed
// paging. Non-positive page or limit is a caller error.
func (h *Handler) handleQueryEvents(w http.ResponseWriter, r *http.Request) {
	page, perr := queryInt(r, "page", 1)
	limit, lerr := queryInt(r, "limit", analytics.DefaultPageLimit)
	if perr != nil || lerr != nil || page < 1 || limit < 1 {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation,
			"page and limit must be positive integers", "")
		return
	}
	since, serr := queryInt64(r, "startDate", 0)
	until, uerr := queryInt64(r, "endDate", 0)
	if serr != nil || uerr != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation,
			"startDate and endDate must be epoch milliseconds", "")
		return
	}

	q := models.EventQuery{
		EventType: r.URL.Query().Get("eventType"),
		Since:     since,
		Until:     until,
		Page:      page,
		Limit:     limit,
	}

	result, err := h.analytics.QueryEvents(r.Context(), q)
	if err != nil {
		logging.Error().Err(err).Msg("analytics query failed")
		respondError(w, http.StatusInternalServerError, models.ErrCodeInternal,
			"failed to query analytics events", "")
		return
	}

	totalPages := 0
	if result.Total > 0 {
		totalPages = int((result.Total + int64(result.Limit) - 1) / int64(result.Limit))
	}
	respondJSON(w, r, http.StatusOK, result.Events, &models.Metadata{
		Page:       result.Page,
		Limit:      result.Limit,
		Total:      result.Total,
		TotalPages: totalPages,
	})
}

// handleSummary answers GET /api/admin/analytics/summary with optional
// inclusive startDate and endDate bounds (epoch ms).
func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	since, serr := queryInt64(r, "startDate", 0)
	until, uerr := queryInt64(r, "endDate", 0)
	if serr != nil || uerr != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation,
			"startDate and endDate must be epoch milliseconds", "")
		return
	}

	sum, err := h.analytics.Summary(r.Context(), since, until)
	if err != nil {
		logging.Error().Err(err).Msg("analytics summary failed")
		respondError(w, http.StatusInternalServerError, models.ErrCodeInternal,
			"failed to summarize analytics events", "")
		return
	}
	respondJSON(w, r, http.StatusOK, sum, nil)
}

// handleClearEvents answers POST /api/admin/analytics/clear. The whole
// log is dropped; the response reports how many events were deleted.
func (h *Handler) handleClearEvents(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.analytics.ClearAll(r.Context())
	if err != nil {
		logging.Error().Err(err).Msg("analytics clear failed")
		respondError(w, http.StatusInternalServerError, models.ErrCodeInternal,
			"failed to clear analytics events", "")
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]int64{"deleted": deleted}, nil)
}
