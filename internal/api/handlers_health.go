// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

package api

import (
	"net/http"
)

// handleHealth answers GET /api/health. Liveness only; a failing
// dependency surfaces through its own endpoints and metrics.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]string{
		"state":       "healthy",
		"environment": h.cfg.Server.Environment,
	}, nil)
}
