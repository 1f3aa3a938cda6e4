// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/verdantgeo/verdant/internal/logging"
	"github.com/verdantgeo/verdant/internal/models"
	"github.com/verdantgeo/verdant/internal/share"
)

// saveShareRequest is the POST /api/share/save body. State is opaque
// to the server beyond being well-formed JSON.
type saveShareRequest struct {
	State json.RawMessage `json:"state"`
}

// maxShareStateBytes bounds a share payload. Dashboard snapshots are a
// few KB; anything near this limit is abuse.
const maxShareStateBytes = 256 * 1024

// handleSaveShare mints a token for the submitted state and stores it.
func (h *Handler) handleSaveShare(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxShareStateBytes)

	var req saveShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation,
			"request body must be JSON with a state field", err.Error())
		return
	}
	if len(req.State) == 0 || string(req.State) == "null" {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation,
			"state is required", "")
		return
	}

	state := &models.ShareState{
		Token:     uuid.NewString(),
		State:     req.State,
		CreatedAt: time.Now().UnixMilli(),
	}
	if err := h.shares.Save(state); err != nil {
		logging.Error().Err(err).Msg("share save failed")
		respondError(w, http.StatusInternalServerError, models.ErrCodeInternal,
			"failed to save share state", "")
		return
	}

	h.recordEvent("share_created", nil)
	respondJSON(w, r, http.StatusOK, map[string]string{"token": state.Token}, nil)
}

// handleGetShare answers GET /api/share/{token}.
func (h *Handler) handleGetShare(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	state, err := h.shares.Get(token)
	if errors.Is(err, share.ErrNotFound) {
		respondError(w, http.StatusNotFound, models.ErrCodeNotFound,
			"no shared state under this token", "")
		return
	}
	if err != nil {
		logging.Error().Err(err).Msg("share load failed")
		respondError(w, http.StatusInternalServerError, models.ErrCodeInternal,
			"failed to load share state", "")
		return
	}

	h.recordEvent("share_opened", nil)
	respondJSON(w, r, http.StatusOK, state, nil)
}
