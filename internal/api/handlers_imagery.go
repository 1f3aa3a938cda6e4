// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"

	"github.com/verdantgeo/verdant/internal/imagery"
	"github.com/verdantgeo/verdant/internal/logging"
	"github.com/verdantgeo/verdant/internal/models"
	"github.com/verdantgeo/verdant/internal/validation"
)

// findMonthParams is the validated query surface of /api/find_month.
type findMonthParams struct {
	BBox  string `validate:"required,bbox"`
	Cloud int    `validate:"gte=0,lte=100"`
}

// handleFindMonth answers GET /api/find_month?bbox=w,s,e,n&cloud=0-100.
// bbox is required; cloud falls back to the configured default.
func (h *Handler) handleFindMonth(w http.ResponseWriter, r *http.Request) {
	if h.provider == nil {
		respondError(w, http.StatusServiceUnavailable, models.ErrCodeUnavailable,
			"no imagery provider configured", "")
		return
	}

	params := findMonthParams{
		BBox:  r.URL.Query().Get("bbox"),
		Cloud: h.cfg.Imagery.DefaultCloud,
	}
	if raw := r.URL.Query().Get("cloud"); raw != "" {
		cloud, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, models.ErrCodeValidation,
				"cloud must be an integer between 0 and 100", "")
			return
		}
		params.Cloud = cloud
	}
	if err := validation.Validator().Struct(params); err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation,
			"invalid find_month parameters", validation.FormatErrors(err))
		return
	}

	// The bbox rule above guarantees this parses.
	bbox, err := validation.ParseBBox(params.BBox)
	if err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation,
			"invalid bbox", err.Error())
		return
	}

	result, err := h.provider.FindAvailableMonth(r.Context(), bbox, params.Cloud)
	if err != nil {
		h.respondProviderError(w, err)
		return
	}

	payload, merr := json.Marshal(map[string]interface{}{"bbox": params.BBox, "cloud": params.Cloud})
	if merr == nil {
		h.recordEvent("find_month", payload)
	}
	respondJSON(w, r, http.StatusOK, result, nil)
}

// respondProviderError maps provider failures onto the API error
// taxonomy: breaker-open and transport failures are 503, upstream
// rejections surface the provider's own message under 500.
func (h *Handler) respondProviderError(w http.ResponseWriter, err error) {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		respondError(w, http.StatusServiceUnavailable, models.ErrCodeUnavailable,
			"imagery provider temporarily unavailable", "")
		return
	}
	var ue *imagery.UpstreamError
	if errors.As(err, &ue) {
		respondError(w, http.StatusInternalServerError, models.ErrCodeUpstream,
			"imagery provider request failed", ue.Body)
		return
	}
	logging.Error().Err(err).Msg("imagery request failed")
	respondError(w, http.StatusInternalServerError, models.ErrCodeInternal,
		"imagery provider request failed", "")
}
