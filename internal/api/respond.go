// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

package api

import (
	"fmt"
	"hash/fnv"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/verdantgeo/verdant/internal/logging"
	"github.com/verdantgeo/verdant/internal/models"
)

// respondJSON writes a success envelope. An FNV-1a ETag over the body
// lets clients revalidate cheaply; on If-None-Match hits we answer 304
// with no body.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}, meta *models.Metadata) {
	if meta == nil {
		meta = &models.Metadata{}
	}
	meta.Timestamp = time.Now().UTC()

	body, err := json.Marshal(models.APIResponse{
		Status:   "success",
		Data:     data,
		Metadata: meta,
	})
	if err != nil {
		logging.Error().Err(err).Msg("failed to encode response")
		respondError(w, http.StatusInternalServerError, models.ErrCodeInternal, "failed to encode response", "")
		return
	}

	etag := computeETag(body)
	w.Header().Set("ETag", etag)
	if match := r.Header.Get("If-None-Match"); match != "" && match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logging.Debug().Err(err).Msg("client went away mid-response")
	}
}

// computeETag hashes the body with FNV-1a. Weak validator semantics
// are enough here; we only need cache revalidation, not integrity.
func computeETag(body []byte) string {
	h := fnv.New64a()
	h.Write(body)
	return fmt.Sprintf(`"%x"`, h.Sum64())
}

// respondError writes an error envelope. details is optional.
func respondError(w http.ResponseWriter, status int, code, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	body, err := json.Marshal(models.APIResponse{
		Status: "error",
		Error: &models.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
	if err != nil {
		logging.Error().Err(err).Msg("failed to encode error response")
		return
	}
	w.Write(body)
}

// queryInt reads an integer query parameter. An absent parameter yields
// def; a non-empty unparseable value is the caller's error to surface.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

// queryInt64 reads an int64 query parameter with a default, same
// malformed-value contract as queryInt.
func queryInt64(r *http.Request, name string, def int64) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}
