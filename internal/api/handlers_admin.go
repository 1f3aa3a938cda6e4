// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

package api

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/verdantgeo/verdant/internal/auth"
	"github.com/verdantgeo/verdant/internal/models"
)

// loginRequest is the POST /api/admin/login body.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// handleLoginStatus answers GET /api/admin/login: whether the caller
// currently holds a live admin session.
func (h *Handler) handleLoginStatus(w http.ResponseWriter, r *http.Request) {
	session, ok := h.gate.IsAuthenticated(r)
	data := map[string]interface{}{"authenticated": ok}
	if ok {
		data["username"] = session.Username
		data["expires_at"] = session.ExpiresAt
	}
	respondJSON(w, r, http.StatusOK, data, nil)
}

// handleLogin answers POST /api/admin/login with a credential pair.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation,
			"request body must be JSON with username and password", err.Error())
		return
	}
	if req.Username == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation,
			"username and password are required", "")
		return
	}

	session, err := h.gate.Login(w, req.Username, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		respondError(w, http.StatusUnauthorized, models.ErrCodeAuth,
			"invalid username or password", "")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, models.ErrCodeInternal,
			"failed to create session", "")
		return
	}

	h.recordEvent("admin_login", nil)
	respondJSON(w, r, http.StatusOK, map[string]interface{}{
		"authenticated": true,
		"username":      session.Username,
		"expires_at":    session.ExpiresAt,
	}, nil)
}

// handleLogout answers POST /api/admin/logout. Idempotent: logging out
// without a session still succeeds.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	h.gate.Logout(w, r)
	respondJSON(w, r, http.StatusOK, map[string]interface{}{"authenticated": false}, nil)
}

// requireAdmin rejects requests without a live admin session.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := h.gate.IsAuthenticated(r); !ok {
			respondError(w, http.StatusUnauthorized, models.ErrCodeAuth,
				"admin session required", "")
			return
		}
		next.ServeHTTP(w, r)
	})
}
