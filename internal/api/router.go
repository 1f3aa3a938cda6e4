// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/verdantgeo/verdant/internal/middleware"
	"github.com/verdantgeo/verdant/internal/models"
)

// loginRateLimit is deliberately tighter than the general API limit:
// credential guessing gets 10 attempts per minute per IP.
const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute
)

// Router assembles the chi router over the handler set.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestLogger)
	r.Use(middleware.Prometheus)
	r.Use(chimiddleware.Timeout(h.cfg.Server.Timeout))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.Security.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "If-None-Match"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if !h.cfg.Security.RateLimitDisabled {
		r.Use(httprate.Limit(
			h.cfg.Security.RateLimitReqs,
			h.cfg.Security.RateLimitWindow,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(rateLimited),
		))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, models.ErrCodeNotFound, "no such endpoint", "")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, models.ErrCodeValidation, "method not allowed", "")
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.handleHealth)
		r.Get("/find_month", h.handleFindMonth)

		r.Route("/share", func(r chi.Router) {
			r.Post("/save", h.handleSaveShare)
			r.Get("/{token}", h.handleGetShare)
		})

		r.Post("/analytics/log", h.handleLogEvent)

		r.Route("/admin", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				if !h.cfg.Security.RateLimitDisabled {
					r.Use(httprate.Limit(loginRateLimit, loginRateWindow,
						httprate.WithKeyFuncs(httprate.KeyByIP),
						httprate.WithLimitHandler(rateLimited)))
				}
				r.Get("/login", h.handleLoginStatus)
				r.Post("/login", h.handleLogin)
			})
			r.Post("/logout", h.handleLogout)

			r.Route("/analytics", func(r chi.Router) {
				r.Use(h.requireAdmin)
				r.Get("/events", h.handleQueryEvents)
				r.Get("/summary", h.handleSummary)
				r.Post("/clear", h.handleClearEvents)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

// rateLimited keeps 429 responses in the same envelope as every other
// error.
func rateLimited(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusTooManyRequests, models.ErrCodeRateLimited,
		"too many requests, slow down", "")
}
