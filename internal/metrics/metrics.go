// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP surface.

	APIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "verdant_api_requests_total",
		Help: "Total API requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	APIRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "verdant_api_request_duration_seconds",
		Help:    "API request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// Analytics pipeline.

	AnalyticsEventsLogged = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "verdant_analytics_events_logged_total",
		Help: "Analytics events written to the store by event type.",
	}, []string{"event_type"})

	AnalyticsEventsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "verdant_analytics_events_dropped_total",
		Help: "Analytics events dropped because the recorder buffer was full.",
	})

	AnalyticsQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "verdant_analytics_query_duration_seconds",
		Help:    "DuckDB query latency by operation.",
		Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5},
	}, []string{"operation"})

	AnalyticsQueryErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "verdant_analytics_query_errors_total",
		Help: "DuckDB query errors by operation.",
	}, []string{"operation"})

	// Share store.

	ShareSavesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "verdant_share_saves_total",
		Help: "Share states saved.",
	})

	ShareLoadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "verdant_share_loads_total",
		Help: "Share state lookups by result (hit or miss).",
	}, []string{"result"})

	// Admin sessions.

	AdminLoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "verdant_admin_logins_total",
		Help: "Admin login attempts by result (success or failure).",
	}, []string{"result"})

	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "verdant_admin_active_sessions",
		Help: "Admin sessions currently alive.",
	})

	// Imagery provider.

	ImageryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "verdant_imagery_requests_total",
		Help: "Imagery provider requests by result.",
	}, []string{"result"})

	ImageryRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "verdant_imagery_request_duration_seconds",
		Help:    "Imagery provider request latency.",
		Buckets: prometheus.DefBuckets,
	})

	CircuitBreakerState = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "verdant_imagery_circuit_breaker_state",
		Help: "Imagery circuit breaker state (0=closed, 1=half-open, 2=open).",
	})

	CircuitBreakerTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "verdant_imagery_circuit_breaker_transitions_total",
		Help: "Circuit breaker state transitions by from/to state.",
	}, []string{"from", "to"})
)
