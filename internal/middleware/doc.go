// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

// Package middleware holds the HTTP middleware shared across the
// router: Prometheus instrumentation and structured request logging.
package middleware
