// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

// Package analytics implements the append-only usage event pipeline: a
// DuckDB-backed store with filtered, paginated queries and aggregation,
// plus an asynchronous recorder that keeps event logging off the
// request path.
package analytics
