// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

// Package metrics declares the Prometheus instruments exported at
// /metrics. All instruments are registered on the default registry via
// promauto at package load.
package metrics
