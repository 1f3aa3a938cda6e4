// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

// Package coordinator provides the client-facing request coordination
// primitives: batch tracking with staleness detection, last-call-wins
// debouncing, and a keyed toast queue.
package coordinator
