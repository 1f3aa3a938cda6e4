// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

// Package supervisor owns the suture service tree that keeps the HTTP
// server and background sweeps running, with restarts logged through
// zerolog.
package supervisor
