// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

// Package services holds the suture.Service implementations the
// supervisor tree runs: the HTTP server and the analytics retention
// sweep.
package services
