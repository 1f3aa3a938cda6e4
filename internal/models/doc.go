// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

// Package models defines the shared data types crossing package
// boundaries: the API response envelope, analytics events and queries,
// share snapshots, and imagery provider results.
package models
