// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

// Package api implements the HTTP surface: the chi router, the JSON
// response envelope, and the handlers for imagery probes, share
// snapshots, client analytics ingestion, and the admin analytics
// console behind the session gate.
package api
