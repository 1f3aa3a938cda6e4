// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

// Package validation provides the shared validator instance with
// geospatial rules (bbox, yearmonth) and the BBox parser used by the
// imagery endpoints.
package validation
