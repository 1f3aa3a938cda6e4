// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

// Package auth gates the admin surface behind a single credential pair
// and cookie-backed sessions, with memory and Badger session backends.
package auth
