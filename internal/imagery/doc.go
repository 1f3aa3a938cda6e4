// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

// Package imagery talks to the external imagery catalog. The client
// carries a token-bucket rate limiter for provider quotas and can be
// wrapped in a circuit breaker that sheds load when the provider is
// failing.
package imagery
