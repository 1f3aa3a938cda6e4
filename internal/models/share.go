// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

package models

import (
	"github.com/goccy/go-json"
)

// ShareState is an opaque snapshot of dashboard state stored under a
// server-minted token. The server validates only that State is
// well-formed JSON; its shape belongs to the client.
type ShareState struct {
	Token     string          `json:"token"`
	State     json.RawMessage `json:"state"`
	CreatedAt int64           `json:"created_at"` // epoch ms
}
