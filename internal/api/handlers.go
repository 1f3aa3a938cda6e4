// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

package api

import (
	"github.com/verdantgeo/verdant/internal/analytics"
	"github.com/verdantgeo/verdant/internal/auth"
	"github.com/verdantgeo/verdant/internal/config"
	"github.com/verdantgeo/verdant/internal/imagery"
	"github.com/verdantgeo/verdant/internal/share"
)

// Handler bundles every dependency the HTTP surface needs. All fields
// are required except Provider, which is nil when no imagery provider
// is configured.
type Handler struct {
	cfg       *config.Config
	analytics analytics.Store
	recorder  *analytics.Recorder
	shares    share.Store
	gate      *auth.Gate
	provider  imagery.Provider
}

// NewHandler wires the HTTP handlers.
func NewHandler(
	cfg *config.Config,
	store analytics.Store,
	recorder *analytics.Recorder,
	shares share.Store,
	gate *auth.Gate,
	provider imagery.Provider,
) *Handler {
	return &Handler{
		cfg:       cfg,
		analytics: store,
		recorder:  recorder,
		shares:    shares,
		gate:      gate,
		provider:  provider,
	}
}
