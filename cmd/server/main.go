// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

// Command server runs the Verdant API: imagery month probes, share
// snapshots, client analytics ingestion, and the admin analytics
// console.
package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/verdantgeo/verdant/internal/analytics"
	"github.com/verdantgeo/verdant/internal/api"
	"github.com/verdantgeo/verdant/internal/auth"
	"github.com/verdantgeo/verdant/internal/config"
	"github.com/verdantgeo/verdant/internal/imagery"
	"github.com/verdantgeo/verdant/internal/logging"
	"github.com/verdantgeo/verdant/internal/share"
	"github.com/verdantgeo/verdant/internal/supervisor"
	"github.com/verdantgeo/verdant/internal/supervisor/services"
)

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("server exited")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logging.Info().
		Str("environment", cfg.Server.Environment).
		Int("port", cfg.Server.Port).
		Msg("verdant starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Storage layer.
	store, err := analytics.NewDuckDBStore(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("analytics store: %w", err)
	}
	defer store.Close()

	shares, err := share.NewBadgerStore(cfg.Share.Path)
	if err != nil {
		return fmt.Errorf("share store: %w", err)
	}
	defer shares.Close()

	var sessions auth.SessionStore
	switch cfg.Security.SessionStore {
	case "badger":
		sessions, err = auth.NewBadgerSessionStore(cfg.Security.SessionStorePath)
		if err != nil {
			return fmt.Errorf("session store: %w", err)
		}
	default:
		sessions = auth.NewMemorySessionStore()
	}
	defer sessions.Close()

	// The admin surface only exists when credentials are configured;
	// validation enforces them in production.
	var gate *auth.Gate
	if cfg.Security.AdminUsername != "" {
		gate, err = auth.NewGate(cfg.Security, cfg.IsProduction(), sessions)
		if err != nil {
			return fmt.Errorf("admin gate: %w", err)
		}
	} else {
		logging.Warn().Msg("admin credentials not configured, admin surface disabled")
		gate, err = auth.NewGate(config.SecurityConfig{
			AdminUsername: "disabled",
			AdminPassword: randomPassword(),
			SessionTTL:    cfg.Security.SessionTTL,
			CookieName:    cfg.Security.CookieName,
		}, cfg.IsProduction(), sessions)
		if err != nil {
			return fmt.Errorf("admin gate: %w", err)
		}
	}

	// Event pipeline.
	recorder := analytics.NewRecorder(store, cfg.Analytics.BufferSize)
	defer recorder.Close()

	// Imagery provider, breaker-wrapped, absent when unconfigured.
	var provider imagery.Provider
	if cfg.Imagery.ProviderURL != "" {
		provider = imagery.NewBreakerProvider(imagery.NewClient(cfg.Imagery))
	}

	handler := api.NewHandler(cfg, store, recorder, shares, gate, provider)

	tree := supervisor.New("verdant")
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	tree.Add(services.NewHTTPService(addr, handler.Router(), cfg.Server.Timeout))
	if cfg.Analytics.RetentionDays > 0 {
		tree.Add(services.NewRetentionService(store,
			cfg.Analytics.RetentionDays, cfg.Analytics.CleanupInterval))
	}

	err = tree.Serve(ctx)
	if errors.Is(err, context.Canceled) {
		logging.Info().Msg("verdant stopped")
		return nil
	}
	return err
}

// randomPassword mints an unguessable throwaway credential so the gate
// can exist in development without configured admin credentials. No one
// learns it, so no one can log in.
func randomPassword() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}
