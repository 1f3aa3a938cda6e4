// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

package services

import (
	"context"
	"time"

	"github.com/verdantgeo/verdant/internal/analytics"
	"github.com/verdantgeo/verdant/internal/logging"
)

// RetentionService periodically deletes analytics events older than the
// retention horizon. Construct it only when retention is enabled.
type RetentionService struct {
	store         analytics.Store
	retentionDays int
	interval      time.Duration
}

// NewRetentionService builds the sweep service.
func NewRetentionService(store analytics.Store, retentionDays int, interval time.Duration) *RetentionService {
	return &RetentionService{store: store, retentionDays: retentionDays, interval: interval}
}

// Serve implements suture.Service. One sweep runs immediately so a
// long-stopped server catches up on restart.
func (s *RetentionService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *RetentionService) sweep(ctx context.Context) {
	horizon := time.Now().AddDate(0, 0, -s.retentionDays)
	deleted, err := s.store.DeleteOlderThan(ctx, horizon)
	if err != nil {
		logging.Error().Err(err).Msg("analytics retention sweep failed")
		return
	}
	if deleted > 0 {
		logging.Info().
			Int64("deleted", deleted).
			Int("retention_days", s.retentionDays).
			Msg("analytics retention sweep")
	}
}

// String names the service in supervisor logs.
func (s *RetentionService) String() string {
	return "analytics-retention"
}
