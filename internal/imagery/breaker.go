// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

package imagery

import (
	"context"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/verdantgeo/verdant/internal/logging"
	"github.com/verdantgeo/verdant/internal/metrics"
	"github.com/verdantgeo/verdant/internal/models"
	"github.com/verdantgeo/verdant/internal/validation"
)

// BreakerProvider wraps a Provider with a circuit breaker so a failing
// imagery service sheds load fast instead of tying up request handlers.
// The breaker opens at a 60% failure ratio over at least 10 requests in
// a 1 minute window, stays open for 2 minutes, then allows 3 probes.
type BreakerProvider struct {
	inner Provider
	cb    *gobreaker.CircuitBreaker[*models.FindMonthResult]
}

var _ Provider = (*BreakerProvider)(nil)

// NewBreakerProvider wraps inner with the standard breaker settings.
func NewBreakerProvider(inner Provider) *BreakerProvider {
	settings := gobreaker.Settings{
		Name:        "imagery-provider",
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.CircuitBreakerState.Set(breakerStateValue(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(from.String(), to.String()).Inc()
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("imagery circuit breaker state change")
		},
	}
	return &BreakerProvider{
		inner: inner,
		cb:    gobreaker.NewCircuitBreaker[*models.FindMonthResult](settings),
	}
}

func breakerStateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	default:
		return 2
	}
}

// FindAvailableMonth forwards through the breaker. When the breaker is
// open the call fails immediately with gobreaker.ErrOpenState.
func (b *BreakerProvider) FindAvailableMonth(ctx context.Context, bbox validation.BBox, cloud int) (*models.FindMonthResult, error) {
	return b.cb.Execute(func() (*models.FindMonthResult, error) {
		return b.inner.FindAvailableMonth(ctx, bbox, cloud)
	})
}

// State exposes the breaker state for health reporting.
func (b *BreakerProvider) State() gobreaker.State {
	return b.cb.State()
}
