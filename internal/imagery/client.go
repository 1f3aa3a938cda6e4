// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

package imagery

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/verdantgeo/verdant/internal/config"
	"github.com/verdantgeo/verdant/internal/logging"
	"github.com/verdantgeo/verdant/internal/metrics"
	"github.com/verdantgeo/verdant/internal/models"
	"github.com/verdantgeo/verdant/internal/validation"
)

// Provider answers month-availability probes against an imagery
// catalog.
type Provider interface {
	FindAvailableMonth(ctx context.Context, bbox validation.BBox, cloud int) (*models.FindMonthResult, error)
}

// UpstreamError carries the provider's HTTP status and body excerpt so
// handlers can report what the upstream actually said.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("imagery provider returned %d: %s", e.StatusCode, e.Body)
}

// maxErrorBody bounds how much of an upstream error body we keep.
const maxErrorBody = 512

// Client is the HTTP client for the imagery provider. A client-side
// token bucket protects the provider's quota; the circuit breaker
// wrapper lives in breaker.go.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	limiter      *rate.Limiter
	defaultCloud int
}

var _ Provider = (*Client)(nil)

// NewClient builds a provider client from configuration.
func NewClient(cfg config.ImageryConfig) *Client {
	var limiter *rate.Limiter
	if cfg.RatePerSecond > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), burst)
	}
	return &Client{
		baseURL:      cfg.ProviderURL,
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		limiter:      limiter,
		defaultCloud: cfg.DefaultCloud,
	}
}

// DefaultCloud returns the configured fallback cloud tolerance.
func (c *Client) DefaultCloud() int {
	return c.defaultCloud
}

// FindAvailableMonth asks the provider for the most recent month with
// acceptable coverage over bbox under the cloud tolerance (percent).
func (c *Client) FindAvailableMonth(ctx context.Context, bbox validation.BBox, cloud int) (*models.FindMonthResult, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	u, err := url.Parse(c.baseURL + "/find_month")
	if err != nil {
		return nil, fmt.Errorf("invalid provider URL: %w", err)
	}
	q := u.Query()
	q.Set("bbox", bbox.String())
	q.Set("cloud", strconv.Itoa(cloud))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build provider request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.ImageryRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ImageryRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("imagery provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ImageryRequestsTotal.WithLabelValues("upstream_error").Inc()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		logging.Warn().
			Int("status", resp.StatusCode).
			Str("bbox", bbox.String()).
			Msg("imagery provider rejected request")
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var result models.FindMonthResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		metrics.ImageryRequestsTotal.WithLabelValues("decode_error").Inc()
		return nil, fmt.Errorf("failed to decode provider response: %w", err)
	}
	metrics.ImageryRequestsTotal.WithLabelValues("success").Inc()
	return &result, nil
}
