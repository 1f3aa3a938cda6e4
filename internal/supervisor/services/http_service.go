// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

package services

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/verdantgeo/verdant/internal/logging"
)

// shutdownGrace bounds how long in-flight requests get to finish when
// the service is asked to stop.
const shutdownGrace = 10 * time.Second

// HTTPService runs the API server under a suture supervisor. Serve
// blocks until the context is cancelled or the listener fails.
type HTTPService struct {
	addr    string
	handler http.Handler
	timeout time.Duration
}

// NewHTTPService builds the service.
func NewHTTPService(addr string, handler http.Handler, timeout time.Duration) *HTTPService {
	return &HTTPService{addr: addr, handler: handler, timeout: timeout}
}

// Serve implements suture.Service.
func (s *HTTPService) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       s.timeout,
		WriteTimeout:      s.timeout,
		IdleTimeout:       2 * s.timeout,
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	logging.Info().Str("addr", s.addr).Msg("http server listening")

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logging.Warn().Err(err).Msg("http server shutdown incomplete")
		}
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// String names the service in supervisor logs.
func (s *HTTPService) String() string {
	return fmt.Sprintf("http-server(%s)", s.addr)
}
