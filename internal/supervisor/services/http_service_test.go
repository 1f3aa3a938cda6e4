// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

package services

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestHTTPService_String(t *testing.T) {
	svc := NewHTTPService("127.0.0.1:4326", nil, time.Second)
	if got := svc.String(); got != "http-server(127.0.0.1:4326)" {
		t.Errorf("String() = %q", got)
	}
}

func TestHTTPService_ServesAndShutsDown(t *testing.T) {
	svc := NewHTTPService("127.0.0.1:0", okHandler(), time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	// Give the listener a moment, then cancel.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve returned %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}
}

func TestHTTPService_ListenFailureReturnsError(t *testing.T) {
	// Occupy a port, then try to serve on it.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()

	svc := NewHTTPService(ln.Addr().String(), okHandler(), time.Second)
	if err := svc.Serve(context.Background()); err == nil {
		t.Error("expected listen error on occupied port")
	}
}
