// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

package imagery

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/verdantgeo/verdant/internal/config"
	"github.com/verdantgeo/verdant/internal/validation"
)

func testClient(url string) *Client {
	return NewClient(config.ImageryConfig{
		ProviderURL:  url,
		Timeout:      5 * time.Second,
		DefaultCloud: 20,
	})
}

var testBBox = validation.BBox{West: -122.5, South: 37.2, East: -121.8, North: 37.9}

func TestClient_FindAvailableMonth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/find_month" {
			t.Errorf("path = %q, want /find_month", r.URL.Path)
		}
		if got := r.URL.Query().Get("bbox"); got != testBBox.String() {
			t.Errorf("bbox param = %q, want %q", got, testBBox.String())
		}
		if got := r.URL.Query().Get("cloud"); got != "30" {
			t.Errorf("cloud param = %q, want 30", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"month":"2026-07","imageCount":14,"tileUrl":"https://tiles.example.com/t","bounds":[-122.5,37.2,-121.8,37.9]}`))
	}))
	defer srv.Close()

	result, err := testClient(srv.URL).FindAvailableMonth(context.Background(), testBBox, 30)
	if err != nil {
		t.Fatalf("FindAvailableMonth failed: %v", err)
	}
	if result.Month != "2026-07" {
		t.Errorf("month = %q, want 2026-07", result.Month)
	}
	if result.ImageCount != 14 {
		t.Errorf("image count = %d, want 14", result.ImageCount)
	}
	if len(result.Bounds) != 4 || result.Bounds[0] != -122.5 {
		t.Errorf("bounds = %v", result.Bounds)
	}
}

func TestClient_UpstreamErrorCarriesStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no scenes for this extent", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).FindAvailableMonth(context.Background(), testBBox, 20)
	var ue *UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("error = %v, want *UpstreamError", err)
	}
	if ue.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", ue.StatusCode)
	}
	if ue.Body == "" {
		t.Error("upstream body not captured")
	}
}

func TestClient_UnreachableProvider(t *testing.T) {
	// Reserve a port then close it so the address refuses connections.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := testClient(url).FindAvailableMonth(context.Background(), testBBox, 20)
	if err == nil {
		t.Fatal("expected connection error")
	}
	var ue *UpstreamError
	if errors.As(err, &ue) {
		t.Error("transport failure should not be an UpstreamError")
	}
}

func TestClient_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := testClient(srv.URL).FindAvailableMonth(ctx, testBBox, 20)
	if err == nil {
		t.Fatal("expected context deadline error")
	}
}

func TestBreakerProvider_OpensAfterRepeatedFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend down", http.StatusBadGateway)
	}))
	defer srv.Close()

	provider := NewBreakerProvider(testClient(srv.URL))

	// Drive enough failures to trip the breaker (>= 10 requests, 60%
	// failure ratio).
	for i := 0; i < 12; i++ {
		provider.FindAvailableMonth(context.Background(), testBBox, 20)
	}

	_, err := provider.FindAvailableMonth(context.Background(), testBBox, 20)
	if err == nil {
		t.Fatal("expected breaker to reject the call")
	}
	var ue *UpstreamError
	if errors.As(err, &ue) {
		t.Errorf("breaker should fail fast, got upstream error %v", err)
	}
}

func TestBreakerProvider_PassesThroughSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"month":"2026-08","imageCount":3}`))
	}))
	defer srv.Close()

	provider := NewBreakerProvider(testClient(srv.URL))
	result, err := provider.FindAvailableMonth(context.Background(), testBBox, 20)
	if err != nil {
		t.Fatalf("FindAvailableMonth failed: %v", err)
	}
	if result.Month != "2026-08" {
		t.Errorf("month = %q", result.Month)
	}
}
