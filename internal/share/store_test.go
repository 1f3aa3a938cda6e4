// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

package share

import (
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/verdantgeo/verdant/internal/models"
)

func newTestStore(t *testing.T) *BadgerStore {
	t.Helper()
	s, err := NewBadgerStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestBadgerStore_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	in := &models.ShareState{
		Token:     "9b2d6f1e-0c3a-4b7e-8f2a-1d5e6c7a8b9c",
		State:     json.RawMessage(`{"center":[-122.4,37.8],"zoom":11,"layer":"ndvi"}`),
		CreatedAt: time.Now().UnixMilli(),
	}
	if err := s.Save(in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	out, err := s.Get(in.Token)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if out.Token != in.Token || out.CreatedAt != in.CreatedAt {
		t.Errorf("metadata mismatch: got %+v, want %+v", out, in)
	}
	if string(out.State) != string(in.State) {
		t.Errorf("state payload mismatch: got %s, want %s", out.State, in.State)
	}
}

func TestBadgerStore_GetUnknownToken(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get("no-such-token")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get error = %v, want ErrNotFound", err)
	}
}

func TestBadgerStore_SaveOverwrites(t *testing.T) {
	s := newTestStore(t)

	token := "11111111-2222-3333-4444-555555555555"
	first := &models.ShareState{Token: token, State: json.RawMessage(`{"zoom":3}`)}
	second := &models.ShareState{Token: token, State: json.RawMessage(`{"zoom":14}`)}

	if err := s.Save(first); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(second); err != nil {
		t.Fatal(err)
	}

	out, err := s.Get(token)
	if err != nil {
		t.Fatal(err)
	}
	if string(out.State) != `{"zoom":14}` {
		t.Errorf("got %s, want the second write", out.State)
	}
}

func TestBadgerStore_RejectsEmptyToken(t *testing.T) {
	s := newTestStore(t)

	if err := s.Save(&models.ShareState{State: json.RawMessage(`{}`)}); err == nil {
		t.Error("expected error for missing token")
	}
	if err := s.Save(nil); err == nil {
		t.Error("expected error for nil state")
	}
}
