// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

package auth

import (
	"testing"
	"time"
)

func TestMemorySessionStore_PutGetDelete(t *testing.T) {
	store := NewMemorySessionStore()

	now := time.Now()
	session := &Session{
		Token:     "abc123",
		Username:  "admin",
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
	if err := store.Put(session); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, ok := store.Get("abc123")
	if !ok {
		t.Fatal("Get missed a live session")
	}
	if got.Username != "admin" {
		t.Errorf("username = %q", got.Username)
	}

	if err := store.Delete("abc123"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok := store.Get("abc123"); ok {
		t.Error("session survived Delete")
	}

	// Deleting again is a no-op.
	if err := store.Delete("abc123"); err != nil {
		t.Errorf("double Delete errored: %v", err)
	}
}

func TestMemorySessionStore_ExpiredSessionEvicted(t *testing.T) {
	store := NewMemorySessionStore()

	session := &Session{
		Token:     "stale",
		Username:  "admin",
		CreatedAt: time.Now().Add(-2 * time.Hour),
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	if err := store.Put(session); err != nil {
		t.Fatal(err)
	}
	if _, ok := store.Get("stale"); ok {
		t.Error("expired session returned as live")
	}
}

func TestBadgerSessionStore_RoundTrip(t *testing.T) {
	store, err := NewBadgerSessionStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	now := time.Now()
	session := &Session{
		Token:     "def456",
		Username:  "admin",
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
	if err := store.Put(session); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, ok := store.Get("def456")
	if !ok {
		t.Fatal("Get missed a live session")
	}
	if got.Token != "def456" || got.Username != "admin" {
		t.Errorf("session = %+v", got)
	}

	if err := store.Delete("def456"); err != nil {
		t.Fatal(err)
	}
	if _, ok := store.Get("def456"); ok {
		t.Error("session survived Delete")
	}
}

func TestBadgerSessionStore_RejectsExpiredPut(t *testing.T) {
	store, err := NewBadgerSessionStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	err = store.Put(&Session{
		Token:     "gone",
		Username:  "admin",
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	if err == nil {
		t.Error("expected error storing an already-expired session")
	}
}

func TestNewSessionToken_UniqueAndWellFormed(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		token, err := newSessionToken()
		if err != nil {
			t.Fatalf("newSessionToken failed: %v", err)
		}
		if len(token) != 64 {
			t.Fatalf("token length = %d, want 64 hex chars", len(token))
		}
		if _, dup := seen[token]; dup {
			t.Fatal("duplicate token generated")
		}
		seen[token] = struct{}{}
	}
}
