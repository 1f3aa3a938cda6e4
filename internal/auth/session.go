// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/verdantgeo/verdant/internal/metrics"
)

// Session is one authenticated admin session.
type Session struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session has passed its TTL.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// SessionStore persists admin sessions. Implementations must treat
// lookups of expired sessions as misses.
type SessionStore interface {
	Put(session *Session) error
	Get(token string) (*Session, bool)
	Delete(token string) error
	Close() error
}

// newSessionToken mints an unguessable token: 32 random bytes, hex.
func newSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// MemorySessionStore keeps sessions in process memory. Sessions do not
// survive a restart; suitable for development and single-node setups.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

var _ SessionStore = (*MemorySessionStore)(nil)

// NewMemorySessionStore returns an empty in-memory store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]*Session)}
}

// Put stores the session under its token.
func (m *MemorySessionStore) Put(session *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.Token] = session
	metrics.ActiveSessions.Set(float64(len(m.sessions)))
	return nil
}

// Get returns the session for token. Expired sessions are removed and
// reported as misses.
func (m *MemorySessionStore) Get(token string) (*Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[token]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.Expired(time.Now()) {
		_ = m.Delete(token)
		return nil, false
	}
	return s, true
}

// Delete removes the session. Unknown tokens are ignored.
func (m *MemorySessionStore) Delete(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	metrics.ActiveSessions.Set(float64(len(m.sessions)))
	return nil
}

// Close is a no-op for the in-memory store.
func (m *MemorySessionStore) Close() error { return nil }
