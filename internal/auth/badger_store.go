// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

package auth

import (
	"errors"
	"fmt"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/verdantgeo/verdant/internal/logging"
)

const sessionKeyPrefix = "session:"

// BadgerSessionStore persists sessions in an embedded Badger database
// so admin logins survive a restart. Entries carry a Badger TTL matching
// the session expiry, so the database expires them on its own.
type BadgerSessionStore struct {
	db *badger.DB
}

var _ SessionStore = (*BadgerSessionStore)(nil)

// NewBadgerSessionStore opens (or creates) the session database. An
// empty path opens an in-memory store.
func NewBadgerSessionStore(path string) (*BadgerSessionStore, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store at %q: %w", path, err)
	}
	logging.Info().Str("path", path).Msg("session store ready")
	return &BadgerSessionStore{db: db}, nil
}

// Put stores the session with a TTL matching its expiry.
func (b *BadgerSessionStore) Put(session *Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session already expired")
	}
	err = b.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(sessionKeyPrefix+session.Token), payload).WithTTL(ttl)
		return txn.SetEntry(entry)
	})
	if err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Get returns the session for token; Badger TTL handles expiry, with a
// wall-clock check as a second line.
func (b *BadgerSessionStore) Get(token string) (*Session, bool) {
	var session Session
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(sessionKeyPrefix + token))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &session)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false
	}
	if err != nil {
		logging.Error().Err(err).Msg("failed to load session")
		return nil, false
	}
	if session.Expired(time.Now()) {
		_ = b.Delete(token)
		return nil, false
	}
	return &session, true
}

// Delete removes the session. Unknown tokens are ignored.
func (b *BadgerSessionStore) Delete(token string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(sessionKeyPrefix + token))
	})
	if err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Close releases the database.
func (b *BadgerSessionStore) Close() error {
	return b.db.Close()
}
