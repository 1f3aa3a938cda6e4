// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

package share

import (
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/verdantgeo/verdant/internal/logging"
	"github.com/verdantgeo/verdant/internal/metrics"
	"github.com/verdantgeo/verdant/internal/models"
)

// ErrNotFound is returned by Get when no state exists under the token.
var ErrNotFound = errors.New("share state not found")

// Store persists shared dashboard snapshots keyed by token. Saves are
// last-write-wins; entries live until the store is deleted.
type Store interface {
	Save(state *models.ShareState) error
	Get(token string) (*models.ShareState, error)
	Close() error
}

const keyPrefix = "share:"

// BadgerStore implements Store on an embedded Badger database.
type BadgerStore struct {
	db *badger.DB
}

var _ Store = (*BadgerStore)(nil)

// NewBadgerStore opens (or creates) the share database. An empty path
// opens an in-memory store, used by tests.
func NewBadgerStore(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // badger's own logger is too chatty; we log around calls
	if path == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open share store at %q: %w", path, err)
	}
	logging.Info().Str("path", path).Msg("share store ready")
	return &BadgerStore{db: db}, nil
}

// Save writes the state under its token, replacing any previous value.
func (s *BadgerStore) Save(state *models.ShareState) error {
	if state == nil || state.Token == "" {
		return fmt.Errorf("share state requires a token")
	}
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode share state: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+state.Token), payload)
	})
	if err != nil {
		return fmt.Errorf("failed to save share state: %w", err)
	}
	metrics.ShareSavesTotal.Inc()
	return nil
}

// Get returns the state stored under token, or ErrNotFound.
func (s *BadgerStore) Get(token string) (*models.ShareState, error) {
	var state models.ShareState
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + token))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &state)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		metrics.ShareLoadsTotal.WithLabelValues("miss").Inc()
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load share state: %w", err)
	}
	metrics.ShareLoadsTotal.WithLabelValues("hit").Inc()
	return &state, nil
}

// Close releases the database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
