// Package storage provides BadgerDB-based persistence
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/timshannon/badgerhold/v4"

	"github.com/niveshapp/nivesh/internal/common"
	"github.com/niveshapp/nivesh/internal/interfaces"
	"github.com/niveshapp/nivesh/internal/models"
)

const (
	holdingsKey = "portfolio_holdings"
	snapshotKey = "price_snapshot"
)

// Store wraps badgerhold and exposes the three persisted areas.
type Store struct {
	db     *badgerhold.Store
	logger *common.Logger

	portfolio *portfolioStore
	snapshots *snapshotStore
	kv        *kvStore
}

// NewStore opens the embedded store at the given path.
func NewStore(logger *common.Logger, path string) (*Store, error) {
	opts := badgerhold.DefaultOptions
	opts.Dir = path
	opts.ValueDir = path
	opts.Logger = nil // Disable badger's internal logging

	db, err := badgerhold.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger store: %w", err)
	}

	logger.Debug().Str("path", path).Msg("Store opened")

	s := &Store{db: db, logger: logger}
	s.portfolio = newPortfolioStore(s, logger)
	s.snapshots = &snapshotStore{db: s, logger: logger}
	s.kv = &kvStore{db: s, logger: logger}
	return s, nil
}

// Portfolio returns the holdings store.
func (s *Store) Portfolio() interfaces.PortfolioStore {
	return s.portfolio
}

// Snapshots returns the price snapshot store.
func (s *Store) Snapshots() interfaces.SnapshotStore {
	return s.snapshots
}

// KV returns the system key-value store.
func (s *Store) KV() interfaces.KeyValueStore {
	return s.kv
}

// SetSyncFunc installs the external sync hook invoked after every
// successful portfolio save (e.g. the widget summary bridge). Must be set
// before the scheduler starts.
func (s *Store) SetSyncFunc(fn func(ctx context.Context, holdings []models.Holding)) {
	s.portfolio.syncFn = fn
}

// Close closes the database
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// snapshotStore persists the previous-cycle price map under a single key.
type snapshotStore struct {
	db     *Store
	logger *common.Logger
}

// snapshotRecord is the persisted form of the price snapshot.
type snapshotRecord struct {
	Key    string
	Prices models.PriceSnapshot
}

func (s *snapshotStore) LoadSnapshot(ctx context.Context) models.PriceSnapshot {
	var rec snapshotRecord
	if err := s.db.db.Get(snapshotKey, &rec); err != nil {
		if err != badgerhold.ErrNotFound {
			s.logger.Warn().Err(err).Msg("Snapshot load failed, starting empty")
		}
		return models.PriceSnapshot{}
	}
	if rec.Prices == nil {
		return models.PriceSnapshot{}
	}
	return rec.Prices
}

func (s *snapshotStore) SaveSnapshot(ctx context.Context, snapshot models.PriceSnapshot) error {
	rec := snapshotRecord{Key: snapshotKey, Prices: snapshot}
	if err := s.db.db.Upsert(snapshotKey, rec); err != nil {
		return fmt.Errorf("failed to save price snapshot: %w", err)
	}
	s.logger.Debug().Int("symbols", len(snapshot)).Msg("Price snapshot saved")
	return nil
}

// kvStore implements the system key-value area.
type kvStore struct {
	db     *Store
	logger *common.Logger
}

// kvEntry represents a key-value entry in the store
type kvEntry struct {
	Key   string `badgerhold:"key"`
	Value string
}

func (s *kvStore) Get(ctx context.Context, key string) (string, error) {
	var entry kvEntry
	err := s.db.db.Get(key, &entry)
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return "", fmt.Errorf("key '%s' not found", key)
		}
		return "", fmt.Errorf("failed to get key: %w", err)
	}
	return entry.Value, nil
}

func (s *kvStore) Set(ctx context.Context, key, value string) error {
	entry := kvEntry{Key: key, Value: value}
	if err := s.db.db.Upsert(key, entry); err != nil {
		return fmt.Errorf("failed to set key: %w", err)
	}
	return nil
}

// SetJSON marshals v and stores it under key. Used by the widget bridge.
func SetJSON(ctx context.Context, kv interfaces.KeyValueStore, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key '%s': %w", key, err)
	}
	return kv.Set(ctx, key, string(data))
}

// Ensure Store implements Storage
var _ interfaces.Storage = (*Store)(nil)
