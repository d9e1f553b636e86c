package storage

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/timshannon/badgerhold/v4"

	"github.com/niveshapp/nivesh/internal/common"
	"github.com/niveshapp/nivesh/internal/interfaces"
	"github.com/niveshapp/nivesh/internal/models"
	"github.com/niveshapp/nivesh/internal/symbols"
)

// portfolioRecord is the persisted form of the holding list: one serialized
// list under one key, whole-value replace on every write.
type portfolioRecord struct {
	Key      string
	Holdings []models.Holding
}

// portfolioStore implements PortfolioStore using BadgerDB. A single mutex
// serializes every load-modify-save round trip so user actions and timer
// ticks cannot interleave and lose updates.
type portfolioStore struct {
	db     *Store
	logger *common.Logger
	mu     sync.Mutex

	// syncFn, when set, is invoked after local persistence completes so a
	// crash between the two leaves durable data consistent with what will
	// eventually be displayed externally.
	syncFn func(ctx context.Context, holdings []models.Holding)
}

func newPortfolioStore(db *Store, logger *common.Logger) *portfolioStore {
	return &portfolioStore{db: db, logger: logger}
}

// Load returns the persisted holdings, normalizing legacy un-normalized
// symbols on read. It never fails: missing or undecodable data yields an
// empty list.
func (s *portfolioStore) Load(ctx context.Context) []models.Holding {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *portfolioStore) load() []models.Holding {
	var rec portfolioRecord
	if err := s.db.db.Get(holdingsKey, &rec); err != nil {
		if err != badgerhold.ErrNotFound {
			s.logger.Warn().Err(err).Msg("Portfolio load failed, returning empty list")
		}
		return []models.Holding{}
	}

	holdings := rec.Holdings
	if holdings == nil {
		holdings = []models.Holding{}
	}

	// Legacy migration: entries stored before normalization was introduced
	// carry bare symbols. Normalize on read; the next save persists them.
	for i := range holdings {
		if canonical := symbols.Normalize(holdings[i].Symbol); canonical != "" && canonical != holdings[i].Symbol {
			s.logger.Debug().
				Str("from", holdings[i].Symbol).
				Str("to", canonical).
				Msg("Migrated legacy symbol on load")
			holdings[i].Symbol = canonical
		}
	}

	return holdings
}

// Save persists the full list, then triggers the external sync.
func (s *portfolioStore) Save(ctx context.Context, holdings []models.Holding) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, holdings)
}

func (s *portfolioStore) save(ctx context.Context, holdings []models.Holding) error {
	rec := portfolioRecord{Key: holdingsKey, Holdings: holdings}
	if err := s.db.db.Upsert(holdingsKey, rec); err != nil {
		return fmt.Errorf("failed to save portfolio: %w", err)
	}
	s.logger.Debug().Int("holdings", len(holdings)).Msg("Portfolio saved")

	if s.syncFn != nil {
		s.syncFn(ctx, holdings)
	}
	return nil
}

// Add appends a holding, rejecting duplicates by normalized symbol.
func (s *portfolioStore) Add(ctx context.Context, holding models.Holding) ([]models.Holding, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	holdings := s.load()

	canonical := symbols.Normalize(holding.Symbol)
	for _, existing := range holdings {
		if strings.EqualFold(symbols.Normalize(existing.Symbol), canonical) {
			return holdings, fmt.Errorf("%w: %s", models.ErrDuplicateSymbol, canonical)
		}
	}

	holdings = append(holdings, holding)
	if err := s.save(ctx, holdings); err != nil {
		return nil, err
	}
	return holdings, nil
}

// Remove deletes the holding with the given id. A missing id is a reported
// error; the portfolio is left unchanged.
func (s *portfolioStore) Remove(ctx context.Context, id string) ([]models.Holding, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	holdings := s.load()

	idx := -1
	for i, h := range holdings {
		if h.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return holdings, fmt.Errorf("%w: %s", models.ErrHoldingNotFound, id)
	}

	holdings = append(holdings[:idx], holdings[idx+1:]...)
	if err := s.save(ctx, holdings); err != nil {
		return nil, err
	}
	return holdings, nil
}

// Update runs fn under the mutation guard and persists its result. An error
// from fn aborts without saving.
func (s *portfolioStore) Update(ctx context.Context, fn func([]models.Holding) ([]models.Holding, error)) ([]models.Holding, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	holdings := s.load()
	updated, err := fn(holdings)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Ensure portfolioStore implements PortfolioStore
var _ interfaces.PortfolioStore = (*portfolioStore)(nil)
