// Package interfaces defines service contracts for Nivesh
package interfaces

import (
	"context"

	"github.com/niveshapp/nivesh/internal/models"
)

// Storage coordinates the persisted areas: the holdings list, the
// previous-cycle price snapshot, and a small system key-value area.
type Storage interface {
	Portfolio() PortfolioStore
	Snapshots() SnapshotStore
	KV() KeyValueStore
	Close() error
}

// PortfolioStore owns the persisted holding list. All mutating operations
// are serialized: a load-modify-save round trip never interleaves with
// another, so a user action racing a timer tick cannot lose updates.
type PortfolioStore interface {
	// Load returns the persisted holdings in insertion order. It never
	// fails: a missing or undecodable record yields an empty list. Legacy
	// un-normalized symbols are normalized on read.
	Load(ctx context.Context) []models.Holding

	// Save persists the full list (whole-list replace). On success the
	// configured external sync (widget summary mirror) is triggered, after
	// local persistence completes.
	Save(ctx context.Context, holdings []models.Holding) error

	// Add appends a holding and returns the new full list. Returns
	// models.ErrDuplicateSymbol when a holding with the same normalized
	// symbol already exists; the portfolio is left unchanged.
	Add(ctx context.Context, holding models.Holding) ([]models.Holding, error)

	// Remove deletes the holding with the given id and returns the new full
	// list. Returns models.ErrHoldingNotFound when the id is absent.
	Remove(ctx context.Context, id string) ([]models.Holding, error)

	// Update runs fn under the store's mutation guard: fn receives the
	// loaded holdings and returns the list to persist. An error from fn
	// aborts without saving. The refresh engine runs its whole cycle here.
	Update(ctx context.Context, fn func([]models.Holding) ([]models.Holding, error)) ([]models.Holding, error)
}

// SnapshotStore persists the previous-cycle price map used for move
// detection. The map is replaced wholesale each cycle.
type SnapshotStore interface {
	// LoadSnapshot returns the previous snapshot, or an empty map when none
	// is persisted.
	LoadSnapshot(ctx context.Context) models.PriceSnapshot

	// SaveSnapshot replaces the persisted snapshot.
	SaveSnapshot(ctx context.Context, snapshot models.PriceSnapshot) error
}

// KeyValueStore is a small system KV area (widget summary mirror, flags).
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
