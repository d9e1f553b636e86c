package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/niveshapp/nivesh/internal/common"
	"github.com/niveshapp/nivesh/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(common.NewSilentLogger(), t.TempDir())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testHolding(symbol string, buyPrice float64, quantity int64) models.Holding {
	return models.NewHolding(symbol, "", buyPrice, quantity, 0)
}

func TestPortfolio_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	acquired := time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)
	original := []models.Holding{
		{ID: "h1", Symbol: "TCS.NS", DisplayName: "Tata Consultancy Services", BuyPrice: 3456.55, Quantity: 1, CurrentPrice: 3500.10, AcquiredAt: acquired},
		{ID: "h2", Symbol: "INFY.NS", DisplayName: "Infosys", BuyPrice: 1450.25, Quantity: 12, CurrentPrice: 1460.00, AcquiredAt: acquired},
	}

	if err := s.Portfolio().Save(ctx, original); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded := s.Portfolio().Load(ctx)
	if len(loaded) != len(original) {
		t.Fatalf("loaded %d holdings, want %d", len(loaded), len(original))
	}
	for i := range original {
		want, got := original[i], loaded[i]
		if got.ID != want.ID || got.Symbol != want.Symbol || got.DisplayName != want.DisplayName {
			t.Errorf("holding %d identity mismatch: got %+v", i, got)
		}
		if got.BuyPrice != want.BuyPrice || got.Quantity != want.Quantity || got.CurrentPrice != want.CurrentPrice {
			t.Errorf("holding %d numbers mismatch: got %+v", i, got)
		}
		if !got.AcquiredAt.Equal(want.AcquiredAt) {
			t.Errorf("holding %d AcquiredAt = %v, want %v", i, got.AcquiredAt, want.AcquiredAt)
		}
	}
}

func TestPortfolio_LoadEmpty(t *testing.T) {
	s := newTestStore(t)

	holdings := s.Portfolio().Load(context.Background())
	if holdings == nil {
		t.Fatal("Load must return an empty list, not nil")
	}
	if len(holdings) != 0 {
		t.Errorf("expected empty list, got %d holdings", len(holdings))
	}
}

func TestPortfolio_AddDuplicateRejected(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Portfolio().Add(ctx, testHolding("TCS.NS", 3500, 2)); err != nil {
		t.Fatalf("first add failed: %v", err)
	}

	// The bare alias normalizes to the same canonical symbol.
	_, err := s.Portfolio().Add(ctx, testHolding("tcs", 3400, 1))
	if !errors.Is(err, models.ErrDuplicateSymbol) {
		t.Fatalf("expected ErrDuplicateSymbol, got %v", err)
	}

	if got := len(s.Portfolio().Load(ctx)); got != 1 {
		t.Errorf("holding count after rejected add = %d, want 1", got)
	}
}

func TestPortfolio_RemoveByID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	h := testHolding("TCS.NS", 3500, 2)
	if _, err := s.Portfolio().Add(ctx, h); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	holdings, err := s.Portfolio().Remove(ctx, h.ID)
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(holdings) != 0 {
		t.Errorf("expected empty list after remove, got %d", len(holdings))
	}
}

func TestPortfolio_RemoveMissingIDIsError(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Portfolio().Add(ctx, testHolding("TCS.NS", 3500, 2)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	_, err := s.Portfolio().Remove(ctx, "no-such-id")
	if !errors.Is(err, models.ErrHoldingNotFound) {
		t.Fatalf("expected ErrHoldingNotFound, got %v", err)
	}
	if got := len(s.Portfolio().Load(ctx)); got != 1 {
		t.Errorf("portfolio must be unchanged after failed remove, got %d holdings", got)
	}
}

func TestPortfolio_InsertionOrderPreserved(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	syms := []string{"TCS.NS", "INFY.NS", "SBIN.NS"}
	for _, sym := range syms {
		if _, err := s.Portfolio().Add(ctx, testHolding(sym, 100, 1)); err != nil {
			t.Fatalf("add %s failed: %v", sym, err)
		}
	}

	loaded := s.Portfolio().Load(ctx)
	for i, sym := range syms {
		if loaded[i].Symbol != sym {
			t.Errorf("position %d = %s, want %s", i, loaded[i].Symbol, sym)
		}
	}
}

func TestPortfolio_LegacySymbolMigratedOnLoad(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Simulate an entry persisted before normalization existed.
	legacy := []models.Holding{{ID: "h1", Symbol: "tcs", BuyPrice: 3500, Quantity: 1, CurrentPrice: 3500}}
	if err := s.Portfolio().Save(ctx, legacy); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded := s.Portfolio().Load(ctx)
	if loaded[0].Symbol != "TCS.NS" {
		t.Errorf("legacy symbol = %q after load, want TCS.NS", loaded[0].Symbol)
	}
}

func TestPortfolio_SyncFuncRunsAfterSave(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	var synced []models.Holding
	s.SetSyncFunc(func(_ context.Context, holdings []models.Holding) {
		// Persistence must already be durable when the sync fires.
		synced = holdings
	})

	if _, err := s.Portfolio().Add(ctx, testHolding("TCS.NS", 3500, 1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if len(synced) != 1 {
		t.Fatalf("sync func saw %d holdings, want 1", len(synced))
	}
}

func TestPortfolio_UpdateAbortsWithoutSaving(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Portfolio().Add(ctx, testHolding("TCS.NS", 3500, 1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	boom := errors.New("boom")
	_, err := s.Portfolio().Update(ctx, func(holdings []models.Holding) ([]models.Holding, error) {
		holdings[0].CurrentPrice = 1
		return holdings, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected fn error, got %v", err)
	}

	loaded := s.Portfolio().Load(ctx)
	if loaded[0].CurrentPrice != 3500 {
		t.Errorf("aborted update leaked a write: CurrentPrice = %v", loaded[0].CurrentPrice)
	}
}

func TestSnapshot_RoundTripAndReplace(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if got := s.Snapshots().LoadSnapshot(ctx); len(got) != 0 {
		t.Fatalf("fresh store snapshot not empty: %v", got)
	}

	first := models.PriceSnapshot{"TCS.NS": 3500, "INFY.NS": 1450}
	if err := s.Snapshots().SaveSnapshot(ctx, first); err != nil {
		t.Fatalf("save snapshot failed: %v", err)
	}
	if got := s.Snapshots().LoadSnapshot(ctx); got["TCS.NS"] != 3500 || got["INFY.NS"] != 1450 {
		t.Errorf("snapshot round trip mismatch: %v", got)
	}

	// Wholesale replace: absent symbols disappear.
	second := models.PriceSnapshot{"SBIN.NS": 600}
	if err := s.Snapshots().SaveSnapshot(ctx, second); err != nil {
		t.Fatalf("save snapshot failed: %v", err)
	}
	got := s.Snapshots().LoadSnapshot(ctx)
	if len(got) != 1 || got["SBIN.NS"] != 600 {
		t.Errorf("snapshot replace mismatch: %v", got)
	}
}

func TestKV_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.KV().Get(ctx, "missing"); err == nil {
		t.Error("expected error for missing key")
	}

	if err := s.KV().Set(ctx, "widget_summary", `{"holding_count":2}`); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	val, err := s.KV().Get(ctx, "widget_summary")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if val != `{"holding_count":2}` {
		t.Errorf("value = %q", val)
	}
}
