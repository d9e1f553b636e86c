// Package interfaces defines service contracts for Nivesh
package interfaces

import (
	"context"

	"github.com/niveshapp/nivesh/internal/models"
)

// RefreshEngine runs price refresh cycles over the whole portfolio.
type RefreshEngine interface {
	// Refresh executes one cycle: normalize symbols, batch-fetch prices,
	// merge results, detect significant moves, persist snapshot and
	// holdings. It always returns a coherent holding list — the updated
	// list on success, the last persisted list on failure (with the error).
	Refresh(ctx context.Context) ([]models.Holding, error)

	// Summary computes the portfolio summary from the current holdings
	// without side effects.
	Summary(ctx context.Context) models.PortfolioSummary
}

// EventSink receives refresh outcomes. The engine holds no subscriber list;
// a thin adapter pushes values to whatever observes them (notification
// display, widget display, presentation layer).
type EventSink interface {
	// HoldingsUpdated is called once per completed refresh cycle (success
	// path only) with the full updated holding list in portfolio order.
	HoldingsUpdated(holdings []models.Holding)

	// PriceAlert is called zero or more times per cycle, once per holding
	// whose move met the alert threshold.
	PriceAlert(alert models.PriceAlert)
}
