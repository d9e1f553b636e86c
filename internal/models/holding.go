// Package models defines data structures for Nivesh
package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Sentinel errors surfaced by the portfolio store and the quote client.
// The presentation layer distinguishes failure kinds by these values.
var (
	// ErrDuplicateSymbol is returned by Add when a holding with the same
	// normalized symbol already exists. The portfolio is left unchanged.
	ErrDuplicateSymbol = errors.New("holding with this symbol already exists")

	// ErrHoldingNotFound is returned by Remove when no holding matches the
	// given id. Removing a missing id is a reported error, not a no-op.
	ErrHoldingNotFound = errors.New("holding not found")

	// ErrResolutionFailed is returned when free-text input could not be
	// mapped to a canonical symbol.
	ErrResolutionFailed = errors.New("symbol resolution failed")

	// ErrPriceUnavailable is returned when no fresh, cached, or default
	// price exists for a symbol.
	ErrPriceUnavailable = errors.New("price unavailable")
)

// Holding represents one portfolio position.
// BuyPrice, Quantity, and AcquiredAt are immutable after creation;
// CurrentPrice and DisplayName are mutated only by the refresh engine.
type Holding struct {
	ID           string    `json:"id"`
	Symbol       string    `json:"symbol"` // canonical, market-suffixed (e.g. "TCS.NS")
	DisplayName  string    `json:"display_name"`
	BuyPrice     float64   `json:"buy_price"`
	Quantity     int64     `json:"quantity"`
	CurrentPrice float64   `json:"current_price"`
	AcquiredAt   time.Time `json:"acquired_at"`
}

// NewHolding creates a holding with a fresh id and acquisition timestamp.
// CurrentPrice seeds from currentPrice when positive, otherwise from buyPrice
// so a holding never starts with a non-positive price.
func NewHolding(symbol, displayName string, buyPrice float64, quantity int64, currentPrice float64) Holding {
	if currentPrice <= 0 {
		currentPrice = buyPrice
	}
	return Holding{
		ID:           uuid.NewString(),
		Symbol:       symbol,
		DisplayName:  displayName,
		BuyPrice:     buyPrice,
		Quantity:     quantity,
		CurrentPrice: currentPrice,
		AcquiredAt:   time.Now().UTC(),
	}
}

// TotalInvestment returns buy price × quantity.
func (h Holding) TotalInvestment() float64 {
	return h.BuyPrice * float64(h.Quantity)
}

// CurrentValue returns current price × quantity.
func (h Holding) CurrentValue() float64 {
	return h.CurrentPrice * float64(h.Quantity)
}

// ProfitLoss returns current value minus total investment.
func (h Holding) ProfitLoss() float64 {
	return h.CurrentValue() - h.TotalInvestment()
}

// ProfitLossPercent returns the profit/loss as a percentage of the
// investment, or 0 when nothing was invested.
func (h Holding) ProfitLossPercent() float64 {
	invested := h.TotalInvestment()
	if invested == 0 {
		return 0
	}
	return h.ProfitLoss() / invested * 100
}

// IsProfit reports whether the position is at or above break-even.
func (h Holding) IsProfit() bool {
	return h.ProfitLoss() >= 0
}

// PriceSnapshot maps canonical symbol to the price recorded in the previous
// refresh cycle. It is fully replaced each cycle and exists only to support
// move detection.
type PriceSnapshot map[string]float64

// PriceAlert describes a significant price move detected during a refresh cycle.
type PriceAlert struct {
	Symbol        string  `json:"symbol"`
	OldPrice      float64 `json:"old_price"`
	NewPrice      float64 `json:"new_price"`
	PercentChange float64 `json:"percent_change"`
}

// PortfolioSummary aggregates the portfolio for display surfaces
// (widget, notification). Computable at any time without side effects.
type PortfolioSummary struct {
	TotalInvested     float64 `json:"total_invested"`
	TotalCurrentValue float64 `json:"total_current_value"`
	TotalProfitLoss   float64 `json:"total_profit_loss"`
	ProfitLossPercent float64 `json:"profit_loss_percent"`
	HoldingCount      int     `json:"holding_count"`
}

// Summarize computes the portfolio summary over a holding list.
func Summarize(holdings []Holding) PortfolioSummary {
	s := PortfolioSummary{HoldingCount: len(holdings)}
	for _, h := range holdings {
		s.TotalInvested += h.TotalInvestment()
		s.TotalCurrentValue += h.CurrentValue()
	}
	s.TotalProfitLoss = s.TotalCurrentValue - s.TotalInvested
	if s.TotalInvested != 0 {
		s.ProfitLossPercent = s.TotalProfitLoss / s.TotalInvested * 100
	}
	return s
}
