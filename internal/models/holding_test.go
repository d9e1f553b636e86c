package models

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDerivedFields_Profit(t *testing.T) {
	h := Holding{Symbol: "TCS.NS", BuyPrice: 100, Quantity: 10, CurrentPrice: 110}

	if got := h.TotalInvestment(); !almostEqual(got, 1000) {
		t.Errorf("TotalInvestment = %v, want 1000", got)
	}
	if got := h.CurrentValue(); !almostEqual(got, 1100) {
		t.Errorf("CurrentValue = %v, want 1100", got)
	}
	if got := h.ProfitLoss(); !almostEqual(got, 100) {
		t.Errorf("ProfitLoss = %v, want 100", got)
	}
	if got := h.ProfitLossPercent(); !almostEqual(got, 10.0) {
		t.Errorf("ProfitLossPercent = %v, want 10.0", got)
	}
	if !h.IsProfit() {
		t.Error("IsProfit = false, want true")
	}
}

func TestDerivedFields_Loss(t *testing.T) {
	h := Holding{Symbol: "TCS.NS", BuyPrice: 100, Quantity: 10, CurrentPrice: 90}

	if got := h.ProfitLoss(); !almostEqual(got, -100) {
		t.Errorf("ProfitLoss = %v, want -100", got)
	}
	if got := h.ProfitLossPercent(); !almostEqual(got, -10.0) {
		t.Errorf("ProfitLossPercent = %v, want -10.0", got)
	}
	if h.IsProfit() {
		t.Error("IsProfit = true, want false")
	}
}

func TestDerivedFields_BreakEvenIsProfit(t *testing.T) {
	h := Holding{BuyPrice: 50, Quantity: 4, CurrentPrice: 50}
	if !h.IsProfit() {
		t.Error("break-even position should report IsProfit = true")
	}
}

func TestProfitLossPercent_ZeroInvestment(t *testing.T) {
	h := Holding{BuyPrice: 0, Quantity: 0, CurrentPrice: 100}
	if got := h.ProfitLossPercent(); got != 0 {
		t.Errorf("ProfitLossPercent with zero investment = %v, want 0", got)
	}
}

func TestNewHolding_SeedsCurrentPriceFromBuyPrice(t *testing.T) {
	h := NewHolding("INFY.NS", "Infosys", 1500.50, 3, 0)
	if h.CurrentPrice != 1500.50 {
		t.Errorf("CurrentPrice = %v, want buy price 1500.50", h.CurrentPrice)
	}
	if h.ID == "" {
		t.Error("expected a generated id")
	}
	if h.AcquiredAt.IsZero() {
		t.Error("expected AcquiredAt to be set")
	}

	h2 := NewHolding("INFY.NS", "Infosys", 1500.50, 3, 1520)
	if h2.CurrentPrice != 1520 {
		t.Errorf("CurrentPrice = %v, want fetched price 1520", h2.CurrentPrice)
	}
	if h2.ID == h.ID {
		t.Error("ids must be unique per holding")
	}
}

func TestSummarize(t *testing.T) {
	holdings := []Holding{
		{BuyPrice: 100, Quantity: 10, CurrentPrice: 110}, // +100
		{BuyPrice: 200, Quantity: 5, CurrentPrice: 180},  // -100
	}

	s := Summarize(holdings)
	if s.HoldingCount != 2 {
		t.Errorf("HoldingCount = %d, want 2", s.HoldingCount)
	}
	if !almostEqual(s.TotalInvested, 2000) {
		t.Errorf("TotalInvested = %v, want 2000", s.TotalInvested)
	}
	if !almostEqual(s.TotalCurrentValue, 2000) {
		t.Errorf("TotalCurrentValue = %v, want 2000", s.TotalCurrentValue)
	}
	if !almostEqual(s.TotalProfitLoss, 0) {
		t.Errorf("TotalProfitLoss = %v, want 0", s.TotalProfitLoss)
	}
	if !almostEqual(s.ProfitLossPercent, 0) {
		t.Errorf("ProfitLossPercent = %v, want 0", s.ProfitLossPercent)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.HoldingCount != 0 || s.TotalInvested != 0 || s.ProfitLossPercent != 0 {
		t.Errorf("empty summary not zeroed: %+v", s)
	}
}
