// Package notify adapts refresh engine events to the external display
// surfaces: a log-backed notifier standing in for the status-bar
// notification, and a widget bridge mirroring the portfolio summary to the
// system KV area for the home-screen widget to read.
package notify

import (
	"context"

	"github.com/niveshapp/nivesh/internal/common"
	"github.com/niveshapp/nivesh/internal/interfaces"
	"github.com/niveshapp/nivesh/internal/models"
	"github.com/niveshapp/nivesh/internal/storage"
)

// WidgetSummaryKey is the KV key under which the widget summary is mirrored.
const WidgetSummaryKey = "widget_summary"

// Sink receives refresh engine events and fans them out to the notifier log
// and the widget bridge.
type Sink struct {
	logger *common.Logger
	bridge *WidgetBridge
}

// NewSink creates an event sink. bridge may be nil when no widget mirror is
// configured.
func NewSink(logger *common.Logger, bridge *WidgetBridge) *Sink {
	return &Sink{logger: logger, bridge: bridge}
}

// HoldingsUpdated logs the cycle outcome and refreshes the widget summary.
func (s *Sink) HoldingsUpdated(holdings []models.Holding) {
	summary := models.Summarize(holdings)
	s.logger.Info().
		Int("holdings", summary.HoldingCount).
		Float64("current_value", summary.TotalCurrentValue).
		Float64("profit_loss", summary.TotalProfitLoss).
		Msg("Holdings updated")

	if s.bridge != nil {
		s.bridge.Publish(context.Background(), holdings)
	}
}

// PriceAlert logs a significant price move.
func (s *Sink) PriceAlert(alert models.PriceAlert) {
	event := s.logger.Info()
	if alert.PercentChange < 0 {
		event = s.logger.Warn()
	}
	event.
		Str("symbol", alert.Symbol).
		Float64("old_price", alert.OldPrice).
		Float64("new_price", alert.NewPrice).
		Float64("percent_change", alert.PercentChange).
		Msg("Price alert")
}

// WidgetBridge serializes the portfolio summary into the system KV area.
// The widget surface reads it back as plain JSON; it never touches the
// holding list itself.
type WidgetBridge struct {
	kv     interfaces.KeyValueStore
	logger *common.Logger
}

// NewWidgetBridge creates a widget bridge over the given KV store.
func NewWidgetBridge(kv interfaces.KeyValueStore, logger *common.Logger) *WidgetBridge {
	return &WidgetBridge{kv: kv, logger: logger}
}

// Publish writes the summary for the given holdings. Failures are logged,
// never propagated: the widget mirror is best-effort.
func (b *WidgetBridge) Publish(ctx context.Context, holdings []models.Holding) {
	summary := models.Summarize(holdings)
	if err := storage.SetJSON(ctx, b.kv, WidgetSummaryKey, summary); err != nil {
		b.logger.Warn().Err(err).Msg("Widget summary publish failed")
	}
}

// Ensure Sink implements EventSink
var _ interfaces.EventSink = (*Sink)(nil)
