// Package refresh orchestrates price refresh cycles over the portfolio:
// normalize every stored symbol, deduplicate, batch-fetch prices, merge the
// results back onto each holding, flag significant moves, and persist the
// outcome exactly once per cycle.
package refresh

import (
	"context"
	"math"
	"time"

	"github.com/niveshapp/nivesh/internal/common"
	"github.com/niveshapp/nivesh/internal/interfaces"
	"github.com/niveshapp/nivesh/internal/metrics"
	"github.com/niveshapp/nivesh/internal/models"
	"github.com/niveshapp/nivesh/internal/symbols"
)

// DefaultAlertThreshold is the minimum absolute percent move, against the
// previous cycle's snapshot, that raises a price alert. The boundary is
// inclusive: a move of exactly the threshold alerts.
const DefaultAlertThreshold = 5.0

// Service implements the RefreshEngine.
type Service struct {
	storage        interfaces.Storage
	client         interfaces.QuoteClient
	sink           interfaces.EventSink
	metrics        *metrics.Metrics
	logger         *common.Logger
	alertThreshold float64
	now            func() time.Time // injectable clock for testing
}

// NewService creates a refresh engine. sink and m may be nil; a
// non-positive threshold falls back to DefaultAlertThreshold.
func NewService(storage interfaces.Storage, client interfaces.QuoteClient, sink interfaces.EventSink, m *metrics.Metrics, logger *common.Logger, alertThreshold float64) *Service {
	if alertThreshold <= 0 {
		alertThreshold = DefaultAlertThreshold
	}
	return &Service{
		storage:        storage,
		client:         client,
		sink:           sink,
		metrics:        m,
		logger:         logger,
		alertThreshold: alertThreshold,
		now:            time.Now,
	}
}

// Refresh executes one refresh cycle. The cycle is atomic from the caller's
// perspective: it returns either the updated holding set or, on failure, the
// last persisted set unchanged. Per-symbol fetch failures never abort the
// cycle; storage failures do. A failed cycle is not retried here — the
// scheduler's next tick is the natural retry.
func (s *Service) Refresh(ctx context.Context) ([]models.Holding, error) {
	start := s.now()

	current := s.storage.Portfolio().Load(ctx)
	if len(current) == 0 {
		return current, nil
	}

	var alerts []models.PriceAlert
	var updatedCount int

	updated, err := s.storage.Portfolio().Update(ctx, func(holdings []models.Holding) ([]models.Holding, error) {
		previous := s.storage.Snapshots().LoadSnapshot(ctx)

		// Normalize every stored symbol to its request symbol. Legacy
		// entries keep working because the merge below also falls back to
		// the stored symbol key.
		requestSymbols := make([]string, len(holdings))
		unique := make([]string, 0, len(holdings))
		seen := make(map[string]struct{}, len(holdings))
		for i, h := range holdings {
			req := symbols.Normalize(h.Symbol)
			if req == "" {
				req = h.Symbol
			}
			requestSymbols[i] = req
			if _, ok := seen[req]; !ok {
				seen[req] = struct{}{}
				unique = append(unique, req)
			}
		}

		prices := s.client.FetchPrices(ctx, unique)

		for i := range holdings {
			req := requestSymbols[i]

			price, ok := prices[req]
			if !ok {
				price, ok = prices[holdings[i].Symbol]
			}

			if ok && price > 0 {
				if old, hasOld := previous[req]; hasOld && old > 0 && price != old {
					pct := (price - old) / old * 100
					if math.Abs(pct) >= s.alertThreshold {
						alerts = append(alerts, models.PriceAlert{
							Symbol:        req,
							OldPrice:      old,
							NewPrice:      price,
							PercentChange: pct,
						})
					}
				}
				holdings[i].CurrentPrice = price
				holdings[i].DisplayName = symbols.DisplayName(req)
				updatedCount++
			}
			// Failed fetch: previous CurrentPrice and DisplayName stand.

			// Symbol migration: the canonical request symbol is recorded
			// onto the holding regardless of fetch outcome.
			holdings[i].Symbol = req
		}

		// The snapshot is replaced wholesale with this cycle's fetched
		// prices; symbols that failed simply drop out.
		if err := s.storage.Snapshots().SaveSnapshot(ctx, models.PriceSnapshot(prices)); err != nil {
			return nil, err
		}

		return holdings, nil
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("Refresh cycle aborted, prior state stands")
		if s.metrics != nil {
			s.metrics.RefreshFailuresTotal.Inc()
		}
		return s.storage.Portfolio().Load(ctx), err
	}

	for _, alert := range alerts {
		if s.sink != nil {
			s.sink.PriceAlert(alert)
		}
		if s.metrics != nil {
			s.metrics.PriceAlertsTotal.Inc()
		}
	}
	if s.sink != nil {
		s.sink.HoldingsUpdated(updated)
	}

	if s.metrics != nil {
		s.metrics.RefreshCyclesTotal.Inc()
		s.metrics.HoldingsUpdated.Set(float64(updatedCount))
		s.metrics.RefreshDuration.Observe(s.now().Sub(start).Seconds())
	}

	s.logger.Info().
		Int("holdings", len(updated)).
		Int("updated", updatedCount).
		Int("alerts", len(alerts)).
		Dur("elapsed", s.now().Sub(start)).
		Msg("Refresh cycle complete")

	return updated, nil
}

// Summary computes the portfolio summary from the current holdings.
func (s *Service) Summary(ctx context.Context) models.PortfolioSummary {
	return models.Summarize(s.storage.Portfolio().Load(ctx))
}

// Ensure Service implements RefreshEngine
var _ interfaces.RefreshEngine = (*Service)(nil)
