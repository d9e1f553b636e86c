package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/niveshapp/nivesh/internal/common"
	"github.com/niveshapp/nivesh/internal/models"
	"github.com/niveshapp/nivesh/internal/symbols"
)

// --- System handlers ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"version": common.GetVersion(),
	})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"version": common.GetFullVersion(),
	})
}

// --- Portfolio handlers ---

func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	holdings := s.app.Storage.Portfolio().Load(r.Context())
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"holdings": holdings,
	})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, s.app.Engine.Summary(r.Context()))
}

// handleRefresh forces a refresh cycle outside the scheduler's cadence.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	holdings, err := s.app.Engine.Refresh(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Refresh failed: %v", err))
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"holdings": holdings,
	})
}

type addHoldingRequest struct {
	Symbol   string  `json:"symbol"` // free text: ticker, alias, or company name
	BuyPrice float64 `json:"buy_price"`
	Quantity int64   `json:"quantity"`
}

func (s *Server) handleHoldingAdd(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req addHoldingRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.Symbol) == "" {
		WriteError(w, http.StatusBadRequest, "symbol is required")
		return
	}
	if req.BuyPrice <= 0 {
		WriteError(w, http.StatusBadRequest, "buy_price must be positive")
		return
	}
	if req.Quantity <= 0 {
		WriteError(w, http.StatusBadRequest, "quantity must be positive")
		return
	}

	ctx := r.Context()

	// Local normalization first; fall back to the remote resolver for
	// free-text queries the alias table doesn't know.
	canonical := symbols.Normalize(req.Symbol)
	if !strings.Contains(canonical, ".") {
		if resolved, err := s.app.QuoteClient.ResolveSymbol(ctx, req.Symbol); err == nil {
			canonical = symbols.Normalize(resolved)
		}
	}
	if canonical == "" {
		WriteErrorWithCode(w, http.StatusUnprocessableEntity,
			fmt.Sprintf("Could not resolve %q to a symbol", req.Symbol), "resolution_failed")
		return
	}

	// Seed the current price; on fetch failure NewHolding falls back to
	// the buy price.
	currentPrice, err := s.app.QuoteClient.FetchPrice(ctx, canonical)
	if err != nil {
		s.logger.Warn().Err(err).Str("symbol", canonical).Msg("Initial price fetch failed, seeding from buy price")
		currentPrice = 0
	}

	h := models.NewHolding(canonical, symbols.DisplayName(canonical), req.BuyPrice, req.Quantity, currentPrice)

	holdings, err := s.app.Storage.Portfolio().Add(ctx, h)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateSymbol) {
			WriteErrorWithCode(w, http.StatusConflict,
				fmt.Sprintf("Holding for %s already exists", canonical), "duplicate_symbol")
			return
		}
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Error adding holding: %v", err))
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"holding":  h,
		"holdings": holdings,
	})
}

func (s *Server) handleHoldingRemove(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodDelete) {
		return
	}

	id := PathParam(r, "/api/portfolio/holdings/", "")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "holding id is required")
		return
	}

	holdings, err := s.app.Storage.Portfolio().Remove(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrHoldingNotFound) {
			WriteErrorWithCode(w, http.StatusNotFound,
				fmt.Sprintf("No holding with id %s", id), "holding_not_found")
			return
		}
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Error removing holding: %v", err))
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"holdings": holdings,
	})
}
