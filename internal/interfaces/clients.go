// Package interfaces defines service contracts for Nivesh
package interfaces

import "context"

// QuoteClient provides access to the external quote-resolution service.
type QuoteClient interface {
	// ResolveSymbol resolves free-text input to a canonical symbol via the
	// remote resolver. Any non-success response or transport error is
	// returned as an error; the caller decides the fallback.
	ResolveSymbol(ctx context.Context, query string) (string, error)

	// FetchPrice retrieves the current price for a canonical symbol.
	// Non-success responses, timeouts, and non-numeric payloads are errors.
	FetchPrice(ctx context.Context, symbol string) (float64, error)

	// FetchPrices retrieves prices for a set of symbols. Per-symbol failures
	// never fail the whole call: a symbol with no fresh, cached, or default
	// price is simply omitted from the result.
	FetchPrices(ctx context.Context, symbols []string) map[string]float64
}
