// Package flightrpc implements the remote offer source over the flight
// search backend's JSON-RPC endpoint. Each date window is one request;
// failures are returned to the caller, which treats them as per-window and
// never fatal.
package flightrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/trip-planner/trip-offer-aggregation-service/internal/domain"
)

// rpcPath is the JSON-RPC endpoint below the configured base URL.
const rpcPath = "/rpc"

// methodSearchFlights is the only method this client calls.
const methodSearchFlights = "searchFlights"

// Client is a JSON-RPC flight search client implementing domain.OfferSource.
type Client struct {
	baseURL string
	hc      *http.Client
	limiter *rate.Limiter
}

// Config holds client construction options.
type Config struct {
	// BaseURL is the backend base URL (no trailing slash)
	BaseURL string

	// Timeout bounds each request; zero means DefaultTimeout
	Timeout time.Duration

	// RequestsPerSecond is the client-side rate limit; zero means DefaultRPS
	RequestsPerSecond int
}

// Default transport settings.
const (
	DefaultTimeout = 5 * time.Second
	DefaultRPS     = 10
)

// New creates a Client from config, applying defaults for zero values.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = DefaultRPS
	}

	return &Client{
		baseURL: cfg.BaseURL,
		hc:      &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(rps), rps),
	}
}

// FetchOffers implements domain.OfferSource. It issues exactly one
// searchFlights call for the window; there is no retry on this path.
func (c *Client) FetchOffers(ctx context.Context, origin, destination string, window domain.DateWindow) ([]domain.RawOffer, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	reqBody := rpcRequest{
		JSONRPC: "2.0",
		Method:  methodSearchFlights,
		Params: searchFlightsParams{
			Origin:        origin,
			Destination:   destination,
			DepartureDate: window.DepartureDate,
			ReturnDate:    window.ReturnDate,
		},
		ID: "req-" + window.DepartureDate,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal rpc request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+rpcPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build rpc request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call flight search backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("flight search backend returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read rpc response: %w", err)
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(body, &rpcResp); err != nil {
		return nil, fmt.Errorf("decode rpc response: %w", err)
	}
	if rpcResp.Error != nil {
		return nil, rpcResp.Error
	}
	if rpcResp.Result == nil {
		return nil, fmt.Errorf("rpc response carries neither result nor error")
	}

	return rpcResp.Result.Flights, nil
}

// Ensure Client implements the offer source port at compile time.
var _ domain.OfferSource = (*Client)(nil)
