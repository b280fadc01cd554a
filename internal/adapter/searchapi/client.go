// Package searchapi implements the free-text trip query parser against the
// trip backend's search endpoint. The backend runs a language model over the
// query and returns structured trip parameters.
package searchapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/trip-planner/trip-offer-aggregation-service/internal/domain"
	"github.com/trip-planner/trip-offer-aggregation-service/internal/infrastructure/retry"
)

// searchPath is the text-search path below the configured base URL.
const searchPath = "/api/v1/search"

// DefaultTimeout bounds a single parse request. Parsing goes through a
// language model upstream, so it gets more headroom than plain CRUD calls.
const DefaultTimeout = 15 * time.Second

// Client calls the remote query parser, implementing domain.TripQueryParser.
type Client struct {
	baseURL  string
	hc       *http.Client
	retryCfg retry.Config
}

// Config holds client construction options.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// New creates a Client from config, applying defaults for zero values.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	retryCfg := retry.DefaultConfig.WithRetryIf(func(err error) bool {
		return !errors.Is(err, domain.ErrFeatureUnavailable)
	})

	return &Client{
		baseURL:  cfg.BaseURL,
		hc:       &http.Client{Timeout: timeout},
		retryCfg: retryCfg,
	}
}

type parseRequest struct {
	Query string `json:"query"`
}

// parseResponse accepts the two field conventions the backend has shipped
// over time; the newer snake_case names win when both are present.
type parseResponse struct {
	Destination string `json:"destination"`
	Duration    int    `json:"duration"`
	Month       string `json:"month"`

	DestinationID string `json:"destination_id"`
	DurationDays  int    `json:"duration_days"`
	TravelMonth   string `json:"travel_month"`
}

func (r parseResponse) toQuery() *domain.TripQuery {
	q := &domain.TripQuery{
		DestinationID: r.Destination,
		DurationDays:  r.Duration,
		Month:         r.Month,
	}
	if r.DestinationID != "" {
		q.DestinationID = r.DestinationID
	}
	if r.DurationDays > 0 {
		q.DurationDays = r.DurationDays
	}
	if r.TravelMonth != "" {
		q.Month = r.TravelMonth
	}
	return q
}

// Parse implements domain.TripQueryParser. A 404 from the backend maps to
// domain.ErrFeatureUnavailable.
func (c *Client) Parse(ctx context.Context, query string) (*domain.TripQuery, error) {
	payload, err := json.Marshal(parseRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("marshal query: %w", err)
	}

	return retry.DoWithResult(ctx, func() (*domain.TripQuery, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+searchPath, bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")

		resp, err := c.hc.Do(req)
		if err != nil {
			return nil, fmt.Errorf("call search backend: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound {
			return nil, domain.ErrFeatureUnavailable
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, fmt.Errorf("search backend returned status %d", resp.StatusCode)
		}

		var parsed parseResponse
		if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
			return nil, fmt.Errorf("decode parse result: %w", err)
		}
		return parsed.toQuery(), nil
	}, c.retryCfg)
}

// Ensure Client implements the parser port at compile time.
var _ domain.TripQueryParser = (*Client)(nil)
