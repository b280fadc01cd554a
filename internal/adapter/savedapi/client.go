// Package savedapi implements the remote saved-trip store over the trip
// backend's REST collection. A 404 from any endpoint means the backend is
// not rolled out yet and maps to domain.ErrNotImplemented so the policy
// layer can fall back to local storage.
package savedapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/trip-planner/trip-offer-aggregation-service/internal/domain"
	"github.com/trip-planner/trip-offer-aggregation-service/internal/infrastructure/retry"
)

// savedPath is the trip collection path below the configured base URL.
const savedPath = "/api/v1/saved"

// Client is the remote trip store implementing domain.TripStore.
type Client struct {
	baseURL  string
	hc       *http.Client
	retryCfg retry.Config
}

// Config holds client construction options.
type Config struct {
	// BaseURL is the saved-trip backend base URL (no trailing slash)
	BaseURL string

	// Timeout bounds each request; zero means DefaultTimeout
	Timeout time.Duration
}

// DefaultTimeout bounds a single saved-trip backend request.
const DefaultTimeout = 5 * time.Second

// New creates a Client from config, applying defaults for zero values.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	// Transient failures get a couple of retries; a 404 is a permanent
	// "not implemented" signal and goes straight back to the caller.
	retryCfg := retry.DefaultConfig.WithRetryIf(func(err error) bool {
		return !errors.Is(err, domain.ErrNotImplemented)
	})

	return &Client{
		baseURL:  cfg.BaseURL,
		hc:       &http.Client{Timeout: timeout},
		retryCfg: retryCfg,
	}
}

// List implements domain.TripStore.List.
func (c *Client) List(ctx context.Context) ([]domain.SavedTrip, error) {
	return retry.DoWithResult(ctx, func() ([]domain.SavedTrip, error) {
		body, err := c.do(ctx, http.MethodGet, c.baseURL+savedPath, nil)
		if err != nil {
			return nil, err
		}

		var trips []domain.SavedTrip
		if err := json.Unmarshal(body, &trips); err != nil {
			return nil, fmt.Errorf("decode trip list: %w", err)
		}
		return trips, nil
	}, c.retryCfg)
}

// Save implements domain.TripStore.Save. The backend assigns the trip ID and
// save timestamp.
func (c *Client) Save(ctx context.Context, trip domain.NewTrip) (*domain.SavedTrip, error) {
	payload, err := json.Marshal(trip)
	if err != nil {
		return nil, fmt.Errorf("marshal trip: %w", err)
	}

	return retry.DoWithResult(ctx, func() (*domain.SavedTrip, error) {
		body, err := c.do(ctx, http.MethodPost, c.baseURL+savedPath, payload)
		if err != nil {
			return nil, err
		}

		var saved domain.SavedTrip
		if err := json.Unmarshal(body, &saved); err != nil {
			return nil, fmt.Errorf("decode saved trip: %w", err)
		}
		return &saved, nil
	}, c.retryCfg)
}

// Delete implements domain.TripStore.Delete.
func (c *Client) Delete(ctx context.Context, tripID string) (bool, error) {
	return retry.DoWithResult(ctx, func() (bool, error) {
		if _, err := c.do(ctx, http.MethodDelete, c.baseURL+savedPath+"/"+tripID, nil); err != nil {
			return false, err
		}
		return true, nil
	}, c.retryCfg)
}

// do performs one request and returns the response body. A 404 maps to
// domain.ErrNotImplemented; other non-2xx statuses are plain errors.
func (c *Client) do(ctx context.Context, method, url string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call saved-trip backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrNotImplemented
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("saved-trip backend returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}

// Ensure Client implements the trip store port at compile time.
var _ domain.TripStore = (*Client)(nil)
