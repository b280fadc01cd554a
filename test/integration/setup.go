// Package integration provides helpers and integration tests for the trip
// offer aggregation system. Integration tests verify that components work
// together correctly, including HTTP handlers, use cases, and backends.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	httpAdapter "github.com/trip-planner/trip-offer-aggregation-service/internal/adapter/http"
	"github.com/trip-planner/trip-offer-aggregation-service/internal/adapter/localstore"
	"github.com/trip-planner/trip-offer-aggregation-service/internal/domain"
	"github.com/trip-planner/trip-offer-aggregation-service/internal/usecase"
)

// fallbackSeed keeps fallback offers deterministic across integration runs.
const fallbackSeed = 1

// TestServer wraps an Echo instance and provides helper methods for
// integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.TripHandler
}

// NewTestServer creates a test server over the given offer source. Saved
// trips run remote-first against an unavailable remote so they land in a
// throwaway local store; text search reports the feature as unavailable.
func NewTestServer(t *testing.T, source domain.OfferSource) *TestServer {
	t.Helper()

	offers := usecase.NewOfferSearchUseCase(source, usecase.NewMockOfferGenerator(fallbackSeed), usecase.Config{}, zerolog.Nop())

	local := localstore.New(filepath.Join(t.TempDir(), "trips.json"), nil)
	trips := usecase.NewSavedTripsUseCase(unavailableStore{}, local, zerolog.Nop())

	text := usecase.NewTextSearchUseCase(unavailableParser{})

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewTripHandler(offers, trips, text)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// unavailableStore mimics a saved-trip backend that is not rolled out.
type unavailableStore struct{}

func (unavailableStore) List(ctx context.Context) ([]domain.SavedTrip, error) {
	return nil, domain.ErrNotImplemented
}

func (unavailableStore) Save(ctx context.Context, trip domain.NewTrip) (*domain.SavedTrip, error) {
	return nil, domain.ErrNotImplemented
}

func (unavailableStore) Delete(ctx context.Context, tripID string) (bool, error) {
	return false, domain.ErrNotImplemented
}

// unavailableParser mimics a missing text-search backend.
type unavailableParser struct{}

func (unavailableParser) Parse(ctx context.Context, query string) (*domain.TripQuery, error) {
	return nil, domain.ErrFeatureUnavailable
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method string
	Path   string
	Body   interface{}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request against the server and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest performs an offer search with the given body.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/offers/search",
		Body:   body,
	})
}

// ListTripsRequest lists saved trips.
func (ts *TestServer) ListTripsRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/trips",
	})
}

// SaveTripRequest saves a trip.
func (ts *TestServer) SaveTripRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/trips",
		Body:   body,
	})
}

// DeleteTripRequest deletes a trip by ID.
func (ts *TestServer) DeleteTripRequest(tripID string) Response {
	return ts.Do(Request{
		Method: http.MethodDelete,
		Path:   "/api/v1/trips/" + tripID,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ErrorDetail mirrors the error payload of a failed response.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details"`
}

// ParseData decodes the response body into out, failing the test on error.
func (r *Response) ParseData(t *testing.T, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(r.Body, out); err != nil {
		t.Fatalf("decode response body: %v (body: %s)", err, r.Body)
	}
}

// ParseError decodes the response body as an error payload.
func (r *Response) ParseError(t *testing.T) ErrorDetail {
	t.Helper()
	var detail ErrorDetail
	if err := json.Unmarshal(r.Body, &detail); err != nil {
		t.Fatalf("decode error payload: %v (body: %s)", err, r.Body)
	}
	return detail
}

// DefaultSearchRequest returns a valid search request body for testing.
func DefaultSearchRequest() map[string]interface{} {
	return map[string]interface{}{
		"destination_id": "paris",
		"duration_days":  7,
		"month":          "2024-04",
	}
}

// DefaultSearchCriteria returns valid criteria for driving use cases directly.
func DefaultSearchCriteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		DestinationID: "paris",
		DurationDays:  7,
		Month:         "2024-04",
	}
}
