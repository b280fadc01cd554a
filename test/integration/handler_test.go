package integration

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpAdapter "github.com/trip-planner/trip-offer-aggregation-service/internal/adapter/http"
	"github.com/trip-planner/trip-offer-aggregation-service/internal/domain"
	"github.com/trip-planner/trip-offer-aggregation-service/test/mock"
	"github.com/trip-planner/trip-offer-aggregation-service/test/testutil"
)

func TestHTTP_SearchOffers_Live(t *testing.T) {
	source := mock.NewSource().WithOffers(testutil.RawOffers("ICN", "CDG", 3, 850000))
	ts := NewTestServer(t, source)

	resp := ts.SearchRequest(DefaultSearchRequest())

	require.Equal(t, http.StatusOK, resp.Code)

	var data httpAdapter.SearchResponseDTO
	resp.ParseData(t, &data)

	assert.Equal(t, "paris", data.SearchCriteria.DestinationID)
	assert.Equal(t, 7, data.SearchCriteria.DurationDays)
	assert.Equal(t, "2024-04", data.SearchCriteria.Month)

	assert.Equal(t, "live", data.Metadata.Source)
	assert.Equal(t, 5, data.Metadata.WindowsQueried)
	assert.Equal(t, 0, data.Metadata.WindowsFailed)
	assert.Equal(t, len(data.Offers), data.Metadata.TotalResults)
	assert.Len(t, data.Offers, 10)

	for i, offer := range data.Offers {
		assert.NotEmpty(t, offer.ID)
		assert.NotEmpty(t, offer.Airline)
		assert.NotEmpty(t, offer.AirlineCode)
		assert.Regexp(t, `^\d{2}:\d{2}$`, offer.DepartureTime)
		assert.Regexp(t, `^2024-04-\d{2}$`, offer.DepartureDate)
		if i > 0 {
			assert.LessOrEqual(t, data.Offers[i-1].Price, offer.Price)
		}
	}
}

func TestHTTP_SearchOffers_Fallback(t *testing.T) {
	source := mock.NewSource().WithError(errors.New("backend down"))
	ts := NewTestServer(t, source)

	resp := ts.SearchRequest(DefaultSearchRequest())

	require.Equal(t, http.StatusOK, resp.Code)

	var data httpAdapter.SearchResponseDTO
	resp.ParseData(t, &data)

	assert.Equal(t, "fallback", data.Metadata.Source)
	assert.Equal(t, 5, data.Metadata.WindowsFailed)
	assert.NotEmpty(t, data.Offers)
}

func TestHTTP_SearchOffers_Validation(t *testing.T) {
	ts := NewTestServer(t, mock.NewSource())

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{
			name: "missing destination",
			body: map[string]interface{}{"duration_days": 7, "month": "2024-04"},
		},
		{
			name: "zero duration",
			body: map[string]interface{}{"destination_id": "paris", "duration_days": 0, "month": "2024-04"},
		},
		{
			name: "bad month format",
			body: map[string]interface{}{"destination_id": "paris", "duration_days": 7, "month": "April 2024"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ts.SearchRequest(tt.body)

			require.Equal(t, http.StatusBadRequest, resp.Code)
			detail := resp.ParseError(t)
			assert.Equal(t, "validation_error", detail.Code)
			assert.NotEmpty(t, detail.Details)
		})
	}
}

func TestHTTP_SearchOffers_UnknownDestination(t *testing.T) {
	ts := NewTestServer(t, mock.NewSource())

	body := DefaultSearchRequest()
	body["destination_id"] = "atlantis"
	resp := ts.SearchRequest(body)

	require.Equal(t, http.StatusBadRequest, resp.Code)
	detail := resp.ParseError(t)
	assert.Equal(t, "validation_error", detail.Code)
	// Unknown catalog IDs are caught by request validation, so the
	// specifics live in the details map rather than the message.
	assert.Contains(t, detail.Details["destination_id"], "known destination")
}

func TestHTTP_TripsCRUDFlow(t *testing.T) {
	// The remote store is unavailable, so the whole flow lands in the
	// local store transparently.
	ts := NewTestServer(t, mock.NewSource())

	// Empty list first.
	resp := ts.ListTripsRequest()
	require.Equal(t, http.StatusOK, resp.Code)

	var list httpAdapter.TripListDTO
	resp.ParseData(t, &list)
	assert.Equal(t, 0, list.Total)
	assert.NotNil(t, list.Trips)

	// Save a trip.
	saveBody := map[string]interface{}{
		"destination":   "파리",
		"destinationId": "paris",
		"duration":      7,
		"month":         "2024-04",
		"flight": map[string]interface{}{
			"id":      "flight-1",
			"airline": "대한항공",
			"price":   950000,
		},
	}
	resp = ts.SaveTripRequest(saveBody)
	require.Equal(t, http.StatusCreated, resp.Code)

	var saved domain.SavedTrip
	resp.ParseData(t, &saved)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "paris", saved.DestinationID)
	// Country and airport come from the catalog when omitted.
	assert.Equal(t, "CDG", saved.Airport)
	assert.False(t, saved.SavedAt.IsZero())

	// The trip shows up in the list.
	resp = ts.ListTripsRequest()
	require.Equal(t, http.StatusOK, resp.Code)
	resp.ParseData(t, &list)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, saved.ID, list.Trips[0].ID)

	// Delete it.
	resp = ts.DeleteTripRequest(saved.ID)
	require.Equal(t, http.StatusOK, resp.Code)

	var del httpAdapter.DeleteTripDTO
	resp.ParseData(t, &del)
	assert.True(t, del.Deleted)
	assert.Equal(t, saved.ID, del.ID)

	// Deleting again is a no-op.
	resp = ts.DeleteTripRequest(saved.ID)
	require.Equal(t, http.StatusOK, resp.Code)
	resp.ParseData(t, &del)
	assert.False(t, del.Deleted)

	// And the list is empty again.
	resp = ts.ListTripsRequest()
	resp.ParseData(t, &list)
	assert.Equal(t, 0, list.Total)
}

func TestHTTP_SaveTrip_Validation(t *testing.T) {
	ts := NewTestServer(t, mock.NewSource())

	resp := ts.SaveTripRequest(map[string]interface{}{
		"destinationId": "paris",
	})

	require.Equal(t, http.StatusBadRequest, resp.Code)
	detail := resp.ParseError(t)
	assert.Equal(t, "validation_error", detail.Code)
}

func TestHTTP_TextSearch_FeatureUnavailable(t *testing.T) {
	ts := NewTestServer(t, mock.NewSource())

	resp := ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/search",
		Body:   map[string]interface{}{"query": "4월에 파리 일주일"},
	})

	require.Equal(t, http.StatusNotImplemented, resp.Code)
	detail := resp.ParseError(t)
	assert.Equal(t, "feature_unavailable", detail.Code)
}

func TestHTTP_TextSearch_EmptyQuery(t *testing.T) {
	ts := NewTestServer(t, mock.NewSource())

	resp := ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/search",
		Body:   map[string]interface{}{"query": "   "},
	})

	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_ListDestinations(t *testing.T) {
	ts := NewTestServer(t, mock.NewSource())

	resp := ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/destinations",
	})

	require.Equal(t, http.StatusOK, resp.Code)

	var data httpAdapter.DestinationListDTO
	resp.ParseData(t, &data)
	assert.Equal(t, len(domain.Destinations), len(data.Destinations))

	ids := make(map[string]bool)
	for _, d := range data.Destinations {
		ids[d.ID] = true
	}
	assert.True(t, ids["paris"])
	assert.True(t, ids["tokyo"])
}

func TestHTTP_Health(t *testing.T) {
	ts := NewTestServer(t, mock.NewSource())

	resp := ts.HealthRequest()

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, string(resp.Body), `"status":"ok"`)
}

func TestHTTP_MalformedJSONBody(t *testing.T) {
	ts := NewTestServer(t, mock.NewSource())

	// A JSON string is valid JSON but not an object the request can bind.
	resp := ts.SearchRequest("not-an-object")

	require.Equal(t, http.StatusBadRequest, resp.Code)
}
