package flightrpc

import "github.com/trip-planner/trip-offer-aggregation-service/internal/domain"

// rpcRequest is the JSON-RPC request envelope.
type rpcRequest struct {
	JSONRPC string              `json:"jsonrpc"`
	Method  string              `json:"method"`
	Params  searchFlightsParams `json:"params"`
	ID      string              `json:"id"`
}

// searchFlightsParams are the parameters of the searchFlights method.
type searchFlightsParams struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date"`
}

// rpcResponse is the JSON-RPC response envelope. Exactly one of Result and
// Error is set on a conforming backend.
type rpcResponse struct {
	JSONRPC string           `json:"jsonrpc"`
	Result  *searchResult    `json:"result"`
	Error   *domain.RPCError `json:"error"`
	ID      string           `json:"id"`
}

// searchResult is the searchFlights result payload.
type searchResult struct {
	// Flights is the offer list for the queried window
	Flights []domain.RawOffer `json:"flights"`

	// Cheapest is the backend's pick of the lowest-priced offer; informative
	// only, the aggregator re-sorts everything
	Cheapest *domain.RawOffer `json:"cheapest,omitempty"`
}
