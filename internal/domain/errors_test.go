package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceError(t *testing.T) {
	window := DateWindow{DepartureDate: "2024-04-01", ReturnDate: "2024-04-07"}
	cause := errors.New("connection refused")

	err := NewSourceError(window, cause)

	assert.Contains(t, err.Error(), "2024-04-01")
	assert.Contains(t, err.Error(), "connection refused")
	assert.True(t, errors.Is(err, cause))

	var srcErr *SourceError
	assert.True(t, errors.As(err, &srcErr))
	assert.Equal(t, window, srcErr.Window)
}

func TestRPCError(t *testing.T) {
	err := &RPCError{Code: -32601, Message: "Method not found"}

	assert.Contains(t, err.Error(), "-32601")
	assert.Contains(t, err.Error(), "Method not found")

	wrapped := NewSourceError(DateWindow{}, err)
	var rpcErr *RPCError
	assert.True(t, errors.As(wrapped, &rpcErr))
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	sentinels := []error{ErrInvalidRequest, ErrNotImplemented, ErrFeatureUnavailable, ErrUnknownDestination}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.False(t, errors.Is(a, b))
		}
	}
}
