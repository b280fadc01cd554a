package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchCriteria_Validate(t *testing.T) {
	validCriteria := func() *SearchCriteria {
		return &SearchCriteria{
			DestinationID: "tokyo",
			DurationDays:  7,
			Month:         "2024-04",
		}
	}

	tests := []struct {
		name        string
		modify      func(*SearchCriteria)
		wantErr     error
		errContains string
	}{
		{
			name:   "valid criteria passes",
			modify: func(c *SearchCriteria) {},
		},
		{
			name:        "empty destination fails",
			modify:      func(c *SearchCriteria) { c.DestinationID = "" },
			wantErr:     ErrInvalidRequest,
			errContains: "destination_id is required",
		},
		{
			name:    "unknown destination fails",
			modify:  func(c *SearchCriteria) { c.DestinationID = "atlantis" },
			wantErr: ErrUnknownDestination,
		},
		{
			name:        "zero duration fails",
			modify:      func(c *SearchCriteria) { c.DurationDays = 0 },
			wantErr:     ErrInvalidRequest,
			errContains: "at least 1",
		},
		{
			name:        "excessive duration fails",
			modify:      func(c *SearchCriteria) { c.DurationDays = 32 },
			wantErr:     ErrInvalidRequest,
			errContains: "cannot exceed",
		},
		{
			name:        "empty month fails",
			modify:      func(c *SearchCriteria) { c.Month = "" },
			wantErr:     ErrInvalidRequest,
			errContains: "month is required",
		},
		{
			name:        "malformed month fails",
			modify:      func(c *SearchCriteria) { c.Month = "2024/04" },
			wantErr:     ErrInvalidRequest,
			errContains: "YYYY-MM",
		},
		{
			name:        "month out of range fails",
			modify:      func(c *SearchCriteria) { c.Month = "2024-13" },
			wantErr:     ErrInvalidRequest,
			errContains: "YYYY-MM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria := validCriteria()
			tt.modify(criteria)

			err := criteria.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.errContains != "" {
				assert.Contains(t, err.Error(), tt.errContains)
			}
		})
	}
}

func TestSearchCriteria_Destination(t *testing.T) {
	criteria := &SearchCriteria{DestinationID: "bali", DurationDays: 5, Month: "2024-06"}
	assert.NoError(t, criteria.Validate())
	assert.Equal(t, "DPS", criteria.Destination().Airport)
}
