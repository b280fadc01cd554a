package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupAirlineCode(t *testing.T) {
	tests := []struct {
		name     string
		airline  string
		wantCode string
	}{
		{
			name:     "exact table match",
			airline:  "대한항공",
			wantCode: "KE",
		},
		{
			name:     "table match with surrounding text",
			airline:  "대한항공 직항",
			wantCode: "KE",
		},
		{
			name:     "three letter code entry",
			airline:  "전일본공수",
			wantCode: "ANA",
		},
		{
			name:     "whitespace is trimmed",
			airline:  "  카타르항공  ",
			wantCode: "QR",
		},
		{
			name:     "unknown latin name falls back to letter prefix",
			airline:  "Singapore Airlines",
			wantCode: "SI",
		},
		{
			name:     "fallback skips non letters",
			airline:  "9Air Cargo",
			wantCode: "AI",
		},
		{
			name:     "empty name yields empty code",
			airline:  "",
			wantCode: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, LookupAirlineCode(tt.airline))
		})
	}
}

func TestFormatDurationLabel(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{minutes: 510, want: "8h 30m"},
		{minutes: 480, want: "8h"},
		{minutes: 45, want: "45m"},
		{minutes: 0, want: "0m"},
		{minutes: 60, want: "1h"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDurationLabel(tt.minutes))
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "08:00", FormatClock(8, 0))
	assert.Equal(t, "23:59", FormatClock(23, 59))
	assert.Equal(t, "00:07", FormatClock(0, 7))
}

func TestFindDestination(t *testing.T) {
	d, ok := FindDestination("paris")
	assert.True(t, ok)
	assert.Equal(t, "CDG", d.Airport)
	assert.Equal(t, "파리", d.Name)

	_, ok = FindDestination("atlantis")
	assert.False(t, ok)
}
