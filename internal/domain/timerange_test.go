package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeRange_SinceDate(t *testing.T) {
	now := time.Date(2024, 5, 31, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		timeRange TimeRange
		expected  time.Time
	}{
		{
			name:      "Últimos 7 dias",
			timeRange: TimeRangeLast7Days,
			expected:  time.Date(2024, 5, 24, 15, 30, 0, 0, time.UTC),
		},
		{
			name:      "Últimos 30 dias",
			timeRange: TimeRangeLast30Days,
			expected:  time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC),
		},
		{
			name:      "Último trimestre normaliza o dia como AddDate",
			timeRange: TimeRangeLastQuarter,
			expected:  time.Date(2024, 3, 2, 15, 30, 0, 0, time.UTC),
		},
		{
			name:      "Ano até hoje começa em 1º de janeiro à meia-noite",
			timeRange: TimeRangeYTD,
			expected:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			since, err := tt.timeRange.SinceDate(now)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, since)
		})
	}
}

func TestTimeRange_SinceDateInvalid(t *testing.T) {
	_, err := TimeRange("last_year").SinceDate(time.Now())
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestParseTimeRange(t *testing.T) {
	for _, tr := range TimeRanges {
		parsed, err := ParseTimeRange(string(tr))
		require.NoError(t, err)
		assert.Equal(t, tr, parsed)
	}

	_, err := ParseTimeRange("LAST_7_DAYS")
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = ParseTimeRange("")
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}
