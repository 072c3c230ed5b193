package analyzing

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analyzer-api/internal/domain"
)

func TestExtrapolate(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	points := Extrapolate(from, 100, 0.05, 90, 7)

	require.Len(t, points, 13)

	expectedOffsets := []int{1, 8, 15, 22, 29, 36, 43, 50, 57, 64, 71, 78, 85}
	for i, point := range points {
		assert.Equal(t, expectedOffsets[i], point.Offset)
		assert.Equal(t, from.AddDate(0, 0, point.Offset), point.Date)
		assert.Equal(t, point.Date.Format(domain.DayLabelLayout), point.Label)
		assert.InDelta(t, 100*math.Pow(1.05, float64(point.Offset)/30), point.Value, 1e-9)
	}

	assert.InDelta(t, 100*math.Pow(1.05, 1.0/30), points[0].Value, 1e-12)
	assert.Equal(t, "Mar 2", points[0].Label)
}

func TestExtrapolate_IsDeterministic(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, Extrapolate(from, 42, 0.05, 90, 7), Extrapolate(from, 42, 0.05, 90, 7))
}

func TestExtrapolate_InvalidParameters(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		horizon int
		step    int
	}{
		{name: "Horizonte zero", horizon: 0, step: 7},
		{name: "Passo zero", horizon: 90, step: 0},
		{name: "Passo negativo", horizon: 90, step: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := Extrapolate(from, 100, 0.05, tt.horizon, tt.step)
			assert.NotNil(t, points)
			assert.Empty(t, points)
		})
	}
}

func TestProjectVelocity(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Projeta a partir do último dia do histórico", func(t *testing.T) {
		history := []domain.DailyAggregate{
			{Date: "Feb 28", Revenue: 30, Volume: 2},
			{Date: "Feb 29", Revenue: 50, Volume: 4},
		}

		projected := ProjectVelocity(history, from, DefaultForecastOptions())

		require.Len(t, projected, 13)
		assert.Equal(t, "Mar 2", projected[0].Date)
		assert.InDelta(t, 50*math.Pow(1.05, 1.0/30), projected[0].Revenue, 1e-9)
		assert.InDelta(t, 4*math.Pow(1.04, 1.0/30), projected[0].Volume, 1e-9)
		assert.InDelta(t, 50*math.Pow(1.05, 85.0/30), projected[12].Revenue, 1e-9)
	})

	t.Run("Histórico vazio não gera projeção", func(t *testing.T) {
		assert.Nil(t, ProjectVelocity(nil, from, DefaultForecastOptions()))
	})
}
