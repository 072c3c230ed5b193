package analyzing

import (
	"math"
	"time"

	"github.com/vfg2006/sales-analyzer-api/internal/domain"
)

const (
	DefaultForecastGrowthRate   = 0.05
	DefaultForecastVolumeFactor = 0.8
	DefaultForecastHorizonDays  = 90
	DefaultForecastStepDays     = 7

	// taxa de crescimento é mensal
	forecastPeriodDays = 30
)

// ForecastOptions parametriza a projeção da série de vendas
type ForecastOptions struct {
	GrowthRate   float64
	VolumeFactor float64
	HorizonDays  int
	StepDays     int
}

func DefaultForecastOptions() ForecastOptions {
	return ForecastOptions{
		GrowthRate:   DefaultForecastGrowthRate,
		VolumeFactor: DefaultForecastVolumeFactor,
		HorizonDays:  DefaultForecastHorizonDays,
		StepDays:     DefaultForecastStepDays,
	}
}

// Extrapolate projeta lastValue com crescimento composto a partir de from.
// Os deslocamentos começam em 1 dia e avançam de stepDays até horizonDays (inclusive).
func Extrapolate(from time.Time, lastValue, growthRate float64, horizonDays, stepDays int) []domain.ForecastPoint {
	points := make([]domain.ForecastPoint, 0)
	if horizonDays <= 0 || stepDays <= 0 {
		return points
	}

	for offset := 1; offset <= horizonDays; offset += stepDays {
		date := from.AddDate(0, 0, offset)
		points = append(points, domain.ForecastPoint{
			Date:   date,
			Label:  date.Format(domain.DayLabelLayout),
			Offset: offset,
			Value:  lastValue * math.Pow(1+growthRate, float64(offset)/forecastPeriodDays),
		})
	}

	return points
}

// ProjectVelocity gera a série projetada de receita e volume a partir do último dia do histórico.
// O volume cresce a uma fração da taxa de receita. Histórico vazio não gera projeção.
func ProjectVelocity(history []domain.DailyAggregate, from time.Time, opts ForecastOptions) []domain.ProjectedAggregate {
	if len(history) == 0 {
		return nil
	}

	last := history[len(history)-1]
	revenue := Extrapolate(from, last.Revenue, opts.GrowthRate, opts.HorizonDays, opts.StepDays)
	volume := Extrapolate(from, float64(last.Volume), opts.GrowthRate*opts.VolumeFactor, opts.HorizonDays, opts.StepDays)

	projected := make([]domain.ProjectedAggregate, len(revenue))
	for i := range revenue {
		projected[i] = domain.ProjectedAggregate{
			Date:    revenue[i].Label,
			Revenue: revenue[i].Value,
			Volume:  volume[i].Value,
		}
	}

	return projected
}
