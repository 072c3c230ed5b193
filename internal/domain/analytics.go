package domain

import (
	"time"
)

// KPISummary representa os indicadores calculados sobre um conjunto de vendas
type KPISummary struct {
	Revenue           float64 `json:"revenue"`
	Growth            float64 `json:"growth"`
	AvgOrderValue     float64 `json:"avg_order_value"`
	UniqueCustomers   int     `json:"unique_customers"`
	TotalTransactions int     `json:"total_transactions"`
}

// DailyAggregate acumula receita e volume de um dia
type DailyAggregate struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Volume  int     `json:"volume"`
}

// ForecastPoint é um ponto sintético projetado a partir do último valor real
type ForecastPoint struct {
	Date   time.Time `json:"-"`
	Label  string    `json:"date"`
	Offset int       `json:"offset_days"`
	Value  float64   `json:"value"`
}

// ProjectedAggregate é o equivalente projetado de DailyAggregate
type ProjectedAggregate struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Volume  float64 `json:"volume"`
}

// SalesVelocity separa a série real da série projetada
type SalesVelocity struct {
	Actual   []DailyAggregate     `json:"actual"`
	Forecast []ProjectedAggregate `json:"forecast,omitempty"`
}

type RegionRevenue struct {
	Region  string  `json:"region"`
	Revenue float64 `json:"revenue"`
}

// Dashboard agrega todos os cartões exibidos para um período
type Dashboard struct {
	TimeRange   TimeRange       `json:"time_range"`
	Since       time.Time       `json:"since"`
	KPIs        *KPISummary     `json:"kpis"`
	Cards       []KPICard       `json:"cards"`
	Velocity    *SalesVelocity  `json:"velocity"`
	Regions     []RegionRevenue `json:"regions"`
	TopRegion   *RegionRevenue  `json:"top_region,omitempty"`
	WorstRegion *RegionRevenue  `json:"worst_region,omitempty"`
	Insight     *Insight        `json:"insight,omitempty"`
}

// DashboardFilters contém os parâmetros de consulta do dashboard
type DashboardFilters struct {
	TimeRange TimeRange
	Forecast  bool
}
