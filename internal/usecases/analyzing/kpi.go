package analyzing

import (
	"github.com/vfg2006/sales-analyzer-api/internal/domain"
)

// DefaultGrowthWindow é o tamanho das janelas posicionais usadas no cálculo de crescimento
const DefaultGrowthWindow = 15

// ComputeKPIs calcula os indicadores do conjunto de vendas. Retorna nil quando não há vendas.
func ComputeKPIs(records []domain.SaleRecord, growthWindow int) *domain.KPISummary {
	if len(records) == 0 {
		return nil
	}

	revenue := sumAmounts(records)

	customers := make(map[string]struct{}, len(records))
	for _, sale := range records {
		customers[sale.Customer] = struct{}{}
	}

	return &domain.KPISummary{
		Revenue:           revenue,
		Growth:            PeriodGrowth(records, growthWindow),
		AvgOrderValue:     safeDivide(revenue, float64(len(records))),
		UniqueCustomers:   len(customers),
		TotalTransactions: len(records),
	}
}

// PeriodGrowth compara a receita das últimas `window` vendas com as `window` anteriores.
// As janelas são posicionais (índice a partir do fim), não por data. Janelas incompletas
// usam o que houver; receita anterior zero resulta em crescimento zero.
func PeriodGrowth(records []domain.SaleRecord, window int) float64 {
	if window <= 0 {
		return 0
	}

	n := len(records)
	currentStart := max(n-window, 0)
	previousStart := max(n-2*window, 0)

	currentRevenue := sumAmounts(records[currentStart:])
	previousRevenue := sumAmounts(records[previousStart:currentStart])

	if previousRevenue == 0 {
		return 0
	}

	return (currentRevenue - previousRevenue) / previousRevenue * 100
}

func sumAmounts(records []domain.SaleRecord) float64 {
	var total float64
	for _, sale := range records {
		total += sale.Amount
	}
	return total
}

func safeDivide(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}
