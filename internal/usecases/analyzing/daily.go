package analyzing

import (
	"time"

	"github.com/vfg2006/sales-analyzer-api/internal/domain"
)

// GroupByDay agrupa as vendas por rótulo de dia ("Jan 2") no fuso informado.
// Os grupos mantêm a ordem em que cada dia aparece pela primeira vez.
func GroupByDay(records []domain.SaleRecord, loc *time.Location) []domain.DailyAggregate {
	result := make([]domain.DailyAggregate, 0)
	index := make(map[string]int)

	for _, sale := range records {
		label := sale.DayLabel(loc)

		i, exists := index[label]
		if !exists {
			i = len(result)
			index[label] = i
			result = append(result, domain.DailyAggregate{Date: label})
		}

		result[i].Revenue += sale.Amount
		result[i].Volume++
	}

	return result
}
