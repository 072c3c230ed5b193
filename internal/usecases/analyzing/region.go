package analyzing

import (
	"sort"

	"github.com/vfg2006/sales-analyzer-api/internal/domain"
)

// RegionalRollup é a receita por região, na ordem em que cada região aparece nas vendas
type RegionalRollup []domain.RegionRevenue

// RollupByRegion soma a receita por região. Rótulos são comparados exatamente, sem normalização.
func RollupByRegion(records []domain.SaleRecord) RegionalRollup {
	rollup := make(RegionalRollup, 0)
	index := make(map[string]int)

	for _, sale := range records {
		i, exists := index[sale.Region]
		if !exists {
			i = len(rollup)
			index[sale.Region] = i
			rollup = append(rollup, domain.RegionRevenue{Region: sale.Region})
		}
		rollup[i].Revenue += sale.Amount
	}

	return rollup
}

func (r RegionalRollup) AsMap() map[string]float64 {
	m := make(map[string]float64, len(r))
	for _, region := range r {
		m[region.Region] = region.Revenue
	}
	return m
}

func (r RegionalRollup) Total() float64 {
	var total float64
	for _, region := range r {
		total += region.Revenue
	}
	return total
}

// TopRegion retorna a região de maior receita. Empates ficam com a região vista primeiro.
func (r RegionalRollup) TopRegion() (domain.RegionRevenue, bool) {
	return r.first(func(a, b domain.RegionRevenue) bool { return a.Revenue > b.Revenue })
}

// WorstRegion retorna a região de menor receita. Empates ficam com a região vista primeiro.
func (r RegionalRollup) WorstRegion() (domain.RegionRevenue, bool) {
	return r.first(func(a, b domain.RegionRevenue) bool { return a.Revenue < b.Revenue })
}

func (r RegionalRollup) first(less func(a, b domain.RegionRevenue) bool) (domain.RegionRevenue, bool) {
	if len(r) == 0 {
		return domain.RegionRevenue{}, false
	}

	sorted := make(RegionalRollup, len(r))
	copy(sorted, r)
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})

	return sorted[0], true
}
