package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analyzer-api/internal/domain"
)

func TestComputeKPIs(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	t.Run("Sem vendas retorna nil", func(t *testing.T) {
		assert.Nil(t, ComputeKPIs(nil, DefaultGrowthWindow))
		assert.Nil(t, ComputeKPIs([]domain.SaleRecord{}, DefaultGrowthWindow))
	})

	t.Run("Cenário leste/oeste", func(t *testing.T) {
		kpis := ComputeKPIs(eastWestRecords(), DefaultGrowthWindow)
		require.NotNil(t, kpis)

		assert.Equal(t, 300.0, kpis.Revenue)
		assert.Equal(t, 150.0, kpis.AvgOrderValue)
		assert.Equal(t, 2, kpis.UniqueCustomers)
		assert.Equal(t, 2, kpis.TotalTransactions)
		assert.Equal(t, 0.0, kpis.Growth)
	})

	t.Run("Clientes repetidos contam uma vez", func(t *testing.T) {
		records := []domain.SaleRecord{
			sale(start, 100, "East", "A", nil),
			sale(start, 200, "East", "B", nil),
			sale(start, 300, "West", "A", nil),
		}

		kpis := ComputeKPIs(records, DefaultGrowthWindow)
		require.NotNil(t, kpis)

		assert.Equal(t, 600.0, kpis.Revenue)
		assert.Equal(t, 200.0, kpis.AvgOrderValue)
		assert.Equal(t, 2, kpis.UniqueCustomers)
		assert.Equal(t, len(records), kpis.TotalTransactions)
	})
}

func TestPeriodGrowth(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	concat := func(parts ...[]domain.SaleRecord) []domain.SaleRecord {
		var all []domain.SaleRecord
		for _, p := range parts {
			all = append(all, p...)
		}
		return all
	}

	tests := []struct {
		name     string
		records  []domain.SaleRecord
		window   int
		expected float64
	}{
		{
			name:     "Menos de 16 vendas não tem janela anterior",
			records:  salesSeries(start, 15, 10),
			window:   15,
			expected: 0,
		},
		{
			name:     "Janelas completas com receita dobrando",
			records:  concat(salesSeries(start, 15, 10), salesSeries(start.AddDate(0, 0, 15), 15, 20)),
			window:   15,
			expected: 100,
		},
		{
			name:     "Queda de receita gera crescimento negativo",
			records:  concat(salesSeries(start, 15, 20), salesSeries(start.AddDate(0, 0, 15), 15, 10)),
			window:   15,
			expected: -50,
		},
		{
			name:     "Janela anterior parcial usa o que houver",
			records:  salesSeries(start, 20, 10),
			window:   15,
			expected: 200,
		},
		{
			name: "Vendas anteriores às duas janelas são ignoradas",
			records: concat(
				salesSeries(start, 10, 1000),
				salesSeries(start.AddDate(0, 0, 10), 15, 10),
				salesSeries(start.AddDate(0, 0, 25), 15, 20),
			),
			window:   15,
			expected: 100,
		},
		{
			name:     "Receita anterior zerada retorna zero",
			records:  concat(salesSeries(start, 15, 0), salesSeries(start.AddDate(0, 0, 15), 15, 20)),
			window:   15,
			expected: 0,
		},
		{
			name:     "Janela inválida retorna zero",
			records:  salesSeries(start, 30, 10),
			window:   0,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, PeriodGrowth(tt.records, tt.window), 1e-9)
		})
	}
}

func TestPeriodGrowth_IsPositional(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	// mesmas datas, valores em ordem inversa: a janela segue a posição na lista
	records := append(salesSeries(start, 15, 20), salesSeries(start, 15, 10)...)

	assert.InDelta(t, -50.0, PeriodGrowth(records, 15), 1e-9)
}
