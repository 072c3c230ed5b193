package analyzing

import (
	"time"

	"github.com/vfg2006/sales-analyzer-api/internal/domain"
)

func floatPtr(f float64) *float64 {
	return &f
}

func sale(date time.Time, amount float64, region, customer string, margin *float64) domain.SaleRecord {
	return domain.SaleRecord{
		Date:     date,
		Amount:   amount,
		Product:  "Widget",
		Region:   region,
		Customer: customer,
		Margin:   margin,
	}
}

// salesSeries gera n vendas diárias consecutivas com o mesmo valor
func salesSeries(start time.Time, n int, amount float64) []domain.SaleRecord {
	records := make([]domain.SaleRecord, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, sale(start.AddDate(0, 0, i), amount, "North", "C1", nil))
	}
	return records
}

func eastWestRecords() []domain.SaleRecord {
	day := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	return []domain.SaleRecord{
		sale(day, 100, "East", "A", floatPtr(10)),
		sale(day.AddDate(0, 0, 1), 200, "West", "B", floatPtr(30)),
	}
}
