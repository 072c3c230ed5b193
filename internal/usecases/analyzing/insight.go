package analyzing

import (
	"fmt"
	"math"
	"strings"

	"github.com/vfg2006/sales-analyzer-api/internal/domain"
	"github.com/vfg2006/sales-analyzer-api/pkg/utils"
)

// DefaultMarginThreshold é a margem média (em %) abaixo da qual o insight sugere revisar preços
const DefaultMarginThreshold = 20.0

// GenerateInsight produz a análise textual das vendas. Retorna nil quando não há vendas.
func GenerateInsight(records []domain.SaleRecord, growthWindow int, marginThreshold float64) *domain.Insight {
	if len(records) == 0 {
		return nil
	}

	rollup := RollupByRegion(records)
	top, _ := rollup.TopRegion()
	worst, _ := rollup.WorstRegion()

	growth := PeriodGrowth(records, growthWindow)

	var marginSum float64
	for _, sale := range records {
		marginSum += sale.MarginOrZero()
	}
	avgMargin := marginSum / float64(len(records))
	healthy := avgMargin >= marginThreshold

	var text strings.Builder
	fmt.Fprintf(&text, "Your sales in the %s region are leading with $%s revenue ", top.Region, utils.FormatAmount(top.Revenue))
	if growth >= 0 {
		fmt.Fprintf(&text, "(up %.1f%% from last period). ", growth)
	} else {
		fmt.Fprintf(&text, "(down %.1f%%). ", math.Abs(growth))
	}
	fmt.Fprintf(&text, "%s is underperforming at $%s. ", worst.Region, utils.FormatAmount(worst.Revenue))
	fmt.Fprintf(&text, "Average margins are at %.1f%%", avgMargin)
	if healthy {
		text.WriteString(", which is healthy.")
	} else {
		text.WriteString(" - consider optimizing pricing or reducing COGS.")
	}

	return &domain.Insight{
		TopRegion:       top,
		WorstRegion:     worst,
		Growth:          growth,
		AverageMargin:   avgMargin,
		MarginHealthy:   healthy,
		Text:            text.String(),
		Recommendations: append([]domain.Recommendation(nil), domain.Recommendations...),
	}
}
