package domain

import (
	"fmt"
	"math"

	"github.com/vfg2006/sales-analyzer-api/pkg/utils"
)

// KPICard é a versão formatada de um indicador, pronta para exibição
type KPICard struct {
	Title       string `json:"title"`
	Value       string `json:"value"`
	Change      string `json:"change"`
	IsPositive  bool   `json:"is_positive"`
	Description string `json:"description"`
}

// KPICards monta os quatro cartões do dashboard. Sem KPIs, os valores são zerados.
func KPICards(kpis *KPISummary) []KPICard {
	k := KPISummary{}
	if kpis != nil {
		k = *kpis
	}

	positive := k.Growth >= 0

	return []KPICard{
		{
			Title:       "Total Revenue",
			Value:       "$" + utils.FormatWholeAmount(k.Revenue),
			Change:      fmt.Sprintf("%.1f%%", k.Growth),
			IsPositive:  positive,
			Description: "From previous period",
		},
		{
			Title:       "Growth Rate",
			Value:       fmt.Sprintf("%.1f%%", k.Growth),
			Change:      fmt.Sprintf("%.1f%%", math.Abs(k.Growth)),
			IsPositive:  positive,
			Description: "MoM comparison",
		},
		{
			Title:       "Avg Order Value",
			Value:       "$" + utils.FormatCents(k.AvgOrderValue),
			IsPositive:  true,
			Description: "Per transaction",
		},
		{
			Title:       "Active Customers",
			Value:       fmt.Sprintf("%d", k.UniqueCustomers),
			IsPositive:  true,
			Description: "Unique buyers",
		},
	}
}
