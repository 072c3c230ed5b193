package domain

import "time"

// RecommendationKind identifica o tipo de ação recomendada
type RecommendationKind string

const (
	RecommendationIncreaseMarketing  RecommendationKind = "increase_marketing"
	RecommendationReviewPricing      RecommendationKind = "review_pricing"
	RecommendationInvestigateRegions RecommendationKind = "investigate_regions"
)

type Recommendation struct {
	Kind  RecommendationKind `json:"kind"`
	Label string             `json:"label"`
}

// Recommendations são sempre as mesmas, independente dos dados
var Recommendations = []Recommendation{
	{Kind: RecommendationIncreaseMarketing, Label: "Increase marketing spend in top-performing regions"},
	{Kind: RecommendationReviewPricing, Label: "Review pricing strategy for low-margin products"},
	{Kind: RecommendationInvestigateRegions, Label: "Investigate underperforming regions for root causes"},
}

// Insight é a análise textual gerada a partir das vendas
type Insight struct {
	TopRegion       RegionRevenue    `json:"top_region"`
	WorstRegion     RegionRevenue    `json:"worst_region"`
	Growth          float64          `json:"growth"`
	AverageMargin   float64          `json:"average_margin"`
	MarginHealthy   bool             `json:"margin_healthy"`
	Text            string           `json:"text"`
	Recommendations []Recommendation `json:"recommendations"`
}

// InsightSnapshot é o registro diário de KPIs e insight de um usuário armazenado no banco
type InsightSnapshot struct {
	ID        int64       `json:"id"`
	UserID    int         `json:"user_id"`
	Date      time.Time   `json:"date"`
	TimeRange TimeRange   `json:"time_range"`
	KPIs      *KPISummary `json:"kpis"`
	Insight   *Insight    `json:"insight"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// InsightFilters delimita o intervalo de datas de consulta dos snapshots
type InsightFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}
