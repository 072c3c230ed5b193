package analyzing

import (
	"context"
	"time"

	"github.com/vfg2006/sales-analyzer-api/internal/domain"
)

// SaleSource fornece as vendas de um usuário a partir de uma data, ordenadas por data crescente
type SaleSource interface {
	ListSales(ctx context.Context, userID int, since time.Time) ([]domain.SaleRecord, error)
}

// Analyzer define as operações de análise expostas pela API
type Analyzer interface {
	// GetDashboard monta todos os cartões do dashboard para o período
	GetDashboard(ctx context.Context, userID int, filters domain.DashboardFilters) (*domain.Dashboard, error)

	GetKPIs(ctx context.Context, userID int, tr domain.TimeRange) (*domain.KPISummary, error)
	GetVelocity(ctx context.Context, userID int, tr domain.TimeRange, forecast bool) (*domain.SalesVelocity, error)
	GetRegions(ctx context.Context, userID int, tr domain.TimeRange) ([]domain.RegionRevenue, error)
	GetInsight(ctx context.Context, userID int, tr domain.TimeRange) (*domain.Insight, error)

	// ListSales retorna as vendas brutas do período
	ListSales(ctx context.Context, userID int, tr domain.TimeRange) ([]domain.SaleRecord, error)
}
