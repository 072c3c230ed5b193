package analyzing

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/sales-analyzer-api/internal/config"
	"github.com/vfg2006/sales-analyzer-api/internal/domain"
	"github.com/vfg2006/sales-analyzer-api/pkg/log"
)

// Options agrupa os parâmetros do motor de análise
type Options struct {
	Location        *time.Location
	GrowthWindow    int
	MarginThreshold float64
	DefaultRange    domain.TimeRange
	Forecast        ForecastOptions
}

func DefaultOptions() Options {
	return Options{
		Location:        time.UTC,
		GrowthWindow:    DefaultGrowthWindow,
		MarginThreshold: DefaultMarginThreshold,
		DefaultRange:    domain.TimeRangeLast30Days,
		Forecast:        DefaultForecastOptions(),
	}
}

// OptionsFromConfig converte a configuração de analytics, validando fuso e período padrão
func OptionsFromConfig(cfg config.Analytics) (Options, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return Options{}, fmt.Errorf("fuso horário inválido %q: %w", cfg.Timezone, err)
	}

	defaultRange, err := domain.ParseTimeRange(cfg.DefaultTimeRange)
	if err != nil {
		return Options{}, fmt.Errorf("período padrão %q: %w", cfg.DefaultTimeRange, err)
	}

	return Options{
		Location:        loc,
		GrowthWindow:    cfg.GrowthWindow,
		MarginThreshold: cfg.MarginThreshold,
		DefaultRange:    defaultRange,
		Forecast: ForecastOptions{
			GrowthRate:   cfg.ForecastGrowthRate,
			VolumeFactor: cfg.ForecastVolumeFactor,
			HorizonDays:  cfg.ForecastHorizonDays,
			StepDays:     cfg.ForecastStepDays,
		},
	}, nil
}

type Service struct {
	sales SaleSource
	opts  Options
	now   func() time.Time
}

func NewService(sales SaleSource, opts Options) *Service {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.DefaultRange == "" {
		opts.DefaultRange = domain.TimeRangeLast30Days
	}

	return &Service{
		sales: sales,
		opts:  opts,
		now:   time.Now,
	}
}

// WithClock substitui o relógio usado para resolver os períodos
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) GetDashboard(ctx context.Context, userID int, filters domain.DashboardFilters) (*domain.Dashboard, error) {
	tr, since, records, err := s.fetch(ctx, userID, filters.TimeRange)
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"user_id":    userID,
		"time_range": tr,
		"records":    len(records),
	}).Debug("Montando dashboard")

	return s.Analyze(tr, since, records, filters.Forecast), nil
}

// Analyze compõe o dashboard a partir de vendas já carregadas
func (s *Service) Analyze(tr domain.TimeRange, since time.Time, records []domain.SaleRecord, forecast bool) *domain.Dashboard {
	kpis := ComputeKPIs(records, s.opts.GrowthWindow)
	rollup := RollupByRegion(records)

	dashboard := &domain.Dashboard{
		TimeRange: tr,
		Since:     since,
		KPIs:      kpis,
		Cards:     domain.KPICards(kpis),
		Velocity:  s.velocity(records, forecast),
		Regions:   rollup,
		Insight:   GenerateInsight(records, s.opts.GrowthWindow, s.opts.MarginThreshold),
	}

	if top, ok := rollup.TopRegion(); ok {
		dashboard.TopRegion = &top
	}
	if worst, ok := rollup.WorstRegion(); ok {
		dashboard.WorstRegion = &worst
	}

	return dashboard
}

func (s *Service) GetKPIs(ctx context.Context, userID int, tr domain.TimeRange) (*domain.KPISummary, error) {
	_, _, records, err := s.fetch(ctx, userID, tr)
	if err != nil {
		return nil, err
	}
	return ComputeKPIs(records, s.opts.GrowthWindow), nil
}

func (s *Service) GetVelocity(ctx context.Context, userID int, tr domain.TimeRange, forecast bool) (*domain.SalesVelocity, error) {
	_, _, records, err := s.fetch(ctx, userID, tr)
	if err != nil {
		return nil, err
	}
	return s.velocity(records, forecast), nil
}

func (s *Service) GetRegions(ctx context.Context, userID int, tr domain.TimeRange) ([]domain.RegionRevenue, error) {
	_, _, records, err := s.fetch(ctx, userID, tr)
	if err != nil {
		return nil, err
	}
	return RollupByRegion(records), nil
}

func (s *Service) GetInsight(ctx context.Context, userID int, tr domain.TimeRange) (*domain.Insight, error) {
	_, _, records, err := s.fetch(ctx, userID, tr)
	if err != nil {
		return nil, err
	}
	return GenerateInsight(records, s.opts.GrowthWindow, s.opts.MarginThreshold), nil
}

func (s *Service) ListSales(ctx context.Context, userID int, tr domain.TimeRange) ([]domain.SaleRecord, error) {
	_, _, records, err := s.fetch(ctx, userID, tr)
	return records, err
}

func (s *Service) velocity(records []domain.SaleRecord, forecast bool) *domain.SalesVelocity {
	actual := GroupByDay(records, s.opts.Location)

	velocity := &domain.SalesVelocity{Actual: actual}
	if forecast {
		velocity.Forecast = ProjectVelocity(actual, s.now().In(s.opts.Location), s.opts.Forecast)
	}

	return velocity
}

func (s *Service) fetch(ctx context.Context, userID int, tr domain.TimeRange) (domain.TimeRange, time.Time, []domain.SaleRecord, error) {
	if tr == "" {
		tr = s.opts.DefaultRange
	}

	since, err := tr.SinceDate(s.now().In(s.opts.Location))
	if err != nil {
		return "", time.Time{}, nil, err
	}

	records, err := s.sales.ListSales(ctx, userID, since)
	if err != nil {
		return "", time.Time{}, nil, fmt.Errorf("erro ao buscar vendas do usuário %d: %w", userID, err)
	}

	return tr, since, records, nil
}
