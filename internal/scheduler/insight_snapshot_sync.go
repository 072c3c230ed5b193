package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/sales-analyzer-api/infrastructure/repository"
	"github.com/vfg2006/sales-analyzer-api/internal/config"
	"github.com/vfg2006/sales-analyzer-api/internal/domain"
	"github.com/vfg2006/sales-analyzer-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analyzer-api/pkg/log"
)

// InsightSnapshotSyncConfig representa a configuração do agendador de snapshots de insight
type InsightSnapshotSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	TimeRange         domain.TimeRange
	RetentionDays     int
	SyncEnabled       bool
}

// SyncResult resume uma execução da sincronização
type SyncResult struct {
	Users   int   `json:"users"`
	Saved   int   `json:"saved"`
	Skipped int   `json:"skipped"`
	Failed  int   `json:"failed"`
	Purged  int64 `json:"purged"`
}

// InsightSnapshotSyncService grava diariamente os KPIs e o insight de cada usuário ativo
type InsightSnapshotSyncService struct {
	scheduler    *gocron.Scheduler
	config       InsightSnapshotSyncConfig
	userRepo     repository.UserRepository
	snapshotRepo repository.InsightSnapshotRepository
	analyzer     analyzing.Analyzer
	location     *time.Location
	now          func() time.Time

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          SyncResult
}

func NewInsightSnapshotSyncService(
	userRepo repository.UserRepository,
	snapshotRepo repository.InsightSnapshotRepository,
	analyzer analyzing.Analyzer,
	appConfig *config.Config,
) (*InsightSnapshotSyncService, error) {
	timeRange, err := domain.ParseTimeRange(appConfig.InsightSnapshotSync.TimeRange)
	if err != nil {
		return nil, fmt.Errorf("período de snapshot %q: %w", appConfig.InsightSnapshotSync.TimeRange, err)
	}

	location, err := time.LoadLocation(appConfig.Analytics.Timezone)
	if err != nil {
		return nil, fmt.Errorf("fuso horário inválido %q: %w", appConfig.Analytics.Timezone, err)
	}

	syncConfig := InsightSnapshotSyncConfig{
		CronSchedule:      appConfig.InsightSnapshotSync.CronSchedule,
		MaxConcurrentJobs: max(appConfig.InsightSnapshotSync.MaxConcurrentJobs, 1),
		TimeRange:         timeRange,
		RetentionDays:     appConfig.InsightSnapshotSync.RetentionDays,
		SyncEnabled:       appConfig.InsightSnapshotSync.Enabled,
	}

	log.L.WithFields(log.Fields{
		"sync_cron":           syncConfig.CronSchedule,
		"sync_max_concurrent": syncConfig.MaxConcurrentJobs,
		"time_range":          syncConfig.TimeRange,
		"sync_retention_days": syncConfig.RetentionDays,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots de insight carregada")

	return &InsightSnapshotSyncService{
		scheduler:    gocron.NewScheduler(location),
		config:       syncConfig,
		userRepo:     userRepo,
		snapshotRepo: snapshotRepo,
		analyzer:     analyzer,
		location:     location,
		now:          time.Now,
	}, nil
}

// Start agenda a sincronização e para o agendador quando o contexto for cancelado
func (s *InsightSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		log.L.Info("Sincronização de snapshots de insight desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.SyncAll(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshots de insight: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador de snapshots de insight")
		s.scheduler.Stop()
	}()

	log.L.WithField("sync_cron", s.config.CronSchedule).Info("Agendador de snapshots de insight iniciado")

	return nil
}

// SyncAll processa todos os usuários ativos. Retorna false se outra execução já estiver em andamento.
func (s *InsightSnapshotSyncService) SyncAll(ctx context.Context) (SyncResult, bool) {
	if !s.acquire() {
		log.L.Info("Sincronização de snapshots de insight já em andamento, ignorando")
		return SyncResult{}, false
	}

	result := s.syncAll(ctx)
	s.release(result)

	return result, true
}

func (s *InsightSnapshotSyncService) acquire() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	return true
}

func (s *InsightSnapshotSyncService) release(result SyncResult) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastResult = result
}

func (s *InsightSnapshotSyncService) syncAll(ctx context.Context) SyncResult {
	startTime := s.now()

	users, err := s.userRepo.ListActiveUsers(ctx)
	if err != nil {
		log.L.WithError(err).Error("Erro ao buscar usuários ativos para snapshots de insight")
		return SyncResult{}
	}

	result := SyncResult{Users: len(users)}
	snapshotDate := s.snapshotDate()

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		semaphore = make(chan struct{}, s.config.MaxConcurrentJobs)
	)

	for _, user := range users {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(userID int) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			outcome := s.syncUser(ctx, userID, snapshotDate)

			mu.Lock()
			defer mu.Unlock()
			switch outcome {
			case outcomeSaved:
				result.Saved++
			case outcomeSkipped:
				result.Skipped++
			default:
				result.Failed++
			}
		}(user.ID)
	}

	wg.Wait()

	if s.config.RetentionDays > 0 {
		cutoff := snapshotDate.AddDate(0, 0, -s.config.RetentionDays)
		purged, err := s.snapshotRepo.DeleteOlderThan(ctx, cutoff)
		if err != nil {
			log.L.WithError(err).Error("Erro ao remover snapshots de insight antigos")
		}
		result.Purged = purged
	}

	log.L.WithFields(log.Fields{
		"duration_ms":  s.now().Sub(startTime).Milliseconds(),
		"user_count":   result.Users,
		"sync_saved":   result.Saved,
		"sync_skipped": result.Skipped,
		"sync_failed":  result.Failed,
		"sync_purged":  result.Purged,
	}).Info("Sincronização de snapshots de insight concluída")

	return result
}

type syncOutcome int

const (
	outcomeSaved syncOutcome = iota
	outcomeSkipped
	outcomeFailed
)

func (s *InsightSnapshotSyncService) syncUser(ctx context.Context, userID int, date time.Time) syncOutcome {
	logger := log.L.WithFields(log.Fields{
		"user_id":    userID,
		"time_range": s.config.TimeRange,
	})

	dashboard, err := s.analyzer.GetDashboard(ctx, userID, domain.DashboardFilters{TimeRange: s.config.TimeRange})
	if err != nil {
		logger.WithError(err).Error("Erro ao calcular insight do usuário")
		return outcomeFailed
	}

	if dashboard == nil || dashboard.KPIs == nil {
		logger.Debug("Usuário sem vendas no período, snapshot ignorado")
		return outcomeSkipped
	}

	snapshot := &domain.InsightSnapshot{
		UserID:    userID,
		Date:      date,
		TimeRange: s.config.TimeRange,
		KPIs:      dashboard.KPIs,
		Insight:   dashboard.Insight,
	}

	if err := s.snapshotRepo.SaveOrUpdate(ctx, snapshot); err != nil {
		logger.WithError(err).Error("Erro ao salvar snapshot de insight")
		return outcomeFailed
	}

	return outcomeSaved
}

func (s *InsightSnapshotSyncService) snapshotDate() time.Time {
	now := s.now().In(s.location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)
}

// TriggerManualSync dispara uma sincronização em background. Retorna false se já houver uma em andamento.
func (s *InsightSnapshotSyncService) TriggerManualSync() bool {
	if !s.acquire() {
		log.L.Info("Sincronização de snapshots de insight já em andamento, ignorando solicitação manual")
		return false
	}

	log.L.Info("Iniciando sincronização manual de snapshots de insight")

	go func() {
		result := s.syncAll(context.Background())
		s.release(result)
	}()

	return true
}

func (s *InsightSnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_time_range":        s.config.TimeRange,
		"retention_days":         s.config.RetentionDays,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_result":            s.lastResult,
	}
}
