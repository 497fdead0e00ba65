package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-analytics-api/infrastructure/repository"
	"github.com/vfg2006/seller-analytics-api/internal/config"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
	"github.com/vfg2006/seller-analytics-api/internal/usecases/snapshotting"
	"github.com/vfg2006/seller-analytics-api/pkg/metrics"
)

// DashboardRefreshConfig representa a configuração do agendador de snapshots
type DashboardRefreshConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// DashboardRefreshService recompõe diariamente os dashboards das contas
// ativas a partir dos payloads sincronizados
type DashboardRefreshService struct {
	scheduler           *gocron.Scheduler
	config              DashboardRefreshConfig
	accountRepo         repository.AccountRepository
	snapshotter         snapshotting.Snapshotter
	metrics             *metrics.Metrics
	refreshRunning     bool
	refreshMutex       sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
}

// NewDashboardRefreshService cria uma nova instância do serviço de refresh de dashboards
func NewDashboardRefreshService(
	accountRepo repository.AccountRepository,
	snapshotter snapshotting.Snapshotter,
	m *metrics.Metrics,
	appConfig *config.Config,
) *DashboardRefreshService {
	refreshConfig := DashboardRefreshConfig{
		CronSchedule: appConfig.DashboardRefresh.CronSchedule,
		SyncEnabled:  appConfig.DashboardRefresh.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"sync_enabled":  refreshConfig.SyncEnabled,
	}).Info("Configuração do agendador de refresh de dashboards carregada")

	return &DashboardRefreshService{
		scheduler:   scheduler,
		config:      refreshConfig,
		accountRepo: accountRepo,
		snapshotter: snapshotter,
		metrics:     m,
	}
}

// Start inicia o agendador
func (s *DashboardRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Refresh de dashboards desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de refresh de dashboards")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshAllDashboards()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar refresh de dashboards: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de refresh de dashboards")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshAllDashboards recompõe os dashboards de todas as contas ativas
func (s *DashboardRefreshService) refreshAllDashboards() {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Refresh de dashboards já em andamento, ignorando")
		return
	}
	s.refreshRunning = true
	s.refreshMutex.Unlock()

	startTime := time.Now()
	s.lastRunStartedAt = startTime

	defer func() {
		s.refreshMutex.Lock()
		s.refreshRunning = false
		s.refreshMutex.Unlock()
	}()

	logrus.Info("Iniciando refresh de dashboards para todas as contas ativas")

	activeAccounts, err := s.accountRepo.ListAccounts([]domain.SellerAccountStatus{domain.SellerAccountStatusActive})
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de contas para refresh de dashboards")
		if s.metrics != nil {
			s.metrics.RecordSyncJob("dashboard_refresh", "error", time.Since(startTime))
		}
		return
	}

	refreshed := 0
	for _, account := range activeAccounts {
		if _, err := s.snapshotter.RefreshDashboard(account.ID); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"account_id":   account.ID,
				"account_name": account.Name,
			}).Warn("Erro ao recompor dashboard da conta")

			if s.metrics != nil {
				s.metrics.RecordAccountProcessed("dashboard_refresh", "error")
			}
			continue
		}

		refreshed++
		if s.metrics != nil {
			s.metrics.RecordAccountProcessed("dashboard_refresh", "success")
		}
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"accounts":  len(activeAccounts),
		"refreshed": refreshed,
	}).Info("Refresh de dashboards concluído")

	if s.metrics != nil {
		s.metrics.RecordSyncJob("dashboard_refresh", "success", duration)
	}

	s.lastRunCompletedAt = time.Now()
}

// TriggerManualRefresh inicia manualmente um refresh de dashboards
func (s *DashboardRefreshService) TriggerManualRefresh() {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Refresh de dashboards já em andamento, ignorando solicitação manual")
		return
	}
	s.refreshMutex.Unlock()

	logrus.Info("Iniciando refresh manual de dashboards")
	go s.refreshAllDashboards()
}

// GetStatus retorna o status atual do agendador
func (s *DashboardRefreshService) GetStatus() map[string]any {
	return map[string]any{
		"refresh_enabled":       s.config.SyncEnabled,
		"refresh_cron":          s.config.CronSchedule,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
	}
}
