package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-analytics-api/infrastructure/integrator/amazonads"
	"github.com/vfg2006/seller-analytics-api/infrastructure/integrator/spapi"
	"github.com/vfg2006/seller-analytics-api/infrastructure/repository"
	"github.com/vfg2006/seller-analytics-api/internal/config"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
	"github.com/vfg2006/seller-analytics-api/pkg/metrics"
	"github.com/vfg2006/seller-analytics-api/pkg/utils"
)

// Payloads mais antigos que o período de retenção são removidos ao final
// de cada sincronização.
const accountDataRetentionDays = 90

// AccountDataSyncConfig representa a configuração do agendador de payloads de conta
type AccountDataSyncConfig struct {
	CronSchedule        string
	LookbackDays        int
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// AccountDataSyncService gerencia o agendamento e execução da sincronização
// dos payloads de conta a partir do SP-API e da API de Ads
type AccountDataSyncService struct {
	scheduler           *gocron.Scheduler
	config              AccountDataSyncConfig
	appConfig           *config.Config
	accountRepo         repository.AccountRepository
	accountDataRepo     repository.AccountDataRepository
	spapiService        spapi.SPAPIIntegrator
	adsService          amazonads.AdsIntegrator
	metrics             *metrics.Metrics
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewAccountDataSyncService cria uma nova instância do serviço de sincronização de payloads
func NewAccountDataSyncService(
	accountRepo repository.AccountRepository,
	accountDataRepo repository.AccountDataRepository,
	spapiService spapi.SPAPIIntegrator,
	adsService amazonads.AdsIntegrator,
	m *metrics.Metrics,
	appConfig *config.Config,
) *AccountDataSyncService {
	// Criar a configuração com base na config global
	syncConfig := AccountDataSyncConfig{
		CronSchedule:        appConfig.AccountDataSync.CronSchedule,
		LookbackDays:        appConfig.AccountDataSync.LookbackDays,
		RequestDelaySeconds: appConfig.AccountDataSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.AccountDataSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.AccountDataSync.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"lookback_days":         syncConfig.LookbackDays,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de payloads de conta carregada")

	return &AccountDataSyncService{
		scheduler:       scheduler,
		config:          syncConfig,
		appConfig:       appConfig,
		accountRepo:     accountRepo,
		accountDataRepo: accountDataRepo,
		spapiService:    spapiService,
		adsService:      adsService,
		metrics:         m,
		syncRunning:     false,
	}
}

// Start inicia o agendador
func (s *AccountDataSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de payloads de conta desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de payloads de conta")

	// Agendar a sincronização dos payloads
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllAccountData()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de payloads de conta: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de payloads de conta")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllAccountData sincroniza os payloads de todas as contas ativas
func (s *AccountDataSyncService) syncAllAccountData() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de payloads de conta já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	if s.metrics != nil {
		s.metrics.IncSyncJobsInFlight()
	}

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()

		if s.metrics != nil {
			s.metrics.DecSyncJobsInFlight()
		}
	}()

	logrus.Info("Iniciando sincronização de payloads para todas as contas ativas")

	// Buscar todas as contas ativas
	activeAccounts, err := s.getActiveAccounts()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de contas para sincronização de payloads")
		if s.metrics != nil {
			s.metrics.RecordSyncJob("account_data", "error", time.Since(startTime))
		}
		return
	}

	if len(activeAccounts) == 0 {
		logrus.Info("Nenhuma conta ativa encontrada para sincronização de payloads")
		if s.metrics != nil {
			s.metrics.RecordSyncJob("account_data", "success", time.Since(startTime))
		}
		return
	}

	// Processar os payloads com workers limitados
	s.processAccounts(activeAccounts)

	// Remover payloads antigos
	removed, err := s.accountDataRepo.DeleteOlderThan(accountDataRetentionDays)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao remover payloads antigos do banco de dados")
	} else if removed > 0 {
		logrus.WithField("removed", removed).Info("Payloads antigos removidos do banco de dados")
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"accounts": len(activeAccounts),
	}).Info("Sincronização de payloads de conta concluída")

	if s.metrics != nil {
		s.metrics.RecordSyncJob("account_data", "success", duration)
	}

	s.lastSyncCompletedAt = time.Now()
}

// getActiveAccounts busca e filtra contas ativas
func (s *AccountDataSyncService) getActiveAccounts() ([]*domain.SellerAccount, error) {
	activeAccounts, err := s.accountRepo.ListAccounts([]domain.SellerAccountStatus{domain.SellerAccountStatusActive})
	if err != nil {
		return nil, err
	}

	if len(activeAccounts) == 0 {
		logrus.Info("Nenhuma conta encontrada para sincronização de payloads")
		return []*domain.SellerAccount{}, nil
	}

	logrus.WithFields(logrus.Fields{
		"active_accounts": len(activeAccounts),
	}).Info("Contas encontradas para sincronização de payloads")

	return activeAccounts, nil
}

// processAccounts processa o payload de cada conta com concorrência limitada
func (s *AccountDataSyncService) processAccounts(accounts []*domain.SellerAccount) {
	// Criar um canal para controlar o número de workers concorrentes
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, account := range accounts {
		// Se a conta não tiver secret configurado, pular
		if account.SecretName == nil || *account.SecretName == "" {
			logrus.WithField("account_id", account.ID).Warn("Conta sem secret configurado. Pulando.")
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(acc *domain.SellerAccount) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			logrus.WithFields(logrus.Fields{
				"account_id":   acc.ID,
				"seller_id":    acc.SellerID,
				"account_name": acc.Name,
			}).Info("Processando payload da conta")

			s.processAccountData(acc)

			// Aguardar antes da próxima requisição para evitar sobrecarga na API
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}(account)
	}

	// Aguardar todos os workers terminarem
	wg.Wait()
}

// processAccountData monta e persiste o payload de uma conta a partir dos
// feeds do SP-API e da API de Ads. Os blocos de rankings e conversão, que
// chegam pelo coletor externo, são preservados do último payload salvo.
func (s *AccountDataSyncService) processAccountData(acc *domain.SellerAccount) {
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -s.config.LookbackDays)
	filters := &domain.AnalysisFilters{
		StartDate: &startDate,
		EndDate:   &endDate,
	}

	payload, err := s.fetchAccountData(acc, filters)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"account_id": acc.ID,
			"seller_id":  acc.SellerID,
		}).Error("Erro ao montar payload da conta")

		if s.metrics != nil {
			s.metrics.RecordAccountProcessed("account_data", "error")
		}
		return
	}

	// Preservar os blocos que não vêm das APIs da Amazon
	latest, err := s.accountDataRepo.GetLatestByAccountID(acc.ID)
	if err != nil {
		logrus.WithError(err).WithField("account_id", acc.ID).Warn("Erro ao buscar último payload salvo da conta")
	}

	if latest != nil && latest.Payload != nil {
		payload.RankingsData = latest.Payload.RankingsData
		payload.ConversionData = latest.Payload.ConversionData
		payload.AccountHealth = latest.Payload.AccountHealth
		payload.Keywords = latest.Payload.Keywords
		payload.ReplenishmentQty = latest.Payload.ReplenishmentQty
	}

	entry := &domain.AccountDataEntry{
		AccountID: acc.ID,
		Date:      endDate,
		Payload:   payload,
	}

	if err := s.accountDataRepo.SaveOrUpdate(entry); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"account_id": acc.ID,
			"date":       endDate.Format(time.DateOnly),
		}).Error("Erro ao salvar payload da conta no banco de dados")

		if s.metrics != nil {
			s.metrics.RecordAccountProcessed("account_data", "error")
		}
		return
	}

	logrus.WithFields(logrus.Fields{
		"account_id": acc.ID,
		"date":       endDate.Format(time.DateOnly),
	}).Info("Payload da conta salvo com sucesso")

	if s.metrics != nil {
		s.metrics.RecordAccountProcessed("account_data", "success")
	}
}

// fetchAccountData busca os feeds da conta nas APIs da Amazon
func (s *AccountDataSyncService) fetchAccountData(acc *domain.SellerAccount, filters *domain.AnalysisFilters) (*domain.AccountData, error) {
	spapiStart := time.Now()

	catalog, err := s.spapiService.GetCatalogProducts(acc)
	if err != nil {
		s.recordExternalCall("spapi", "error", spapiStart)
		return nil, fmt.Errorf("erro ao obter catálogo do SP-API: %w", err)
	}

	sales, err := s.spapiService.GetSalesByProducts(acc, filters)
	if err != nil {
		s.recordExternalCall("spapi", "error", spapiStart)
		return nil, fmt.Errorf("erro ao obter vendas do SP-API: %w", err)
	}

	asins := make([]string, 0, len(catalog))
	for _, product := range catalog {
		asins = append(asins, product.ASIN)
	}

	fees, err := s.spapiService.GetFBAFees(acc, asins)
	if err != nil {
		logrus.WithError(err).WithField("account_id", acc.ID).Warn("Erro ao obter taxas FBA do SP-API")
		fees = nil
	}

	financeData, reimbursement, err := s.spapiService.GetFinanceSummary(acc, filters)
	if err != nil {
		logrus.WithError(err).WithField("account_id", acc.ID).Warn("Erro ao obter resumo financeiro do SP-API")
	}

	s.recordExternalCall("spapi", "success", spapiStart)

	adsStart := time.Now()

	sponsoredAds, err := s.adsService.GetSponsoredAds(acc, filters)
	if err != nil {
		s.recordExternalCall("amazonads", "error", adsStart)
		return nil, fmt.Errorf("erro ao obter sponsored ads da API de Ads: %w", err)
	}

	negativeKeywords, err := s.adsService.GetNegativeKeywords(acc)
	if err != nil {
		logrus.WithError(err).WithField("account_id", acc.ID).Warn("Erro ao obter negative keywords da API de Ads")
		negativeKeywords = nil
	}

	keywordPerformance, err := s.adsService.GetKeywordPerformance(acc, filters)
	if err != nil {
		logrus.WithError(err).WithField("account_id", acc.ID).Warn("Erro ao obter performance de keywords da API de Ads")
		keywordPerformance = nil
	}

	s.recordExternalCall("amazonads", "success", adsStart)

	totalSales := 0.0
	for _, sale := range sales {
		totalSales += sale.Amount.Float()
	}

	return &domain.AccountData{
		TotalProducts:           catalog,
		SalesByProducts:         sales,
		ProductWiseSponsoredAds: sponsoredAds,
		FBAFees:                 fees,
		NegativeKeywords:        negativeKeywords,
		KeywordPerformance:      keywordPerformance,
		FinanceData:             financeData,
		Reimbursement:           domain.FlexFloat(reimbursement),
		TotalSales:              domain.FlexFloat(utils.RoundWithTwoDecimalPlace(totalSales)),
		Country:                 acc.Country,
		StartDate:               filters.StartDate.Format(time.DateOnly),
		EndDate:                 filters.EndDate.Format(time.DateOnly),
	}, nil
}

func (s *AccountDataSyncService) recordExternalCall(api, status string, start time.Time) {
	if s.metrics != nil {
		s.metrics.RecordExternalAPICall(api, status, time.Since(start))
	}
}

// TriggerManualSync inicia manualmente uma sincronização de payloads
func (s *AccountDataSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de payloads já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de payloads de conta")
	go s.syncAllAccountData()
}

// GetStatus retorna o status atual do agendador
func (s *AccountDataSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"retention_days":         accountDataRetentionDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
