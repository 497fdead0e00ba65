package snapshotting

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-analytics-api/infrastructure/repository"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
	"github.com/vfg2006/seller-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/seller-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/seller-analytics-api/pkg/metrics"
)

// Snapshotter expõe o dashboard consolidado de uma conta, servindo o último
// snapshot persistido ou compondo um novo a partir do payload mais recente.
type Snapshotter interface {
	GetDashboard(accountID string) (*domain.DashboardResult, error)
	RefreshDashboard(accountID string) (*domain.DashboardSnapshotEntry, error)
}

type Service struct {
	analyzer              analyzing.Analyzer
	accountRepository     repository.AccountRepository
	accountDataRepository repository.AccountDataRepository
	snapshotRepository    repository.DashboardSnapshotRepository
	metrics               *metrics.Metrics
}

func NewService(
	analyzer analyzing.Analyzer,
	accountRepo repository.AccountRepository,
	accountDataRepo repository.AccountDataRepository,
	snapshotRepo repository.DashboardSnapshotRepository,
	m *metrics.Metrics,
) Snapshotter {
	return &Service{
		analyzer:              analyzer,
		accountRepository:     accountRepo,
		accountDataRepository: accountDataRepo,
		snapshotRepository:    snapshotRepo,
		metrics:               m,
	}
}

// GetDashboard retorna o snapshot mais recente da conta. Quando não existe
// snapshot, compõe um novo a partir do último payload sincronizado e o
// persiste para as próximas consultas.
func (s *Service) GetDashboard(accountID string) (*domain.DashboardResult, error) {
	account, err := s.accountRepository.GetAccountByID(accountID)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).Error("Erro ao buscar conta no banco de dados")
		return nil, NewSnapshotError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, "Erro ao buscar conta no banco de dados")
	}

	if account == nil {
		return nil, NewSnapshotError(ErrAccountNotFound, apiErrors.ErrInvalidRequest, accountID, "Conta não encontrada")
	}

	snapshot, err := s.snapshotRepository.GetLatestByAccountID(accountID)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).Warn("Erro ao buscar snapshot do dashboard no banco de dados")
	}

	if snapshot != nil && snapshot.Dashboard != nil {
		return &domain.DashboardResult{DashboardData: snapshot.Dashboard}, nil
	}

	entry, err := s.refresh(accountID)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardResult{DashboardData: entry.Dashboard}, nil
}

// RefreshDashboard recompõe o dashboard da conta a partir do payload mais
// recente e substitui o snapshot do dia.
func (s *Service) RefreshDashboard(accountID string) (*domain.DashboardSnapshotEntry, error) {
	return s.refresh(accountID)
}

func (s *Service) refresh(accountID string) (*domain.DashboardSnapshotEntry, error) {
	data, err := s.accountDataRepository.GetLatestByAccountID(accountID)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).Error("Erro ao buscar payload da conta no banco de dados")
		return nil, NewSnapshotError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, "Erro ao buscar dados da conta no banco de dados")
	}

	if data == nil || data.Payload == nil {
		return nil, NewSnapshotError(ErrNoAccountData, apiErrors.ErrAnalysisNotFound, accountID, "Nenhum dado sincronizado para a conta")
	}

	start := time.Now()
	result, err := s.analyzer.ComposeDashboard(data.Payload)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordDashboardComposed("error", time.Since(start))
		}
		logrus.WithError(err).WithField("account_id", accountID).Error("Erro ao compor dashboard da conta")
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.RecordDashboardComposed("success", time.Since(start))
	}

	entry := &domain.DashboardSnapshotEntry{
		AccountID: accountID,
		Date:      data.Date,
		Dashboard: result.DashboardData,
	}

	if err := s.snapshotRepository.SaveOrUpdate(entry); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"account_id": accountID,
			"date":       data.Date.Format(time.DateOnly),
		}).Warn("Erro ao salvar snapshot do dashboard no banco de dados")
	}

	return entry, nil
}
