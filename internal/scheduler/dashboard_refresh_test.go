package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/vfg2006/seller-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
	snapshottermocks "github.com/vfg2006/seller-analytics-api/internal/usecases/snapshotting/mocks"
	"go.uber.org/mock/gomock"
)

func TestDashboardRefreshService_refreshAllDashboards(t *testing.T) {
	t.Run("Recompõe o dashboard de todas as contas ativas mesmo com falhas pontuais", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
		mockSnapshotter := snapshottermocks.NewMockSnapshotter(ctrl)

		service := &DashboardRefreshService{
			config:      DashboardRefreshConfig{SyncEnabled: true},
			accountRepo: mockAccountRepo,
			snapshotter: mockSnapshotter,
		}

		accounts := []*domain.SellerAccount{
			{ID: "ACC001", Name: "Loja A", Status: domain.SellerAccountStatusActive},
			{ID: "ACC002", Name: "Loja B", Status: domain.SellerAccountStatusActive},
		}

		mockAccountRepo.EXPECT().
			ListAccounts([]domain.SellerAccountStatus{domain.SellerAccountStatusActive}).
			Return(accounts, nil)

		mockSnapshotter.EXPECT().
			RefreshDashboard("ACC001").
			Return(&domain.DashboardSnapshotEntry{AccountID: "ACC001", Date: time.Now()}, nil)

		// A falha em uma conta não interrompe as demais
		mockSnapshotter.EXPECT().
			RefreshDashboard("ACC002").
			Return(nil, errors.New("no account data available"))

		service.refreshAllDashboards()
	})

	t.Run("Erro ao listar contas interrompe o refresh sem recompor dashboards", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
		mockSnapshotter := snapshottermocks.NewMockSnapshotter(ctrl)

		service := &DashboardRefreshService{
			config:      DashboardRefreshConfig{SyncEnabled: true},
			accountRepo: mockAccountRepo,
			snapshotter: mockSnapshotter,
		}

		mockAccountRepo.EXPECT().
			ListAccounts(gomock.Any()).
			Return(nil, errors.New("database error"))

		service.refreshAllDashboards()
	})
}
