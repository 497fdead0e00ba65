package scheduler

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	adsmocks "github.com/vfg2006/seller-analytics-api/infrastructure/integrator/amazonads/mocks"
	spapimocks "github.com/vfg2006/seller-analytics-api/infrastructure/integrator/spapi/mocks"
	"github.com/vfg2006/seller-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func newSyncServiceForTest(
	accountRepo *mocks.MockAccountRepository,
	accountDataRepo *mocks.MockAccountDataRepository,
	spapiService *spapimocks.MockSPAPIIntegrator,
	adsService *adsmocks.MockAdsIntegrator,
) *AccountDataSyncService {
	return &AccountDataSyncService{
		config: AccountDataSyncConfig{
			LookbackDays:        7,
			RequestDelaySeconds: 0,
			MaxConcurrentJobs:   1,
			SyncEnabled:         true,
		},
		accountRepo:     accountRepo,
		accountDataRepo: accountDataRepo,
		spapiService:    spapiService,
		adsService:      adsService,
	}
}

func TestAccountDataSyncService_processAccountData(t *testing.T) {
	account := &domain.SellerAccount{
		ID:          "ACC001",
		SellerID:    "A1SELLER",
		Name:        "Loja A",
		Marketplace: "ATVPDKIKX0DER",
		Country:     "US",
		SecretName:  strPtr("amazon_sp-A1SELLER"),
		Status:      domain.SellerAccountStatusActive,
	}

	t.Run("Payload completo é montado e salvo com os blocos externos preservados", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
		mockAccountDataRepo := mocks.NewMockAccountDataRepository(ctrl)
		mockSPAPI := spapimocks.NewMockSPAPIIntegrator(ctrl)
		mockAds := adsmocks.NewMockAdsIntegrator(ctrl)

		service := newSyncServiceForTest(mockAccountRepo, mockAccountDataRepo, mockSPAPI, mockAds)

		catalog := []domain.CatalogProduct{
			{ASIN: "B001", Status: "Active", SKU: "SKU-1", Price: 29.9, Title: "Produto 1"},
			{ASIN: "B002", Status: "Active", SKU: "SKU-2", Price: 49.9, Title: "Produto 2"},
		}
		sales := []domain.ProductSale{
			{ASIN: "B001", Quantity: 3, Amount: 89.7},
			{ASIN: "B002", Quantity: 1, Amount: 49.9},
		}
		fees := []domain.FBAFeeEntry{
			{ASIN: "B001", Fees: json.RawMessage(`4.5`)},
		}
		sponsoredAds := []domain.SponsoredAdEntry{
			{ASIN: "B001", CampaignID: "100", CampaignName: "Campanha 1", Spend: 12, SalesIn30Days: 60},
		}
		negativeKeywords := []domain.NegativeKeyword{
			{CampaignID: "100", KeywordID: "555", KeywordText: "barato"},
		}
		keywordPerformance := []domain.KeywordPerformanceEntry{
			{Keyword: "barato", CampaignID: "100", Cost: 3, AttributedSales30d: 10},
		}
		financeRaw := json.RawMessage(`{"RefundEventList":[]}`)

		mockSPAPI.EXPECT().GetCatalogProducts(account).Return(catalog, nil)
		mockSPAPI.EXPECT().GetSalesByProducts(account, gomock.Any()).Return(sales, nil)
		mockSPAPI.EXPECT().GetFBAFees(account, []string{"B001", "B002"}).Return(fees, nil)
		mockSPAPI.EXPECT().GetFinanceSummary(account, gomock.Any()).Return(financeRaw, 12.5, nil)

		mockAds.EXPECT().GetSponsoredAds(account, gomock.Any()).Return(sponsoredAds, nil)
		mockAds.EXPECT().GetNegativeKeywords(account).Return(negativeKeywords, nil)
		mockAds.EXPECT().GetKeywordPerformance(account, gomock.Any()).Return(keywordPerformance, nil)

		previousRankings := &domain.RankingsData{
			RankingResultArray: []domain.RankingResult{
				{ASIN: "B001", Data: &domain.RankingCheckData{Title: "Produto 1", TotalErrors: 2}},
			},
		}
		previousConversion := &domain.ConversionData{}
		mockAccountDataRepo.EXPECT().
			GetLatestByAccountID("ACC001").
			Return(&domain.AccountDataEntry{
				AccountID: "ACC001",
				Date:      time.Now().AddDate(0, 0, -1),
				Payload: &domain.AccountData{
					RankingsData:   previousRankings,
					ConversionData: previousConversion,
				},
			}, nil)

		var saved *domain.AccountDataEntry
		mockAccountDataRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(entry *domain.AccountDataEntry) error {
				saved = entry
				return nil
			})

		service.processAccountData(account)

		require.NotNil(t, saved)
		assert.Equal(t, "ACC001", saved.AccountID)
		require.NotNil(t, saved.Payload)

		assert.Len(t, saved.Payload.TotalProducts, 2)
		assert.Len(t, saved.Payload.SalesByProducts, 2)
		assert.Len(t, saved.Payload.ProductWiseSponsoredAds, 1)
		assert.Len(t, saved.Payload.FBAFees, 1)
		assert.Len(t, saved.Payload.NegativeKeywords, 1)
		assert.Len(t, saved.Payload.KeywordPerformance, 1)

		assert.Equal(t, 139.6, saved.Payload.TotalSales.Float())
		assert.Equal(t, 12.5, saved.Payload.Reimbursement.Float())
		assert.Equal(t, "US", saved.Payload.Country)

		// Blocos que não vêm das APIs da Amazon vêm do último payload salvo
		assert.Equal(t, previousRankings, saved.Payload.RankingsData)
		assert.Equal(t, previousConversion, saved.Payload.ConversionData)
	})

	t.Run("Erro no catálogo interrompe o processamento sem salvar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
		mockAccountDataRepo := mocks.NewMockAccountDataRepository(ctrl)
		mockSPAPI := spapimocks.NewMockSPAPIIntegrator(ctrl)
		mockAds := adsmocks.NewMockAdsIntegrator(ctrl)

		service := newSyncServiceForTest(mockAccountRepo, mockAccountDataRepo, mockSPAPI, mockAds)

		mockSPAPI.EXPECT().
			GetCatalogProducts(account).
			Return(nil, errors.New("spapi: request falhou"))

		service.processAccountData(account)
	})

	t.Run("Falhas em taxas e financeiro não impedem o salvamento do payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
		mockAccountDataRepo := mocks.NewMockAccountDataRepository(ctrl)
		mockSPAPI := spapimocks.NewMockSPAPIIntegrator(ctrl)
		mockAds := adsmocks.NewMockAdsIntegrator(ctrl)

		service := newSyncServiceForTest(mockAccountRepo, mockAccountDataRepo, mockSPAPI, mockAds)

		mockSPAPI.EXPECT().GetCatalogProducts(account).Return([]domain.CatalogProduct{
			{ASIN: "B001", Status: "Active"},
		}, nil)
		mockSPAPI.EXPECT().GetSalesByProducts(account, gomock.Any()).Return([]domain.ProductSale{}, nil)
		mockSPAPI.EXPECT().GetFBAFees(account, []string{"B001"}).Return(nil, errors.New("spapi: fees indisponíveis"))
		mockSPAPI.EXPECT().GetFinanceSummary(account, gomock.Any()).Return(nil, 0.0, errors.New("spapi: finances indisponíveis"))

		mockAds.EXPECT().GetSponsoredAds(account, gomock.Any()).Return([]domain.SponsoredAdEntry{}, nil)
		mockAds.EXPECT().GetNegativeKeywords(account).Return(nil, errors.New("amazonads: request falhou"))
		mockAds.EXPECT().GetKeywordPerformance(account, gomock.Any()).Return(nil, errors.New("amazonads: request falhou"))

		mockAccountDataRepo.EXPECT().GetLatestByAccountID("ACC001").Return(nil, nil)

		var saved *domain.AccountDataEntry
		mockAccountDataRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(entry *domain.AccountDataEntry) error {
				saved = entry
				return nil
			})

		service.processAccountData(account)

		require.NotNil(t, saved)
		assert.Nil(t, saved.Payload.FBAFees)
		assert.Nil(t, saved.Payload.NegativeKeywords)
		assert.Nil(t, saved.Payload.KeywordPerformance)
		assert.Nil(t, saved.Payload.RankingsData)
	})
}

func TestAccountDataSyncService_processAccounts(t *testing.T) {
	t.Run("Contas sem secret configurado são puladas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
		mockAccountDataRepo := mocks.NewMockAccountDataRepository(ctrl)
		mockSPAPI := spapimocks.NewMockSPAPIIntegrator(ctrl)
		mockAds := adsmocks.NewMockAdsIntegrator(ctrl)

		service := newSyncServiceForTest(mockAccountRepo, mockAccountDataRepo, mockSPAPI, mockAds)

		// Nenhuma expectativa configurada: qualquer chamada às APIs falharia o teste
		service.processAccounts([]*domain.SellerAccount{
			{ID: "ACC001", Name: "Sem secret"},
			{ID: "ACC002", Name: "Secret vazio", SecretName: strPtr("")},
		})
	})
}
