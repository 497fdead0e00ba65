package spapi

import (
	"encoding/json"

	"github.com/vfg2006/seller-analytics-api/infrastructure/integrator/lwa"
	spapidomain "github.com/vfg2006/seller-analytics-api/infrastructure/integrator/spapi/domain"
	"github.com/vfg2006/seller-analytics-api/infrastructure/integrator/spapi/spapiclient"
	"github.com/vfg2006/seller-analytics-api/internal/config"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
)

// SPAPIIntegrator define a interface de acesso aos dados do vendedor no
// Amazon SP-API, já convertidos para o modelo de domínio da aplicação.
type SPAPIIntegrator interface {
	GetCatalogProducts(account *domain.SellerAccount) ([]domain.CatalogProduct, error)
	GetSalesByProducts(account *domain.SellerAccount, filters *domain.AnalysisFilters) ([]domain.ProductSale, error)
	GetFBAFees(account *domain.SellerAccount, asins []string) ([]domain.FBAFeeEntry, error)
	GetFinanceSummary(account *domain.SellerAccount, filters *domain.AnalysisFilters) (json.RawMessage, float64, error)
	GetMarketplaceParticipations(secretName string) ([]spapidomain.MarketplaceParticipation, error)
	CheckConnection(refreshToken string) (bool, error)
}

type SPAPIService struct {
	cfg          *config.Config
	Client       spapiclient.Client
	tokenManager *lwa.TokenManager
}

func New(cfg *config.Config, client spapiclient.Client, tokenManager *lwa.TokenManager) SPAPIIntegrator {
	return &SPAPIService{
		cfg:          cfg,
		Client:       client,
		tokenManager: tokenManager,
	}
}

func (s *SPAPIService) GetCatalogProducts(account *domain.SellerAccount) ([]domain.CatalogProduct, error) {
	items, err := s.Client.GetListings(secretNameOf(account))
	if err != nil {
		return nil, err
	}

	products := make([]domain.CatalogProduct, 0, len(items))
	for _, item := range items {
		products = append(products, domain.CatalogProduct{
			ASIN:      item.ASIN,
			Status:    item.Status,
			SKU:       item.SKU,
			Price:     domain.FlexFloat(item.Price),
			Title:     item.Title,
			MainImage: item.MainImage,
		})
	}

	return products, nil
}

func (s *SPAPIService) GetSalesByProducts(account *domain.SellerAccount, filters *domain.AnalysisFilters) ([]domain.ProductSale, error) {
	rows, err := s.Client.GetSalesByASIN(secretNameOf(account), filters)
	if err != nil {
		return nil, err
	}

	sales := make([]domain.ProductSale, 0, len(rows))
	for _, row := range rows {
		sales = append(sales, domain.ProductSale{
			ASIN:     row.ASIN,
			Quantity: domain.FlexFloat(row.UnitsOrdered),
			Amount:   domain.FlexFloat(row.OrderedSales.Amount),
		})
	}

	return sales, nil
}

func (s *SPAPIService) GetFBAFees(account *domain.SellerAccount, asins []string) ([]domain.FBAFeeEntry, error) {
	estimates, err := s.Client.GetFeeEstimates(secretNameOf(account), asins)
	if err != nil {
		return nil, err
	}

	fees := make([]domain.FBAFeeEntry, 0, len(estimates))
	for _, estimate := range estimates {
		amount, err := json.Marshal(estimate.FeeTotal.Amount)
		if err != nil {
			continue
		}
		fees = append(fees, domain.FBAFeeEntry{
			ASIN: estimate.ASIN,
			Fees: amount,
		})
	}

	return fees, nil
}

func (s *SPAPIService) GetFinanceSummary(account *domain.SellerAccount, filters *domain.AnalysisFilters) (json.RawMessage, float64, error) {
	summary, err := s.Client.GetFinanceSummary(secretNameOf(account), filters)
	if err != nil {
		return nil, 0, err
	}

	return summary.Raw, summary.ReimbursementTotal, nil
}

func (s *SPAPIService) GetMarketplaceParticipations(secretName string) ([]spapidomain.MarketplaceParticipation, error) {
	return s.Client.GetMarketplaceParticipations(secretName)
}

// CheckConnection valida um refresh token de nova conta trocando-o por um
// access token na LWA.
func (s *SPAPIService) CheckConnection(refreshToken string) (bool, error) {
	if err := s.tokenManager.CheckRefreshToken(refreshToken); err != nil {
		return false, err
	}
	return true, nil
}

func secretNameOf(account *domain.SellerAccount) string {
	if account.SecretName != nil {
		return *account.SecretName
	}
	return account.ID
}
