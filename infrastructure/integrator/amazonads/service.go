package amazonads

import (
	"strconv"

	"github.com/vfg2006/seller-analytics-api/infrastructure/integrator/amazonads/adsclient"
	"github.com/vfg2006/seller-analytics-api/internal/config"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
)

// AdsIntegrator define a interface de acesso aos dados de sponsored ads
// da conta, já convertidos para o modelo de domínio da aplicação.
type AdsIntegrator interface {
	GetSponsoredAds(account *domain.SellerAccount, filters *domain.AnalysisFilters) ([]domain.SponsoredAdEntry, error)
	GetKeywordPerformance(account *domain.SellerAccount, filters *domain.AnalysisFilters) ([]domain.KeywordPerformanceEntry, error)
	GetNegativeKeywords(account *domain.SellerAccount) ([]domain.NegativeKeyword, error)
}

type AdsService struct {
	cfg    *config.Config
	Client adsclient.Client
}

func New(cfg *config.Config, client adsclient.Client) AdsIntegrator {
	return &AdsService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *AdsService) GetSponsoredAds(account *domain.SellerAccount, filters *domain.AnalysisFilters) ([]domain.SponsoredAdEntry, error) {
	rows, err := s.Client.GetCampaignReport(secretNameOf(account), filters)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.SponsoredAdEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.SponsoredAdEntry{
			ASIN:              row.ASIN,
			CampaignID:        row.CampaignID,
			CampaignName:      row.CampaignName,
			Spend:             domain.FlexFloat(row.Cost),
			SalesIn30Days:     domain.FlexFloat(row.Sales30d),
			PurchasedIn30Days: domain.FlexFloat(row.Purchases30d),
			Clicks:            domain.FlexFloat(row.Clicks),
			Impressions:       domain.FlexFloat(row.Impressions),
		})
	}

	return entries, nil
}

func (s *AdsService) GetKeywordPerformance(account *domain.SellerAccount, filters *domain.AnalysisFilters) ([]domain.KeywordPerformanceEntry, error) {
	rows, err := s.Client.GetKeywordReport(secretNameOf(account), filters)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.KeywordPerformanceEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.KeywordPerformanceEntry{
			Keyword:            row.KeywordText,
			CampaignID:         row.CampaignID,
			CampaignName:       row.CampaignName,
			AttributedSales30d: domain.FlexFloat(row.AttributedSales30d),
			Cost:               domain.FlexFloat(row.Cost),
			Clicks:             domain.FlexFloat(row.Clicks),
			Impressions:        domain.FlexFloat(row.Impressions),
			MatchType:          row.MatchType,
		})
	}

	return entries, nil
}

func (s *AdsService) GetNegativeKeywords(account *domain.SellerAccount) ([]domain.NegativeKeyword, error) {
	rows, err := s.Client.GetNegativeKeywords(secretNameOf(account))
	if err != nil {
		return nil, err
	}

	negatives := make([]domain.NegativeKeyword, 0, len(rows))
	for _, row := range rows {
		negatives = append(negatives, domain.NegativeKeyword{
			AdGroupID:   strconv.FormatInt(row.AdGroupID, 10),
			CampaignID:  strconv.FormatInt(row.CampaignID, 10),
			KeywordID:   strconv.FormatInt(row.KeywordID, 10),
			KeywordText: row.KeywordText,
			State:       row.State,
		})
	}

	return negatives, nil
}

func secretNameOf(account *domain.SellerAccount) string {
	if account.SecretName != nil {
		return *account.SecretName
	}
	return account.ID
}
