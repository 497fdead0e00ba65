package analyzing

import (
	"github.com/vfg2006/seller-analytics-api/internal/domain"
)

// ProfitabilityAggregator define a interface de agregação de lucratividade
type ProfitabilityAggregator interface {
	// AggregateProfitability cruza vendas, gasto de ads e taxas FBA por ASIN
	AggregateProfitability(data *domain.AccountData) []*domain.ProfitabilityRecord

	// ClassifyProfitability identifica produtos com margem baixa ou prejuízo
	ClassifyProfitability(records []*domain.ProfitabilityRecord) []*domain.ProfitabilityErrorDetail
}

// SponsoredAdsAggregator define a interface de agregação de sponsored ads
type SponsoredAdsAggregator interface {
	// SummarizeSponsoredAds soma gasto, venda e unidades de todas as campanhas
	SummarizeSponsoredAds(entries []domain.SponsoredAdEntry) *domain.SponsoredAdsSummary

	// MatchNegativeKeywords cruza keywords negativadas com o feed de performance
	MatchNegativeKeywords(negatives []domain.NegativeKeyword, performance []domain.KeywordPerformanceEntry) []*domain.NegativeKeywordMetric

	// ClassifySponsoredAds identifica campanhas e keywords com desperdício de verba
	ClassifySponsoredAds(entries []domain.SponsoredAdEntry, keywordMetrics []*domain.NegativeKeywordMetric) []*domain.SponsoredAdsErrorDetail
}

// Analyzer é a interface completa do pipeline de análise
type Analyzer interface {
	ProfitabilityAggregator
	SponsoredAdsAggregator

	// ComposeDashboard monta o view model completo do dashboard a partir do payload bruto
	ComposeDashboard(data *domain.AccountData) (*domain.DashboardResult, error)
}
