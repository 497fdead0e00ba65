package domain

// SponsoredAdsSummary agrega os totais de sponsored ads da conta no período.
type SponsoredAdsSummary struct {
	TotalCost              float64 `json:"totalCost"`
	TotalSalesIn30Days     float64 `json:"totalSalesIn30Days"`
	TotalProductsPurchased int     `json:"totalProductsPurchased"`
}

// NegativeKeywordMetric é o desempenho de uma palavra-chave negativada,
// cruzado com os dados de performance de keywords da conta.
type NegativeKeywordMetric struct {
	Keyword      string  `json:"keyword"`
	CampaignName string  `json:"campaignName"`
	Sales        float64 `json:"sales"`
	Spend        float64 `json:"spend"`
	ACOS         float64 `json:"acos"`
}

// SponsoredAdsErrorDetail descreve uma campanha ou keyword sinalizada
// como desperdício de verba.
type SponsoredAdsErrorDetail struct {
	Type         string  `json:"type"`
	ASIN         string  `json:"asin,omitempty"`
	Keyword      string  `json:"keyword,omitempty"`
	CampaignName string  `json:"campaignName"`
	Spend        float64 `json:"spend"`
	Sales        float64 `json:"sales"`
	ACOS         float64 `json:"acos"`
	Reason       string  `json:"reason"`
}

// SponsoredAdsGraphPoint alimenta o gráfico de gasto versus venda por ASIN.
type SponsoredAdsGraphPoint struct {
	ASIN  string  `json:"asin"`
	Spend float64 `json:"spend"`
	Sales float64 `json:"sales"`
}

// Tipos de erro de sponsored ads reportados em SponsoredAdsErrorDetail.
const (
	SponsoredAdsErrorCampaign        = "campaign"
	SponsoredAdsErrorNegativeKeyword = "negative_keyword"
)
