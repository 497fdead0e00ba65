package domain

import (
	"encoding/json"
	"time"
)

// DashboardViewModel é o modelo desnormalizado consumido pelo dashboard.
// Alguns nomes de campo JSON preservam grafias históricas do contrato com
// o frontend ("TotalRankingerrors", "reimbustment", "profitibilityData").
type DashboardViewModel struct {
	AccountHealthPercentage     float64                   `json:"accountHealthPercentage"`
	AccountFinance              json.RawMessage           `json:"accountFinance,omitempty"`
	TotalErrorInAccount         int                       `json:"totalErrorInAccount"`
	TotalErrorInConversion      int                       `json:"totalErrorInConversion"`
	TotalRankingErrors          int                       `json:"TotalRankingerrors"`
	First                       *ProductErrorRecord       `json:"first"`
	Second                      *ProductErrorRecord       `json:"second"`
	Third                       *ProductErrorRecord       `json:"third"`
	Fourth                      *ProductErrorRecord       `json:"fourth"`
	ProductsWithoutBuyboxError  int                       `json:"productsWithOutBuyboxError"`
	ReplenishmentQty            FlexFloat                 `json:"replenishmentQty"`
	AmazonReadyProducts         []ConversionCheck         `json:"amazonReadyProducts,omitempty"`
	TotalProduct                int                       `json:"TotalProduct"`
	ActiveProducts              int                       `json:"ActiveProducts"`
	TotalWeeklySale             float64                   `json:"TotalWeeklySale"`
	TotalSales                  FlexFloat                 `json:"TotalSales"`
	Reimbursement               FlexFloat                 `json:"reimbustment"`
	ProductWiseError            []*ProductErrorRecord     `json:"productWiseError"`
	RankingProductWiseErrors    []*RankingProductError    `json:"rankingProductWiseErrors"`
	ConversionProductWiseErrors []*ConversionProductError `json:"conversionProductWiseErrors"`
	AccountErrors               json.RawMessage           `json:"AccountErrors,omitempty"`
	StartDate                   string                    `json:"startDate,omitempty"`
	EndDate                     string                    `json:"endDate,omitempty"`
	ProfitabilityData           []*ProfitabilityRecord    `json:"profitibilityData"`
	SponsoredAdsMetrics         *SponsoredAdsSummary      `json:"sponsoredAdsMetrics"`
	NegativeKeywordsMetrics     []*NegativeKeywordMetric  `json:"negativeKeywordsMetrics"`
	SponsoredAdsGraphData       []*SponsoredAdsGraphPoint `json:"ProductWiseSponsoredAdsGraphData"`
	TotalProfitabilityErrors    int                       `json:"totalProfitabilityErrors"`
	TotalSponsoredAdsErrors     int                       `json:"totalSponsoredAdsErrors"`
	ProductWiseSponsoredAds     []SponsoredAdEntry        `json:"ProductWiseSponsoredAds"`
	ProfitabilityErrorDetails   []*ProfitabilityErrorDetail `json:"profitabilityErrorDetails"`
	SponsoredAdsErrorDetails    []*SponsoredAdsErrorDetail  `json:"sponsoredAdsErrorDetails"`
	Keywords                    []string                  `json:"keywords"`
}

// DashboardResult é o envelope retornado pelo pipeline de análise.
type DashboardResult struct {
	DashboardData *DashboardViewModel `json:"dashboardData"`
}

// ProductErrorRecord consolida os erros de ranking e conversão de um
// produto junto com seus dados de venda e catálogo.
type ProductErrorRecord struct {
	ASIN             string              `json:"asin"`
	SKU              string              `json:"sku,omitempty"`
	Name             string              `json:"name"`
	Price            float64             `json:"price"`
	MainImage        string              `json:"MainImage,omitempty"`
	Sales            float64             `json:"sales"`
	Quantity         int                 `json:"quantity"`
	Errors           int                 `json:"errors"`
	RankingErrors    *RankingCheckData   `json:"rankingErrors,omitempty"`
	ConversionErrors *ConversionErrorSet `json:"conversionErrors,omitempty"`
}

// ConversionErrorSet é o objeto mesclado de erros de conversão por
// categoria; apenas as categorias reprovadas ficam preenchidas.
type ConversionErrorSet struct {
	ASIN       string           `json:"asin"`
	Image      *ConversionCheck `json:"imageResult,omitempty"`
	Video      *ConversionCheck `json:"videoResult,omitempty"`
	Review     *ConversionCheck `json:"productReviewResult,omitempty"`
	StarRating *ConversionCheck `json:"productStarRatingResult,omitempty"`
	Buybox     *ConversionCheck `json:"buyboxResult,omitempty"`
	APlus      *ConversionCheck `json:"aPlusResult,omitempty"`
}

// Count retorna o número de categorias de conversão reprovadas.
func (c *ConversionErrorSet) Count() int {
	if c == nil {
		return 0
	}

	count := 0
	for _, check := range []*ConversionCheck{c.Image, c.Video, c.Review, c.StarRating, c.Buybox, c.APlus} {
		if check != nil {
			count++
		}
	}

	return count
}

type RankingProductError struct {
	ASIN string            `json:"asin"`
	Data *RankingCheckData `json:"data"`
}

type ConversionProductError struct {
	ASIN   string              `json:"asin"`
	Title  string              `json:"title,omitempty"`
	Errors *ConversionErrorSet `json:"errors,omitempty"`
}

// DashboardSnapshotEntry representa um dashboard composto armazenado no banco
type DashboardSnapshotEntry struct {
	ID        int64               `json:"id"`
	AccountID string              `json:"account_id"`
	Date      time.Time           `json:"date"`
	Dashboard *DashboardViewModel `json:"dashboard"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}
