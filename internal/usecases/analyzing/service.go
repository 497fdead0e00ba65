package analyzing

import (
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
	"github.com/vfg2006/seller-analytics-api/pkg/log"
	"github.com/vfg2006/seller-analytics-api/pkg/utils"
)

// Limite de caracteres do título de produto exibido no dashboard
const productTitleLimit = 50

// Service implementa o pipeline completo de análise de contas
type Service struct {
	logger   log.Logger
	validate *validator.Validate
}

// NewService cria uma nova instância do serviço de análise
func NewService(logger log.Logger) *Service {
	return &Service{
		logger:   logger,
		validate: validator.New(),
	}
}

// ComposeDashboard monta o view model do dashboard a partir do payload
// bruto da conta. O pipeline é determinístico e não mantém estado entre
// chamadas, então é seguro invocá-lo concorrentemente.
func (s *Service) ComposeDashboard(data *domain.AccountData) (*domain.DashboardResult, error) {
	if data == nil {
		return nil, NewAnalysisError(ErrInvalidPayload, "ANL_001", "payload vazio")
	}

	if data.RankingsData == nil {
		return nil, NewAnalysisError(ErrMissingRankings, "ANL_002", "")
	}

	if data.ConversionData == nil {
		return nil, NewAnalysisError(ErrMissingConversion, "ANL_003", "")
	}

	if err := s.validate.Struct(data); err != nil {
		return nil, NewAnalysisError(ErrInvalidPayload, "ANL_001", err.Error())
	}

	activeProducts := 0
	catalogByASIN := make(map[string]*domain.CatalogProduct)
	for i := range data.TotalProducts {
		product := &data.TotalProducts[i]
		if product.Status == "Active" {
			activeProducts++
		}
		if _, ok := catalogByASIN[product.ASIN]; !ok {
			catalogByASIN[product.ASIN] = product
		}
	}

	conversion := buildConversionLookup(data.ConversionData)

	totalWeeklySale := 0.0
	salesByASIN := make(map[string]*domain.ProductSale)
	for i := range data.SalesByProducts {
		sale := &data.SalesByProducts[i]
		totalWeeklySale += sale.Amount.Float()
		if _, ok := salesByASIN[sale.ASIN]; !ok {
			salesByASIN[sale.ASIN] = sale
		}
	}

	// Passada principal: uma entrada por ASIN do feed de ranking, que é o
	// condutor canônico da iteração por produto. A primeira ocorrência de
	// cada ASIN vence nesta passada.
	totalRankingErrors := 0
	productErrors := make([]*domain.ProductErrorRecord, 0, len(data.RankingsData.RankingResultArray))
	recordByASIN := make(map[string]*domain.ProductErrorRecord)
	rankingViews := make([]*domain.RankingProductError, 0, len(data.RankingsData.RankingResultArray))
	rankingViewData := make(map[string]*domain.RankingCheckData)
	conversionViews := make([]*domain.ConversionProductError, 0)

	for _, result := range data.RankingsData.RankingResultArray {
		if _, seen := recordByASIN[result.ASIN]; seen {
			continue
		}

		record := &domain.ProductErrorRecord{
			ASIN:             result.ASIN,
			ConversionErrors: conversion.errorsFor(result.ASIN),
		}

		if product, ok := catalogByASIN[result.ASIN]; ok {
			record.SKU = product.SKU
			record.Name = utils.TruncateString(product.Title, productTitleLimit)
			record.Price = product.Price.Float()
			record.MainImage = product.MainImage
		}

		if sale, ok := salesByASIN[result.ASIN]; ok {
			record.Sales = sale.Amount.Float()
			record.Quantity = sale.Quantity.Int()
		}

		rankingErrors := 0
		if result.Data != nil {
			rankingErrors = result.Data.TotalErrors
		}

		totalRankingErrors += rankingErrors
		record.Errors = rankingErrors + record.ConversionErrors.Count()

		if rankingErrors > 0 {
			record.RankingErrors = result.Data
			rankingViews = append(rankingViews, &domain.RankingProductError{ASIN: result.ASIN, Data: result.Data})
			rankingViewData[result.ASIN] = result.Data
		} else {
			// Placeholder para manter o produto visível na lista de ranking
			placeholder := &domain.RankingCheckData{Title: record.Name}
			rankingViews = append(rankingViews, &domain.RankingProductError{ASIN: result.ASIN, Data: placeholder})
			rankingViewData[result.ASIN] = placeholder
		}

		if record.ConversionErrors.Count() > 0 {
			conversionViews = append(conversionViews, &domain.ConversionProductError{
				ASIN:   result.ASIN,
				Title:  record.Name,
				Errors: record.ConversionErrors,
			})
		}

		recordByASIN[result.ASIN] = record
		productErrors = append(productErrors, record)
	}

	// Passada secundária: erros de backend keywords acumulam sobre os
	// registros existentes e anexam os detalhes na visão de ranking.
	for _, backend := range data.RankingsData.BackendKeywordResultArray {
		if backend.Data == nil || backend.Data.NumberOfErrors <= 0 {
			continue
		}

		record, ok := recordByASIN[backend.ASIN]
		if !ok {
			continue
		}

		record.Errors += backend.Data.NumberOfErrors

		// A mesma estrutura alimenta o registro do produto e a visão de
		// ranking, então os detalhes aparecem nas duas listas
		if record.RankingErrors == nil {
			record.RankingErrors = rankingViewData[backend.ASIN]
		}
		record.RankingErrors.CharLim = backend.Data.CharLim
		record.RankingErrors.DublicateWords = backend.Data.DublicateWords
	}

	deduped := dedupeByASIN(productErrors)
	sort.SliceStable(deduped, func(i, j int) bool {
		return deduped[i].Errors > deduped[j].Errors
	})

	first, second, third, fourth := takeTopFour(deduped)

	// Entradas de backend keyword com exatamente um erro promovem o
	// produto correspondente no top 4. As promoções são acumuladas e a
	// lista é reordenada uma única vez, então o top 4 final permanece em
	// ordem decrescente de erros.
	promoted := false
	for _, backend := range data.RankingsData.BackendKeywordResultArray {
		if backend.Data == nil || backend.Data.NumberOfErrors != 1 {
			continue
		}
		for _, slot := range []*domain.ProductErrorRecord{first, second, third, fourth} {
			if slot != nil && slot.ASIN == backend.ASIN {
				slot.Errors++
				promoted = true
			}
		}
	}
	if promoted {
		sort.SliceStable(deduped, func(i, j int) bool {
			return deduped[i].Errors > deduped[j].Errors
		})
		first, second, third, fourth = takeTopFour(deduped)
	}

	profitability := s.AggregateProfitability(data)
	profitabilityErrors := s.ClassifyProfitability(profitability)

	adsSummary := s.SummarizeSponsoredAds(data.ProductWiseSponsoredAds)
	keywordMetrics := s.MatchNegativeKeywords(data.NegativeKeywords, data.KeywordPerformance)
	adsErrors := s.ClassifySponsoredAds(data.ProductWiseSponsoredAds, keywordMetrics)

	graphData := make([]*domain.SponsoredAdsGraphPoint, 0, len(data.ProductWiseSponsoredAds))
	for _, entry := range data.ProductWiseSponsoredAds {
		graphData = append(graphData, &domain.SponsoredAdsGraphPoint{
			ASIN:  entry.ASIN,
			Spend: entry.Spend.Float(),
			Sales: entry.SalesIn30Days.Float(),
		})
	}

	dashboard := &domain.DashboardViewModel{
		AccountFinance:              data.FinanceData,
		TotalErrorInAccount:         totalRankingErrors + conversion.totalErrors,
		TotalErrorInConversion:      conversion.totalErrors,
		TotalRankingErrors:          totalRankingErrors,
		First:                       first,
		Second:                      second,
		Third:                       third,
		Fourth:                      fourth,
		ProductsWithoutBuyboxError:  len(data.ConversionData.ProductWithOutBuybox),
		ReplenishmentQty:            data.ReplenishmentQty,
		AmazonReadyProducts:         data.ConversionData.AmazonReadyProducts,
		TotalProduct:                len(data.TotalProducts),
		ActiveProducts:              activeProducts,
		TotalWeeklySale:             utils.RoundWithTwoDecimalPlace(totalWeeklySale),
		TotalSales:                  data.TotalSales,
		Reimbursement:               data.Reimbursement,
		ProductWiseError:            deduped,
		RankingProductWiseErrors:    rankingViews,
		ConversionProductWiseErrors: conversionViews,
		StartDate:                   data.StartDate,
		EndDate:                     data.EndDate,
		ProfitabilityData:           profitability,
		SponsoredAdsMetrics:         adsSummary,
		NegativeKeywordsMetrics:     keywordMetrics,
		SponsoredAdsGraphData:       graphData,
		TotalProfitabilityErrors:    len(profitabilityErrors),
		TotalSponsoredAdsErrors:     len(adsErrors),
		ProductWiseSponsoredAds:     data.ProductWiseSponsoredAds,
		ProfitabilityErrorDetails:   profitabilityErrors,
		SponsoredAdsErrorDetails:    adsErrors,
		Keywords:                    data.Keywords,
	}

	if data.AccountHealth != nil {
		dashboard.AccountHealthPercentage = data.AccountHealth.HealthPercentage.Float()
		dashboard.AccountErrors = data.AccountHealth.AccountHealth
	}

	s.logger.WithFields(log.Fields{
		"products":       len(deduped),
		"ranking_errors": totalRankingErrors,
		"conv_errors":    conversion.totalErrors,
	}).Debug("Dashboard composto com sucesso")

	return &domain.DashboardResult{DashboardData: dashboard}, nil
}

// conversionLookup indexa por ASIN as seis categorias de erro de conversão
type conversionLookup struct {
	image       map[string]*domain.ConversionCheck
	video       map[string]*domain.ConversionCheck
	review      map[string]*domain.ConversionCheck
	starRating  map[string]*domain.ConversionCheck
	buybox      map[string]*domain.ConversionCheck
	aPlus       map[string]*domain.ConversionCheck
	totalErrors int
}

func buildConversionLookup(data *domain.ConversionData) *conversionLookup {
	lookup := &conversionLookup{
		image:      indexFailedChecks(data.ImageResult),
		video:      indexFailedChecks(data.VideoResult),
		review:     indexFailedChecks(data.ProductReviewResult),
		starRating: indexFailedChecks(data.ProductStarRatingResult),
		aPlus:      indexFailedChecks(data.APlusResult),
		buybox:     make(map[string]*domain.ConversionCheck, len(data.ProductWithOutBuybox)),
	}

	// A lista de buybox já contém apenas produtos com problema; ela é
	// embrulhada no mesmo formato das demais categorias.
	for i := range data.ProductWithOutBuybox {
		product := &data.ProductWithOutBuybox[i]
		if _, ok := lookup.buybox[product.ASIN]; !ok {
			lookup.buybox[product.ASIN] = &domain.ConversionCheck{ASIN: product.ASIN, Data: product.Data}
		}
	}

	// O total conta cada entrada reprovada das seis listas, mesmo quando um
	// ASIN se repete; os índices acima guardam só a primeira ocorrência
	lookup.totalErrors = countFailedChecks(data.ImageResult) +
		countFailedChecks(data.VideoResult) +
		countFailedChecks(data.ProductReviewResult) +
		countFailedChecks(data.ProductStarRatingResult) +
		countFailedChecks(data.APlusResult) +
		len(data.ProductWithOutBuybox)

	return lookup
}

func countFailedChecks(checks []domain.ConversionCheck) int {
	count := 0
	for i := range checks {
		if checks[i].Status == "Error" {
			count++
		}
	}
	return count
}

func indexFailedChecks(checks []domain.ConversionCheck) map[string]*domain.ConversionCheck {
	failed := make(map[string]*domain.ConversionCheck)
	for i := range checks {
		if checks[i].Status != "Error" {
			continue
		}
		if _, ok := failed[checks[i].ASIN]; !ok {
			failed[checks[i].ASIN] = &checks[i]
		}
	}
	return failed
}

// errorsFor monta o objeto mesclado de erros de conversão de um ASIN. O
// objeto é sempre retornado, mesmo sem categoria preenchida, para que o
// consumidor possa contar os erros de forma uniforme.
func (l *conversionLookup) errorsFor(asin string) *domain.ConversionErrorSet {
	return &domain.ConversionErrorSet{
		ASIN:       asin,
		Image:      l.image[asin],
		Video:      l.video[asin],
		Review:     l.review[asin],
		StarRating: l.starRating[asin],
		Buybox:     l.buybox[asin],
		APlus:      l.aPlus[asin],
	}
}

// dedupeByASIN remove duplicatas preservando a ordem de inserção; a última
// ocorrência de cada ASIN substitui a anterior na posição original.
func dedupeByASIN(records []*domain.ProductErrorRecord) []*domain.ProductErrorRecord {
	index := make(map[string]int, len(records))
	deduped := make([]*domain.ProductErrorRecord, 0, len(records))

	for _, record := range records {
		if position, ok := index[record.ASIN]; ok {
			deduped[position] = record
			continue
		}
		index[record.ASIN] = len(deduped)
		deduped = append(deduped, record)
	}

	return deduped
}

func takeTopFour(records []*domain.ProductErrorRecord) (first, second, third, fourth *domain.ProductErrorRecord) {
	slots := make([]*domain.ProductErrorRecord, 4)
	for i := 0; i < len(records) && i < 4; i++ {
		slots[i] = records[i]
	}
	return slots[0], slots[1], slots[2], slots[3]
}
