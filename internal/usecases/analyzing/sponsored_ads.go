package analyzing

import (
	"strings"

	"github.com/vfg2006/seller-analytics-api/internal/domain"
	"github.com/vfg2006/seller-analytics-api/pkg/log"
	"github.com/vfg2006/seller-analytics-api/pkg/utils"
)

// NoCampaignFound é o sentinel usado quando uma keyword negativada não tem
// correspondência no feed de performance.
const NoCampaignFound = "No Campaign Found"

// Limites de classificação de desperdício de verba em sponsored ads
const (
	campaignMaxACOS        = 50.0
	campaignMinSpendNoSale = 5.0
	campaignHighSpend      = 10.0
	campaignHighSpendACOS  = 30.0
	keywordMaxACOS         = 100.0
	keywordMinSpendNoSale  = 5.0
)

// Motivos de classificação reportados em SponsoredAdsErrorDetail
const (
	adsReasonHighACOS     = "ACOS above threshold"
	adsReasonSpendNoSales = "spend without sales"
)

// SummarizeSponsoredAds soma gasto, venda e unidades compradas de todas as
// campanhas, tratando valores ausentes como 0.
func (s *Service) SummarizeSponsoredAds(entries []domain.SponsoredAdEntry) *domain.SponsoredAdsSummary {
	summary := &domain.SponsoredAdsSummary{}

	for _, entry := range entries {
		summary.TotalCost += entry.Spend.Float()
		summary.TotalSalesIn30Days += entry.SalesIn30Days.Float()
		summary.TotalProductsPurchased += entry.PurchasedIn30Days.Int()
	}

	summary.TotalCost = utils.RoundWithTwoDecimalPlace(summary.TotalCost)
	summary.TotalSalesIn30Days = utils.RoundWithTwoDecimalPlace(summary.TotalSalesIn30Days)

	return summary
}

// MatchNegativeKeywords cruza cada keyword negativada com o feed de
// performance usando três níveis de correspondência: texto e campanha
// exatos, somente texto e, por fim, substring em qualquer direção. O
// primeiro nível que encontrar candidato vence e a busca para ali.
// Keywords sem correspondência geram um registro zerado com o sentinel
// NoCampaignFound, então o resultado sempre tem o tamanho da entrada.
func (s *Service) MatchNegativeKeywords(negatives []domain.NegativeKeyword, performance []domain.KeywordPerformanceEntry) []*domain.NegativeKeywordMetric {
	metrics := make([]*domain.NegativeKeywordMetric, 0, len(negatives))

	for _, negative := range negatives {
		match := findKeywordMatch(negative, performance)
		if match == nil {
			metrics = append(metrics, &domain.NegativeKeywordMetric{
				Keyword:      negative.KeywordText,
				CampaignName: NoCampaignFound,
			})
			continue
		}

		sales := match.AttributedSales30d.Float()
		spend := match.Cost.Float()

		acos := 0.0
		if spend > 0 && sales > 0 {
			acos = utils.SafeDivide(spend, sales) * 100
		}

		metrics = append(metrics, &domain.NegativeKeywordMetric{
			Keyword:      negative.KeywordText,
			CampaignName: match.CampaignName,
			Sales:        utils.RoundWithTwoDecimalPlace(sales),
			Spend:        utils.RoundWithTwoDecimalPlace(spend),
			ACOS:         utils.RoundWithTwoDecimalPlace(acos),
		})
	}

	return metrics
}

func findKeywordMatch(negative domain.NegativeKeyword, performance []domain.KeywordPerformanceEntry) *domain.KeywordPerformanceEntry {
	text := negative.KeywordText

	for i := range performance {
		if strings.EqualFold(performance[i].Keyword, text) && performance[i].CampaignID == negative.CampaignID {
			return &performance[i]
		}
	}

	for i := range performance {
		if strings.EqualFold(performance[i].Keyword, text) {
			return &performance[i]
		}
	}

	lowered := strings.ToLower(text)
	for i := range performance {
		candidate := strings.ToLower(performance[i].Keyword)
		if candidate == "" || lowered == "" {
			continue
		}
		if strings.Contains(candidate, lowered) || strings.Contains(lowered, candidate) {
			return &performance[i]
		}
	}

	return nil
}

// ClassifySponsoredAds identifica campanhas e keywords negativadas que
// estão desperdiçando verba: ACOS alto com venda ou gasto sem venda alguma.
func (s *Service) ClassifySponsoredAds(entries []domain.SponsoredAdEntry, keywordMetrics []*domain.NegativeKeywordMetric) []*domain.SponsoredAdsErrorDetail {
	details := make([]*domain.SponsoredAdsErrorDetail, 0)

	for _, entry := range entries {
		spend := entry.Spend.Float()
		sales := entry.SalesIn30Days.Float()

		acos := 0.0
		if spend > 0 && sales > 0 {
			acos = utils.SafeDivide(spend, sales) * 100
		}

		var reason string
		switch {
		case acos > campaignMaxACOS && sales > 0:
			reason = adsReasonHighACOS
		case spend > campaignMinSpendNoSale && sales == 0:
			reason = adsReasonSpendNoSales
		case spend > campaignHighSpend && acos > campaignHighSpendACOS:
			reason = adsReasonHighACOS
		default:
			continue
		}

		details = append(details, &domain.SponsoredAdsErrorDetail{
			Type:         domain.SponsoredAdsErrorCampaign,
			ASIN:         entry.ASIN,
			CampaignName: entry.CampaignName,
			Spend:        utils.RoundWithTwoDecimalPlace(spend),
			Sales:        utils.RoundWithTwoDecimalPlace(sales),
			ACOS:         utils.RoundWithTwoDecimalPlace(acos),
			Reason:       reason,
		})
	}

	for _, metric := range keywordMetrics {
		var reason string
		switch {
		case metric.ACOS > keywordMaxACOS && metric.Sales > 0:
			reason = adsReasonHighACOS
		case metric.Spend > keywordMinSpendNoSale && metric.Sales == 0:
			reason = adsReasonSpendNoSales
		default:
			continue
		}

		details = append(details, &domain.SponsoredAdsErrorDetail{
			Type:         domain.SponsoredAdsErrorNegativeKeyword,
			Keyword:      metric.Keyword,
			CampaignName: metric.CampaignName,
			Spend:        metric.Spend,
			Sales:        metric.Sales,
			ACOS:         metric.ACOS,
			Reason:       reason,
		})
	}

	if len(details) > 0 {
		s.logger.WithFields(log.Fields{
			"flagged": len(details),
		}).Debug("Classificação de sponsored ads concluída")
	}

	return details
}
