package analyzing

import (
	"math"

	"github.com/vfg2006/seller-analytics-api/internal/domain"
	"github.com/vfg2006/seller-analytics-api/pkg/log"
	"github.com/vfg2006/seller-analytics-api/pkg/utils"
)

// Limite de margem abaixo do qual um produto é considerado erro de lucratividade
const minProfitMargin = 10.0

// Motivos de classificação reportados em ProfitabilityErrorDetail
const (
	profitReasonNegative  = "negative net profit"
	profitReasonLowMargin = "profit margin below 10%"
)

// AggregateProfitability cruza os feeds de vendas, gasto de sponsored ads e
// taxas FBA em um registro por ASIN. A ordem do resultado segue a primeira
// aparição de cada ASIN em qualquer feed.
func (s *Service) AggregateProfitability(data *domain.AccountData) []*domain.ProfitabilityRecord {
	records := make([]*domain.ProfitabilityRecord, 0)
	byASIN := make(map[string]*domain.ProfitabilityRecord)

	record := func(asin string) *domain.ProfitabilityRecord {
		if existing, ok := byASIN[asin]; ok {
			return existing
		}

		created := &domain.ProfitabilityRecord{ASIN: asin}
		byASIN[asin] = created
		records = append(records, created)
		return created
	}

	for _, sale := range data.SalesByProducts {
		entry := record(sale.ASIN)
		entry.Quantity += sale.Quantity.Int()
		entry.Sales += sale.Amount.Float()
	}

	for _, ad := range data.ProductWiseSponsoredAds {
		entry := record(ad.ASIN)
		entry.Ads += ad.Spend.Float()
	}

	// Feed legado de taxas, ainda presente em contas antigas
	for _, fba := range data.ProductWiseFBAData {
		entry := record(fba.ASIN)
		entry.AmzFee += fba.TotalFBA.Float() + fba.TotalAmzFee.Float()
	}

	// Feed atual de taxas. Entradas sem ASIN são ignoradas e valores
	// inconvertíveis contribuem 0, nunca interrompem a agregação.
	for _, fee := range data.FBAFees {
		if fee.ASIN == "" {
			continue
		}

		entry := record(fee.ASIN)
		entry.AmzFee += fee.FeeAmount()
	}

	for _, entry := range records {
		if math.IsNaN(entry.AmzFee) || math.IsInf(entry.AmzFee, 0) {
			entry.AmzFee = 0
		}
	}

	s.logger.WithFields(log.Fields{
		"products": len(records),
	}).Debug("Agregação de lucratividade concluída")

	return records
}

// ClassifyProfitability identifica os produtos com prejuízo ou margem de
// lucro abaixo do mínimo. Produtos sem venda têm margem 0, o que também os
// classifica como erro.
func (s *Service) ClassifyProfitability(records []*domain.ProfitabilityRecord) []*domain.ProfitabilityErrorDetail {
	details := make([]*domain.ProfitabilityErrorDetail, 0)

	for _, record := range records {
		netProfit := record.NetProfit()

		margin := 0.0
		if record.Sales > 0 {
			margin = utils.SafeDivide(netProfit, record.Sales) * 100
		}

		if netProfit >= 0 && margin >= minProfitMargin {
			continue
		}

		reason := profitReasonLowMargin
		if netProfit < 0 {
			reason = profitReasonNegative
		}

		details = append(details, &domain.ProfitabilityErrorDetail{
			ASIN:      record.ASIN,
			Sales:     record.Sales,
			Ads:       record.Ads,
			AmzFee:    record.AmzFee,
			NetProfit: utils.RoundWithTwoDecimalPlace(netProfit),
			Margin:    utils.RoundWithTwoDecimalPlace(margin),
			Reason:    reason,
		})
	}

	return details
}
