package analyzing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
	"github.com/vfg2006/seller-analytics-api/pkg/log"
)

func newTestService() *Service {
	log.SetupTestLogger()
	return NewService(log.L)
}

func TestAggregateProfitability(t *testing.T) {
	service := newTestService()

	tests := []struct {
		name     string
		data     *domain.AccountData
		validate func(t *testing.T, records []*domain.ProfitabilityRecord)
	}{
		{
			name: "ASINs de todos os feeds geram exatamente um registro cada",
			data: &domain.AccountData{
				SalesByProducts: []domain.ProductSale{
					{ASIN: "B001", Quantity: 10, Amount: 200},
					{ASIN: "B001", Quantity: 5, Amount: 100},
				},
				ProductWiseSponsoredAds: []domain.SponsoredAdEntry{
					{ASIN: "B001", Spend: 30},
					{ASIN: "B002", Spend: 12},
				},
				FBAFees: []domain.FBAFeeEntry{
					{ASIN: "B003", Fees: json.RawMessage(`7.5`)},
				},
			},
			validate: func(t *testing.T, records []*domain.ProfitabilityRecord) {
				require.Len(t, records, 3)

				// A ordem segue a primeira aparição de cada ASIN
				assert.Equal(t, "B001", records[0].ASIN)
				assert.Equal(t, 15, records[0].Quantity)
				assert.Equal(t, 300.0, records[0].Sales)
				assert.Equal(t, 30.0, records[0].Ads)

				assert.Equal(t, "B002", records[1].ASIN)
				assert.Equal(t, 12.0, records[1].Ads)
				assert.Equal(t, 0.0, records[1].Sales)

				assert.Equal(t, "B003", records[2].ASIN)
				assert.Equal(t, 7.5, records[2].AmzFee)
			},
		},
		{
			name: "cenário básico sem feed de taxas",
			data: &domain.AccountData{
				SalesByProducts: []domain.ProductSale{
					{ASIN: "B001", Quantity: 10, Amount: 200},
				},
				ProductWiseSponsoredAds: []domain.SponsoredAdEntry{
					{ASIN: "B001", Spend: 30},
				},
			},
			validate: func(t *testing.T, records []*domain.ProfitabilityRecord) {
				require.Len(t, records, 1)
				assert.Equal(t, &domain.ProfitabilityRecord{
					ASIN:     "B001",
					Quantity: 10,
					Sales:    200,
					Ads:      30,
					AmzFee:   0,
				}, records[0])
				assert.Equal(t, 170.0, records[0].NetProfit())
			},
		},
		{
			name: "taxas ausentes ou inconvertíveis contribuem zero",
			data: &domain.AccountData{
				SalesByProducts: []domain.ProductSale{
					{ASIN: "B001", Quantity: 1, Amount: 50},
				},
				FBAFees: []domain.FBAFeeEntry{
					{ASIN: "B001", Fees: json.RawMessage(`null`)},
					{ASIN: "B001", Fees: json.RawMessage(`"abc"`)},
					{ASIN: "B001"},
					{Fees: json.RawMessage(`99`)}, // sem ASIN, ignorada
				},
			},
			validate: func(t *testing.T, records []*domain.ProfitabilityRecord) {
				require.Len(t, records, 1)
				assert.Equal(t, 0.0, records[0].AmzFee)
			},
		},
		{
			name: "taxa como string numérica e como objeto com amount",
			data: &domain.AccountData{
				FBAFees: []domain.FBAFeeEntry{
					{ASIN: "B001", Fees: json.RawMessage(`"2.5"`)},
					{ASIN: "B001", Fees: json.RawMessage(`{"amount":4}`)},
				},
			},
			validate: func(t *testing.T, records []*domain.ProfitabilityRecord) {
				require.Len(t, records, 1)
				assert.Equal(t, 6.5, records[0].AmzFee)
			},
		},
		{
			name: "feed legado de FBA soma totalFba e totalAmzFee",
			data: &domain.AccountData{
				ProductWiseFBAData: []domain.FBAProductData{
					{ASIN: "B001", TotalFBA: 3, TotalAmzFee: 2},
				},
			},
			validate: func(t *testing.T, records []*domain.ProfitabilityRecord) {
				require.Len(t, records, 1)
				assert.Equal(t, 5.0, records[0].AmzFee)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, service.AggregateProfitability(tt.data))
		})
	}
}

func TestClassifyProfitability(t *testing.T) {
	service := newTestService()

	tests := []struct {
		name     string
		records  []*domain.ProfitabilityRecord
		validate func(t *testing.T, details []*domain.ProfitabilityErrorDetail)
	}{
		{
			name: "margem saudável não é sinalizada",
			records: []*domain.ProfitabilityRecord{
				{ASIN: "B001", Sales: 200, Ads: 30}, // margem 85%
			},
			validate: func(t *testing.T, details []*domain.ProfitabilityErrorDetail) {
				assert.Empty(t, details)
			},
		},
		{
			name: "prejuízo é sinalizado como lucro líquido negativo",
			records: []*domain.ProfitabilityRecord{
				{ASIN: "B001", Sales: 100, Ads: 90, AmzFee: 20},
			},
			validate: func(t *testing.T, details []*domain.ProfitabilityErrorDetail) {
				require.Len(t, details, 1)
				assert.Equal(t, profitReasonNegative, details[0].Reason)
				assert.Equal(t, -10.0, details[0].NetProfit)
				assert.Equal(t, -10.0, details[0].Margin)
			},
		},
		{
			name: "margem abaixo de 10% é sinalizada",
			records: []*domain.ProfitabilityRecord{
				{ASIN: "B001", Sales: 100, Ads: 95},
			},
			validate: func(t *testing.T, details []*domain.ProfitabilityErrorDetail) {
				require.Len(t, details, 1)
				assert.Equal(t, profitReasonLowMargin, details[0].Reason)
				assert.Equal(t, 5.0, details[0].Margin)
			},
		},
		{
			name: "produto sem venda tem margem zero e é sinalizado",
			records: []*domain.ProfitabilityRecord{
				{ASIN: "B001", Sales: 0, Ads: 0, AmzFee: 0},
			},
			validate: func(t *testing.T, details []*domain.ProfitabilityErrorDetail) {
				require.Len(t, details, 1)
				assert.Equal(t, 0.0, details[0].Margin)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, service.ClassifyProfitability(tt.records))
		})
	}
}
