package analyzing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
)

func TestSummarizeSponsoredAds(t *testing.T) {
	service := newTestService()

	t.Run("soma campanhas tratando valores ausentes como zero", func(t *testing.T) {
		// Payload no formato real: valores numéricos podem vir como string ou null
		payload := `[
			{"asin":"B001","spend":10,"salesIn30Days":"20","purchasedIn30Days":2},
			{"asin":"B002","spend":5,"salesIn30Days":null,"purchasedIn30Days":3}
		]`

		var entries []domain.SponsoredAdEntry
		require.NoError(t, json.Unmarshal([]byte(payload), &entries))

		summary := service.SummarizeSponsoredAds(entries)

		assert.Equal(t, 15.0, summary.TotalCost)
		assert.Equal(t, 20.0, summary.TotalSalesIn30Days)
		assert.Equal(t, 5, summary.TotalProductsPurchased)
	})

	t.Run("entrada vazia retorna resumo zerado", func(t *testing.T) {
		summary := service.SummarizeSponsoredAds(nil)

		assert.Equal(t, 0.0, summary.TotalCost)
		assert.Equal(t, 0.0, summary.TotalSalesIn30Days)
		assert.Equal(t, 0, summary.TotalProductsPurchased)
	})
}

func TestMatchNegativeKeywords(t *testing.T) {
	service := newTestService()

	tests := []struct {
		name        string
		negatives   []domain.NegativeKeyword
		performance []domain.KeywordPerformanceEntry
		validate    func(t *testing.T, metrics []*domain.NegativeKeywordMetric)
	}{
		{
			name: "fórmula do ACOS com custo e venda",
			negatives: []domain.NegativeKeyword{
				{KeywordText: "capa celular", CampaignID: "C1"},
			},
			performance: []domain.KeywordPerformanceEntry{
				{Keyword: "capa celular", CampaignID: "C1", CampaignName: "Capas", Cost: 50, AttributedSales30d: 200},
			},
			validate: func(t *testing.T, metrics []*domain.NegativeKeywordMetric) {
				require.Len(t, metrics, 1)
				assert.Equal(t, 25.0, metrics[0].ACOS)
				assert.Equal(t, 50.0, metrics[0].Spend)
				assert.Equal(t, 200.0, metrics[0].Sales)
				assert.Equal(t, "Capas", metrics[0].CampaignName)
			},
		},
		{
			name: "ACOS é zero quando não há venda atribuída",
			negatives: []domain.NegativeKeyword{
				{KeywordText: "capa celular", CampaignID: "C1"},
			},
			performance: []domain.KeywordPerformanceEntry{
				{Keyword: "capa celular", CampaignID: "C1", Cost: 50, AttributedSales30d: 0},
			},
			validate: func(t *testing.T, metrics []*domain.NegativeKeywordMetric) {
				require.Len(t, metrics, 1)
				assert.Equal(t, 0.0, metrics[0].ACOS)
			},
		},
		{
			name: "correspondência exata tem prioridade sobre texto e substring",
			negatives: []domain.NegativeKeyword{
				{KeywordText: "fone bluetooth", CampaignID: "C2"},
			},
			performance: []domain.KeywordPerformanceEntry{
				{Keyword: "fone bluetooth premium", CampaignID: "C9", CampaignName: "Substring"},
				{Keyword: "fone bluetooth", CampaignID: "C9", CampaignName: "SoTexto"},
				{Keyword: "Fone Bluetooth", CampaignID: "C2", CampaignName: "Exata"},
			},
			validate: func(t *testing.T, metrics []*domain.NegativeKeywordMetric) {
				require.Len(t, metrics, 1)
				assert.Equal(t, "Exata", metrics[0].CampaignName)
			},
		},
		{
			name: "sem correspondência exata cai para texto e depois substring",
			negatives: []domain.NegativeKeyword{
				{KeywordText: "fone bluetooth", CampaignID: "C2"},
				{KeywordText: "carregador", CampaignID: "C3"},
			},
			performance: []domain.KeywordPerformanceEntry{
				{Keyword: "fone bluetooth", CampaignID: "C9", CampaignName: "SoTexto"},
				{Keyword: "carregador turbo usb", CampaignID: "C9", CampaignName: "Substring"},
			},
			validate: func(t *testing.T, metrics []*domain.NegativeKeywordMetric) {
				require.Len(t, metrics, 2)
				assert.Equal(t, "SoTexto", metrics[0].CampaignName)
				assert.Equal(t, "Substring", metrics[1].CampaignName)
			},
		},
		{
			name: "keyword sem correspondência gera registro zerado com sentinel",
			negatives: []domain.NegativeKeyword{
				{KeywordText: "inexistente", CampaignID: "C1"},
			},
			performance: []domain.KeywordPerformanceEntry{
				{Keyword: "outra coisa", CampaignID: "C1"},
			},
			validate: func(t *testing.T, metrics []*domain.NegativeKeywordMetric) {
				require.Len(t, metrics, 1)
				assert.Equal(t, NoCampaignFound, metrics[0].CampaignName)
				assert.Equal(t, "inexistente", metrics[0].Keyword)
				assert.Equal(t, 0.0, metrics[0].Spend)
				assert.Equal(t, 0.0, metrics[0].Sales)
				assert.Equal(t, 0.0, metrics[0].ACOS)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := service.MatchNegativeKeywords(tt.negatives, tt.performance)

			// O resultado sempre tem o tamanho da entrada
			assert.Len(t, metrics, len(tt.negatives))
			tt.validate(t, metrics)
		})
	}
}

func TestClassifySponsoredAds(t *testing.T) {
	service := newTestService()

	tests := []struct {
		name     string
		entries  []domain.SponsoredAdEntry
		keywords []*domain.NegativeKeywordMetric
		validate func(t *testing.T, details []*domain.SponsoredAdsErrorDetail)
	}{
		{
			name: "campanha com ACOS acima de 50% é sinalizada",
			entries: []domain.SponsoredAdEntry{
				{ASIN: "B001", CampaignName: "Cara", Spend: 60, SalesIn30Days: 100},
			},
			validate: func(t *testing.T, details []*domain.SponsoredAdsErrorDetail) {
				require.Len(t, details, 1)
				assert.Equal(t, domain.SponsoredAdsErrorCampaign, details[0].Type)
				assert.Equal(t, adsReasonHighACOS, details[0].Reason)
				assert.Equal(t, 60.0, details[0].ACOS)
			},
		},
		{
			name: "campanha com gasto sem venda é sinalizada",
			entries: []domain.SponsoredAdEntry{
				{ASIN: "B001", Spend: 6, SalesIn30Days: 0},
			},
			validate: func(t *testing.T, details []*domain.SponsoredAdsErrorDetail) {
				require.Len(t, details, 1)
				assert.Equal(t, adsReasonSpendNoSales, details[0].Reason)
			},
		},
		{
			name: "campanha com gasto alto e ACOS acima de 30% é sinalizada",
			entries: []domain.SponsoredAdEntry{
				{ASIN: "B001", Spend: 12, SalesIn30Days: 30}, // ACOS 40%
			},
			validate: func(t *testing.T, details []*domain.SponsoredAdsErrorDetail) {
				require.Len(t, details, 1)
				assert.Equal(t, adsReasonHighACOS, details[0].Reason)
			},
		},
		{
			name: "campanha saudável não é sinalizada",
			entries: []domain.SponsoredAdEntry{
				{ASIN: "B001", Spend: 10, SalesIn30Days: 100}, // ACOS 10%
			},
			validate: func(t *testing.T, details []*domain.SponsoredAdsErrorDetail) {
				assert.Empty(t, details)
			},
		},
		{
			name: "keyword negativada com ACOS acima de 100% é sinalizada",
			keywords: []*domain.NegativeKeywordMetric{
				{Keyword: "cara", CampaignName: "Capas", Spend: 30, Sales: 20, ACOS: 150},
			},
			validate: func(t *testing.T, details []*domain.SponsoredAdsErrorDetail) {
				require.Len(t, details, 1)
				assert.Equal(t, domain.SponsoredAdsErrorNegativeKeyword, details[0].Type)
				assert.Equal(t, adsReasonHighACOS, details[0].Reason)
			},
		},
		{
			name: "keyword negativada com gasto sem venda é sinalizada",
			keywords: []*domain.NegativeKeywordMetric{
				{Keyword: "desperdicio", CampaignName: "Capas", Spend: 8, Sales: 0},
			},
			validate: func(t *testing.T, details []*domain.SponsoredAdsErrorDetail) {
				require.Len(t, details, 1)
				assert.Equal(t, adsReasonSpendNoSales, details[0].Reason)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, service.ClassifySponsoredAds(tt.entries, tt.keywords))
		})
	}
}
