package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
)

func rankingEntry(asin string, totalErrors int) domain.RankingResult {
	return domain.RankingResult{
		ASIN: asin,
		Data: &domain.RankingCheckData{Title: "Produto " + asin, TotalErrors: totalErrors},
	}
}

func TestComposeDashboard_PayloadInvalido(t *testing.T) {
	service := newTestService()

	tests := []struct {
		name     string
		data     *domain.AccountData
		expected error
	}{
		{
			name:     "payload nulo",
			data:     nil,
			expected: ErrInvalidPayload,
		},
		{
			name:     "payload sem dados de ranking",
			data:     &domain.AccountData{ConversionData: &domain.ConversionData{}},
			expected: ErrMissingRankings,
		},
		{
			name:     "payload sem dados de conversão",
			data:     &domain.AccountData{RankingsData: &domain.RankingsData{}},
			expected: ErrMissingConversion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.ComposeDashboard(tt.data)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.expected)

			var analysisErr *AnalysisError
			assert.ErrorAs(t, err, &analysisErr)
			assert.NotEmpty(t, analysisErr.Code)
		})
	}
}

func TestComposeDashboard_DedupEOrdenacao(t *testing.T) {
	service := newTestService()

	data := &domain.AccountData{
		RankingsData: &domain.RankingsData{
			RankingResultArray: []domain.RankingResult{
				rankingEntry("B001", 2),
				rankingEntry("B001", 9), // duplicata, primeira ocorrência vence
				rankingEntry("B002", 5),
				rankingEntry("B003", 5), // empate com B002, ordem original preservada
				rankingEntry("B004", 1),
				rankingEntry("B005", 3),
			},
		},
		ConversionData: &domain.ConversionData{},
	}

	result, err := service.ComposeDashboard(data)
	require.NoError(t, err)

	dashboard := result.DashboardData
	require.Len(t, dashboard.ProductWiseError, 5)

	// Top 4 em ordem decrescente de erros, empate mantém ordem de entrada
	assert.Equal(t, "B002", dashboard.First.ASIN)
	assert.Equal(t, "B003", dashboard.Second.ASIN)
	assert.Equal(t, "B005", dashboard.Third.ASIN)
	assert.Equal(t, "B001", dashboard.Fourth.ASIN)
	assert.Equal(t, 2, dashboard.Fourth.Errors)

	// A duplicata não entra no total de erros de ranking
	assert.Equal(t, 16, dashboard.TotalRankingErrors)
}

func TestComposeDashboard_TopQuatroComMenosDeQuatroProdutos(t *testing.T) {
	service := newTestService()

	data := &domain.AccountData{
		RankingsData: &domain.RankingsData{
			RankingResultArray: []domain.RankingResult{
				rankingEntry("B001", 3),
				rankingEntry("B002", 1),
			},
		},
		ConversionData: &domain.ConversionData{},
	}

	result, err := service.ComposeDashboard(data)
	require.NoError(t, err)

	dashboard := result.DashboardData
	assert.Equal(t, "B001", dashboard.First.ASIN)
	assert.Equal(t, "B002", dashboard.Second.ASIN)
	assert.Nil(t, dashboard.Third)
	assert.Nil(t, dashboard.Fourth)
}

func TestComposeDashboard_Idempotencia(t *testing.T) {
	service := newTestService()

	data := &domain.AccountData{
		TotalProducts: []domain.CatalogProduct{
			{ASIN: "B001", Status: "Active", SKU: "SKU1", Price: 20, Title: "Produto B001"},
		},
		SalesByProducts: []domain.ProductSale{
			{ASIN: "B001", Quantity: 3, Amount: 60},
		},
		RankingsData: &domain.RankingsData{
			RankingResultArray: []domain.RankingResult{
				rankingEntry("B001", 2),
			},
			BackendKeywordResultArray: []domain.BackendKeywordResult{
				{ASIN: "B001", Data: &domain.BackendKeywordData{NumberOfErrors: 1}},
			},
		},
		ConversionData: &domain.ConversionData{
			ImageResult: []domain.ConversionCheck{{ASIN: "B001", Status: "Error"}},
		},
	}

	firstRun, err := service.ComposeDashboard(data)
	require.NoError(t, err)

	secondRun, err := service.ComposeDashboard(data)
	require.NoError(t, err)

	assert.Equal(t, firstRun, secondRun)
}

func TestComposeDashboard_ErrosDeConversao(t *testing.T) {
	service := newTestService()

	t.Run("produto sem erro de conversão recebe objeto vazio", func(t *testing.T) {
		data := &domain.AccountData{
			RankingsData: &domain.RankingsData{
				RankingResultArray: []domain.RankingResult{
					rankingEntry("B002", 2),
				},
			},
			ConversionData: &domain.ConversionData{},
		}

		result, err := service.ComposeDashboard(data)
		require.NoError(t, err)

		dashboard := result.DashboardData
		require.Len(t, dashboard.ProductWiseError, 1)

		record := dashboard.ProductWiseError[0]
		assert.Equal(t, 2, record.Errors)
		require.NotNil(t, record.ConversionErrors)
		assert.Equal(t, "B002", record.ConversionErrors.ASIN)
		assert.Equal(t, 0, record.ConversionErrors.Count())
		assert.Empty(t, dashboard.ConversionProductWiseErrors)
	})

	t.Run("entradas repetidas de um mesmo ASIN contam individualmente no total", func(t *testing.T) {
		data := &domain.AccountData{
			RankingsData: &domain.RankingsData{
				RankingResultArray: []domain.RankingResult{
					rankingEntry("B001", 0),
				},
			},
			ConversionData: &domain.ConversionData{
				ImageResult: []domain.ConversionCheck{
					{ASIN: "B001", Status: "Error"},
					{ASIN: "B001", Status: "Error"},
				},
			},
		}

		result, err := service.ComposeDashboard(data)
		require.NoError(t, err)

		dashboard := result.DashboardData
		assert.Equal(t, 2, dashboard.TotalErrorInConversion)

		// O objeto mesclado do produto guarda apenas a primeira ocorrência
		record := dashboard.ProductWiseError[0]
		assert.Equal(t, 1, record.ConversionErrors.Count())
	})

	t.Run("categorias reprovadas entram no objeto mesclado e no total", func(t *testing.T) {
		data := &domain.AccountData{
			RankingsData: &domain.RankingsData{
				RankingResultArray: []domain.RankingResult{
					rankingEntry("B001", 1),
				},
			},
			ConversionData: &domain.ConversionData{
				ImageResult: []domain.ConversionCheck{
					{ASIN: "B001", Status: "Error"},
					{ASIN: "B009", Status: "Ok"}, // aprovada, não conta
				},
				VideoResult: []domain.ConversionCheck{
					{ASIN: "B001", Status: "Error"},
				},
				ProductWithOutBuybox: []domain.BuyboxProduct{
					{ASIN: "B001", Title: "Produto B001"},
				},
			},
		}

		result, err := service.ComposeDashboard(data)
		require.NoError(t, err)

		dashboard := result.DashboardData
		assert.Equal(t, 3, dashboard.TotalErrorInConversion)
		assert.Equal(t, 4, dashboard.TotalErrorInAccount)
		assert.Equal(t, 1, dashboard.ProductsWithoutBuyboxError)

		record := dashboard.ProductWiseError[0]
		assert.Equal(t, 4, record.Errors) // 1 de ranking + 3 de conversão
		assert.NotNil(t, record.ConversionErrors.Image)
		assert.NotNil(t, record.ConversionErrors.Video)
		assert.NotNil(t, record.ConversionErrors.Buybox)
		assert.Nil(t, record.ConversionErrors.APlus)

		require.Len(t, dashboard.ConversionProductWiseErrors, 1)
		assert.Equal(t, "B001", dashboard.ConversionProductWiseErrors[0].ASIN)
	})
}

func TestComposeDashboard_BackendKeywords(t *testing.T) {
	service := newTestService()

	t.Run("erros de backend acumulam no registro existente", func(t *testing.T) {
		charLim := domain.FlexFloat(249)
		data := &domain.AccountData{
			RankingsData: &domain.RankingsData{
				RankingResultArray: []domain.RankingResult{
					rankingEntry("B001", 2),
				},
				BackendKeywordResultArray: []domain.BackendKeywordResult{
					{ASIN: "B001", Data: &domain.BackendKeywordData{
						NumberOfErrors: 3,
						CharLim:        &charLim,
						DublicateWords: []string{"capa", "case"},
					}},
				},
			},
			ConversionData: &domain.ConversionData{},
		}

		result, err := service.ComposeDashboard(data)
		require.NoError(t, err)

		record := result.DashboardData.ProductWiseError[0]
		assert.Equal(t, 5, record.Errors)
		require.NotNil(t, record.RankingErrors)
		assert.Equal(t, &charLim, record.RankingErrors.CharLim)
		assert.Equal(t, []string{"capa", "case"}, record.RankingErrors.DublicateWords)
	})

	t.Run("detalhes aparecem na visão de ranking de produto sem erro de ranking", func(t *testing.T) {
		charLim := domain.FlexFloat(200)
		data := &domain.AccountData{
			RankingsData: &domain.RankingsData{
				RankingResultArray: []domain.RankingResult{
					rankingEntry("B001", 0),
				},
				BackendKeywordResultArray: []domain.BackendKeywordResult{
					{ASIN: "B001", Data: &domain.BackendKeywordData{
						NumberOfErrors: 2,
						CharLim:        &charLim,
						DublicateWords: []string{"capa"},
					}},
				},
			},
			ConversionData: &domain.ConversionData{},
		}

		result, err := service.ComposeDashboard(data)
		require.NoError(t, err)

		dashboard := result.DashboardData
		record := dashboard.ProductWiseError[0]
		require.NotNil(t, record.RankingErrors)
		assert.Equal(t, &charLim, record.RankingErrors.CharLim)

		// A visão de ranking compartilha a mesma estrutura do registro
		require.Len(t, dashboard.RankingProductWiseErrors, 1)
		view := dashboard.RankingProductWiseErrors[0]
		assert.Same(t, record.RankingErrors, view.Data)
		require.NotNil(t, view.Data.CharLim)
		assert.Equal(t, &charLim, view.Data.CharLim)
		assert.Equal(t, []string{"capa"}, view.Data.DublicateWords)
	})

	t.Run("entrada com um erro promove o produto no top quatro reordenado", func(t *testing.T) {
		data := &domain.AccountData{
			RankingsData: &domain.RankingsData{
				RankingResultArray: []domain.RankingResult{
					rankingEntry("B001", 3),
					rankingEntry("B002", 3),
				},
				BackendKeywordResultArray: []domain.BackendKeywordResult{
					{ASIN: "B002", Data: &domain.BackendKeywordData{NumberOfErrors: 1}},
				},
			},
			ConversionData: &domain.ConversionData{},
		}

		result, err := service.ComposeDashboard(data)
		require.NoError(t, err)

		dashboard := result.DashboardData

		// B002 recebe 1 na passada secundária e mais 1 na promoção,
		// ultrapassando B001 após a reordenação final
		assert.Equal(t, "B002", dashboard.First.ASIN)
		assert.Equal(t, 5, dashboard.First.Errors)
		assert.Equal(t, "B001", dashboard.Second.ASIN)
		assert.Equal(t, 3, dashboard.Second.Errors)
	})

	t.Run("backend de ASIN sem registro de ranking é ignorado", func(t *testing.T) {
		data := &domain.AccountData{
			RankingsData: &domain.RankingsData{
				RankingResultArray: []domain.RankingResult{
					rankingEntry("B001", 1),
				},
				BackendKeywordResultArray: []domain.BackendKeywordResult{
					{ASIN: "B999", Data: &domain.BackendKeywordData{NumberOfErrors: 2}},
				},
			},
			ConversionData: &domain.ConversionData{},
		}

		result, err := service.ComposeDashboard(data)
		require.NoError(t, err)
		require.Len(t, result.DashboardData.ProductWiseError, 1)
		assert.Equal(t, 1, result.DashboardData.ProductWiseError[0].Errors)
	})
}

func TestComposeDashboard_CamposAgregados(t *testing.T) {
	service := newTestService()

	data := &domain.AccountData{
		TotalProducts: []domain.CatalogProduct{
			{ASIN: "B001", Status: "Active", SKU: "SKU1", Price: 19.9, Title: "Capa de celular a prova de queda com protecao reforcada nas bordas"},
			{ASIN: "B002", Status: "Inactive"},
		},
		SalesByProducts: []domain.ProductSale{
			{ASIN: "B001", Quantity: 2, Amount: 39.8},
			{ASIN: "B002", Quantity: 1, Amount: 10.55},
		},
		ProductWiseSponsoredAds: []domain.SponsoredAdEntry{
			{ASIN: "B001", Spend: 5, SalesIn30Days: 50},
		},
		RankingsData: &domain.RankingsData{
			RankingResultArray: []domain.RankingResult{
				rankingEntry("B001", 1),
			},
		},
		ConversionData: &domain.ConversionData{
			AmazonReadyProducts: []domain.ConversionCheck{{ASIN: "B001"}},
		},
		AccountHealth:    &domain.AccountHealth{HealthPercentage: 87.5},
		ReplenishmentQty: 12,
		Reimbursement:    4.2,
		TotalSales:       1000,
		StartDate:        "2026-08-01",
		EndDate:          "2026-08-07",
		Keywords:         []string{"capa", "celular"},
	}

	result, err := service.ComposeDashboard(data)
	require.NoError(t, err)

	dashboard := result.DashboardData
	assert.Equal(t, 2, dashboard.TotalProduct)
	assert.Equal(t, 1, dashboard.ActiveProducts)
	assert.Equal(t, 50.35, dashboard.TotalWeeklySale)
	assert.Equal(t, 87.5, dashboard.AccountHealthPercentage)
	assert.Equal(t, domain.FlexFloat(12), dashboard.ReplenishmentQty)
	assert.Equal(t, domain.FlexFloat(4.2), dashboard.Reimbursement)
	assert.Equal(t, "2026-08-01", dashboard.StartDate)
	assert.Equal(t, []string{"capa", "celular"}, dashboard.Keywords)
	require.Len(t, dashboard.AmazonReadyProducts, 1)

	// Título vem do catálogo truncado em 50 caracteres
	require.NotNil(t, dashboard.First)
	assert.Len(t, dashboard.First.Name, 50)
	assert.Equal(t, "SKU1", dashboard.First.SKU)
	assert.Equal(t, 19.9, dashboard.First.Price)
	assert.Equal(t, 39.8, dashboard.First.Sales)
	assert.Equal(t, 2, dashboard.First.Quantity)

	// Dados do gráfico de sponsored ads por ASIN
	require.Len(t, dashboard.SponsoredAdsGraphData, 1)
	assert.Equal(t, 5.0, dashboard.SponsoredAdsGraphData[0].Spend)
	assert.Equal(t, 50.0, dashboard.SponsoredAdsGraphData[0].Sales)

	require.NotNil(t, dashboard.SponsoredAdsMetrics)
	assert.Equal(t, 5.0, dashboard.SponsoredAdsMetrics.TotalCost)
}
