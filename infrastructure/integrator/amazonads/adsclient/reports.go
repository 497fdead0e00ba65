package adsclient

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
	adsdomain "github.com/vfg2006/seller-analytics-api/infrastructure/integrator/amazonads/domain"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
)

type reportRequest struct {
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	Metrics   []string `json:"metrics"`
}

func reportPeriod(filters *domain.AnalysisFilters) (string, string) {
	end := time.Now()
	start := end.AddDate(0, 0, -30)

	if filters != nil && filters.StartDate != nil {
		start = *filters.StartDate
	}
	if filters != nil && filters.EndDate != nil {
		end = *filters.EndDate
	}

	return start.Format("20060102"), end.Format("20060102")
}

// GetCampaignReport busca o relatório de produtos anunciados no período
func (c *AdsClient) GetCampaignReport(secretName string, filters *domain.AnalysisFilters) ([]adsdomain.CampaignReportRow, error) {
	startDate, endDate := reportPeriod(filters)

	payload := reportRequest{
		StartDate: startDate,
		EndDate:   endDate,
		Metrics:   []string{"asin", "campaignId", "campaignName", "cost", "sales30d", "purchases30d", "clicks", "impressions"},
	}

	body, err := c.doRequest(secretName, http.MethodPost, "/reporting/reports/productAds", payload)
	if err != nil {
		return nil, err
	}

	var rows []adsdomain.CampaignReportRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, errors.Wrap(err, "amazonads: erro ao decodificar o relatório de campanhas")
	}

	return rows, nil
}

// GetKeywordReport busca o relatório de performance de keywords no período
func (c *AdsClient) GetKeywordReport(secretName string, filters *domain.AnalysisFilters) ([]adsdomain.KeywordReportRow, error) {
	startDate, endDate := reportPeriod(filters)

	payload := reportRequest{
		StartDate: startDate,
		EndDate:   endDate,
		Metrics:   []string{"keywordText", "campaignId", "campaignName", "matchType", "cost", "sales30d", "clicks", "impressions"},
	}

	body, err := c.doRequest(secretName, http.MethodPost, "/reporting/reports/keywords", payload)
	if err != nil {
		return nil, err
	}

	var rows []adsdomain.KeywordReportRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, errors.Wrap(err, "amazonads: erro ao decodificar o relatório de keywords")
	}

	return rows, nil
}

// GetNegativeKeywords lista as keywords negativadas da conta
func (c *AdsClient) GetNegativeKeywords(secretName string) ([]adsdomain.NegativeKeywordRow, error) {
	body, err := c.doRequest(secretName, http.MethodGet, "/v2/sp/negativeKeywords", nil)
	if err != nil {
		return nil, err
	}

	var rows []adsdomain.NegativeKeywordRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, errors.Wrap(err, "amazonads: erro ao decodificar as keywords negativadas")
	}

	return rows, nil
}
