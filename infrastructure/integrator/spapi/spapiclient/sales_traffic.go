package spapiclient

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	spapidomain "github.com/vfg2006/seller-analytics-api/infrastructure/integrator/spapi/domain"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
)

// GetSalesByASIN busca o relatório de vendas e tráfego por ASIN no período
func (c *SPAPIClient) GetSalesByASIN(secretName string, filters *domain.AnalysisFilters) ([]spapidomain.SalesByASINRow, error) {
	query := url.Values{}
	query.Set("marketplaceIds", c.cfg.Amazon.Marketplace)
	query.Set("granularity", "PARENT")
	if filters != nil && filters.StartDate != nil {
		query.Set("dataStartTime", filters.StartDate.Format(time.DateOnly))
	}
	if filters != nil && filters.EndDate != nil {
		query.Set("dataEndTime", filters.EndDate.Format(time.DateOnly))
	}

	body, err := c.doRequest(secretName, http.MethodGet, "/sales/v1/analytics/salesAndTraffic", query)
	if err != nil {
		return nil, err
	}

	var response struct {
		SalesAndTrafficByAsin []spapidomain.SalesByASINRow `json:"salesAndTrafficByAsin"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "spapi: erro ao decodificar a resposta de vendas")
	}

	return response.SalesAndTrafficByAsin, nil
}
