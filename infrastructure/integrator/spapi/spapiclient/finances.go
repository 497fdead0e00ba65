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

// GetFinanceSummary busca os eventos financeiros do período. O corpo é
// repassado bruto ao dashboard; somente o total de reembolsos é extraído
// para o campo de ressarcimento.
func (c *SPAPIClient) GetFinanceSummary(secretName string, filters *domain.AnalysisFilters) (*spapidomain.FinanceSummary, error) {
	query := url.Values{}
	if filters != nil && filters.StartDate != nil {
		query.Set("PostedAfter", filters.StartDate.Format(time.RFC3339))
	}
	if filters != nil && filters.EndDate != nil {
		query.Set("PostedBefore", filters.EndDate.Format(time.RFC3339))
	}

	body, err := c.doRequest(secretName, http.MethodGet, "/finances/v0/financialEvents", query)
	if err != nil {
		return nil, err
	}

	var response struct {
		Payload struct {
			FinancialEvents struct {
				RefundEventList []struct {
					ShipmentItemAdjustmentList []struct {
						ItemChargeAdjustmentList []struct {
							ChargeAmount struct {
								CurrencyAmount float64 `json:"CurrencyAmount"`
							} `json:"ChargeAmount"`
						} `json:"ItemChargeAdjustmentList"`
					} `json:"ShipmentItemAdjustmentList"`
				} `json:"RefundEventList"`
			} `json:"FinancialEvents"`
		} `json:"payload"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "spapi: erro ao decodificar os eventos financeiros")
	}

	summary := &spapidomain.FinanceSummary{Raw: body}
	for _, refund := range response.Payload.FinancialEvents.RefundEventList {
		for _, adjustment := range refund.ShipmentItemAdjustmentList {
			for _, charge := range adjustment.ItemChargeAdjustmentList {
				summary.ReimbursementTotal += charge.ChargeAmount.CurrencyAmount
			}
		}
	}

	return summary, nil
}
