package spapiclient

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	spapidomain "github.com/vfg2006/seller-analytics-api/infrastructure/integrator/spapi/domain"
)

// GetFeeEstimates busca a estimativa de tarifas FBA de cada ASIN. ASINs
// sem estimativa disponível são omitidos do resultado; a agregação trata
// a ausência como tarifa zero.
func (c *SPAPIClient) GetFeeEstimates(secretName string, asins []string) ([]spapidomain.FeeEstimate, error) {
	estimates := make([]spapidomain.FeeEstimate, 0, len(asins))

	for _, asin := range asins {
		endpointPath := fmt.Sprintf("/products/fees/v0/items/%s/feesEstimate", asin)

		body, err := c.doRequest(secretName, http.MethodGet, endpointPath, nil)
		if err != nil {
			continue
		}

		var response struct {
			Payload struct {
				FeesEstimateResult struct {
					FeesEstimate struct {
						TotalFeesEstimate struct {
							Amount       float64 `json:"amount"`
							CurrencyCode string  `json:"currencyCode"`
						} `json:"totalFeesEstimate"`
					} `json:"feesEstimate"`
				} `json:"feesEstimateResult"`
			} `json:"payload"`
		}
		if err := json.Unmarshal(body, &response); err != nil {
			return nil, errors.Wrap(err, "spapi: erro ao decodificar a estimativa de tarifas")
		}

		estimate := spapidomain.FeeEstimate{ASIN: asin}
		estimate.FeeTotal.Amount = response.Payload.FeesEstimateResult.FeesEstimate.TotalFeesEstimate.Amount
		estimate.FeeTotal.CurrencyCode = response.Payload.FeesEstimateResult.FeesEstimate.TotalFeesEstimate.CurrencyCode
		estimates = append(estimates, estimate)
	}

	return estimates, nil
}
