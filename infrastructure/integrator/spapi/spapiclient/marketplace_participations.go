package spapiclient

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	spapidomain "github.com/vfg2006/seller-analytics-api/infrastructure/integrator/spapi/domain"
)

// GetMarketplaceParticipations lista os marketplaces em que o vendedor
// participa. Usado na sincronização de contas.
func (c *SPAPIClient) GetMarketplaceParticipations(secretName string) ([]spapidomain.MarketplaceParticipation, error) {
	body, err := c.doRequest(secretName, http.MethodGet, "/sellers/v1/marketplaceParticipations", nil)
	if err != nil {
		return nil, err
	}

	var response struct {
		Payload []spapidomain.MarketplaceParticipation `json:"payload"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "spapi: erro ao decodificar as participações de marketplace")
	}

	return response.Payload, nil
}
