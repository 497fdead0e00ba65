package spapiclient

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	spapidomain "github.com/vfg2006/seller-analytics-api/infrastructure/integrator/spapi/domain"
)

// GetListings busca o catálogo de produtos do vendedor no marketplace
// configurado, paginando até o fim.
func (c *SPAPIClient) GetListings(secretName string) ([]spapidomain.ListingItem, error) {
	items := make([]spapidomain.ListingItem, 0)
	nextToken := ""

	for {
		query := url.Values{}
		query.Set("marketplaceIds", c.cfg.Amazon.Marketplace)
		query.Set("pageSize", "100")
		if nextToken != "" {
			query.Set("pageToken", nextToken)
		}

		body, err := c.doRequest(secretName, http.MethodGet, "/listings/2021-08-01/items", query)
		if err != nil {
			return nil, err
		}

		var page struct {
			Items      []spapidomain.ListingItem `json:"items"`
			Pagination struct {
				NextToken string `json:"nextToken"`
			} `json:"pagination"`
		}
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, errors.Wrap(err, "spapi: erro ao decodificar a resposta de listings")
		}

		items = append(items, page.Items...)

		nextToken = page.Pagination.NextToken
		if nextToken == "" {
			break
		}
	}

	return items, nil
}
