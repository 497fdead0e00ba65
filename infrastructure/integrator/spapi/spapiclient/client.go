package spapiclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/seller-analytics-api/infrastructure/integrator/lwa"
	spapidomain "github.com/vfg2006/seller-analytics-api/infrastructure/integrator/spapi/domain"
	"github.com/vfg2006/seller-analytics-api/internal/config"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
)

type Client interface {
	GetListings(secretName string) ([]spapidomain.ListingItem, error)
	GetSalesByASIN(secretName string, filters *domain.AnalysisFilters) ([]spapidomain.SalesByASINRow, error)
	GetFeeEstimates(secretName string, asins []string) ([]spapidomain.FeeEstimate, error)
	GetFinanceSummary(secretName string, filters *domain.AnalysisFilters) (*spapidomain.FinanceSummary, error)
	GetMarketplaceParticipations(secretName string) ([]spapidomain.MarketplaceParticipation, error)
}

type SPAPIClient struct {
	cfg          *config.Config
	httpClient   *http.Client
	TokenManager *lwa.TokenManager
}

func NewClient(cfg *config.Config, tokenManager *lwa.TokenManager) Client {
	return &SPAPIClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		TokenManager: tokenManager,
	}
}

// doRequest executa uma chamada autenticada ao SP-API. Em caso de 401 o
// token em cache é invalidado e a chamada é repetida uma vez.
func (c *SPAPIClient) doRequest(secretName, method, endpointPath string, query url.Values) ([]byte, error) {
	body, status, err := c.attempt(secretName, method, endpointPath, query)
	if err != nil {
		return nil, err
	}

	if status == http.StatusUnauthorized {
		c.TokenManager.Invalidate(secretName)
		body, status, err = c.attempt(secretName, method, endpointPath, query)
		if err != nil {
			return nil, err
		}
	}

	if status != http.StatusOK {
		var apiErr struct {
			Errors []struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"errors"`
		}
		if err := json.Unmarshal(body, &apiErr); err == nil && len(apiErr.Errors) > 0 {
			return nil, fmt.Errorf("spapi: %s %s falhou: %s (%s)", method, endpointPath, apiErr.Errors[0].Message, apiErr.Errors[0].Code)
		}
		return nil, fmt.Errorf("spapi: %s %s falhou com status %d", method, endpointPath, status)
	}

	return body, nil
}

func (c *SPAPIClient) attempt(secretName, method, endpointPath string, query url.Values) ([]byte, int, error) {
	accessToken, err := c.TokenManager.AccessTokenFor(secretName)
	if err != nil {
		return nil, 0, err
	}

	endpoint, err := url.Parse(c.cfg.Amazon.SPAPIURL)
	if err != nil {
		return nil, 0, errors.Wrap(err, "spapi: erro ao analisar a URL base")
	}
	endpoint.Path = endpointPath
	if query != nil {
		endpoint.RawQuery = query.Encode()
	}

	req, err := http.NewRequest(method, endpoint.String(), nil)
	if err != nil {
		return nil, 0, errors.Wrap(err, "spapi: erro ao criar a requisição")
	}
	req.Header.Set("x-amz-access-token", accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, errors.Wrap(err, "spapi: erro ao executar a requisição")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, errors.Wrap(err, "spapi: erro ao ler a resposta")
	}

	return body, resp.StatusCode, nil
}
