package adsclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/seller-analytics-api/infrastructure/integrator/lwa"
	adsdomain "github.com/vfg2006/seller-analytics-api/infrastructure/integrator/amazonads/domain"
	"github.com/vfg2006/seller-analytics-api/internal/config"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
)

type Client interface {
	GetCampaignReport(secretName string, filters *domain.AnalysisFilters) ([]adsdomain.CampaignReportRow, error)
	GetKeywordReport(secretName string, filters *domain.AnalysisFilters) ([]adsdomain.KeywordReportRow, error)
	GetNegativeKeywords(secretName string) ([]adsdomain.NegativeKeywordRow, error)
}

type AdsClient struct {
	cfg          *config.Config
	httpClient   *http.Client
	TokenManager *lwa.TokenManager
}

func NewClient(cfg *config.Config, tokenManager *lwa.TokenManager) Client {
	return &AdsClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		TokenManager: tokenManager,
	}
}

// doRequest executa uma chamada autenticada à Ads API. Em caso de 401 o
// token em cache é invalidado e a chamada é repetida uma vez.
func (c *AdsClient) doRequest(secretName, method, endpointPath string, payload any) ([]byte, error) {
	body, status, err := c.attempt(secretName, method, endpointPath, payload)
	if err != nil {
		return nil, err
	}

	if status == http.StatusUnauthorized {
		c.TokenManager.Invalidate(secretName)
		body, status, err = c.attempt(secretName, method, endpointPath, payload)
		if err != nil {
			return nil, err
		}
	}

	if status != http.StatusOK {
		var apiErr struct {
			Code    string `json:"code"`
			Details string `json:"details"`
		}
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Details != "" {
			return nil, fmt.Errorf("amazonads: %s %s falhou: %s (%s)", method, endpointPath, apiErr.Details, apiErr.Code)
		}
		return nil, fmt.Errorf("amazonads: %s %s falhou com status %d", method, endpointPath, status)
	}

	return body, nil
}

func (c *AdsClient) attempt(secretName, method, endpointPath string, payload any) ([]byte, int, error) {
	accessToken, err := c.TokenManager.AccessTokenFor(secretName)
	if err != nil {
		return nil, 0, err
	}

	endpoint, err := url.Parse(c.cfg.Amazon.AdsAPIURL)
	if err != nil {
		return nil, 0, errors.Wrap(err, "amazonads: erro ao analisar a URL base")
	}
	endpoint.Path = endpointPath

	var requestBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, errors.Wrap(err, "amazonads: erro ao codificar o corpo da requisição")
		}
		requestBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, endpoint.String(), requestBody)
	if err != nil {
		return nil, 0, errors.Wrap(err, "amazonads: erro ao criar a requisição")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Amazon-Advertising-API-ClientId", c.cfg.Amazon.LWAClientID)
	req.Header.Set("Amazon-Advertising-API-Scope", c.cfg.Amazon.AdsProfileID)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, errors.Wrap(err, "amazonads: erro ao executar a requisição")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, errors.Wrap(err, "amazonads: erro ao ler a resposta")
	}

	return body, resp.StatusCode, nil
}
