// Package lwa gerencia os tokens de acesso Login with Amazon usados pelo
// SP-API e pela Ads API. Cada conta de vendedor tem seu próprio refresh
// token, guardado nos secrets do serviço.
package lwa

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-analytics-api/internal/config"
)

// Margem de segurança antes da expiração reportada pela LWA
const expiryBuffer = 2 * time.Minute

type accessToken struct {
	value     string
	expiresAt time.Time
}

func (t *accessToken) valid() bool {
	return t != nil && t.value != "" && time.Now().Before(t.expiresAt.Add(-expiryBuffer))
}

// TokenManager troca refresh tokens por access tokens e os mantém em
// cache até próximo da expiração. Seguro para uso concorrente.
type TokenManager struct {
	cfg         *config.Config
	mutex       sync.Mutex
	tokens      map[string]*accessToken
	httpClient  *http.Client
	stopRefresh chan struct{}
}

func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		cfg:         cfg,
		tokens:      make(map[string]*accessToken),
		stopRefresh: make(chan struct{}),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// StartAutoRefresh inicia uma goroutine que renova antecipadamente os tokens
// já presentes no cache. Contas sem uso recente são renovadas sob demanda em
// AccessTokenFor.
func (tm *TokenManager) StartAutoRefresh() {
	// Access tokens LWA expiram em uma hora
	refreshInterval := 45 * time.Minute
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			tm.refreshCached()
		case <-tm.stopRefresh:
			logrus.Info("Encerrando goroutine de renovação periódica dos tokens LWA")
			return
		}
	}
}

// StopAutoRefresh para a goroutine de renovação automática
func (tm *TokenManager) StopAutoRefresh() {
	close(tm.stopRefresh)
}

func (tm *TokenManager) refreshCached() {
	tm.mutex.Lock()
	secretNames := make([]string, 0, len(tm.tokens))
	for secretName := range tm.tokens {
		secretNames = append(secretNames, secretName)
	}
	tm.mutex.Unlock()

	for _, secretName := range secretNames {
		tm.Invalidate(secretName)
		if _, err := tm.AccessTokenFor(secretName); err != nil {
			logrus.WithField("secret_name", secretName).
				Errorf("Erro na renovação periódica do token LWA: %v", err)
		}
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type tokenErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// AccessTokenFor retorna um access token válido para a conta informada,
// renovando-o quando necessário. O nome do secret identifica o refresh
// token da conta na configuração.
func (tm *TokenManager) AccessTokenFor(secretName string) (string, error) {
	tm.mutex.Lock()
	defer tm.mutex.Unlock()

	if token, ok := tm.tokens[secretName]; ok && token.valid() {
		return token.value, nil
	}

	refreshToken, ok := tm.cfg.AmazonTokensByAccount[secretName]
	if !ok || refreshToken == "" {
		return "", fmt.Errorf("lwa: refresh token não encontrado para o secret %q", secretName)
	}

	token, err := tm.exchange(refreshToken)
	if err != nil {
		return "", err
	}

	tm.tokens[secretName] = token

	logrus.WithField("secret_name", secretName).Debug("Access token LWA renovado")

	return token.value, nil
}

// CheckRefreshToken valida um refresh token trocando-o por um access
// token, sem guardar o resultado no cache. Usado na validação de conexão
// de novas contas.
func (tm *TokenManager) CheckRefreshToken(refreshToken string) error {
	_, err := tm.exchange(refreshToken)
	return err
}

// Invalidate descarta o token em cache da conta, forçando renovação na
// próxima chamada. Usado quando a API responde 401.
func (tm *TokenManager) Invalidate(secretName string) {
	tm.mutex.Lock()
	defer tm.mutex.Unlock()
	delete(tm.tokens, secretName)
}

func (tm *TokenManager) exchange(refreshToken string) (*accessToken, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)
	form.Set("client_id", tm.cfg.Amazon.LWAClientID)
	form.Set("client_secret", tm.cfg.Amazon.LWAClientSecret)

	req, err := http.NewRequest(http.MethodPost, tm.cfg.Amazon.LWATokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "lwa: erro ao criar a requisição de token")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := tm.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "lwa: erro ao executar a requisição de token")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "lwa: erro ao ler a resposta de token")
	}

	if resp.StatusCode != http.StatusOK {
		var tokenErr tokenErrorResponse
		if err := json.Unmarshal(body, &tokenErr); err == nil && tokenErr.Error != "" {
			return nil, fmt.Errorf("lwa: troca de token falhou: %s (%s)", tokenErr.Error, tokenErr.ErrorDescription)
		}
		return nil, fmt.Errorf("lwa: troca de token falhou com status %s", resp.Status)
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, errors.Wrap(err, "lwa: erro ao decodificar a resposta de token")
	}

	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("lwa: resposta de token sem access_token")
	}

	return &accessToken{
		value:     tokenResp.AccessToken,
		expiresAt: time.Now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second),
	}, nil
}
