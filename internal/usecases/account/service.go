package account

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-analytics-api/infrastructure/integrator/spapi"
	"github.com/vfg2006/seller-analytics-api/infrastructure/repository"
	"github.com/vfg2006/seller-analytics-api/internal/config"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
	"github.com/vfg2006/seller-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/seller-analytics-api/pkg/utils"
)

type AccountService interface {
	UpdateAccount(request *domain.UpdateSellerAccountRequest) (*domain.UpdateSellerAccountResponse, error)
	ListSellerAccounts(availableStatus []domain.SellerAccountStatus) ([]*domain.SellerAccountResponse, error)
	SyncAccounts() (*domain.SyncAccountsResponse, error)
}

type Service struct {
	accountRepository repository.AccountRepository
	spapiService      spapi.SPAPIIntegrator
	renderClient      *config.RenderClient
	cfg               *config.Config
}

func NewService(
	accountRepository repository.AccountRepository,
	spapiService spapi.SPAPIIntegrator,
	renderClient *config.RenderClient,
	cfg *config.Config,
) AccountService {
	return &Service{
		accountRepository: accountRepository,
		spapiService:      spapiService,
		renderClient:      renderClient,
		cfg:               cfg,
	}
}

func (s *Service) ListSellerAccounts(availableStatus []domain.SellerAccountStatus) ([]*domain.SellerAccountResponse, error) {
	accounts, err := s.accountRepository.ListAccounts(availableStatus)
	if err != nil {
		return nil, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao listar contas no banco de dados")
	}

	// Transforma os accounts para o formato de resposta da API
	accountsResponse := make([]*domain.SellerAccountResponse, 0, len(accounts))
	for _, account := range accounts {
		accountsResponse = append(accountsResponse, &domain.SellerAccountResponse{
			ID:          account.ID,
			SellerID:    account.SellerID,
			Name:        account.Name,
			Nickname:    account.Nickname,
			Marketplace: account.Marketplace,
			Country:     account.Country,
			Status:      account.Status,
			HasToken:    account.SecretName != nil,
		})
	}

	return accountsResponse, nil
}

func (s *Service) SyncAccounts() (*domain.SyncAccountsResponse, error) {
	response := &domain.SyncAccountsResponse{
		Quantity: 0,
		Message:  "Erro ao sincronizar contas",
		Error:    true,
	}

	existingAccounts, err := s.accountRepository.ListAccountsMap()
	if err != nil {
		logrus.WithField("error", err).Error("Error getting seller accounts from database")
		return response, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao consultar contas existentes no banco de dados")
	}

	accountsToCreate := make([]*domain.SellerAccount, 0)
	for secretName := range s.cfg.AmazonTokensByAccount {
		participations, err := s.spapiService.GetMarketplaceParticipations(secretName)
		if err != nil {
			logrus.Error("Error getting marketplace participations from SP-API:", err)
			return response, NewAccountError(ErrSPAPIIntegration, apiErrors.ErrExternalService, "Falha ao obter participações de marketplace do SP-API")
		}

		sellerID := sellerIDFromSecret(secretName)

		for _, participation := range participations {
			if !participation.Participation.IsParticipating {
				continue
			}

			compositeKey := fmt.Sprintf("%s:%s", participation.Marketplace.ID, sellerID)
			if _, exists := existingAccounts[compositeKey]; exists {
				continue
			}

			accountID, err := utils.GenerateID()
			if err != nil {
				return response, NewAccountError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para conta")
			}

			name := secretName
			accountsToCreate = append(accountsToCreate, &domain.SellerAccount{
				ID:          accountID,
				SellerID:    sellerID,
				Name:        name,
				Marketplace: participation.Marketplace.ID,
				Country:     participation.Marketplace.CountryCode,
				SecretName:  &name,
				Status:      domain.SellerAccountStatusActive,
			})
		}
	}

	if len(accountsToCreate) > 0 {
		err = s.accountRepository.SaveOrUpdate(accountsToCreate)
		if err != nil {
			return response, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar contas")
		}
	}

	quantity := len(accountsToCreate)

	logrus.Infof("%d accounts were successfully synced", quantity)

	response.Quantity = quantity
	response.Message = fmt.Sprintf("%d contas foram sincronizadas com sucesso", quantity)
	response.Error = false

	return response, nil
}

func (s *Service) UpdateAccount(request *domain.UpdateSellerAccountRequest) (*domain.UpdateSellerAccountResponse, error) {
	if request.ID == "" {
		return nil, ErrAccountIDRequired
	}

	// Busca a conta para verificar se existe
	account, err := s.accountRepository.GetAccountByID(request.ID)
	if err != nil {
		logrus.Error("Error getting account by id on the repository:", err)
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar conta no banco de dados")
	}

	if account == nil {
		return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrInvalidRequest, request.ID, "Conta não encontrada")
	}

	if request.Token != nil && *request.Token != "" {
		key := fmt.Sprintf("amazon_sp-%s-act-%s", account.SellerID, account.ID)

		hasConnection, err := s.spapiService.CheckConnection(*request.Token)
		if err != nil {
			logrus.Error("Error check connection with Amazon SP-API:", err)
			return nil, NewAccountErrorWithID(ErrAmazonConnection, apiErrors.ErrInvalidTokenAmazon, request.ID, "Falha ao verificar conexão com o Amazon SP-API")
		}

		if hasConnection {
			err = s.renderClient.AddOrUpdateSecret(s.cfg.Render.ServiceID, key, *request.Token)
			if err != nil {
				logrus.Error("Error updating secret on render:", err)
				return nil, NewAccountErrorWithID(ErrRenderSecretUpdate, apiErrors.ErrExternalService, request.ID, "Falha ao atualizar chave secreta no Render")
			}

			request.SecretName = &key

			s.cfg.AmazonTokensByAccount[key] = *request.Token
		} else {
			logrus.Warn("Invalid refresh token for account:", account.ID)
			return nil, NewAccountErrorWithID(ErrInvalidToken, apiErrors.ErrInvalidToken, request.ID, "Refresh token inválido para a conta")
		}
	}

	// Atualiza a conta no repositório
	err = s.accountRepository.UpdateAccount(request)
	if err != nil {
		logrus.Error("Error updating account on the repository:", err)
		return nil, NewAccountErrorWithID(ErrUpdateAccount, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao atualizar conta no banco de dados")
	}

	return &domain.UpdateSellerAccountResponse{
		ID:         request.ID,
		Nickname:   request.Nickname,
		SecretName: request.SecretName,
		Status:     request.Status,
	}, nil
}

// sellerIDFromSecret extrai o seller ID do nome do secret, que segue o
// padrão amazon_sp-<sellerID> ou amazon_sp-<sellerID>-act-<accountID>.
func sellerIDFromSecret(secretName string) string {
	parts := strings.Split(secretName, "-")
	if len(parts) >= 2 {
		return parts[1]
	}
	return secretName
}
