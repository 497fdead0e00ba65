package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	_ "github.com/lib/pq"
	"github.com/vfg2006/seller-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
)

const (
	accountsTable = "accounts a"
)

type AccountRepository interface {
	GetAccountByID(accountID string) (*domain.SellerAccount, error)
	GetAccountBySellerID(sellerID string) (*domain.SellerAccount, error)
	ListAccounts(availableStatus []domain.SellerAccountStatus) ([]*domain.SellerAccount, error)
	ListAccountsMap() (map[string]struct{}, error)
	SaveOrUpdate(accounts []*domain.SellerAccount) error
	UpdateAccount(account *domain.UpdateSellerAccountRequest) error
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (a *accountRepository) GetAccountBySellerID(sellerID string) (*domain.SellerAccount, error) {
	return a.GetAccount(squirrel.Eq{"a.seller_id": sellerID})
}

func (a *accountRepository) GetAccountByID(accountID string) (*domain.SellerAccount, error) {
	return a.GetAccount(squirrel.Eq{"a.id": accountID})
}

func (a *accountRepository) GetAccount(whereClause map[string]interface{}) (*domain.SellerAccount, error) {
	accountsSQL, accountsArgs, err := squirrel.
		Select("a.id, a.seller_id, a.name, a.nickname, a.marketplace, a.country, a.secret_name, a.status").
		From(accountsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := a.conn.QueryRow(accountsSQL, accountsArgs...)

	acc, err := a.deserializeAccount(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return acc, err
}

func (a *accountRepository) deserializeAccount(row *sql.Row) (*domain.SellerAccount, error) {
	acc := &domain.SellerAccount{}

	if err := row.Scan(
		&acc.ID,
		&acc.SellerID,
		&acc.Name,
		&acc.Nickname,
		&acc.Marketplace,
		&acc.Country,
		&acc.SecretName,
		&acc.Status,
	); err != nil {
		return nil, err
	}

	return acc, nil
}

func (a *accountRepository) ListAccounts(availableStatus []domain.SellerAccountStatus) ([]*domain.SellerAccount, error) {
	queryBuilder := squirrel.
		Select("a.id, a.seller_id, a.name, a.nickname, a.marketplace, a.country, a.secret_name, a.status").
		From(accountsTable).
		OrderBy("a.nickname ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"a.status": availableStatus})
	}

	accountsSQL, accountsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := a.conn.Query(accountsSQL, accountsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}
	defer rows.Close()

	accounts := make([]*domain.SellerAccount, 0)

	for rows.Next() {
		acc, err := a.deserializeAccountRow(rows)
		if err != nil {
			return nil, err
		}

		if acc == nil {
			continue
		}

		accounts = append(accounts, acc)
	}

	if len(accounts) == 0 {
		return nil, nil
	}

	return accounts, err
}

func (r *accountRepository) SaveOrUpdate(accounts []*domain.SellerAccount) error {
	if len(accounts) == 0 {
		return nil
	}

	// Cria a query de inserção ou atualização
	query := squirrel.StatementBuilder.
		Insert("accounts").
		Columns("id", "seller_id", "name", "nickname", "marketplace", "country", "secret_name", "status").
		PlaceholderFormat(squirrel.Dollar)

	// Adiciona os valores de cada account ao batch
	for _, account := range accounts {
		query = query.Values(
			account.ID,
			account.SellerID,
			account.Name,
			account.Nickname,
			account.Marketplace,
			account.Country,
			account.SecretName,
			account.Status,
		)
	}

	// Define o comportamento em caso de conflito (atualiza os campos)
	query = query.Suffix(`
			ON CONFLICT (seller_id, marketplace) DO UPDATE SET
				name = EXCLUDED.name,
				country = EXCLUDED.country,
				status = EXCLUDED.status,
				secret_name = COALESCE(accounts.secret_name, EXCLUDED.secret_name),
				nickname = COALESCE(accounts.nickname, EXCLUDED.nickname)
		`)

	// Converte a query para SQL
	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	// Executa a query
	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (a *accountRepository) deserializeAccountRow(row *sql.Rows) (*domain.SellerAccount, error) {
	acc := domain.SellerAccount{}

	if err := row.Scan(
		&acc.ID,
		&acc.SellerID,
		&acc.Name,
		&acc.Nickname,
		&acc.Marketplace,
		&acc.Country,
		&acc.SecretName,
		&acc.Status,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &acc, nil
}

func (a *accountRepository) UpdateAccount(account *domain.UpdateSellerAccountRequest) error {
	if account.ID == "" {
		return errors.New("ID is required")
	}

	// Constrói a query de atualização
	queryBuilder := squirrel.
		Update("accounts").
		Where(squirrel.Eq{"id": account.ID}).
		PlaceholderFormat(squirrel.Dollar)

	// Adiciona os campos que foram fornecidos para atualização
	if account.Nickname != nil {
		queryBuilder = queryBuilder.Set("nickname", *account.Nickname)
	}

	if account.SecretName != nil {
		queryBuilder = queryBuilder.Set("secret_name", *account.SecretName)
	}

	if account.Status != nil {
		queryBuilder = queryBuilder.Set("status", *account.Status)
	}

	// Converte a query para SQL
	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	// Executa a query
	result, err := a.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	// Verifica se algum registro foi afetado
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("account not found")
	}

	return nil
}

func (a *accountRepository) ListAccountsMap() (map[string]struct{}, error) {
	// Query simplificada para buscar apenas os campos essenciais
	accountsSQL, accountsArgs, err := squirrel.
		Select("a.id, a.seller_id, a.marketplace").
		From(accountsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := a.conn.Query(accountsSQL, accountsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return make(map[string]struct{}, 0), nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	// Inicializa o mapa para armazenar as contas
	accountsMap := make(map[string]struct{})

	// Itera sobre os resultados
	for rows.Next() {
		account := &domain.SellerAccount{}
		err := rows.Scan(
			&account.ID,
			&account.SellerID,
			&account.Marketplace,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao deserializar a conta: %w", err)
		}

		// Cria uma chave composta com marketplace e seller_id
		compositeKey := fmt.Sprintf("%s:%s", account.Marketplace, account.SellerID)

		// Adiciona a conta ao mapa usando a chave composta
		accountsMap[compositeKey] = struct{}{}
	}

	// Verifica se houve erros durante a iteração
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return accountsMap, nil
}
