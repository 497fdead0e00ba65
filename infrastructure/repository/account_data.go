package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/seller-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
)

const (
	accountDataTable = "account_data ad"
)

type AccountDataRepository interface {
	GetByAccountIDAndDate(accountID string, date time.Time) (*domain.AccountDataEntry, error)
	GetLatestByAccountID(accountID string) (*domain.AccountDataEntry, error)
	SaveOrUpdate(entry *domain.AccountDataEntry) error
	DeleteOlderThan(days int) (int64, error)
}

type accountDataRepository struct {
	conn *postgres.Connection
}

func NewAccountDataRepository(conn *postgres.Connection) AccountDataRepository {
	return &accountDataRepository{
		conn: conn,
	}
}

func (r *accountDataRepository) GetByAccountIDAndDate(accountID string, date time.Time) (*domain.AccountDataEntry, error) {
	query, args, err := squirrel.
		Select("ad.id, ad.account_id, ad.date, ad.payload, ad.created_at, ad.updated_at").
		From(accountDataTable).
		Where(squirrel.Eq{"ad.account_id": accountID, "ad.date": date.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	entry, err := r.scanEntry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear account data: %w", err)
	}

	return entry, nil
}

func (r *accountDataRepository) GetLatestByAccountID(accountID string) (*domain.AccountDataEntry, error) {
	query, args, err := squirrel.
		Select("ad.id, ad.account_id, ad.date, ad.payload, ad.created_at, ad.updated_at").
		From(accountDataTable).
		Where(squirrel.Eq{"ad.account_id": accountID}).
		OrderBy("ad.date DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	entry, err := r.scanEntry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear account data: %w", err)
	}

	return entry, nil
}

func (r *accountDataRepository) SaveOrUpdate(entry *domain.AccountDataEntry) error {
	var payloadJSON []byte
	var err error

	if entry.Payload != nil {
		payloadJSON, err = json.Marshal(entry.Payload)
		if err != nil {
			return fmt.Errorf("erro ao serializar o payload para JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("account_data").
		Columns("account_id", "date", "payload").
		Values(
			entry.AccountID,
			entry.Date.Format("2006-01-02"),
			payloadJSON,
		).
		Suffix(`
			ON CONFLICT (account_id, date) DO UPDATE SET
				payload = EXCLUDED.payload,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *accountDataRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete("account_data").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *accountDataRepository) scanEntry(row *sql.Row) (*domain.AccountDataEntry, error) {
	entry := &domain.AccountDataEntry{}
	var payloadJSON []byte
	var dateStr string

	err := row.Scan(
		&entry.ID,
		&entry.AccountID,
		&dateStr,
		&payloadJSON,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, fmt.Errorf("erro ao converter data: %w", err)
	}
	entry.Date = date

	if payloadJSON != nil {
		payload := &domain.AccountData{}
		if err := json.Unmarshal(payloadJSON, payload); err != nil {
			return nil, fmt.Errorf("erro ao deserializar o JSON do payload: %w", err)
		}
		entry.Payload = payload
	}

	return entry, nil
}
