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
	dashboardSnapshotsTable = "dashboard_snapshots ds"
)

type DashboardSnapshotRepository interface {
	GetByAccountIDAndDate(accountID string, date time.Time) (*domain.DashboardSnapshotEntry, error)
	GetLatestByAccountID(accountID string) (*domain.DashboardSnapshotEntry, error)
	SaveOrUpdate(entry *domain.DashboardSnapshotEntry) error
	DeleteOlderThan(days int) (int64, error)
}

type dashboardSnapshotRepository struct {
	conn *postgres.Connection
}

func NewDashboardSnapshotRepository(conn *postgres.Connection) DashboardSnapshotRepository {
	return &dashboardSnapshotRepository{
		conn: conn,
	}
}

func (r *dashboardSnapshotRepository) GetByAccountIDAndDate(accountID string, date time.Time) (*domain.DashboardSnapshotEntry, error) {
	query, args, err := squirrel.
		Select("ds.id, ds.account_id, ds.date, ds.dashboard, ds.created_at, ds.updated_at").
		From(dashboardSnapshotsTable).
		Where(squirrel.Eq{"ds.account_id": accountID, "ds.date": date.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	entry, err := r.scanSnapshot(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return entry, nil
}

func (r *dashboardSnapshotRepository) GetLatestByAccountID(accountID string) (*domain.DashboardSnapshotEntry, error) {
	query, args, err := squirrel.
		Select("ds.id, ds.account_id, ds.date, ds.dashboard, ds.created_at, ds.updated_at").
		From(dashboardSnapshotsTable).
		Where(squirrel.Eq{"ds.account_id": accountID}).
		OrderBy("ds.date DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	entry, err := r.scanSnapshot(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return entry, nil
}

func (r *dashboardSnapshotRepository) SaveOrUpdate(entry *domain.DashboardSnapshotEntry) error {
	var dashboardJSON []byte
	var err error

	if entry.Dashboard != nil {
		dashboardJSON, err = json.Marshal(entry.Dashboard)
		if err != nil {
			return fmt.Errorf("erro ao serializar o dashboard para JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("dashboard_snapshots").
		Columns("account_id", "date", "dashboard").
		Values(
			entry.AccountID,
			entry.Date.Format("2006-01-02"),
			dashboardJSON,
		).
		Suffix(`
			ON CONFLICT (account_id, date) DO UPDATE SET
				dashboard = EXCLUDED.dashboard,
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

func (r *dashboardSnapshotRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete("dashboard_snapshots").
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

func (r *dashboardSnapshotRepository) scanSnapshot(row *sql.Row) (*domain.DashboardSnapshotEntry, error) {
	entry := &domain.DashboardSnapshotEntry{}
	var dashboardJSON []byte
	var dateStr string

	err := row.Scan(
		&entry.ID,
		&entry.AccountID,
		&dateStr,
		&dashboardJSON,
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

	if dashboardJSON != nil {
		dashboard := &domain.DashboardViewModel{}
		if err := json.Unmarshal(dashboardJSON, dashboard); err != nil {
			return nil, fmt.Errorf("erro ao deserializar o JSON do dashboard: %w", err)
		}
		entry.Dashboard = dashboard
	}

	return entry, nil
}
