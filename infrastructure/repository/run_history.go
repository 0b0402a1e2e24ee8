package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/shopify-reports-api/infrastructure/database/postgres"
	"github.com/vfg2006/shopify-reports-api/internal/domain"
)

const (
	reportRunsTable       = "report_runs rr"
	processedPeriodsTable = "processed_periods pp"
)

// runHistorySchema cria as tabelas do histórico quando ainda não existem. O
// histórico é opcional: a aplicação só conecta no banco quando habilitado.
const runHistorySchema = `
CREATE TABLE IF NOT EXISTS report_runs (
	id SERIAL PRIMARY KEY,
	run_id TEXT NOT NULL,
	mode TEXT NOT NULL,
	spreadsheet_id TEXT NOT NULL DEFAULT '',
	periods_planned INTEGER NOT NULL DEFAULT 0,
	periods_processed INTEGER NOT NULL DEFAULT 0,
	periods_failed INTEGER NOT NULL DEFAULT 0,
	total_orders INTEGER NOT NULL DEFAULT 0,
	total_revenue NUMERIC(14,2) NOT NULL DEFAULT 0,
	used_local_fallback BOOLEAN NOT NULL DEFAULT FALSE,
	started_at TIMESTAMPTZ NOT NULL,
	completed_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS processed_periods (
	spreadsheet_id TEXT NOT NULL,
	period_key TEXT NOT NULL,
	processed_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (spreadsheet_id, period_key)
);
`

// RunHistoryRepository guarda o histórico de execuções do pipeline e as
// chaves de período já publicadas, usadas para retomar cargas históricas.
type RunHistoryRepository interface {
	EnsureSchema() error
	SaveRun(summary *domain.RunSummary) error
	GetLatestRun(mode string) (*domain.RunSummary, error)
	MarkPeriodProcessed(spreadsheetID, periodKey string) error
	GetProcessedPeriods(spreadsheetID string) ([]string, error)
}

type runHistoryRepository struct {
	conn *postgres.Connection
}

func NewRunHistoryRepository(conn *postgres.Connection) RunHistoryRepository {
	return &runHistoryRepository{
		conn: conn,
	}
}

// EnsureSchema cria as tabelas do histórico em um banco recém-provisionado.
func (r *runHistoryRepository) EnsureSchema() error {
	if _, err := r.conn.Exec(runHistorySchema); err != nil {
		return fmt.Errorf("erro ao criar o esquema do histórico de execuções: %w", err)
	}

	return nil
}

func (r *runHistoryRepository) SaveRun(summary *domain.RunSummary) error {
	query := squirrel.StatementBuilder.
		Insert("report_runs").
		Columns(
			"run_id", "mode", "spreadsheet_id",
			"periods_planned", "periods_processed", "periods_failed",
			"total_orders", "total_revenue", "used_local_fallback",
			"started_at", "completed_at",
		).
		Values(
			summary.RunID,
			summary.Mode,
			summary.SpreadsheetID,
			summary.PeriodsPlanned,
			summary.PeriodsProcessed,
			summary.PeriodsFailed,
			summary.TotalOrders,
			summary.TotalRevenue,
			summary.UsedLocalFallback,
			summary.StartedAt,
			summary.CompletedAt,
		).
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

func (r *runHistoryRepository) GetLatestRun(mode string) (*domain.RunSummary, error) {
	query, args, err := squirrel.
		Select("rr.run_id, rr.mode, rr.spreadsheet_id, rr.periods_planned, rr.periods_processed, rr.periods_failed, rr.total_orders, rr.total_revenue, rr.used_local_fallback, rr.started_at, rr.completed_at").
		From(reportRunsTable).
		Where(squirrel.Eq{"rr.mode": mode}).
		OrderBy("rr.completed_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	summary := &domain.RunSummary{}
	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&summary.RunID,
		&summary.Mode,
		&summary.SpreadsheetID,
		&summary.PeriodsPlanned,
		&summary.PeriodsProcessed,
		&summary.PeriodsFailed,
		&summary.TotalOrders,
		&summary.TotalRevenue,
		&summary.UsedLocalFallback,
		&summary.StartedAt,
		&summary.CompletedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear a execução: %w", err)
	}

	return summary, nil
}

// MarkPeriodProcessed registra a chave do período como publicada. Reexecuções
// do mesmo período são ignoradas pela restrição de unicidade.
func (r *runHistoryRepository) MarkPeriodProcessed(spreadsheetID, periodKey string) error {
	query := squirrel.StatementBuilder.
		Insert("processed_periods").
		Columns("spreadsheet_id", "period_key", "processed_at").
		Values(spreadsheetID, periodKey, time.Now()).
		Suffix(`
			ON CONFLICT (spreadsheet_id, period_key) DO UPDATE SET
				processed_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *runHistoryRepository) GetProcessedPeriods(spreadsheetID string) ([]string, error) {
	query, args, err := squirrel.
		Select("pp.period_key").
		From(processedPeriodsTable).
		Where(squirrel.Eq{"pp.spreadsheet_id": spreadsheetID}).
		OrderBy("pp.period_key ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("erro ao escanear período processado: %w", err)
		}
		keys = append(keys, key)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return keys, nil
}
