// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-monitor-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-monitor-api/internal/domain"
	"github.com/vfg2006/ads-monitor-api/pkg/utils"
)

const (
	fetchRunTable      = "fetch_runs"
	defaultRecentLimit = 20
	maxRecentFetchRuns = 100
)

var fetchRunColumns = []string{
	"id",
	"source",
	"status_filter",
	"date_from",
	"date_to",
	"search",
	"ads_count",
	"error_kind",
	"duration_ms",
	"started_at",
}

//go:generate mockgen -source=fetch_run.go -destination=mocks/fetch_run_mock.go -package=mocks

type FetchRunRepository interface {
	Save(ctx context.Context, run *domain.FetchRun) error
	ListRecent(ctx context.Context, limit int) ([]*domain.FetchRun, error)
}

type fetchRunRepository struct {
	conn postgres.Conn
}

func NewFetchRunRepository(conn postgres.Conn) FetchRunRepository {
	return &fetchRunRepository{
		conn: conn,
	}
}

func (r *fetchRunRepository) Save(ctx context.Context, run *domain.FetchRun) error {
	if run.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id da execução: %w", err)
		}
		run.ID = id
	}

	query, args, err := buildInsertFetchRun(run)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao salvar execução de busca: %w", err)
	}

	return nil
}

func (r *fetchRunRepository) ListRecent(ctx context.Context, limit int) ([]*domain.FetchRun, error) {
	query, args, err := buildListRecentFetchRuns(limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	runs := make([]*domain.FetchRun, 0)
	for rows.Next() {
		run, err := scanFetchRun(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear execução: %w", err)
		}
		runs = append(runs, run)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return runs, nil
}

func buildInsertFetchRun(run *domain.FetchRun) (string, []any, error) {
	return squirrel.
		Insert(fetchRunTable).
		Columns(fetchRunColumns...).
		Values(
			run.ID,
			run.Source,
			run.Status,
			nullableString(run.DateFrom),
			nullableString(run.DateTo),
			nullableString(run.Search),
			run.AdsCount,
			nullableString(run.ErrorKind),
			run.DurationMs,
			run.StartedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// buildListRecentFetchRuns limita o resultado entre 1 e maxRecentFetchRuns
func buildListRecentFetchRuns(limit int) (string, []any, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentFetchRuns {
		limit = maxRecentFetchRuns
	}

	return squirrel.
		Select(fetchRunColumns...).
		From(fetchRunTable).
		OrderBy("started_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func scanFetchRun(rows *sql.Rows) (*domain.FetchRun, error) {
	var (
		run                                 domain.FetchRun
		dateFrom, dateTo, search, errorKind sql.NullString
	)

	err := rows.Scan(
		&run.ID,
		&run.Source,
		&run.Status,
		&dateFrom,
		&dateTo,
		&search,
		&run.AdsCount,
		&errorKind,
		&run.DurationMs,
		&run.StartedAt,
	)
	if err != nil {
		return nil, err
	}

	run.DateFrom = dateFrom.String
	run.DateTo = dateTo.String
	run.Search = search.String
	run.ErrorKind = errorKind.String

	return &run, nil
}

func nullableString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}
