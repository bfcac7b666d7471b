package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
)

// SQLGateway implements Gateway over database/sql. Inserts are split into
// multi-row statements of at most batchSize rows.
type SQLGateway struct {
	db        *sql.DB
	qb        squirrel.StatementBuilderType
	batchSize int
}

const defaultBatchSize = 500

func NewSQLGateway(db *sql.DB, placeholder squirrel.PlaceholderFormat, batchSize int) *SQLGateway {
	if batchSize < 1 {
		batchSize = defaultBatchSize
	}
	return &SQLGateway{
		db:        db,
		qb:        squirrel.StatementBuilder.PlaceholderFormat(placeholder),
		batchSize: batchSize,
	}
}

func (g *SQLGateway) Insert(ctx context.Context, table string, columns []string, rows [][]any) error {
	for start := 0; start < len(rows); start += g.batchSize {
		end := min(start+g.batchSize, len(rows))

		ib := g.qb.Insert(table).Columns(columns...)
		for i, row := range rows[start:end] {
			if len(row) != len(columns) {
				return fmt.Errorf("failed to insert into %s: row %d has %d values for %d columns", table, start+i, len(row), len(columns))
			}
			ib = ib.Values(row...)
		}

		query, args, err := ib.ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert into %s: %w", table, err)
		}
		if _, err := g.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to insert into %s: %w", table, err)
		}
	}
	return nil
}

func (g *SQLGateway) Search(ctx context.Context, q Query) ([]Row, error) {
	query, args, err := q.builder(g.qb).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query on %s: %w", q.Table, err)
	}

	rows, err := g.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", q.Table, err)
	}
	defer rows.Close()

	return scanRows(rows)
}

func (g *SQLGateway) Count(ctx context.Context, table string) (int, error) {
	query, args, err := g.qb.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count on %s: %w", table, err)
	}

	var count int
	if err := g.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows in table %s: %w", table, err)
	}
	return count, nil
}

func (g *SQLGateway) Close() error {
	if g.db != nil {
		return g.db.Close()
	}
	return nil
}
