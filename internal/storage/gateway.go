package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
)

// Gateway is the narrow storage surface the pipeline needs.
type Gateway interface {
	Insert(ctx context.Context, table string, columns []string, rows [][]any) error
	Search(ctx context.Context, q Query) ([]Row, error)
	Count(ctx context.Context, table string) (int, error)
	Close() error
}

// Opener acquires a fresh gateway. Stages open one and close it when done.
type Opener func(ctx context.Context) (Gateway, error)

// Query is a single SELECT. Table may carry an alias ("ADDRESS a") and Join
// holds "JOIN ... ON ..." clauses in order.
type Query struct {
	Table    string
	Columns  []string
	Join     []string
	Where    squirrel.Sqlizer
	Distinct bool
}

func (q Query) builder(qb squirrel.StatementBuilderType) squirrel.SelectBuilder {
	columns := q.Columns
	if len(columns) == 0 {
		columns = []string{"*"}
	}

	sb := qb.Select(columns...).From(q.Table)
	if q.Distinct {
		sb = sb.Distinct()
	}
	for _, join := range q.Join {
		sb = sb.JoinClause(join)
	}
	if q.Where != nil {
		sb = sb.Where(q.Where)
	}
	return sb
}

// Tupler is a typed record that knows its column order.
type Tupler interface {
	Tuple() []any
}

// InsertRecords converts typed records to tuples and inserts them.
func InsertRecords[T Tupler](ctx context.Context, gw Gateway, table string, columns []string, records []T) error {
	if len(records) == 0 {
		return nil
	}

	rows := make([][]any, len(records))
	for i, r := range records {
		rows[i] = r.Tuple()
	}
	return gw.Insert(ctx, table, columns, rows)
}

// InsertMaps inserts mapping rows, reading each column by its lower-case name.
func InsertMaps(ctx context.Context, gw Gateway, table string, columns []string, records []map[string]any) error {
	if len(records) == 0 {
		return nil
	}

	rows := make([][]any, len(records))
	for i, record := range records {
		tuple := make([]any, len(columns))
		for j, col := range columns {
			v, ok := record[strings.ToLower(col)]
			if !ok {
				return fmt.Errorf("record %d has no value for column %s", i, col)
			}
			tuple[j] = v
		}
		rows[i] = tuple
	}
	return gw.Insert(ctx, table, columns, rows)
}
