package storage

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Row is one result row keyed by column name. Qualified selections such as
// "c.STATE_ID" are keyed by the bare column name the driver reports.
type Row map[string]any

func (r Row) value(col string) (any, error) {
	v, ok := r[col]
	if !ok {
		// drivers disagree on the case of reported column names
		for k, candidate := range r {
			if strings.EqualFold(k, col) {
				return candidate, nil
			}
		}
		return nil, fmt.Errorf("column %s not in row", col)
	}
	return v, nil
}

func (r Row) Int64(col string) (int64, error) {
	v, err := r.value(col)
	if err != nil {
		return 0, err
	}

	switch n := v.(type) {
	case int64:
		return n, nil
	case int32:
		return int64(n), nil
	case int:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case uint64:
		return int64(n), nil
	case float64:
		return int64(n), nil
	case []byte:
		return strconv.ParseInt(string(n), 10, 64)
	case string:
		return strconv.ParseInt(n, 10, 64)
	case nil:
		return 0, fmt.Errorf("column %s is NULL", col)
	default:
		return 0, fmt.Errorf("column %s has unsupported type %T", col, v)
	}
}

func (r Row) String(col string) (string, error) {
	v, err := r.value(col)
	if err != nil {
		return "", err
	}

	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	case nil:
		return "", nil
	default:
		return fmt.Sprint(s), nil
	}
}

var timeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Time reads DATETIME columns that arrive as time.Time or as text.
func (r Row) Time(col string) (time.Time, error) {
	v, err := r.value(col)
	if err != nil {
		return time.Time{}, err
	}

	var raw string
	switch t := v.(type) {
	case time.Time:
		return t.UTC(), nil
	case string:
		raw = t
	case []byte:
		raw = string(t)
	default:
		return time.Time{}, fmt.Errorf("column %s has unsupported type %T", col, v)
	}

	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("column %s: invalid time %q", col, raw)
}

func scanRows(rows *sql.Rows) ([]Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	var result []Row
	for rows.Next() {
		values := make([]any, len(columns))
		valuePtrs := make([]any, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(Row, len(columns))
		for i, col := range columns {
			row[col] = values[i]
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}
	return result, nil
}
