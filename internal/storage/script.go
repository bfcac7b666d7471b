package storage

import (
	"context"
	"fmt"
	"strings"
)

// ParseSQLStatements splits a script on semicolons outside single-quoted
// literals. Lines starting with "--" are dropped.
func ParseSQLStatements(script string) []string {
	var (
		statements []string
		current    strings.Builder
		quoted     bool
	)

	flush := func() {
		if stmt := strings.TrimSpace(current.String()); stmt != "" {
			statements = append(statements, stmt)
		}
		current.Reset()
	}

	for _, line := range strings.Split(script, "\n") {
		if !quoted && strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		for _, r := range line {
			if r == ';' && !quoted {
				flush()
				continue
			}
			if r == '\'' {
				quoted = !quoted
			}
			current.WriteRune(r)
		}
		current.WriteByte('\n')
	}
	flush()

	return statements
}

// ExecScript runs every statement of script in order and stops at the first failure.
func (g *SQLGateway) ExecScript(ctx context.Context, script string) error {
	for i, stmt := range ParseSQLStatements(script) {
		if _, err := g.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute statement %d: %w", i+1, err)
		}
	}
	return nil
}
