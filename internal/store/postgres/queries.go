package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/lib/pq"
)

// The parameter table is fixed and assumed pre-existing; no DDL is owned
// here.
const (
	schemaName = "public"
	tableName  = "nkinitvalues"
)

// executor is the interface satisfied by both *sql.DB and *sql.Tx.
type executor interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// selectWithConditions builds SELECT * FROM <schema>.<table>, appending
// one equality clause per condition column. Identifiers are quoted via
// pq.QuoteIdentifier and condition values are always bound parameters.
// Condition columns are sorted so the statement text is deterministic.
// Driver errors are returned unchanged.
func selectWithConditions(ctx context.Context, db executor, schema, table string, conds map[string]any) ([]map[string]any, error) {
	query := "SELECT * FROM " + pq.QuoteIdentifier(schema) + "." + pq.QuoteIdentifier(table)

	var args []any
	if len(conds) > 0 {
		cols := make([]string, 0, len(conds))
		for c := range conds {
			cols = append(cols, c)
		}
		sort.Strings(cols)

		clauses := make([]string, len(cols))
		for i, c := range cols {
			clauses[i] = fmt.Sprintf("%s = $%d", pq.QuoteIdentifier(c), i+1)
			args = append(args, conds[c])
		}
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRowMaps(rows)
}

// queryAppNames enumerates the distinct application names across the
// whole table via an unfiltered select.
func queryAppNames(ctx context.Context, db executor) ([]string, error) {
	rows, err := selectWithConditions(ctx, db, schemaName, tableName, nil)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(rows))
	var names []string
	for _, row := range rows {
		id, ok := row["id"].(string)
		if !ok {
			continue
		}
		if _, dup := seen[id]; !dup {
			seen[id] = struct{}{}
			names = append(names, id)
		}
	}
	sort.Strings(names)
	return names, nil
}

// queryAppRows fetches one application's parameter set for the given
// debug partition.
func queryAppRows(ctx context.Context, db executor, app string, debug bool) ([]map[string]any, error) {
	return selectWithConditions(ctx, db, schemaName, tableName, map[string]any{
		"id":        app,
		"debugmode": debug,
	})
}
