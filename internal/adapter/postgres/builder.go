package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
)

// Builder is the squirrel statement builder configured for PostgreSQL
// placeholders ($1, $2, ...).
var Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Get builds q and scans exactly one row into dst.
// Returns pgx.ErrNoRows (via pgxscan) when the query yields nothing.
func Get(ctx context.Context, db Querier, dst any, q squirrel.Sqlizer) error {
	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Get(ctx, db, dst, sql, args...)
}

// Select builds q and scans all rows into dst, which must be a pointer to a slice.
func Select(ctx context.Context, db Querier, dst any, q squirrel.Sqlizer) error {
	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Select(ctx, db, dst, sql, args...)
}

// Exec builds q, executes it and returns the number of affected rows.
func Exec(ctx context.Context, db Querier, q squirrel.Sqlizer) (int64, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}
	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Exists wraps q in SELECT EXISTS (...) and returns the result.
func Exists(ctx context.Context, db Querier, q squirrel.SelectBuilder) (bool, error) {
	sql, args, err := q.Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}
	var exists bool
	if err := db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// ColumnList joins column names for RETURNING clauses.
func ColumnList(cols []string) string {
	return strings.Join(cols, ", ")
}

// Qualify prefixes every column with alias.
func Qualify(alias string, cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = alias + "." + c
	}
	return out
}
