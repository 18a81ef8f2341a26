package postgresql

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Schema-drift error codes. Filtered list queries lean on columns that older
// deployments may not have yet; when one of these comes back, the repository
// retries with a baseline query and narrows the rows in memory instead of
// failing the read.
const (
	pgUndefinedColumn = "42703"
	pgUndefinedTable  = "42P01"
	pgUndefinedObject = "42704"
)

// isSchemaDrift reports whether err is a Postgres error caused by the query
// referencing schema objects that do not exist.
func isSchemaDrift(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgUndefinedColumn, pgUndefinedTable, pgUndefinedObject:
		return true
	}
	return false
}

// pageSlice pages rows that were filtered and sorted in process after a
// baseline fetch. Limit <= 0 returns everything.
func pageSlice[T any](rows []T, page, limit int) []T {
	if limit <= 0 {
		return rows
	}
	if page <= 0 {
		page = 1
	}
	start := (page - 1) * limit
	if start >= len(rows) {
		return nil
	}
	end := start + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}
