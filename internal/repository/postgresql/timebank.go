package postgresql

import (
	"context"
	"fmt"
	"sort"

	"github.com/tallerhq/ops-backend-go/internal/domain/timebank"
	"github.com/tallerhq/ops-backend-go/internal/pkg/database"
)

type timeBankRepositoryImpl struct {
	db *database.DB
}

func NewTimeBankRepository(db *database.DB) timebank.EntryRepository {
	return &timeBankRepositoryImpl{db: db}
}

// Append implements timebank.EntryRepository.
func (r *timeBankRepositoryImpl) Append(ctx context.Context, entry timebank.Entry) (timebank.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_bank_entries (
			employee_id, date, kind, minutes, origin, punch_id, note
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		entry.EmployeeID,
		entry.Date,
		entry.Kind,
		entry.Minutes,
		entry.Origin,
		entry.PunchID,
		entry.Note,
	).Scan(&entry.ID, &entry.CreatedAt)

	if err != nil {
		return timebank.Entry{}, fmt.Errorf("failed to append time bank entry: %w", err)
	}

	return entry, nil
}

// ListByEmployee implements timebank.EntryRepository. On schema drift the
// filtered query falls back to the employee's full history and the filter is
// re-applied in process, so callers always see a filtered result.
func (r *timeBankRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, filter timebank.HistoryFilter) ([]timebank.Entry, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "employee_id = $1"
	args := []interface{}{employeeID}
	argIdx := 2

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Origin != nil && *filter.Origin != "" {
		baseWhere += fmt.Sprintf(" AND origin = $%d", argIdx)
		args = append(args, *filter.Origin)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT id, employee_id, date, kind, minutes, origin, punch_id, note, created_at
		FROM time_bank_entries
		WHERE %s
		ORDER BY created_at ASC
	`, baseWhere)
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	entries, err := r.queryEntries(ctx, q, query, args...)
	if err == nil {
		return entries, nil
	}
	if !isSchemaDrift(err) {
		return nil, err
	}

	fallbackQuery := `
		SELECT id, employee_id, date, kind, minutes, origin, punch_id, note, created_at
		FROM time_bank_entries
		WHERE employee_id = $1
		ORDER BY created_at ASC
	`
	entries, err = r.queryEntries(ctx, q, fallbackQuery, employeeID)
	if err != nil {
		return nil, err
	}
	return narrowTimeBankEntries(entries, filter), nil
}

// narrowTimeBankEntries applies a history filter in process, for reads served
// by the baseline query on a partially migrated schema.
func narrowTimeBankEntries(entries []timebank.Entry, filter timebank.HistoryFilter) []timebank.Entry {
	var narrowed []timebank.Entry
	for _, entry := range entries {
		day := entry.Date.Format("2006-01-02")
		if filter.StartDate != nil && *filter.StartDate != "" && day < *filter.StartDate {
			continue
		}
		if filter.EndDate != nil && *filter.EndDate != "" && day > *filter.EndDate {
			continue
		}
		if filter.Origin != nil && *filter.Origin != "" && entry.Origin != *filter.Origin {
			continue
		}
		narrowed = append(narrowed, entry)
	}

	sort.SliceStable(narrowed, func(i, j int) bool {
		return narrowed[i].CreatedAt.Before(narrowed[j].CreatedAt)
	})
	if filter.Limit > 0 && len(narrowed) > filter.Limit {
		narrowed = narrowed[:filter.Limit]
	}
	return narrowed
}

func (r *timeBankRepositoryImpl) queryEntries(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]timebank.Entry, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query time bank entries: %w", err)
	}
	defer rows.Close()

	var entries []timebank.Entry
	for rows.Next() {
		var entry timebank.Entry
		err := rows.Scan(
			&entry.ID, &entry.EmployeeID, &entry.Date, &entry.Kind, &entry.Minutes,
			&entry.Origin, &entry.PunchID, &entry.Note, &entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time bank entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
