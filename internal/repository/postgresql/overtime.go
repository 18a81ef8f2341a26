package postgresql

import (
	"context"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/tallerhq/ops-backend-go/internal/domain/overtime"
	"github.com/tallerhq/ops-backend-go/internal/pkg/database"
)

type overtimeRepositoryImpl struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.RecordRepository {
	return &overtimeRepositoryImpl{db: db}
}

// Create implements overtime.RecordRepository.
func (r *overtimeRepositoryImpl) Create(ctx context.Context, record overtime.Record) (overtime.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO overtime_records (
			employee_id, punch_id, date, started_at, ended_at,
			classification, multiplier, raw_hours, equivalent_hours, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID,
		record.PunchID,
		record.Date,
		record.StartedAt,
		record.EndedAt,
		record.Classification,
		record.Multiplier,
		record.RawHours,
		record.EquivalentHours,
		record.Status,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		return overtime.Record{}, fmt.Errorf("failed to create overtime record: %w", err)
	}

	return record, nil
}

// GetByID implements overtime.RecordRepository.
func (r *overtimeRepositoryImpl) GetByID(ctx context.Context, id string) (overtime.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT o.id, o.employee_id, o.punch_id, o.date, o.started_at, o.ended_at,
			   o.classification, o.multiplier, o.raw_hours, o.equivalent_hours,
			   o.status, o.approved_by, o.approved_at, o.rejection_reason,
			   o.created_at, o.updated_at,
			   e.full_name AS employee_name
		FROM overtime_records o
		LEFT JOIN employees e ON e.id = o.employee_id
		WHERE o.id = $1
	`

	var record overtime.Record
	err := q.QueryRow(ctx, query, id).Scan(
		&record.ID, &record.EmployeeID, &record.PunchID, &record.Date, &record.StartedAt, &record.EndedAt,
		&record.Classification, &record.Multiplier, &record.RawHours, &record.EquivalentHours,
		&record.Status, &record.ApprovedBy, &record.ApprovedAt, &record.RejectionReason,
		&record.CreatedAt, &record.UpdatedAt,
		&record.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return overtime.Record{}, overtime.ErrOvertimeNotFound
		}
		return overtime.Record{}, fmt.Errorf("failed to get overtime record by ID: %w", err)
	}

	return record, nil
}

// List implements overtime.RecordRepository. On schema drift the filtered
// query falls back to a baseline fetch and the filter, sort and page are
// applied in process, so callers always see a filtered result.
func (r *overtimeRepositoryImpl) List(ctx context.Context, filter overtime.ListFilter) ([]overtime.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	records, total, err := r.listFiltered(ctx, q, filter)
	if err == nil {
		return records, total, nil
	}
	if !isSchemaDrift(err) {
		return nil, 0, err
	}

	all, err := r.queryRecords(ctx, q, overtimeBaselineQuery)
	if err != nil {
		return nil, 0, err
	}
	all = narrowOvertimeRecords(all, filter)
	return pageSlice(all, filter.Page, filter.Limit), int64(len(all)), nil
}

func (r *overtimeRepositoryImpl) listFiltered(ctx context.Context, q database.Querier, filter overtime.ListFilter) ([]overtime.Record, int64, error) {
	baseWhere := "1 = 1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND o.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND o.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Classification != nil && *filter.Classification != "" {
		baseWhere += fmt.Sprintf(" AND o.classification = $%d", argIdx)
		args = append(args, *filter.Classification)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND o.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND o.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM overtime_records o WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count overtime records: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT o.id, o.employee_id, o.punch_id, o.date, o.started_at, o.ended_at,
			   o.classification, o.multiplier, o.raw_hours, o.equivalent_hours,
			   o.status, o.approved_by, o.approved_at, o.rejection_reason,
			   o.created_at, o.updated_at,
			   e.full_name AS employee_name
		FROM overtime_records o
		LEFT JOIN employees e ON e.id = o.employee_id
		WHERE %s
		ORDER BY o.date DESC, o.created_at DESC
	`, baseWhere)

	if filter.Limit > 0 {
		page := filter.Page
		if page == 0 {
			page = 1
		}
		selectQuery += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
		args = append(args, filter.Limit, (page-1)*filter.Limit)
	}

	records, err := r.queryRecords(ctx, q, selectQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// overtimeBaselineQuery is the unconditional fetch used when a filtered query
// hits columns the deployed schema does not have yet.
const overtimeBaselineQuery = `
	SELECT o.id, o.employee_id, o.punch_id, o.date, o.started_at, o.ended_at,
		   o.classification, o.multiplier, o.raw_hours, o.equivalent_hours,
		   o.status, o.approved_by, o.approved_at, o.rejection_reason,
		   o.created_at, o.updated_at,
		   e.full_name AS employee_name
	FROM overtime_records o
	LEFT JOIN employees e ON e.id = o.employee_id
`

func (r *overtimeRepositoryImpl) queryRecords(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]overtime.Record, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query overtime records: %w", err)
	}
	defer rows.Close()

	var records []overtime.Record
	for rows.Next() {
		var record overtime.Record
		err := rows.Scan(
			&record.ID, &record.EmployeeID, &record.PunchID, &record.Date, &record.StartedAt, &record.EndedAt,
			&record.Classification, &record.Multiplier, &record.RawHours, &record.EquivalentHours,
			&record.Status, &record.ApprovedBy, &record.ApprovedAt, &record.RejectionReason,
			&record.CreatedAt, &record.UpdatedAt,
			&record.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan overtime record: %w", err)
		}
		records = append(records, record)
	}

	return records, nil
}

// narrowOvertimeRecords applies a list filter in process, for reads served by
// the baseline query on a partially migrated schema. Ordering matches the
// filtered query: date descending, newest record first within a date.
func narrowOvertimeRecords(records []overtime.Record, filter overtime.ListFilter) []overtime.Record {
	var narrowed []overtime.Record
	for _, record := range records {
		day := record.Date.Format("2006-01-02")
		if filter.EmployeeID != nil && *filter.EmployeeID != "" && record.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && *filter.Status != "" && string(record.Status) != *filter.Status {
			continue
		}
		if filter.Classification != nil && *filter.Classification != "" && string(record.Classification) != *filter.Classification {
			continue
		}
		if filter.StartDate != nil && *filter.StartDate != "" && day < *filter.StartDate {
			continue
		}
		if filter.EndDate != nil && *filter.EndDate != "" && day > *filter.EndDate {
			continue
		}
		narrowed = append(narrowed, record)
	}

	sort.SliceStable(narrowed, func(i, j int) bool {
		if !narrowed[i].Date.Equal(narrowed[j].Date) {
			return narrowed[i].Date.After(narrowed[j].Date)
		}
		return narrowed[i].CreatedAt.After(narrowed[j].CreatedAt)
	})
	return narrowed
}

// UpdateStatus implements overtime.RecordRepository.
func (r *overtimeRepositoryImpl) UpdateStatus(ctx context.Context, record overtime.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE overtime_records
		SET status = $2, approved_by = $3, approved_at = $4, rejection_reason = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		record.ID,
		record.Status,
		record.ApprovedBy,
		record.ApprovedAt,
		record.RejectionReason,
	)
	if err != nil {
		return fmt.Errorf("failed to update overtime record status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return overtime.ErrOvertimeNotFound
	}

	return nil
}
