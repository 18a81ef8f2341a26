package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tallerhq/ops-backend-go/internal/domain/compday"
	"github.com/tallerhq/ops-backend-go/internal/pkg/database"
)

type compDayRepositoryImpl struct {
	db *database.DB
}

func NewCompDayRepository(db *database.DB) compday.CompensatoryDayRepository {
	return &compDayRepositoryImpl{db: db}
}

// Create implements compday.CompensatoryDayRepository.
func (r *compDayRepositoryImpl) Create(ctx context.Context, day compday.CompensatoryDay) (compday.CompensatoryDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO compensatory_days (
			employee_id, punch_id, earned_date, reason, days, expires_at, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		day.EmployeeID,
		day.PunchID,
		day.EarnedDate,
		day.Reason,
		day.Days,
		day.ExpiresAt,
		day.Status,
	).Scan(&day.ID, &day.CreatedAt, &day.UpdatedAt)

	if err != nil {
		return compday.CompensatoryDay{}, fmt.Errorf("failed to create compensatory day: %w", err)
	}

	return day, nil
}

// GetByID implements compday.CompensatoryDayRepository.
func (r *compDayRepositoryImpl) GetByID(ctx context.Context, id string) (compday.CompensatoryDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, punch_id, earned_date, reason, days, expires_at, status, used_date, created_at, updated_at
		FROM compensatory_days
		WHERE id = $1
	`

	var day compday.CompensatoryDay
	err := q.QueryRow(ctx, query, id).Scan(
		&day.ID, &day.EmployeeID, &day.PunchID, &day.EarnedDate, &day.Reason, &day.Days,
		&day.ExpiresAt, &day.Status, &day.UsedDate, &day.CreatedAt, &day.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return compday.CompensatoryDay{}, compday.ErrCompDayNotFound
		}
		return compday.CompensatoryDay{}, fmt.Errorf("failed to get compensatory day by ID: %w", err)
	}

	return day, nil
}

// List implements compday.CompensatoryDayRepository.
func (r *compDayRepositoryImpl) List(ctx context.Context, filter compday.ListFilter) ([]compday.CompensatoryDay, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1 = 1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT id, employee_id, punch_id, earned_date, reason, days, expires_at, status, used_date, created_at, updated_at
		FROM compensatory_days
		WHERE %s
		ORDER BY earned_date DESC
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query compensatory days: %w", err)
	}
	defer rows.Close()

	var days []compday.CompensatoryDay
	for rows.Next() {
		var day compday.CompensatoryDay
		err := rows.Scan(
			&day.ID, &day.EmployeeID, &day.PunchID, &day.EarnedDate, &day.Reason, &day.Days,
			&day.ExpiresAt, &day.Status, &day.UsedDate, &day.CreatedAt, &day.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan compensatory day: %w", err)
		}
		days = append(days, day)
	}

	return days, nil
}

// MarkUsed implements compday.CompensatoryDayRepository.
func (r *compDayRepositoryImpl) MarkUsed(ctx context.Context, day compday.CompensatoryDay) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE compensatory_days
		SET status = $2, used_date = $3, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, day.ID, day.Status, day.UsedDate)
	if err != nil {
		return fmt.Errorf("failed to mark compensatory day used: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return compday.ErrCompDayNotFound
	}

	return nil
}
