package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tallerhq/ops-backend-go/internal/domain/vacation"
	"github.com/tallerhq/ops-backend-go/internal/pkg/database"
)

type vacationRequestRepositoryImpl struct {
	db *database.DB
}

func NewVacationRequestRepository(db *database.DB) vacation.RequestRepository {
	return &vacationRequestRepositoryImpl{db: db}
}

const vacationRequestColumns = `
	id, employee_id, year, start_date, end_date, business_days,
	status, reason, approved_by, approved_at, rejection_reason,
	created_at, updated_at
`

// Create implements vacation.RequestRepository.
func (r *vacationRequestRepositoryImpl) Create(ctx context.Context, req vacation.Request) (vacation.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO vacation_requests (
			employee_id, year, start_date, end_date, business_days, status, reason
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.EmployeeID,
		req.Year,
		req.StartDate,
		req.EndDate,
		req.BusinessDays,
		req.Status,
		req.Reason,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)

	if err != nil {
		return vacation.Request{}, fmt.Errorf("failed to create vacation request: %w", err)
	}

	return req, nil
}

// GetByID implements vacation.RequestRepository.
func (r *vacationRequestRepositoryImpl) GetByID(ctx context.Context, id string) (vacation.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + vacationRequestColumns + " FROM vacation_requests WHERE id = $1"

	var req vacation.Request
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.Year, &req.StartDate, &req.EndDate, &req.BusinessDays,
		&req.Status, &req.Reason, &req.ApprovedBy, &req.ApprovedAt, &req.RejectionReason,
		&req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return vacation.Request{}, vacation.ErrVacationNotFound
		}
		return vacation.Request{}, fmt.Errorf("failed to get vacation request by ID: %w", err)
	}

	return req, nil
}

// ListByEmployeeYear implements vacation.RequestRepository.
func (r *vacationRequestRepositoryImpl) ListByEmployeeYear(ctx context.Context, employeeID string, year int) ([]vacation.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + vacationRequestColumns + ` FROM vacation_requests
		WHERE employee_id = $1 AND year = $2
		ORDER BY start_date ASC`

	return r.queryRequests(ctx, q, query, employeeID, year)
}

// List implements vacation.RequestRepository.
func (r *vacationRequestRepositoryImpl) List(ctx context.Context, filter vacation.ListFilter) ([]vacation.Request, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1 = 1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Year != nil {
		baseWhere += fmt.Sprintf(" AND year = $%d", argIdx)
		args = append(args, *filter.Year)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	query := "SELECT " + vacationRequestColumns + " FROM vacation_requests WHERE " + baseWhere + " ORDER BY start_date DESC"

	return r.queryRequests(ctx, q, query, args...)
}

// UpdateStatus implements vacation.RequestRepository.
func (r *vacationRequestRepositoryImpl) UpdateStatus(ctx context.Context, req vacation.Request) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE vacation_requests
		SET status = $2, approved_by = $3, approved_at = $4, rejection_reason = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		req.ID,
		req.Status,
		req.ApprovedBy,
		req.ApprovedAt,
		req.RejectionReason,
	)
	if err != nil {
		return fmt.Errorf("failed to update vacation request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return vacation.ErrVacationNotFound
	}

	return nil
}

func (r *vacationRequestRepositoryImpl) queryRequests(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]vacation.Request, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query vacation requests: %w", err)
	}
	defer rows.Close()

	var requests []vacation.Request
	for rows.Next() {
		var req vacation.Request
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.Year, &req.StartDate, &req.EndDate, &req.BusinessDays,
			&req.Status, &req.Reason, &req.ApprovedBy, &req.ApprovedAt, &req.RejectionReason,
			&req.CreatedAt, &req.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vacation request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, nil
}

type vacationBalanceRepositoryImpl struct {
	db *database.DB
}

func NewVacationBalanceRepository(db *database.DB) vacation.BalanceRepository {
	return &vacationBalanceRepositoryImpl{db: db}
}

// GetByEmployeeYear implements vacation.BalanceRepository.
func (r *vacationBalanceRepositoryImpl) GetByEmployeeYear(ctx context.Context, employeeID string, year int) (*vacation.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, year, total_days, used_days, pending_days, available_days, updated_at
		FROM vacation_balances
		WHERE employee_id = $1 AND year = $2
	`

	var balance vacation.Balance
	err := q.QueryRow(ctx, query, employeeID, year).Scan(
		&balance.ID, &balance.EmployeeID, &balance.Year, &balance.TotalDays,
		&balance.UsedDays, &balance.PendingDays, &balance.AvailableDays, &balance.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get vacation balance: %w", err)
	}

	return &balance, nil
}

// Create implements vacation.BalanceRepository.
func (r *vacationBalanceRepositoryImpl) Create(ctx context.Context, balance vacation.Balance) (vacation.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO vacation_balances (
			employee_id, year, total_days, used_days, pending_days, available_days
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING id, updated_at
	`

	err := q.QueryRow(ctx, query,
		balance.EmployeeID,
		balance.Year,
		balance.TotalDays,
		balance.UsedDays,
		balance.PendingDays,
		balance.AvailableDays,
	).Scan(&balance.ID, &balance.UpdatedAt)

	if err != nil {
		return vacation.Balance{}, fmt.Errorf("failed to create vacation balance: %w", err)
	}

	return balance, nil
}

// Update implements vacation.BalanceRepository.
func (r *vacationBalanceRepositoryImpl) Update(ctx context.Context, balance vacation.Balance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE vacation_balances
		SET total_days = $3, used_days = $4, pending_days = $5, available_days = $6, updated_at = NOW()
		WHERE employee_id = $1 AND year = $2
	`

	tag, err := q.Exec(ctx, query,
		balance.EmployeeID,
		balance.Year,
		balance.TotalDays,
		balance.UsedDays,
		balance.PendingDays,
		balance.AvailableDays,
	)
	if err != nil {
		return fmt.Errorf("failed to update vacation balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("vacation balance not found for employee %s year %d", balance.EmployeeID, balance.Year)
	}

	return nil
}
