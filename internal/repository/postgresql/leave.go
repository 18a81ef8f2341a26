package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tallerhq/ops-backend-go/internal/domain/leave"
	"github.com/tallerhq/ops-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.RequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `
	id, employee_id, type, subtype, start_at, end_at, reason,
	attachment_url, status, approved_by, approved_at, comments,
	created_at, updated_at
`

// Create implements leave.RequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			employee_id, type, subtype, start_at, end_at, reason, attachment_url, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.EmployeeID,
		req.Type,
		req.Subtype,
		req.StartAt,
		req.EndAt,
		req.Reason,
		req.AttachmentURL,
		req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)

	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// GetByID implements leave.RequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + leaveRequestColumns + " FROM leave_requests WHERE id = $1"

	var req leave.Request
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.Type, &req.Subtype, &req.StartAt, &req.EndAt, &req.Reason,
		&req.AttachmentURL, &req.Status, &req.ApprovedBy, &req.ApprovedAt, &req.Comments,
		&req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Request{}, leave.ErrLeaveNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}

	return req, nil
}

// List implements leave.RequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.ListFilter) ([]leave.Request, error) {
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
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND end_at::date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND start_at::date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	query := "SELECT " + leaveRequestColumns + " FROM leave_requests WHERE " + baseWhere + " ORDER BY start_at DESC"

	return r.queryRequests(ctx, q, query, args...)
}

// ListByEmployeeAndRange implements leave.RequestRepository.
func (r *leaveRequestRepositoryImpl) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + leaveRequestColumns + ` FROM leave_requests
		WHERE employee_id = $1
		  AND start_at::date <= $2
		  AND end_at::date >= $3
		ORDER BY start_at ASC`

	return r.queryRequests(ctx, q, query, employeeID, to.Format("2006-01-02"), from.Format("2006-01-02"))
}

// UpdateStatus implements leave.RequestRepository.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, req leave.Request) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, approved_by = $3, approved_at = $4, comments = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		req.ID,
		req.Status,
		req.ApprovedBy,
		req.ApprovedAt,
		req.Comments,
	)
	if err != nil {
		return fmt.Errorf("failed to update leave request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}

	return nil
}

func (r *leaveRequestRepositoryImpl) queryRequests(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]leave.Request, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		var req leave.Request
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.Type, &req.Subtype, &req.StartAt, &req.EndAt, &req.Reason,
			&req.AttachmentURL, &req.Status, &req.ApprovedBy, &req.ApprovedAt, &req.Comments,
			&req.CreatedAt, &req.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, nil
}
