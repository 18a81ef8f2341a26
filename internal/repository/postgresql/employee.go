package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tallerhq/ops-backend-go/internal/domain/employee"
	"github.com/tallerhq/ops-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, is_active, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.FullName, &emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return emp, nil
}

// ListActive implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, is_active, created_at, updated_at
		FROM employees
		WHERE is_active = TRUE
		ORDER BY full_name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(&emp.ID, &emp.FullName, &emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, nil
}
