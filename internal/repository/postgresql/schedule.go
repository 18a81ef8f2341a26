package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tallerhq/ops-backend-go/internal/domain/schedule"
	"github.com/tallerhq/ops-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) schedule.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

// Create implements schedule.ShiftRepository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, shift schedule.Shift) (schedule.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (name, entry_time, exit_time, is_active)
		VALUES ($1, $2, $3, TRUE)
		RETURNING id, is_active, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		shift.Name,
		shift.EntryTime,
		shift.ExitTime,
	).Scan(&shift.ID, &shift.IsActive, &shift.CreatedAt, &shift.UpdatedAt)

	if err != nil {
		return schedule.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return shift, nil
}

// GetByID implements schedule.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, entry_time, exit_time, is_active, created_at, updated_at
		FROM shifts
		WHERE id = $1
	`

	var shift schedule.Shift
	err := q.QueryRow(ctx, query, id).Scan(
		&shift.ID, &shift.Name, &shift.EntryTime, &shift.ExitTime, &shift.IsActive,
		&shift.CreatedAt, &shift.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.Shift{}, schedule.ErrShiftNotFound
		}
		return schedule.Shift{}, fmt.Errorf("failed to get shift by ID: %w", err)
	}

	return shift, nil
}

// List implements schedule.ShiftRepository.
func (r *shiftRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]schedule.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, entry_time, exit_time, is_active, created_at, updated_at
		FROM shifts
	`
	if activeOnly {
		query += " WHERE is_active = TRUE"
	}
	query += " ORDER BY name ASC"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []schedule.Shift
	for rows.Next() {
		var shift schedule.Shift
		err := rows.Scan(
			&shift.ID, &shift.Name, &shift.EntryTime, &shift.ExitTime, &shift.IsActive,
			&shift.CreatedAt, &shift.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, shift)
	}

	return shifts, nil
}

// Update implements schedule.ShiftRepository.
func (r *shiftRepositoryImpl) Update(ctx context.Context, req schedule.UpdateShiftRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET name = COALESCE($2, name),
			entry_time = COALESCE($3, entry_time),
			exit_time = COALESCE($4, exit_time),
			is_active = COALESCE($5, is_active),
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, req.ID, req.Name, req.EntryTime, req.ExitTime, req.IsActive)
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrShiftNotFound
	}

	return nil
}

// Deactivate implements schedule.ShiftRepository.
func (r *shiftRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE shifts SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrShiftNotFound
	}

	return nil
}

type shiftAssignmentRepositoryImpl struct {
	db *database.DB
}

func NewShiftAssignmentRepository(db *database.DB) schedule.ShiftAssignmentRepository {
	return &shiftAssignmentRepositoryImpl{db: db}
}

// Create implements schedule.ShiftAssignmentRepository.
func (r *shiftAssignmentRepositoryImpl) Create(ctx context.Context, assignment schedule.ShiftAssignment) (schedule.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_assignments (employee_id, shift_id, start_date, end_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		assignment.EmployeeID,
		assignment.ShiftID,
		assignment.StartDate,
		assignment.EndDate,
	).Scan(&assignment.ID, &assignment.CreatedAt)

	if err != nil {
		return schedule.ShiftAssignment{}, fmt.Errorf("failed to create shift assignment: %w", err)
	}

	return assignment, nil
}

// FindCovering implements schedule.ShiftAssignmentRepository.
func (r *shiftAssignmentRepositoryImpl) FindCovering(ctx context.Context, employeeID string, date time.Time) ([]schedule.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, shift_id, start_date, end_date, created_at
		FROM shift_assignments
		WHERE employee_id = $1
		  AND start_date <= $2
		  AND end_date >= $2
		ORDER BY created_at DESC
	`

	return r.queryAssignments(ctx, q, query, employeeID, date.Format("2006-01-02"))
}

// ListByEmployee implements schedule.ShiftAssignmentRepository.
func (r *shiftAssignmentRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]schedule.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, shift_id, start_date, end_date, created_at
		FROM shift_assignments
		WHERE employee_id = $1
		ORDER BY start_date DESC
	`

	return r.queryAssignments(ctx, q, query, employeeID)
}

// Delete implements schedule.ShiftAssignmentRepository.
func (r *shiftAssignmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shift_assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrAssignmentNotFound
	}

	return nil
}

func (r *shiftAssignmentRepositoryImpl) queryAssignments(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]schedule.ShiftAssignment, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift assignments: %w", err)
	}
	defer rows.Close()

	var assignments []schedule.ShiftAssignment
	for rows.Next() {
		var assignment schedule.ShiftAssignment
		err := rows.Scan(
			&assignment.ID, &assignment.EmployeeID, &assignment.ShiftID,
			&assignment.StartDate, &assignment.EndDate, &assignment.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift assignment: %w", err)
		}
		assignments = append(assignments, assignment)
	}

	return assignments, nil
}

type specialScheduleRepositoryImpl struct {
	db *database.DB
}

func NewSpecialScheduleRepository(db *database.DB) schedule.SpecialScheduleRepository {
	return &specialScheduleRepositoryImpl{db: db}
}

// Create implements schedule.SpecialScheduleRepository.
func (r *specialScheduleRepositoryImpl) Create(ctx context.Context, special schedule.SpecialSchedule) (schedule.SpecialSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO special_schedules (employee_id, entry_time, exit_time, is_active)
		VALUES ($1, $2, $3, TRUE)
		RETURNING id, is_active, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		special.EmployeeID,
		special.EntryTime,
		special.ExitTime,
	).Scan(&special.ID, &special.IsActive, &special.CreatedAt, &special.UpdatedAt)

	if err != nil {
		return schedule.SpecialSchedule{}, fmt.Errorf("failed to create special schedule: %w", err)
	}

	return special, nil
}

// GetActiveByEmployee implements schedule.SpecialScheduleRepository.
func (r *specialScheduleRepositoryImpl) GetActiveByEmployee(ctx context.Context, employeeID string) (schedule.SpecialSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, entry_time, exit_time, is_active, created_at, updated_at
		FROM special_schedules
		WHERE employee_id = $1
		  AND is_active = TRUE
		ORDER BY created_at DESC
		LIMIT 1
	`

	var special schedule.SpecialSchedule
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&special.ID, &special.EmployeeID, &special.EntryTime, &special.ExitTime, &special.IsActive,
		&special.CreatedAt, &special.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.SpecialSchedule{}, schedule.ErrSpecialScheduleNotFound
		}
		return schedule.SpecialSchedule{}, fmt.Errorf("failed to get active special schedule: %w", err)
	}

	return special, nil
}

// Deactivate implements schedule.SpecialScheduleRepository.
func (r *specialScheduleRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE special_schedules SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate special schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrSpecialScheduleNotFound
	}

	return nil
}

type configRepositoryImpl struct {
	db *database.DB
}

func NewConfigRepository(db *database.DB) schedule.ConfigRepository {
	return &configRepositoryImpl{db: db}
}

// Get implements schedule.ConfigRepository.
func (r *configRepositoryImpl) Get(ctx context.Context) (schedule.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, default_entry, default_exit, tolerance_minutes, require_justification, updated_at
		FROM attendance_configs
		ORDER BY updated_at DESC
		LIMIT 1
	`

	var cfg schedule.Config
	err := q.QueryRow(ctx, query).Scan(
		&cfg.ID, &cfg.DefaultEntry, &cfg.DefaultExit, &cfg.ToleranceMinutes,
		&cfg.RequireJustification, &cfg.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.DefaultConfig(), nil
		}
		return schedule.Config{}, fmt.Errorf("failed to get attendance config: %w", err)
	}

	return cfg, nil
}

// Save implements schedule.ConfigRepository. Insert-or-update on the
// singleton row.
func (r *configRepositoryImpl) Save(ctx context.Context, cfg schedule.Config) (schedule.Config, error) {
	q := GetQuerier(ctx, r.db)

	if cfg.ID == "" {
		query := `
			INSERT INTO attendance_configs (default_entry, default_exit, tolerance_minutes, require_justification)
			VALUES ($1, $2, $3, $4)
			RETURNING id, updated_at
		`
		err := q.QueryRow(ctx, query,
			cfg.DefaultEntry, cfg.DefaultExit, cfg.ToleranceMinutes, cfg.RequireJustification,
		).Scan(&cfg.ID, &cfg.UpdatedAt)
		if err != nil {
			return schedule.Config{}, fmt.Errorf("failed to create attendance config: %w", err)
		}
		return cfg, nil
	}

	query := `
		UPDATE attendance_configs
		SET default_entry = $2, default_exit = $3, tolerance_minutes = $4, require_justification = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := q.QueryRow(ctx, query,
		cfg.ID, cfg.DefaultEntry, cfg.DefaultExit, cfg.ToleranceMinutes, cfg.RequireJustification,
	).Scan(&cfg.UpdatedAt)
	if err != nil {
		return schedule.Config{}, fmt.Errorf("failed to update attendance config: %w", err)
	}

	return cfg, nil
}
