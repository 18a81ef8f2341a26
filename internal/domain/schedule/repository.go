package schedule

import (
	"context"
	"time"
)

type ShiftRepository interface {
	Create(ctx context.Context, shift Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	List(ctx context.Context, activeOnly bool) ([]Shift, error)
	Update(ctx context.Context, req UpdateShiftRequest) error
	// Deactivate soft-deletes a shift; assignments referencing it remain.
	Deactivate(ctx context.Context, id string) error
}

type ShiftAssignmentRepository interface {
	Create(ctx context.Context, assignment ShiftAssignment) (ShiftAssignment, error)
	// FindCovering returns assignments whose [start, end] range contains date,
	// newest created_at first.
	FindCovering(ctx context.Context, employeeID string, date time.Time) ([]ShiftAssignment, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]ShiftAssignment, error)
	Delete(ctx context.Context, id string) error
}

type SpecialScheduleRepository interface {
	Create(ctx context.Context, special SpecialSchedule) (SpecialSchedule, error)
	// GetActiveByEmployee returns the active override for the employee, or
	// ErrSpecialScheduleNotFound.
	GetActiveByEmployee(ctx context.Context, employeeID string) (SpecialSchedule, error)
	Deactivate(ctx context.Context, id string) error
}

type ConfigRepository interface {
	// Get returns the singleton config, or the built-in defaults when no row
	// has ever been saved. It does not fail on an empty table.
	Get(ctx context.Context) (Config, error)
	Save(ctx context.Context, cfg Config) (Config, error)
}
