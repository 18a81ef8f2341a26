package schedule

import (
	"context"
	"time"
)

// ScheduleService resolves expected working hours and manages shifts,
// assignments, special schedules and the attendance config.
type ScheduleService interface {
	// ResolveExpected returns the expected entry/exit for an employee on a
	// date. Priority: covering shift assignment (latest created wins), then
	// active special schedule, then global defaults. It never fails; broken
	// references and store errors fall through to the next source.
	ResolveExpected(ctx context.Context, employeeID string, date time.Time) ExpectedTimes

	// GetConfig returns the attendance config, seeded with defaults when the
	// singleton row is missing.
	GetConfig(ctx context.Context) Config
	UpdateConfig(ctx context.Context, req UpdateConfigRequest) (Config, error)

	CreateShift(ctx context.Context, req CreateShiftRequest) (Shift, error)
	UpdateShift(ctx context.Context, req UpdateShiftRequest) error
	DeactivateShift(ctx context.Context, id string) error
	ListShifts(ctx context.Context, activeOnly bool) ([]Shift, error)

	AssignShift(ctx context.Context, req AssignShiftRequest) (ShiftAssignment, error)
	ListAssignments(ctx context.Context, employeeID string) ([]ShiftAssignment, error)
	RemoveAssignment(ctx context.Context, id string) error

	SetSpecialSchedule(ctx context.Context, req SpecialScheduleRequest) (SpecialSchedule, error)
	ClearSpecialSchedule(ctx context.Context, id string) error
}
