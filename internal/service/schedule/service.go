package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tallerhq/ops-backend-go/internal/domain/schedule"
)

type ScheduleServiceImpl struct {
	schedule.ShiftRepository
	schedule.ShiftAssignmentRepository
	schedule.SpecialScheduleRepository
	schedule.ConfigRepository
}

func NewScheduleService(
	shiftRepo schedule.ShiftRepository,
	assignmentRepo schedule.ShiftAssignmentRepository,
	specialRepo schedule.SpecialScheduleRepository,
	configRepo schedule.ConfigRepository,
) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		ShiftRepository:           shiftRepo,
		ShiftAssignmentRepository: assignmentRepo,
		SpecialScheduleRepository: specialRepo,
		ConfigRepository:          configRepo,
	}
}

// ResolveExpected implements schedule.ScheduleService.
//
// Resolution order: covering shift assignment (newest created_at first, so
// overlapping assignments settle deterministically), then the employee's
// active special schedule, then the global config. A dangling or inactive
// shift reference falls through to the next candidate instead of failing.
func (s *ScheduleServiceImpl) ResolveExpected(ctx context.Context, employeeID string, date time.Time) schedule.ExpectedTimes {
	assignments, err := s.ShiftAssignmentRepository.FindCovering(ctx, employeeID, date)
	if err != nil {
		slog.Warn("shift assignment lookup failed, falling through", "employee_id", employeeID, "error", err)
	}
	for _, assignment := range assignments {
		shift, err := s.ShiftRepository.GetByID(ctx, assignment.ShiftID)
		if err != nil {
			if !errors.Is(err, schedule.ErrShiftNotFound) {
				slog.Warn("shift lookup failed, falling through", "shift_id", assignment.ShiftID, "error", err)
			}
			continue
		}
		if !shift.IsActive {
			continue
		}
		return schedule.ExpectedTimes{
			EntryTime: shift.EntryTime,
			ExitTime:  shift.ExitTime,
			Source:    schedule.SourceAssignment,
		}
	}

	special, err := s.SpecialScheduleRepository.GetActiveByEmployee(ctx, employeeID)
	if err == nil {
		return schedule.ExpectedTimes{
			EntryTime: special.EntryTime,
			ExitTime:  special.ExitTime,
			Source:    schedule.SourceSpecial,
		}
	}
	if !errors.Is(err, schedule.ErrSpecialScheduleNotFound) {
		slog.Warn("special schedule lookup failed, falling through", "employee_id", employeeID, "error", err)
	}

	cfg := s.GetConfig(ctx)
	return schedule.ExpectedTimes{
		EntryTime: cfg.DefaultEntry,
		ExitTime:  cfg.DefaultExit,
		Source:    schedule.SourceDefault,
	}
}

// GetConfig implements schedule.ScheduleService. The built-in defaults back
// every failure mode, so callers always get usable times.
func (s *ScheduleServiceImpl) GetConfig(ctx context.Context) schedule.Config {
	cfg, err := s.ConfigRepository.Get(ctx)
	if err != nil {
		slog.Warn("attendance config lookup failed, using defaults", "error", err)
		return schedule.DefaultConfig()
	}
	return cfg
}

// UpdateConfig implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) UpdateConfig(ctx context.Context, req schedule.UpdateConfigRequest) (schedule.Config, error) {
	if err := req.Validate(); err != nil {
		return schedule.Config{}, err
	}

	cfg := s.GetConfig(ctx)
	if req.DefaultEntry != nil {
		cfg.DefaultEntry = *req.DefaultEntry
	}
	if req.DefaultExit != nil {
		cfg.DefaultExit = *req.DefaultExit
	}
	if req.ToleranceMinutes != nil {
		cfg.ToleranceMinutes = *req.ToleranceMinutes
	}
	if req.RequireJustification != nil {
		cfg.RequireJustification = *req.RequireJustification
	}

	saved, err := s.ConfigRepository.Save(ctx, cfg)
	if err != nil {
		return schedule.Config{}, fmt.Errorf("failed to save attendance config: %w", err)
	}
	return saved, nil
}

// CreateShift implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) CreateShift(ctx context.Context, req schedule.CreateShiftRequest) (schedule.Shift, error) {
	if err := req.Validate(); err != nil {
		return schedule.Shift{}, err
	}

	created, err := s.ShiftRepository.Create(ctx, schedule.Shift{
		Name:      req.Name,
		EntryTime: req.EntryTime,
		ExitTime:  req.ExitTime,
		IsActive:  true,
	})
	if err != nil {
		return schedule.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}
	return created, nil
}

// UpdateShift implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) UpdateShift(ctx context.Context, req schedule.UpdateShiftRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.ShiftRepository.Update(ctx, req); err != nil {
		if errors.Is(err, schedule.ErrShiftNotFound) {
			return schedule.ErrShiftNotFound
		}
		return fmt.Errorf("failed to update shift: %w", err)
	}
	return nil
}

// DeactivateShift implements schedule.ScheduleService. Shifts are never hard
// deleted so historical assignments keep resolving.
func (s *ScheduleServiceImpl) DeactivateShift(ctx context.Context, id string) error {
	if err := s.ShiftRepository.Deactivate(ctx, id); err != nil {
		if errors.Is(err, schedule.ErrShiftNotFound) {
			return schedule.ErrShiftNotFound
		}
		return fmt.Errorf("failed to deactivate shift: %w", err)
	}
	return nil
}

// ListShifts implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ListShifts(ctx context.Context, activeOnly bool) ([]schedule.Shift, error) {
	shifts, err := s.ShiftRepository.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	return shifts, nil
}

// AssignShift implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) AssignShift(ctx context.Context, req schedule.AssignShiftRequest) (schedule.ShiftAssignment, error) {
	if err := req.Validate(); err != nil {
		return schedule.ShiftAssignment{}, err
	}

	if _, err := s.ShiftRepository.GetByID(ctx, req.ShiftID); err != nil {
		if errors.Is(err, schedule.ErrShiftNotFound) {
			return schedule.ShiftAssignment{}, schedule.ErrShiftNotFound
		}
		return schedule.ShiftAssignment{}, fmt.Errorf("failed to get shift: %w", err)
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	created, err := s.ShiftAssignmentRepository.Create(ctx, schedule.ShiftAssignment{
		EmployeeID: req.EmployeeID,
		ShiftID:    req.ShiftID,
		StartDate:  startDate,
		EndDate:    endDate,
	})
	if err != nil {
		return schedule.ShiftAssignment{}, fmt.Errorf("failed to create shift assignment: %w", err)
	}
	return created, nil
}

// ListAssignments implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ListAssignments(ctx context.Context, employeeID string) ([]schedule.ShiftAssignment, error) {
	assignments, err := s.ShiftAssignmentRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift assignments: %w", err)
	}
	return assignments, nil
}

// RemoveAssignment implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) RemoveAssignment(ctx context.Context, id string) error {
	if err := s.ShiftAssignmentRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, schedule.ErrAssignmentNotFound) {
			return schedule.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to delete shift assignment: %w", err)
	}
	return nil
}

// SetSpecialSchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) SetSpecialSchedule(ctx context.Context, req schedule.SpecialScheduleRequest) (schedule.SpecialSchedule, error) {
	if err := req.Validate(); err != nil {
		return schedule.SpecialSchedule{}, err
	}

	// An employee carries at most one active override; retire the old one.
	if existing, err := s.SpecialScheduleRepository.GetActiveByEmployee(ctx, req.EmployeeID); err == nil {
		if err := s.SpecialScheduleRepository.Deactivate(ctx, existing.ID); err != nil {
			return schedule.SpecialSchedule{}, fmt.Errorf("failed to retire previous special schedule: %w", err)
		}
	}

	created, err := s.SpecialScheduleRepository.Create(ctx, schedule.SpecialSchedule{
		EmployeeID: req.EmployeeID,
		EntryTime:  req.EntryTime,
		ExitTime:   req.ExitTime,
		IsActive:   true,
	})
	if err != nil {
		return schedule.SpecialSchedule{}, fmt.Errorf("failed to create special schedule: %w", err)
	}
	return created, nil
}

// ClearSpecialSchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ClearSpecialSchedule(ctx context.Context, id string) error {
	if err := s.SpecialScheduleRepository.Deactivate(ctx, id); err != nil {
		if errors.Is(err, schedule.ErrSpecialScheduleNotFound) {
			return schedule.ErrSpecialScheduleNotFound
		}
		return fmt.Errorf("failed to deactivate special schedule: %w", err)
	}
	return nil
}
