package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallerhq/ops-backend-go/internal/domain/schedule"
)

type fakeShiftRepo struct {
	schedule.ShiftRepository
	shifts map[string]schedule.Shift
}

func (f *fakeShiftRepo) GetByID(_ context.Context, id string) (schedule.Shift, error) {
	shift, ok := f.shifts[id]
	if !ok {
		return schedule.Shift{}, schedule.ErrShiftNotFound
	}
	return shift, nil
}

type fakeAssignmentRepo struct {
	schedule.ShiftAssignmentRepository
	covering []schedule.ShiftAssignment
}

func (f *fakeAssignmentRepo) FindCovering(_ context.Context, _ string, _ time.Time) ([]schedule.ShiftAssignment, error) {
	return f.covering, nil
}

type fakeSpecialRepo struct {
	schedule.SpecialScheduleRepository
	special *schedule.SpecialSchedule
}

func (f *fakeSpecialRepo) GetActiveByEmployee(_ context.Context, _ string) (schedule.SpecialSchedule, error) {
	if f.special == nil {
		return schedule.SpecialSchedule{}, schedule.ErrSpecialScheduleNotFound
	}
	return *f.special, nil
}

type fakeConfigRepo struct {
	schedule.ConfigRepository
	cfg schedule.Config
}

func (f *fakeConfigRepo) Get(_ context.Context) (schedule.Config, error) {
	return f.cfg, nil
}

func newResolver(shifts map[string]schedule.Shift, covering []schedule.ShiftAssignment, special *schedule.SpecialSchedule) schedule.ScheduleService {
	return NewScheduleService(
		&fakeShiftRepo{shifts: shifts},
		&fakeAssignmentRepo{covering: covering},
		&fakeSpecialRepo{special: special},
		&fakeConfigRepo{cfg: schedule.Config{DefaultEntry: "08:00", DefaultExit: "17:00", ToleranceMinutes: 15}},
	)
}

func TestResolveExpected_AssignmentWins(t *testing.T) {
	shifts := map[string]schedule.Shift{
		"shift-1": {ID: "shift-1", Name: "Morning", EntryTime: "06:00", ExitTime: "14:00", IsActive: true},
	}
	covering := []schedule.ShiftAssignment{{ID: "a-1", ShiftID: "shift-1"}}
	special := &schedule.SpecialSchedule{ID: "sp-1", EntryTime: "10:00", ExitTime: "19:00", IsActive: true}

	service := newResolver(shifts, covering, special)
	expected := service.ResolveExpected(context.Background(), "emp-1", time.Now())

	assert.Equal(t, "06:00", expected.EntryTime)
	assert.Equal(t, "14:00", expected.ExitTime)
	assert.Equal(t, schedule.SourceAssignment, expected.Source)
}

func TestResolveExpected_NewestCoveringAssignmentWins(t *testing.T) {
	shifts := map[string]schedule.Shift{
		"shift-new": {ID: "shift-new", EntryTime: "07:00", ExitTime: "15:00", IsActive: true},
		"shift-old": {ID: "shift-old", EntryTime: "09:00", ExitTime: "18:00", IsActive: true},
	}
	// FindCovering returns newest first.
	covering := []schedule.ShiftAssignment{
		{ID: "a-new", ShiftID: "shift-new"},
		{ID: "a-old", ShiftID: "shift-old"},
	}

	service := newResolver(shifts, covering, nil)
	expected := service.ResolveExpected(context.Background(), "emp-1", time.Now())

	assert.Equal(t, "07:00", expected.EntryTime)
	assert.Equal(t, schedule.SourceAssignment, expected.Source)
}

func TestResolveExpected_DanglingShiftFallsThrough(t *testing.T) {
	covering := []schedule.ShiftAssignment{{ID: "a-1", ShiftID: "gone"}}
	special := &schedule.SpecialSchedule{ID: "sp-1", EntryTime: "10:00", ExitTime: "19:00", IsActive: true}

	service := newResolver(map[string]schedule.Shift{}, covering, special)
	expected := service.ResolveExpected(context.Background(), "emp-1", time.Now())

	assert.Equal(t, "10:00", expected.EntryTime)
	assert.Equal(t, schedule.SourceSpecial, expected.Source)
}

func TestResolveExpected_InactiveShiftFallsThrough(t *testing.T) {
	shifts := map[string]schedule.Shift{
		"shift-1": {ID: "shift-1", EntryTime: "06:00", ExitTime: "14:00", IsActive: false},
	}
	covering := []schedule.ShiftAssignment{{ID: "a-1", ShiftID: "shift-1"}}

	service := newResolver(shifts, covering, nil)
	expected := service.ResolveExpected(context.Background(), "emp-1", time.Now())

	assert.Equal(t, schedule.SourceDefault, expected.Source)
	assert.Equal(t, "08:00", expected.EntryTime)
	assert.Equal(t, "17:00", expected.ExitTime)
}

func TestResolveExpected_DefaultsWhenNothingConfigured(t *testing.T) {
	service := newResolver(map[string]schedule.Shift{}, nil, nil)
	expected := service.ResolveExpected(context.Background(), "emp-1", time.Now())

	assert.Equal(t, schedule.SourceDefault, expected.Source)
	assert.Equal(t, "08:00", expected.EntryTime)
}

func TestGetConfig_FallsBackToBuiltins(t *testing.T) {
	service := NewScheduleService(
		&fakeShiftRepo{},
		&fakeAssignmentRepo{},
		&fakeSpecialRepo{},
		&failingConfigRepo{},
	)

	cfg := service.GetConfig(context.Background())
	assert.Equal(t, schedule.FallbackEntry, cfg.DefaultEntry)
	assert.Equal(t, schedule.FallbackExit, cfg.DefaultExit)
	assert.Equal(t, schedule.FallbackTolerance, cfg.ToleranceMinutes)
}

type failingConfigRepo struct {
	schedule.ConfigRepository
}

func (failingConfigRepo) Get(_ context.Context) (schedule.Config, error) {
	return schedule.Config{}, assert.AnError
}

func TestCreateShift_ValidatesTimes(t *testing.T) {
	service := newResolver(map[string]schedule.Shift{}, nil, nil)

	_, err := service.CreateShift(context.Background(), schedule.CreateShiftRequest{
		Name:      "Broken",
		EntryTime: "25:00",
		ExitTime:  "17:00",
	})
	require.Error(t, err)
}

func TestAssignShift_UnknownShift(t *testing.T) {
	service := newResolver(map[string]schedule.Shift{}, nil, nil)

	_, err := service.AssignShift(context.Background(), schedule.AssignShiftRequest{
		EmployeeID: "emp-1",
		ShiftID:    "gone",
		StartDate:  "2025-03-01",
		EndDate:    "2025-03-31",
	})
	assert.ErrorIs(t, err, schedule.ErrShiftNotFound)
}
