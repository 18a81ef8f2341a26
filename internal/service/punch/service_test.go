package punch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallerhq/ops-backend-go/internal/domain/compday"
	"github.com/tallerhq/ops-backend-go/internal/domain/employee"
	"github.com/tallerhq/ops-backend-go/internal/domain/overtime"
	"github.com/tallerhq/ops-backend-go/internal/domain/punch"
	"github.com/tallerhq/ops-backend-go/internal/domain/schedule"
	"github.com/tallerhq/ops-backend-go/internal/domain/timebank"
)

type fakePunchRepo struct {
	punch.PunchRepository
	created     []punch.Punch
	createErr   error
	tokenExists bool
}

func (f *fakePunchRepo) Create(_ context.Context, p punch.Punch) (punch.Punch, error) {
	if f.createErr != nil {
		return punch.Punch{}, f.createErr
	}
	p.ID = "punch-1"
	f.created = append(f.created, p)
	return p, nil
}

func (f *fakePunchRepo) ExistsByClientToken(_ context.Context, _ string, _ time.Time, _ punch.Kind, _ string) (bool, error) {
	return f.tokenExists, nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	missing bool
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	if f.missing {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return employee.Employee{ID: id, FullName: "Ana Souza", IsActive: true}, nil
}

type fakeScheduleService struct {
	schedule.ScheduleService
	expected  schedule.ExpectedTimes
	tolerance int
}

func (f *fakeScheduleService) ResolveExpected(_ context.Context, _ string, _ time.Time) schedule.ExpectedTimes {
	return f.expected
}

func (f *fakeScheduleService) GetConfig(_ context.Context) schedule.Config {
	cfg := schedule.DefaultConfig()
	cfg.ToleranceMinutes = f.tolerance
	return cfg
}

type fakeTimeBankService struct {
	timebank.TimeBankService
	appended  []timebank.Entry
	appendErr error
}

func (f *fakeTimeBankService) Append(_ context.Context, entry timebank.Entry) (timebank.Entry, error) {
	if f.appendErr != nil {
		return timebank.Entry{}, f.appendErr
	}
	f.appended = append(f.appended, entry)
	return entry, nil
}

type fakeOvertimeService struct {
	overtime.OvertimeService
	inputs         []overtime.PunchOvertimeInput
	classification overtime.Classification
	createErr      error
}

func (f *fakeOvertimeService) CreateFromPunch(_ context.Context, input overtime.PunchOvertimeInput) (overtime.Record, error) {
	if f.createErr != nil {
		return overtime.Record{}, f.createErr
	}
	f.inputs = append(f.inputs, input)
	return overtime.Record{ID: "ot-1", Classification: f.classification}, nil
}

type fakeCompDayService struct {
	compday.CompDayService
	issued int
}

func (f *fakeCompDayService) Issue(_ context.Context, _, _ string, _ time.Time, _ string, _ decimal.Decimal) (compday.CompensatoryDay, error) {
	f.issued++
	return compday.CompensatoryDay{ID: "cd-1"}, nil
}

type punchTestEnv struct {
	repo     *fakePunchRepo
	timeBank *fakeTimeBankService
	overtime *fakeOvertimeService
	compDay  *fakeCompDayService
	service  punch.PunchService
}

func newPunchTestEnv(expected schedule.ExpectedTimes, tolerance int, class overtime.Classification) *punchTestEnv {
	env := &punchTestEnv{
		repo:     &fakePunchRepo{},
		timeBank: &fakeTimeBankService{},
		overtime: &fakeOvertimeService{classification: class},
		compDay:  &fakeCompDayService{},
	}
	env.service = NewPunchService(
		env.repo,
		&fakeEmployeeRepo{},
		&fakeScheduleService{expected: expected, tolerance: tolerance},
		env.timeBank,
		env.overtime,
		env.compDay,
	)
	return env
}

func punchAt(ts string) *string {
	return &ts
}

func TestRecordPunch_LateArrivalDebitsFullLateness(t *testing.T) {
	env := newPunchTestEnv(schedule.ExpectedTimes{EntryTime: "08:00", ExitTime: "17:00"}, 15, overtime.ClassDay)

	// Monday 08:20: 20 minutes late against a 15 minute grace.
	resp, err := env.service.RecordPunch(context.Background(), punch.RecordPunchRequest{
		EmployeeID: "emp-1",
		Kind:       "ENTRY",
		PunchedAt:  punchAt("2025-03-10T08:20:00Z"),
	})
	require.NoError(t, err)
	assert.Equal(t, "ENTRY", resp.Kind)

	require.Len(t, env.timeBank.appended, 1)
	entry := env.timeBank.appended[0]
	assert.Equal(t, timebank.KindDebit, entry.Kind)
	assert.Equal(t, 20, entry.Minutes)
	assert.Equal(t, timebank.OriginLateArrival, entry.Origin)
	require.NotNil(t, entry.PunchID)
	assert.Equal(t, "punch-1", *entry.PunchID)
}

func TestRecordPunch_ArrivalWithinToleranceLeavesLedgerAlone(t *testing.T) {
	env := newPunchTestEnv(schedule.ExpectedTimes{EntryTime: "08:00", ExitTime: "17:00"}, 15, overtime.ClassDay)

	_, err := env.service.RecordPunch(context.Background(), punch.RecordPunchRequest{
		EmployeeID: "emp-1",
		Kind:       "ENTRY",
		PunchedAt:  punchAt("2025-03-10T08:14:00Z"),
	})
	require.NoError(t, err)
	assert.Empty(t, env.timeBank.appended)
}

func TestRecordPunch_EarlyDepartureDebitsMissingMinutes(t *testing.T) {
	env := newPunchTestEnv(schedule.ExpectedTimes{EntryTime: "08:00", ExitTime: "17:00"}, 15, overtime.ClassDay)

	_, err := env.service.RecordPunch(context.Background(), punch.RecordPunchRequest{
		EmployeeID: "emp-1",
		Kind:       "EXIT",
		PunchedAt:  punchAt("2025-03-10T16:20:00Z"),
	})
	require.NoError(t, err)

	require.Len(t, env.timeBank.appended, 1)
	entry := env.timeBank.appended[0]
	assert.Equal(t, timebank.KindDebit, entry.Kind)
	assert.Equal(t, 40, entry.Minutes)
	assert.Equal(t, timebank.OriginEarlyDeparture, entry.Origin)
	assert.Empty(t, env.overtime.inputs)
}

func TestRecordPunch_LateExitOpensOvertime(t *testing.T) {
	env := newPunchTestEnv(schedule.ExpectedTimes{EntryTime: "08:00", ExitTime: "17:00"}, 15, overtime.ClassDay)

	_, err := env.service.RecordPunch(context.Background(), punch.RecordPunchRequest{
		EmployeeID: "emp-1",
		Kind:       "EXIT",
		PunchedAt:  punchAt("2025-03-10T17:45:00Z"),
	})
	require.NoError(t, err)

	require.Len(t, env.overtime.inputs, 1)
	input := env.overtime.inputs[0]
	assert.Equal(t, "2025-03-10", input.Date)
	assert.Equal(t, "17:00", input.ExpectedExit)
	assert.Equal(t, "17:45", input.ActualExit)
	assert.Equal(t, 0, env.compDay.issued)
}

func TestRecordPunch_ExitBelowThresholdIgnored(t *testing.T) {
	env := newPunchTestEnv(schedule.ExpectedTimes{EntryTime: "08:00", ExitTime: "17:00"}, 15, overtime.ClassDay)

	// 25 minutes over is under the 30 minute overtime floor.
	_, err := env.service.RecordPunch(context.Background(), punch.RecordPunchRequest{
		EmployeeID: "emp-1",
		Kind:       "EXIT",
		PunchedAt:  punchAt("2025-03-10T17:25:00Z"),
	})
	require.NoError(t, err)
	assert.Empty(t, env.overtime.inputs)
	assert.Empty(t, env.timeBank.appended)
}

func TestRecordPunch_SundayOvertimeIssuesCompDay(t *testing.T) {
	env := newPunchTestEnv(schedule.ExpectedTimes{EntryTime: "08:00", ExitTime: "17:00"}, 15, overtime.ClassSunday)

	_, err := env.service.RecordPunch(context.Background(), punch.RecordPunchRequest{
		EmployeeID: "emp-1",
		Kind:       "EXIT",
		PunchedAt:  punchAt("2025-03-09T18:00:00Z"),
	})
	require.NoError(t, err)

	require.Len(t, env.overtime.inputs, 1)
	assert.Equal(t, 1, env.compDay.issued)
}

func TestRecordPunch_SideEffectFailureDoesNotFailPunch(t *testing.T) {
	env := newPunchTestEnv(schedule.ExpectedTimes{EntryTime: "08:00", ExitTime: "17:00"}, 15, overtime.ClassDay)
	env.timeBank.appendErr = errors.New("ledger down")

	resp, err := env.service.RecordPunch(context.Background(), punch.RecordPunchRequest{
		EmployeeID: "emp-1",
		Kind:       "ENTRY",
		PunchedAt:  punchAt("2025-03-10T09:00:00Z"),
	})
	require.NoError(t, err)
	assert.Equal(t, "punch-1", resp.ID)
	require.Len(t, env.repo.created, 1)
}

func TestRecordPunch_DuplicateClientToken(t *testing.T) {
	env := newPunchTestEnv(schedule.ExpectedTimes{EntryTime: "08:00", ExitTime: "17:00"}, 15, overtime.ClassDay)
	env.repo.tokenExists = true

	token := "tok-123"
	_, err := env.service.RecordPunch(context.Background(), punch.RecordPunchRequest{
		EmployeeID:  "emp-1",
		Kind:        "ENTRY",
		PunchedAt:   punchAt("2025-03-10T08:00:00Z"),
		ClientToken: &token,
	})
	assert.ErrorIs(t, err, punch.ErrDuplicatePunch)
	assert.Empty(t, env.repo.created)
}

func TestRecordPunch_UnknownEmployee(t *testing.T) {
	service := NewPunchService(
		&fakePunchRepo{},
		&fakeEmployeeRepo{missing: true},
		&fakeScheduleService{},
		&fakeTimeBankService{},
		&fakeOvertimeService{},
		&fakeCompDayService{},
	)

	_, err := service.RecordPunch(context.Background(), punch.RecordPunchRequest{
		EmployeeID: "ghost",
		Kind:       "ENTRY",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestRecordPunch_ValidationRejectsBadKind(t *testing.T) {
	env := newPunchTestEnv(schedule.ExpectedTimes{EntryTime: "08:00", ExitTime: "17:00"}, 15, overtime.ClassDay)

	_, err := env.service.RecordPunch(context.Background(), punch.RecordPunchRequest{
		EmployeeID: "emp-1",
		Kind:       "LUNCH",
	})
	assert.Error(t, err)
	assert.Empty(t, env.repo.created)
}
