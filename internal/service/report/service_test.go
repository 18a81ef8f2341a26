package report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallerhq/ops-backend-go/internal/domain/employee"
	"github.com/tallerhq/ops-backend-go/internal/domain/holiday"
	"github.com/tallerhq/ops-backend-go/internal/domain/leave"
	"github.com/tallerhq/ops-backend-go/internal/domain/overtime"
	"github.com/tallerhq/ops-backend-go/internal/domain/punch"
	"github.com/tallerhq/ops-backend-go/internal/domain/report"
	"github.com/tallerhq/ops-backend-go/internal/domain/timebank"
	"github.com/tallerhq/ops-backend-go/internal/domain/vacation"
)

type fakePunchRepo struct {
	punch.PunchRepository
	punches []punch.Punch
}

func (f *fakePunchRepo) ListByEmployeeAndRange(_ context.Context, employeeID string, from, to time.Time) ([]punch.Punch, error) {
	var out []punch.Punch
	for _, p := range f.punches {
		if p.EmployeeID == employeeID && !p.PunchedAt.Before(from) && p.PunchedAt.Before(to) {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeLeaveRepo struct {
	leave.RequestRepository
	leaves []leave.Request
}

func (f *fakeLeaveRepo) ListByEmployeeAndRange(_ context.Context, employeeID string, _, _ time.Time) ([]leave.Request, error) {
	var out []leave.Request
	for _, l := range f.leaves {
		if l.EmployeeID == employeeID {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeVacationRepo struct {
	vacation.RequestRepository
	requests []vacation.Request
}

func (f *fakeVacationRepo) ListByEmployeeYear(_ context.Context, employeeID string, year int) ([]vacation.Request, error) {
	var out []vacation.Request
	for _, r := range f.requests {
		if r.EmployeeID == employeeID && r.Year == year {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeEntryRepo struct {
	timebank.EntryRepository
	entries []timebank.Entry
}

func (f *fakeEntryRepo) ListByEmployee(_ context.Context, employeeID string, _ timebank.HistoryFilter) ([]timebank.Entry, error) {
	var out []timebank.Entry
	for _, e := range f.entries {
		if e.EmployeeID == employeeID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeRecordRepo struct {
	overtime.RecordRepository
	records []overtime.Record
}

func (f *fakeRecordRepo) List(_ context.Context, filter overtime.ListFilter) ([]overtime.Record, int64, error) {
	var out []overtime.Record
	for _, r := range f.records {
		if filter.EmployeeID != nil && r.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && string(r.Status) != *filter.Status {
			continue
		}
		out = append(out, r)
	}
	return out, int64(len(out)), nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

type fakeHolidayRepo struct {
	holiday.HolidayRepository
	holidays []holiday.Holiday
}

func (f *fakeHolidayRepo) List(_ context.Context, year int) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range f.holidays {
		if h.Date.Year() == year {
			out = append(out, h)
		}
	}
	return out, nil
}

type reportFixture struct {
	punches   *fakePunchRepo
	leaves    *fakeLeaveRepo
	vacations *fakeVacationRepo
	entries   *fakeEntryRepo
	records   *fakeRecordRepo
	employees *fakeEmployeeRepo
	holidays  *fakeHolidayRepo
}

func newReportFixture() *reportFixture {
	return &reportFixture{
		punches:   &fakePunchRepo{},
		leaves:    &fakeLeaveRepo{},
		vacations: &fakeVacationRepo{},
		entries:   &fakeEntryRepo{},
		records:   &fakeRecordRepo{},
		employees: &fakeEmployeeRepo{employees: []employee.Employee{{ID: "emp-1", FullName: "Ana Souza", IsActive: true}}},
		holidays:  &fakeHolidayRepo{},
	}
}

func (f *reportFixture) service() report.ReportService {
	return NewReportService(f.punches, f.leaves, f.vacations, f.entries, f.records, f.employees, f.holidays)
}

func day(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

func TestDayStatuses_ReducerPrecedence(t *testing.T) {
	f := newReportFixture()
	// Monday: worked. Tuesday: approved vacation. Wednesday: approved leave.
	// Thursday: holiday, no activity. Friday: nothing. Weekend: nothing.
	f.punches.punches = []punch.Punch{
		{ID: "p1", EmployeeID: "emp-1", Kind: punch.KindEntry, PunchedAt: day("2025-03-10").Add(8 * time.Hour)},
	}
	f.vacations.requests = []vacation.Request{
		{EmployeeID: "emp-1", Year: 2025, StartDate: day("2025-03-11"), EndDate: day("2025-03-11"), Status: vacation.StatusApproved},
	}
	f.leaves.leaves = []leave.Request{
		{EmployeeID: "emp-1", StartAt: day("2025-03-12").Add(9 * time.Hour), EndAt: day("2025-03-12").Add(12 * time.Hour), Status: leave.StatusApproved},
	}
	f.holidays.holidays = []holiday.Holiday{
		{ID: "h1", Date: day("2025-03-13"), Name: "Founders Day"},
	}

	resp, err := f.service().DayStatuses(context.Background(), "emp-1", day("2025-03-10"), day("2025-03-16"))
	require.NoError(t, err)

	require.Len(t, resp.Days, 4)
	assert.Equal(t, report.DayStatusEntry{Date: "2025-03-10", Status: report.StatusWorked}, resp.Days[0])
	assert.Equal(t, report.DayStatusEntry{Date: "2025-03-11", Status: report.StatusOnLeave}, resp.Days[1])
	assert.Equal(t, report.DayStatusEntry{Date: "2025-03-12", Status: report.StatusExcused}, resp.Days[2])
	assert.Equal(t, report.DayStatusEntry{Date: "2025-03-14", Status: report.StatusAbsent}, resp.Days[3])
}

func TestDayStatuses_PunchBeatsVacation(t *testing.T) {
	f := newReportFixture()
	f.punches.punches = []punch.Punch{
		{ID: "p1", EmployeeID: "emp-1", Kind: punch.KindEntry, PunchedAt: day("2025-03-11").Add(8 * time.Hour)},
	}
	f.vacations.requests = []vacation.Request{
		{EmployeeID: "emp-1", Year: 2025, StartDate: day("2025-03-10"), EndDate: day("2025-03-14"), Status: vacation.StatusApproved},
	}

	resp, err := f.service().DayStatuses(context.Background(), "emp-1", day("2025-03-11"), day("2025-03-11"))
	require.NoError(t, err)
	require.Len(t, resp.Days, 1)
	assert.Equal(t, report.StatusWorked, resp.Days[0].Status)
}

func TestDayStatuses_PendingLeaveExcuses(t *testing.T) {
	f := newReportFixture()
	f.leaves.leaves = []leave.Request{
		{EmployeeID: "emp-1", StartAt: day("2025-03-12").Add(9 * time.Hour), EndAt: day("2025-03-12").Add(12 * time.Hour), Status: leave.StatusPending},
	}

	resp, err := f.service().DayStatuses(context.Background(), "emp-1", day("2025-03-12"), day("2025-03-12"))
	require.NoError(t, err)
	require.Len(t, resp.Days, 1)
	assert.Equal(t, report.StatusExcused, resp.Days[0].Status)
}

func TestDayStatuses_RejectedLeaveDoesNotExcuse(t *testing.T) {
	f := newReportFixture()
	f.leaves.leaves = []leave.Request{
		{EmployeeID: "emp-1", StartAt: day("2025-03-12").Add(9 * time.Hour), EndAt: day("2025-03-12").Add(12 * time.Hour), Status: leave.StatusRejected},
	}

	resp, err := f.service().DayStatuses(context.Background(), "emp-1", day("2025-03-12"), day("2025-03-12"))
	require.NoError(t, err)
	require.Len(t, resp.Days, 1)
	assert.Equal(t, report.StatusAbsent, resp.Days[0].Status)
}

func TestDayStatuses_UnknownEmployee(t *testing.T) {
	f := newReportFixture()

	_, err := f.service().DayStatuses(context.Background(), "ghost", day("2025-03-10"), day("2025-03-14"))
	assert.Error(t, err)
}

func TestMonthlySummary_AggregatesRow(t *testing.T) {
	f := newReportFixture()
	f.punches.punches = []punch.Punch{
		{ID: "p1", EmployeeID: "emp-1", Kind: punch.KindEntry, PunchedAt: day("2025-03-10").Add(8 * time.Hour)},
		{ID: "p2", EmployeeID: "emp-1", Kind: punch.KindEntry, PunchedAt: day("2025-03-11").Add(8 * time.Hour)},
	}
	f.entries.entries = []timebank.Entry{
		{EmployeeID: "emp-1", Date: day("2025-03-10"), Kind: timebank.KindDebit, Minutes: 20, Origin: timebank.OriginLateArrival},
		{EmployeeID: "emp-1", Date: day("2025-03-11"), Kind: timebank.KindDebit, Minutes: 10, Origin: timebank.OriginEarlyDeparture},
		// The fake ignores the repository filter, like a drifted deployment
		// would; the day after the range end must still stay out.
		{EmployeeID: "emp-1", Date: day("2025-04-01"), Kind: timebank.KindDebit, Minutes: 35, Origin: timebank.OriginLateArrival},
	}
	f.records.records = []overtime.Record{
		{EmployeeID: "emp-1", Date: day("2025-03-10"), Status: overtime.StatusApproved, EquivalentHours: decimal.NewFromFloat(1.25)},
		{EmployeeID: "emp-1", Date: day("2025-03-11"), Status: overtime.StatusPending, EquivalentHours: decimal.NewFromFloat(2)},
	}

	summary, err := f.service().MonthlySummary(context.Background(), 2025, time.March)
	require.NoError(t, err)
	require.Len(t, summary.Rows, 1)

	row := summary.Rows[0]
	assert.Equal(t, "Ana Souza", row.EmployeeName)
	assert.Equal(t, 2, row.DaysWorked)
	// Early departure minutes stay out; only late arrivals count here.
	assert.Equal(t, 20, row.LateMinutes)
	// Pending overtime is not paid, so it is not summed.
	assert.Equal(t, "1.25", row.OvertimeHours)
}

func TestExportMonthlySummary_ProducesWorkbook(t *testing.T) {
	f := newReportFixture()

	data, err := f.service().ExportMonthlySummary(context.Background(), 2025, time.March)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	// XLSX files are zip archives.
	assert.True(t, bytes.HasPrefix(data, []byte("PK")))
}
