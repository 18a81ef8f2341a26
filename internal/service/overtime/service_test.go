package overtime

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallerhq/ops-backend-go/internal/domain/holiday"
	"github.com/tallerhq/ops-backend-go/internal/domain/overtime"
)

type fakeRecordRepo struct {
	records map[string]overtime.Record
	nextID  int
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{records: make(map[string]overtime.Record)}
}

func (f *fakeRecordRepo) Create(_ context.Context, record overtime.Record) (overtime.Record, error) {
	f.nextID++
	record.ID = fmt.Sprintf("ot-%d", f.nextID)
	f.records[record.ID] = record
	return record, nil
}

func (f *fakeRecordRepo) GetByID(_ context.Context, id string) (overtime.Record, error) {
	record, ok := f.records[id]
	if !ok {
		return overtime.Record{}, overtime.ErrOvertimeNotFound
	}
	return record, nil
}

func (f *fakeRecordRepo) List(_ context.Context, _ overtime.ListFilter) ([]overtime.Record, int64, error) {
	var out []overtime.Record
	for _, record := range f.records {
		out = append(out, record)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRecordRepo) UpdateStatus(_ context.Context, record overtime.Record) error {
	if _, ok := f.records[record.ID]; !ok {
		return overtime.ErrOvertimeNotFound
	}
	f.records[record.ID] = record
	return nil
}

type fakeHolidayRepo struct {
	holiday.HolidayRepository
	holidays map[string]holiday.Holiday
	findErr  error
}

func (f *fakeHolidayRepo) FindByDate(_ context.Context, date time.Time) (*holiday.Holiday, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if h, ok := f.holidays[date.Format("2006-01-02")]; ok {
		return &h, nil
	}
	return nil, nil
}

func TestCreateFromPunch_ClassifiesAndPersists(t *testing.T) {
	repo := newFakeRecordRepo()
	service := NewOvertimeService(repo, &fakeHolidayRepo{})

	record, err := service.CreateFromPunch(context.Background(), overtime.PunchOvertimeInput{
		EmployeeID:   "emp-1",
		PunchID:      "punch-1",
		Date:         "2025-03-11",
		ExpectedExit: "17:00",
		ActualExit:   "18:00",
	})
	require.NoError(t, err)

	assert.Equal(t, overtime.StatusPending, record.Status)
	assert.Equal(t, overtime.ClassDay, record.Classification)
	assert.True(t, record.RawHours.Equal(decimal.NewFromInt(1)))
	assert.True(t, record.EquivalentHours.Equal(decimal.NewFromFloat(1.25)))
	assert.Equal(t, "17:00", record.StartedAt)
	assert.Equal(t, "18:00", record.EndedAt)
}

func TestCreateFromPunch_UsesHolidayCalendar(t *testing.T) {
	repo := newFakeRecordRepo()
	service := NewOvertimeService(repo, &fakeHolidayRepo{holidays: map[string]holiday.Holiday{
		"2025-05-01": {ID: "h1", Date: mustDate(t, "2025-05-01"), Name: "Labor Day"},
	}})

	record, err := service.CreateFromPunch(context.Background(), overtime.PunchOvertimeInput{
		EmployeeID:   "emp-1",
		PunchID:      "punch-1",
		Date:         "2025-05-01",
		ExpectedExit: "17:00",
		ActualExit:   "18:00",
	})
	require.NoError(t, err)
	assert.Equal(t, overtime.ClassHoliday, record.Classification)
	assert.True(t, record.Multiplier.Equal(decimal.NewFromFloat(2.0)))
}

func TestCreateFromPunch_CalendarFailureClassifiesNonHoliday(t *testing.T) {
	repo := newFakeRecordRepo()
	service := NewOvertimeService(repo, &fakeHolidayRepo{findErr: assert.AnError})

	record, err := service.CreateFromPunch(context.Background(), overtime.PunchOvertimeInput{
		EmployeeID:   "emp-1",
		PunchID:      "punch-1",
		Date:         "2025-05-01", // a Thursday
		ExpectedExit: "17:00",
		ActualExit:   "18:00",
	})
	require.NoError(t, err)
	assert.Equal(t, overtime.ClassDay, record.Classification)
}

func TestCreateFromPunch_BadDate(t *testing.T) {
	service := NewOvertimeService(newFakeRecordRepo(), &fakeHolidayRepo{})

	_, err := service.CreateFromPunch(context.Background(), overtime.PunchOvertimeInput{
		EmployeeID:   "emp-1",
		PunchID:      "punch-1",
		Date:         "11/03/2025",
		ExpectedExit: "17:00",
		ActualExit:   "18:00",
	})
	assert.Error(t, err)
}

func createPendingRecord(t *testing.T, service overtime.OvertimeService) overtime.Record {
	t.Helper()
	record, err := service.CreateFromPunch(context.Background(), overtime.PunchOvertimeInput{
		EmployeeID:   "emp-1",
		PunchID:      "punch-1",
		Date:         "2025-03-11",
		ExpectedExit: "17:00",
		ActualExit:   "18:00",
	})
	require.NoError(t, err)
	return record
}

func TestApprove_SettlesPendingRecord(t *testing.T) {
	service := NewOvertimeService(newFakeRecordRepo(), &fakeHolidayRepo{})
	record := createPendingRecord(t, service)

	approved, err := service.Approve(context.Background(), overtime.ApproveRequest{ID: record.ID, ApproverID: "admin-1"})
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, "admin-1", *approved.ApprovedBy)
}

func TestReject_RequiresReason(t *testing.T) {
	service := NewOvertimeService(newFakeRecordRepo(), &fakeHolidayRepo{})
	record := createPendingRecord(t, service)

	_, err := service.Reject(context.Background(), overtime.RejectRequest{ID: record.ID, ApproverID: "admin-1"})
	assert.Error(t, err)

	rejected, err := service.Reject(context.Background(), overtime.RejectRequest{ID: record.ID, ApproverID: "admin-1", Reason: "not requested"})
	require.NoError(t, err)
	assert.Equal(t, "REJECTED", rejected.Status)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, "not requested", *rejected.RejectionReason)
}

func TestApprove_TerminalStatesStay(t *testing.T) {
	service := NewOvertimeService(newFakeRecordRepo(), &fakeHolidayRepo{})
	record := createPendingRecord(t, service)

	_, err := service.Approve(context.Background(), overtime.ApproveRequest{ID: record.ID, ApproverID: "admin-1"})
	require.NoError(t, err)

	_, err = service.Approve(context.Background(), overtime.ApproveRequest{ID: record.ID, ApproverID: "admin-2"})
	assert.ErrorIs(t, err, overtime.ErrOvertimeAlreadyProcessed)

	_, err = service.Reject(context.Background(), overtime.RejectRequest{ID: record.ID, ApproverID: "admin-2", Reason: "changed my mind"})
	assert.ErrorIs(t, err, overtime.ErrOvertimeAlreadyProcessed)
}

func TestApprove_UnknownRecord(t *testing.T) {
	service := NewOvertimeService(newFakeRecordRepo(), &fakeHolidayRepo{})

	_, err := service.Approve(context.Background(), overtime.ApproveRequest{ID: "missing", ApproverID: "admin-1"})
	assert.ErrorIs(t, err, overtime.ErrOvertimeNotFound)
}
