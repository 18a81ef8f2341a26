package postgresql

import (
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallerhq/ops-backend-go/internal/domain/overtime"
	"github.com/tallerhq/ops-backend-go/internal/domain/punch"
	"github.com/tallerhq/ops-backend-go/internal/domain/timebank"
)

func strPtr(s string) *string { return &s }

func mustDay(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return d
}

func TestIsSchemaDrift(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"undefined column", &pgconn.PgError{Code: "42703"}, true},
		{"undefined table", &pgconn.PgError{Code: "42P01"}, true},
		{"undefined object", &pgconn.PgError{Code: "42704"}, true},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"plain error", errors.New("connection refused"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isSchemaDrift(tt.err))
		})
	}
}

func TestNarrowTimeBankEntries_ReappliesFilter(t *testing.T) {
	// The baseline fetch returns the employee's full history; every filter
	// field still has to hold on what goes back to the caller.
	entries := []timebank.Entry{
		{ID: "e1", Date: mustDay(t, "2025-03-01"), Origin: timebank.OriginLateArrival, Minutes: 10, CreatedAt: time.Unix(1, 0)},
		{ID: "e2", Date: mustDay(t, "2025-03-10"), Origin: timebank.OriginEarlyDeparture, Minutes: 30, CreatedAt: time.Unix(2, 0)},
		{ID: "e3", Date: mustDay(t, "2025-03-15"), Origin: timebank.OriginLateArrival, Minutes: 20, CreatedAt: time.Unix(3, 0)},
		{ID: "e4", Date: mustDay(t, "2025-04-02"), Origin: timebank.OriginLateArrival, Minutes: 5, CreatedAt: time.Unix(4, 0)},
	}

	filter := timebank.HistoryFilter{
		StartDate: strPtr("2025-03-01"),
		EndDate:   strPtr("2025-03-31"),
		Origin:    strPtr(timebank.OriginLateArrival),
	}

	narrowed := narrowTimeBankEntries(entries, filter)
	require.Len(t, narrowed, 2)
	assert.Equal(t, "e1", narrowed[0].ID)
	assert.Equal(t, "e3", narrowed[1].ID)
}

func TestNarrowTimeBankEntries_SortsAndLimits(t *testing.T) {
	entries := []timebank.Entry{
		{ID: "e3", Date: mustDay(t, "2025-03-03"), CreatedAt: time.Unix(3, 0)},
		{ID: "e1", Date: mustDay(t, "2025-03-01"), CreatedAt: time.Unix(1, 0)},
		{ID: "e2", Date: mustDay(t, "2025-03-02"), CreatedAt: time.Unix(2, 0)},
	}

	narrowed := narrowTimeBankEntries(entries, timebank.HistoryFilter{Limit: 2})
	require.Len(t, narrowed, 2)
	assert.Equal(t, "e1", narrowed[0].ID)
	assert.Equal(t, "e2", narrowed[1].ID)
}

func TestNarrowOvertimeRecords_ReappliesFilter(t *testing.T) {
	records := []overtime.Record{
		{ID: "o1", EmployeeID: "emp-1", Status: overtime.StatusApproved, Classification: overtime.ClassDay, Date: mustDay(t, "2025-03-10")},
		{ID: "o2", EmployeeID: "emp-2", Status: overtime.StatusApproved, Classification: overtime.ClassDay, Date: mustDay(t, "2025-03-11")},
		{ID: "o3", EmployeeID: "emp-1", Status: overtime.StatusPending, Classification: overtime.ClassDay, Date: mustDay(t, "2025-03-12")},
		{ID: "o4", EmployeeID: "emp-1", Status: overtime.StatusApproved, Classification: overtime.ClassNight, Date: mustDay(t, "2025-03-13")},
		{ID: "o5", EmployeeID: "emp-1", Status: overtime.StatusApproved, Classification: overtime.ClassDay, Date: mustDay(t, "2025-04-01")},
	}

	filter := overtime.ListFilter{
		EmployeeID:     strPtr("emp-1"),
		Status:         strPtr(string(overtime.StatusApproved)),
		Classification: strPtr(string(overtime.ClassDay)),
		EndDate:        strPtr("2025-03-31"),
	}

	narrowed := narrowOvertimeRecords(records, filter)
	require.Len(t, narrowed, 1)
	assert.Equal(t, "o1", narrowed[0].ID)
}

func TestNarrowOvertimeRecords_SortsDateDescending(t *testing.T) {
	records := []overtime.Record{
		{ID: "o1", Date: mustDay(t, "2025-03-10"), CreatedAt: time.Unix(1, 0)},
		{ID: "o2", Date: mustDay(t, "2025-03-12"), CreatedAt: time.Unix(2, 0)},
		{ID: "o3", Date: mustDay(t, "2025-03-12"), CreatedAt: time.Unix(3, 0)},
	}

	narrowed := narrowOvertimeRecords(records, overtime.ListFilter{})
	require.Len(t, narrowed, 3)
	assert.Equal(t, "o3", narrowed[0].ID)
	assert.Equal(t, "o2", narrowed[1].ID)
	assert.Equal(t, "o1", narrowed[2].ID)
}

func TestNarrowPunches_ReappliesFilter(t *testing.T) {
	punches := []punch.Punch{
		{ID: "p1", EmployeeID: "emp-1", Kind: punch.KindEntry, PunchedAt: mustDay(t, "2025-03-10").Add(8 * time.Hour)},
		{ID: "p2", EmployeeID: "emp-1", Kind: punch.KindExit, PunchedAt: mustDay(t, "2025-03-10").Add(17 * time.Hour)},
		{ID: "p3", EmployeeID: "emp-2", Kind: punch.KindEntry, PunchedAt: mustDay(t, "2025-03-10").Add(8 * time.Hour)},
		{ID: "p4", EmployeeID: "emp-1", Kind: punch.KindEntry, PunchedAt: mustDay(t, "2025-04-01").Add(8 * time.Hour)},
	}

	filter := punch.ListPunchFilter{
		EmployeeID: strPtr("emp-1"),
		Kind:       strPtr(string(punch.KindEntry)),
		StartDate:  strPtr("2025-03-01"),
		EndDate:    strPtr("2025-03-31"),
	}

	narrowed := narrowPunches(punches, filter)
	require.Len(t, narrowed, 1)
	assert.Equal(t, "p1", narrowed[0].ID)
}

func TestNarrowPunches_SortOrders(t *testing.T) {
	punches := []punch.Punch{
		{ID: "p1", PunchedAt: mustDay(t, "2025-03-10").Add(8 * time.Hour)},
		{ID: "p2", PunchedAt: mustDay(t, "2025-03-11").Add(8 * time.Hour)},
	}

	// Default order is punched_at descending, like the SQL path.
	narrowed := narrowPunches(punches, punch.ListPunchFilter{})
	require.Len(t, narrowed, 2)
	assert.Equal(t, "p2", narrowed[0].ID)

	narrowed = narrowPunches(punches, punch.ListPunchFilter{SortOrder: "asc"})
	require.Len(t, narrowed, 2)
	assert.Equal(t, "p1", narrowed[0].ID)
}

func TestPageSlice(t *testing.T) {
	rows := []string{"a", "b", "c", "d", "e"}

	assert.Equal(t, []string{"a", "b"}, pageSlice(rows, 1, 2))
	assert.Equal(t, []string{"c", "d"}, pageSlice(rows, 2, 2))
	assert.Equal(t, []string{"e"}, pageSlice(rows, 3, 2))
	assert.Nil(t, pageSlice(rows, 4, 2))
	// No limit means everything, unpaged.
	assert.Equal(t, rows, pageSlice(rows, 2, 0))
	// Page zero reads as the first page.
	assert.Equal(t, []string{"a", "b"}, pageSlice(rows, 0, 2))
}
