package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/tallerhq/ops-backend-go/internal/domain/employee"
	"github.com/tallerhq/ops-backend-go/internal/domain/holiday"
	"github.com/tallerhq/ops-backend-go/internal/domain/leave"
	"github.com/tallerhq/ops-backend-go/internal/domain/overtime"
	"github.com/tallerhq/ops-backend-go/internal/domain/punch"
	"github.com/tallerhq/ops-backend-go/internal/domain/report"
	"github.com/tallerhq/ops-backend-go/internal/domain/timebank"
	"github.com/tallerhq/ops-backend-go/internal/domain/vacation"
)

type ReportServiceImpl struct {
	punch.PunchRepository
	leave.RequestRepository
	vacationRepo vacation.RequestRepository
	timebank.EntryRepository
	overtime.RecordRepository
	employee.EmployeeRepository
	holiday.HolidayRepository
}

func NewReportService(
	punchRepo punch.PunchRepository,
	leaveRepo leave.RequestRepository,
	vacationRepo vacation.RequestRepository,
	timeBankRepo timebank.EntryRepository,
	overtimeRepo overtime.RecordRepository,
	employeeRepo employee.EmployeeRepository,
	holidayRepo holiday.HolidayRepository,
) report.ReportService {
	return &ReportServiceImpl{
		PunchRepository:    punchRepo,
		RequestRepository:  leaveRepo,
		vacationRepo:       vacationRepo,
		EntryRepository:    timeBankRepo,
		RecordRepository:   overtimeRepo,
		EmployeeRepository: employeeRepo,
		HolidayRepository:  holidayRepo,
	}
}

// DayStatuses implements report.ReportService. For every day in [from, to] the
// reducer picks, in order: WORKED when any punch exists, ON_LEAVE when an
// approved vacation covers the day, EXCUSED when a pending or approved leave
// covers it, ABSENT otherwise. Weekends and registered holidays without
// activity are not reported at all; nobody is absent on a day they were not
// expected to work.
func (s *ReportServiceImpl) DayStatuses(ctx context.Context, employeeID string, from, to time.Time) (report.DayStatusResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return report.DayStatusResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	from = truncateDay(from)
	to = truncateDay(to)

	punches, err := s.PunchRepository.ListByEmployeeAndRange(ctx, employeeID, from, to.AddDate(0, 0, 1))
	if err != nil {
		return report.DayStatusResponse{}, fmt.Errorf("failed to list punches: %w", err)
	}
	punchedDays := make(map[string]bool, len(punches))
	for _, p := range punches {
		punchedDays[p.PunchedAt.Format("2006-01-02")] = true
	}

	leaves, err := s.RequestRepository.ListByEmployeeAndRange(ctx, employeeID, from, to)
	if err != nil {
		return report.DayStatusResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	vacations, err := s.approvedVacations(ctx, employeeID, from, to)
	if err != nil {
		return report.DayStatusResponse{}, err
	}

	holidays, err := s.holidayDates(ctx, from, to)
	if err != nil {
		return report.DayStatusResponse{}, err
	}

	var days []report.DayStatusEntry
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")

		status, ok := s.dayStatus(d, punchedDays[key], leaves, vacations, holidays[key])
		if !ok {
			continue
		}
		days = append(days, report.DayStatusEntry{Date: key, Status: status})
	}

	return report.DayStatusResponse{
		EmployeeID: employeeID,
		StartDate:  from.Format("2006-01-02"),
		EndDate:    to.Format("2006-01-02"),
		Days:       days,
	}, nil
}

func (s *ReportServiceImpl) dayStatus(
	day time.Time,
	punched bool,
	leaves []leave.Request,
	vacations []vacation.Request,
	isHoliday bool,
) (report.DayStatus, bool) {
	if punched {
		return report.StatusWorked, true
	}

	for _, v := range vacations {
		if coversDay(day, v.StartDate, v.EndDate) {
			return report.StatusOnLeave, true
		}
	}
	// A leave awaiting review still excuses the day; only a rejected one
	// leaves it unexplained.
	for _, l := range leaves {
		if l.Status != leave.StatusRejected && l.CoversDate(day) {
			return report.StatusExcused, true
		}
	}

	if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday || isHoliday {
		return "", false
	}
	return report.StatusAbsent, true
}

// MonthlySummary implements report.ReportService. One row per active employee.
func (s *ReportServiceImpl) MonthlySummary(ctx context.Context, year int, month time.Month) (report.MonthlySummaryResponse, error) {
	employees, err := s.EmployeeRepository.ListActive(ctx)
	if err != nil {
		return report.MonthlySummaryResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	rows := make([]report.MonthlySummaryRow, 0, len(employees))
	for _, emp := range employees {
		row, err := s.summaryRow(ctx, emp, from, to)
		if err != nil {
			// One broken employee row must not sink the whole report.
			slog.Warn("skipping employee in monthly summary", "employee_id", emp.ID, "error", err)
			continue
		}
		rows = append(rows, row)
	}

	return report.MonthlySummaryResponse{Year: year, Month: int(month), Rows: rows}, nil
}

func (s *ReportServiceImpl) summaryRow(ctx context.Context, emp employee.Employee, from, to time.Time) (report.MonthlySummaryRow, error) {
	statuses, err := s.DayStatuses(ctx, emp.ID, from, to)
	if err != nil {
		return report.MonthlySummaryRow{}, err
	}

	row := report.MonthlySummaryRow{EmployeeID: emp.ID, EmployeeName: emp.FullName}
	for _, day := range statuses.Days {
		switch day.Status {
		case report.StatusWorked:
			row.DaysWorked++
		case report.StatusAbsent:
			row.DaysAbsent++
		case report.StatusExcused:
			row.DaysExcused++
		case report.StatusOnLeave:
			row.DaysOnLeave++
		}
	}

	row.LateMinutes, err = s.lateMinutes(ctx, emp.ID, from, to)
	if err != nil {
		return report.MonthlySummaryRow{}, err
	}

	row.OvertimeHours, err = s.approvedOvertimeHours(ctx, emp.ID, from, to)
	if err != nil {
		return report.MonthlySummaryRow{}, err
	}
	return row, nil
}

func (s *ReportServiceImpl) lateMinutes(ctx context.Context, employeeID string, from, to time.Time) (int, error) {
	start := from.Format("2006-01-02")
	end := to.Format("2006-01-02")
	origin := timebank.OriginLateArrival

	entries, err := s.EntryRepository.ListByEmployee(ctx, employeeID, timebank.HistoryFilter{
		StartDate: &start,
		EndDate:   &end,
		Origin:    &origin,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to list time bank entries: %w", err)
	}

	minutes := 0
	for _, entry := range entries {
		// The filter is best-effort, so re-check here.
		if entry.Origin != timebank.OriginLateArrival {
			continue
		}
		if entry.Date.Before(from) || entry.Date.After(to) {
			continue
		}
		minutes += entry.Minutes
	}
	return minutes, nil
}

func (s *ReportServiceImpl) approvedOvertimeHours(ctx context.Context, employeeID string, from, to time.Time) (string, error) {
	status := string(overtime.StatusApproved)
	start := from.Format("2006-01-02")
	end := to.Format("2006-01-02")

	records, _, err := s.RecordRepository.List(ctx, overtime.ListFilter{
		EmployeeID: &employeeID,
		Status:     &status,
		StartDate:  &start,
		EndDate:    &end,
	})
	if err != nil {
		return "", fmt.Errorf("failed to list overtime records: %w", err)
	}

	total := decimal.Zero
	for _, record := range records {
		total = total.Add(record.EquivalentHours)
	}
	return total.String(), nil
}

// ExportMonthlySummary implements report.ReportService.
func (s *ReportServiceImpl) ExportMonthlySummary(ctx context.Context, year int, month time.Month) ([]byte, error) {
	summary, err := s.MonthlySummary(ctx, year, month)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Attendance"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Employee ID", "Employee", "Worked", "Absent", "Excused", "On Leave", "Late (min)", "Overtime (h)"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for i, row := range summary.Rows {
		values := []interface{}{
			row.EmployeeID,
			row.EmployeeName,
			row.DaysWorked,
			row.DaysAbsent,
			row.DaysExcused,
			row.DaysOnLeave,
			row.LateMinutes,
			row.OvertimeHours,
		}
		for j, value := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// approvedVacations collects approved requests overlapping [from, to]. The
// repository partitions by year, so a range spanning new year reads both.
func (s *ReportServiceImpl) approvedVacations(ctx context.Context, employeeID string, from, to time.Time) ([]vacation.Request, error) {
	var approved []vacation.Request
	for year := from.Year(); year <= to.Year(); year++ {
		requests, err := s.vacationRepo.ListByEmployeeYear(ctx, employeeID, year)
		if err != nil {
			return nil, fmt.Errorf("failed to list vacation requests: %w", err)
		}
		for _, req := range requests {
			if req.Status != vacation.StatusApproved {
				continue
			}
			if req.EndDate.Before(from) || req.StartDate.After(to) {
				continue
			}
			approved = append(approved, req)
		}
	}
	return approved, nil
}

func (s *ReportServiceImpl) holidayDates(ctx context.Context, from, to time.Time) (map[string]bool, error) {
	dates := make(map[string]bool)
	for year := from.Year(); year <= to.Year(); year++ {
		holidays, err := s.HolidayRepository.List(ctx, year)
		if err != nil {
			return nil, fmt.Errorf("failed to list holidays: %w", err)
		}
		for _, h := range holidays {
			dates[h.Date.Format("2006-01-02")] = true
		}
	}
	return dates, nil
}

func coversDay(day, start, end time.Time) bool {
	day = truncateDay(day)
	return !day.Before(truncateDay(start)) && !day.After(truncateDay(end))
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
