package report

// DayStatus is the computed state of one employee/day. A day with no punch
// is not implicitly anything: the reducer derives the status from punches,
// leaves and vacations together.
type DayStatus string

const (
	StatusWorked  DayStatus = "WORKED"
	StatusAbsent  DayStatus = "ABSENT"
	StatusExcused DayStatus = "EXCUSED"
	StatusOnLeave DayStatus = "ON_LEAVE"
)

type DayStatusEntry struct {
	Date   string    `json:"date"` // "2006-01-02"
	Status DayStatus `json:"status"`
}

type DayStatusResponse struct {
	EmployeeID string           `json:"employee_id"`
	StartDate  string           `json:"start_date"`
	EndDate    string           `json:"end_date"`
	Days       []DayStatusEntry `json:"days"`
}

// MonthlySummaryRow is one employee's line in the monthly attendance report.
type MonthlySummaryRow struct {
	EmployeeID    string `json:"employee_id"`
	EmployeeName  string `json:"employee_name"`
	DaysWorked    int    `json:"days_worked"`
	DaysAbsent    int    `json:"days_absent"`
	DaysExcused   int    `json:"days_excused"`
	DaysOnLeave   int    `json:"days_on_leave"`
	LateMinutes   int    `json:"late_minutes"`
	OvertimeHours string `json:"overtime_hours"` // approved equivalent hours
}

type MonthlySummaryResponse struct {
	Year  int                 `json:"year"`
	Month int                 `json:"month"`
	Rows  []MonthlySummaryRow `json:"rows"`
}
