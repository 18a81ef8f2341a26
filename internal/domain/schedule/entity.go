package schedule

import "time"

// Shift is a named working window. Shifts are soft-deleted only, so that
// historical assignments keep resolving against the times that were in force.
type Shift struct {
	ID        string
	Name      string
	EntryTime string // "HH:MM"
	ExitTime  string // "HH:MM"
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ShiftAssignment binds an employee to a shift for a date range. Ranges may
// overlap; the resolver picks the most recently created covering one.
type ShiftAssignment struct {
	ID         string
	EmployeeID string
	ShiftID    string
	StartDate  time.Time
	EndDate    time.Time
	CreatedAt  time.Time
}

// SpecialSchedule is a per-employee entry/exit override, consulted only when
// no shift assignment covers the date.
type SpecialSchedule struct {
	ID         string
	EmployeeID string
	EntryTime  string // "HH:MM"
	ExitTime   string // "HH:MM"
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Config is the singleton attendance configuration: global default times and
// the lateness grace period.
type Config struct {
	ID                   string
	DefaultEntry         string // "HH:MM"
	DefaultExit          string // "HH:MM"
	ToleranceMinutes     int
	RequireJustification bool
	UpdatedAt            time.Time
}

// Built-in defaults used when no config row has ever been saved. Resolution
// must never fail, so these always exist.
const (
	FallbackEntry     = "08:00"
	FallbackExit      = "17:00"
	FallbackTolerance = 15
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		DefaultEntry:     FallbackEntry,
		DefaultExit:      FallbackExit,
		ToleranceMinutes: FallbackTolerance,
	}
}

// Expected time sources, in resolution priority order.
const (
	SourceAssignment = "SHIFT_ASSIGNMENT"
	SourceSpecial    = "SPECIAL_SCHEDULE"
	SourceDefault    = "GLOBAL_DEFAULT"
)

// ExpectedTimes is the resolver's answer for an employee/date pair.
type ExpectedTimes struct {
	EntryTime string
	ExitTime  string
	Source    string
}
