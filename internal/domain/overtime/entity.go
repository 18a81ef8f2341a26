package overtime

import (
	"time"

	"github.com/shopspring/decimal"
)

type Classification string

const (
	ClassDay     Classification = "DAY"
	ClassNight   Classification = "NIGHT"
	ClassSunday  Classification = "SUNDAY"
	ClassHoliday Classification = "HOLIDAY"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Record is one classified block of extra hours, created in PENDING state by
// the punch processor and settled by an approver. APPROVED and REJECTED are
// terminal.
type Record struct {
	ID              string
	EmployeeID      string
	PunchID         string
	Date            time.Time
	StartedAt       string // expected exit, "HH:MM"
	EndedAt         string // actual exit, "HH:MM"
	Classification  Classification
	Multiplier      decimal.Decimal
	RawHours        decimal.Decimal
	EquivalentHours decimal.Decimal
	Status          Status
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined for listings
	EmployeeName *string
}

// Processed reports whether the record reached a terminal state.
func (r Record) Processed() bool {
	return r.Status != StatusPending
}
