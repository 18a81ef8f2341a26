package leave

import "time"

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Request is a non-vacation absence permission: medical visits, errands,
// bereavement and similar. Same two-outcome state machine as vacations but
// with no balance behind it; approved leaves mark days as excused in the
// attendance summaries.
type Request struct {
	ID            string
	EmployeeID    string
	Type          string
	Subtype       *string
	StartAt       time.Time
	EndAt         time.Time
	Reason        string
	AttachmentURL *string
	Status        Status
	ApprovedBy    *string
	ApprovedAt    *time.Time
	Comments      *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Processed reports whether the request reached a terminal state.
func (r Request) Processed() bool {
	return r.Status != StatusPending
}

// CoversDate reports whether the leave spans the given calendar day.
func (r Request) CoversDate(date time.Time) bool {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	start := time.Date(r.StartAt.Year(), r.StartAt.Month(), r.StartAt.Day(), 0, 0, 0, 0, date.Location())
	end := time.Date(r.EndAt.Year(), r.EndAt.Month(), r.EndAt.Day(), 0, 0, 0, 0, date.Location())
	return !day.Before(start) && !day.After(end)
}
