package vacation

import "time"

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// DefaultAnnualDays is the per-employee yearly budget used when a balance is
// lazily initialized.
const DefaultAnnualDays = 15

// Request is a vacation request over a date range. BusinessDays counts
// Mon–Fri only; holidays are not excluded.
type Request struct {
	ID              string
	EmployeeID      string
	Year            int
	StartDate       time.Time
	EndDate         time.Time
	BusinessDays    int
	Status          Status
	Reason          string
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Processed reports whether the request reached a terminal state.
func (r Request) Processed() bool {
	return r.Status != StatusPending
}

// Balance is the per-employee/year day budget. used/pending/available are
// never patched incrementally: every state change recomputes them from the
// year's full request set, so available = total − used − pending always holds.
type Balance struct {
	ID            string
	EmployeeID    string
	Year          int
	TotalDays     int
	UsedDays      int
	PendingDays   int
	AvailableDays int
	UpdatedAt     time.Time
}

// Recompute rebuilds the used/pending/available split from the year's
// requests. Rejected requests contribute nothing, which is what frees their
// days when a PENDING request is rejected.
func (b *Balance) Recompute(requests []Request) {
	used, pending := 0, 0
	for _, req := range requests {
		switch req.Status {
		case StatusApproved:
			used += req.BusinessDays
		case StatusPending:
			pending += req.BusinessDays
		}
	}
	b.UsedDays = used
	b.PendingDays = pending
	b.AvailableDays = b.TotalDays - used - pending
}
