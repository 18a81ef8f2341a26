package timebank

import "time"

type Kind string

const (
	KindCredit Kind = "CREDIT"
	KindDebit  Kind = "DEBIT"
)

// Entry origins. LATE_ARRIVAL and EARLY_DEPARTURE come out of the punch
// processor; the MANUAL ones are admin adjustments.
const (
	OriginLateArrival    = "LATE_ARRIVAL"
	OriginEarlyDeparture = "EARLY_DEPARTURE"
	OriginManualCredit   = "MANUAL_CREDIT"
	OriginManualDebit    = "MANUAL_DEBIT"
)

// Entry is one signed movement in the minute ledger. Minutes are always
// stored positive; the direction lives in Kind. Entries are append-only.
type Entry struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Kind       Kind
	Minutes    int
	Origin     string
	PunchID    *string
	Note       *string
	CreatedAt  time.Time
}

// Signed returns the entry's contribution to the balance.
func (e Entry) Signed() int {
	if e.Kind == KindDebit {
		return -e.Minutes
	}
	return e.Minutes
}
