package punch

import "time"

type Kind string

const (
	KindEntry Kind = "ENTRY"
	KindExit  Kind = "EXIT"
)

// Punch is a single clock event. Punches are immutable: the processor only
// ever creates them, corrections happen through new punches recorded by an
// admin.
type Punch struct {
	ID          string
	EmployeeID  string
	Kind        Kind
	PunchedAt   time.Time
	RecordedBy  *string // admin id for manual corrections
	Note        *string
	ClientToken *string // optional idempotency token
	CreatedAt   time.Time

	// Joined for listings
	EmployeeName *string
}
