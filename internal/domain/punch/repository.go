package punch

import (
	"context"
	"time"
)

type PunchRepository interface {
	Create(ctx context.Context, p Punch) (Punch, error)
	GetByID(ctx context.Context, id string) (Punch, error)
	List(ctx context.Context, filter ListPunchFilter) ([]Punch, int64, error)
	// ListByEmployeeAndRange returns an employee's punches inside [from, to),
	// ordered by punch time. Used by the report reducer.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]Punch, error)
	// ExistsByClientToken reports whether a punch with the same employee, day,
	// kind and client token was already recorded.
	ExistsByClientToken(ctx context.Context, employeeID string, day time.Time, kind Kind, token string) (bool, error)
}
