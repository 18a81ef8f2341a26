package leave

import (
	"context"
	"time"
)

type RequestRepository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	List(ctx context.Context, filter ListFilter) ([]Request, error)
	// ListByEmployeeAndRange returns requests overlapping [from, to]. Used by
	// the report reducer to fill in excused days.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]Request, error)
	UpdateStatus(ctx context.Context, req Request) error
}
