package vacation

import "context"

type RequestRepository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	// ListByEmployeeYear feeds the balance recomputation; it must return every
	// request of the year regardless of status.
	ListByEmployeeYear(ctx context.Context, employeeID string, year int) ([]Request, error)
	List(ctx context.Context, filter ListFilter) ([]Request, error)
	UpdateStatus(ctx context.Context, req Request) error
}

type BalanceRepository interface {
	// GetByEmployeeYear returns nil when no balance row exists yet.
	GetByEmployeeYear(ctx context.Context, employeeID string, year int) (*Balance, error)
	Create(ctx context.Context, balance Balance) (Balance, error)
	Update(ctx context.Context, balance Balance) error
}
