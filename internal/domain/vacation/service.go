package vacation

import "context"

type VacationService interface {
	// Request creates a PENDING request after checking the available balance;
	// the year balance is lazily initialized with the default budget.
	Request(ctx context.Context, req CreateVacationRequest) (RequestResponse, error)

	Approve(ctx context.Context, req ApproveVacationRequest) (RequestResponse, error)
	Reject(ctx context.Context, req RejectVacationRequest) (RequestResponse, error)
	List(ctx context.Context, filter ListFilter) ([]RequestResponse, error)

	// GetBalance recomputes the split from the year's requests before
	// answering; the stored row is a convenience, not ground truth.
	GetBalance(ctx context.Context, employeeID string, year int) (BalanceResponse, error)
}
