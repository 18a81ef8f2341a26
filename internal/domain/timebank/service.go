package timebank

import "context"

type TimeBankService interface {
	// Append records a derived ledger movement (punch processor write path).
	Append(ctx context.Context, entry Entry) (Entry, error)

	// ManualAdjust records an admin credit/debit.
	ManualAdjust(ctx context.Context, req ManualAdjustmentRequest) (Entry, error)

	// Balance folds the employee's full history: Σcredits − Σdebits. No
	// cached counter is ever trusted.
	Balance(ctx context.Context, employeeID string) (int, error)

	History(ctx context.Context, employeeID string, filter HistoryFilter) (HistoryResponse, error)
}
