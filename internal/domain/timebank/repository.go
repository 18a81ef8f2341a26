package timebank

import "context"

// EntryRepository is append-only: there is deliberately no update or delete.
type EntryRepository interface {
	Append(ctx context.Context, entry Entry) (Entry, error)
	// ListByEmployee returns entries oldest first. The filter is best-effort:
	// a store that cannot evaluate it server-side may return the full set and
	// let the caller narrow it.
	ListByEmployee(ctx context.Context, employeeID string, filter HistoryFilter) ([]Entry, error)
}
