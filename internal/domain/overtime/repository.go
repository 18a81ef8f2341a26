package overtime

import "context"

type RecordRepository interface {
	Create(ctx context.Context, record Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	List(ctx context.Context, filter ListFilter) ([]Record, int64, error)
	// UpdateStatus settles a record. The repository does not enforce the state
	// machine; the service checks Processed() first.
	UpdateStatus(ctx context.Context, record Record) error
}
