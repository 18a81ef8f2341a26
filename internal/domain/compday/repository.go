package compday

import "context"

type CompensatoryDayRepository interface {
	Create(ctx context.Context, day CompensatoryDay) (CompensatoryDay, error)
	GetByID(ctx context.Context, id string) (CompensatoryDay, error)
	List(ctx context.Context, filter ListFilter) ([]CompensatoryDay, error)
	// MarkUsed transitions AVAILABLE → USED and stores the use date.
	MarkUsed(ctx context.Context, day CompensatoryDay) error
}
