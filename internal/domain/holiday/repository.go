package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	// FindByDate returns nil when the date is not a holiday.
	FindByDate(ctx context.Context, date time.Time) (*Holiday, error)
	List(ctx context.Context, year int) ([]Holiday, error)
	Delete(ctx context.Context, id string) error
}
