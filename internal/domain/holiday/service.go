package holiday

import (
	"context"
	"time"
)

// HolidayService is the calendar lookup: is this date a holiday, and at what
// pay multiplier.
type HolidayService interface {
	Create(ctx context.Context, req CreateHolidayRequest) (Holiday, error)
	FindByDate(ctx context.Context, date time.Time) (*Holiday, error)
	List(ctx context.Context, year int) ([]Holiday, error)
	Delete(ctx context.Context, id string) error
}
