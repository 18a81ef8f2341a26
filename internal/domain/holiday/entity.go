package holiday

import (
	"time"

	"github.com/shopspring/decimal"
)

// Holiday is one calendar entry. NonWaivable marks legally mandatory rest
// days; Multiplier is the pay factor applied to hours worked on the day.
type Holiday struct {
	ID          string
	Date        time.Time
	Name        string
	NonWaivable bool
	Multiplier  decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DefaultMultiplier applies when a holiday is registered without one.
var DefaultMultiplier = decimal.NewFromFloat(1.75)
