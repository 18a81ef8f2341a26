package compday

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusUsed      Status = "USED"
)

// ExpiryWindow is how long an earned day stays redeemable.
const ExpiryWindowMonths = 6

// CompensatoryDay is a day off earned for mandatory Sunday/holiday work.
// There is no stored EXPIRED state: expiry is derived at read time from
// ExpiresAt, so an AVAILABLE row past its expiry is simply not redeemable.
type CompensatoryDay struct {
	ID         string
	EmployeeID string
	PunchID    *string
	EarnedDate time.Time
	Reason     string
	Days       decimal.Decimal
	ExpiresAt  time.Time
	Status     Status
	UsedDate   *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsExpired reports whether the day can no longer be redeemed.
func (c CompensatoryDay) IsExpired(now time.Time) bool {
	return c.Status == StatusAvailable && now.After(c.ExpiresAt)
}

// ExpiryFor computes the redemption deadline for a day earned on earnedDate.
func ExpiryFor(earnedDate time.Time) time.Time {
	return earnedDate.AddDate(0, ExpiryWindowMonths, 0)
}
