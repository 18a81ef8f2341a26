package compday

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type CompDayService interface {
	// Issue grants a compensatory day for Sunday/holiday work. Expiry is set
	// at issuance: earned date + 6 months.
	Issue(ctx context.Context, employeeID, punchID string, earnedDate time.Time, reason string, days decimal.Decimal) (CompensatoryDay, error)

	// Redeem transitions AVAILABLE → USED (terminal). Redeeming past the
	// expiry date fails with ErrCompDayExpired.
	Redeem(ctx context.Context, req RedeemRequest) (CompensatoryDayResponse, error)

	List(ctx context.Context, filter ListFilter) ([]CompensatoryDayResponse, error)
}
