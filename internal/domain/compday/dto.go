package compday

import (
	"github.com/tallerhq/ops-backend-go/internal/pkg/validator"
)

type RedeemRequest struct {
	ID      string `json:"-"`
	UseDate string `json:"use_date"` // "2006-01-02"
}

func (r RedeemRequest) Validate() error {
	var errs validator.ValidationErrors
	if _, ok := validator.IsValidDate(r.UseDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "use_date", Message: "must be YYYY-MM-DD"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListFilter struct {
	EmployeeID *string
	Status     *string
}

type CompensatoryDayResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	PunchID    *string `json:"punch_id,omitempty"`
	EarnedDate string  `json:"earned_date"`
	Reason     string  `json:"reason"`
	Days       string  `json:"days"`
	ExpiresAt  string  `json:"expires_at"`
	Status     string  `json:"status"`
	Expired    bool    `json:"expired"`
	UsedDate   *string `json:"used_date,omitempty"`
}
