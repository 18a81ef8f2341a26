package timebank

import (
	"github.com/tallerhq/ops-backend-go/internal/pkg/validator"
)

type ManualAdjustmentRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"` // "2006-01-02"
	Kind       string  `json:"kind"`
	Minutes    int     `json:"minutes"`
	Note       *string `json:"note"`
}

func (r ManualAdjustmentRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if !validator.IsInSlice(r.Kind, []string{string(KindCredit), string(KindDebit)}) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "must be CREDIT or DEBIT"})
	}
	if r.Minutes <= 0 {
		errs = append(errs, validator.ValidationError{Field: "minutes", Message: "must be positive"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HistoryFilter struct {
	StartDate *string
	EndDate   *string
	Origin    *string
	Limit     int
}

type EntryResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Kind       string  `json:"kind"`
	Minutes    int     `json:"minutes"`
	Origin     string  `json:"origin"`
	PunchID    *string `json:"punch_id,omitempty"`
	Note       *string `json:"note,omitempty"`
}

type BalanceResponse struct {
	EmployeeID     string `json:"employee_id"`
	BalanceMinutes int    `json:"balance_minutes"`
}

type HistoryResponse struct {
	EmployeeID     string          `json:"employee_id"`
	BalanceMinutes int             `json:"balance_minutes"`
	Entries        []EntryResponse `json:"entries"`
}
