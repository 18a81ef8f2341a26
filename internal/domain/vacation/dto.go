package vacation

import (
	"github.com/tallerhq/ops-backend-go/internal/pkg/validator"
)

type CreateVacationRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"` // "2006-01-02"
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
}

func (r CreateVacationRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ApproveVacationRequest struct {
	ID         string `json:"-"`
	ApproverID string `json:"approver_id"`
}

func (r ApproveVacationRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.ApproverID) {
		errs = append(errs, validator.ValidationError{Field: "approver_id", Message: "approver_id is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectVacationRequest struct {
	ID         string `json:"-"`
	ApproverID string `json:"approver_id"`
	Reason     string `json:"reason"`
}

func (r RejectVacationRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.ApproverID) {
		errs = append(errs, validator.ValidationError{Field: "approver_id", Message: "approver_id is required"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListFilter struct {
	EmployeeID *string
	Year       *int
	Status     *string
}

type RequestResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	Year            int     `json:"year"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	BusinessDays    int     `json:"business_days"`
	Status          string  `json:"status"`
	Reason          string  `json:"reason"`
	ApprovedBy      *string `json:"approved_by,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
}

type BalanceResponse struct {
	EmployeeID    string `json:"employee_id"`
	Year          int    `json:"year"`
	TotalDays     int    `json:"total_days"`
	UsedDays      int    `json:"used_days"`
	PendingDays   int    `json:"pending_days"`
	AvailableDays int    `json:"available_days"`
}
