package overtime

import (
	"github.com/tallerhq/ops-backend-go/internal/pkg/validator"
)

type ApproveRequest struct {
	ID         string `json:"-"`
	ApproverID string `json:"approver_id"`
}

func (r ApproveRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.ApproverID) {
		errs = append(errs, validator.ValidationError{Field: "approver_id", Message: "approver_id is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectRequest struct {
	ID         string `json:"-"`
	ApproverID string `json:"approver_id"`
	Reason     string `json:"reason"`
}

func (r RejectRequest) Validate() error {
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
	EmployeeID     *string
	Status         *string
	Classification *string
	StartDate      *string
	EndDate        *string
	Page           int
	Limit          int
}

type RecordResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    *string `json:"employee_name,omitempty"`
	PunchID         string  `json:"punch_id"`
	Date            string  `json:"date"`
	StartedAt       string  `json:"started_at"`
	EndedAt         string  `json:"ended_at"`
	Classification  string  `json:"classification"`
	Multiplier      string  `json:"multiplier"`
	RawHours        string  `json:"raw_hours"`
	EquivalentHours string  `json:"equivalent_hours"`
	Status          string  `json:"status"`
	ApprovedBy      *string `json:"approved_by,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
}

type ListResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	Records    []RecordResponse `json:"records"`
}
