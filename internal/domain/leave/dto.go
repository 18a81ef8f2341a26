package leave

import (
	"io"

	"github.com/tallerhq/ops-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	EmployeeID string  `json:"employee_id"`
	Type       string  `json:"type"`
	Subtype    *string `json:"subtype"`
	StartAt    string  `json:"start_at"` // RFC3339
	EndAt      string  `json:"end_at"`
	Reason     string  `json:"reason"`

	// Optional attachment, populated from the multipart form.
	Attachment     io.Reader `json:"-"`
	AttachmentName string    `json:"-"`
}

func (r CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type is required"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}
	start, okStart := validator.IsValidDateTime(r.StartAt)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_at", Message: "must be an RFC3339 timestamp"})
	}
	end, okEnd := validator.IsValidDateTime(r.EndAt)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_at", Message: "must be an RFC3339 timestamp"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_at", Message: "must not be before start_at"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ApproveLeaveRequest struct {
	ID         string  `json:"-"`
	ApproverID string  `json:"approver_id"`
	Comments   *string `json:"comments"`
}

func (r ApproveLeaveRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.ApproverID) {
		errs = append(errs, validator.ValidationError{Field: "approver_id", Message: "approver_id is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectLeaveRequest struct {
	ID         string `json:"-"`
	ApproverID string `json:"approver_id"`
	Reason     string `json:"reason"`
}

func (r RejectLeaveRequest) Validate() error {
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
	Status     *string
	StartDate  *string
	EndDate    *string
}

type RequestResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	Type          string  `json:"type"`
	Subtype       *string `json:"subtype,omitempty"`
	StartAt       string  `json:"start_at"`
	EndAt         string  `json:"end_at"`
	Reason        string  `json:"reason"`
	AttachmentURL *string `json:"attachment_url,omitempty"`
	Status        string  `json:"status"`
	ApprovedBy    *string `json:"approved_by,omitempty"`
	Comments      *string `json:"comments,omitempty"`
}
