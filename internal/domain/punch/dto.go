package punch

import (
	"time"

	"github.com/tallerhq/ops-backend-go/internal/pkg/validator"
)

type RecordPunchRequest struct {
	EmployeeID  string  `json:"employee_id"`
	Kind        string  `json:"kind"`
	PunchedAt   *string `json:"punched_at"` // RFC3339; defaults to now
	Note        *string `json:"note"`
	RecordedBy  *string `json:"recorded_by"`
	ClientToken *string `json:"client_token"`
}

func (r RecordPunchRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if !validator.IsInSlice(r.Kind, []string{string(KindEntry), string(KindExit)}) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "must be ENTRY or EXIT"})
	}
	if r.PunchedAt != nil {
		if _, ok := validator.IsValidDateTime(*r.PunchedAt); !ok {
			errs = append(errs, validator.ValidationError{Field: "punched_at", Message: "must be an RFC3339 timestamp"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Time returns the effective punch time: the supplied timestamp for manual
// corrections, otherwise now.
func (r RecordPunchRequest) Time(now time.Time) time.Time {
	if r.PunchedAt != nil {
		if t, ok := validator.IsValidDateTime(*r.PunchedAt); ok {
			return t
		}
	}
	return now
}

type PunchResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Kind         string  `json:"kind"`
	PunchedAt    string  `json:"punched_at"`
	Date         string  `json:"date"`
	Note         *string `json:"note,omitempty"`
	RecordedBy   *string `json:"recorded_by,omitempty"`
}

type ListPunchFilter struct {
	EmployeeID *string
	Kind       *string
	StartDate  *string
	EndDate    *string
	SortBy     string
	SortOrder  string
	Page       int
	Limit      int
}

type ListPunchResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	Punches    []PunchResponse `json:"punches"`
}
