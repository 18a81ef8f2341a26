package schedule

import (
	"github.com/tallerhq/ops-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	Name      string `json:"name"`
	EntryTime string `json:"entry_time"`
	ExitTime  string `json:"exit_time"`
}

func (r CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if _, ok := validator.IsValidClock(r.EntryTime); !ok {
		errs = append(errs, validator.ValidationError{Field: "entry_time", Message: "must be HH:MM"})
	}
	if _, ok := validator.IsValidClock(r.ExitTime); !ok {
		errs = append(errs, validator.ValidationError{Field: "exit_time", Message: "must be HH:MM"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShiftRequest struct {
	ID        string  `json:"-"`
	Name      *string `json:"name"`
	EntryTime *string `json:"entry_time"`
	ExitTime  *string `json:"exit_time"`
	IsActive  *bool   `json:"is_active"`
}

func (r UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.EntryTime != nil {
		if _, ok := validator.IsValidClock(*r.EntryTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "entry_time", Message: "must be HH:MM"})
		}
	}
	if r.ExitTime != nil {
		if _, ok := validator.IsValidClock(*r.ExitTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "exit_time", Message: "must be HH:MM"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignShiftRequest struct {
	EmployeeID string `json:"employee_id"`
	ShiftID    string `json:"shift_id"`
	StartDate  string `json:"start_date"` // "2006-01-02"
	EndDate    string `json:"end_date"`
}

func (r AssignShiftRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{Field: "shift_id", Message: "shift_id is required"})
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

type SpecialScheduleRequest struct {
	EmployeeID string `json:"employee_id"`
	EntryTime  string `json:"entry_time"`
	ExitTime   string `json:"exit_time"`
}

func (r SpecialScheduleRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidClock(r.EntryTime); !ok {
		errs = append(errs, validator.ValidationError{Field: "entry_time", Message: "must be HH:MM"})
	}
	if _, ok := validator.IsValidClock(r.ExitTime); !ok {
		errs = append(errs, validator.ValidationError{Field: "exit_time", Message: "must be HH:MM"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateConfigRequest struct {
	DefaultEntry         *string `json:"default_entry"`
	DefaultExit          *string `json:"default_exit"`
	ToleranceMinutes     *int    `json:"tolerance_minutes"`
	RequireJustification *bool   `json:"require_justification"`
}

func (r UpdateConfigRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.DefaultEntry != nil {
		if _, ok := validator.IsValidClock(*r.DefaultEntry); !ok {
			errs = append(errs, validator.ValidationError{Field: "default_entry", Message: "must be HH:MM"})
		}
	}
	if r.DefaultExit != nil {
		if _, ok := validator.IsValidClock(*r.DefaultExit); !ok {
			errs = append(errs, validator.ValidationError{Field: "default_exit", Message: "must be HH:MM"})
		}
	}
	if r.ToleranceMinutes != nil && *r.ToleranceMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "tolerance_minutes", Message: "must not be negative"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	EntryTime string `json:"entry_time"`
	ExitTime  string `json:"exit_time"`
	IsActive  bool   `json:"is_active"`
}

type AssignmentResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	ShiftID    string `json:"shift_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

type ConfigResponse struct {
	DefaultEntry         string `json:"default_entry"`
	DefaultExit          string `json:"default_exit"`
	ToleranceMinutes     int    `json:"tolerance_minutes"`
	RequireJustification bool   `json:"require_justification"`
}

type SpecialScheduleResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	EntryTime  string `json:"entry_time"`
	ExitTime   string `json:"exit_time"`
	IsActive   bool   `json:"is_active"`
}

type ExpectedTimesResponse struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	EntryTime  string `json:"entry_time"`
	ExitTime   string `json:"exit_time"`
	Source     string `json:"source"`
}
